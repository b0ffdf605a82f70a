// Package errors provides error handling conventions for the aisync CLI.
//
// Constructors and wrappers delegate to github.com/cockroachdb/errors so every
// error carries a stack trace and survives errors.Is/As across wrapping. The
// package also defines sentinel errors for common failure conditions, an
// ExitError type for CLI exit code handling, and exit code constants.
//
// # Wrapping
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return errors.Wrapf(err, "reading %s", path)
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, malformed files)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional suggestion:
//
//	err := errors.NewUserError(errors.ErrInvalidConfig, "Check your config file")
//	os.Exit(errors.ExitCode(err))
package errors
