// Package paths names the supported platforms and resolves their default
// configuration roots.
//
// Resolution never reads process globals directly. [CurrentEnv] captures
// the home directory, the XDG config home (via github.com/adrg/xdg) and
// CODEX_HOME once, and every lookup goes through the resulting [Env]:
//
//	env, err := paths.CurrentEnv()
//	if err != nil {
//		return err
//	}
//	root, err := env.DefaultRoot(paths.PlatformCopilot)
//
// # Platform Roots
//
//	| Platform | Default root                    | Fallback            |
//	|----------|---------------------------------|---------------------|
//	| claude   | ~/.claude                       |                     |
//	| codex    | $CODEX_HOME                     | ~/.codex            |
//	| copilot  | <XDG_CONFIG_HOME>/copilot       | ~/.copilot (legacy) |
//
// The Copilot legacy root is used only when the standard directory is
// missing and the legacy one exists.
package paths
