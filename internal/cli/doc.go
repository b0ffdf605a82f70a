// Package cli connects command-line input to platform adapters: it builds
// adapters from platform names, resolves their roots and picks platforms
// interactively when none is given.
package cli
