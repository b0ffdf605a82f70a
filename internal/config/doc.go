// Package config loads aisync's own configuration.
//
// The file is config.yaml, searched in the working directory and then in
// <XDG_CONFIG_HOME>/aisync. Every key can be overridden from the
// environment with the AISYNC_ prefix, dots replaced by underscores:
//
//	version: 1
//	platforms:
//	  claude:
//	    config_dir: ~/dotfiles/claude
//	  copilot:
//	    config_dir: /work/copilot
//	sync:
//	  include_marketplace: false
//	  skip_existing_commands: true
//
// A platform's config_dir replaces its default root unless a --from-root or
// --to-root flag is given. [Validate] reports unknown platform names and
// relative paths.
package config
