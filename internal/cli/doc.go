// Package cli implements the invdash command-line interface.
//
// # Command Structure
//
// The root command is "invdash", which runs the dashboard (same as
// "invdash watch"). Subcommands:
//
//	invdash watch       - Live dashboard (TUI on a terminal, plain text otherwise)
//	invdash snapshot    - Poll once and print the result (--json for machines)
//	invdash init        - Create .invdash.yaml
//	invdash version     - Print build information
//	invdash completion  - Generate shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --url, --no-color) are defined on the root command
// and available to all subcommands. --url overrides source.url from the
// config file for a single run.
//
// # Wiring
//
// newApp turns the loaded config into a poll.Controller: it picks the status
// source (HTTP or MQTT), the metadata source (device endpoint or local file)
// and the logger destination. The TUI never logs to the terminal it draws
// on; logs go to log.file when set and are discarded otherwise.
package cli
