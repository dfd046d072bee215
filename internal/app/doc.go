// Package app wires application dependencies for the CLI.
//
// It resolves Config from defaults, a .env file and QUICKCHAT_* variables,
// then builds the snapshot store, logger and message registry and exposes
// them via the Wire struct for commands to use.
package app
