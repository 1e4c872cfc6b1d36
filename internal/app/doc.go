// Package app is roster's composition root.
//
// Open loads configuration (config file, .env, environment and flag
// overrides), points the zerolog logger at the log file and builds the
// catalog client. Run then starts the optional metrics endpoint, loads
// preferences and hands a browse.Session to the Bubble Tea UI, blocking
// until the user quits or the context is cancelled.
//
// The non-interactive CLI commands reuse Open and Env.NewSession so they go
// through the same fetch path as the TUI.
package app
