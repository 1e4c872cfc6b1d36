// Package config loads roster's configuration.
//
// # Resolution Order
//
//  1. Built-in defaults (Default)
//  2. The TOML file given by --config, or ~/.config/roster/config.toml
//  3. Environment variables ROSTER_API_URL, ROSTER_LOG_LEVEL and
//     ROSTER_METRICS_ADDR
//
// A missing config file is not an error. LoadEnvFile reads an optional .env
// file into the environment first, so its values act as overrides without
// replacing variables already exported by the shell.
//
// # TOML Format
//
//	api_url = "http://127.0.0.1:8080/api"
//	request_timeout = "10s"
//	search_delay = "500ms"
//	log_file = "~/.local/state/roster/roster.log"
//	log_level = "info"
//	metrics_addr = "127.0.0.1:9464"
//
// Every field is optional. Durations use Go syntax and must be positive.
// Tilde expansion is applied to log_file.
package config
