// Package config handles loading and parsing the frotactl
// configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/frotactl/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/frotactl/config.toml
//   - Environment: dev (base URL http://localhost:8000)
//   - State file: ~/.config/frotactl/state.json
//   - Poll interval: 30 seconds
//
// # TOML Format
//
// Example config.toml:
//
//	environment = "prod"
//	base_url = "https://api.frotaops.com"
//	state_path = "~/.config/frotactl/state.json"
//	poll_seconds = 30
//
// All fields are optional. When both base_url and environment are set,
// base_url wins. Tilde expansion is performed automatically on paths.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors
// (except os.ErrNotExist, which triggers defaults), and TOML parsing
// errors. A missing config file is NOT an error; the client works
// out-of-the-box against a local development server.
package config
