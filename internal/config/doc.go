// Package config loads the sortviz configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/sortviz/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # Default Values
//
//   - Array size: 50
//   - Values: uniform in [10, 310) (min_value 10, value_range 300)
//   - Pacing delay: 50ms between steps
//   - Frame interval: 33ms
//   - Algorithm: bubble
//   - Debug log: ~/.local/state/sortviz/sortviz.log
//
// # TOML Format
//
//	array_size = 50
//	min_value = 10
//	value_range = 300
//	delay_ms = 50
//	frame_ms = 33
//	algorithm = "quick"
//	log_file = "~/.local/state/sortviz/sortviz.log"
//
// All fields are optional. Algorithm names accept the short key ("merge")
// or the display name ("Merge Sort"). Tilde expansion is performed on
// log_file.
//
// # Error Handling
//
// Load returns errors for unreadable files, TOML syntax errors, unknown
// algorithms and out-of-range values. A missing file is NOT an error.
package config
