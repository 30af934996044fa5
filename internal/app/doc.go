// Package app provides the orchestration layer for sortviz.
//
// # Overview
//
// This package is the composition root. It wires configuration,
// preferences, logging, the animation driver and the UI together and
// holds no sorting logic of its own.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()    Read ~/.config/sortviz/config.toml
//	       ├─────> prefs.Load()     Theme and last algorithm
//	       ├─────> applyOptions()   Command-line overrides, validated
//	       ├─────> newLogger()      File logger with -debug, else discard
//	       ├─────> runner.New()     Generate the initial array and publish it
//	       └─────> ui.Run()         Start TUI (blocks)
//
// When the UI exits, Run stops any active sort and waits briefly for the
// run goroutine to return.
//
// # Precedence
//
// Command-line flags win over the config file. The algorithm remembered in
// prefs is used only when neither the config file nor the flags name one.
//
// # Error Handling
//
// Config parse and validation failures, bad flag values and log file
// errors are returned from Run. Preference problems never are: a missing or
// corrupt prefs file just yields defaults.
package app
