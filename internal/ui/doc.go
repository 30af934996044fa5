// Package ui provides the terminal user interface for sortviz.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. It never touches the array directly: the
// runner publishes immutable snapshots into a state.Store and the Model
// pulls the latest one on every frame tick. User actions go back to the
// runner through the Controller interface, which rejects anything that
// would conflict with an active run.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key dispatch and the Run entry point
//   - header.go: status bar (run badge, counters, status) and command bar
//     (algorithm selector and action hints)
//   - bars.go: bar chart rendering, value labels and the color legend
//   - help.go: keyboard shortcut overlay
//   - keys.go: key bindings, enabled or disabled by run state
//   - theme.go: color themes and pre-built Lipgloss styles
//
// # Bar Chart
//
// Bar heights are scaled against the largest value in the snapshot and
// drawn with eighth-block glyphs so short arrays still show fine-grained
// differences. The first highlighted index is drawn in the theme's
// Compare1 color and the second in Compare2. When the terminal is wide
// enough each bar gets its value printed vertically beneath it.
//
// # Keyboard Shortcuts
//
//   - s/enter: Start sorting with the selected algorithm
//   - x/esc: Stop the active run
//   - r: Reset to the original array
//   - n: Shuffle a new array
//   - 1-5, ←/→: Select algorithm
//   - T: Cycle theme
//   - h/?: Toggle help
//   - q/ctrl+c: Quit
//
// While a run is active only stop, help, theme and quit respond.
package ui
