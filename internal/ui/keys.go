package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Run controls
	Start   key.Binding
	Reset   key.Binding
	Shuffle key.Binding
	Stop    key.Binding

	// Algorithm selector
	NextAlgorithm   key.Binding
	PrevAlgorithm   key.Binding
	SelectAlgorithm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		// Run controls
		Start: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "Start"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Shuffle"),
		),
		Stop: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x", "Stop run"),
		),

		// Algorithm selector
		NextAlgorithm: key.NewBinding(
			key.WithKeys("right", "]", "tab"),
			key.WithHelp("→", "Next algorithm"),
		),
		PrevAlgorithm: key.NewBinding(
			key.WithKeys("left", "[", "shift+tab"),
			key.WithHelp("←", "Previous algorithm"),
		),
		SelectAlgorithm: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "Pick algorithm"),
		),
	}
}

// setRunning enables or disables the bindings that conflict with an active run.
func (k *keyMap) setRunning(running bool) {
	k.Start.SetEnabled(!running)
	k.Reset.SetEnabled(!running)
	k.Shuffle.SetEnabled(!running)
	k.NextAlgorithm.SetEnabled(!running)
	k.PrevAlgorithm.SetEnabled(!running)
	k.SelectAlgorithm.SetEnabled(!running)
	k.Stop.SetEnabled(running)
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Reset, k.Shuffle, k.Stop, k.NextAlgorithm, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Reset, k.Shuffle, k.Stop},
		{k.NextAlgorithm, k.PrevAlgorithm, k.SelectAlgorithm},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
