package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sortviz/internal/sorting"
	"github.com/five82/sortviz/internal/state"
)

// renderHeader renders the status bar: run badge, algorithm, counters and
// the latest status message.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{
		bg.render("sortviz", styles.Logo),
		m.renderRunBadge(styles, bg),
	}

	alg := m.snapshot.Algorithm
	if !m.running() {
		alg = m.selected
	}
	algName := alg.String()
	if compact {
		algName = shortName(algName)
	}
	parts = append(parts, bg.render(algName, styles.AccentText))

	compLabel, swapLabel := "Comparisons:", "Swaps:"
	if compact {
		compLabel, swapLabel = "C:", "S:"
	}
	parts = append(parts,
		bg.render(compLabel, styles.MutedText)+bg.spaces(1)+
			bg.render(fmt.Sprintf("%d", m.snapshot.Comparisons), styles.Text),
		bg.render(swapLabel, styles.MutedText)+bg.spaces(1)+
			bg.render(fmt.Sprintf("%d", m.snapshot.Swaps), styles.Text),
	)

	if !compact {
		parts = append(parts,
			bg.render("Size:", styles.MutedText)+bg.spaces(1)+
				bg.render(fmt.Sprintf("%d", len(m.snapshot.Values)), styles.Text),
			bg.render("Delay:", styles.MutedText)+bg.spaces(1)+
				bg.render(fmt.Sprintf("%dms", m.delay.Milliseconds()), styles.Text),
		)
	}

	if status := m.snapshot.Status; status != "" {
		limit := 40
		if compact {
			limit = 24
		}
		parts = append(parts, bg.render(truncate(status, limit), m.statusStyle(styles)))
	}

	if m.snapshot.LastError != nil {
		limit := 60
		if compact {
			limit = 30
		}
		parts = append(parts,
			bg.render("ERROR", styles.DangerText.Bold(true))+bg.spaces(1)+
				bg.render(truncate(m.snapshot.LastError.Error(), limit), styles.DangerText),
		)
	}

	return bg.fill(styles.Header.Render(bg.join(parts, 2)), m.width)
}

// renderRunBadge shows the run state, with a spinner while sorting.
func (m Model) renderRunBadge(styles Styles, bg bgStyle) string {
	run := m.badge
	label := strings.ToUpper(run.String())
	if run == state.Running {
		return bg.render(m.spinner.View(), styles.WarningText) + bg.spaces(1) +
			styles.RunStyle(run).Render(label)
	}
	return styles.RunStyle(run).Render(label)
}

// statusStyle colors the status line by how the last run ended.
func (m Model) statusStyle(styles Styles) lipgloss.Style {
	status := m.snapshot.Status
	switch {
	case strings.HasPrefix(status, "Completed"):
		return styles.SuccessText
	case strings.HasPrefix(status, "Failed"):
		return styles.DangerText
	case strings.HasPrefix(status, "Stopped"):
		return styles.WarningText
	default:
		return styles.MutedText
	}
}

// renderCommandBar renders the algorithm selector followed by the action
// hints. The selector is dimmed while a run is active.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	running := m.running()

	choices := make([]string, 0, len(sorting.All()))
	for i, alg := range sorting.All() {
		label := fmt.Sprintf("%d %s", i+1, shortName(alg.String()))
		switch {
		case alg == m.selected && running:
			choices = append(choices, styles.Selected.Faint(true).Render(" "+label+" "))
		case alg == m.selected:
			choices = append(choices, styles.Selected.Bold(true).Render(" "+label+" "))
		case running:
			choices = append(choices, bg.render(" "+label+" ", styles.FaintText))
		default:
			choices = append(choices, bg.render(" "+label+" ", styles.MutedText))
		}
	}

	type cmd struct{ key, desc string }
	var commands []cmd
	switch {
	case compact:
		commands = []cmd{{"?", "More"}}
	case running:
		commands = []cmd{{"x", "Stop"}, {"?", "More"}}
	default:
		commands = []cmd{{"s", "Start"}, {"r", "Reset"}, {"n", "Shuffle"}, {"?", "More"}}
	}

	colon := bg.render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.render(c.key, styles.AccentText)+colon+bg.render(c.desc, styles.MutedText))
	}
	if !compact {
		segments = append(segments,
			bg.render("T", styles.AccentText)+colon+bg.render(m.theme.Name, styles.FaintText))
	}

	content := strings.Join(choices, bg.spaces(1)) + bg.spaces(3) + bg.join(segments, 2)
	return bg.fill(styles.Header.Render(content), m.width)
}
