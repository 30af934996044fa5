package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sortviz/internal/array"
	"github.com/five82/sortviz/internal/state"
)

// eighthBlocks are the partial cell glyphs from one to seven eighths high.
var eighthBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇'}

const fullBlock = '█'

// barGeometry is how one bar maps onto terminal columns.
type barGeometry struct {
	barWidth int
	gap      int
	labels   bool
}

// layoutBars picks the widest bars that fit n values into width columns.
// Labels need at least two columns per bar.
func layoutBars(n, width int) barGeometry {
	avail := width - chartPadding
	switch {
	case n == 0:
		return barGeometry{barWidth: 1}
	case avail >= n*3:
		return barGeometry{barWidth: 2, gap: 1, labels: true}
	case avail >= n*2:
		return barGeometry{barWidth: 1, gap: 1, labels: true}
	default:
		return barGeometry{barWidth: 1}
	}
}

// barEighths scales value against top into eighths of a cell over rows rows.
// Positive values are always at least one eighth high.
func barEighths(value, top, rows int) int {
	if value <= 0 || top <= 0 || rows <= 0 {
		return 0
	}
	h := value * rows * 8 / top
	if h < 1 {
		h = 1
	}
	if limit := rows * 8; h > limit {
		h = limit
	}
	return h
}

// cellGlyph returns the glyph for the cell level rows above the baseline of
// a bar that is eighths eighths high.
func cellGlyph(eighths, level int) rune {
	fill := eighths - level*8
	switch {
	case fill <= 0:
		return ' '
	case fill >= 8:
		return fullBlock
	default:
		return eighthBlocks[fill-1]
	}
}

// barColor picks the color of bar i. When both highlighted indices are the
// same, the first color wins.
func barColor(i int, h array.Highlight, theme Theme) string {
	switch {
	case i >= 0 && i == h.First:
		return theme.Compare1
	case i >= 0 && i == h.Second:
		return theme.Compare2
	default:
		return theme.Bar
	}
}

// labelRows returns how many rows the stacked value labels need.
func labelRows(values []int) int {
	rows := 0
	for _, v := range values {
		if n := len(digits(v)); n > rows {
			rows = n
		}
	}
	return rows
}

// renderBars draws snap's values as a bar chart filling width x height
// cells. It depends only on its arguments.
func renderBars(snap state.Snapshot, theme Theme, width, height int) string {
	values := snap.Values
	geo := layoutBars(len(values), width)

	lrows := 0
	if geo.labels {
		lrows = labelRows(values)
	}
	rows := height - lrows
	if rows < 1 {
		rows = 1
	}

	top := snap.MaxValue()
	heights := make([]int, len(values))
	styles := make([]lipgloss.Style, len(values))
	for i, v := range values {
		heights[i] = barEighths(v, top, rows)
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(barColor(i, snap.Highlight, theme)))
	}

	pad := strings.Repeat(" ", chartPadding)
	gap := strings.Repeat(" ", geo.gap)
	lines := make([]string, 0, rows+lrows)

	var b strings.Builder
	for r := 0; r < rows; r++ {
		level := rows - 1 - r
		b.Reset()
		b.WriteString(pad)
		for i := range values {
			g := cellGlyph(heights[i], level)
			cell := strings.Repeat(string(g), geo.barWidth)
			if g == ' ' {
				b.WriteString(cell)
			} else {
				b.WriteString(styles[i].Render(cell))
			}
			b.WriteString(gap)
		}
		lines = append(lines, b.String())
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted))
	for d := 0; d < lrows; d++ {
		b.Reset()
		b.WriteString(pad)
		for i, v := range values {
			ds := digits(v)
			ch := " "
			if d < len(ds) {
				ch = string(ds[d])
			}
			cell := padRight(ch, geo.barWidth)
			if snap.Highlight.Has(i) {
				b.WriteString(styles[i].Bold(true).Render(cell))
			} else {
				b.WriteString(muted.Render(cell))
			}
			b.WriteString(gap)
		}
		lines = append(lines, b.String())
	}

	return strings.Join(lines, "\n")
}

// renderLegend names the two highlight colors.
func renderLegend(theme Theme) string {
	styles := theme.Styles()
	swatch := func(color string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(fullBlock) + string(fullBlock))
	}
	parts := []string{
		swatch(theme.Compare1) + " " + styles.MutedText.Render("Comparison Index 1"),
		swatch(theme.Compare2) + " " + styles.MutedText.Render("Comparison Index 2"),
	}
	return strings.Repeat(" ", chartPadding) + strings.Join(parts, "   ")
}
