package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bgStyle renders text segments that all share one background color.
// Rendering each segment separately would otherwise leave unstyled gaps
// between them, since every segment ends with an ANSI reset.
type bgStyle struct {
	bg    lipgloss.Color
	space string
}

func newBgStyle(bgColor string) bgStyle {
	bg := lipgloss.Color(bgColor)
	return bgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// render applies style to text, painting the background under every cell
// including spaces.
func (b bgStyle) render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	style = style.Background(b.bg)
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

func (b bgStyle) spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

func (b bgStyle) join(parts []string, gap int) string {
	return strings.Join(parts, b.spaces(gap))
}

// fill pads a rendered line to width with the background color. Content
// that would wrap is clipped to the first row.
func (b bgStyle) fill(content string, width int) string {
	return lipgloss.NewStyle().Background(b.bg).Width(width).MaxHeight(1).Render(content)
}
