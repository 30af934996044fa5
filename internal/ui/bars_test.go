package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/sortviz/internal/array"
	"github.com/five82/sortviz/internal/state"
)

func TestLayoutBars(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		width int
		want  barGeometry
	}{
		{"wide", 50, 200, barGeometry{barWidth: 2, gap: 1, labels: true}},
		{"medium", 50, 120, barGeometry{barWidth: 1, gap: 1, labels: true}},
		{"narrow", 50, 80, barGeometry{barWidth: 1}},
		{"empty", 0, 80, barGeometry{barWidth: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := layoutBars(tt.n, tt.width); got != tt.want {
				t.Fatalf("layoutBars(%d, %d) = %+v, want %+v", tt.n, tt.width, got, tt.want)
			}
		})
	}
}

func TestBarEighths(t *testing.T) {
	tests := []struct {
		value, top, rows int
		want             int
	}{
		{310, 310, 10, 80},
		{155, 310, 10, 40},
		{1, 310, 10, 1},
		{0, 310, 10, 0},
		{-3, 310, 10, 0},
		{400, 310, 10, 80},
		{5, 0, 10, 0},
	}
	for _, tt := range tests {
		if got := barEighths(tt.value, tt.top, tt.rows); got != tt.want {
			t.Fatalf("barEighths(%d, %d, %d) = %d, want %d", tt.value, tt.top, tt.rows, got, tt.want)
		}
	}
}

func TestCellGlyph(t *testing.T) {
	if got := cellGlyph(80, 9); got != fullBlock {
		t.Fatalf("cellGlyph(80, 9) = %q, want full block", got)
	}
	if got := cellGlyph(40, 5); got != ' ' {
		t.Fatalf("cellGlyph(40, 5) = %q, want space", got)
	}
	if got := cellGlyph(43, 5); got != '▃' {
		t.Fatalf("cellGlyph(43, 5) = %q, want ▃", got)
	}
}

func TestBarColor(t *testing.T) {
	th := GetTheme("Nightfox")
	h := array.Highlight{First: 2, Second: 5}

	if got := barColor(2, h, th); got != th.Compare1 {
		t.Fatalf("first index color = %q, want %q", got, th.Compare1)
	}
	if got := barColor(5, h, th); got != th.Compare2 {
		t.Fatalf("second index color = %q, want %q", got, th.Compare2)
	}
	if got := barColor(3, h, th); got != th.Bar {
		t.Fatalf("plain bar color = %q, want %q", got, th.Bar)
	}
	if got := barColor(4, array.Highlight{First: 4, Second: 4}, th); got != th.Compare1 {
		t.Fatalf("same-index color = %q, want first color", got)
	}
	if got := barColor(0, array.NoHighlight, th); got != th.Bar {
		t.Fatalf("unset highlight color = %q, want bar color", got)
	}
}

func TestLabelRows(t *testing.T) {
	if got := labelRows([]int{7, 42, 305}); got != 3 {
		t.Fatalf("labelRows = %d, want 3", got)
	}
	if got := labelRows(nil); got != 0 {
		t.Fatalf("labelRows(nil) = %d, want 0", got)
	}
}

func TestRenderBars_FillsHeightWithLabels(t *testing.T) {
	snap := state.Snapshot{Values: []int{1, 2, 3, 4}, Highlight: array.NoHighlight}
	out := ansi.Strip(renderBars(snap, GetTheme("Nightfox"), 40, 6))
	lines := strings.Split(out, "\n")

	if len(lines) != 6 {
		t.Fatalf("renderBars produced %d lines, want 6:\n%s", len(lines), out)
	}
	top := lines[0]
	if strings.Count(top, string(fullBlock)) != 2 {
		t.Fatalf("top row = %q, want only the tallest bar filled", top)
	}
	if got := strings.Fields(lines[len(lines)-1]); strings.Join(got, ",") != "1,2,3,4" {
		t.Fatalf("label row = %v, want [1 2 3 4]", got)
	}
	bottom := lines[len(lines)-2]
	if strings.Count(bottom, string(fullBlock)) != 8 {
		t.Fatalf("bottom bar row = %q, want every bar filled", bottom)
	}
}

func TestRenderBars_NarrowDropsLabels(t *testing.T) {
	values := make([]int, 60)
	for i := range values {
		values[i] = i + 10
	}
	snap := state.Snapshot{Values: values, Highlight: array.NoHighlight}
	out := ansi.Strip(renderBars(snap, GetTheme("Slate"), 80, 8))
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("renderBars produced %d lines, want 8", len(lines))
	}
	for _, line := range lines {
		if strings.ContainsAny(line, "0123456789") {
			t.Fatalf("narrow chart should not print labels, got %q", line)
		}
	}
}

func TestRenderLegend(t *testing.T) {
	out := ansi.Strip(renderLegend(GetTheme("Kanagawa")))
	if !strings.Contains(out, "Comparison Index 1") || !strings.Contains(out, "Comparison Index 2") {
		t.Fatalf("legend = %q, want both comparison labels", out)
	}
}
