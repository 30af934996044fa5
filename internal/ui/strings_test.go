package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"  short  ", 10, "short"},
		{"Completed: Bubble Sort", 12, "Completed..."},
		{"abcdef", 3, "abc"},
		{"abcdef", 0, "abcdef"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("7", 3); got != "7  " {
		t.Fatalf("padRight = %q, want %q", got, "7  ")
	}
	if got := padRight("long", 2); got != "long" {
		t.Fatalf("padRight = %q, want unchanged", got)
	}
}

func TestShortName(t *testing.T) {
	if got := shortName("Insertion Sort"); got != "Insertion" {
		t.Fatalf("shortName = %q, want Insertion", got)
	}
}

func TestDigits(t *testing.T) {
	if got := string(digits(305)); got != "305" {
		t.Fatalf("digits(305) = %q", got)
	}
	if got := string(digits(-4)); got != "-4" {
		t.Fatalf("digits(-4) = %q", got)
	}
}
