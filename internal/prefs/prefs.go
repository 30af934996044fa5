// Package prefs handles sortviz user preferences persistence.
// Preferences are stored in ~/.config/sortviz/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/sortviz/internal/sorting"
)

// Prefs holds what sortviz remembers between sessions.
type Prefs struct {
	Theme string

	// Algorithm is the last algorithm picked in the UI. It is only
	// meaningful when HasAlgorithm is set.
	Algorithm    sorting.Algorithm
	HasAlgorithm bool
}

// fileFormat is the on-disk shape. The algorithm is stored by its short
// key so the file stays readable and stable across enum reordering.
type fileFormat struct {
	Theme     string `toml:"theme"`
	Algorithm string `toml:"algorithm,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/sortviz/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults returns the preferences used before anything was saved.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme}
}

// Load reads preferences from path. A missing, unreadable or corrupt file
// yields Defaults, and an unknown algorithm is dropped, so the error is
// reserved for an unresolvable path.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Defaults(), nil
	}

	var raw fileFormat
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Defaults(), nil
	}
	return raw.decode(), nil
}

func (f fileFormat) decode() Prefs {
	p := Defaults()
	if theme := strings.TrimSpace(f.Theme); theme != "" {
		p.Theme = theme
	}
	if name := strings.TrimSpace(f.Algorithm); name != "" {
		if alg, err := sorting.ParseAlgorithm(name); err == nil {
			p.Algorithm = alg
			p.HasAlgorithm = true
		}
	}
	return p
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	raw := fileFormat{Theme: p.Theme}
	if p.HasAlgorithm && p.Algorithm.Valid() {
		raw.Algorithm = p.Algorithm.Key()
	}
	data, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultPrefsPath
	}
	if rest, ok := strings.CutPrefix(trimmed, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, rest)
	}
	return filepath.Abs(trimmed)
}
