package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/sortviz/internal/sorting"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ArraySize != 50 || cfg.MinValue != 10 || cfg.ValueRange != 300 {
		t.Fatalf("array params = %d/%d/%d, want 50/10/300", cfg.ArraySize, cfg.MinValue, cfg.ValueRange)
	}
	if cfg.MaxValue() != 310 {
		t.Fatalf("MaxValue = %d, want 310", cfg.MaxValue())
	}
	if cfg.Delay != 50*time.Millisecond {
		t.Fatalf("Delay = %v, want 50ms", cfg.Delay)
	}
	if cfg.Algorithm != sorting.Bubble {
		t.Fatalf("Algorithm = %v, want Bubble", cfg.Algorithm)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_ParsesConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
array_size = 80
min_value = 1
value_range = 99
delay_ms = 5
frame_ms = 16
algorithm = "  Quick Sort "
log_file = "  ~/logs/sortviz.log  "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ArraySize != 80 || cfg.MinValue != 1 || cfg.ValueRange != 99 {
		t.Fatalf("array params = %d/%d/%d, want 80/1/99", cfg.ArraySize, cfg.MinValue, cfg.ValueRange)
	}
	if cfg.Delay != 5*time.Millisecond || cfg.FrameEvery != 16*time.Millisecond {
		t.Fatalf("timings = %v/%v, want 5ms/16ms", cfg.Delay, cfg.FrameEvery)
	}
	if cfg.Algorithm != sorting.Quick || !cfg.AlgorithmSet {
		t.Fatalf("Algorithm = %v (set %v), want Quick set", cfg.Algorithm, cfg.AlgorithmSet)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_ZeroDelayIsAllowed(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(writeConfig(t, "delay_ms = 0\n"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Delay != 0 {
		t.Fatalf("Delay = %v, want 0", cfg.Delay)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(writeConfig(t, `
algorithm = "   "
log_file = ""
`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Algorithm != sorting.Bubble || cfg.AlgorithmSet {
		t.Fatalf("Algorithm = %v (set %v), want default Bubble unset", cfg.Algorithm, cfg.AlgorithmSet)
	}
	if cfg.LogFile != Default().LogFile {
		t.Fatalf("LogFile = %q, want default %q", cfg.LogFile, Default().LogFile)
	}
}

func TestLoad_ExplicitDefaultAlgorithmIsSet(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(writeConfig(t, `algorithm = "bubble"`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Algorithm != sorting.Bubble || !cfg.AlgorithmSet {
		t.Fatalf("Algorithm = %v (set %v), want Bubble set", cfg.Algorithm, cfg.AlgorithmSet)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	_, err := Load(writeConfig(t, `array_size = [`))
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_UnknownAlgorithmFails(t *testing.T) {
	_, err := Load(writeConfig(t, `algorithm = "bogo"`))
	if err == nil || !strings.Contains(err.Error(), "bogo") {
		t.Fatalf("Load error = %v, want unknown algorithm error", err)
	}
}

func TestLoad_OutOfRangeValuesFail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"tiny array", "array_size = 1", "array_size"},
		{"huge array", "array_size = 5000", "array_size"},
		{"empty range", "value_range = 0", "value_range"},
		{"negative delay", "delay_ms = -1", "delay_ms"},
		{"zero frame", "frame_ms = 0", "frame_ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %s", err.Error(), tt.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
