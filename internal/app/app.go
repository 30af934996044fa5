package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/five82/sortviz/internal/config"
	"github.com/five82/sortviz/internal/prefs"
	"github.com/five82/sortviz/internal/runner"
	"github.com/five82/sortviz/internal/sorting"
	"github.com/five82/sortviz/internal/state"
	"github.com/five82/sortviz/internal/ui"
)

// shutdownTimeout bounds how long Run waits for an active sort to unwind
// after the UI exits.
const shutdownTimeout = 2 * time.Second

// Options configure the sortviz application. Zero values defer to the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/sortviz/prefs.toml
	Algorithm  string // algorithm name; overrides config and prefs
	DelayMS    int    // pacing delay; negative means unset
	Size       int    // array length; zero means unset
	Debug      bool   // write logs to the configured log file
}

// Run boots the sortviz TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	cfg, err = applyOptions(cfg, userPrefs, opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(opts.Debug, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	store := &state.Store{}
	driver, err := runner.New(runner.Options{
		Store:     store,
		Logger:    logger,
		Size:      cfg.ArraySize,
		Min:       cfg.MinValue,
		Span:      cfg.ValueRange,
		Delay:     cfg.Delay,
		Algorithm: cfg.Algorithm,
	})
	if err != nil {
		return fmt.Errorf("init runner: %w", err)
	}
	logger.Info("sortviz starting",
		"size", cfg.ArraySize,
		"min", cfg.MinValue,
		"max", cfg.MaxValue(),
		"delay", cfg.Delay,
		"algorithm", cfg.Algorithm.Key())

	uiErr := ui.Run(ui.Options{
		Context:    ctx,
		Controller: driver,
		Store:      store,
		Logger:     logger,
		FrameEvery: cfg.FrameEvery,
		Delay:      driver.Delay(),
		Algorithm:  cfg.Algorithm,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  prefsPath,
	})

	driver.Stop()
	waitCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := driver.Wait(waitCtx); err != nil {
		logger.Warn("run did not stop before exit", "error", err)
	}
	return uiErr
}

// applyOptions layers preferences and command-line overrides on top of the
// loaded config. The remembered algorithm only applies when neither the
// config file nor the command line named one.
func applyOptions(cfg config.Config, p prefs.Prefs, opts Options) (config.Config, error) {
	if p.HasAlgorithm && !cfg.AlgorithmSet {
		cfg.Algorithm = p.Algorithm
	}
	if name := strings.TrimSpace(opts.Algorithm); name != "" {
		alg, err := sorting.ParseAlgorithm(name)
		if err != nil {
			return config.Config{}, fmt.Errorf("-algo: %w", err)
		}
		cfg.Algorithm = alg
	}
	if opts.DelayMS >= 0 {
		cfg.Delay = time.Duration(opts.DelayMS) * time.Millisecond
	}
	if opts.Size != 0 {
		cfg.ArraySize = opts.Size
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

// newLogger returns a file-backed JSON logger when debug is set and a
// discarding logger otherwise, since the terminal belongs to the UI.
func newLogger(debug bool, path string) (*slog.Logger, func(), error) {
	if !debug {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	file, err := openLogFile(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { _ = file.Close() }, nil
}
