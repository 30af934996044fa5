package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sortviz/internal/prefs"
	"github.com/five82/sortviz/internal/sorting"
	"github.com/five82/sortviz/internal/state"
)

// Controller is the run-control surface the UI drives.
type Controller interface {
	Start(ctx context.Context, alg sorting.Algorithm) error
	Stop()
	Reset() error
	Shuffle() error
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller Controller
	Store      *state.Store
	Logger     *slog.Logger
	FrameEvery time.Duration
	Delay      time.Duration // pacing delay, shown in the header
	Algorithm  sorting.Algorithm
	ThemeName  string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	ctrl       Controller
	store      *state.Store
	logger     *slog.Logger
	prefsPath  string
	frameEvery time.Duration
	delay      time.Duration

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Selector state
	selected sorting.Algorithm

	// Data state
	snapshot state.Snapshot
	version  uint64

	// badge is the run state shown in the header. Completed stays up after
	// a run until the next start, reset or shuffle.
	badge state.RunState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	frameEvery := opts.FrameEvery
	if frameEvery <= 0 {
		frameEvery = DefaultFrameInterval
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	selected := opts.Algorithm
	if !selected.Valid() {
		selected = sorting.Bubble
	}

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot

	m := Model{
		ctx:        ctx,
		ctrl:       opts.Controller,
		store:      opts.Store,
		logger:     logger,
		prefsPath:  opts.PrefsPath,
		frameEvery: frameEvery,
		delay:      opts.Delay,
		theme:      GetTheme(themeName),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		spinner:    spin,
		selected:   selected,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.frameEvery), m.spinner.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case frameMsg:
		m.refresh()
		return m, frameCmd(m.frameEvery)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// running reports whether the latest snapshot shows an active run.
func (m Model) running() bool {
	return m.snapshot.Running()
}

// refresh pulls the latest snapshot when the store has moved on.
func (m *Model) refresh() {
	if m.store == nil {
		return
	}
	if v := m.store.Version(); v == m.version && v != 0 {
		return
	}
	m.snapshot = m.store.Snapshot()
	m.version = m.snapshot.Version
	m.keys.setRunning(m.running())

	switch {
	case m.snapshot.Run != state.Idle:
		m.badge = m.snapshot.Run
	case m.badge == state.Running:
		// The run ended between two frames.
		m.badge = state.Completed
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.ctrl != nil {
			m.ctrl.Stop()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Start):
		if m.control("start", func(c Controller) error { return c.Start(m.ctx, m.selected) }) {
			m.badge = state.Running
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		if m.control("reset", Controller.Reset) {
			m.badge = state.Idle
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Shuffle):
		if m.control("shuffle", Controller.Shuffle) {
			m.badge = state.Idle
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Stop):
		m.control("stop", func(c Controller) error { c.Stop(); return nil })
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.NextAlgorithm):
		m.selectAlgorithm(m.selected.Next())
		return m, nil

	case key.Matches(msg, m.keys.PrevAlgorithm):
		m.selectAlgorithm(m.selected.Prev())
		return m, nil

	case key.Matches(msg, m.keys.SelectAlgorithm):
		idx := int(msg.String()[0] - '1')
		if all := sorting.All(); idx >= 0 && idx < len(all) {
			m.selectAlgorithm(all[idx])
		}
		return m, nil
	}

	return m, nil
}

// control invokes a run-control action and reports whether it was accepted.
// Rejections (a run already active, or reset/shuffle during a run) are
// expected and ignored.
func (m *Model) control(name string, action func(Controller) error) bool {
	if m.ctrl == nil {
		return false
	}
	if err := action(m.ctrl); err != nil {
		m.logger.Debug("action ignored", "action", name, "error", err)
		return false
	}
	return true
}

func (m *Model) selectAlgorithm(alg sorting.Algorithm) {
	if m.running() || alg == m.selected {
		return
	}
	m.selected = alg
	m.savePrefs()
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Algorithm: m.selected, HasAlgorithm: true}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save preferences failed", "path", m.prefsPath, "error", err)
	}
}

// renderMain renders the full screen: header, command bar, chart, legend
// and footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	chartRows := m.height - chromeRows
	if chartRows < minChartRows {
		chartRows = minChartRows
	}
	b.WriteString(renderBars(m.snapshot, m.theme, m.width, chartRows))
	b.WriteString("\n")
	b.WriteString(renderLegend(m.theme))
	b.WriteString("\n")
	b.WriteString(m.theme.Styles().Footer.Render(m.help.View(m.keys)))

	return b.String()
}

// Messages

type frameMsg time.Time

// Commands

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a snapshot store")
	}
	if opts.Controller == nil {
		return fmt.Errorf("ui requires a run controller")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// Interrupted by signal: a normal shutdown.
		return nil
	}
	return err
}
