package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ecoris/internal/core"
	"github.com/vovakirdan/ecoris/internal/registry"
	"github.com/vovakirdan/ecoris/internal/storage"
)

// Options configures a scene host.
type Options struct {
	Deps       registry.Deps
	Store      *storage.Store // nil disables result persistence
	Runtime    core.RuntimeConfig
	StartScene string
	Difficulty string
}

// Model is the Bubble Tea model hosting one scene at a time. It measures
// frame time, saves finished sessions and switches scenes on request.
type Model struct {
	deps       registry.Deps
	store      *storage.Store
	config     core.RuntimeConfig
	difficulty string
	logger     *log.Logger

	scene      registry.Scene
	screen     *core.Screen
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model

	lastTick     time.Time
	loads        int
	savedSession string // Session whose result has been stored
	err          error
	quitting     bool
}

// NewModel creates the host and loads the start scene. An error means the
// scene could not be built and the game must not start.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	opts.Deps.Logger = logger

	for _, id := range []string{opts.Deps.Config.Scenes.Title, opts.Deps.Config.Scenes.Play} {
		if !registry.Exists(id) {
			return Model{}, fmt.Errorf("tui: unknown scene %q", id)
		}
	}

	start := opts.StartScene
	if start == "" {
		start = opts.Deps.Config.Scenes.Title
	}

	m := Model{
		deps:       opts.Deps,
		store:      opts.Store,
		config:     cfg,
		difficulty: opts.Difficulty,
		logger:     logger,
		screen:     core.NewScreen(cfg.ScreenW, screenHeight(cfg.ScreenH)),
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMap(opts.Deps.Config.Controls.Handedness),
		help:       help.New(),
	}
	m.help.Width = cfg.ScreenW

	if err := m.load(start); err != nil {
		return Model{}, err
	}
	return m, nil
}

// screenHeight leaves the bottom row to the help line.
func screenHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// load replaces the current scene with a fresh instance of id.
func (m *Model) load(id string) error {
	scene, err := registry.Create(id, m.deps)
	if err != nil {
		return err
	}

	rc := m.config
	rc.Seed += int64(m.loads)
	if err := scene.Reset(rc); err != nil {
		return fmt.Errorf("tui: cannot start scene %q: %w", id, err)
	}

	m.loads++
	m.scene = scene
	m.gameState = scene.State()
	m.logger.Info("scene loaded", "scene", id)
	return nil
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The scene keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, screenHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the scene by the measured frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.scene.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.saveResult()

	if result.NextScene != "" {
		if err := m.load(result.NextScene); err != nil {
			m.logger.Error("scene switch failed", "scene", result.NextScene, "err", err)
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveResult stores a finished session once. Storage errors are logged and
// the game continues.
func (m *Model) saveResult() {
	st := m.gameState
	if !st.Finished || st.SessionID == "" || st.SessionID == m.savedSession {
		return
	}
	m.savedSession = st.SessionID

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		SessionID:  st.SessionID,
		Score:      st.Score,
		Lines:      st.Lines,
		Title:      st.Title,
		Outcome:    st.Outcome,
		Difficulty: m.difficulty,
	})
	if err != nil {
		m.logger.Warn("cannot save result", "session", st.SessionID, "err", err)
		return
	}
	m.logger.Info("result saved", "session", st.SessionID, "score", st.Score, "outcome", st.Outcome)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.scene.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".ecoris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.scene.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Scene returns the active scene.
func (m Model) Scene() registry.Scene {
	return m.scene
}

// Err returns the error that stopped the host, if any.
func (m Model) Err() error {
	return m.err
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.scene.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with a new host.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
