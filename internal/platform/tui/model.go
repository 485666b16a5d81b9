package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boat-runner/internal/core"
	"github.com/vovakirdan/boat-runner/internal/registry"
	"github.com/vovakirdan/boat-runner/internal/replay"
	"github.com/vovakirdan/boat-runner/internal/storage"
)

// Model is the Bubble Tea model that runs one game session.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	keys     *KeyMapper
	config   core.RuntimeConfig
	logger   *log.Logger
	pending  core.InputFrame // edge actions waiting for the next tick
	steer    *steering
	lastTick time.Time
	status   core.Status
	quitting bool
}

// NewModel creates a model for a game that has already been Reset.
// A nil logger discards log output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   NewKeyMapper(),
		config: cfg,
		logger: logger,
		steer:  &steering{},
		status: game.Status(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionSteerLeft, core.ActionSteerRight:
		m.steer.press(action, now)
	case core.ActionStart, core.ActionReset:
		m.pending.Set(action)
	}
	return m, nil
}

// handleTick advances the game clock by the time since the last frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(max(m.config.TickRate, 1))
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	in := m.pending
	m.steer.apply(&in, now)

	result := m.game.Step(dt, in)
	if result.Ticks > 0 {
		m.pending.Clear()
	}
	m.status = result.Status
	m.logEvents(result.Events)

	return m, tickCmd(m.config.TickRate)
}

// logEvents writes game events to the session log. Lifecycle changes are
// logged at info, everything else at debug.
func (m Model) logEvents(events []core.Event) {
	for _, ev := range events {
		if ev.Name == "state_changed" {
			m.logger.Info(ev.Name, ev.Attrs...)
		} else {
			m.logger.Debug(ev.Name, ev.Attrs...)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".boatrunner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Status returns the last status reported by the game.
func (m Model) Status() core.Status {
	return m.status
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Recordable is implemented by games that record their input for replays.
type Recordable interface {
	Recording() replay.Recording
}

// SaveRecording stores the game's recorded session, if it has one.
// Returns the replay ID, or 0 when nothing was stored.
func SaveRecording(store *storage.Store, game registry.Game, player string, logger *log.Logger) (int64, error) {
	rg, ok := game.(Recordable)
	if !ok || store == nil {
		return 0, nil
	}
	id, sum, err := replay.Save(store, rg.Recording(), player)
	if err != nil {
		return 0, err
	}
	if id != 0 && logger != nil {
		logger.Info("replay saved",
			"id", id,
			"player", player,
			"ticks", sum.Ticks,
			"runs", sum.Runs,
			"best", fmt.Sprintf("%.1f", sum.BestDistance),
		)
	}
	return id, nil
}

// Run resets the game and runs it in the terminal until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return err
	}
	if logger != nil {
		logger.Info("session started", "game", game.ID(), "seed", cfg.Seed)
	}

	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
