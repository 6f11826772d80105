package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// Model is the Bubble Tea model for one game session. Ticks and key
// presses both arrive as messages on the same Update, so the session is
// only ever mutated by one handler at a time; a key press lands before
// or after a tick, never inside one.
type Model struct {
	session  *invaders.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger // optional diagnostic sink, may be nil
	quitting bool
}

// NewModel creates a model with a fresh session. logger may be nil to
// disable the diagnostic log; it never affects simulation behavior.
func NewModel(logger *log.Logger) Model {
	return Model{
		session: invaders.NewSession(),
		screen:  core.NewScreen(invaders.ScreenWidth, invaders.ScreenHeight),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey applies a single key press to the session. Bubble Tea calls
// View after every Update, so each key press repaints the board
// immediately, independent of the tick clock.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	if m.logger != nil {
		m.logger.Debug("key action", "action", action.String(), "player", m.session.PlayerPos())
	}
	m.session.Apply(action)

	if action == core.ActionQuit {
		m.quitting = true
		if m.logger != nil {
			m.logger.Info("session terminated by player", "enemies_left", m.session.EnemyCount())
		}
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the simulation one step and schedules the next
// tick. Once the session has terminated no further ticks are scheduled
// and nothing is rendered for the cycle.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.session.Running() {
		return m, nil
	}

	before := m.session.EnemyCount()
	m.session.Tick()

	if m.logger != nil {
		if hits := before - m.session.EnemyCount(); hits > 0 {
			m.logger.Debug("enemies destroyed", "count", hits, "remaining", m.session.EnemyCount())
		}
	}
	return m, tickCmd()
}

// View renders the board plus the control hint caption.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local terminal session and
// blocks until the player quits.
func Run(logger *log.Logger) error {
	p := tea.NewProgram(NewModel(logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
