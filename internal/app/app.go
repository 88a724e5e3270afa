// Package app implements the interactive terminal front end: a scrollable
// transcript above a single-line prompt, driven by the shell interpreter.
package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chmouel/gitsim/internal/app/services"
	"github.com/chmouel/gitsim/internal/config"
	log "github.com/chmouel/gitsim/internal/log"
	"github.com/chmouel/gitsim/internal/shell"
	"github.com/chmouel/gitsim/internal/store"
	"github.com/chmouel/gitsim/internal/theme"
)

const (
	headerHeight = 1
	// input line and status line
	footerHeight = 2
	inputLimit   = 256

	// The state pane is shown only on windows at least this wide.
	statePaneMinWindow = 72
	statePaneMaxWidth  = 36
)

// Model is the Bubble Tea model of one simulator session.
type Model struct {
	config  *config.AppConfig
	theme   *theme.Theme
	styles  styles
	interp  *shell.Interpreter
	store   *store.Store
	session *shell.Session

	input    textinput.Model
	viewport viewport.Model
	history  *History

	watch  *services.ConfigWatchService
	reload func() (*config.AppConfig, error)

	statusErr    string
	windowWidth  int
	windowHeight int
	quitting     bool
}

// Option configures a Model.
type Option func(*Model)

// WithReloader sets how the configuration is re-read when the config file
// changes. The default reloads cfg.Path.
func WithReloader(fn func() (*config.AppConfig, error)) Option {
	return func(m *Model) {
		m.reload = fn
	}
}

// NewModel creates the model for a session over st and sess.
func NewModel(cfg *config.AppConfig, interp *shell.Interpreter, st *store.Store, sess *shell.Session, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ti := textinput.New()
	ti.Placeholder = `type "help"`
	ti.CharLimit = inputLimit
	ti.Focus()

	m := &Model{
		config:   cfg,
		interp:   interp,
		store:    st,
		session:  sess,
		input:    ti,
		viewport: viewport.New(80, 20),
		history:  NewHistory(cfg.HistoryLimit),
	}
	m.reload = func() (*config.AppConfig, error) {
		return config.LoadConfig(m.config.Path)
	}
	for _, opt := range opts {
		opt(m)
	}
	m.UpdateTheme(cfg.Theme)
	m.refreshTranscript()
	return m
}

// Init starts the cursor blink and the config watcher.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startConfigWatcher())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setWindowSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case configChangedMsg:
		m.watch.ResetWaiting()
		if !m.watch.ShouldReload(time.Now()) {
			return m, m.waitForConfigEvent()
		}
		return m, tea.Batch(m.reloadConfig(), m.waitForConfigEvent())

	case configReloadMsg:
		if msg.err != nil {
			m.statusErr = fmt.Sprintf("config reload failed: %v", msg.err)
			m.debugf("config reload failed: %v", msg.err)
			return m, nil
		}
		m.applyReloadedConfig(msg.cfg)
		return m, nil

	case errMsg:
		m.statusErr = msg.err.Error()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+d":
		return m.quit()

	case "enter":
		return m.submit()

	case "up":
		if value, ok := m.history.Prev(m.input.Value()); ok {
			m.input.SetValue(value)
			m.input.CursorEnd()
		}
		return m, nil

	case "down":
		if value, ok := m.history.Next(); ok {
			m.input.SetValue(value)
			m.input.CursorEnd()
		}
		return m, nil

	case "pgup":
		m.viewport.PageUp()
		return m, nil

	case "pgdown":
		m.viewport.PageDown()
		return m, nil

	case "ctrl+l":
		return m.submitLine("clear")
	}

	// Typing stops history browsing
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace || msg.Type == tea.KeyDelete {
		m.history.Reset()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.history.Add(line)
	return m.submitLine(line)
}

func (m *Model) submitLine(line string) (tea.Model, tea.Cmd) {
	res := m.interp.Run(line, m.store, m.session)
	if res.ExitRequested {
		return m.quit()
	}
	m.statusErr = ""
	m.refreshTranscript()
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.stopConfigWatcher()
	return m, tea.Quit
}

func (m *Model) setWindowSize(width, height int) {
	m.windowWidth = width
	m.windowHeight = height
	m.viewport.Width = max(1, width-m.statePaneWidth())
	m.viewport.Height = max(1, height-headerHeight-footerHeight)
	m.input.Width = max(1, width-lipgloss.Width(m.input.Prompt)-1)
	m.refreshTranscript()
}

// refreshTranscript re-renders the session transcript and scrolls to the
// newest entry.
func (m *Model) refreshTranscript() {
	m.viewport.SetContent(m.renderTranscript(m.viewport.Width))
	m.viewport.GotoBottom()
}

// Store returns the configuration store the session mutates.
func (m *Model) Store() *store.Store {
	return m.store
}

// Session returns the session driven by the model.
func (m *Model) Session() *shell.Session {
	return m.session
}

// Quitting reports whether the model has requested the program to stop.
func (m *Model) Quitting() bool {
	return m.quitting
}

func (m *Model) debugf(format string, args ...any) {
	log.Printf(format, args...)
}
