package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chmouel/gitsim/internal/app/services"
	"github.com/chmouel/gitsim/internal/config"
)

func (m *Model) startConfigWatcher() tea.Cmd {
	if m.config == nil || m.config.Path == "" {
		return nil
	}
	if m.watch != nil && m.watch.Started {
		return nil
	}
	if m.watch == nil {
		m.watch = services.NewConfigWatchService(m.debugf)
	}
	started, err := m.watch.Start(m.config.Path)
	if err != nil {
		return func() tea.Msg {
			return errMsg{err: err}
		}
	}
	if !started {
		return nil
	}
	return m.waitForConfigEvent()
}

func (m *Model) stopConfigWatcher() {
	if m.watch == nil || !m.watch.Started {
		return
	}
	m.watch.Stop()
}

func (m *Model) waitForConfigEvent() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	events := m.watch.NextEvent()
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		_, ok := <-events
		if !ok {
			return nil
		}
		return configChangedMsg{}
	}
}

func (m *Model) reloadConfig() tea.Cmd {
	reload := m.reload
	return func() tea.Msg {
		cfg, err := reload()
		return configReloadMsg{cfg: cfg, err: err}
	}
}

// applyReloadedConfig takes the presentation settings from cfg. The store
// seed, history limit and default branch only apply to new sessions.
func (m *Model) applyReloadedConfig(cfg *config.AppConfig) {
	if cfg == nil {
		return
	}
	m.statusErr = ""
	m.config.Prompt = cfg.Prompt
	if cfg.Theme != "" && cfg.Theme != m.config.Theme {
		m.debugf("config reload: theme %s -> %s", m.config.Theme, cfg.Theme)
		m.config.Theme = cfg.Theme
	}
	m.UpdateTheme(m.config.Theme)
	m.refreshTranscript()
}
