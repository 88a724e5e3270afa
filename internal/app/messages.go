package app

import "github.com/chmouel/gitsim/internal/config"

// Message types for the Bubble Tea app
type (
	errMsg           struct{ err error }
	configChangedMsg struct{}
	configReloadMsg  struct {
		cfg *config.AppConfig
		err error
	}
)
