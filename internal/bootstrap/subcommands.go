package bootstrap

import (
	"fmt"
	"os"
	"strings"

	"github.com/chmouel/gitsim/internal/config"
	log "github.com/chmouel/gitsim/internal/log"
)

// configLoader remembers the flags a configuration was loaded with so the
// TUI can re-read it when the config file changes.
type configLoader struct {
	file      string
	theme     string
	branch    string
	overrides []string
}

// load reads the configuration and applies the command-line settings on
// top of it. A broken config file still yields a usable configuration
// together with the read error; invalid flags yield no configuration.
func (l configLoader) load() (*config.AppConfig, error) {
	cfg, loadErr := config.LoadConfig(l.file)
	if err := l.apply(cfg); err != nil {
		return nil, err
	}
	return cfg, loadErr
}

func (l configLoader) apply(cfg *config.AppConfig) error {
	if err := applyThemeConfig(cfg, l.theme); err != nil {
		return err
	}

	if branch := strings.TrimSpace(l.branch); branch != "" {
		if strings.ContainsAny(branch, " \t") {
			return fmt.Errorf("invalid branch name %q", l.branch)
		}
		cfg.DefaultBranch = branch
	}

	if len(l.overrides) > 0 {
		if err := cfg.ApplyCLIOverrides(l.overrides); err != nil {
			return fmt.Errorf("error applying config overrides: %w", err)
		}
	}
	return nil
}

// loadCLIConfig loads the configuration for a run. Config file errors are
// reported and the defaults are used instead.
func loadCLIConfig(l configLoader) (*config.AppConfig, error) {
	cfg, err := l.load()
	if cfg == nil {
		return nil, err
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
	return cfg, nil
}

// applyThemeConfig applies theme configuration from command line flag.
func applyThemeConfig(cfg *config.AppConfig, themeName string) error {
	if themeName == "" {
		return nil
	}

	normalized := config.NormalizeThemeName(themeName)
	if normalized == "" {
		return fmt.Errorf("unknown theme %q", themeName)
	}

	cfg.Theme = normalized
	return nil
}

// setupLogging points the debug log at the flag value or, failing that, the
// configured path. Without either, buffered lines are discarded.
func setupLogging(debugLogFlag string, cfg *config.AppConfig) {
	path := debugLogFlag
	if path == "" {
		path = cfg.DebugLog
	}

	if path == "" {
		_ = log.SetFile("")
	} else {
		if expanded, err := config.ExpandPath(path); err == nil {
			path = expanded
		}
		if err := log.SetFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
		}
		cfg.DebugLog = path
	}

	if !log.SetLevel(cfg.LogLevel) {
		fmt.Fprintf(os.Stderr, "Unknown log level %q\n", cfg.LogLevel)
	}
}

func closeLog() {
	if err := log.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing debug log: %v\n", err)
	}
}
