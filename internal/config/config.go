// Package config loads gitsim configuration from YAML, git config and
// command-line overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/chmouel/gitsim/internal/store"
	"github.com/chmouel/gitsim/internal/theme"
)

const (
	defaultPrompt       = "❯ "
	defaultHistoryLimit = 100
	defaultLogLevel     = "info"
)

// AppConfig defines the gitsim configuration options.
type AppConfig struct {
	Theme         string   // Theme name: see AvailableThemes in internal/theme
	DebugLog      string   // Path of the debug log file, empty disables it
	LogLevel      string   // Minimum structured log level (debug, info, warn, error)
	Prompt        string   // Prompt glyph shown before the input line
	Banner        []string // Transcript lines shown when a session starts; nil uses the built-in greeting
	BannerSet     bool     `yaml:"-"`
	HistoryLimit  int      // Number of submitted lines kept for up/down navigation
	DefaultBranch string   // Branch the simulated repository starts on
	Seed          []store.Entry
	SeedSet       bool `yaml:"-"`
	// Path is the file the configuration was read from, if any.
	Path string `yaml:"-"`
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		LogLevel:      defaultLogLevel,
		Prompt:        defaultPrompt,
		HistoryLimit:  defaultHistoryLimit,
		DefaultBranch: "main",
		Seed:          store.DefaultSeed(),
	}
}

// detectDarkBackground is replaced in tests to avoid querying the terminal.
var detectDarkBackground = lipgloss.HasDarkBackground

func normalizeStringList(value any) []string {
	if value == nil {
		return []string{}
	}

	switch v := value.(type) {
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return []string{}
		}
		return []string{text}
	case []any:
		lines := []string{}
		for _, item := range v {
			if item == nil {
				continue
			}
			text := strings.TrimSpace(fmt.Sprintf("%v", item))
			if text != "" {
				lines = append(lines, text)
			}
		}
		return lines
	}
	return []string{}
}

// normalizeSeed accepts either a list of "key=value" strings, which keeps
// its order, or a mapping, which is sorted by key.
func normalizeSeed(value any) []store.Entry {
	entries := []store.Entry{}
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			key := strings.TrimSpace(k)
			if key == "" || v[k] == nil {
				continue
			}
			entries = append(entries, store.Entry{Key: key, Value: fmt.Sprintf("%v", v[k])})
		}
	default:
		for _, raw := range normalizeStringList(value) {
			if e, ok := store.ParseEntry(raw); ok {
				entries = append(entries, e)
			}
		}
	}
	return entries
}

func coerceInt(value any, defaultVal int) int {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return defaultVal
	case int:
		return v
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return defaultVal
		}
		if i, err := strconv.Atoi(text); err == nil {
			return i
		}
	}
	return defaultVal
}

func trimmedString(data map[string]any, key string) (string, bool) {
	raw, ok := data[key].(string)
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

// applyConfig layers data on top of cfg. Keys absent from data leave the
// current value untouched.
func applyConfig(cfg *AppConfig, data map[string]any) {
	if themeName, ok := trimmedString(data, "theme"); ok {
		if normalized := NormalizeThemeName(themeName); normalized != "" {
			cfg.Theme = normalized
		}
	}
	if debugLog, ok := trimmedString(data, "debug_log"); ok {
		cfg.DebugLog = debugLog
	}
	if logLevel, ok := trimmedString(data, "log_level"); ok {
		logLevel = strings.ToLower(logLevel)
		switch logLevel {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = logLevel
		}
	}
	// The prompt keeps its trailing space, so it is not trimmed.
	if prompt, ok := data["prompt"].(string); ok && strings.TrimSpace(prompt) != "" {
		cfg.Prompt = prompt
	}
	if branch, ok := trimmedString(data, "default_branch"); ok && !strings.ContainsAny(branch, " \t") {
		cfg.DefaultBranch = branch
	}
	if _, ok := data["banner"]; ok {
		cfg.Banner = normalizeStringList(data["banner"])
		cfg.BannerSet = true
	}
	if _, ok := data["history_limit"]; ok {
		cfg.HistoryLimit = coerceInt(data["history_limit"], cfg.HistoryLimit)
		if cfg.HistoryLimit < 0 {
			cfg.HistoryLimit = 0
		}
	}
	if _, ok := data["seed"]; ok {
		cfg.Seed = normalizeSeed(data["seed"])
		cfg.SeedSet = true
	}
}

func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()
	applyConfig(cfg, data)
	return cfg
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// ConfigDir returns the directory holding gitsim's config files.
func ConfigDir() string {
	return filepath.Clean(filepath.Join(getConfigDir(), "gitsim"))
}

// LoadConfig reads the application configuration. The YAML file is read
// first, then `gitsim.*` keys from the global and the local git config are
// layered on top. A broken YAML file yields the defaults and an error.
func LoadConfig(configPath string) (*AppConfig, error) {
	configBase := ConfigDir()

	var paths []string

	if configPath != "" {
		expanded, err := expandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		absPath, err := filepath.Abs(expanded)
		if err != nil {
			return DefaultConfig(), err
		}
		if !isPathWithin(configBase, absPath) {
			return DefaultConfig(), fmt.Errorf("config path must reside inside %s", configBase)
		}
		paths = []string{absPath}
	} else {
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	cfg := DefaultConfig()

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- path is constrained to the config directory after validation
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
		}

		applyConfig(cfg, yamlData)
		cfg.Path = path
		break
	}

	for _, globalOnly := range []bool{true, false} {
		repoPath := ""
		if !globalOnly {
			repoPath = determineRepoPath()
			if repoPath == "" {
				continue
			}
		}
		gitData, err := loadGitConfig(globalOnly, repoPath)
		if err != nil {
			continue
		}
		applyConfig(cfg, gitData)
	}

	if cfg.Theme == "" {
		if detectDarkBackground() {
			cfg.Theme = theme.DefaultDark()
		} else {
			cfg.Theme = theme.DefaultLight()
		}
	}

	return cfg, nil
}

// ApplyCLIOverrides applies --config=gitsim.key=value overrides, which take
// precedence over every other source.
func (c *AppConfig) ApplyCLIOverrides(overrides []string) error {
	data, err := parseCLIConfigOverrides(overrides)
	if err != nil {
		return err
	}
	applyConfig(c, data)
	return nil
}

// SessionBanner returns the configured banner, or fallback when none was set.
func (c *AppConfig) SessionBanner(fallback []string) []string {
	if c.BannerSet {
		return c.Banner
	}
	return fallback
}

// ExpandPath expands a leading "~" and environment variables in path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

func isPathWithin(base, target string) bool {
	base = filepath.Clean(base)
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	return true
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, known := range theme.AvailableThemes() {
		if name == known {
			return name
		}
	}
	return ""
}
