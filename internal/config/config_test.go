package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/gitsim/internal/store"
	"github.com/chmouel/gitsim/internal/theme"
)

// isolateConfig points the config dir at a temp dir and stubs out git and
// terminal probing.
func isolateConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	gitConfigMock = func([]string, string) (string, error) { return "", nil }
	prevDetect := detectDarkBackground
	detectDarkBackground = func() bool { return true }
	prevInRepo := isInGitRepo
	isInGitRepo = func(string) bool { return false }
	t.Cleanup(func() {
		gitConfigMock = nil
		detectDarkBackground = prevDetect
		isInGitRepo = prevInRepo
	})

	confDir := filepath.Join(dir, "gitsim")
	require.NoError(t, os.MkdirAll(confDir, 0o750))
	return confDir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Empty(t, cfg.Theme)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "❯ ", cfg.Prompt)
	assert.Equal(t, 100, cfg.HistoryLimit)
	assert.Equal(t, "main", cfg.DefaultBranch)
	assert.Equal(t, store.DefaultSeed(), cfg.Seed)
	assert.False(t, cfg.SeedSet)
	assert.False(t, cfg.BannerSet)
}

func TestNormalizeStringList(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []string
	}{
		{name: "nil input", input: nil, expected: []string{}},
		{name: "empty string", input: "", expected: []string{}},
		{name: "single string", input: " hello ", expected: []string{"hello"}},
		{name: "list with empty elements", input: []any{"a", "", nil, 3}, expected: []string{"a", "3"}},
		{name: "unsupported type", input: 42, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeStringList(tt.input))
		})
	}
}

func TestNormalizeSeed(t *testing.T) {
	t.Run("list keeps order", func(t *testing.T) {
		got := normalizeSeed([]any{"user.name=Ada", "broken", "core.editor=code --wait"})
		assert.Equal(t, []store.Entry{
			{Key: "user.name", Value: "Ada"},
			{Key: "core.editor", Value: "code --wait"},
		}, got)
	})

	t.Run("map sorted by key", func(t *testing.T) {
		got := normalizeSeed(map[string]any{"user.name": "Ada", "core.autocrlf": false, "core.x": nil})
		assert.Equal(t, []store.Entry{
			{Key: "core.autocrlf", Value: "false"},
			{Key: "user.name", Value: "Ada"},
		}, got)
	})

	t.Run("empty list empties the store", func(t *testing.T) {
		assert.Empty(t, normalizeSeed([]any{}))
	})
}

func TestCoerceInt(t *testing.T) {
	assert.Equal(t, 5, coerceInt(nil, 5))
	assert.Equal(t, 5, coerceInt(true, 5))
	assert.Equal(t, 7, coerceInt(7, 5))
	assert.Equal(t, 12, coerceInt(" 12 ", 5))
	assert.Equal(t, 5, coerceInt("abc", 5))
}

func TestParseConfig(t *testing.T) {
	cfg := parseConfig(map[string]any{
		"theme":          "NORD",
		"debug_log":      " /tmp/gitsim.log ",
		"log_level":      "Debug",
		"prompt":         "$ ",
		"default_branch": "trunk",
		"history_limit":  -4,
		"banner":         []any{"welcome"},
		"seed":           []any{"user.name=Ada"},
	})

	assert.Equal(t, theme.NordName, cfg.Theme)
	assert.Equal(t, "/tmp/gitsim.log", cfg.DebugLog)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "$ ", cfg.Prompt)
	assert.Equal(t, "trunk", cfg.DefaultBranch)
	assert.Equal(t, 0, cfg.HistoryLimit)
	assert.Equal(t, []string{"welcome"}, cfg.Banner)
	assert.True(t, cfg.BannerSet)
	assert.Equal(t, []store.Entry{{Key: "user.name", Value: "Ada"}}, cfg.Seed)
}

func TestParseConfigIgnoresInvalidValues(t *testing.T) {
	cfg := parseConfig(map[string]any{
		"theme":          "not-a-theme",
		"log_level":      "chatty",
		"prompt":         "   ",
		"default_branch": "two words",
	})

	def := DefaultConfig()
	assert.Empty(t, cfg.Theme)
	assert.Equal(t, def.LogLevel, cfg.LogLevel)
	assert.Equal(t, def.Prompt, cfg.Prompt)
	assert.Equal(t, def.DefaultBranch, cfg.DefaultBranch)
}

func TestLoadConfigFromFile(t *testing.T) {
	confDir := isolateConfig(t)
	content := `theme: dracula
prompt: "git> "
seed:
  - user.name=Ada Lovelace
  - user.email=ada@example.com
banner:
  - Welcome back
`
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "config.yaml"), []byte(content), 0o600))

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, theme.DraculaName, cfg.Theme)
	assert.Equal(t, "git> ", cfg.Prompt)
	assert.Equal(t, filepath.Join(confDir, "config.yaml"), cfg.Path)
	assert.Equal(t, []store.Entry{
		{Key: "user.name", Value: "Ada Lovelace"},
		{Key: "user.email", Value: "ada@example.com"},
	}, cfg.Seed)
	assert.Equal(t, []string{"Welcome back"}, cfg.SessionBanner([]string{"fallback"}))
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, theme.DefaultDark(), cfg.Theme)
	assert.Empty(t, cfg.Path)
	assert.Equal(t, []string{"fallback"}, cfg.SessionBanner([]string{"fallback"}))
}

func TestLoadConfigLightBackground(t *testing.T) {
	isolateConfig(t)
	detectDarkBackground = func() bool { return false }

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, theme.DefaultLight(), cfg.Theme)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	confDir := isolateConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "config.yaml"), []byte("theme: [unclosed"), 0o600))

	cfg, err := LoadConfig("")
	require.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigExplicitPathOutsideConfigDir(t *testing.T) {
	isolateConfig(t)
	outside := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(outside, []byte("theme: nord\n"), 0o600))

	_, err := LoadConfig(outside)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must reside inside")
}

func TestLoadConfigExplicitPath(t *testing.T) {
	confDir := isolateConfig(t)
	path := filepath.Join(confDir, "teaching.yml")
	require.NoError(t, os.WriteFile(path, []byte("theme: nord\nhistory_limit: 3\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, theme.NordName, cfg.Theme)
	assert.Equal(t, 3, cfg.HistoryLimit)
}

func TestLoadConfigGitConfigLayersOverFile(t *testing.T) {
	confDir := isolateConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "config.yaml"), []byte("theme: nord\nprompt: \"> \"\n"), 0o600))

	isInGitRepo = func(string) bool { return true }
	gitConfigMock = func(args []string, _ string) (string, error) {
		if args[len(args)-1] == "--global" {
			return "gitsim.theme dracula\n", nil
		}
		return "gitsim.theme gruvbox-dark\n", nil
	}

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, theme.GruvboxDarkName, cfg.Theme)
	assert.Equal(t, "> ", cfg.Prompt)
}

func TestIsPathWithin(t *testing.T) {
	assert.True(t, isPathWithin("/a/b", "/a/b"))
	assert.True(t, isPathWithin("/a/b", "/a/b/c.yaml"))
	assert.False(t, isPathWithin("/a/b", "/a/bc"))
	assert.False(t, isPathWithin("/a/b", "/a"))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("GITSIM_TEST_DIR", "logs")

	got, err := ExpandPath("~/$GITSIM_TEST_DIR/debug.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "debug.log"), got)
}

func TestNormalizeThemeName(t *testing.T) {
	assert.Equal(t, theme.EmeraldName, NormalizeThemeName(" Emerald "))
	assert.Empty(t, NormalizeThemeName("unknown"))
}
