package config

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitConfigOutput(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected map[string][]string
	}{
		{
			name: "single values",
			output: `gitsim.theme nord
gitsim.prompt >>`,
			expected: map[string][]string{
				"theme":  {"nord"},
				"prompt": {">>"},
			},
		},
		{
			name: "multi-value keys",
			output: `gitsim.seed user.name=Ada
gitsim.seed core.editor=code --wait
gitsim.theme dracula`,
			expected: map[string][]string{
				"seed":  {"user.name=Ada", "core.editor=code --wait"},
				"theme": {"dracula"},
			},
		},
		{
			name:     "dashed keys become underscored",
			output:   "gitsim.history-limit 5\ngitsim.default-branch trunk",
			expected: map[string][]string{"history_limit": {"5"}, "default_branch": {"trunk"}},
		},
		{
			name:     "empty output",
			output:   "",
			expected: map[string][]string{},
		},
		{
			name:     "whitespace only",
			output:   "   \n\n  ",
			expected: map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseGitConfigOutput(tt.output))
		})
	}
}

func TestConvertGitConfigToParseConfig(t *testing.T) {
	result := convertGitConfigToParseConfig(map[string][]string{
		"theme":  {"nord", "dracula"},
		"seed":   {"user.name=Ada"},
		"banner": {"hello", "world"},
	})

	assert.Equal(t, "dracula", result["theme"])
	assert.Equal(t, []any{"user.name=Ada"}, result["seed"])
	assert.Equal(t, []any{"hello", "world"}, result["banner"])
}

func TestLoadGitConfigArgs(t *testing.T) {
	var gotArgs [][]string
	gitConfigMock = func(args []string, repoPath string) (string, error) {
		gotArgs = append(gotArgs, args)
		if strings.Contains(strings.Join(args, " "), "--global") {
			return "gitsim.theme nord\n", nil
		}
		return "", nil
	}
	t.Cleanup(func() { gitConfigMock = nil })

	global, err := loadGitConfig(true, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"theme": "nord"}, global)

	local, err := loadGitConfig(false, "/repo")
	require.NoError(t, err)
	assert.Empty(t, local)

	require.Len(t, gotArgs, 2)
	assert.Equal(t, []string{"config", "--get-regexp", `^gitsim\.`, "--global"}, gotArgs[0])
	assert.Equal(t, "--local", gotArgs[1][len(gotArgs[1])-1])
}

func TestLoadGitConfigError(t *testing.T) {
	gitConfigMock = func([]string, string) (string, error) {
		return "", fmt.Errorf("git exploded")
	}
	t.Cleanup(func() { gitConfigMock = nil })

	_, err := loadGitConfig(true, "")
	require.Error(t, err)
}

func TestParseCLIConfigOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides []string
		expected  map[string]any
		wantErr   string
	}{
		{
			name:      "scalar",
			overrides: []string{"gitsim.theme=nord"},
			expected:  map[string]any{"theme": "nord"},
		},
		{
			name:      "scalar last wins",
			overrides: []string{"gitsim.theme=nord", "gitsim.theme=dracula"},
			expected:  map[string]any{"theme": "dracula"},
		},
		{
			name:      "seed keeps equals in value",
			overrides: []string{"gitsim.seed=user.name=Ada", "gitsim.seed=alias.co=checkout"},
			expected:  map[string]any{"seed": []any{"user.name=Ada", "alias.co=checkout"}},
		},
		{
			name:      "dashed key",
			overrides: []string{"gitsim.history-limit=3"},
			expected:  map[string]any{"history_limit": "3"},
		},
		{
			name:      "missing equals",
			overrides: []string{"gitsim.theme"},
			wantErr:   "invalid config override",
		},
		{
			name:      "wrong prefix",
			overrides: []string{"core.theme=nord"},
			wantErr:   "must start with 'gitsim.'",
		},
		{
			name:      "empty key",
			overrides: []string{"gitsim.=x"},
			wantErr:   "empty config key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseCLIConfigOverrides(tt.overrides)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestApplyCLIOverrides(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyCLIOverrides([]string{
		"gitsim.theme=nord",
		"gitsim.seed=user.name=Ada",
		"gitsim.default-branch=trunk",
	}))

	assert.Equal(t, "nord", cfg.Theme)
	assert.Equal(t, "trunk", cfg.DefaultBranch)
	require.Len(t, cfg.Seed, 1)
	assert.Equal(t, "Ada", cfg.Seed[0].Value)
	assert.True(t, cfg.SeedSet)

	require.Error(t, cfg.ApplyCLIOverrides([]string{"theme=nord"}))
}
