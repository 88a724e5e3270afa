package config

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const gitConfigPrefix = "gitsim."

// gitConfigMock allows tests to mock git config output.
var gitConfigMock func(args []string, repoPath string) (string, error)

// runGitConfig executes git config command and returns raw output.
func runGitConfig(args []string, repoPath string) (string, error) {
	if gitConfigMock != nil {
		return gitConfigMock(args, repoPath)
	}

	cmd := exec.Command("git", args...)
	if repoPath != "" {
		cmd.Dir = repoPath
	}

	output, err := cmd.Output()
	if err != nil {
		// git config returns exit code 1 when key not found (not an error)
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return string(output), nil
}

// parseGitConfigOutput parses git config output into multi-value map.
// Input format: "gitsim.theme nord\ngitsim.seed user.name=Ada\n"
func parseGitConfigOutput(output string) map[string][]string {
	configMap := make(map[string][]string)
	if output == "" {
		return configMap
	}

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line == "" {
			continue
		}

		// SplitN keeps values containing spaces intact
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			continue
		}

		// git lowercases names and rejects underscores in them
		key := normalizeKey(strings.TrimPrefix(strings.ToLower(parts[0]), gitConfigPrefix))
		configMap[key] = append(configMap[key], parts[1])
	}

	return configMap
}

// convertGitConfigToParseConfig converts to format expected by applyConfig().
func convertGitConfigToParseConfig(gitCfg map[string][]string) map[string]any {
	result := make(map[string]any)

	for key, values := range gitCfg {
		if len(values) == 0 {
			continue
		}

		// List keys (banner, seed) become arrays, applyConfig expects []any,
		// not []string. Other keys take the last value, like git does.
		if isListKey(key) {
			anySlice := make([]any, len(values))
			for i, v := range values {
				anySlice[i] = v
			}
			result[key] = anySlice
			continue
		}

		result[key] = values[len(values)-1]
	}

	return result
}

// normalizeKey maps git-style "history-limit" to "history_limit".
func normalizeKey(key string) string {
	return strings.ReplaceAll(key, "-", "_")
}

func isListKey(key string) bool {
	return key == "banner" || key == "seed"
}

// loadGitConfig reads gitsim.* values and returns a map for applyConfig.
func loadGitConfig(globalOnly bool, repoPath string) (map[string]any, error) {
	args := []string{"config", "--get-regexp", `^gitsim\.`}

	if globalOnly {
		args = append(args, "--global")
	} else {
		args = append(args, "--local")
	}

	output, err := runGitConfig(args, repoPath)
	if err != nil {
		return nil, err
	}

	if output == "" {
		return make(map[string]any), nil
	}

	return convertGitConfigToParseConfig(parseGitConfigOutput(output)), nil
}

// isInGitRepo checks if path is in a git repository.
var isInGitRepo = func(path string) bool {
	if path == "" {
		return false
	}
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = path
	return cmd.Run() == nil
}

// determineRepoPath returns the repo path for local git config lookup.
func determineRepoPath() string {
	if wd, err := os.Getwd(); err == nil && isInGitRepo(wd) {
		return wd
	}
	return ""
}

// parseCLIConfigOverrides parses --config=gitsim.key=value format.
// Returns a map suitable for applyConfig().
func parseCLIConfigOverrides(overrides []string) (map[string]any, error) {
	result := make(map[string]any)

	for _, override := range overrides {
		parts := strings.SplitN(override, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config override: %q, expected format: gitsim.key=value (note: use = not space)", override)
		}

		fullKey := parts[0]
		value := parts[1]

		if !strings.HasPrefix(fullKey, gitConfigPrefix) {
			return nil, fmt.Errorf("config override key must start with '%s': %q", gitConfigPrefix, fullKey)
		}

		key := normalizeKey(strings.TrimPrefix(fullKey, gitConfigPrefix))
		if key == "" {
			return nil, fmt.Errorf("empty config key in override: %q", override)
		}

		if !isListKey(key) {
			// last occurrence wins for scalar keys
			result[key] = value
			continue
		}
		list, _ := result[key].([]any)
		result[key] = append(list, value)
	}

	return result, nil
}
