package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/chmouel/gitsim/internal/theme"
)

type styles struct {
	echo   lipgloss.Style
	output lipgloss.Style
	prompt lipgloss.Style
	text   lipgloss.Style
	muted  lipgloss.Style
	error  lipgloss.Style
}

// UpdateTheme refreshes UI styles for the selected theme.
func (m *Model) UpdateTheme(themeName string) {
	thm := theme.GetTheme(themeName)
	m.theme = thm

	m.styles = styles{
		echo:   lipgloss.NewStyle().Foreground(thm.Accent).Bold(true),
		output: lipgloss.NewStyle().Foreground(thm.MutedFg),
		prompt: lipgloss.NewStyle().Foreground(thm.Accent).Bold(true),
		text:   lipgloss.NewStyle().Foreground(thm.TextFg),
		muted:  lipgloss.NewStyle().Foreground(thm.MutedFg),
		error:  lipgloss.NewStyle().Foreground(thm.ErrorFg),
	}

	m.input.Prompt = m.config.Prompt
	m.input.PromptStyle = m.styles.prompt
	m.input.TextStyle = m.styles.text
	m.input.PlaceholderStyle = m.styles.muted
	m.input.Cursor.Style = lipgloss.NewStyle().Foreground(thm.Accent)
}

// renderHeader renders the title bar.
func (m *Model) renderHeader() string {
	headerStyle := lipgloss.NewStyle().
		Background(m.theme.AccentDim).
		Foreground(m.theme.TextFg).
		Bold(true).
		Width(m.windowWidth).
		Padding(0, 2).Align(lipgloss.Center)

	return headerStyle.Render("gitsim  •  git config playground")
}

// renderFooter renders the status line: branch, store size, key hints and
// the last error, if any.
func (m *Model) renderFooter() string {
	footerStyle := lipgloss.NewStyle().
		Foreground(m.theme.TextFg).
		Background(m.theme.BorderDim).
		Width(m.windowWidth).
		MaxHeight(1).
		Padding(0, 1)

	parts := []string{
		m.renderKeyHint("branch", m.session.CurrentBranch),
		m.renderKeyHint("keys", fmt.Sprintf("%d", m.store.Len())),
	}
	if m.statusErr != "" {
		parts = append(parts, m.styles.error.Render(m.statusErr))
	} else {
		parts = append(parts,
			m.renderKeyHint("↑/↓", "History"),
			m.renderKeyHint("PgUp/PgDn", "Scroll"),
			m.renderKeyHint("Ctrl+C", "Quit"),
		)
	}
	return footerStyle.Render(strings.Join(parts, "  "))
}

// statePaneWidth returns the width of the state pane, 0 when the window is
// too narrow to show it next to the transcript.
func (m *Model) statePaneWidth() int {
	if m.windowWidth < statePaneMinWindow {
		return 0
	}
	return min(statePaneMaxWidth, m.windowWidth/3)
}

// renderStatePane lists the live configuration store, one "key  value" row
// per entry in store order.
func (m *Model) renderStatePane(width, height int) string {
	// border and padding on both sides
	innerWidth := width - 4
	innerHeight := max(1, height-2)

	titleStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(m.theme.Accent)

	lines := []string{titleStyle.Render("Active State")}
	entries := m.store.Entries()
	if len(entries) == 0 {
		lines = append(lines, m.styles.muted.Render("(empty)"))
	}
	room := innerHeight - 1
	for i, e := range entries {
		if i == room-1 && len(entries) > room {
			lines = append(lines, m.styles.muted.Render(fmt.Sprintf("+%d more", len(entries)-i)))
			break
		}
		lines = append(lines, m.renderStateRow(e.Key, e.Value, innerWidth, keyStyle))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderDim).
		Padding(0, 1).
		Width(width - 2).
		Height(innerHeight).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

// renderStateRow puts key on the left and value on the right of a row
// width cells wide, truncating both to fit.
func (m *Model) renderStateRow(key, value string, width int, keyStyle lipgloss.Style) string {
	key = truncate.StringWithTail(key, uint(max(1, width-2)), "…") // #nosec G115 -- width is positive
	valueWidth := width - lipgloss.Width(key) - 2
	if valueWidth < 1 {
		return keyStyle.Render(key)
	}
	value = truncate.StringWithTail(value, uint(valueWidth), "…") // #nosec G115 -- width is positive
	gap := width - lipgloss.Width(key) - lipgloss.Width(value)
	return keyStyle.Render(key) + strings.Repeat(" ", gap) + m.styles.text.Render(value)
}

func (m *Model) renderKeyHint(key, label string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(m.theme.AccentFg).
		Background(m.theme.Accent).
		Bold(true).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Accent)
	return fmt.Sprintf("%s %s", keyStyle.Render(key), labelStyle.Render(label))
}
