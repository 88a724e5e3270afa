package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/chmouel/gitsim/internal/shell"
)

// outputIndent is prepended to every non-echo transcript line.
const outputIndent = "  "

// View renders the session for the Bubble Tea program.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Wait for window size before rendering full UI
	if m.windowWidth == 0 || m.windowHeight == 0 {
		return "Loading..."
	}

	body := m.viewport.View()
	if w := m.statePaneWidth(); w > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderStatePane(w, m.viewport.Height))
	}

	sections := []string{
		m.renderHeader(),
		body,
		m.input.View(),
		m.renderFooter(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTranscript styles every transcript entry for a pane width wide.
// Echo lines use the accent colour, output lines are indented and muted.
// Entries may span several lines, each of which is wrapped separately.
func (m *Model) renderTranscript(width int) string {
	if m.session == nil {
		return ""
	}
	var b strings.Builder
	for i, entry := range m.session.Transcript {
		if i > 0 {
			b.WriteByte('\n')
		}
		if shell.IsEcho(entry) {
			b.WriteString(m.styles.echo.Render(wrapLine(entry, width)))
			continue
		}
		lines := strings.Split(entry, "\n")
		for j, line := range lines {
			if j > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(m.styles.output.Render(indent(wrapLine(line, width-len(outputIndent)))))
		}
	}
	return b.String()
}

// wrapLine word-wraps s at width, hard-wrapping words longer than width.
func wrapLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wrap.String(wordwrap.String(s, width), width)
}

func indent(s string) string {
	return outputIndent + strings.ReplaceAll(s, "\n", "\n"+outputIndent)
}
