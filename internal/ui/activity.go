package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap/zapcore"

	"github.com/five82/memoix/internal/logtail"
)

// activityState holds the parsed tail of the log file.
type activityState struct {
	entries  []logtail.Entry
	err      error
	loaded   bool
	warnOnly bool
}

type activityMsg struct {
	entries []logtail.Entry
	err     error
}

func loadActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return activityMsg{}
		}
		entries, err := logtail.Tail(path, ActivityLineLimit)
		return activityMsg{entries: entries, err: err}
	}
}

func (m Model) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.WarningsOnly) {
		m.activity.warnOnly = !m.activity.warnOnly
		m.updateActivityViewport()
		return m, nil
	}
	m.scrollViewport(&m.activityViewport, msg)
	return m, nil
}

func (m Model) visibleEntries() []logtail.Entry {
	if m.activity.warnOnly {
		return logtail.AtLeast(m.activity.entries, zapcore.WarnLevel)
	}
	return m.activity.entries
}

func (m *Model) updateActivityViewport() {
	if !m.ready {
		return
	}
	atBottom := m.activityViewport.AtBottom() || m.activityViewport.TotalLineCount() == 0
	m.activityViewport.Width = max(m.width-4, 10)
	m.activityViewport.Height = max(m.contentHeight()-2, 1)
	m.activityViewport.SetContent(m.renderActivityContent())
	if atBottom {
		m.activityViewport.GotoBottom()
	}
}

func (m Model) renderActivityContent() string {
	styles := m.theme.Styles()
	switch {
	case m.activity.err != nil:
		return styles.DangerText.Render("Could not read log: " + m.activity.err.Error())
	case m.logPath == "":
		return styles.MutedText.Render("Logging is disabled")
	case !m.activity.loaded:
		return styles.MutedText.Render("Reading log...")
	}

	entries := m.visibleEntries()
	if len(entries) == 0 {
		return styles.MutedText.Render("No activity yet")
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, m.levelStyle(e.Level).Render(e.String()))
	}
	return strings.Join(lines, "\n")
}

func (m Model) levelStyle(level zapcore.Level) lipgloss.Style {
	styles := m.theme.Styles()
	switch {
	case level >= zapcore.ErrorLevel:
		return styles.DangerText
	case level == zapcore.WarnLevel:
		return styles.WarningText
	case level == zapcore.DebugLevel:
		return styles.FaintText
	default:
		return styles.Text
	}
}

// renderActivity renders the log view box.
func (m Model) renderActivity() string {
	title := "Activity"
	if m.logPath != "" {
		title = fmt.Sprintf("Activity %s", truncateMiddle(m.logPath, max(m.width/2, 20)))
	}
	if m.activity.warnOnly {
		title += " (warnings)"
	}
	return m.renderTitledBox(title, m.activityViewport.View(), m.width, m.contentHeight(), true)
}
