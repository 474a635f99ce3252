package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var helpTitles = []string{"Navigation", "Collection", "Sharing", "General"}

// renderHelp renders the help overlay from the key map groups.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(10)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 34)))
	b.WriteString("\n\n")

	groups := m.keys.FullHelp()
	for i, group := range groups {
		if i < len(helpTitles) {
			b.WriteString(styles.AccentText.Bold(true).Render(helpTitles[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}

	return renderModal(m.theme, m.width, m.height, 44, b.String())
}

// renderCommandBar renders the one-line key hint bar under the header.
func (m Model) renderCommandBar() string {
	bg := NewBgStyle(m.theme.Surface)
	styles := m.theme.Styles()

	var bindings []key.Binding
	if m.currentView == ViewActivity {
		bindings = []key.Binding{m.keys.WarningsOnly, m.keys.Escape, m.keys.Help, m.keys.Quit}
	} else {
		bindings = m.keys.ShortHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, bg.Render(h.Key, styles.AccentText)+bg.Space()+bg.Render(strings.ToLower(h.Desc), styles.MutedText))
	}
	return bg.FillLine(bg.Join(parts, "  "), m.width)
}
