package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/memoix/internal/model"
)

// renderHeader renders the status bar: logo, counts, filter and health.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("memoix", styles.Logo)}

	switch {
	case m.snapshot.IsDegraded():
		last := "never"
		if !m.snapshot.LastUpdated.IsZero() {
			last = m.snapshot.LastUpdated.Format("15:04:05")
		}
		parts = append(parts,
			bg.Render("● DATABASE ERROR", styles.DangerText),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
			bg.Render(last, styles.MutedText))
	case !m.snapshot.Loaded:
		parts = append(parts, bg.Render("Opening collection...", styles.WarningText.Bold(true)))
	default:
		parts = append(parts,
			bg.Render("Total:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", len(m.snapshot.Records)), styles.Text),
			bg.Render("★", styles.WarningText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", m.snapshot.Favorites()), styles.Text))
		if m.width >= LayoutCompactWidth {
			counts := m.snapshot.Counts()
			for _, k := range model.Kinds() {
				if counts[k] == 0 {
					continue
				}
				parts = append(parts,
					bg.Render(k.Label()+":", styles.MutedText)+bg.Space()+
						bg.Render(fmt.Sprintf("%d", counts[k]), styles.Text))
			}
		}
		parts = append(parts,
			bg.Render("Filter:", styles.MutedText)+bg.Space()+
				bg.Render(m.filterLabel(), styles.AccentText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Join(parts, "  "))
}

// renderFooter shows the flash message, or the last refresh time.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var content string
	switch {
	case m.flash.text != "":
		style := ternaryStyle(m.flash.isError, styles.DangerText, styles.SuccessText)
		content = bg.Render(m.flash.text, style)
	case m.snapshot.LastError != nil:
		content = bg.Render("last refresh failed: "+m.snapshot.LastError.Error(), styles.WarningText)
	case !m.lastUpdated.IsZero():
		content = bg.Render("updated "+m.lastUpdated.Format("15:04:05"), styles.FaintText)
	}
	return bg.FillLine(content, m.width)
}

func ternaryStyle(cond bool, a, b lipgloss.Style) lipgloss.Style {
	if cond {
		return a
	}
	return b
}
