package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/memoix/internal/model"
)

// visibleRecords returns the snapshot narrowed by the kind and favourite
// filters, in stored (name) order.
func (m Model) visibleRecords() []model.Record {
	return m.snapshot.Filter(m.kindFilter, m.favoritesOnly)
}

func (m Model) selectedRecord() model.Record {
	items := m.visibleRecords()
	if m.selectedRow < 0 || m.selectedRow >= len(items) {
		return nil
	}
	return items[m.selectedRow]
}

func (m *Model) selectUUID(uuid string) bool {
	if uuid == "" {
		return false
	}
	for i, r := range m.visibleRecords() {
		if r.Ref().UUID == uuid {
			m.selectedRow = i
			return true
		}
	}
	return false
}

func (m *Model) clampSelection() {
	n := len(m.visibleRecords())
	if m.selectedRow >= n {
		m.selectedRow = n - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

func (m *Model) moveSelection(msg tea.KeyMsg) {
	n := len(m.visibleRecords())
	if n == 0 {
		return
	}
	half := max(m.listHeight()/2, 1)
	before := m.selectedRow
	switch {
	case key.Matches(msg, m.keys.Down):
		m.selectedRow++
	case key.Matches(msg, m.keys.Up):
		m.selectedRow--
	case key.Matches(msg, m.keys.HalfPageDown):
		m.selectedRow += half
	case key.Matches(msg, m.keys.HalfPageUp):
		m.selectedRow -= half
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = n - 1
	}
	m.clampSelection()
	if m.selectedRow != before {
		m.updateDetailViewport()
	}
}

// nextKind cycles all → each kind in display order → all.
func nextKind(current model.Kind) model.Kind {
	kinds := model.Kinds()
	if current == "" {
		return kinds[0]
	}
	for i, k := range kinds {
		if k == current && i+1 < len(kinds) {
			return kinds[i+1]
		}
	}
	return ""
}

func (m Model) contentHeight() int {
	return max(m.height-chrome, 3)
}

func (m Model) listHeight() int {
	return max(m.contentHeight()-2, 1)
}

// paneWidths splits the screen between list and detail.
func (m Model) paneWidths() (int, int) {
	list := m.width * 40 / 100
	if m.width >= LayoutExtraWideWidth {
		list = m.width * 30 / 100
	}
	return list, m.width - list
}

// renderRecipes renders the split list/detail view.
func (m Model) renderRecipes() string {
	styles := m.theme.Styles()
	height := m.contentHeight()

	if !m.snapshot.Loaded {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("Loading collection..."))
	}
	if len(m.snapshot.Records) == 0 {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No recipes yet. Press i to import a share link."))
	}

	listWidth, detailWidth := m.paneWidths()
	listFocused := m.focusedPane == 0
	listBg := ternary(listFocused, m.theme.FocusBg, m.theme.SurfaceAlt)
	listPane := m.renderTitledBox(m.listTitle(), m.renderList(listWidth-2, listBg), listWidth, height, listFocused)

	var detail string
	if m.selectedRecord() != nil {
		detail = m.detailViewport.View()
	} else {
		detail = styles.MutedText.Render("Nothing matches the current filter")
	}
	detailPane := m.renderTitledBox("Details", detail, detailWidth, height, !listFocused)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// renderList renders the visible window of rows around the selection.
func (m Model) renderList(width int, bgColor string) string {
	items := m.visibleRecords()
	rows := m.listHeight()
	start := 0
	if m.selectedRow >= rows {
		start = m.selectedRow - rows + 1
	}
	end := min(start+rows, len(items))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		selected := i == m.selectedRow
		bg := ternary(selected, m.theme.SelectionBg, bgColor)
		lines = append(lines, lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Width(width).
			Render(m.formatRow(items[i], width, bg, selected)))
	}
	return strings.Join(lines, "\n")
}

// formatRow formats one list row: "★ Name · Kind".
func (m Model) formatRow(r model.Record, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	ref := r.Ref()
	meta := r.Local()

	star := ternary(meta.Favorite, "★", " ")
	kind := ref.Kind.Label()
	nameWidth := max(width-len(kind)-6, 8)

	starStyle, nameStyle, sepStyle := styles.WarningText, styles.Text, styles.FaintText
	kindStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.KindColors[ref.Kind]))
	if selected {
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		starStyle, nameStyle, sepStyle, kindStyle = sel, sel, sel, sel
	}

	return bg.Render(star, starStyle) + bg.Space() +
		bg.Render(truncate(ref.Name, nameWidth), nameStyle) +
		bg.Render(" · ", sepStyle) +
		bg.Render(kind, kindStyle)
}

func (m Model) listTitle() string {
	total := len(m.snapshot.Records)
	visible := len(m.visibleRecords())
	if m.kindFilter == "" && !m.favoritesOnly {
		return fmt.Sprintf("Collection (%d)", total)
	}
	return fmt.Sprintf("Collection (%d/%d) %s", visible, total, m.filterLabel())
}

func (m Model) filterLabel() string {
	label := "All"
	if m.kindFilter != "" {
		label = m.kindFilter.Label()
	}
	if m.favoritesOnly {
		label += " ★"
	}
	return label
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr := ternary(focused, m.theme.BorderFocus, m.theme.Border)
	bgColorStr := ternary(focused, m.theme.FocusBg, m.theme.SurfaceAlt)
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 1))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	top := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)
	bottom := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColorStr))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines, bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}
	return top + "\n" + strings.Join(lines, "\n") + "\n" + bottom
}
