package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/five82/memoix/internal/model"
	"github.com/five82/memoix/internal/share"
	"github.com/five82/memoix/internal/store"
)

// detailCache holds the last rendered detail so scrolling and ticks don't
// re-run the markdown renderer.
type detailCache struct {
	key           string
	uuid          string
	renderer      *glamour.TermRenderer
	rendererWidth int
}

func (c *detailCache) invalidate() {
	c.key = ""
	c.renderer = nil
	c.rendererWidth = 0
}

// updateDetailViewport sizes the detail viewport and re-renders it when the
// selection, its local metadata, the width or the theme changed.
func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}
	_, paneWidth := m.paneWidths()
	width := max(paneWidth-4, 10)
	m.detailViewport.Width = width
	m.detailViewport.Height = max(m.contentHeight()-2, 1)

	rec := m.selectedRecord()
	if rec == nil {
		m.detail.key = ""
		m.detailViewport.SetContent("")
		return
	}

	key := detailKey(rec, width, m.theme.Name)
	if key == m.detail.key {
		return
	}
	m.detail.key = key
	m.detailViewport.SetContent(m.renderDetail(rec, width))
	if uuid := rec.Ref().UUID; uuid != m.detail.uuid {
		m.detail.uuid = uuid
		m.detailViewport.GotoTop()
	}
}

func detailKey(r model.Record, width int, theme string) string {
	meta := r.Local()
	return fmt.Sprintf("%s|%d|%s|%t|%d|%d|%d",
		r.Ref().UUID, width, theme, meta.Favorite, meta.CookCount, meta.Rating, meta.UpdatedAt.UnixMilli())
}

// renderDetail renders the local facts line followed by the record body.
func (m *Model) renderDetail(r model.Record, width int) string {
	styles := m.theme.Styles()
	meta := r.Local()
	link := share.Encode(r)

	facts := []string{
		styles.KindStyle(r.Kind()).Render(r.Kind().Label()) + " " +
			styles.MutedText.Render(sourceLabel(meta.Source)) +
			ternary(meta.Favorite, " "+styles.WarningText.Render("★ favourite"), ""),
		styles.MutedText.Render("Code ") + styles.AccentText.Render(share.ShortCode(r)) +
			styles.MutedText.Render(fmt.Sprintf("  link %d bytes", len(link))) +
			ternary(share.FitsQR(link), "", " "+styles.WarningText.Render("(too long for QR)")),
		styles.MutedText.Render(cookedLabel(meta)),
	}
	if meta.Rating > 0 {
		facts = append(facts, styles.WarningText.Render(stars(meta.Rating)))
	}

	body := strings.TrimSuffix(share.PlainText(r), "---\n"+share.Footer+"\n")
	return strings.Join(facts, "\n") + "\n" + m.markdown(body, width)
}

// markdown renders md with glamour, falling back to the raw text.
func (m *Model) markdown(md string, width int) string {
	if m.detail.renderer == nil || m.detail.rendererWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		m.detail.renderer = r
		m.detail.rendererWidth = width
	}
	out, err := m.detail.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

func sourceLabel(s model.Source) string {
	switch s {
	case model.SourceMemoix:
		return "Memoix collection"
	case model.SourceImported:
		return "Imported"
	default:
		return "Personal"
	}
}

func cookedLabel(meta *model.Meta) string {
	switch {
	case meta.CookCount == 0:
		return "Not cooked yet"
	case meta.LastCookedAt.IsZero():
		return fmt.Sprintf("Cooked %d×", meta.CookCount)
	default:
		return fmt.Sprintf("Cooked %d×, last %s", meta.CookCount, meta.LastCookedAt.Format("2006-01-02"))
	}
}

func stars(rating int) string {
	rating = min(max(rating, 0), store.MaxRating)
	return strings.Repeat("★", rating) + strings.Repeat("☆", store.MaxRating-rating)
}
