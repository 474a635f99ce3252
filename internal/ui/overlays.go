package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/memoix/internal/model"
	"github.com/five82/memoix/internal/share"
	"github.com/five82/memoix/internal/transport"
)

// shareModal shows the link, the short code and whether a QR code is
// possible, with shortcuts to copy or switch to the QR view.
type shareModal struct {
	clip Clipboard
	rec  model.Record
	link string
	code string
}

func newShareModal(clip Clipboard, r model.Record) *shareModal {
	return &shareModal{clip: clip, rec: r, link: share.Encode(r), code: share.ShortCode(r)}
}

func (s *shareModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	switch {
	case key.Matches(kmsg, keys.CopyLink):
		return s, copyLinkCmd(s.clip, s.rec), true
	case key.Matches(kmsg, keys.CopyText):
		return s, copyTextCmd(s.clip, s.rec), true
	case key.Matches(kmsg, keys.ShowQR):
		rec := s.rec
		return s, func() tea.Msg { return openQRMsg{rec: rec} }, true
	case key.Matches(kmsg, keys.Escape), kmsg.String() == "q":
		return s, nil, true
	}
	return s, nil, false
}

func (s *shareModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	boxWidth := min(max(width-10, 40), 80)
	label := func(l string) string { return styles.MutedText.Render(padRight(l, 6)) }

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Share " + s.rec.Ref().Name))
	b.WriteString("\n\n")
	b.WriteString(label("Code") + styles.AccentText.Render(s.code) + "\n")
	b.WriteString(label("Link") + styles.Text.Render(truncateMiddle(s.link, boxWidth-12)) + "\n")
	b.WriteString(label("Size") + styles.Text.Render(fmt.Sprintf("%d bytes", len(s.link))) + "\n")
	if share.FitsQR(s.link) {
		b.WriteString(label("QR") + styles.SuccessText.Render("fits in a QR code") + "\n")
	} else {
		b.WriteString(label("QR") + styles.WarningText.Render("too long for a QR code, share the link or text") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("c copy link · y copy text · r QR code · esc close"))
	return renderModal(theme, width, height, boxWidth, b.String())
}

// qrModal shows a terminal rendering of the link's QR code.
type qrModal struct {
	name string
	art  string
	err  error
}

func newQRModal(renderer transport.QRRenderer, r model.Record) *qrModal {
	m := &qrModal{name: r.Ref().Name}
	img, err := renderer.Render(share.Encode(r))
	if err != nil {
		m.err = err
		return m
	}
	m.art = img.String()
	return m
}

func (q *qrModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return q, nil, true
	}
	return q, nil, false
}

func (q *qrModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var body string
	switch {
	case errors.Is(q.err, transport.ErrPayloadTooLarge):
		body = styles.WarningText.Render("This recipe is too long for a QR code.") + "\n" +
			styles.MutedText.Render("Copy the link or the text instead.")
	case q.err != nil:
		body = styles.DangerText.Render("Could not render the QR code.") + "\n" +
			styles.MutedText.Render(q.err.Error())
	case lipgloss.Height(q.art)+6 > height || lipgloss.Width(q.art)+6 > width:
		body = styles.WarningText.Render("The terminal is too small for this QR code.") + "\n" +
			styles.MutedText.Render("Enlarge the window or run: memoix qr <uuid> --png code.png")
	default:
		body = q.art + "\n" + styles.MutedText.Render("Scan to import "+q.name)
	}
	return renderModal(theme, width, height, 0, body)
}

// importModal prompts for a share link.
type importModal struct {
	input textinput.Model
}

func newImportModal(prefill string) *importModal {
	ti := textinput.New()
	ti.Placeholder = share.Scheme + "://..."
	ti.CharLimit = 0
	ti.Width = 60
	ti.SetValue(prefill)
	ti.Focus()
	return &importModal{input: ti}
}

func (im *importModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, keys.Escape):
			return im, nil, true
		case key.Matches(kmsg, keys.Confirm):
			link := strings.TrimSpace(im.input.Value())
			if link == "" {
				return im, nil, true
			}
			return im, func() tea.Msg { return importRequestMsg{link: link} }, true
		}
	}
	var cmd tea.Cmd
	im.input, cmd = im.input.Update(msg)
	return im, cmd, false
}

func (im *importModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	body := styles.Text.Bold(true).Render("Import a share link") + "\n\n" +
		im.input.View() + "\n\n" +
		styles.FaintText.Render("enter import · esc cancel")
	return renderModal(theme, width, height, min(max(width-10, 40), 72), body)
}
