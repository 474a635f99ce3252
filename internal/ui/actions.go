package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/memoix/internal/deeplink"
	"github.com/five82/memoix/internal/model"
	"github.com/five82/memoix/internal/share"
	"github.com/five82/memoix/internal/store"
	"github.com/five82/memoix/internal/transport"
)

// flashMsg reports the outcome of an action in the footer. changed asks
// for a refresh because the database was written.
type flashMsg struct {
	text    string
	isError bool
	changed bool
}

type clipboardTextMsg struct{ text string }

type importRequestMsg struct{ link string }

type importResultMsg struct {
	rec model.Record
	err error
}

type openQRMsg struct{ rec model.Record }

func copyLinkCmd(clip Clipboard, r model.Record) tea.Cmd {
	link := share.Encode(r)
	what := fmt.Sprintf("link for %s (%s)", r.Ref().Name, share.ShortCode(r))
	return copyCmd(clip, link, what)
}

func copyTextCmd(clip Clipboard, r model.Record) tea.Cmd {
	return copyCmd(clip, share.PlainText(r), "text of "+r.Ref().Name)
}

func copyCmd(clip Clipboard, text, what string) tea.Cmd {
	return func() tea.Msg {
		if clip == nil {
			return flashMsg{text: "Clipboard unavailable", isError: true}
		}
		if err := clip.Write(text); err != nil {
			if errors.Is(err, transport.ErrClipboardUnavailable) {
				return flashMsg{text: "Clipboard unavailable", isError: true}
			}
			return flashMsg{text: "Copy failed: " + err.Error(), isError: true}
		}
		return flashMsg{text: "Copied " + what}
	}
}

// readClipboardCmd pre-fills the import prompt with a share link found on
// the clipboard. Anything else leaves the prompt empty.
func readClipboardCmd(clip Clipboard) tea.Cmd {
	return func() tea.Msg {
		if clip == nil {
			return clipboardTextMsg{}
		}
		text, err := clip.Read()
		if err != nil {
			return clipboardTextMsg{}
		}
		text = strings.TrimSpace(text)
		if !looksLikeLink(text) {
			text = ""
		}
		return clipboardTextMsg{text: text}
	}
}

func looksLikeLink(s string) bool {
	p := share.Scheme + "://"
	return len(s) > len(p) && strings.EqualFold(s[:len(p)], p)
}

func favoriteCmd(ctx context.Context, coll Collection, r model.Record) tea.Cmd {
	ref := r.Ref()
	next := !r.Local().Favorite
	return func() tea.Msg {
		if coll == nil {
			return flashMsg{text: "Collection is read-only", isError: true}
		}
		if err := coll.SetFavorite(ctx, ref.UUID, next); err != nil {
			return flashMsg{text: "Could not update favourite: " + err.Error(), isError: true}
		}
		if next {
			return flashMsg{text: "★ " + ref.Name, changed: true}
		}
		return flashMsg{text: "Removed ★ from " + ref.Name, changed: true}
	}
}

func cookedCmd(ctx context.Context, coll Collection, r model.Record) tea.Cmd {
	ref := r.Ref()
	return func() tea.Msg {
		if coll == nil {
			return flashMsg{text: "Collection is read-only", isError: true}
		}
		if err := coll.RecordCook(ctx, ref.UUID); err != nil {
			return flashMsg{text: "Could not record cook: " + err.Error(), isError: true}
		}
		return flashMsg{text: "Marked " + ref.Name + " as cooked", changed: true}
	}
}

func importCmd(ctx context.Context, links LinkDispatcher, link string) tea.Cmd {
	return func() tea.Msg {
		if links == nil {
			return importResultMsg{err: errors.New("importing is not available")}
		}
		rec, err := links.Dispatch(ctx, link)
		return importResultMsg{rec: rec, err: err}
	}
}

// handleImportResult turns an import outcome into a footer message and
// selects the record once the next snapshot contains it.
func (m *Model) handleImportResult(msg importResultMsg) {
	var de *share.DecodeError
	switch {
	case msg.err == nil:
		m.setFlash(fmt.Sprintf("Imported %s (%s)", msg.rec.Ref().Name, msg.rec.Kind().Label()), false)
	case errors.Is(msg.err, store.ErrDuplicate):
		name := "this recipe"
		if msg.rec != nil {
			name = msg.rec.Ref().Name
		}
		m.setFlash("Already in your collection: "+name, false)
	case errors.Is(msg.err, deeplink.ErrConsumed):
		m.setFlash("This link was already imported", false)
		return
	case errors.As(msg.err, &de):
		m.setFlash(share.UserMessage(msg.err), true)
		return
	default:
		m.setFlash("Import failed", true)
		return
	}

	if msg.rec != nil {
		m.pendingSelect = msg.rec.Ref().UUID
	}
	m.currentView = ViewRecipes
	m.refresh()
}
