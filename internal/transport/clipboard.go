package transport

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned when no system clipboard tool exists
// (for example a headless Linux box without xclip, xsel or wl-clipboard).
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard copies links and text to the system clipboard.
type Clipboard struct {
	write func(string) error
	read  func() (string, error)
	avail func() bool
}

// NewClipboard returns a Clipboard backed by the system clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{
		write: clipboard.WriteAll,
		read:  clipboard.ReadAll,
		avail: func() bool { return !clipboard.Unsupported },
	}
}

// Write replaces the clipboard contents with text.
func (c *Clipboard) Write(text string) error {
	if c == nil || !c.avail() {
		return ErrClipboardUnavailable
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Read returns the current clipboard contents.
func (c *Clipboard) Read() (string, error) {
	if c == nil || !c.avail() {
		return "", ErrClipboardUnavailable
	}
	text, err := c.read()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}
