package transport

import (
	"fmt"
	"io"
	"strings"
)

// ShareSheet hands text to the user for sending elsewhere. On a terminal
// that means printing it, under a subject line, to a writer.
type ShareSheet struct {
	w io.Writer
}

// NewShareSheet returns a ShareSheet writing to w.
func NewShareSheet(w io.Writer) *ShareSheet {
	return &ShareSheet{w: w}
}

// Present writes the subject and text. An empty subject is left out.
func (s *ShareSheet) Present(text, subject string) error {
	var b strings.Builder
	if subj := strings.TrimSpace(subject); subj != "" {
		b.WriteString("Subject: ")
		b.WriteString(subj)
		b.WriteString("\n\n")
	}
	b.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		b.WriteString("\n")
	}
	if _, err := io.WriteString(s.w, b.String()); err != nil {
		return fmt.Errorf("present share text: %w", err)
	}
	return nil
}
