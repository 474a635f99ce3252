package transport

import (
	"errors"
	"fmt"
	"os"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/five82/memoix/internal/share"
)

// ErrPayloadTooLarge is returned for links beyond share.MaxQRBytes. Callers
// fall back to copying the link or plain text.
var ErrPayloadTooLarge = errors.New("link too large for a QR code")

// DefaultPNGSize is the edge length in pixels of exported QR images.
const DefaultPNGSize = 512

// QRRenderer renders share links as QR symbols at low error correction,
// which gives the most room for payload.
type QRRenderer struct{}

// QRImage is a rendered QR symbol.
type QRImage struct {
	code *qrcode.QRCode
}

// Render encodes text as a QR symbol.
func (QRRenderer) Render(text string) (*QRImage, error) {
	if !share.FitsQR(text) {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLarge, len(text), share.MaxQRBytes)
	}
	code, err := qrcode.New(text, qrcode.Low)
	if err != nil {
		return nil, fmt.Errorf("render qr: %w", err)
	}
	return &QRImage{code: code}, nil
}

// String draws the symbol with half-block characters, two modules per
// terminal row.
func (q *QRImage) String() string {
	return q.code.ToSmallString(false)
}

// PNG returns the symbol as a size x size PNG image.
func (q *QRImage) PNG(size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultPNGSize
	}
	data, err := q.code.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return data, nil
}

// WritePNG writes the symbol to path as a PNG image.
func (q *QRImage) WritePNG(path string, size int) error {
	data, err := q.PNG(size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
