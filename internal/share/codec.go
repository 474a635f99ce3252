package share

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/five82/memoix/internal/model"
)

const (
	// Scheme is the URI scheme for every kind of share link.
	Scheme = "memoix"

	// MaxQRBytes is the practical ceiling for a link rendered as a QR
	// symbol at low error correction.
	MaxQRBytes = 2900

	prefix       = Scheme + "://"
	shortCodeLen = 8
)

// Payloads are unpadded base64url. Decoding is strict so that a decoded
// payload always re-encodes to the same characters.
var (
	payloadEncoding = base64.RawURLEncoding
	payloadDecoding = base64.RawURLEncoding.Strict()
)

// Encode wraps the shareable projection of r in a share link:
//
//	memoix://{kind}/{base64url(json)}
//
// Local metadata never reaches the link. Encode does not modify r.
func Encode(r model.Record) string {
	data, err := model.ShareableJSON(r)
	if err != nil {
		// Projections hold only strings, numbers, bools and slices of them.
		panic(fmt.Sprintf("share: %v", err))
	}
	return prefix + string(r.Kind()) + "/" + payloadEncoding.EncodeToString(data)
}

// Decode parses a share link into a record tagged with imported provenance.
// Surrounding whitespace is ignored. Any failure is a *DecodeError and the
// returned record is nil.
func Decode(link string) (model.Record, error) {
	s := strings.TrimSpace(link)
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return nil, decodeErr(ErrInvalidScheme, "", nil)
	}
	rest := s[len(prefix):]

	seg, payload, found := strings.Cut(rest, "/")
	kind, ok := model.ParseKind(seg)
	if !ok {
		return nil, decodeErr(ErrUnknownKind, "", fmt.Errorf("kind %q", seg))
	}
	if !found || payload == "" {
		return nil, decodeErr(ErrMalformedPayload, kind, errors.New("empty payload"))
	}
	// The base64 decoder skips line breaks; links must not contain any.
	if strings.ContainsAny(payload, " \t\r\n") {
		return nil, decodeErr(ErrMalformedPayload, kind, errors.New("whitespace in payload"))
	}

	data, err := payloadDecoding.DecodeString(payload)
	if err != nil {
		return nil, decodeErr(ErrMalformedPayload, kind, err)
	}
	if !utf8.Valid(data) {
		return nil, decodeErr(ErrMalformedPayload, kind, errors.New("payload is not utf-8"))
	}
	if !json.Valid(data) {
		return nil, decodeErr(ErrMalformedPayload, kind, errors.New("payload is not json"))
	}

	rec, err := model.FromShareable(kind, data)
	if err != nil {
		return nil, decodeErr(ErrSchemaMismatch, kind, err)
	}
	rec.Local().Source = model.SourceImported
	return rec, nil
}

// ShortCode returns the first eight characters of the record's uuid in
// upper case. It is for display only and is never used to look records up.
func ShortCode(r model.Record) string {
	id := []rune(r.Ref().UUID)
	if len(id) > shortCodeLen {
		id = id[:shortCodeLen]
	}
	return strings.ToUpper(string(id))
}

// FitsQR reports whether link is short enough to render as a QR symbol.
func FitsQR(link string) bool {
	return len(link) <= MaxQRBytes
}
