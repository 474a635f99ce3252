package share

import (
	"errors"
	"fmt"

	"github.com/five82/memoix/internal/model"
)

// Decode failure categories. Every error returned by Decode is a
// *DecodeError that matches exactly one of these with errors.Is.
var (
	ErrInvalidScheme    = errors.New("invalid scheme")
	ErrUnknownKind      = errors.New("unknown kind")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrSchemaMismatch   = errors.New("schema mismatch")
)

// User-facing text. The sub-cases are for logs only.
const (
	msgNotALink   = "not a recognized share link"
	msgUnreadable = "could not read this link/code"
)

// DecodeError describes why a link could not be decoded.
type DecodeError struct {
	Reason error      // one of the Err* categories above
	Kind   model.Kind // set once the kind segment was recognised
	Err    error      // underlying cause, may be nil
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode share link: %v: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode share link: %v", e.Reason)
}

// Unwrap exposes both the category and the cause.
func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

func decodeErr(reason error, kind model.Kind, cause error) error {
	return &DecodeError{Reason: reason, Kind: kind, Err: cause}
}

// Reason returns a short machine-friendly label for the failure category,
// suitable as a log field. It never includes payload content.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidScheme):
		return "invalid_scheme"
	case errors.Is(err, ErrUnknownKind):
		return "unknown_kind"
	case errors.Is(err, ErrMalformedPayload):
		return "malformed_payload"
	case errors.Is(err, ErrSchemaMismatch):
		return "schema_mismatch"
	}
	return "other"
}

// UserMessage maps a decode error to the single line shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidScheme), errors.Is(err, ErrUnknownKind):
		return msgNotALink
	}
	return msgUnreadable
}
