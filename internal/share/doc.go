// Package share converts records to and from share links.
//
// # Envelope
//
// A share link is
//
//	memoix://{kind}/{payload}
//
// where kind is one of recipe, modernist, pizza, sandwich or smoking and
// payload is the unpadded base64url encoding of the record's shareable JSON
// projection (see model.ShareableJSON). The projection never carries local
// metadata: favourite flag, cook count, rating, timestamps, local image paths,
// row id and provenance stay on the device.
//
// # Decoding
//
// Decode is pure. It returns a record whose provenance is always
// model.SourceImported, or a *DecodeError in one of four categories:
//
//   - ErrInvalidScheme: the input is not a memoix:// link
//   - ErrUnknownKind: the kind segment is not one this build knows
//   - ErrMalformedPayload: base64, UTF-8 or JSON decoding failed
//   - ErrSchemaMismatch: the JSON does not fit the kind's schema
//
// UserMessage collapses these into the one line shown to the user and
// Reason gives a stable label for logs.
//
// # Other helpers
//
// ShortCode gives the eight-character display code, PlainText a readable
// export for messaging apps, and FitsQR reports whether a link is short
// enough to render as a QR symbol.
package share
