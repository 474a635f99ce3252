// Package transport delivers share links and plain text to the outside
// world: the system clipboard, a printed share sheet and QR symbols.
//
// None of these transform the text they are given; encoding and decoding
// belong to package share.
package transport
