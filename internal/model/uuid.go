package model

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID returns a random identity for a record created on this device.
func NewUUID() string {
	return uuid.NewString()
}

// CollectionUUID returns the deterministic identity the collection converter
// assigns to a sheet row: a v5 uuid in the DNS namespace
// (6ba7b810-9dad-11d1-80b4-00c04fd430c8) over "course:name".
// Re-running the converter therefore yields the same uuid for the same row.
func CollectionUUID(course, name string) string {
	key := course + ":" + strings.TrimSpace(name)
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(key)).String()
}
