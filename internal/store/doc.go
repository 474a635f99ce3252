// Package store keeps the local recipe collection in SQLite.
//
// Each record is one row: the shareable JSON projection goes in the body
// column and local metadata (favourite, cook count, rating, timestamps,
// image path, provenance) in columns of its own, so the body can be handed
// straight to the share codec.
//
// Import is the path for records arriving from other devices. It runs in a
// single transaction and applies a Policy when the uuid is already present.
// Seed loads the official collection without touching the user's own
// favourites or ratings.
package store
