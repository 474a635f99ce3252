// Package ingredients sorts ingredient names into shop categories.
//
// Names are classified by an optional index (the gzip JSON database built
// from an Open Food Facts export by Build) and otherwise by an ordered
// keyword rule table. Group uses the result to turn a record's ingredients
// into a shopping list.
package ingredients
