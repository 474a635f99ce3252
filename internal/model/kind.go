package model

import "strings"

// Kind tags which record schema a value or payload represents.
type Kind string

const (
	KindRecipe    Kind = "recipe"
	KindPizza     Kind = "pizza"
	KindSandwich  Kind = "sandwich"
	KindSmoking   Kind = "smoking"
	KindModernist Kind = "modernist"
)

var kindOrder = []Kind{KindRecipe, KindModernist, KindPizza, KindSandwich, KindSmoking}

// Kinds returns the closed set of record kinds in display order.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}

// ParseKind reports whether s names a known kind. Matching is exact; share
// links are produced by this program and are always lower case.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindRecipe, KindPizza, KindSandwich, KindSmoking, KindModernist:
		return Kind(s), true
	}
	return "", false
}

// Label returns the human name of the kind.
func (k Kind) Label() string {
	switch k {
	case KindRecipe:
		return "Recipe"
	case KindPizza:
		return "Pizza"
	case KindSandwich:
		return "Sandwich"
	case KindSmoking:
		return "Smoking"
	case KindModernist:
		return "Modernist"
	}
	return string(k)
}

// Source records where a record came from.
type Source string

const (
	SourcePersonal Source = "personal"
	SourceMemoix   Source = "memoix"
	SourceImported Source = "imported"
)

// LookupSource reports whether s names a provenance. Case and surrounding
// space are ignored.
func LookupSource(s string) (Source, bool) {
	switch src := Source(strings.ToLower(strings.TrimSpace(s))); src {
	case SourcePersonal, SourceMemoix, SourceImported:
		return src, true
	}
	return "", false
}

// ParseSource maps a stored provenance string, defaulting to personal.
func ParseSource(s string) Source {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceMemoix:
		return SourceMemoix
	case SourceImported:
		return SourceImported
	default:
		return SourcePersonal
	}
}
