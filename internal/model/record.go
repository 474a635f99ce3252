package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// SchemaVersion is written into every record created by this program.
const SchemaVersion = 1

var (
	// ErrUnknownKind is returned for a kind outside the closed set.
	ErrUnknownKind = errors.New("unknown record kind")
	// ErrSchema is returned when a payload does not fit the kind's schema.
	ErrSchema = errors.New("schema mismatch")
)

// Meta is device-local state. None of it is ever part of a shareable
// projection.
type Meta struct {
	RowID        int64
	Source       Source
	Favorite     bool
	CookCount    int
	Rating       int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastCookedAt time.Time
	ImagePath    string
}

// Ref identifies a record independent of its kind.
type Ref struct {
	Kind Kind
	UUID string
	Name string
}

// Record is the sum of *Recipe, *ModernistRecipe, *Sandwich, *Pizza and
// *SmokingRecipe. The unexported methods seal the set.
type Record interface {
	Kind() Kind
	Ref() Ref
	Local() *Meta
	projection() any
	setUUID(id string)
}

var (
	_ Record = (*Recipe)(nil)
	_ Record = (*ModernistRecipe)(nil)
	_ Record = (*Sandwich)(nil)
	_ Record = (*Pizza)(nil)
	_ Record = (*SmokingRecipe)(nil)
)

// Ingredient is one line of an ingredient list.
type Ingredient struct {
	Name        string `json:"name"`
	Amount      string `json:"amount,omitempty"`
	Unit        string `json:"unit,omitempty"`
	Preparation string `json:"preparation,omitempty"`
	Alternative string `json:"alternative,omitempty"`
	Optional    bool   `json:"isOptional,omitempty"`
	Section     string `json:"section,omitempty"`
}

// ShareableJSON returns the canonical JSON projection of r: compact, keys in
// struct declaration order, HTML escaping off. Local metadata is never
// included.
func ShareableJSON(r Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.projection()); err != nil {
		return nil, fmt.Errorf("marshal %s: %w", r.Kind(), err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// FromShareable decodes a projection of the given kind. Identity fields must
// be present non-blank strings; any other field of the wrong JSON type is a
// schema error rather than a silent default. Top-level keys must match the
// field names exactly: a case variant such as "UUID" is rejected.
func FromShareable(kind Kind, data []byte) (Record, error) {
	var rec Record
	switch kind {
	case KindRecipe:
		rec = &Recipe{}
	case KindModernist:
		rec = &ModernistRecipe{}
	case KindSandwich:
		rec = &Sandwich{}
	case KindPizza:
		rec = &Pizza{}
	case KindSmoking:
		rec = &SmokingRecipe{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	if err := checkKeys(rec, data); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	ref := rec.Ref()
	if strings.TrimSpace(ref.UUID) == "" {
		return nil, fmt.Errorf("%w: uuid is required", ErrSchema)
	}
	if strings.TrimSpace(ref.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrSchema)
	}
	return rec, nil
}

// checkKeys rejects top-level keys that encoding/json would fold onto a field
// of rec without being spelled like it. Unknown keys are left alone.
func checkKeys(rec Record, data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if raw == nil {
		return fmt.Errorf("%w: payload is not an object", ErrSchema)
	}
	names := fieldNames(reflect.TypeOf(rec).Elem())
	for key := range raw {
		if _, ok := names[key]; ok {
			continue
		}
		for name := range names {
			if strings.EqualFold(key, name) {
				return fmt.Errorf("%w: key %q must be spelled %q", ErrSchema, key, name)
			}
		}
	}
	return nil
}

func fieldNames(t reflect.Type) map[string]struct{} {
	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		names[name] = struct{}{}
	}
	return names
}

// Clone returns a copy of r with its own Meta. Slices are shared with r.
func Clone(r Record) Record {
	c := r.projection().(Record)
	*c.Local() = *r.Local()
	return c
}

// SetUUID replaces the identity of r. Only the store uses this, when it
// assigns identity to a new record or copies an import.
func SetUUID(r Record, id string) {
	r.setUUID(id)
}
