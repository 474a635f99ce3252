package share

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/five82/memoix/internal/model"
)

func personalMeta() model.Meta {
	now := time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)
	return model.Meta{
		RowID:        42,
		Source:       model.SourceMemoix,
		Favorite:     true,
		CookCount:    3,
		Rating:       4,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastCookedAt: now,
		ImagePath:    "/home/cook/.local/share/memoix/images/local.jpg",
	}
}

func sampleRecords() []model.Record {
	return []model.Record{
		&model.Recipe{
			Meta:        personalMeta(),
			UUID:        "8f14e45f-ceea-4e7a-9c3b-2a1d0e6b7c11",
			Name:        "Korean Fried Chicken",
			Course:      "mains",
			Cuisine:     "Korean",
			Subcategory: "chicken",
			Continent:   "Asia",
			Country:     "South Korea",
			Serves:      "4",
			Time:        "1h 15m",
			PairsWith:   []string{"Pickled Radish"},
			Ingredients: []model.Ingredient{
				{Name: "Chicken wings", Amount: "1", Unit: "kg"},
				{Name: "Gochujang", Amount: "3", Unit: "tbsp", Section: "Sauce"},
				{Name: "Sesame seeds", Optional: true, Section: "Sauce"},
			},
			Directions: []string{"Dredge", "Fry twice", "Toss in sauce"},
			Notes:      "Double fry for crunch <always> & hot oil.",
			SourceURL:  "https://example.com/kfc",
			ImageURL:   "https://example.com/kfc.jpg",
			Tags:       []string{"fried", "spicy"},
			Version:    model.SchemaVersion,
		},
		&model.ModernistRecipe{
			Meta:         personalMeta(),
			UUID:         "abc123de-7d2f-4c1a-8e0b-5f6a7b8c9d0e",
			Name:         "Mustard Air",
			Type:         model.ModernistTechnique,
			Technique:    "Foams",
			Difficulty:   "easy",
			Equipment:    []string{"Immersion blender"},
			Ingredients:  []model.Ingredient{{Name: "Mustard", Amount: "50", Unit: "g"}},
			Directions:   []string{"Blend", "Strain", "Aerate"},
			ScienceNotes: "Lecithin stabilises the bubbles.",
			Version:      model.SchemaVersion,
		},
		&model.Sandwich{
			Meta:       personalMeta(),
			UUID:       "0d1e2f30-4152-4637-8899-aabbccddeeff",
			Name:       "BLT",
			Bread:      "Sourdough",
			Proteins:   []string{"Bacon"},
			Vegetables: []string{"Lettuce", "Tomato"},
			Condiments: []string{"Mayo"},
			Tags:       []string{"lunch"},
			Version:    model.SchemaVersion,
		},
		&model.Pizza{
			Meta:       personalMeta(),
			UUID:       "11111111-2222-4333-8444-555555555555",
			Name:       "Margherita",
			Base:       model.BaseMarinara,
			Cheeses:    []string{"Fior di latte"},
			Vegetables: []string{"Basil"},
			Version:    model.SchemaVersion,
		},
		&model.SmokingRecipe{
			Meta:        personalMeta(),
			UUID:        "99999999-8888-4777-a666-555555555555",
			Name:        "Texas Brisket",
			Type:        model.SmokingFull,
			Item:        "Brisket",
			Category:    "beef",
			Temperature: "250F",
			Time:        "12h",
			Wood:        "Post Oak",
			Seasonings:  []model.Seasoning{{Name: "Salt", Amount: "2", Unit: "tbsp"}, {Name: "Pepper"}},
			Directions:  []string{"Trim", "Rub", "Smoke", "Rest"},
			Version:     model.SchemaVersion,
		},
	}
}

// ignoreLocal compares the shareable fields only.
var ignoreLocal = cmp.Options{cmpopts.IgnoreTypes(model.Meta{}), cmpopts.EquateEmpty()}

func TestEncode_Envelope(t *testing.T) {
	r := &model.Recipe{UUID: "u-1", Name: "Soup", Version: 1}
	want := "memoix://recipe/" + base64.RawURLEncoding.EncodeToString([]byte(`{"uuid":"u-1","name":"Soup","version":1}`))
	if got := Encode(r); got != want {
		t.Fatalf("Encode = %q, want %q", got, want)
	}
}

func TestEncode_LinkIsURISafe(t *testing.T) {
	for _, r := range sampleRecords() {
		link := Encode(r)
		if !strings.HasPrefix(link, "memoix://"+string(r.Kind())+"/") {
			t.Fatalf("%s: link %q has wrong prefix", r.Kind(), link)
		}
		if strings.ContainsAny(link, "=+ \n%") {
			t.Fatalf("%s: link %q contains padding, whitespace or escapes", r.Kind(), link)
		}
	}
}

func TestRoundTrip_PreservesShareableFields(t *testing.T) {
	for _, r := range sampleRecords() {
		t.Run(string(r.Kind()), func(t *testing.T) {
			got, err := Decode(Encode(r))
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			if got.Kind() != r.Kind() {
				t.Fatalf("Kind = %q, want %q", got.Kind(), r.Kind())
			}
			if got.Ref().UUID != r.Ref().UUID {
				t.Fatalf("UUID = %q, want %q", got.Ref().UUID, r.Ref().UUID)
			}
			if diff := cmp.Diff(r, got, ignoreLocal); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTrip_DropsLocalMetadata(t *testing.T) {
	for _, r := range sampleRecords() {
		got, err := Decode(Encode(r))
		if err != nil {
			t.Fatalf("%s: Decode returned error: %v", r.Kind(), err)
		}
		want := model.Meta{Source: model.SourceImported}
		if diff := cmp.Diff(want, *got.Local()); diff != "" {
			t.Fatalf("%s: local metadata leaked (-want +got):\n%s", r.Kind(), diff)
		}
	}
}

func TestEncode_DoesNotMutateRecord(t *testing.T) {
	for _, r := range sampleRecords() {
		before := *r.Local()
		_ = Encode(r)
		if diff := cmp.Diff(before, *r.Local()); diff != "" {
			t.Fatalf("%s: Encode mutated metadata:\n%s", r.Kind(), diff)
		}
	}
}

func TestRoundTrip_ReencodeIsStable(t *testing.T) {
	for _, r := range sampleRecords() {
		link := Encode(r)
		got, err := Decode(link)
		if err != nil {
			t.Fatalf("%s: Decode returned error: %v", r.Kind(), err)
		}
		if again := Encode(got); again != link {
			t.Fatalf("%s: re-encode differs:\n got %s\nwant %s", r.Kind(), again, link)
		}
	}
}

func TestDecode_ForcesImportedProvenance(t *testing.T) {
	payload := `{"uuid":"a1","name":"Soup","source":"memoix"}`
	link := "memoix://recipe/" + base64.RawURLEncoding.EncodeToString([]byte(payload))

	got, err := Decode(link)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got.Local().Source != model.SourceImported {
		t.Fatalf("Source = %q, want imported", got.Local().Source)
	}
}

func TestDecode_MustardAir(t *testing.T) {
	r := &model.ModernistRecipe{
		UUID:        "abc123de-0000-4000-8000-000000000001",
		Name:        "Mustard Air",
		Technique:   "Foams",
		Ingredients: []model.Ingredient{{Name: "Mustard", Amount: "50", Unit: "g"}},
		Directions:  []string{"Blend", "Strain", "Aerate"},
		Version:     model.SchemaVersion,
	}
	link := Encode(r)
	if !strings.HasPrefix(link, "memoix://modernist/") {
		t.Fatalf("link %q does not start with memoix://modernist/", link)
	}

	got, err := Decode(link)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	m, ok := got.(*model.ModernistRecipe)
	if !ok {
		t.Fatalf("Decode returned %T, want *model.ModernistRecipe", got)
	}
	if m.Name != "Mustard Air" || len(m.Directions) != 3 || m.Directions[2] != "Aerate" {
		t.Fatalf("decoded record = %+v", m)
	}
	if m.Meta.Source != model.SourceImported {
		t.Fatalf("Source = %q, want imported", m.Meta.Source)
	}
}

func TestDecode_Tolerance(t *testing.T) {
	link := Encode(&model.Pizza{UUID: "p1", Name: "Bianca", Version: 1})
	inputs := []string{
		"  " + link + "\n",
		"\t" + link + "\r\n",
		"MEMOIX://" + strings.TrimPrefix(link, "memoix://"),
	}
	for _, in := range inputs {
		got, err := Decode(in)
		if err != nil {
			t.Fatalf("Decode(%q) returned error: %v", in, err)
		}
		if got.Ref().Name != "Bianca" {
			t.Fatalf("Decode(%q) name = %q", in, got.Ref().Name)
		}
	}
}

func b64(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		link string
		want error
	}{
		{"not a link", "not-a-link", ErrInvalidScheme},
		{"empty", "", ErrInvalidScheme},
		{"other scheme", "https://example.com/recipe/" + b64("{}"), ErrInvalidScheme},
		{"single slash", "memoix:/recipe/" + b64("{}"), ErrInvalidScheme},
		{"unknown kind", "memoix://unknown/AAAA", ErrUnknownKind},
		{"upper case kind", "memoix://Recipe/" + b64("{}"), ErrUnknownKind},
		{"no kind", "memoix://", ErrUnknownKind},
		{"not base64", "memoix://recipe/!!!notbase64!!!", ErrMalformedPayload},
		{"no payload separator", "memoix://recipe", ErrMalformedPayload},
		{"empty payload", "memoix://recipe/", ErrMalformedPayload},
		{"padded", "memoix://recipe/" + base64.URLEncoding.EncodeToString([]byte(`{"uuid":"a","name":"b"}`)), ErrMalformedPayload},
		{"std alphabet", "memoix://recipe/" + base64.RawStdEncoding.EncodeToString([]byte{0xfb, 0xff}), ErrMalformedPayload},
		{"embedded newline", "memoix://recipe/" + b64(`{"uuid":"a"`) + "\n" + b64(`}`), ErrMalformedPayload},
		{"invalid utf-8", "memoix://recipe/" + b64("\xff\xfe"), ErrMalformedPayload},
		{"not json", "memoix://recipe/" + b64("uuid=a"), ErrMalformedPayload},
		{"truncated json", "memoix://recipe/" + b64(`{"uuid":"a","name":`), ErrMalformedPayload},
		{"empty object", "memoix://recipe/" + b64("{}"), ErrSchemaMismatch},
		{"array", "memoix://pizza/" + b64(`[{"uuid":"a","name":"b"}]`), ErrSchemaMismatch},
		{"json string", "memoix://pizza/" + b64(`"hello"`), ErrSchemaMismatch},
		{"blank name", "memoix://sandwich/" + b64(`{"uuid":"a","name":" "}`), ErrSchemaMismatch},
		{"numeric uuid", "memoix://smoking/" + b64(`{"uuid":7,"name":"Ribs"}`), ErrSchemaMismatch},
		{"wrong list type", "memoix://modernist/" + b64(`{"uuid":"a","name":"Air","equipment":"Siphon"}`), ErrSchemaMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Decode(tt.link)
			if rec != nil {
				t.Fatalf("Decode returned record %#v alongside error", rec)
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Decode error = %v, want %v", err, tt.want)
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("Decode error %T is not a *DecodeError", err)
			}
			for _, other := range []error{ErrInvalidScheme, ErrUnknownKind, ErrMalformedPayload, ErrSchemaMismatch} {
				if other != tt.want && errors.Is(err, other) {
					t.Fatalf("Decode error %v also matches %v", err, other)
				}
			}
		})
	}
}

func TestDecodeError_CarriesKind(t *testing.T) {
	_, err := Decode("memoix://sandwich/" + b64("{}"))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error %v is not a *DecodeError", err)
	}
	if de.Kind != model.KindSandwich {
		t.Fatalf("Kind = %q, want sandwich", de.Kind)
	}
	if !errors.Is(err, model.ErrSchema) {
		t.Fatalf("error %v does not wrap model.ErrSchema", err)
	}
}

func TestUserMessage(t *testing.T) {
	cases := map[string]string{
		"not-a-link":                       "not a recognized share link",
		"memoix://unknown/AAAA":            "not a recognized share link",
		"memoix://recipe/!!!notbase64!!!":  "could not read this link/code",
		"memoix://recipe/" + b64("{}"):     "could not read this link/code",
		"memoix://pizza/" + b64(`"hello"`): "could not read this link/code",
	}
	for link, want := range cases {
		_, err := Decode(link)
		if got := UserMessage(err); got != want {
			t.Fatalf("UserMessage(Decode(%q)) = %q, want %q", link, got, want)
		}
	}
	if got := UserMessage(nil); got != "" {
		t.Fatalf("UserMessage(nil) = %q, want empty", got)
	}
}

func TestReason(t *testing.T) {
	cases := map[string]string{
		"not-a-link":                      "invalid_scheme",
		"memoix://unknown/AAAA":           "unknown_kind",
		"memoix://recipe/!!!notbase64!!!": "malformed_payload",
		"memoix://recipe/" + b64("{}"):    "schema_mismatch",
	}
	for link, want := range cases {
		_, err := Decode(link)
		if got := Reason(err); got != want {
			t.Fatalf("Reason(Decode(%q)) = %q, want %q", link, got, want)
		}
	}
	if got := Reason(errors.New("boom")); got != "other" {
		t.Fatalf("Reason(other) = %q, want other", got)
	}
}

func TestShortCode(t *testing.T) {
	cases := map[string]string{
		"abc123de-0000-4000-8000-000000000001": "ABC123DE",
		"ab":                                   "AB",
		"":                                     "",
	}
	for id, want := range cases {
		if got := ShortCode(&model.Recipe{UUID: id}); got != want {
			t.Fatalf("ShortCode(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestFitsQR(t *testing.T) {
	if !FitsQR(strings.Repeat("a", MaxQRBytes)) {
		t.Fatal("FitsQR at the limit = false, want true")
	}
	if FitsQR(strings.Repeat("a", MaxQRBytes+1)) {
		t.Fatal("FitsQR over the limit = true, want false")
	}
	for _, r := range sampleRecords() {
		if !FitsQR(Encode(r)) {
			t.Fatalf("%s: sample link does not fit a QR symbol", r.Kind())
		}
	}
}
