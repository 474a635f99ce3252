package share

import (
	"strings"
	"testing"

	"github.com/five82/memoix/internal/model"
)

func TestPlainText_MustardAir(t *testing.T) {
	r := &model.ModernistRecipe{
		UUID:        "abc123de-0000-4000-8000-000000000001",
		Name:        "Mustard Air",
		Type:        model.ModernistTechnique,
		Technique:   "Foams",
		Ingredients: []model.Ingredient{{Name: "Mustard", Amount: "50", Unit: "g"}},
		Directions:  []string{"Blend", "Strain", "Aerate"},
	}
	want := strings.Join([]string{
		"# Mustard Air",
		"",
		"Type: Technique",
		"Technique: Foams",
		"",
		"## Ingredients",
		"- 50 g Mustard",
		"",
		"## Directions",
		"1. Blend",
		"2. Strain",
		"3. Aerate",
		"",
		"---",
		"Shared from Memoix",
		"",
	}, "\n")
	if got := PlainText(r); got != want {
		t.Fatalf("PlainText mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPlainText_OmitsEmptySections(t *testing.T) {
	r := &model.ModernistRecipe{
		Name:       "Spherified Olives",
		Equipment:  nil,
		Notes:      "   ",
		Directions: []string{"Drop into bath"},
	}
	got := PlainText(r)
	for _, header := range []string{"## Notes", "## Equipment", "## Science", "## Ingredients"} {
		if strings.Contains(got, header) {
			t.Fatalf("PlainText contains %q for an empty section:\n%s", header, got)
		}
	}
	if !strings.Contains(got, "## Directions\n1. Drop into bath") {
		t.Fatalf("PlainText missing directions:\n%s", got)
	}
}

func TestPlainText_NameOnly(t *testing.T) {
	got := PlainText(&model.Sandwich{Name: "Butter Sandwich"})
	want := "# Butter Sandwich\n\n---\nShared from Memoix\n"
	if got != want {
		t.Fatalf("PlainText = %q, want %q", got, want)
	}
}

func TestPlainText_IngredientSectionsKeepOrder(t *testing.T) {
	r := &model.Recipe{
		Name: "Pizza Night",
		Ingredients: []model.Ingredient{
			{Name: "Flour", Amount: "500", Unit: "g", Section: "Dough"},
			{Name: "Water", Amount: "325", Unit: "ml", Section: "Dough"},
			{Name: "Tomatoes", Amount: "1", Unit: "can", Preparation: "crushed", Section: "Sauce"},
			{Name: "Basil", Alternative: "oregano", Optional: true, Section: "Sauce"},
		},
	}
	got := PlainText(r)
	want := strings.Join([]string{
		"## Ingredients",
		"### Dough",
		"- 500 g Flour",
		"- 325 ml Water",
		"### Sauce",
		"- 1 can Tomatoes, crushed",
		"- Basil (or oregano) (optional)",
	}, "\n")
	if !strings.Contains(got, want) {
		t.Fatalf("PlainText ingredients:\n%s\nwant block:\n%s", got, want)
	}
	if strings.Count(got, "### Dough") != 1 {
		t.Fatalf("section heading repeated:\n%s", got)
	}
}

func TestPlainText_MetadataOrder(t *testing.T) {
	r := &model.Recipe{
		Name:      "Dal",
		SourceURL: "https://example.com/dal",
		Time:      "40m",
		Course:    "soups",
		PairsWith: []string{"Rice", "", "Naan"},
		Cuisine:   "Indian",
		Serves:    "4",
	}
	got := PlainText(r)
	want := "Course: Soups\nCuisine: Indian\nServes: 4\nTime: 40m\nPairs with: Rice, Naan\nSource: https://example.com/dal"
	if !strings.Contains(got, want) {
		t.Fatalf("PlainText metadata:\n%s\nwant:\n%s", got, want)
	}
}

func TestPlainText_Builds(t *testing.T) {
	pizza := PlainText(&model.Pizza{
		Name:     "Pepperoni",
		Base:     model.BaseGarlicButter,
		Cheeses:  []string{"Mozzarella"},
		Proteins: []string{"Pepperoni"},
	})
	for _, want := range []string{"Base: Garlic Butter", "## Cheeses\n- Mozzarella", "## Proteins\n- Pepperoni"} {
		if !strings.Contains(pizza, want) {
			t.Fatalf("pizza text missing %q:\n%s", want, pizza)
		}
	}
	if strings.Index(pizza, "## Cheeses") > strings.Index(pizza, "## Proteins") {
		t.Fatalf("pizza sections out of order:\n%s", pizza)
	}

	sandwich := PlainText(&model.Sandwich{
		Name:       "Cubano",
		Bread:      "Cuban bread",
		Condiments: []string{"Mustard"},
		Proteins:   []string{"Ham", "Pork"},
	})
	if !strings.Contains(sandwich, "Bread: Cuban bread\n\n## Proteins\n- Ham\n- Pork\n\n## Condiments\n- Mustard") {
		t.Fatalf("sandwich text:\n%s", sandwich)
	}
}

func TestPlainText_Smoking(t *testing.T) {
	got := PlainText(&model.SmokingRecipe{
		Name:        "Pork Butt",
		Item:        "Pork shoulder",
		Temperature: "225F",
		Wood:        "Hickory",
		Seasonings:  []model.Seasoning{{Name: "Paprika", Amount: "2", Unit: "tbsp"}, {Name: "Salt"}},
		Directions:  []string{"Rub overnight", "Smoke to 203F"},
	})
	want := strings.Join([]string{
		"Item: Pork shoulder",
		"Temperature: 225F",
		"Wood: Hickory",
		"",
		"## Seasonings",
		"- 2 tbsp Paprika",
		"- Salt",
		"",
		"## Directions",
		"1. Rub overnight",
		"2. Smoke to 203F",
	}, "\n")
	if !strings.Contains(got, want) {
		t.Fatalf("smoking text:\n%s\nwant block:\n%s", got, want)
	}
}

func TestPlainText_NeverIncludesLocalMetadata(t *testing.T) {
	for _, r := range sampleRecords() {
		got := PlainText(r)
		if strings.Contains(got, "local.jpg") || strings.Contains(got, "Rating") {
			t.Fatalf("%s: plain text leaks local metadata:\n%s", r.Kind(), got)
		}
		if !strings.HasSuffix(got, "---\nShared from Memoix\n") {
			t.Fatalf("%s: plain text missing footer:\n%s", r.Kind(), got)
		}
	}
}
