package ingredients

import (
	"sort"
	"strings"
	"unicode"

	"github.com/five82/memoix/internal/model"
)

var multiWordRules, singleWordRules []rule

func init() {
	for _, r := range nameRules {
		if strings.ContainsRune(r.keyword, ' ') {
			multiWordRules = append(multiWordRules, r)
		} else {
			singleWordRules = append(singleWordRules, r)
		}
	}
}

// Classifier assigns categories to ingredient names. It is safe for
// concurrent use.
type Classifier struct {
	index Index
}

// NewClassifier returns a classifier that consults index before the keyword
// rules. A nil index uses the rules alone.
func NewClassifier(index Index) *Classifier {
	return &Classifier{index: index}
}

// Classify returns the category of name, or CategoryUnknown.
func (c *Classifier) Classify(name string) model.IngredientCategory {
	norm := normalize(name)
	if c != nil {
		if cat, ok := c.index[norm]; ok {
			return cat
		}
	}
	if cat, ok := ClassifyName(norm); ok {
		return cat
	}
	return model.CategoryUnknown
}

// ClassifyName applies the keyword rules. Multi-word keywords match as
// substrings and are tried first; single keywords must match a whole word,
// allowing a plural ending.
func ClassifyName(name string) (model.IngredientCategory, bool) {
	norm := normalize(name)
	if norm == "" {
		return model.CategoryUnknown, false
	}
	for _, r := range multiWordRules {
		if strings.Contains(norm, r.keyword) {
			return r.cat, true
		}
	}
	words := strings.FieldsFunc(norm, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	for _, r := range singleWordRules {
		for _, w := range words {
			if wordMatches(w, r.keyword) {
				return r.cat, true
			}
		}
	}
	return model.CategoryUnknown, false
}

// ClassifyOFFCategory maps an Open Food Facts category field. Ambiguous
// categories (snacks, frozen, ready meals) report false.
func ClassifyOFFCategory(s string) (model.IngredientCategory, bool) {
	v := strings.ToLower(s)
	if strings.TrimSpace(v) == "" {
		return model.CategoryUnknown, false
	}
	for _, r := range offRules {
		if strings.Contains(v, r.keyword) {
			if r.skip {
				return model.CategoryUnknown, false
			}
			return r.cat, true
		}
	}
	return model.CategoryUnknown, false
}

func wordMatches(word, keyword string) bool {
	switch word {
	case keyword, keyword + "s", keyword + "es":
		return true
	}
	if stem, ok := strings.CutSuffix(keyword, "y"); ok {
		return word == stem+"ies"
	}
	return false
}

func normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Section is one category of a shopping list.
type Section struct {
	Category model.IngredientCategory
	Items    []model.Ingredient
}

// Group sorts items into sections in category order, with unknown items
// last. Items keep their order within a section.
func (c *Classifier) Group(items []model.Ingredient) []Section {
	byCat := make(map[model.IngredientCategory][]model.Ingredient)
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			continue
		}
		cat := c.Classify(it.Name)
		byCat[cat] = append(byCat[cat], it)
	}
	out := make([]Section, 0, len(byCat))
	for cat, its := range byCat {
		out = append(out, Section{Category: cat, Items: its})
	}
	sort.Slice(out, func(i, j int) bool {
		return sortKey(out[i].Category) < sortKey(out[j].Category)
	})
	return out
}

func sortKey(c model.IngredientCategory) int {
	if c == model.CategoryUnknown {
		return len(model.IngredientCategories())
	}
	return int(c)
}

// Items lists what a record needs from the shop: the ingredient list for
// recipes, and the component lists for builds.
func Items(r model.Record) []model.Ingredient {
	var out []model.Ingredient
	names := func(list ...string) {
		for _, n := range list {
			if strings.TrimSpace(n) != "" {
				out = append(out, model.Ingredient{Name: n})
			}
		}
	}
	switch v := r.(type) {
	case *model.Recipe:
		out = append(out, v.Ingredients...)
	case *model.ModernistRecipe:
		out = append(out, v.Ingredients...)
	case *model.SmokingRecipe:
		for _, s := range v.Seasonings {
			out = append(out, model.Ingredient{Name: s.Name, Amount: s.Amount, Unit: s.Unit})
		}
		out = append(out, v.Ingredients...)
	case *model.Pizza:
		names(v.Cheeses...)
		names(v.Proteins...)
		names(v.Vegetables...)
	case *model.Sandwich:
		names(v.Bread)
		names(v.Proteins...)
		names(v.Vegetables...)
		names(v.Cheeses...)
		names(v.Condiments...)
	}
	return out
}
