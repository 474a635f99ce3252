package collection

import (
	"strings"
	"unicode"

	"github.com/five82/memoix/internal/model"
)

// entry is one object in a collection file as written by the sheet
// converter. Kind-specific spreadsheet columns arrive flattened
// (pizzaBase, sandwichBread, smokingTemp, ...) and are split into the
// typed record fields by toRecord.
type entry struct {
	UUID        string             `json:"uuid"`
	Name        string             `json:"name"`
	Course      string             `json:"course"`
	Cuisine     string             `json:"cuisine"`
	Subcategory string             `json:"subcategory"`
	Continent   string             `json:"continent"`
	Country     string             `json:"country"`
	Serves      string             `json:"serves"`
	Time        string             `json:"time"`
	PairsWith   []string           `json:"pairsWith"`
	Notes       string             `json:"notes"`
	Ingredients []model.Ingredient `json:"ingredients"`
	Directions  []string           `json:"directions"`
	SourceURL   string             `json:"sourceUrl"`
	ImageURL    string             `json:"imageUrl"`
	Tags        []string           `json:"tags"`
	Version     int                `json:"version"`

	Type         string   `json:"type"`
	Technique    string   `json:"technique"`
	Difficulty   string   `json:"difficulty"`
	Equipment    []string `json:"equipment"`
	ScienceNotes string   `json:"scienceNotes"`

	PizzaBase     string `json:"pizzaBase"`
	PizzaCheese   string `json:"pizzaCheese"`
	PizzaToppings string `json:"pizzaToppings"`

	SandwichBread      string `json:"sandwichBread"`
	SandwichCheese     string `json:"sandwichCheese"`
	SandwichToppings   string `json:"sandwichToppings"`
	SandwichCondiments string `json:"sandwichCondiments"`

	SmokingTemp      string `json:"smokingTemp"`
	SmokingWood      string `json:"smokingWood"`
	SmokingSeasoning string `json:"smokingSeasoning"`
}

// KindForCourse maps a collection course to the record kind that holds it.
// Courses without a record kind (cheese, scratch) report false.
func KindForCourse(course string) (model.Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(course)) {
	case "pizzas", "pizza":
		return model.KindPizza, true
	case "sandwiches", "sandwich":
		return model.KindSandwich, true
	case "smoking":
		return model.KindSmoking, true
	case "molecular", "modernist":
		return model.KindModernist, true
	case "cheese", "scratch":
		return "", false
	}
	return model.KindRecipe, true
}

// toRecord converts e to its typed record. course is the entry's own course,
// or the one inferred from the file name when the entry has none.
func (e entry) toRecord(course string) (model.Record, bool) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return nil, false
	}
	kind, ok := KindForCourse(course)
	if !ok {
		return nil, false
	}
	id := strings.TrimSpace(e.UUID)
	if id == "" {
		id = model.CollectionUUID(course, name)
	}
	version := e.Version
	if version <= 0 {
		version = model.SchemaVersion
	}

	var rec model.Record
	switch kind {
	case model.KindPizza:
		proteins, vegetables := splitToppings(orSection(e.PizzaToppings, e.Ingredients, "Toppings"))
		base := e.PizzaBase
		if base == "" {
			base = strings.Join(fromSection(e.Ingredients, "Base"), ", ")
		}
		rec = &model.Pizza{
			UUID:       id,
			Name:       name,
			Base:       model.ParsePizzaBase(base),
			Cheeses:    orSection(e.PizzaCheese, e.Ingredients, "Cheese"),
			Proteins:   proteins,
			Vegetables: vegetables,
			Notes:      e.Notes,
			ImageURL:   e.ImageURL,
			Tags:       e.Tags,
			Version:    version,
		}
	case model.KindSandwich:
		proteins, vegetables := splitToppings(orSection(e.SandwichToppings, e.Ingredients, "Toppings"))
		bread := strings.TrimSpace(e.SandwichBread)
		if bread == "" {
			bread = strings.Join(fromSection(e.Ingredients, "Bread"), ", ")
		}
		rec = &model.Sandwich{
			UUID:       id,
			Name:       name,
			Bread:      bread,
			Proteins:   proteins,
			Vegetables: vegetables,
			Cheeses:    orSection(e.SandwichCheese, e.Ingredients, "Cheese"),
			Condiments: orSection(e.SandwichCondiments, e.Ingredients, "Condiments"),
			Notes:      e.Notes,
			ImageURL:   e.ImageURL,
			Tags:       e.Tags,
			Version:    version,
		}
	case model.KindSmoking:
		typ := model.SmokingPitNote
		if len(e.Directions) > 0 {
			typ = model.SmokingFull
		}
		rec = &model.SmokingRecipe{
			UUID:        id,
			Name:        name,
			Type:        typ,
			Item:        name,
			Category:    e.Subcategory,
			Temperature: strings.TrimSpace(e.SmokingTemp),
			Time:        e.Time,
			Wood:        strings.TrimSpace(e.SmokingWood),
			Serves:      e.Serves,
			Seasonings:  seasonings(e.SmokingSeasoning),
			Ingredients: e.Ingredients,
			Directions:  e.Directions,
			Notes:       e.Notes,
			ImageURL:    e.ImageURL,
			Tags:        e.Tags,
			Version:     version,
		}
	case model.KindModernist:
		rec = &model.ModernistRecipe{
			UUID:         id,
			Name:         name,
			Type:         modernistType(e.Type, e.Technique),
			Technique:    e.Technique,
			Serves:       e.Serves,
			Time:         e.Time,
			Difficulty:   e.Difficulty,
			Equipment:    e.Equipment,
			Ingredients:  e.Ingredients,
			Directions:   e.Directions,
			ScienceNotes: e.ScienceNotes,
			Notes:        e.Notes,
			SourceURL:    e.SourceURL,
			ImageURL:     e.ImageURL,
			Tags:         e.Tags,
			Version:      version,
		}
	default:
		rec = &model.Recipe{
			UUID:        id,
			Name:        name,
			Course:      strings.ToLower(strings.TrimSpace(course)),
			Cuisine:     e.Cuisine,
			Subcategory: e.Subcategory,
			Continent:   e.Continent,
			Country:     e.Country,
			Serves:      e.Serves,
			Time:        e.Time,
			PairsWith:   e.PairsWith,
			Ingredients: e.Ingredients,
			Directions:  e.Directions,
			Notes:       e.Notes,
			SourceURL:   e.SourceURL,
			ImageURL:    e.ImageURL,
			Tags:        e.Tags,
			Version:     version,
		}
	}
	rec.Local().Source = model.SourceMemoix
	return rec, true
}

func modernistType(typ, technique string) model.ModernistType {
	switch model.ModernistType(strings.ToLower(strings.TrimSpace(typ))) {
	case model.ModernistConcept:
		return model.ModernistConcept
	case model.ModernistTechnique:
		return model.ModernistTechnique
	}
	if strings.TrimSpace(technique) != "" {
		return model.ModernistTechnique
	}
	return model.ModernistConcept
}

// splitList splits a comma separated cell, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// fromSection returns the names of ingredients in the given section.
func fromSection(ings []model.Ingredient, section string) []string {
	var out []string
	for _, ing := range ings {
		if strings.EqualFold(strings.TrimSpace(ing.Section), section) {
			if n := strings.TrimSpace(ing.Name); n != "" {
				out = append(out, n)
			}
		}
	}
	return out
}

// orSection prefers the flattened cell and falls back to the converter's
// ingredient section of the same name.
func orSection(cell string, ings []model.Ingredient, section string) []string {
	if items := splitList(cell); len(items) > 0 {
		return items
	}
	var out []string
	for _, n := range fromSection(ings, section) {
		out = append(out, splitList(n)...)
	}
	return out
}

func seasonings(cell string) []model.Seasoning {
	var out []model.Seasoning
	for _, name := range splitList(cell) {
		out = append(out, model.Seasoning{Name: name})
	}
	return out
}

var proteinWords = map[string]bool{
	"anchovy": true, "anchovies": true, "bacon": true, "beef": true, "brisket": true,
	"chicken": true, "chorizo": true, "clam": true, "crab": true, "duck": true,
	"egg": true, "fish": true, "ham": true, "lamb": true, "lobster": true,
	"meatball": true, "mortadella": true, "nduja": true, "pancetta": true,
	"pastrami": true, "pepperoni": true, "pork": true, "prawn": true,
	"prosciutto": true, "salami": true, "salmon": true, "sausage": true,
	"shrimp": true, "soppressata": true, "speck": true, "steak": true,
	"tofu": true, "tuna": true, "turkey": true,
}

// splitToppings sorts free-text toppings into proteins and vegetables.
func splitToppings(items []string) (proteins, vegetables []string) {
	for _, it := range items {
		if isProtein(it) {
			proteins = append(proteins, it)
		} else {
			vegetables = append(vegetables, it)
		}
	}
	return proteins, vegetables
}

func isProtein(item string) bool {
	words := strings.FieldsFunc(strings.ToLower(item), func(r rune) bool { return !unicode.IsLetter(r) })
	for _, w := range words {
		if proteinWords[w] || proteinWords[strings.TrimSuffix(w, "s")] {
			return true
		}
	}
	return false
}
