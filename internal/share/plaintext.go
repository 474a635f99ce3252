package share

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/memoix/internal/model"
)

// Footer closes every plain-text export.
const Footer = "Shared from Memoix"

// PlainText renders r as readable text for messages and notes apps:
// a title, the present metadata lines, every non-empty section in a fixed
// order, then the footer. Stored order of ingredients and steps is kept.
func PlainText(r model.Record) string {
	var d doc
	switch v := r.(type) {
	case *model.Recipe:
		d.title(v.Name)
		d.meta("Course", titleCase(v.Course))
		d.meta("Cuisine", v.Cuisine)
		d.meta("Serves", v.Serves)
		d.meta("Time", v.Time)
		d.meta("Pairs with", strings.Join(nonBlank(v.PairsWith), ", "))
		d.meta("Source", v.SourceURL)
		d.ingredients("Ingredients", v.Ingredients)
		d.steps("Directions", v.Directions)
		d.text("Notes", v.Notes)
	case *model.ModernistRecipe:
		d.title(v.Name)
		d.meta("Type", titleCase(string(v.Type)))
		d.meta("Technique", v.Technique)
		d.meta("Serves", v.Serves)
		d.meta("Time", v.Time)
		d.meta("Difficulty", titleCase(v.Difficulty))
		d.meta("Source", v.SourceURL)
		d.bullets("Equipment", v.Equipment)
		d.ingredients("Ingredients", v.Ingredients)
		d.steps("Directions", v.Directions)
		d.text("Science", v.ScienceNotes)
		d.text("Notes", v.Notes)
	case *model.Sandwich:
		d.title(v.Name)
		d.meta("Bread", v.Bread)
		d.bullets("Proteins", v.Proteins)
		d.bullets("Vegetables", v.Vegetables)
		d.bullets("Cheeses", v.Cheeses)
		d.bullets("Condiments", v.Condiments)
		d.text("Notes", v.Notes)
	case *model.Pizza:
		d.title(v.Name)
		if v.Base != "" {
			d.meta("Base", v.Base.Label())
		}
		d.bullets("Cheeses", v.Cheeses)
		d.bullets("Proteins", v.Proteins)
		d.bullets("Vegetables", v.Vegetables)
		d.text("Notes", v.Notes)
	case *model.SmokingRecipe:
		d.title(v.Name)
		d.meta("Item", v.Item)
		d.meta("Category", titleCase(v.Category))
		d.meta("Temperature", v.Temperature)
		d.meta("Time", v.Time)
		d.meta("Wood", v.Wood)
		d.meta("Serves", v.Serves)
		d.seasonings(v.Seasonings)
		d.ingredients("Ingredients", v.Ingredients)
		d.steps("Directions", v.Directions)
		d.text("Notes", v.Notes)
	}
	return d.String()
}

// doc accumulates blocks separated by blank lines.
type doc struct {
	head   string
	lines  []string
	blocks []string
}

func (d *doc) title(name string) {
	d.head = "# " + strings.TrimSpace(name)
}

func (d *doc) meta(label, value string) {
	if v := strings.TrimSpace(value); v != "" {
		d.lines = append(d.lines, label+": "+v)
	}
}

func (d *doc) section(name string, body []string) {
	if len(body) == 0 {
		return
	}
	d.blocks = append(d.blocks, "## "+name+"\n"+strings.Join(body, "\n"))
}

func (d *doc) bullets(name string, items []string) {
	var body []string
	for _, it := range nonBlank(items) {
		body = append(body, "- "+it)
	}
	d.section(name, body)
}

func (d *doc) steps(name string, items []string) {
	var body []string
	for i, it := range nonBlank(items) {
		body = append(body, strconv.Itoa(i+1)+". "+it)
	}
	d.section(name, body)
}

func (d *doc) text(name, value string) {
	if v := strings.TrimSpace(value); v != "" {
		d.section(name, []string{v})
	}
}

func (d *doc) ingredients(name string, items []model.Ingredient) {
	var body []string
	current := ""
	for _, ing := range items {
		line := ingredientLine(ing)
		if line == "" {
			continue
		}
		if sec := strings.TrimSpace(ing.Section); sec != "" && sec != current {
			body = append(body, "### "+sec)
			current = sec
		}
		body = append(body, "- "+line)
	}
	d.section(name, body)
}

func (d *doc) seasonings(items []model.Seasoning) {
	var body []string
	for _, s := range items {
		if line := joinWords(s.Amount, s.Unit, s.Name); line != "" {
			body = append(body, "- "+line)
		}
	}
	d.section("Seasonings", body)
}

func (d *doc) String() string {
	parts := []string{d.head}
	if len(d.lines) > 0 {
		parts = append(parts, strings.Join(d.lines, "\n"))
	}
	parts = append(parts, d.blocks...)
	parts = append(parts, "---\n"+Footer)
	return strings.Join(parts, "\n\n") + "\n"
}

// ingredientLine renders "50 g Mustard, sifted (or Dijon) (optional)".
func ingredientLine(ing model.Ingredient) string {
	line := joinWords(ing.Amount, ing.Unit, ing.Name)
	if line == "" {
		return ""
	}
	if p := strings.TrimSpace(ing.Preparation); p != "" {
		line += ", " + p
	}
	if a := strings.TrimSpace(ing.Alternative); a != "" {
		line += " (or " + a + ")"
	}
	if ing.Optional {
		line += " (optional)"
	}
	return line
}

func joinWords(words ...string) string {
	return strings.Join(nonBlank(words), " ")
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if v := strings.TrimSpace(it); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// titleCase turns stored lower-case tags ("mains", "concept") into labels.
// A Caser is stateful, so each call gets its own.
func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(s)
}
