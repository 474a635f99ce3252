package collection

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/memoix/internal/model"
)

const pizzasJSON = `[
  {
    "uuid": null,
    "name": "Diavola",
    "course": "pizzas",
    "cuisine": "Italian",
    "notes": "Hot honey to finish",
    "ingredients": [
      {"name": "Tomato sauce", "amount": null, "isOptional": false, "section": "Base"},
      {"name": "Mozzarella", "amount": null, "isOptional": false, "section": "Cheese"}
    ],
    "directions": [],
    "tags": ["pizza"],
    "version": 1,
    "pizzaBase": "Tomato sauce",
    "pizzaCheese": "Mozzarella, Parmesan",
    "pizzaToppings": "Spicy salami, Red onion, Chillies"
  },
  {"name": "", "course": "pizzas"}
]`

const sandwichesYAML = `
- name: Cubano
  course: sandwiches
  serves: "1"
  sandwichBread: Cuban bread
  sandwichCheese: Swiss
  sandwichToppings: Roast pork, Ham, Pickles
  sandwichCondiments: Yellow mustard
  tags: [sandwich, quick]
- name: Caprese
  ingredients:
    - {name: Ciabatta, section: Bread}
    - {name: "Tomato, Basil", section: Toppings}
    - {name: Pesto, section: Condiments}
`

const mixedJSON = `[
  {"uuid": "fixed-uuid", "name": "Beef Rendang", "course": "Mains", "cuisine": "Malaysian",
   "pairsWith": ["Rice"], "ingredients": [{"name": "Beef", "amount": "1", "unit": "kg"}],
   "directions": ["Brown", "Simmer"], "version": 1},
  {"name": "Pork Shoulder", "course": "smoking", "time": "10h",
   "smokingTemp": "225F", "smokingWood": "Hickory", "smokingSeasoning": "Salt, Pepper, Paprika"},
  {"name": "Spherification", "course": "molecular", "technique": "Spheres", "equipment": ["Syringe"]},
  {"name": "Brie", "course": "cheese"}
]`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_PizzaColumns(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pizzas.json", pizzasJSON)

	res, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Files)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Records, 1)

	p, ok := res.Records[0].(*model.Pizza)
	require.True(t, ok, "got %T", res.Records[0])
	assert.Equal(t, "Diavola", p.Name)
	assert.Equal(t, model.BaseMarinara, p.Base)
	assert.Equal(t, []string{"Mozzarella", "Parmesan"}, p.Cheeses)
	assert.Equal(t, []string{"Spicy salami"}, p.Proteins)
	assert.Equal(t, []string{"Red onion", "Chillies"}, p.Vegetables)
	assert.Equal(t, "Hot honey to finish", p.Notes)
	assert.Equal(t, model.CollectionUUID("pizzas", "Diavola"), p.UUID)
	assert.Equal(t, model.SourceMemoix, p.Meta.Source)
}

func TestLoad_YAMLSandwiches(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sandwiches.yaml", sandwichesYAML)

	res, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)

	cubano := res.Records[0].(*model.Sandwich)
	assert.Equal(t, "Cuban bread", cubano.Bread)
	assert.Equal(t, []string{"Swiss"}, cubano.Cheeses)
	assert.Equal(t, []string{"Roast pork", "Ham"}, cubano.Proteins)
	assert.Equal(t, []string{"Pickles"}, cubano.Vegetables)
	assert.Equal(t, []string{"Yellow mustard"}, cubano.Condiments)
	assert.Equal(t, []string{"sandwich", "quick"}, cubano.Tags)

	// No course: inferred from the file name; columns from ingredient sections.
	caprese := res.Records[1].(*model.Sandwich)
	assert.Equal(t, "Ciabatta", caprese.Bread)
	assert.Equal(t, []string{"Tomato", "Basil"}, caprese.Vegetables)
	assert.Equal(t, []string{"Pesto"}, caprese.Condiments)
	assert.Equal(t, model.CollectionUUID("sandwiches", "Caprese"), caprese.UUID)
}

func TestLoad_CourseMapping(t *testing.T) {
	path := writeFile(t, t.TempDir(), "mixed.json", mixedJSON)

	res, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Records, 3)

	r := res.Records[0].(*model.Recipe)
	assert.Equal(t, "fixed-uuid", r.UUID)
	assert.Equal(t, "mains", r.Course)
	assert.Equal(t, []string{"Brown", "Simmer"}, r.Directions)

	s := res.Records[1].(*model.SmokingRecipe)
	assert.Equal(t, model.SmokingPitNote, s.Type)
	assert.Equal(t, "Pork Shoulder", s.Item)
	assert.Equal(t, "225F", s.Temperature)
	assert.Equal(t, "Hickory", s.Wood)
	assert.Equal(t, "10h", s.Time)
	assert.Equal(t, []model.Seasoning{{Name: "Salt"}, {Name: "Pepper"}, {Name: "Paprika"}}, s.Seasonings)

	m := res.Records[2].(*model.ModernistRecipe)
	assert.Equal(t, model.ModernistTechnique, m.Type)
	assert.Equal(t, []string{"Syringe"}, m.Equipment)
	assert.Equal(t, model.SchemaVersion, m.Version)
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_sandwiches.yml", sandwichesYAML)
	writeFile(t, dir, "a_pizzas.json", `[{"name":"Marinara","course":"pizzas","pizzaBase":"tomato"}]`)
	writeFile(t, dir, "README.md", "# not a collection")

	res, err := Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Files)
	require.Len(t, res.Records, 3)
	assert.Equal(t, "Marinara", res.Records[0].Ref().Name)
	assert.Equal(t, "Cubano", res.Records[1].Ref().Name)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(context.Background(), filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	_, err = Load(context.Background(), dir)
	require.Error(t, err, "empty directory")

	bad := writeFile(t, dir, "bad.json", `{"name": "not an array"}`)
	_, err = Load(context.Background(), bad)
	require.Error(t, err)
}

func TestLoad_Canceled(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pizzas.json", pizzasJSON)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, path)
	require.ErrorIs(t, err, context.Canceled)
}

func TestKindForCourse(t *testing.T) {
	cases := map[string]model.Kind{
		"pizzas":     model.KindPizza,
		"Sandwiches": model.KindSandwich,
		"smoking":    model.KindSmoking,
		"molecular":  model.KindModernist,
		"mains":      model.KindRecipe,
		"":           model.KindRecipe,
	}
	for course, want := range cases {
		got, ok := KindForCourse(course)
		require.True(t, ok, course)
		assert.Equal(t, want, got, course)
	}
	_, ok := KindForCourse("cheese")
	assert.False(t, ok)
}

func TestIsProtein(t *testing.T) {
	for _, p := range []string{"Spicy salami", "Eggs", "'Nduja", "Anchovies"} {
		assert.True(t, isProtein(p), p)
	}
	for _, v := range []string{"Eggplant", "Champignons", "Shallots"} {
		assert.False(t, isProtein(v), v)
	}
}
