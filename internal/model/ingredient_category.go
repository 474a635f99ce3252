package model

import "strings"

// IngredientCategory is the shop section an ingredient belongs to. The
// numeric values are the indexes stored in the ingredient database and are
// shared with the mobile app, so the order is fixed.
type IngredientCategory int

const (
	CategoryProduce IngredientCategory = iota
	CategoryMeat
	CategoryPoultry
	CategorySeafood
	CategoryEgg
	CategoryCheese
	CategoryDairy
	CategoryGrain
	CategoryPasta
	CategoryLegume
	CategoryNut
	CategorySpice
	CategoryCondiment
	CategoryOil
	CategoryVinegar
	CategoryFlour
	CategorySugar
	CategoryLeavening
	CategoryAlcohol
	CategoryPop
	CategoryJuice
	CategoryBeverage
	CategoryUnknown
	CategoryPantry
)

var categoryNames = [...]string{
	"produce", "meat", "poultry", "seafood", "egg", "cheese", "dairy",
	"grain", "pasta", "legume", "nut", "spice", "condiment", "oil",
	"vinegar", "flour", "sugar", "leavening", "alcohol", "pop", "juice",
	"beverage", "unknown", "pantry",
}

var categoryLabels = [...]string{
	"Produce", "Meat", "Poultry", "Seafood", "Eggs", "Cheese", "Dairy",
	"Grains & Bread", "Pasta & Noodles", "Legumes", "Nuts & Seeds",
	"Spices & Herbs", "Condiments", "Oils", "Vinegars", "Flours & Starches",
	"Sweeteners", "Baking", "Alcohol", "Soda", "Juice", "Beverages",
	"Other", "Pantry",
}

// IngredientCategories returns every category in index order.
func IngredientCategories() []IngredientCategory {
	out := make([]IngredientCategory, len(categoryNames))
	for i := range out {
		out[i] = IngredientCategory(i)
	}
	return out
}

// Valid reports whether c is one of the defined categories.
func (c IngredientCategory) Valid() bool {
	return c >= 0 && int(c) < len(categoryNames)
}

func (c IngredientCategory) String() string {
	if !c.Valid() {
		return categoryNames[CategoryUnknown]
	}
	return categoryNames[c]
}

// Label is the heading used when ingredients are grouped for shopping.
func (c IngredientCategory) Label() string {
	if !c.Valid() {
		return categoryLabels[CategoryUnknown]
	}
	return categoryLabels[c]
}

// ParseIngredientCategory maps a category name to its value.
func ParseIngredientCategory(s string) (IngredientCategory, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	for i, name := range categoryNames {
		if name == v {
			return IngredientCategory(i), true
		}
	}
	return CategoryUnknown, false
}
