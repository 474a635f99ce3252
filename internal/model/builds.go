package model

import "strings"

// Sandwich is a build: bread plus component lists, no directions.
type Sandwich struct {
	Meta Meta `json:"-"`

	UUID       string   `json:"uuid"`
	Name       string   `json:"name"`
	Bread      string   `json:"bread,omitempty"`
	Proteins   []string `json:"proteins,omitempty"`
	Vegetables []string `json:"vegetables,omitempty"`
	Cheeses    []string `json:"cheeses,omitempty"`
	Condiments []string `json:"condiments,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Version    int      `json:"version"`
}

func (s *Sandwich) Kind() Kind { return KindSandwich }
func (s *Sandwich) Ref() Ref { return Ref{Kind: KindSandwich, UUID: s.UUID, Name: s.Name} }
func (s *Sandwich) Local() *Meta { return &s.Meta }
func (s *Sandwich) setUUID(id string) { s.UUID = id }

func (s *Sandwich) projection() any {
	c := *s
	c.Meta = Meta{}
	return &c
}

// PizzaBase is the sauce layer of a pizza.
type PizzaBase string

const (
	BaseMarinara     PizzaBase = "marinara"
	BaseOil          PizzaBase = "oil"
	BasePesto        PizzaBase = "pesto"
	BaseCream        PizzaBase = "cream"
	BaseBBQ          PizzaBase = "bbq"
	BaseBuffalo      PizzaBase = "buffalo"
	BaseAlfredo      PizzaBase = "alfredo"
	BaseGarlicButter PizzaBase = "garlicButter"
	BaseNone         PizzaBase = "none"
)

// Label returns the display name of the base. Unknown values from newer
// clients are shown as sent.
func (b PizzaBase) Label() string {
	switch b {
	case BaseMarinara:
		return "Marinara"
	case BaseOil:
		return "Oil"
	case BasePesto:
		return "Pesto"
	case BaseCream:
		return "Cream"
	case BaseBBQ:
		return "BBQ"
	case BaseBuffalo:
		return "Buffalo"
	case BaseAlfredo:
		return "Alfredo"
	case BaseGarlicButter:
		return "Garlic Butter"
	case BaseNone:
		return "None"
	}
	return string(b)
}

// ParsePizzaBase maps free text (as found in collection sheets) to a base.
func ParsePizzaBase(s string) PizzaBase {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return ""
	case strings.Contains(v, "marinara"), strings.Contains(v, "tomato"), strings.Contains(v, "red sauce"):
		return BaseMarinara
	case strings.Contains(v, "pesto"):
		return BasePesto
	case strings.Contains(v, "alfredo"):
		return BaseAlfredo
	case strings.Contains(v, "garlic butter"):
		return BaseGarlicButter
	case strings.Contains(v, "cream"), strings.Contains(v, "white"):
		return BaseCream
	case strings.Contains(v, "bbq"), strings.Contains(v, "barbecue"):
		return BaseBBQ
	case strings.Contains(v, "buffalo"):
		return BaseBuffalo
	case strings.Contains(v, "oil"):
		return BaseOil
	case v == "none":
		return BaseNone
	}
	return PizzaBase(strings.TrimSpace(s))
}

// Pizza is a topping combination on a base.
type Pizza struct {
	Meta Meta `json:"-"`

	UUID       string    `json:"uuid"`
	Name       string    `json:"name"`
	Base       PizzaBase `json:"base,omitempty"`
	Cheeses    []string  `json:"cheeses,omitempty"`
	Proteins   []string  `json:"proteins,omitempty"`
	Vegetables []string  `json:"vegetables,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	Version    int       `json:"version"`
}

func (p *Pizza) Kind() Kind { return KindPizza }
func (p *Pizza) Ref() Ref { return Ref{Kind: KindPizza, UUID: p.UUID, Name: p.Name} }
func (p *Pizza) Local() *Meta { return &p.Meta }
func (p *Pizza) setUUID(id string) { p.UUID = id }

func (p *Pizza) projection() any {
	c := *p
	c.Meta = Meta{}
	return &c
}

// SmokingType separates quick pit notes from full recipes.
type SmokingType string

const (
	SmokingPitNote SmokingType = "pitNote"
	SmokingFull    SmokingType = "recipe"
)

// Seasoning is a rub or brine component with an optional measure.
type Seasoning struct {
	Name   string `json:"name"`
	Amount string `json:"amount,omitempty"`
	Unit   string `json:"unit,omitempty"`
}

// SmokingRecipe covers low-and-slow cooks: temperature, time and wood are
// the core of the record.
type SmokingRecipe struct {
	Meta Meta `json:"-"`

	UUID        string       `json:"uuid"`
	Name        string       `json:"name"`
	Type        SmokingType  `json:"type,omitempty"`
	Item        string       `json:"item,omitempty"`
	Category    string       `json:"category,omitempty"`
	Temperature string       `json:"temperature,omitempty"`
	Time        string       `json:"time,omitempty"`
	Wood        string       `json:"wood,omitempty"`
	Serves      string       `json:"serves,omitempty"`
	Seasonings  []Seasoning  `json:"seasonings,omitempty"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
	Directions  []string     `json:"directions,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Version     int          `json:"version"`
}

func (s *SmokingRecipe) Kind() Kind { return KindSmoking }
func (s *SmokingRecipe) Ref() Ref {
	return Ref{Kind: KindSmoking, UUID: s.UUID, Name: s.Name}
}
func (s *SmokingRecipe) Local() *Meta { return &s.Meta }
func (s *SmokingRecipe) setUUID(id string) { s.UUID = id }

func (s *SmokingRecipe) projection() any {
	c := *s
	c.Meta = Meta{}
	return &c
}
