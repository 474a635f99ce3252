package model

// Recipe is a standard recipe (mains, soups, desserts, sauces, ...).
type Recipe struct {
	Meta Meta `json:"-"`

	UUID        string       `json:"uuid"`
	Name        string       `json:"name"`
	Course      string       `json:"course,omitempty"`
	Cuisine     string       `json:"cuisine,omitempty"`
	Subcategory string       `json:"subcategory,omitempty"`
	Continent   string       `json:"continent,omitempty"`
	Country     string       `json:"country,omitempty"`
	Serves      string       `json:"serves,omitempty"`
	Time        string       `json:"time,omitempty"`
	PairsWith   []string     `json:"pairsWith,omitempty"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
	Directions  []string     `json:"directions,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	SourceURL   string       `json:"sourceUrl,omitempty"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Version     int          `json:"version"`
}

func (r *Recipe) Kind() Kind { return KindRecipe }
func (r *Recipe) Ref() Ref { return Ref{Kind: KindRecipe, UUID: r.UUID, Name: r.Name} }
func (r *Recipe) Local() *Meta { return &r.Meta }
func (r *Recipe) setUUID(id string) { r.UUID = id }

func (r *Recipe) projection() any {
	c := *r
	c.Meta = Meta{}
	return &c
}

// ModernistType separates reference concepts from worked techniques.
type ModernistType string

const (
	ModernistConcept   ModernistType = "concept"
	ModernistTechnique ModernistType = "technique"
)

// ModernistRecipe is a molecular-gastronomy recipe or concept note.
type ModernistRecipe struct {
	Meta Meta `json:"-"`

	UUID         string        `json:"uuid"`
	Name         string        `json:"name"`
	Type         ModernistType `json:"type,omitempty"`
	Technique    string        `json:"technique,omitempty"`
	Serves       string        `json:"serves,omitempty"`
	Time         string        `json:"time,omitempty"`
	Difficulty   string        `json:"difficulty,omitempty"`
	Equipment    []string      `json:"equipment,omitempty"`
	Ingredients  []Ingredient  `json:"ingredients,omitempty"`
	Directions   []string      `json:"directions,omitempty"`
	ScienceNotes string        `json:"scienceNotes,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	SourceURL    string        `json:"sourceUrl,omitempty"`
	ImageURL     string        `json:"imageUrl,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	Version      int           `json:"version"`
}

func (r *ModernistRecipe) Kind() Kind { return KindModernist }
func (r *ModernistRecipe) Ref() Ref {
	return Ref{Kind: KindModernist, UUID: r.UUID, Name: r.Name}
}
func (r *ModernistRecipe) Local() *Meta { return &r.Meta }
func (r *ModernistRecipe) setUUID(id string) { r.UUID = id }

func (r *ModernistRecipe) projection() any {
	c := *r
	c.Meta = Meta{}
	return &c
}
