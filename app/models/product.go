package models

// Product is one catalog entry. Prices are in the smallest currency unit.
type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"originalPrice,omitempty"`
	Category      string   `json:"category"`
	Team          string   `json:"team"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Badge         string   `json:"badge,omitempty"`
	Description   string   `json:"description"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	InStock       bool     `json:"inStock"`
	Featured      bool     `json:"featured"`
}

// DefaultSize is the first declared size, or "" when the product has none.
func (p Product) DefaultSize() string {
	if len(p.Sizes) == 0 {
		return ""
	}
	return p.Sizes[0]
}

// DefaultColor is the first declared color, or "" when the product has none.
func (p Product) DefaultColor() string {
	if len(p.Colors) == 0 {
		return ""
	}
	return p.Colors[0]
}

// OnSale reports whether the product carries a struck-through original price
// above its current one.
func (p Product) OnSale() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// Team is a constructor or series a product belongs to.
type Team struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Logo  string `json:"logo"`
}

// UnknownTeam is what an unresolvable team slug resolves to.
var UnknownTeam = Team{Slug: "unknown"}
