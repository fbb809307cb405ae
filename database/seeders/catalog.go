// Package seeders holds the fixed data the store boots with.
package seeders

import "github.com/shashiranjanraj/pitstore/app/models"

func price(p int64) *int64 { return &p }

// Products returns a fresh copy of the catalog. Callers may not rely on the
// slices inside being shared with anyone else.
func Products() []models.Product {
	return []models.Product{
		{
			ID: 1, Name: "Red Bull Racing Jersey 2024", Price: 7499, OriginalPrice: price(9129),
			Category: "jerseys", Team: "red-bull", Image: "🏎️", Rating: 4.8, Reviews: 156, Badge: "sale",
			Description: "Official Red Bull Racing team jersey for the 2024 season. Made with premium moisture-wicking fabric.",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Navy Blue", "Red", "White"},
			InStock:     true, Featured: true,
		},
		{
			ID: 2, Name: "Ferrari Scuderia Cap", Price: 3817,
			Category: "caps", Team: "ferrari", Image: "🧢", Rating: 4.6, Reviews: 89, Badge: "new",
			Description: "Classic Ferrari Scuderia cap with embroidered logo. Adjustable strap for perfect fit.",
			Sizes:       []string{"One Size"},
			Colors:      []string{"Red", "Black"},
			InStock:     true, Featured: true,
		},
		{
			ID: 3, Name: "Mercedes AMG Petronas Jacket", Price: 10789,
			Category: "jackets", Team: "mercedes", Image: "🧥", Rating: 4.9, Reviews: 203,
			Description: "Premium Mercedes AMG Petronas team jacket. Wind and water resistant with team branding.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Silver", "Black", "Teal"},
			InStock:     true, Featured: true,
		},
		{
			ID: 4, Name: "McLaren Racing Watch", Price: 16599,
			Category: "accessories", Team: "mclaren", Image: "⌚", Rating: 4.7, Reviews: 67,
			Description: "Limited edition McLaren Racing chronograph watch with orange accents.",
			Sizes:       []string{"One Size"},
			Colors:      []string{"Black", "Orange"},
			InStock:     true,
		},
		{
			ID: 5, Name: "F1 Championship Trophy Replica", Price: 24899,
			Category: "collectibles", Team: "f1", Image: "🏆", Rating: 5.0, Reviews: 34,
			Description: "Official F1 World Championship trophy replica. Perfect for collectors and fans.",
			Sizes:       []string{"One Size"},
			Colors:      []string{"Gold"},
			InStock:     true, Featured: true,
		},
		{
			ID: 6, Name: "Alpine F1 Team Polo", Price: 5809,
			Category: "jerseys", Team: "alpine", Image: "👕", Rating: 4.5, Reviews: 78,
			Description: "Comfortable Alpine F1 team polo shirt with moisture-wicking technology.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Blue", "Pink", "White"},
			InStock:     true,
		},
		{
			ID: 7, Name: "Aston Martin Racing Keychain", Price: 2074,
			Category: "accessories", Team: "aston-martin", Image: "🔑", Rating: 4.3, Reviews: 45,
			Description: "Premium Aston Martin Racing keychain with metal construction.",
			Sizes:       []string{"One Size"},
			Colors:      []string{"Green", "Silver"},
			InStock:     true,
		},
		{
			ID: 8, Name: "Williams Racing Hoodie", Price: 7499, OriginalPrice: price(8299),
			Category: "hoodies", Team: "williams", Image: "👘", Rating: 4.4, Reviews: 92, Badge: "sale",
			Description: "Warm and comfortable Williams Racing hoodie with team colors.",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Blue", "White"},
			InStock:     true,
		},
	}
}

// Teams returns the team table keyed by slug.
func Teams() map[string]models.Team {
	return map[string]models.Team{
		"red-bull":     {Slug: "red-bull", Name: "Red Bull Racing", Color: "#1e41ff", Logo: "🏎️"},
		"ferrari":      {Slug: "ferrari", Name: "Scuderia Ferrari", Color: "#dc143c", Logo: "🐎"},
		"mercedes":     {Slug: "mercedes", Name: "Mercedes AMG Petronas", Color: "#00d2be", Logo: "⭐"},
		"mclaren":      {Slug: "mclaren", Name: "McLaren F1 Team", Color: "#ff8700", Logo: "🧡"},
		"alpine":       {Slug: "alpine", Name: "Alpine F1 Team", Color: "#0090ff", Logo: "🔵"},
		"aston-martin": {Slug: "aston-martin", Name: "Aston Martin Cognizant", Color: "#006f62", Logo: "💚"},
		"williams":     {Slug: "williams", Name: "Williams Racing", Color: "#005aff", Logo: "🔷"},
		"f1":           {Slug: "f1", Name: "Formula 1", Color: "#e10600", Logo: "🏁"},
	}
}
