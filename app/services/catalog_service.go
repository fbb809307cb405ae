package services

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/shashiranjanraj/pitstore/app/models"
	"github.com/shashiranjanraj/pitstore/pkg/collection"
)

// SortOrder names a catalog ordering.
type SortOrder string

const (
	SortDefault   SortOrder = ""
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
	SortRating    SortOrder = "rating"
	SortName      SortOrder = "name"
)

// CategoryCount is one entry of the category listing.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CatalogService answers read-only questions about the fixed product set.
// Every method returns fresh slices; the catalog itself never changes.
type CatalogService struct {
	products []models.Product
	byID     map[int64]int
	teams    map[string]models.Team
}

func NewCatalogService(products []models.Product, teams map[string]models.Team) *CatalogService {
	byID := make(map[int64]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &CatalogService{products: products, byID: byID, teams: teams}
}

// All returns the catalog in its declared order.
func (s *CatalogService) All() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Find looks a product up by id.
func (s *CatalogService) Find(id int64) (models.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Product{}, notFound("product", id)
	}
	return s.products[i], nil
}

func (s *CatalogService) ByCategory(category string) []models.Product {
	return collection.Filter(s.products, func(p models.Product) bool { return p.Category == category })
}

func (s *CatalogService) ByTeam(team string) []models.Product {
	return collection.Filter(s.products, func(p models.Product) bool { return p.Team == team })
}

func (s *CatalogService) Featured() []models.Product {
	return collection.Filter(s.products, func(p models.Product) bool { return p.Featured })
}

// Team resolves a team slug. Unknown slugs resolve to models.UnknownTeam.
func (s *CatalogService) Team(slug string) (models.Team, bool) {
	t, ok := s.teams[slug]
	if !ok {
		return models.UnknownTeam, false
	}
	return t, true
}

// Teams lists every team ordered by name.
func (s *CatalogService) Teams() []models.Team {
	out := make([]models.Team, 0, len(s.teams))
	for _, t := range s.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Search matches q case-insensitively as a substring of the name,
// description, category or team name. A blank query matches everything.
func (s *CatalogService) Search(q string) []models.Product {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.All()
	}

	fold := cases.Fold()
	needle := fold.String(q)
	has := func(field string) bool {
		return field != "" && strings.Contains(fold.String(field), needle)
	}

	return collection.Filter(s.products, func(p models.Product) bool {
		team, _ := s.Team(p.Team)
		return has(p.Name) || has(p.Description) || has(p.Category) || has(team.Name)
	})
}

// Categories lists the distinct categories in first-seen order with the
// number of products in each.
func (s *CatalogService) Categories() []CategoryCount {
	counted := collection.CountBy(s.products, func(p models.Product) string { return p.Category })
	return collection.Map(counted, func(c collection.Counted[string]) CategoryCount {
		return CategoryCount{Name: c.Key, Count: c.Count}
	})
}

// Sort returns products reordered by order. Unknown orders keep the input
// order. The input slice is never modified.
func (s *CatalogService) Sort(products []models.Product, order SortOrder) []models.Product {
	switch order {
	case SortPriceLow:
		return collection.SortedBy(products, func(a, b models.Product) bool { return a.Price < b.Price })
	case SortPriceHigh:
		return collection.SortedBy(products, func(a, b models.Product) bool { return a.Price > b.Price })
	case SortRating:
		return collection.SortedBy(products, func(a, b models.Product) bool { return a.Rating > b.Rating })
	case SortName:
		c := collate.New(language.English)
		return collection.SortedBy(products, func(a, b models.Product) bool {
			return c.CompareString(a.Name, b.Name) < 0
		})
	default:
		out := make([]models.Product, len(products))
		copy(out, products)
		return out
	}
}
