package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shashiranjanraj/pitstore/app/models"
	"github.com/shashiranjanraj/pitstore/app/repositories"
	"github.com/shashiranjanraj/pitstore/pkg/logger"
)

// CategoryAll selects the whole catalog when used as a category filter.
const CategoryAll = "all"

// BrowseService hands a search or filter from one command to the next. Each
// pending value is consumed by the next Browse call.
type BrowseService struct {
	catalog   *CatalogService
	transient *repositories.TransientRepository
}

func NewBrowseService(catalog *CatalogService, transient *repositories.TransientRepository) *BrowseService {
	return &BrowseService{catalog: catalog, transient: transient}
}

// SetSearchQuery stores a pending search. A blank query is ignored.
func (s *BrowseService) SetSearchQuery(ctx context.Context, q string) error {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	return s.transient.SetSearchQuery(ctx, q)
}

// SetCategoryFilter stores a pending category filter.
func (s *BrowseService) SetCategoryFilter(ctx context.Context, category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil
	}
	return s.transient.SetCategoryFilter(ctx, category)
}

// SetTeamFilter stores a pending team filter.
func (s *BrowseService) SetTeamFilter(ctx context.Context, team string) error {
	team = strings.TrimSpace(team)
	if team == "" {
		return nil
	}
	return s.transient.SetTeamFilter(ctx, team)
}

// Browse consumes the pending search query, category filter and team
// filter, in that order, each replacing the listing built so far. With
// nothing pending it returns the full catalog.
func (s *BrowseService) Browse(ctx context.Context) ([]models.Product, error) {
	log := logger.WithCtx(ctx)
	products := s.catalog.All()

	q, ok, err := s.transient.TakeSearchQuery(ctx)
	if err != nil {
		return nil, fmt.Errorf("browse: search query: %w", err)
	}
	if ok {
		log.Debug("browse: search", "query", q)
		products = s.catalog.Search(q)
	}

	category, ok, err := s.transient.TakeCategoryFilter(ctx)
	if err != nil {
		return nil, fmt.Errorf("browse: category filter: %w", err)
	}
	if ok {
		log.Debug("browse: category", "category", category)
		if category == CategoryAll {
			products = s.catalog.All()
		} else {
			products = s.catalog.ByCategory(category)
		}
	}

	team, ok, err := s.transient.TakeTeamFilter(ctx)
	if err != nil {
		return nil, fmt.Errorf("browse: team filter: %w", err)
	}
	if ok {
		log.Debug("browse: team", "team", team)
		products = s.catalog.ByTeam(team)
	}

	return products, nil
}
