package repositories

import (
	"context"

	"github.com/shashiranjanraj/pitstore/pkg/kv"
)

// TransientRepository holds single strings that are read once and then
// discarded: the pending search query and the pending category/team filter.
type TransientRepository struct {
	search   *Snapshot[string]
	category *Snapshot[string]
	team     *Snapshot[string]
}

func NewTransientRepository(store kv.Store, keys Keys) *TransientRepository {
	return &TransientRepository{
		search:   NewSnapshot[string](store, keys.SearchQuery),
		category: NewSnapshot[string](store, keys.FilterCategory),
		team:     NewSnapshot[string](store, keys.FilterTeam),
	}
}

func (r *TransientRepository) SetSearchQuery(ctx context.Context, q string) error {
	return r.search.Save(ctx, q)
}

func (r *TransientRepository) SetCategoryFilter(ctx context.Context, c string) error {
	return r.category.Save(ctx, c)
}

func (r *TransientRepository) SetTeamFilter(ctx context.Context, team string) error {
	return r.team.Save(ctx, team)
}

func (r *TransientRepository) TakeSearchQuery(ctx context.Context) (string, bool, error) {
	return take(ctx, r.search)
}

func (r *TransientRepository) TakeCategoryFilter(ctx context.Context) (string, bool, error) {
	return take(ctx, r.category)
}

func (r *TransientRepository) TakeTeamFilter(ctx context.Context) (string, bool, error) {
	return take(ctx, r.team)
}

// take reads and deletes. An empty stored string counts as absent.
func take(ctx context.Context, s *Snapshot[string]) (string, bool, error) {
	v, found, err := s.Load(ctx)
	if err != nil || !found {
		return "", false, err
	}
	if err := s.Clear(ctx); err != nil {
		return "", false, err
	}
	return v, v != "", nil
}
