package repositories

import (
	"context"

	"github.com/shashiranjanraj/pitstore/app/models"
	"github.com/shashiranjanraj/pitstore/pkg/kv"
)

// CartRepository persists the ordered list of cart lines.
type CartRepository struct {
	snap *Snapshot[[]models.CartLine]
}

func NewCartRepository(store kv.Store, keys Keys) *CartRepository {
	return &CartRepository{snap: NewSnapshot[[]models.CartLine](store, keys.Cart)}
}

// Load returns the saved lines; an unsaved cart is empty.
func (r *CartRepository) Load(ctx context.Context) ([]models.CartLine, error) {
	lines, _, err := r.snap.Load(ctx)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []models.CartLine{}
	}
	return lines, nil
}

func (r *CartRepository) Save(ctx context.Context, lines []models.CartLine) error {
	if lines == nil {
		lines = []models.CartLine{}
	}
	return r.snap.Save(ctx, lines)
}
