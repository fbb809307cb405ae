package repositories

import (
	"context"

	"github.com/shashiranjanraj/pitstore/app/models"
	"github.com/shashiranjanraj/pitstore/pkg/kv"
)

// OrderRepository persists the order ledger.
type OrderRepository struct {
	snap *Snapshot[[]models.Order]
}

func NewOrderRepository(store kv.Store, keys Keys) *OrderRepository {
	return &OrderRepository{snap: NewSnapshot[[]models.Order](store, keys.Orders)}
}

// All returns the ledger in append order.
func (r *OrderRepository) All(ctx context.Context) ([]models.Order, error) {
	orders, _, err := r.snap.Load(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// Save overwrites the ledger. Callers only ever pass the previous ledger
// with new orders appended.
func (r *OrderRepository) Save(ctx context.Context, orders []models.Order) error {
	if orders == nil {
		orders = []models.Order{}
	}
	return r.snap.Save(ctx, orders)
}
