package repositories

import (
	"context"

	"github.com/shashiranjanraj/pitstore/app/models"
	"github.com/shashiranjanraj/pitstore/pkg/kv"
)

// UserRepository persists the user collection.
type UserRepository struct {
	snap *Snapshot[[]models.User]
}

func NewUserRepository(store kv.Store, keys Keys) *UserRepository {
	return &UserRepository{snap: NewSnapshot[[]models.User](store, keys.Users)}
}

// All returns every registered user in sign-up order.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	users, _, err := r.snap.Load(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Save overwrites the whole collection.
func (r *UserRepository) Save(ctx context.Context, users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	return r.snap.Save(ctx, users)
}
