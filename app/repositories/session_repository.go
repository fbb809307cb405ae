package repositories

import (
	"context"

	"github.com/shashiranjanraj/pitstore/app/models"
	"github.com/shashiranjanraj/pitstore/pkg/kv"
)

// SessionRepository persists the signed-in user, if any, so the session
// survives restarts.
type SessionRepository struct {
	snap *Snapshot[*models.User]
}

func NewSessionRepository(store kv.Store, keys Keys) *SessionRepository {
	return &SessionRepository{snap: NewSnapshot[*models.User](store, keys.CurrentUser)}
}

// Current returns the persisted session user, or nil when signed out.
func (r *SessionRepository) Current(ctx context.Context) (*models.User, error) {
	u, _, err := r.snap.Load(ctx)
	return u, err
}

func (r *SessionRepository) Set(ctx context.Context, u models.User) error {
	return r.snap.Save(ctx, &u)
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.snap.Clear(ctx)
}
