// Package reqid mints and propagates correlation ids.
//
// The store has no HTTP requests; the unit of work worth correlating is a
// checkout attempt, which spans a blocking payment call and several
// snapshot writes. Every attempt gets an id that rides along in the context
// and is attached to the context logger:
//
//	ctx, id := reqid.Start(ctx)
//	logger.WithCtx(ctx).Info("charging", "method", method)
//	// → ... msg=charging attempt_id=3f0c6a2e-... method=upi
package reqid

import (
	"context"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/pitstore/pkg/logger"
)

type ctxKey struct{}

// LogKey is the slog attribute name the id is logged under.
const LogKey = "attempt_id"

// New returns a fresh random (v4) id.
func New() string {
	return uuid.NewString()
}

// WithValue stores id in ctx and returns the new context.
func WithValue(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromCtx extracts the id from ctx, or "" when none is present.
func FromCtx(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// Start reuses the id already in ctx or mints one, and returns a context
// carrying both the id and a logger tagged with it.
func Start(ctx context.Context) (context.Context, string) {
	id := FromCtx(ctx)
	if id == "" {
		id = New()
		ctx = WithValue(ctx, id)
	}
	log := logger.WithCtx(ctx).With(LogKey, id)
	return logger.InjectLogger(ctx, log), id
}
