package services_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shashiranjanraj/pitstore/app/models"
	"github.com/shashiranjanraj/pitstore/app/repositories"
	"github.com/shashiranjanraj/pitstore/app/services"
	"github.com/shashiranjanraj/pitstore/database/seeders"
	"github.com/shashiranjanraj/pitstore/pkg/event"
	"github.com/shashiranjanraj/pitstore/pkg/kv"
)

var epoch = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

// clock ticks one second per reading.
type clock struct{ n atomic.Int64 }

func (c *clock) Now() time.Time {
	return epoch.Add(time.Duration(c.n.Add(1)) * time.Second)
}

// processor records calls and answers with a fixed result.
type processor struct {
	result models.PaymentResult
	err    error
	calls  int
}

func (p *processor) Process(_ context.Context, _ models.PaymentMethod, _ map[string]string) (models.PaymentResult, error) {
	p.calls++
	return p.result, p.err
}

func approve() *processor {
	return &processor{result: models.PaymentResult{Success: true, TransactionID: "TXN1718020800000", Message: "Payment processed successfully"}}
}

func decline() *processor {
	return &processor{result: models.PaymentResult{Success: false, Message: "Payment failed. Please try again."}}
}

// failingStore lets reads through but rejects writes once armed.
type failingStore struct {
	kv.Store
	armed bool
}

var errDiskFull = errors.New("disk full")

func (f *failingStore) Put(ctx context.Context, key string, value []byte) error {
	if f.armed {
		return errDiskFull
	}
	return f.Store.Put(ctx, key, value)
}

type harness struct {
	ctx      context.Context
	store    kv.Store
	events   *event.Dispatcher
	catalog  *services.CatalogService
	cart     *services.CartService
	auth     *services.AuthService
	browse   *services.BrowseService
	checkout *services.CheckoutService
	payments *processor
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWith(t, kv.NewMemory(), approve(), false)
}

func newHarnessWith(t *testing.T, store kv.Store, payments *processor, autoLogin bool) *harness {
	t.Helper()

	keys := repositories.NewKeys("f1_")
	events := event.New()
	clk := &clock{}
	catalog := services.NewCatalogService(seeders.Products(), seeders.Teams())
	cart := services.NewCartService(catalog, repositories.NewCartRepository(store, keys), events)
	auth := services.NewAuthService(
		repositories.NewUserRepository(store, keys),
		repositories.NewSessionRepository(store, keys),
		events,
		services.AuthOptions{
			AdminEmail:     "admin@f1store.com",
			AdminPassword:  "admin123",
			AdminAutoLogin: autoLogin,
			Now:            clk.Now,
		},
	)
	checkout := services.NewCheckoutService(cart, auth, repositories.NewOrderRepository(store, keys),
		payments, services.DefaultPricing(), events, clk.Now)

	h := &harness{
		ctx:      context.Background(),
		store:    store,
		events:   events,
		catalog:  catalog,
		cart:     cart,
		auth:     auth,
		browse:   services.NewBrowseService(catalog, repositories.NewTransientRepository(store, keys)),
		checkout: checkout,
		payments: payments,
	}
	for _, load := range []func(context.Context) error{cart.Load, auth.Load, checkout.Load} {
		if err := load(h.ctx); err != nil {
			t.Fatalf("load: %v", err)
		}
	}
	return h
}

// signUpAndIn registers a shopper and starts their session.
func signUpAndIn(t *testing.T, h *harness, name, email, password string) models.User {
	t.Helper()
	if _, err := h.auth.SignUp(h.ctx, name, email, password); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	u, err := h.auth.SignIn(h.ctx, email, password)
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	return u
}
