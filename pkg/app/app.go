// Package app wires the store together: one snapshot store, one event
// dispatcher and the services built around them.
//
//	a, err := app.Boot(ctx)
//	if err != nil { ... }
//	defer a.Close()
//
//	a.Cart.Add(ctx, 2, 1, "", "")
//
// Boot reads everything from the config package. Tests call New with a
// memory store and their own options instead.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/pitstore/app/repositories"
	"github.com/shashiranjanraj/pitstore/app/services"
	"github.com/shashiranjanraj/pitstore/config"
	"github.com/shashiranjanraj/pitstore/database/seeders"
	"github.com/shashiranjanraj/pitstore/pkg/event"
	"github.com/shashiranjanraj/pitstore/pkg/kv"
	"github.com/shashiranjanraj/pitstore/pkg/logger"
	"github.com/shashiranjanraj/pitstore/pkg/metrics"
)

// Options configures New.
type Options struct {
	// Prefix is prepended to every snapshot key.
	Prefix    string
	Pricing   services.Pricing
	Processor services.PaymentProcessor
	Auth      services.AuthOptions
	// Now is the clock used for ids and timestamps. Defaults to time.Now.
	Now func() time.Time
	// MetricsTextfile, when set, is where Close writes the metrics.
	MetricsTextfile string
}

// OptionsFromEnv builds Options from the config package.
func OptionsFromEnv() (Options, error) {
	rate, err := decimal.NewFromString(config.TaxRate())
	if err != nil {
		return Options{}, fmt.Errorf("app: tax rate: %w", err)
	}
	return Options{
		Prefix: config.StorePrefix(),
		Pricing: services.Pricing{
			ShippingFee:           config.ShippingFee(),
			FreeShippingThreshold: config.FreeShippingThreshold(),
			TaxRate:               rate,
			CODCharge:             config.CODCharge(),
		},
		Processor: services.NewSimulatedProcessor(config.PaymentDelay(), config.PaymentSuccessRate()),
		Auth: services.AuthOptions{
			AdminEmail:     config.AdminEmail(),
			AdminPassword:  config.AdminPassword(),
			AdminAutoLogin: config.AdminAutoLogin(),
		},
		MetricsTextfile: config.MetricsTextfile(),
	}, nil
}

// App holds the running store.
type App struct {
	Store   kv.Store
	Events  *event.Dispatcher
	Metrics *metrics.Metrics

	Catalog  *services.CatalogService
	Cart     *services.CartService
	Auth     *services.AuthService
	Checkout *services.CheckoutService
	Browse   *services.BrowseService

	metricsTextfile string
}

// Boot opens the configured snapshot store and builds the store on it.
func Boot(ctx context.Context) (*App, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("app: config: %w", err)
	}
	opts, err := OptionsFromEnv()
	if err != nil {
		return nil, err
	}

	cfg := kv.ConfigFromEnv()
	store, err := kv.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("app: open %s store: %w", cfg.Driver, err)
	}
	logger.Debug("app: store opened", "driver", cfg.Driver)

	a, err := New(ctx, store, opts)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return a, nil
}

// New builds every service around store and rehydrates their state.
func New(ctx context.Context, store kv.Store, opts Options) (*App, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Auth.Now == nil {
		opts.Auth.Now = opts.Now
	}
	if opts.Processor == nil {
		return nil, errors.New("app: no payment processor configured")
	}

	keys := repositories.NewKeys(opts.Prefix)
	events := event.New()
	m := metrics.New(prometheus.NewRegistry())
	m.Subscribe(events)

	catalog := services.NewCatalogService(seeders.Products(), seeders.Teams())
	cart := services.NewCartService(catalog, repositories.NewCartRepository(store, keys), events)
	auth := services.NewAuthService(
		repositories.NewUserRepository(store, keys),
		repositories.NewSessionRepository(store, keys),
		events,
		opts.Auth,
	)
	checkout := services.NewCheckoutService(
		cart, auth,
		repositories.NewOrderRepository(store, keys),
		opts.Processor, opts.Pricing, events, opts.Now,
	)

	a := &App{
		Store:           store,
		Events:          events,
		Metrics:         m,
		Catalog:         catalog,
		Cart:            cart,
		Auth:            auth,
		Checkout:        checkout,
		Browse:          services.NewBrowseService(catalog, repositories.NewTransientRepository(store, keys)),
		metricsTextfile: opts.MetricsTextfile,
	}

	for _, load := range []func(context.Context) error{cart.Load, auth.Load, checkout.Load} {
		if err := load(ctx); err != nil {
			return nil, err
		}
	}
	// The cart gauge only moves on events; seed it with the restored cart.
	m.CartItems.Set(float64(cart.Count()))

	return a, nil
}

// Close flushes metrics to the textfile, if one is configured, and closes
// the snapshot store.
func (a *App) Close() error {
	mErr := a.Metrics.WriteTextfile(a.metricsTextfile)
	if err := a.Store.Close(); err != nil {
		return fmt.Errorf("app: close store: %w", err)
	}
	return mErr
}
