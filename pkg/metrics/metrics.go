// Package metrics provides Prometheus instrumentation for pitstore.
//
// The store has no HTTP surface, so metrics are not scraped. Instead the
// collectors subscribe to the event dispatcher and the CLI dumps the
// registry to a node_exporter textfile after each command:
//
//	m := metrics.New(prometheus.NewRegistry())
//	m.Subscribe(events)
//	...
//	m.WriteTextfile(config.MetricsTextfile())
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/shashiranjanraj/pitstore/app/models"
	"github.com/shashiranjanraj/pitstore/app/services"
	"github.com/shashiranjanraj/pitstore/pkg/event"
)

const namespace = "pitstore"

// Metrics groups the store collectors around one registry.
type Metrics struct {
	registry *prometheus.Registry

	// CartMutations counts cart changes by operation.
	CartMutations *prometheus.CounterVec
	// CartItems is the number of units currently in the cart.
	CartItems prometheus.Gauge
	// SignIns counts sign-in attempts by result.
	SignIns *prometheus.CounterVec
	// SignUps counts registrations.
	SignUps prometheus.Counter
	// OrdersPlaced counts confirmed orders by payment method.
	OrdersPlaced *prometheus.CounterVec
	// Revenue sums order totals.
	Revenue prometheus.Counter
	// OrderValue tracks the distribution of order totals.
	OrderValue prometheus.Histogram
	// PaymentFailures counts declined payments by method.
	PaymentFailures *prometheus.CounterVec
}

// New builds the collectors and registers them, together with the Go
// runtime collector, on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		CartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cart",
			Name:      "mutations_total",
			Help:      "Cart mutations by operation.",
		}, []string{"op"}), // "add" | "remove" | "update" | "clear"
		CartItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cart",
			Name:      "items",
			Help:      "Units currently in the cart.",
		}),
		SignIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "sign_ins_total",
			Help:      "Sign-in attempts by result.",
		}, []string{"result"}), // "success" | "failure"
		SignUps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "sign_ups_total",
			Help:      "Accounts registered.",
		}),
		OrdersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "orders_total",
			Help:      "Orders placed by payment method.",
		}, []string{"method"}),
		Revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "revenue_total",
			Help:      "Sum of order totals in rupees.",
		}),
		OrderValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "order_value",
			Help:      "Order totals in rupees.",
			Buckets:   []float64{1_000, 5_000, 10_000, 25_000, 50_000, 100_000},
		}),
		PaymentFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "payment_failures_total",
			Help:      "Declined payments by method.",
		}, []string{"method"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		m.CartMutations,
		m.CartItems,
		m.SignIns,
		m.SignUps,
		m.OrdersPlaced,
		m.Revenue,
		m.OrderValue,
		m.PaymentFailures,
	)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Subscribe keeps the collectors in step with the store's events.
func (m *Metrics) Subscribe(d *event.Dispatcher) {
	d.Listen(event.CartUpdated, func(p interface{}) {
		u, ok := p.(services.CartUpdate)
		if !ok {
			return
		}
		m.CartMutations.WithLabelValues(u.Op).Inc()
		m.CartItems.Set(float64(u.Count))
	})
	d.Listen(event.UserSignedUp, func(interface{}) { m.SignUps.Inc() })
	d.Listen(event.UserSignedIn, func(interface{}) { m.SignIns.WithLabelValues("success").Inc() })
	d.Listen(event.SignInFailed, func(interface{}) { m.SignIns.WithLabelValues("failure").Inc() })
	d.Listen(event.OrderPlaced, func(p interface{}) {
		o, ok := p.(models.Order)
		if !ok {
			return
		}
		total := o.Total.InexactFloat64()
		m.OrdersPlaced.WithLabelValues(string(o.PaymentMethod)).Inc()
		m.Revenue.Add(total)
		m.OrderValue.Observe(total)
	})
	d.Listen(event.PaymentFailed, func(p interface{}) {
		if f, ok := p.(services.PaymentFailure); ok {
			m.PaymentFailures.WithLabelValues(string(f.Method)).Inc()
		}
	})
}

// WriteTextfile writes the registry in the text exposition format to path,
// atomically. An empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
