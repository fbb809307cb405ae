package services

import (
	"context"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/shashiranjanraj/pitstore/app/models"
)

// PaymentProcessor charges a customer. Implementations block until the
// payment settles or ctx is done.
type PaymentProcessor interface {
	Process(ctx context.Context, method models.PaymentMethod, data map[string]string) (models.PaymentResult, error)
}

// ProcessorFunc adapts a function to PaymentProcessor.
type ProcessorFunc func(ctx context.Context, method models.PaymentMethod, data map[string]string) (models.PaymentResult, error)

func (f ProcessorFunc) Process(ctx context.Context, method models.PaymentMethod, data map[string]string) (models.PaymentResult, error) {
	return f(ctx, method, data)
}

// SimulatedProcessor stands in for a payment gateway. It waits Delay, then
// approves with probability SuccessRate.
type SimulatedProcessor struct {
	Delay       time.Duration
	SuccessRate float64
	// Float64 returns a number in [0, 1). Defaults to math/rand/v2.
	Float64 func() float64
	// Now stamps transaction ids. Defaults to time.Now.
	Now func() time.Time
}

// NewSimulatedProcessor returns a processor with the given delay and
// success rate.
func NewSimulatedProcessor(delay time.Duration, successRate float64) *SimulatedProcessor {
	return &SimulatedProcessor{Delay: delay, SuccessRate: successRate}
}

func (p *SimulatedProcessor) Process(ctx context.Context, method models.PaymentMethod, _ map[string]string) (models.PaymentResult, error) {
	if p.Delay > 0 {
		t := time.NewTimer(p.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return models.PaymentResult{}, ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return models.PaymentResult{}, err
	}

	roll := rand.Float64
	if p.Float64 != nil {
		roll = p.Float64
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	if roll() < p.SuccessRate {
		return models.PaymentResult{
			Success:       true,
			TransactionID: "TXN" + strconv.FormatInt(now().UnixMilli(), 10),
			Message:       "Payment processed successfully",
		}, nil
	}
	return models.PaymentResult{
		Success: false,
		Message: "Payment failed. Please try again.",
	}, nil
}
