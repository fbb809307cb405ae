package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shashiranjanraj/pitstore/app/models"
	"github.com/shashiranjanraj/pitstore/app/repositories"
	"github.com/shashiranjanraj/pitstore/pkg/collection"
	"github.com/shashiranjanraj/pitstore/pkg/event"
	"github.com/shashiranjanraj/pitstore/pkg/logger"
	"github.com/shashiranjanraj/pitstore/pkg/reqid"
	"github.com/shashiranjanraj/pitstore/pkg/validate"
)

// CheckoutRequest is what the shopper submits. A blank Method means UPI and
// a nil Address means "use my profile".
type CheckoutRequest struct {
	Method      models.PaymentMethod `json:"method" validate:"required,in=upi,card,netbanking,cod"`
	PaymentData map[string]string    `json:"paymentData"`
	Address     *models.Address      `json:"address"`
}

// PaymentFailure is the payload of event.PaymentFailed.
type PaymentFailure struct {
	AttemptID string
	Method    models.PaymentMethod
	Message   string
}

// CheckoutService turns the cart into orders.
type CheckoutService struct {
	mu        sync.Mutex
	cart      *CartService
	auth      *AuthService
	repo      *repositories.OrderRepository
	processor PaymentProcessor
	pricing   Pricing
	events    *event.Dispatcher
	now       func() time.Time

	ledger []models.Order
}

func NewCheckoutService(cart *CartService, auth *AuthService, repo *repositories.OrderRepository, processor PaymentProcessor, pricing Pricing, events *event.Dispatcher, now func() time.Time) *CheckoutService {
	if now == nil {
		now = time.Now
	}
	return &CheckoutService{
		cart:      cart,
		auth:      auth,
		repo:      repo,
		processor: processor,
		pricing:   pricing,
		events:    events,
		now:       now,
		ledger:    []models.Order{},
	}
}

// Load rehydrates the order ledger.
func (s *CheckoutService) Load(ctx context.Context) error {
	orders, err := s.repo.All(ctx)
	if err != nil {
		return fmt.Errorf("checkout: load orders: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = orders
	return nil
}

// Quote prices the current cart for method without placing an order.
func (s *CheckoutService) Quote(method models.PaymentMethod) Quote {
	if method == "" {
		method = models.PaymentUPI
	}
	return s.pricing.Quote(s.cart.Total(), method)
}

// Checkout charges the signed-in user for the cart and records the order.
// On a declined payment nothing is written and the cart is kept.
//
// The order is priced from the cart as it stands once the payment succeeds,
// so lines added while the payment is pending are ordered too. The ledger is
// written first; if attaching the order to the user or clearing the cart
// fails afterwards, the order stays in the ledger and is returned along with
// the error.
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (models.Order, error) {
	ctx, attempt := reqid.Start(ctx)
	log := logger.WithCtx(ctx)

	if req.Method == "" {
		req.Method = models.PaymentUPI
	}
	if errs := validate.Struct(req); validate.HasErrors(errs) {
		return models.Order{}, &ValidationError{Fields: errs}
	}

	user, ok := s.auth.Current()
	if !ok {
		return models.Order{}, ErrUnauthenticated
	}
	if s.cart.IsEmpty() {
		return models.Order{}, ErrEmptyCart
	}
	log.Info("checkout: charging", "user_id", user.ID, "method", req.Method,
		"total", s.pricing.Quote(s.cart.Total(), req.Method).Total.StringFixed(2))

	result, err := s.processor.Process(ctx, req.Method, req.PaymentData)
	if err != nil {
		log.Error("checkout: payment error", "error", err)
		return models.Order{}, fmt.Errorf("checkout: payment: %w", err)
	}
	if !result.Success {
		log.Warn("checkout: payment declined", "message", result.Message)
		s.events.Fire(event.PaymentFailed, PaymentFailure{AttemptID: attempt, Method: req.Method, Message: result.Message})
		return models.Order{}, &PaymentError{Message: result.Message}
	}

	items := s.cart.Lines()
	quote := s.pricing.Quote(linesTotal(items), req.Method)
	address := ResolveAddress(req.Address, user)

	s.mu.Lock()
	now := s.now()
	order := models.Order{
		ID:              s.nextID(now),
		UserID:          user.ID,
		Items:           items,
		Subtotal:        quote.Subtotal,
		Shipping:        quote.Shipping,
		Tax:             quote.Tax,
		CODCharge:       quote.CODCharge,
		Total:           quote.Total,
		Status:          models.OrderStatusConfirmed,
		PaymentMethod:   req.Method,
		TransactionID:   result.TransactionID,
		CreatedAt:       now,
		ShippingAddress: address,
		BillingAddress:  address,
	}
	ledger := append(cloneOrders(s.ledger), order)
	if err := s.repo.Save(ctx, ledger); err != nil {
		s.mu.Unlock()
		return models.Order{}, fmt.Errorf("checkout: save order: %w", err)
	}
	s.ledger = ledger
	s.mu.Unlock()

	if err := s.auth.AttachOrder(ctx, order.ID); err != nil {
		log.Warn("checkout: order saved but not attached to user", "order_id", order.ID, "error", err)
		return order, fmt.Errorf("checkout: order %d placed: %w", order.ID, err)
	}
	if err := s.cart.Clear(ctx); err != nil {
		log.Warn("checkout: order saved but cart not cleared", "order_id", order.ID, "error", err)
		return order, fmt.Errorf("checkout: order %d placed: %w", order.ID, err)
	}

	log.Info("checkout: order placed", "order_id", order.ID, "transaction_id", order.TransactionID)
	s.events.Fire(event.OrderPlaced, order)
	return order, nil
}

// Orders returns the signed-in user's orders, newest first.
func (s *CheckoutService) Orders(ctx context.Context) ([]models.Order, error) {
	user, ok := s.auth.Current()
	if !ok {
		return nil, ErrUnauthenticated
	}
	logger.WithCtx(ctx).Debug("checkout: listing orders", "user_id", user.ID)

	s.mu.Lock()
	defer s.mu.Unlock()
	mine := collection.Filter(s.ledger, func(o models.Order) bool { return o.UserID == user.ID })
	return newestFirst(mine), nil
}

// Order returns one order. Shoppers only see their own orders; admins see
// any. An order the caller may not see is reported as not found.
func (s *CheckoutService) Order(ctx context.Context, id int64) (models.Order, error) {
	user, ok := s.auth.Current()
	if !ok {
		return models.Order{}, ErrUnauthenticated
	}
	admin := s.auth.IsAdmin()

	s.mu.Lock()
	defer s.mu.Unlock()
	order, found := collection.First(s.ledger, func(o models.Order) bool { return o.ID == id })
	if !found || (!admin && order.UserID != user.ID) {
		logger.WithCtx(ctx).Debug("checkout: order hidden", "order_id", id, "user_id", user.ID)
		return models.Order{}, notFound("order", id)
	}
	return cloneOrder(order), nil
}

// AllOrders returns the whole ledger, newest first. Admin only.
func (s *CheckoutService) AllOrders(ctx context.Context) ([]models.Order, error) {
	if err := s.auth.RequireAdmin(); err != nil {
		logger.WithCtx(ctx).Debug("checkout: ledger listing refused", "error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return newestFirst(s.ledger), nil
}

// nextID derives an order id from the clock, bumped past the highest id in
// the ledger so ids stay unique and increasing. Callers hold s.mu.
func (s *CheckoutService) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	last := collection.Reduce(s.ledger, int64(0), func(m int64, o models.Order) int64 { return max(m, o.ID) })
	if id <= last {
		id = last + 1
	}
	return id
}

func newestFirst(orders []models.Order) []models.Order {
	sorted := collection.SortedBy(cloneOrders(orders), func(a, b models.Order) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return sorted
}

func cloneOrders(orders []models.Order) []models.Order {
	return collection.Map(orders, cloneOrder)
}

func cloneOrder(o models.Order) models.Order {
	o.Items = models.CloneLines(o.Items)
	return o
}
