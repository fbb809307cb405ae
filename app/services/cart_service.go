package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/shashiranjanraj/pitstore/app/models"
	"github.com/shashiranjanraj/pitstore/app/repositories"
	"github.com/shashiranjanraj/pitstore/pkg/collection"
	"github.com/shashiranjanraj/pitstore/pkg/event"
	"github.com/shashiranjanraj/pitstore/pkg/logger"
)

// CartUpdate is the payload of event.CartUpdated.
type CartUpdate struct {
	Op    string
	Count int
	Total int64
}

// CartService owns the cart. Each mutation is persisted before it becomes
// visible: if the snapshot cannot be written the in-memory cart is left as
// it was.
type CartService struct {
	mu      sync.Mutex
	catalog *CatalogService
	repo    *repositories.CartRepository
	events  *event.Dispatcher

	lines []models.CartLine
	count int
}

func NewCartService(catalog *CatalogService, repo *repositories.CartRepository, events *event.Dispatcher) *CartService {
	return &CartService{catalog: catalog, repo: repo, events: events, lines: []models.CartLine{}}
}

// Load rehydrates the cart from its snapshot.
func (s *CartService) Load(ctx context.Context) error {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("cart: load: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = lines
	s.count = countUnits(lines)
	return nil
}

// Add puts quantity units of a product in the cart; anything below one adds
// a single unit. Blank size or color fall back to the product's first
// declared option before the cart is searched, so repeated adds merge into
// one line.
func (s *CartService) Add(ctx context.Context, productID int64, quantity int, size, color string) (models.CartLine, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.catalog.Find(productID)
	if err != nil {
		return models.CartLine{}, err
	}
	key := models.LineKey{
		ProductID: productID,
		Size:      ResolveSize(&product, size),
		Color:     ResolveColor(&product, color),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := models.CloneLines(s.lines)
	i := indexOfKey(next, key)
	if i >= 0 {
		next[i].Quantity += quantity
	} else {
		next = append(next, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
			Size:      key.Size,
			Color:     key.Color,
		})
		i = len(next) - 1
	}

	if err := s.commit(ctx, "add", next); err != nil {
		return models.CartLine{}, err
	}
	logger.WithCtx(ctx).Debug("cart: added", "product_id", productID, "size", key.Size, "color", key.Color, "quantity", next[i].Quantity)
	return next[i], nil
}

// Remove deletes the line for the product/size/color. Removing a line that
// is not in the cart changes nothing.
func (s *CartService) Remove(ctx context.Context, productID int64, size, color string) error {
	key := s.resolveKey(productID, size, color)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := collection.Reject(s.lines, func(l models.CartLine) bool { return l.Key() == key })
	return s.commit(ctx, "remove", next)
}

// UpdateQuantity overwrites a line's quantity. A quantity of zero or less
// removes the line. Updating a line that is not in the cart is a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, productID int64, quantity int, size, color string) error {
	if quantity <= 0 {
		return s.Remove(ctx, productID, size, color)
	}
	key := s.resolveKey(productID, size, color)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOfKey(s.lines, key)
	if i < 0 {
		return nil
	}
	next := models.CloneLines(s.lines)
	next[i].Quantity = quantity
	return s.commit(ctx, "update", next)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, "clear", []models.CartLine{})
}

// Lines returns a copy of the cart lines in insertion order.
func (s *CartService) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneLines(s.lines)
}

// Count is the cached number of units in the cart.
func (s *CartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Total is the sum of unit price times quantity over every line.
func (s *CartService) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return linesTotal(s.lines)
}

func (s *CartService) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// commit persists next and only then swaps it in. Callers hold s.mu.
func (s *CartService) commit(ctx context.Context, op string, next []models.CartLine) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("cart: %s: %w", op, err)
	}
	s.lines = next
	s.count = countUnits(next)
	s.events.Fire(event.CartUpdated, CartUpdate{Op: op, Count: s.count, Total: linesTotal(next)})
	return nil
}

func (s *CartService) resolveKey(productID int64, size, color string) models.LineKey {
	var product *models.Product
	if p, err := s.catalog.Find(productID); err == nil {
		product = &p
	}
	return models.LineKey{
		ProductID: productID,
		Size:      ResolveSize(product, size),
		Color:     ResolveColor(product, color),
	}
}

// ResolveSize picks the size for a line: the requested one, else the
// product's first declared size, else blank.
func ResolveSize(p *models.Product, requested string) string {
	if requested != "" {
		return requested
	}
	if p != nil {
		return p.DefaultSize()
	}
	return ""
}

// ResolveColor picks the color for a line: the requested one, else the
// product's first declared color, else blank.
func ResolveColor(p *models.Product, requested string) string {
	if requested != "" {
		return requested
	}
	if p != nil {
		return p.DefaultColor()
	}
	return ""
}

func indexOfKey(lines []models.CartLine, key models.LineKey) int {
	return collection.IndexOf(lines, func(l models.CartLine) bool { return l.Key() == key })
}

func countUnits(lines []models.CartLine) int {
	return collection.Reduce(lines, 0, func(n int, l models.CartLine) int { return n + l.Quantity })
}

func linesTotal(lines []models.CartLine) int64 {
	return collection.Reduce(lines, int64(0), func(sum int64, l models.CartLine) int64 { return sum + l.Subtotal() })
}
