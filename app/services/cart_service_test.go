package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/pitstore/app/models"
	"github.com/shashiranjanraj/pitstore/app/repositories"
	"github.com/shashiranjanraj/pitstore/app/services"
	"github.com/shashiranjanraj/pitstore/pkg/event"
	"github.com/shashiranjanraj/pitstore/pkg/kv"
)

func TestCartAddMergesSameLine(t *testing.T) {
	h := newHarness(t)

	_, err := h.cart.Add(h.ctx, 1, 1, "M", "Red")
	require.NoError(t, err)
	line, err := h.cart.Add(h.ctx, 1, 2, "M", "Red")
	require.NoError(t, err)

	assert.Equal(t, 3, line.Quantity)
	require.Len(t, h.cart.Lines(), 1)
	assert.Equal(t, 3, h.cart.Count())
}

func TestCartAddKeepsDistinctOptionsApart(t *testing.T) {
	h := newHarness(t)

	_, err := h.cart.Add(h.ctx, 1, 1, "M", "Red")
	require.NoError(t, err)
	_, err = h.cart.Add(h.ctx, 1, 1, "L", "Red")
	require.NoError(t, err)

	assert.Len(t, h.cart.Lines(), 2)
}

func TestCartAddDefaultsOptionsBeforeMatching(t *testing.T) {
	h := newHarness(t)

	line, err := h.cart.Add(h.ctx, 2, 1, "", "")
	require.NoError(t, err)
	assert.Equal(t, "One Size", line.Size)
	assert.Equal(t, "Red", line.Color)

	_, err = h.cart.Add(h.ctx, 2, 0, "One Size", "Red")
	require.NoError(t, err)

	lines := h.cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity, "explicit defaults merge; quantity below one adds one")
}

func TestCartAddSnapshotsProduct(t *testing.T) {
	h := newHarness(t)

	line, err := h.cart.Add(h.ctx, 4, 1, "", "Orange")
	require.NoError(t, err)
	assert.Equal(t, models.CartLine{
		ProductID: 4, Name: "McLaren Racing Watch", Price: 16599, Image: "⌚",
		Quantity: 1, Size: "One Size", Color: "Orange",
	}, line)
}

func TestCartAddUnknownProduct(t *testing.T) {
	h := newHarness(t)

	_, err := h.cart.Add(h.ctx, 99, 1, "", "")
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.True(t, h.cart.IsEmpty())
}

func TestCartRemove(t *testing.T) {
	h := newHarness(t)
	_, err := h.cart.Add(h.ctx, 1, 1, "M", "Red")
	require.NoError(t, err)
	_, err = h.cart.Add(h.ctx, 2, 1, "", "")
	require.NoError(t, err)

	require.NoError(t, h.cart.Remove(h.ctx, 1, "L", "Red"), "absent line is a no-op")
	assert.Len(t, h.cart.Lines(), 2)

	require.NoError(t, h.cart.Remove(h.ctx, 2, "", ""))
	lines := h.cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].ProductID)
}

func TestCartUpdateQuantity(t *testing.T) {
	h := newHarness(t)
	_, err := h.cart.Add(h.ctx, 1, 1, "M", "Red")
	require.NoError(t, err)

	require.NoError(t, h.cart.UpdateQuantity(h.ctx, 1, 5, "M", "Red"))
	assert.Equal(t, 5, h.cart.Count())

	require.NoError(t, h.cart.UpdateQuantity(h.ctx, 1, 3, "XL", "Red"))
	assert.Equal(t, 5, h.cart.Count(), "unknown line is a no-op")

	require.NoError(t, h.cart.UpdateQuantity(h.ctx, 1, 0, "M", "Red"))
	assert.True(t, h.cart.IsEmpty(), "zero removes the line")
}

func TestCartUpdateToZeroEqualsRemove(t *testing.T) {
	a, b := newHarness(t), newHarness(t)
	for _, h := range []*harness{a, b} {
		_, err := h.cart.Add(h.ctx, 3, 2, "S", "Black")
		require.NoError(t, err)
		_, err = h.cart.Add(h.ctx, 5, 1, "", "")
		require.NoError(t, err)
	}

	require.NoError(t, a.cart.UpdateQuantity(a.ctx, 3, -1, "S", "Black"))
	require.NoError(t, b.cart.Remove(b.ctx, 3, "S", "Black"))

	assert.Equal(t, b.cart.Lines(), a.cart.Lines())
}

func TestCartTotalAndClear(t *testing.T) {
	h := newHarness(t)
	_, err := h.cart.Add(h.ctx, 1, 2, "M", "Red")
	require.NoError(t, err)
	_, err = h.cart.Add(h.ctx, 7, 3, "", "")
	require.NoError(t, err)

	assert.Equal(t, int64(2*7499+3*2074), h.cart.Total())
	assert.Equal(t, 5, h.cart.Count())

	require.NoError(t, h.cart.Clear(h.ctx))
	assert.Equal(t, 0, h.cart.Count())
	assert.Equal(t, int64(0), h.cart.Total())
	assert.True(t, h.cart.IsEmpty())
}

func TestCartPersistsAndReloads(t *testing.T) {
	store := kv.NewMemory()
	h := newHarnessWith(t, store, approve(), false)
	_, err := h.cart.Add(h.ctx, 8, 2, "XL", "Blue")
	require.NoError(t, err)

	reloaded := newHarnessWith(t, store, approve(), false)
	assert.Equal(t, h.cart.Lines(), reloaded.cart.Lines())
	assert.Equal(t, 2, reloaded.cart.Count())
}

func TestCartKeepsStateWhenSaveFails(t *testing.T) {
	store := &failingStore{Store: kv.NewMemory()}
	h := newHarnessWith(t, store, approve(), false)
	_, err := h.cart.Add(h.ctx, 1, 1, "M", "Red")
	require.NoError(t, err)

	store.armed = true
	_, err = h.cart.Add(h.ctx, 1, 1, "M", "Red")
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, 1, h.cart.Count())
}

func TestCartFiresUpdates(t *testing.T) {
	h := newHarness(t)
	var got []services.CartUpdate
	h.events.Listen(event.CartUpdated, func(p interface{}) { got = append(got, p.(services.CartUpdate)) })

	_, err := h.cart.Add(h.ctx, 2, 2, "", "")
	require.NoError(t, err)
	require.NoError(t, h.cart.Clear(h.ctx))

	assert.Equal(t, []services.CartUpdate{
		{Op: "add", Count: 2, Total: 7634},
		{Op: "clear", Count: 0, Total: 0},
	}, got)
}

func TestResolveOptions(t *testing.T) {
	p := models.Product{Sizes: []string{"S", "M"}, Colors: []string{"Teal"}}

	assert.Equal(t, "M", services.ResolveSize(&p, "M"))
	assert.Equal(t, "S", services.ResolveSize(&p, ""))
	assert.Equal(t, "", services.ResolveSize(nil, ""))
	assert.Equal(t, "Teal", services.ResolveColor(&p, ""))
	assert.Equal(t, "", services.ResolveColor(&models.Product{}, ""))
}

func TestCartRepositoryShapeAfterAdd(t *testing.T) {
	store := kv.NewMemory()
	h := newHarnessWith(t, store, approve(), false)
	_, err := h.cart.Add(h.ctx, 2, 1, "", "")
	require.NoError(t, err)

	lines, err := repositories.NewCartRepository(store, repositories.NewKeys("f1_")).Load(h.ctx)
	require.NoError(t, err)
	assert.Equal(t, h.cart.Lines(), lines)
}
