package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/pitstore/pkg/collection"
)

type item struct {
	name  string
	group string
	n     int
}

var items = []item{
	{"a", "x", 3},
	{"b", "y", 1},
	{"c", "x", 2},
	{"d", "z", 1},
}

func TestFilterAndReject(t *testing.T) {
	x := collection.Filter(items, func(i item) bool { return i.group == "x" })
	assert.Len(t, x, 2)

	rest := collection.Reject(items, func(i item) bool { return i.group == "x" })
	assert.Equal(t, []string{"b", "d"}, collection.Map(rest, func(i item) string { return i.name }))

	none := collection.Filter(items, func(item) bool { return false })
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFirstAndIndexOf(t *testing.T) {
	got, ok := collection.First(items, func(i item) bool { return i.n == 1 })
	assert.True(t, ok)
	assert.Equal(t, "b", got.name)

	assert.Equal(t, 2, collection.IndexOf(items, func(i item) bool { return i.name == "c" }))
	assert.Equal(t, -1, collection.IndexOf(items, func(i item) bool { return i.name == "q" }))
	assert.False(t, collection.Contains(items, func(i item) bool { return i.n > 5 }))
}

func TestReduce(t *testing.T) {
	sum := collection.Reduce(items, 0, func(acc int, i item) int { return acc + i.n })
	assert.Equal(t, 7, sum)
}

func TestCountByKeepsFirstSeenOrder(t *testing.T) {
	got := collection.CountBy(items, func(i item) string { return i.group })
	assert.Equal(t, []collection.Counted[string]{
		{Key: "x", Count: 2},
		{Key: "y", Count: 1},
		{Key: "z", Count: 1},
	}, got)
}

func TestSortedByLeavesInputAlone(t *testing.T) {
	sorted := collection.SortedBy(items, func(a, b item) bool { return a.n < b.n })
	assert.Equal(t, []string{"b", "d", "c", "a"}, collection.Map(sorted, func(i item) string { return i.name }))
	assert.Equal(t, "a", items[0].name)
}
