// Package collection provides generic, functional-style helpers for slices,
// in the spirit of Laravel's Collection API.
//
//	featured := collection.Filter(products, func(p models.Product) bool { return p.Featured })
//	names := collection.Map(lines, func(l models.CartLine) string { return l.Name })
package collection

import "sort"

// Map transforms each element of slice s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns elements of s for which fn returns true. The result never
// aliases s.
func Filter[T any](s []T, fn func(T) bool) []T {
	out := []T{}
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reject returns elements of s for which fn returns false.
func Reject[T any](s []T, fn func(T) bool) []T {
	return Filter(s, func(v T) bool { return !fn(v) })
}

// First returns the first element matching fn, or (zero, false).
func First[T any](s []T, fn func(T) bool) (T, bool) {
	for _, v := range s {
		if fn(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// IndexOf returns the index of the first element matching fn, or -1.
func IndexOf[T any](s []T, fn func(T) bool) int {
	for i, v := range s {
		if fn(v) {
			return i
		}
	}
	return -1
}

// Contains reports whether any element of s satisfies fn.
func Contains[T any](s []T, fn func(T) bool) bool {
	return IndexOf(s, fn) >= 0
}

// Reduce folds s into a single value using fn, starting with initial.
func Reduce[T, R any](s []T, initial R, fn func(carry R, item T) R) R {
	carry := initial
	for _, v := range s {
		carry = fn(carry, v)
	}
	return carry
}

// Counted is one bucket produced by CountBy.
type Counted[K comparable] struct {
	Key   K
	Count int
}

// CountBy groups s by the key fn returns and counts each group. Buckets come
// back in first-seen order.
func CountBy[T any, K comparable](s []T, fn func(T) K) []Counted[K] {
	index := map[K]int{}
	var out []Counted[K]
	for _, v := range s {
		k := fn(v)
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, Counted[K]{Key: k, Count: 1})
	}
	return out
}

// SortedBy returns a sorted copy of s; s itself is left untouched. Equal
// elements keep their relative order.
func SortedBy[T any](s []T, less func(a, b T) bool) []T {
	out := make([]T, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
