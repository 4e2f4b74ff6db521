// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with the small
functional helpers the in-memory store relies on.
*/
package slice

import (
	"cmp"
	"maps"
	"slices"
)

// Map maps a slice of type T to a slice of type U using the provided transformation function.
// The result is never nil.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}

// Filter returns the elements where predicate is true, preserving order.
// The result is never nil.
func Filter[T any](input []T, predicate func(T) bool) []T {
	result := []T{}
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// ValuesByKey returns the values of m ordered by ascending key.
func ValuesByKey[K cmp.Ordered, V any](m map[K]V) []V {
	result := make([]V, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		result = append(result, m[key])
	}
	return result
}
