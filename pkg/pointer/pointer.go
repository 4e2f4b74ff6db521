// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional fields.

Listing records model optional links and descriptions as pointers so that
"absent" and "empty" encode the same way (JSON null).

Key Functions:
  - To: Creates a pointer from a value literal.
  - Fallback: Dereferences a pointer, returning a fallback value if nil.
  - NilIfZero: Collapses a pointer to a zero value into nil.
*/
package pointer

// To returns a pointer to the provided value (e.g. pointer.To("https://...")).
func To[T any](v T) *T {
	return &v
}

// Fallback safely dereferences a pointer.
// If the pointer is nil, it returns the provided fallback value instead.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// NilIfZero returns nil when p is nil or points at the zero value of T,
// otherwise a pointer to a copy of *p.
func NilIfZero[T comparable](p *T) *T {
	var zero T
	if p == nil || *p == zero {
		return nil
	}
	v := *p
	return &v
}
