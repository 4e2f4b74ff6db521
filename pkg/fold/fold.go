// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package fold provides Unicode-aware case-insensitive string matching.
//
// It mirrors the semantics of PostgreSQL ILIKE '%term%' for stores that
// cannot push the search down to SQL.
package fold

import (
	"strings"

	"golang.org/x/text/cases"
)

// String returns the case-folded form of s (e.g. "Straße" and "STRASSE" fold alike).
func String(s string) string {
	return cases.Fold().String(s)
}

// Contains reports whether term occurs in s, ignoring case.
//
// An empty term matches every string.
func Contains(s, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(String(s), String(term))
}
