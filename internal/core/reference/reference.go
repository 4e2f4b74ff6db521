// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reference holds the closed tag sets shared by venues and artists.

Genres and US state codes are fixed vocabularies validated at the mutation
boundary. They are plain data, not user-editable records.
*/
package reference

import "slices"

// # Genre Vocabulary

var genres = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Swing",
	"Other",
}

// # State Vocabulary

var states = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

var (
	genreSet = toSet(genres)
	stateSet = toSet(states)
)

// Genres returns the allowed genre tags in display order.
func Genres() []string {
	return slices.Clone(genres)
}

// States returns the allowed state codes in display order.
func States() []string {
	return slices.Clone(states)
}

// IsGenre reports whether tag is an allowed genre (exact, case-sensitive).
func IsGenre(tag string) bool {
	_, ok := genreSet[tag]
	return ok
}

// IsState reports whether code is an allowed state code.
func IsState(code string) bool {
	_, ok := stateSet[code]
	return ok
}

// NormalizeGenres removes duplicates while keeping first-seen order,
// so a genre list behaves as a set without losing the editor's ordering.
func NormalizeGenres(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))

	for _, tag := range tags {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}
