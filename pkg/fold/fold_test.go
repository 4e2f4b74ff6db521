// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package fold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/fyyur/pkg/fold"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name string
		s    string
		term string
		want bool
	}{
		{"empty_term_matches_all", "The Musical Hop", "", true},
		{"case_insensitive", "The Musical Hop", "hop", true},
		{"upper_term", "Park Square Live Music & Coffee", "MUSIC", true},
		{"middle_of_word", "The Dueling Pianos Bar", "ueli", true},
		{"no_match", "Guns N Petals", "band", false},
		{"unicode_fold", "Café Straße", "STRASSE", true},
		{"percent_is_literal", "100% Jazz", "0% j", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fold.Contains(tt.s, tt.term))
		})
	}
}
