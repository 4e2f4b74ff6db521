package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/fyyur/pkg/pagination"
)

func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		name  string
		query string
		page  int
		limit int
	}{
		{"defaults", "", pagination.DefaultPage, pagination.DefaultLimit},
		{"explicit", "?page=3&limit=5", 3, 5},
		{"negative_page", "?page=-2", pagination.DefaultPage, pagination.DefaultLimit},
		{"limit_too_large", "?limit=1000", pagination.DefaultPage, pagination.DefaultLimit},
		{"garbage", "?page=abc&limit=xyz", pagination.DefaultPage, pagination.DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := pagination.FromRequest(httptest.NewRequest("GET", "/artists"+tt.query, nil))
			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.limit, params.Limit)
		})
	}
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 10, 25)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 10, pagination.Params{Page: 2, Limit: 10}.Offset())
}

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, pagination.Window(items, 2, 0))
	assert.Equal(t, []int{5}, pagination.Window(items, 2, 4))
	assert.Equal(t, []int{}, pagination.Window(items, 2, 10))
	assert.Equal(t, []int{}, pagination.Window(items, 0, 0))
}
