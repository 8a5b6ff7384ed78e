package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Defaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	p := FromRequest(req)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestFromRequest_CustomValues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users?page=3&per_page=50", nil)
	p := FromRequest(req)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.PerPage)
	assert.Equal(t, 100, p.Offset)
}

func TestFromRequest_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"negative page", "?page=-1"},
		{"zero page", "?page=0"},
		{"non-numeric page", "?page=abc"},
		{"zero per_page", "?per_page=0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users"+tt.query, nil)
			p := FromRequest(req)
			assert.Equal(t, 1, p.Page)
			assert.Equal(t, 20, p.PerPage)
		})
	}
}

func TestFromRequest_PerPageCap(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users?per_page=500", nil)
	p := FromRequest(req)
	assert.Equal(t, 20, p.PerPage)

	req = httptest.NewRequest(http.MethodGet, "/users?per_page=100", nil)
	p = FromRequest(req)
	assert.Equal(t, 100, p.PerPage)
}

func TestFromRequest_OffsetCalculation(t *testing.T) {
	tests := []struct {
		query  string
		offset int
	}{
		{"?page=1&per_page=10", 0},
		{"?page=2&per_page=10", 10},
		{"?page=5&per_page=25", 100},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/users"+tt.query, nil)
		assert.Equal(t, tt.offset, FromRequest(req).Offset)
	}
}
