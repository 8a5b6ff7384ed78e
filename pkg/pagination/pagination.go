package pagination

import (
	"net/http"
	"strconv"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
	maxPerPage     = 100
)

// Params holds page-based pagination parameters parsed from a request.
type Params struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Offset  int `json:"-"`
}

// Default returns the default pagination parameters.
func Default() Params {
	return Params{Page: defaultPage, PerPage: defaultPerPage}
}

// FromRequest parses the page and per_page query parameters. Missing or
// out-of-range values fall back to defaults; per_page is capped at 100.
func FromRequest(r *http.Request) Params {
	p := Default()

	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			p.Page = v
		}
	}
	if raw := r.URL.Query().Get("per_page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= maxPerPage {
			p.PerPage = v
		}
	}

	p.Offset = (p.Page - 1) * p.PerPage
	return p
}
