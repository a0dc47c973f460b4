// Package pagination parses page/limit query parameters and builds the
// pagination block returned alongside every list response.
package pagination

import (
	"math"
	"strconv"
)

const (
	// DefaultPage is used when no page is given.
	DefaultPage = 1
	// DefaultLimit is the page size of every list except logs.
	DefaultLimit = 20
	// DefaultLogLimit is the page size of log lists.
	DefaultLogLimit = 50
	// MaxLimit caps the page size a client can request.
	MaxLimit = 100
)

// Params are the normalized page/limit of a list request.
type Params struct {
	Page  int
	Limit int
}

// Pagination is the block attached to list responses.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Parse builds Params from raw query values. Missing, non-numeric or
// non-positive values fall back to the defaults and limit is capped at MaxLimit.
func Parse(page, limit string, defaultLimit int) Params {
	p := Params{Page: DefaultPage, Limit: defaultLimit}

	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		p.Limit = n
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Default returns the first page with the given page size.
func Default(limit int) Params {
	return Params{Page: DefaultPage, Limit: limit}
}

// Offset is the number of rows to skip.
func (p Params) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Normalize fills zero values so repositories never issue LIMIT 0.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// New computes totalPages = ceil(total/limit).
func New(p Params, total int64) Pagination {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
