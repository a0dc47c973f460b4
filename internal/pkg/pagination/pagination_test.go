//go:build unit
// +build unit

package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		page         string
		limit        string
		defaultLimit int
		expected     Params
	}{
		{"defaults", "", "", DefaultLimit, Params{Page: 1, Limit: 20}},
		{"log defaults", "", "", DefaultLogLimit, Params{Page: 1, Limit: 50}},
		{"explicit values", "3", "10", DefaultLimit, Params{Page: 3, Limit: 10}},
		{"non numeric", "abc", "x", DefaultLimit, Params{Page: 1, Limit: 20}},
		{"negative page", "-2", "5", DefaultLimit, Params{Page: 1, Limit: 5}},
		{"limit capped", "1", "1000", DefaultLimit, Params{Page: 1, Limit: MaxLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.page, tt.limit, tt.defaultLimit))
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, Params{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, Params{Page: 0, Limit: 20}.Offset())
}

func TestParams_Normalize(t *testing.T) {
	assert.Equal(t, Params{Page: 1, Limit: DefaultLimit}, Params{}.Normalize())
	assert.Equal(t, Params{Page: 2, Limit: MaxLimit}, Params{Page: 2, Limit: 500}.Normalize())
}

func TestNew_TotalPages(t *testing.T) {
	tests := []struct {
		total    int64
		limit    int
		expected int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{101, 50, 3},
	}

	for _, tt := range tests {
		p := New(Params{Page: 1, Limit: tt.limit}, tt.total)
		assert.Equal(t, tt.expected, p.TotalPages)
		assert.Equal(t, tt.total, p.Total)
	}
}
