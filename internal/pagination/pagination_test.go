package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yatube/internal/pagination"
)

func TestParsePageNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "absent", raw: "", want: 1},
		{name: "valid", raw: "3", want: 3},
		{name: "first page", raw: "1", want: 1},
		{name: "non-numeric", raw: "abc", want: 1},
		{name: "zero", raw: "0", want: 1},
		{name: "negative", raw: "-2", want: 1},
		{name: "float", raw: "1.5", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.ParsePageNumber(tt.raw))
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		number     int
		totalItems int64
		size       int
		wantPage   int
		wantOffset int
	}{
		{name: "first page", number: 1, totalItems: 13, size: 10, wantPage: 1, wantOffset: 0},
		{name: "last partial page", number: 2, totalItems: 13, size: 10, wantPage: 2, wantOffset: 10},
		{name: "beyond last clamps", number: 3, totalItems: 13, size: 10, wantPage: 2, wantOffset: 10},
		{name: "way beyond last clamps", number: 999, totalItems: 13, size: 10, wantPage: 2, wantOffset: 10},
		{name: "empty set clamps to one", number: 5, totalItems: 0, size: 10, wantPage: 1, wantOffset: 0},
		{name: "exact multiple", number: 2, totalItems: 20, size: 10, wantPage: 2, wantOffset: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, offset := pagination.Clamp(tt.number, tt.totalItems, tt.size)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3}
	page := pagination.New(items, 2, 10, 23)

	assert.Equal(t, 3, len(page.Items))
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(23), page.TotalItems)
	assert.True(t, page.HasNext())
	assert.True(t, page.HasPrevious())
	assert.Equal(t, 3, page.NextNumber())
	assert.Equal(t, 1, page.PreviousNumber())

	first := pagination.New([]int{}, 1, 10, 0)
	assert.Equal(t, 1, first.TotalPages)
	assert.False(t, first.HasNext())
	assert.False(t, first.HasPrevious())
	assert.Equal(t, 1, first.NextNumber())
	assert.Equal(t, 1, first.PreviousNumber())
}
