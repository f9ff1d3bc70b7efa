package pagination

import "strconv"

// Page is a read-side window over an ordered result set. It never owns or
// mutates the underlying rows, it only carries one fetched slice plus the
// numbers the templates need to draw pager controls.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Number     int   `json:"number"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// ParsePageNumber maps the raw "page" query value to a 1-based page number.
// Absent, non-numeric or non-positive values all mean page 1.
func ParsePageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// TotalPages computes the page count for a result set. An empty set still
// has one (empty) page, so out-of-range requests have somewhere to clamp to.
func TotalPages(totalItems int64, size int) int {
	if size < 1 {
		return 1
	}
	pages := int((totalItems + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Clamp bounds a requested page number into [1, TotalPages] and returns the
// effective page number together with the row offset to fetch it.
func Clamp(number int, totalItems int64, size int) (page int, offset int) {
	page = number
	if page < 1 {
		page = 1
	}
	if last := TotalPages(totalItems, size); page > last {
		page = last
	}
	return page, (page - 1) * size
}

// New assembles a Page from an already fetched slice. The number is expected
// to have been clamped beforehand.
func New[T any](items []T, number int, size int, totalItems int64) *Page[T] {
	return &Page[T]{
		Items:      items,
		Number:     number,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: TotalPages(totalItems, size),
	}
}

func (p *Page[T]) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p *Page[T]) HasPrevious() bool {
	return p.Number > 1
}

func (p *Page[T]) NextNumber() int {
	if p.HasNext() {
		return p.Number + 1
	}
	return p.Number
}

func (p *Page[T]) PreviousNumber() int {
	if p.HasPrevious() {
		return p.Number - 1
	}
	return p.Number
}
