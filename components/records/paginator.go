package records

// DefaultPageSize applies when a window carries no usable page size.
const DefaultPageSize = 5

// PageWindow selects a 1-based page of a fixed size.
type PageWindow struct {
	Index int `json:"page" yaml:"page"`
	Size  int `json:"page_size" yaml:"page_size"`
}

// Page is the visible slice of a filtered sequence.
type Page[T any] struct {
	Items      []T `json:"items"`
	Index      int `json:"page"`
	Size       int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	Total      int `json:"total"`
}

// Paginate slices filtered into the requested page. Out-of-range indexes clamp
// to the nearest valid page.
func Paginate[T any](filtered []T, window PageWindow) Page[T] {
	size := window.Size
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(filtered)
	totalPages := TotalPages(total, size)
	index := clamp(window.Index, 1, totalPages)

	start := (index - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	items := make([]T, 0, end-start)
	if start < end {
		items = append(items, filtered[start:end]...)
	}
	return Page[T]{
		Items:      items,
		Index:      index,
		Size:       size,
		TotalPages: totalPages,
		Total:      total,
	}
}

// TotalPages returns max(1, ceil(total/size)).
func TotalPages(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// HasPrevious reports whether an earlier page exists.
func (p Page[T]) HasPrevious() bool {
	return p.Index > 1
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool {
	return p.Index < p.TotalPages
}

// Range returns the 1-based positions of the first and last visible items, or
// (0, 0) for an empty page.
func (p Page[T]) Range() (first, last int) {
	if len(p.Items) == 0 {
		return 0, 0
	}
	first = (p.Index-1)*p.Size + 1
	return first, first + len(p.Items) - 1
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
