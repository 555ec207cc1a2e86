package generics

import "strconv"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPage         = 1_000_000
)

/*
Page represents a paginated result set with metadata.

Fields:
- Page: Current page number (1-indexed)
- Size: Requested page size after clamping
- TotalPages: Total number of pages based on TotalResults and Size
- TotalResults: Total number of records found in the database
- Content: Slice containing the actual data records for the current page
*/
type Page[T any] struct {
	Page         int `json:"page"`
	Size         int `json:"size"`
	TotalPages   int `json:"totalPages"`
	TotalResults int `json:"totalResults"`
	Content      []T `json:"content"`
}

// NormalizePage clamps the requested page and size to usable values.
func NormalizePage(page, size int) (int, int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if page <= 0 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	return page, size
}

// NewPage maps a page of records and computes the page count. An empty
// result still reports one page.
func NewPage[S, T any](records []S, page, size, total int, mapFn func(S) T) Page[T] {
	content := make([]T, 0, len(records))
	for _, r := range records {
		content = append(content, mapFn(r))
	}

	totalPages := (total + size - 1) / size
	if total == 0 {
		totalPages = 1
	}

	return Page[T]{
		Page:         page,
		Size:         size,
		TotalPages:   totalPages,
		TotalResults: total,
		Content:      content,
	}
}

func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}
