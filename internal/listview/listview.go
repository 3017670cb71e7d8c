// Package listview implements the shared list contract behind the cases,
// clients, and evidence views: case-insensitive free-text search over a
// fixed field set, AND-composed categorical filters with an "All" wildcard,
// and 1-indexed page slicing with the page clamped to the filtered total.
package listview

import "strings"

// Wildcard matches every item when used as a categorical filter value.
const Wildcard = "All"

// DefaultPageSize is the page size of the cases table.
const DefaultPageSize = 8

// MatchText reports whether the query is a case-insensitive substring of any
// of the fields. An empty query matches everything.
func MatchText(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// MatchChoice reports whether a categorical filter accepts the value: either
// the filter is empty or the "All" wildcard, or it equals the value exactly.
func MatchChoice(filter, value string) bool {
	return filter == "" || filter == Wildcard || filter == value
}

// Filter returns the items accepted by match, preserving order.
func Filter[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out
}

// Page is one displayed slice of a filtered collection.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
}

// Paginate slices the filtered items for the 1-indexed page. TotalPages is
// at least 1 even when items is empty, and the requested page is clamped to
// [1, TotalPages] so a filter that narrows the result set can never leave
// the caller stranded on a blank page.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}
