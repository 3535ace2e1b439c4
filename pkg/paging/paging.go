// Package paging computes bounded pages over in-memory lists.
//
// Pagination state cannot live server-side (turns are stateless), so the
// caller echoes NextOffset back on the following turn. BuildPage therefore
// tolerates any caller-supplied offset, including stale or out-of-range ones.
package paging

import "strings"

// Page is one bounded window over a list.
type Page struct {
	Rendered   string // items of the window rendered and joined with ", "
	Count      int    // items in this window
	NextOffset int    // offset to echo back for the next page
	HasMore    bool   // true iff items remain beyond this window
}

// BuildPage renders the window [offset, offset+pageSize) of items.
// A negative offset is clamped to zero; an offset at or past the end yields
// an empty, well-formed page rather than an error.
func BuildPage[T any](items []T, offset, pageSize int, render func(T) string) Page {
	if offset < 0 {
		offset = 0
	}
	if pageSize <= 0 {
		pageSize = 1
	}

	if offset >= len(items) {
		return Page{NextOffset: offset}
	}

	end := offset + pageSize
	if end > len(items) {
		end = len(items)
	}

	parts := make([]string, 0, end-offset)
	for _, item := range items[offset:end] {
		parts = append(parts, render(item))
	}

	return Page{
		Rendered:   strings.Join(parts, ", "),
		Count:      end - offset,
		NextOffset: end,
		HasMore:    end < len(items),
	}
}
