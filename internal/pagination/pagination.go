// Package pagination computes pages over a catalog.
// Both strategies are pure: the paging state lives in the caller as an offset or a cursor.
package pagination

import (
	"github.com/maxviazov/product-pagination-service/internal/model"
)

// Source is the read-only view of a catalog the paginators need.
type Source interface {
	Len() int
	Slice(start, end int) []model.Product
	Position(id int64) (int, bool)
}

// Offset returns the products at positions [offset, offset+limit).
// An offset past the end is a valid terminal page with no results.
func Offset(src Source, offset, limit int) model.OffsetPage {
	n := src.Len()
	end, more := window(n, offset, limit)
	page := model.OffsetPage{
		Count:   n,
		Limit:   limit,
		Offset:  offset,
		Results: src.Slice(offset, end),
	}
	if more {
		page.NextOffset = &end
	}
	return page
}

// Cursor returns up to limit products following the product with id *cursor.
// A nil or unknown cursor starts from the beginning.
func Cursor(src Source, cursor *int64, limit int) model.CursorPage {
	start := 0
	if cursor != nil {
		if pos, ok := src.Position(*cursor); ok {
			start = pos + 1
		}
	}

	n := src.Len()
	end, _ := window(n, start, limit)
	results := src.Slice(start, end)
	page := model.CursorPage{
		Count:   n,
		Limit:   limit,
		Results: results,
	}
	if cursor != nil {
		echo := *cursor
		page.Cursor = &echo
	}
	if len(results) > 0 {
		last := results[len(results)-1].ID
		page.NextCursor = &last
	}
	return page
}

// window returns the exclusive end of [start, start+limit) clipped to n,
// and whether positions remain after it. It never overflows on large starts.
func window(n, start, limit int) (end int, more bool) {
	if start < n && limit < n-start {
		return start + limit, true
	}
	return n, false
}
