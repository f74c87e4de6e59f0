// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

// Product is a single catalog record.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OffsetPage is the response shape of offset-based listing.
// NextOffset is nil once the window reaches the end of the catalog.
type OffsetPage struct {
	Count      int       `json:"count"`
	Limit      int       `json:"limit"`
	Offset     int       `json:"offset"`
	NextOffset *int      `json:"next_offset"`
	Results    []Product `json:"results"`
}

// CursorPage is the response shape of cursor-based listing.
// Cursor echoes what the caller sent; NextCursor is what to send next.
type CursorPage struct {
	Count      int       `json:"count"`
	Limit      int       `json:"limit"`
	Cursor     *int64    `json:"cursor"`
	NextCursor *int64    `json:"next_cursor"`
	Results    []Product `json:"results"`
}
