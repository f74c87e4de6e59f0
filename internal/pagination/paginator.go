package pagination

import "github.com/maxviazov/product-pagination-service/internal/model"

// OffsetPaginator pages a fixed source by absolute position.
type OffsetPaginator struct {
	src Source
}

// NewOffsetPaginator binds an offset paginator to src for its whole lifetime.
func NewOffsetPaginator(src Source) *OffsetPaginator { return &OffsetPaginator{src: src} }

// Paginate expects offset >= 0 and limit >= 1; callers validate before calling.
func (p *OffsetPaginator) Paginate(offset, limit int) model.OffsetPage {
	return Offset(p.src, offset, limit)
}

// CursorPaginator pages a fixed source by resuming after a known id.
type CursorPaginator struct {
	src Source
}

func NewCursorPaginator(src Source) *CursorPaginator { return &CursorPaginator{src: src} }

func (p *CursorPaginator) Paginate(cursor *int64, limit int) model.CursorPage {
	return Cursor(p.src, cursor, limit)
}
