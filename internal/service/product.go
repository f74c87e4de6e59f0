package service

import (
	"context"
	"time"

	"github.com/maxviazov/product-pagination-service/internal/model"
	"github.com/rs/zerolog"
)

// OffsetPaginator is the offset strategy the service delegates to.
type OffsetPaginator interface {
	Paginate(offset, limit int) model.OffsetPage
}

// CursorPaginator is the cursor strategy the service delegates to.
type CursorPaginator interface {
	Paginate(cursor *int64, limit int) model.CursorPage
}

// productService validates listing parameters and hands them to the paginators.
type productService struct {
	offset OffsetPaginator
	cursor CursorPaginator
	limits Limits
	log    zerolog.Logger
}

func NewProductService(offset OffsetPaginator, cursor CursorPaginator, limits Limits, logger zerolog.Logger) ProductService {
	l := logger.With().Str("module", "service").Str("component", "product").Logger()
	return &productService{offset: offset, cursor: cursor, limits: limits, log: l}
}

func (s *productService) ListOffset(_ context.Context, q OffsetQuery) (model.OffsetPage, error) {
	start := time.Now()

	var ferrs []FieldError
	limit, fe := s.limits.resolveLimit(q.Limit)
	if fe != nil {
		ferrs = append(ferrs, *fe)
	}
	offset, fe := resolveOffset(q.Offset)
	if fe != nil {
		ferrs = append(ferrs, *fe)
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("offset listing validation failed")
		return model.OffsetPage{}, err
	}

	page := s.offset.Paginate(offset, limit)
	s.log.Debug().
		Int("limit", limit).
		Int("offset", offset).
		Int("returned", len(page.Results)).
		Dur("took", time.Since(start)).
		Msg("offset page served")
	return page, nil
}

func (s *productService) ListCursor(_ context.Context, q CursorQuery) (model.CursorPage, error) {
	start := time.Now()

	limit, fe := s.limits.resolveLimit(q.Limit)
	if fe != nil {
		ferrs := []FieldError{*fe}
		s.log.Debug().Interface("field_errors", ferrs).Msg("cursor listing validation failed")
		return model.CursorPage{}, NewInvalidInputError(ferrs)
	}

	page := s.cursor.Paginate(q.Cursor, limit)
	ev := s.log.Debug().
		Int("limit", limit).
		Int("returned", len(page.Results)).
		Dur("took", time.Since(start))
	if q.Cursor != nil {
		ev = ev.Int64("cursor", *q.Cursor)
	}
	ev.Msg("cursor page served")
	return page, nil
}
