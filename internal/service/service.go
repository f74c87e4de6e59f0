// Package service holds use-case orchestration between handlers and the paginators.
// Kept intentionally lean: boundary validation, default resolution and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/product-pagination-service/internal/model"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// OffsetQuery carries offset listing parameters. Nil fields take defaults.
type OffsetQuery struct {
	Limit  *int
	Offset *int
}

// CursorQuery carries cursor listing parameters. A nil Cursor means "from the start".
type CursorQuery struct {
	Cursor *int64
	Limit  *int
}

// ProductService defines product listing use cases.
type ProductService interface {
	ListOffset(ctx context.Context, q OffsetQuery) (model.OffsetPage, error)
	ListCursor(ctx context.Context, q CursorQuery) (model.CursorPage, error)
}
