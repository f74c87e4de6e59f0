package service

import "fmt"

// Limits bounds page sizes accepted at the boundary.
type Limits struct {
	DefaultLimit int `mapstructure:"default_limit" validate:"gte=1,ltefield=MaxLimit"`
	MaxLimit     int `mapstructure:"max_limit" validate:"gte=1"`
}

// DefaultLimits matches the public API contract: 10 per page, at most 50.
func DefaultLimits() Limits {
	return Limits{DefaultLimit: 10, MaxLimit: 50}
}

// resolveLimit applies the default when absent and reports a range violation otherwise.
func (l Limits) resolveLimit(limit *int) (int, *FieldError) {
	if limit == nil {
		return l.DefaultLimit, nil
	}
	if *limit < 1 || *limit > l.MaxLimit {
		return 0, &FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", l.MaxLimit)}
	}
	return *limit, nil
}

func resolveOffset(offset *int) (int, *FieldError) {
	if offset == nil {
		return 0, nil
	}
	if *offset < 0 {
		return 0, &FieldError{Field: "offset", Message: "must be >= 0"}
	}
	return *offset, nil
}
