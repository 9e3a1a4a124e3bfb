package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoResults means the recommender answered but had nothing to offer
	ErrNoResults = errors.New("no results found")

	// ErrRecommenderUnavailable means the recommendation call failed at the
	// transport or HTTP layer; the query is safe to retry
	ErrRecommenderUnavailable = errors.New("recommendation service unavailable")
)

// ValidationError reports malformed user input. It is recovered locally:
// the failing view shows the message and no store state changes.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s %s", e.Field, e.Msg)
}

// NewValidationError creates a ValidationError for a single field
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
