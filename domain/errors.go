package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound marks a missing parameter set, loan condition or category.
var ErrNotFound = errors.New("not found")

// InvalidInputError names the offending request field. Never retried.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CategoryNotEligibleError is returned when a category-scoped parameter
// set is requested without a category, or with one outside its scope.
// It carries the eligible categories so the caller can self-correct.
type CategoryNotEligibleError struct {
	Eligible []uuid.UUID
}

func (e *CategoryNotEligibleError) Error() string {
	return fmt.Sprintf("category not eligible for this plan (%d eligible categories)", len(e.Eligible))
}
