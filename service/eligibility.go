package service

import (
	"github.com/google/uuid"

	"financing-engine/domain"
)

// Eligible reports whether a parameter set may be applied to a
// category. An empty scope means the set is valid for every category.
// A scoped set requires the category to be an exact member — no
// hierarchy inheritance here; that is the catalog's concern.
func Eligible(set domain.FinancingParameterSet, category *uuid.UUID) error {
	scope := set.Terms().Categories
	if len(scope) == 0 {
		return nil
	}
	if category != nil {
		for _, id := range scope {
			if id == *category {
				return nil
			}
		}
	}
	return &domain.CategoryNotEligibleError{
		Eligible: append([]uuid.UUID(nil), scope...),
	}
}
