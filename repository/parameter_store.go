package repository

import (
	"github.com/google/uuid"

	"financing-engine/domain"
)

// ParameterStore is the read-only configuration store the engine pulls
// financing parameter sets and loan conditions from. Records are
// configured by an operator out-of-band and never mutated during a
// calculation.
type ParameterStore interface {
	GetParameterSet(id uuid.UUID) (domain.FinancingParameterSet, error)
	ListParameterSets() ([]domain.FinancingParameterSet, error)
	GetLoanCondition(id uuid.UUID) (domain.LoanCondition, error)
}
