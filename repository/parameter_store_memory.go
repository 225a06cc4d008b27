package repository

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"financing-engine/domain"
)

// MemoryParameterStore is an in-memory ParameterStore, seeded at boot.
type MemoryParameterStore struct {
	sets       map[uuid.UUID]domain.FinancingParameterSet
	conditions map[uuid.UUID]domain.LoanCondition
}

// NewMemoryParameterStore creates an empty in-memory parameter store.
func NewMemoryParameterStore() *MemoryParameterStore {
	return &MemoryParameterStore{
		sets:       make(map[uuid.UUID]domain.FinancingParameterSet),
		conditions: make(map[uuid.UUID]domain.LoanCondition),
	}
}

func (s *MemoryParameterStore) AddParameterSet(set domain.FinancingParameterSet) {
	s.sets[set.Terms().ID] = set
}

func (s *MemoryParameterStore) AddLoanCondition(cond domain.LoanCondition) {
	s.conditions[cond.ID] = cond
}

func (s *MemoryParameterStore) GetParameterSet(id uuid.UUID) (domain.FinancingParameterSet, error) {
	set, ok := s.sets[id]
	if !ok {
		return nil, fmt.Errorf("parameter set %s: %w", id, domain.ErrNotFound)
	}
	return set, nil
}

func (s *MemoryParameterStore) ListParameterSets() ([]domain.FinancingParameterSet, error) {
	sets := make([]domain.FinancingParameterSet, 0, len(s.sets))
	for _, set := range s.sets {
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool {
		return sets[i].Terms().Title < sets[j].Terms().Title
	})
	return sets, nil
}

func (s *MemoryParameterStore) GetLoanCondition(id uuid.UUID) (domain.LoanCondition, error) {
	cond, ok := s.conditions[id]
	if !ok {
		return domain.LoanCondition{}, fmt.Errorf("loan condition %s: %w", id, domain.ErrNotFound)
	}
	return cond, nil
}
