package repository

import "financing-engine/domain"

// QuoteRepository records issued quotes. Recording is best-effort: the
// quote service logs and continues when a save fails.
type QuoteRepository interface {
	Save(result domain.QuoteResult) error
}

// QuoteRepositoryMemory is an in-memory implementation of QuoteRepository.
type QuoteRepositoryMemory struct {
	data []domain.QuoteResult
}

// NewQuoteRepositoryMemory creates a new in-memory quote repository.
func NewQuoteRepositoryMemory() *QuoteRepositoryMemory {
	return &QuoteRepositoryMemory{
		data: []domain.QuoteResult{},
	}
}

// Save stores the quote result in memory.
func (r *QuoteRepositoryMemory) Save(result domain.QuoteResult) error {
	r.data = append(r.data, result)
	return nil
}
