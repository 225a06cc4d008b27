package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"financing-engine/domain"
	"financing-engine/service"
)

type QuoteHandler struct {
	service *service.QuoteService
}

func NewQuoteHandler(service *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// PlanQuote handles POST /quote/plan.
func (h *QuoteHandler) PlanQuote(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Quote(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, result)
}

// ConditionQuote handles POST /quote/condition.
func (h *QuoteHandler) ConditionQuote(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.ConditionQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.ConditionQuote(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, result)
}

// CompareQuotes handles POST /quote/compare.
func (h *QuoteHandler) CompareQuotes(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quotes, err := h.service.CompareQuotes(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, quotes)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeError maps the engine's error taxonomy to HTTP statuses. The
// not-eligible case carries the eligible categories so clients can
// self-correct.
func writeError(w http.ResponseWriter, err error) {
	var notEligible *domain.CategoryNotEligibleError
	if errors.As(err, &notEligible) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"error":               notEligible.Error(),
			"eligible_categories": notEligible.Eligible,
		})
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		http.Error(w, invalid.Error(), http.StatusBadRequest)
		return
	}

	http.Error(w, err.Error(), http.StatusBadRequest)
}
