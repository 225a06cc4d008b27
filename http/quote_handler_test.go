package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"financing-engine/domain"
	"financing-engine/repository"
	"financing-engine/service"
)

var (
	testSetID    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testCategory = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	testScopedID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func newTestHandler() *QuoteHandler {
	store := repository.NewMemoryParameterStore()
	store.AddParameterSet(domain.BankParameterSet{
		PlanTerms: domain.PlanTerms{
			ID:                     testSetID,
			Title:                  "bank 12m",
			Guarantee:              domain.GuaranteeCheck,
			TermMonths:             12,
			InitialIncreasePercent: decimal.NewFromInt(10),
		},
		AnnualBankTaxPercent: decimal.NewFromInt(18),
	})
	store.AddParameterSet(domain.BankParameterSet{
		PlanTerms: domain.PlanTerms{
			ID:         testScopedID,
			Title:      "scoped plan",
			TermMonths: 12,
			Categories: []uuid.UUID{testCategory},
		},
	})

	svc := service.NewQuoteService(
		store,
		repository.NewQuoteRepositoryMemory(),
		repository.NewMockCache(),
	)
	return NewQuoteHandler(svc)
}

func TestPlanQuoteHandler_OK(t *testing.T) {

	handler := newTestHandler()

	body := []byte(fmt.Sprintf(`{
		"base_price": 1200000,
		"parameter_set_id": "%s"
	}`, testSetID))

	req := httptest.NewRequest(
		http.MethodPost,
		"/quote/plan",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()

	handler.PlanQuote(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result domain.QuoteResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !result.MonthlyPayment.IsPositive() {
		t.Errorf("expected a positive monthly payment")
	}
}

func TestPlanQuoteHandler_MethodNotAllowed(t *testing.T) {

	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/quote/plan", nil)
	w := httptest.NewRecorder()

	handler.PlanQuote(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestPlanQuoteHandler_BadRequest(t *testing.T) {

	handler := newTestHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/quote/plan",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)

	w := httptest.NewRecorder()
	handler.PlanQuote(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPlanQuoteHandler_NotFound(t *testing.T) {

	handler := newTestHandler()

	body := []byte(fmt.Sprintf(`{
		"base_price": 1000,
		"parameter_set_id": "%s"
	}`, uuid.New()))

	req := httptest.NewRequest(http.MethodPost, "/quote/plan", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.PlanQuote(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestPlanQuoteHandler_CategoryNotEligible(t *testing.T) {

	handler := newTestHandler()

	body := []byte(fmt.Sprintf(`{
		"base_price": 1000,
		"parameter_set_id": "%s"
	}`, testScopedID))

	req := httptest.NewRequest(http.MethodPost, "/quote/plan", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.PlanQuote(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	var payload struct {
		EligibleCategories []uuid.UUID `json:"eligible_categories"`
	}
	if err := json.NewDecoder(w.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode error payload: %v", err)
	}
	if len(payload.EligibleCategories) != 1 || payload.EligibleCategories[0] != testCategory {
		t.Errorf("expected the eligible categories in the payload")
	}
}

func TestCompareQuotesHandler_OK(t *testing.T) {

	handler := newTestHandler()

	body := []byte(fmt.Sprintf(`{
		"base_price": 1200000,
		"category_id": "%s"
	}`, testCategory))

	req := httptest.NewRequest(http.MethodPost, "/quote/compare", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.CompareQuotes(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var quotes []domain.PlanQuote
	if err := json.NewDecoder(w.Body).Decode(&quotes); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	// Both the unscoped and the matching scoped plan qualify.
	if len(quotes) != 2 {
		t.Errorf("expected 2 plans, got %d", len(quotes))
	}
}

func TestConditionQuoteHandler_NotFound(t *testing.T) {

	handler := newTestHandler()

	body := []byte(fmt.Sprintf(`{
		"base_price": 1000,
		"condition_id": "%s"
	}`, uuid.New()))

	req := httptest.NewRequest(http.MethodPost, "/quote/condition", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.ConditionQuote(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
