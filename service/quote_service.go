package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"financing-engine/domain"
	"financing-engine/locale"
	"financing-engine/repository"
)

// QuoteService composes the calculation pipeline: validate, resolve
// eligibility, uplift, resolve prepayment, amortize, size the
// guarantee, assemble the quote. Every step is a pure function of the
// request and the immutable parameter set; any failure short-circuits
// and no partial quote is returned.
type QuoteService struct {
	store  repository.ParameterStore
	quotes repository.QuoteRepository
	cache  repository.CacheRepository

	// Clock supplies "today" for schedule dates. Overridable in tests.
	Clock func() time.Time
}

// NewQuoteService creates a new QuoteService with the given store,
// quote repository and cache.
func NewQuoteService(
	store repository.ParameterStore,
	quotes repository.QuoteRepository,
	cache repository.CacheRepository,
) *QuoteService {
	return &QuoteService{
		store:  store,
		quotes: quotes,
		cache:  cache,
		Clock:  time.Now,
	}
}

func validateBasePrice(basePrice decimal.Decimal) error {
	if !basePrice.IsPositive() {
		return &domain.InvalidInputError{Field: "base_price", Reason: "must be positive"}
	}
	if basePrice.GreaterThan(MaxBasePrice) {
		return &domain.InvalidInputError{Field: "base_price", Reason: fmt.Sprintf("exceeds the maximum of %s", MaxBasePrice)}
	}
	return nil
}

// Quote computes a financing quote against a bank or company parameter
// set. Monetary outputs are quantized to 2 decimals; company plans add
// the guarantee-check schedule.
func (s *QuoteService) Quote(req domain.QuoteRequest) (domain.QuoteResult, error) {
	if err := validateBasePrice(req.BasePrice); err != nil {
		return domain.QuoteResult{}, err
	}
	if req.CustomPrePayment != nil && req.CustomPrePayment.IsNegative() {
		return domain.QuoteResult{}, &domain.InvalidInputError{Field: "custom_prepayment", Reason: "must not be negative"}
	}

	set, err := s.store.GetParameterSet(req.ParameterSetID)
	if err != nil {
		return domain.QuoteResult{}, err
	}
	if err := Eligible(set, req.CategoryID); err != nil {
		return domain.QuoteResult{}, err
	}

	key := planCacheKey(req)
	if cached, ok := s.cache.Get(key); ok {
		var result domain.QuoteResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
	}

	result, err := s.quoteForSet(set, req.BasePrice, req.CustomPrePayment)
	if err != nil {
		return domain.QuoteResult{}, err
	}

	// Date-bearing quotes are recomputed on every call so "today"
	// stays per-call; only dateless quotes are cached.
	if len(result.GuaranteeChecks) == 0 && result.GuaranteeValidUntil == nil {
		if raw, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(raw)); err != nil {
				log.Printf("Warning: failed to cache quote: %v", err)
			}
		}
	}

	// Recording the quote is not critical.
	if err := s.quotes.Save(result); err != nil {
		log.Printf("Warning: failed to save quote: %v", err)
	}

	return result, nil
}

// quoteForSet runs the computation pipeline for one parameter set.
func (s *QuoteService) quoteForSet(
	set domain.FinancingParameterSet,
	basePrice decimal.Decimal,
	custom *decimal.Decimal,
) (domain.QuoteResult, error) {

	terms := set.Terms()
	if terms.TermMonths > MaxTermMonths {
		return domain.QuoteResult{}, &domain.InvalidInputError{Field: "term_months", Reason: fmt.Sprintf("exceeds the maximum of %d months", MaxTermMonths)}
	}
	if set.MonthlyRate().GreaterThan(pctFraction(MaxRatePercent)) {
		return domain.QuoteResult{}, &domain.InvalidInputError{Field: "interest_rate", Reason: fmt.Sprintf("exceeds the maximum of %s%%", MaxRatePercent)}
	}

	uplifted := Uplift(basePrice, terms.InitialIncreasePercent)

	prePayment := terms.MinDownPayment
	if custom != nil {
		if custom.LessThan(terms.MinDownPayment) {
			return domain.QuoteResult{}, &domain.InvalidInputError{Field: "custom_prepayment", Reason: "below the plan's minimum down payment"}
		}
		prePayment = custom.Round(2)
	}

	principal := FinalPrincipal(uplifted.Sub(prePayment), terms.SecondaryIncreasePercent)

	amortization, err := Amortize(principal, set.MonthlyRate(), terms.TermMonths, RoundCurrency)
	if err != nil {
		return domain.QuoteResult{}, err
	}

	// Bank/company plans size the guarantee against the obligor's total
	// committed payment, interest included.
	guarantee := SizeGuarantee(amortization.TotalPayment, terms.Guarantee, RoundCurrency)

	now := s.Clock()
	var checks []domain.ScheduledPayment
	if set.Kind() == domain.PlanCompany {
		checks = GuaranteeCheckSchedule(amortization.MonthlyPayment, terms.TermMonths, now)
	}

	var validUntil *time.Time
	if terms.ValidityMonths > 0 {
		v := now.AddDate(0, terms.ValidityMonths, 0)
		validUntil = &v
	}

	return assembleQuote(uplifted, prePayment, principal, amortization, guarantee, terms.Guarantee, nil, checks, validUntil), nil
}

// ConditionQuote computes a quote against a product loan condition:
// staged-prepayment precedence, whole-unit rounding, and a guarantee
// sized against the undiscounted catalog price.
func (s *QuoteService) ConditionQuote(req domain.ConditionQuoteRequest) (domain.QuoteResult, error) {
	if err := validateBasePrice(req.BasePrice); err != nil {
		return domain.QuoteResult{}, err
	}

	cond, err := s.store.GetLoanCondition(req.ConditionID)
	if err != nil {
		return domain.QuoteResult{}, err
	}

	uplifted := Uplift(req.BasePrice, cond.InitialIncreasePercent)

	plan, err := ResolvePrepayment(cond, uplifted, req.CustomPrePayment, s.Clock())
	if err != nil {
		return domain.QuoteResult{}, err
	}

	principal := FinalPrincipal(uplifted.Sub(plan.Total), cond.SecondaryIncreasePercent)

	amortization, err := Amortize(principal, cond.MonthlyRate(), cond.TermMonths, RoundWholeUp)
	if err != nil {
		return domain.QuoteResult{}, err
	}

	guarantee := SizeGuarantee(req.BasePrice, cond.Guarantee, RoundWholeUp)

	result := assembleQuote(uplifted, plan.Total, principal, amortization, guarantee, cond.Guarantee, plan.Schedule, nil, nil)

	if err := s.quotes.Save(result); err != nil {
		log.Printf("Warning: failed to save quote: %v", err)
	}

	return result, nil
}

// CompareQuotes quotes every parameter set eligible for the category,
// cheapest total payment first. Sets that fail to quote are skipped.
func (s *QuoteService) CompareQuotes(req domain.CompareRequest) ([]domain.PlanQuote, error) {
	if err := validateBasePrice(req.BasePrice); err != nil {
		return nil, err
	}

	sets, err := s.store.ListParameterSets()
	if err != nil {
		return nil, err
	}

	quotes := []domain.PlanQuote{}
	for _, set := range sets {
		if err := Eligible(set, req.CategoryID); err != nil {
			continue
		}
		result, err := s.quoteForSet(set, req.BasePrice, nil)
		if err != nil {
			log.Printf("Warning: failed to quote plan %s: %v", set.Terms().ID, err)
			continue
		}
		quotes = append(quotes, domain.PlanQuote{
			ParameterSetID: set.Terms().ID,
			Title:          set.Terms().Title,
			Kind:           set.Kind(),
			Quote:          result,
		})
	}

	if len(quotes) == 0 {
		return nil, errors.New("no eligible financing plans found")
	}

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].Quote.TotalPayment.LessThan(quotes[j].Quote.TotalPayment)
	})

	return quotes, nil
}

func assembleQuote(
	uplifted, prePayment, principal decimal.Decimal,
	amortization AmortizationResult,
	guaranteeAmount decimal.Decimal,
	guaranteeType domain.GuaranteeType,
	prePaymentSchedule, checks []domain.ScheduledPayment,
	validUntil *time.Time,
) domain.QuoteResult {

	percent := decimal.Zero
	if uplifted.IsPositive() {
		percent = prePayment.Div(uplifted).Mul(hundred).Round(2)
	}

	return domain.QuoteResult{
		UpliftedPrice:     uplifted,
		PrePayment:        prePayment,
		PrePaymentPercent: percent,
		Principal:         principal,
		MonthlyPayment:    amortization.MonthlyPayment,
		TotalPayment:      amortization.TotalPayment,
		TotalInterest:     amortization.TotalInterest,

		GuaranteeAmount:     guaranteeAmount,
		GuaranteeType:       guaranteeType,
		GuaranteeValidUntil: validUntil,

		PrePaymentSchedule: prePaymentSchedule,
		GuaranteeChecks:    checks,

		Display: domain.QuoteDisplay{
			UpliftedPrice:   locale.FormatAmount(uplifted),
			PrePayment:      locale.FormatAmount(prePayment),
			Principal:       locale.FormatAmount(principal),
			MonthlyPayment:  locale.FormatAmount(amortization.MonthlyPayment),
			TotalPayment:    locale.FormatAmount(amortization.TotalPayment),
			TotalInterest:   locale.FormatAmount(amortization.TotalInterest),
			GuaranteeAmount: locale.FormatAmount(guaranteeAmount),
		},
	}
}

func planCacheKey(req domain.QuoteRequest) string {
	custom := "-"
	if req.CustomPrePayment != nil {
		custom = req.CustomPrePayment.String()
	}
	category := "-"
	if req.CategoryID != nil {
		category = req.CategoryID.String()
	}
	return fmt.Sprintf("quote:%s:%s:%s:%s", req.ParameterSetID, req.BasePrice, custom, category)
}
