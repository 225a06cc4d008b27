package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteRequest asks for a quote against a bank or company parameter set.
// Never persisted; one request per calculation.
type QuoteRequest struct {
	BasePrice        decimal.Decimal  `json:"base_price"`
	CustomPrePayment *decimal.Decimal `json:"custom_prepayment,omitempty"`
	ParameterSetID   uuid.UUID        `json:"parameter_set_id"`
	CategoryID       *uuid.UUID       `json:"category_id,omitempty"`
}

// ConditionQuoteRequest asks for a quote against a product loan condition.
type ConditionQuoteRequest struct {
	BasePrice        decimal.Decimal  `json:"base_price"`
	CustomPrePayment *decimal.Decimal `json:"custom_prepayment,omitempty"`
	ConditionID      uuid.UUID        `json:"condition_id"`
}

// CompareRequest asks for quotes across every eligible parameter set.
type CompareRequest struct {
	BasePrice  decimal.Decimal `json:"base_price"`
	CategoryID *uuid.UUID      `json:"category_id,omitempty"`
}

// ScheduledPayment is one dated entry of a prepayment schedule or a
// guarantee-check series. Seq is 1-based. The display fields carry the
// locale rendering (Persian calendar date, localized digits).
type ScheduledPayment struct {
	Seq            int             `json:"seq"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"due_date"`
	AmountDisplay  string          `json:"amount_display"`
	DueDateDisplay string          `json:"due_date_display"`
}

// QuoteDisplay carries the locale-formatted rendering of every monetary
// field of a quote, for direct client display.
type QuoteDisplay struct {
	UpliftedPrice   string `json:"uplifted_price"`
	PrePayment      string `json:"prepayment"`
	Principal       string `json:"principal"`
	MonthlyPayment  string `json:"monthly_payment"`
	TotalPayment    string `json:"total_payment"`
	TotalInterest   string `json:"total_interest"`
	GuaranteeAmount string `json:"guarantee_amount"`
}

// QuoteResult is the complete output of one calculation. Produced fresh
// on every call and immutable once returned.
type QuoteResult struct {
	UpliftedPrice     decimal.Decimal `json:"uplifted_price"`
	PrePayment        decimal.Decimal `json:"prepayment"`
	PrePaymentPercent decimal.Decimal `json:"prepayment_percent"`
	Principal         decimal.Decimal `json:"principal"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	TotalPayment      decimal.Decimal `json:"total_payment"`
	TotalInterest     decimal.Decimal `json:"total_interest"`

	GuaranteeAmount     decimal.Decimal `json:"guarantee_amount"`
	GuaranteeType       GuaranteeType   `json:"guarantee_type"`
	GuaranteeValidUntil *time.Time      `json:"guarantee_valid_until,omitempty"`

	PrePaymentSchedule []ScheduledPayment `json:"prepayment_schedule,omitempty"`
	GuaranteeChecks    []ScheduledPayment `json:"guarantee_checks,omitempty"`

	Display QuoteDisplay `json:"display"`
}

// PlanQuote pairs a quote with the parameter set that produced it, for
// the comparison endpoint.
type PlanQuote struct {
	ParameterSetID uuid.UUID   `json:"parameter_set_id"`
	Title          string      `json:"title"`
	Kind           PlanKind    `json:"kind"`
	Quote          QuoteResult `json:"quote"`
}
