package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ConditionType string

const (
	ConditionGeneral    ConditionType = "general"
	ConditionAutomobile ConditionType = "automobile"
)

// LoanCondition is a product-scoped financing plan, used for the staged
// prepayment flow. ProductID is nil for a generic condition.
type LoanCondition struct {
	ID                       uuid.UUID       `json:"id"`
	ProductID                *uuid.UUID      `json:"product_id,omitempty"`
	Title                    string          `json:"title"`
	Type                     ConditionType   `json:"type"`
	Guarantee                GuaranteeType   `json:"guarantee_type"`
	GuarantorRequired        bool            `json:"guarantor_required"`
	TermMonths               int             `json:"term_months"`
	AnnualInterestPercent    decimal.Decimal `json:"annual_interest_percent"`
	InitialIncreasePercent   decimal.Decimal `json:"initial_increase_percent"`
	FlatPrePaymentPercent    decimal.Decimal `json:"flat_prepayment_percent"`
	SecondaryIncreasePercent decimal.Decimal `json:"secondary_increase_percent"`
	DeliveryDays             int             `json:"delivery_days"`

	// Staged prepayment schedule, ordered by OrderIndex. When non-empty
	// it takes precedence over FlatPrePaymentPercent and any custom
	// amount supplied at request time.
	Installments []PrePaymentInstallment `json:"installments,omitempty"`
}

func (c LoanCondition) MonthlyRate() decimal.Decimal {
	return c.AnnualInterestPercent.Div(hundred).Div(twelve)
}

// PrePaymentInstallment is one line of a staged prepayment schedule:
// a percentage of the uplifted price due a number of days from today.
type PrePaymentInstallment struct {
	OrderIndex int             `json:"order_index"`
	Percent    decimal.Decimal `json:"percent"`
	DayOffset  int             `json:"day_offset"`
}
