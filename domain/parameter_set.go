package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GuaranteeType string

const (
	GuaranteeCheck          GuaranteeType = "check"
	GuaranteePromissoryNote GuaranteeType = "promissory_note"
	GuaranteeOther          GuaranteeType = "other"
)

type PlanKind string

const (
	PlanBank    PlanKind = "bank"
	PlanCompany PlanKind = "company"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// PlanTerms holds the fields shared by both financing plan variants.
// Configured by an operator out-of-band; read-only to the engine.
type PlanTerms struct {
	ID                       uuid.UUID       `json:"id"`
	Title                    string          `json:"title"`
	Guarantee                GuaranteeType   `json:"guarantee_type"`
	TermMonths               int             `json:"term_months"`
	InitialIncreasePercent   decimal.Decimal `json:"initial_increase_percent"`
	SecondaryIncreasePercent decimal.Decimal `json:"secondary_increase_percent"`
	MinDownPayment           decimal.Decimal `json:"min_down_payment"`
	// Months the guarantee instrument stays valid; zero means unspecified.
	ValidityMonths int `json:"validity_months"`
	// Empty scope means the plan applies to every category.
	Categories []uuid.UUID `json:"categories"`
}

// FinancingParameterSet is the tagged union over the two plan variants.
// The engine only ever reads the shared terms and the per-month rate.
type FinancingParameterSet interface {
	Kind() PlanKind
	Terms() PlanTerms
	// MonthlyRate returns the periodic interest rate as a fraction
	// (e.g. 0.02 for 2% per month), ready for amortization.
	MonthlyRate() decimal.Decimal
}

// BankParameterSet is the bank-financed variant. Its rate is an annual
// "bank tax" percentage converted to a monthly fraction.
type BankParameterSet struct {
	PlanTerms
	AnnualBankTaxPercent decimal.Decimal `json:"annual_bank_tax_percent"`
}

func (s BankParameterSet) Kind() PlanKind   { return PlanBank }
func (s BankParameterSet) Terms() PlanTerms { return s.PlanTerms }

func (s BankParameterSet) MonthlyRate() decimal.Decimal {
	return s.AnnualBankTaxPercent.Div(hundred).Div(twelve)
}

// CompanyParameterSet is the company-financed variant. Its rate is
// already a monthly interest percentage. Company plans additionally
// produce a post-dated guarantee-check schedule.
type CompanyParameterSet struct {
	PlanTerms
	MonthlyInterestPercent decimal.Decimal `json:"monthly_interest_percent"`
}

func (s CompanyParameterSet) Kind() PlanKind   { return PlanCompany }
func (s CompanyParameterSet) Terms() PlanTerms { return s.PlanTerms }

func (s CompanyParameterSet) MonthlyRate() decimal.Decimal {
	return s.MonthlyInterestPercent.Div(hundred)
}
