package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"financing-engine/domain"
)

var testNow = time.Date(2025, time.April, 10, 12, 0, 0, 0, time.UTC)

func TestResolvePrepayment_StagedTakesPrecedence(t *testing.T) {

	cond := domain.LoanCondition{
		FlatPrePaymentPercent: decimal.NewFromInt(10),
		Installments: []domain.PrePaymentInstallment{
			{OrderIndex: 1, Percent: decimal.NewFromInt(20), DayOffset: 0},
			{OrderIndex: 2, Percent: decimal.NewFromInt(15), DayOffset: 30},
		},
	}

	plan, err := ResolvePrepayment(cond, decimal.NewFromInt(1_000_000), nil, testNow)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 35% staged, the flat 10% is ignored.
	expected := decimal.NewFromInt(350_000)
	if !plan.Total.Equal(expected) {
		t.Errorf("expected %s, got %s", expected, plan.Total)
	}

	if len(plan.Schedule) != 2 {
		t.Fatalf("expected 2 schedule entries, got %d", len(plan.Schedule))
	}
	if plan.Schedule[0].Seq != 1 || plan.Schedule[1].Seq != 2 {
		t.Errorf("expected 1-based sequence numbers")
	}
	if !plan.Schedule[1].DueDate.Equal(testNow.AddDate(0, 0, 30)) {
		t.Errorf("expected due date 30 days out, got %s", plan.Schedule[1].DueDate)
	}
	if plan.Schedule[0].DueDateDisplay == "" || plan.Schedule[0].AmountDisplay == "" {
		t.Errorf("expected display fields to be populated")
	}
}

func TestResolvePrepayment_InstallmentsSortedByOrderIndex(t *testing.T) {

	cond := domain.LoanCondition{
		Installments: []domain.PrePaymentInstallment{
			{OrderIndex: 2, Percent: decimal.NewFromInt(15), DayOffset: 30},
			{OrderIndex: 1, Percent: decimal.NewFromInt(20), DayOffset: 0},
		},
	}

	plan, err := ResolvePrepayment(cond, decimal.NewFromInt(1_000_000), nil, testNow)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !plan.Schedule[0].Amount.Equal(decimal.NewFromInt(200_000)) {
		t.Errorf("expected the 20%% line first, got %s", plan.Schedule[0].Amount)
	}
}

func TestResolvePrepayment_CustomAmount(t *testing.T) {

	custom := decimal.NewFromInt(150_000)

	plan, err := ResolvePrepayment(domain.LoanCondition{}, decimal.NewFromInt(1_000_000), &custom, testNow)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.Total.Equal(custom) {
		t.Errorf("expected %s, got %s", custom, plan.Total)
	}
	if len(plan.Schedule) != 0 {
		t.Errorf("expected no schedule for a custom amount")
	}
}

func TestResolvePrepayment_CustomAmountQuantized(t *testing.T) {

	custom := decimal.RequireFromString("150000.005")

	plan, err := ResolvePrepayment(domain.LoanCondition{}, decimal.NewFromInt(1_000_000), &custom, testNow)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := decimal.RequireFromString("150000.01")
	if !plan.Total.Equal(expected) {
		t.Errorf("expected %s, got %s", expected, plan.Total)
	}
}

func TestResolvePrepayment_NegativeCustomAmount(t *testing.T) {

	custom := decimal.NewFromInt(-1)

	_, err := ResolvePrepayment(domain.LoanCondition{}, decimal.NewFromInt(1_000_000), &custom, testNow)

	var invalid *domain.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
	if invalid.Field != "custom_prepayment" {
		t.Errorf("expected custom_prepayment field, got %s", invalid.Field)
	}
}

func TestResolvePrepayment_FlatPercent(t *testing.T) {

	cond := domain.LoanCondition{
		FlatPrePaymentPercent: decimal.NewFromInt(25),
	}

	plan, err := ResolvePrepayment(cond, decimal.NewFromInt(1_000_000), nil, testNow)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := decimal.NewFromInt(250_000)
	if !plan.Total.Equal(expected) {
		t.Errorf("expected %s, got %s", expected, plan.Total)
	}
}

func TestResolvePrepayment_None(t *testing.T) {

	plan, err := ResolvePrepayment(domain.LoanCondition{}, decimal.NewFromInt(1_000_000), nil, testNow)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.Total.IsZero() {
		t.Errorf("expected zero prepayment, got %s", plan.Total)
	}
}

func TestGuaranteeCheckSchedule_Cadence(t *testing.T) {

	checks := GuaranteeCheckSchedule(decimal.NewFromInt(100_000), 7, testNow)

	// ceil(7/2) = 4 checks, each covering two months.
	if len(checks) != 4 {
		t.Fatalf("expected 4 checks, got %d", len(checks))
	}

	for i, days := range []int{45, 105, 165, 225} {
		expected := testNow.AddDate(0, 0, days)
		if !checks[i].DueDate.Equal(expected) {
			t.Errorf("check %d: expected due %s, got %s", i+1, expected, checks[i].DueDate)
		}
		if checks[i].Seq != i+1 {
			t.Errorf("check %d: expected seq %d, got %d", i+1, i+1, checks[i].Seq)
		}
		if !checks[i].Amount.Equal(decimal.NewFromInt(200_000)) {
			t.Errorf("check %d: expected 200000, got %s", i+1, checks[i].Amount)
		}
		if checks[i].DueDateDisplay == "" {
			t.Errorf("check %d: expected display date", i+1)
		}
	}
}

func TestGuaranteeCheckSchedule_ZeroTerm(t *testing.T) {

	checks := GuaranteeCheckSchedule(decimal.NewFromInt(100_000), 0, testNow)

	if checks != nil {
		t.Errorf("expected no checks for a zero term")
	}
}
