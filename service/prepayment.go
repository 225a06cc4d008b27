package service

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"financing-engine/domain"
	"financing-engine/locale"
)

// PrePaymentPlan is the resolved prepayment for one calculation.
// Schedule is non-empty only for the staged flow.
type PrePaymentPlan struct {
	Total    decimal.Decimal
	Schedule []domain.ScheduledPayment
}

// ResolvePrepayment decides how much prepayment applies, first match
// wins: staged installments, then a caller-supplied custom amount, then
// the condition's flat percentage, then none. The caller passes now
// explicitly so staged due dates are deterministic.
func ResolvePrepayment(cond domain.LoanCondition, upliftedPrice decimal.Decimal, custom *decimal.Decimal, now time.Time) (PrePaymentPlan, error) {
	if len(cond.Installments) > 0 {
		installments := make([]domain.PrePaymentInstallment, len(cond.Installments))
		copy(installments, cond.Installments)
		sort.Slice(installments, func(i, j int) bool {
			return installments[i].OrderIndex < installments[j].OrderIndex
		})

		total := decimal.Zero
		schedule := make([]domain.ScheduledPayment, 0, len(installments))
		for i, inst := range installments {
			amount := upliftedPrice.Mul(pctFraction(inst.Percent)).Round(2)
			due := now.AddDate(0, 0, inst.DayOffset)
			schedule = append(schedule, domain.ScheduledPayment{
				Seq:            i + 1,
				Amount:         amount,
				DueDate:        due,
				AmountDisplay:  locale.FormatAmount(amount),
				DueDateDisplay: locale.FormatDate(due),
			})
			total = total.Add(amount)
		}
		return PrePaymentPlan{Total: total, Schedule: schedule}, nil
	}

	if custom != nil {
		if custom.IsNegative() {
			return PrePaymentPlan{}, &domain.InvalidInputError{Field: "custom_prepayment", Reason: "must not be negative"}
		}
		return PrePaymentPlan{Total: custom.Round(2)}, nil
	}

	if cond.FlatPrePaymentPercent.IsPositive() {
		return PrePaymentPlan{
			Total: upliftedPrice.Mul(pctFraction(cond.FlatPrePaymentPercent)).Round(2),
		}, nil
	}

	return PrePaymentPlan{Total: decimal.Zero}, nil
}

// GuaranteeCheckSchedule generates the post-dated check series for a
// company-financed plan: one check per two-month block, each covering
// two monthly payments, the first due 45 days after issuance and the
// rest every 60 days after that.
func GuaranteeCheckSchedule(monthlyPayment decimal.Decimal, termMonths int, issued time.Time) []domain.ScheduledPayment {
	if termMonths <= 0 {
		return nil
	}

	count := (termMonths + 1) / 2 // ceil(term/2)
	amount := monthlyPayment.Mul(two).Round(2)

	checks := make([]domain.ScheduledPayment, 0, count)
	due := issued.AddDate(0, 0, firstCheckDueDays)
	for seq := 1; seq <= count; seq++ {
		checks = append(checks, domain.ScheduledPayment{
			Seq:            seq,
			Amount:         amount,
			DueDate:        due,
			AmountDisplay:  locale.FormatAmount(amount),
			DueDateDisplay: locale.FormatDate(due),
		})
		due = due.AddDate(0, 0, checkIntervalDays)
	}
	return checks
}
