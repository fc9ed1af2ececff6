package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
	"github.com/luisfernandobanegasro/entidad-financiera/pkg/money"
)

// ScheduleInput carries the parameters of a French-method amortization run.
// The orchestrator validates business rules before calling; the calculator
// itself assumes the contract holds.
type ScheduleInput struct {
	Principal         decimal.Decimal
	TermMonths        int
	NominalAnnualRate decimal.Decimal // percentage, e.g. 24.0 means 24%
	Currency          money.Currency
	FirstDueDate      time.Time
}

// BuildFrenchSchedule computes a constant-installment (French method)
// amortization schedule. Pure computation, no I/O, deterministic for
// identical inputs.
//
// The monthly periodic rate is r = rate/1200. For r > 0 the level payment is
//
//	pmt = P * r * (1+r)^n / ((1+r)^n - 1)
//
// which is the annuity formula P*r/(1-(1+r)^-n) rearranged to keep the
// exponent positive, so decimal.Pow stays exact. For r == 0 the principal is
// split evenly. Interest, capital, and balance are re-rounded to cents every
// period; the final installment's capital is overridden with the remaining
// balance so the schedule always closes at exactly 0.00. The rounding
// adjustment recorded on the last installment is the informational figure
//
//	round((P + total interest) - (pmt*(n-1) + final payment))
//
// folding the final period's interest into the running total before
// comparing against the level payments actually charged.
func BuildFrenchSchedule(in ScheduleInput) (model.Schedule, []model.Installment) {
	if in.TermMonths < 1 || in.Principal.LessThanOrEqual(decimal.Zero) {
		return model.Schedule{}, nil
	}

	principal := money.Round2(in.Principal)
	n := in.TermMonths
	nDec := decimal.NewFromInt(int64(n))
	one := decimal.NewFromInt(1)
	rate := in.NominalAnnualRate.Div(decimal.NewFromInt(1200))

	var pmt decimal.Decimal
	if rate.IsZero() {
		pmt = money.Round2(principal.Div(nDec))
	} else {
		factor := one.Add(rate).Pow(nDec)
		pmt = money.Round2(principal.Mul(rate).Mul(factor).Div(factor.Sub(one)))
	}

	installments := make([]model.Installment, 0, n)
	balance := principal
	dueDate := in.FirstDueDate
	totalCapital := money.Zero2()
	totalInterest := money.Zero2()
	adjustment := money.Zero2()

	for k := 1; k <= n; k++ {
		var interest, capital, payment decimal.Decimal
		if rate.IsZero() {
			interest = money.Zero2()
			capital = money.Round2(principal.Div(nDec))
			payment = money.Round2(capital.Add(interest))
		} else {
			interest = money.Round2(balance.Mul(rate))
			capital = money.Round2(pmt.Sub(interest))
			payment = pmt
		}

		rowAdjustment := money.Zero2()
		if k == n {
			// Force the schedule to close at exactly 0.00: the last capital
			// is whatever balance remains, whatever the formula said.
			capital = money.Round2(balance)
			payment = money.Round2(capital.Add(interest))
			adjustment = money.Round2(
				principal.Add(totalInterest).Add(interest).
					Sub(pmt.Mul(decimal.NewFromInt(int64(n - 1))).Add(payment)),
			)
			rowAdjustment = adjustment
		}

		balance = money.Round2(balance.Sub(capital))

		installments = append(installments, model.Installment{
			Number:     k,
			DueDate:    dueDate,
			Capital:    capital,
			Interest:   interest,
			Payment:    payment,
			Balance:    balance,
			Adjustment: rowAdjustment,
		})

		dueDate = AddMonthsClamped(dueDate, 1)
		totalCapital = totalCapital.Add(capital)
		totalInterest = totalInterest.Add(interest)
	}

	schedule := model.Schedule{
		Method:             model.MethodFrench,
		Currency:           in.Currency,
		FirstDueDate:       in.FirstDueDate,
		InstallmentAmount:  pmt,
		TotalCapital:       money.Round2(totalCapital),
		TotalInterest:      money.Round2(totalInterest),
		TotalPayments:      money.Round2(totalCapital.Add(totalInterest)),
		RoundingAdjustment: adjustment,
	}
	return schedule, installments
}

// AddMonthsClamped advances t by the given number of calendar months,
// clamping the day to the target month's length (Jan 31 -> Feb 28 -> Mar 28).
// time.AddDate would normalize Jan 31 + 1 month to Mar 3 instead.
func AddMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	hour, min, sec := t.Clock()

	firstOfTarget := time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	if lastDay := firstOfTarget.AddDate(0, 1, -1).Day(); d > lastDay {
		d = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, hour, min, sec, t.Nanosecond(), t.Location())
}
