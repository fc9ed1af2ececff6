package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/luisfernandobanegasro/entidad-financiera/pkg/money"
)

// MethodFrench identifies constant-installment (annuity) amortization, the
// only method the engine produces.
const MethodFrench = "french"

// Installment is an immutable value object representing one period in a
// payment schedule. Adjustment is nonzero only on the final installment.
type Installment struct {
	Number     int
	DueDate    time.Time
	Capital    decimal.Decimal
	Interest   decimal.Decimal
	Payment    decimal.Decimal
	Balance    decimal.Decimal
	Adjustment decimal.Decimal
}

// Schedule is the aggregate header of a payment plan. When persisted it is
// owned one-to-one by the credit request it belongs to and is only ever
// replaced wholesale, never mutated installment by installment.
type Schedule struct {
	ID                 string
	RequestID          string
	Method             string
	Currency           money.Currency
	FirstDueDate       time.Time
	InstallmentAmount  decimal.Decimal
	TotalCapital       decimal.Decimal
	TotalInterest      decimal.Decimal
	TotalPayments      decimal.Decimal
	RoundingAdjustment decimal.Decimal
	GeneratedBy        string
	CreatedAt          time.Time
}
