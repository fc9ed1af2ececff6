package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/valueobject"
)

// Customer is a credit applicant. Identity/authentication live in the
// surrounding service layer; this record carries what underwriting needs.
type Customer struct {
	ID             string
	FullName       string
	DocumentType   valueobject.IdentityDocumentType
	DocumentNumber string
	Phone          string
	Address        string
	BirthDate      time.Time
	Occupation     string
	MonthlyIncome  decimal.Decimal
	CreditScore    int
	Preferred      bool
	CreatedAt      time.Time
}

// NewCustomer validates and creates a customer record.
func NewCustomer(
	fullName string,
	documentType valueobject.IdentityDocumentType,
	documentNumber, phone, address string,
	monthlyIncome decimal.Decimal,
	now time.Time,
) (Customer, error) {
	if fullName == "" {
		return Customer{}, apperror.Validation("full name is required")
	}
	if documentType.IsZero() {
		return Customer{}, apperror.Validation("identity document type is required")
	}
	if documentNumber == "" {
		return Customer{}, apperror.Validation("document number is required")
	}
	if monthlyIncome.IsNegative() {
		return Customer{}, apperror.Validation("monthly income cannot be negative")
	}

	return Customer{
		ID:             uuid.New().String(),
		FullName:       fullName,
		DocumentType:   documentType,
		DocumentNumber: documentNumber,
		Phone:          phone,
		Address:        address,
		MonthlyIncome:  monthlyIncome,
		CreatedAt:      now,
	}, nil
}

// Officer is a bank employee who evaluates and decides credit requests.
type Officer struct {
	ID            string
	FullName      string
	Code          string
	Department    string
	CanApprove    bool
	ApprovalLimit decimal.Decimal
	CreatedAt     time.Time
}

// MayApprove reports whether the officer is allowed to approve a credit of
// the given amount. A zero limit means no cap for approving officers.
func (o Officer) MayApprove(amount decimal.Decimal) bool {
	if !o.CanApprove {
		return false
	}
	if o.ApprovalLimit.IsZero() {
		return true
	}
	return amount.LessThanOrEqual(o.ApprovalLimit)
}

// Product is a financial product a credit request is opened against. Its
// bounds gate request intake.
type Product struct {
	ID          string
	Name        string
	MinAmount   decimal.Decimal
	MaxAmount   decimal.Decimal
	MinTerm     int
	MaxTerm     int
	DefaultRate decimal.Decimal
	Active      bool
}

// ValidateRequest checks an (amount, term) pair against the product bounds.
func (p Product) ValidateRequest(amount decimal.Decimal, termMonths int) error {
	if !p.Active {
		return apperror.Validation("product %s is not active", p.ID)
	}
	if amount.LessThan(p.MinAmount) || (p.MaxAmount.IsPositive() && amount.GreaterThan(p.MaxAmount)) {
		return apperror.Validation("amount %s outside product bounds [%s, %s]", amount, p.MinAmount, p.MaxAmount)
	}
	if termMonths < p.MinTerm || (p.MaxTerm > 0 && termMonths > p.MaxTerm) {
		return apperror.Validation("term %d outside product bounds [%d, %d]", termMonths, p.MinTerm, p.MaxTerm)
	}
	return nil
}
