package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// SubmitRequestRequest carries the data to open a new credit request.
// NominalAnnualRate may be zero, in which case the product's default rate
// applies.
type SubmitRequestRequest struct {
	CustomerID        string          `json:"customer_id"`
	ProductID         string          `json:"product_id"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	TermMonths        int             `json:"term_months"`
	NominalAnnualRate decimal.Decimal `json:"nominal_annual_rate"`
	WorkerType        string          `json:"worker_type"`
}

// EvaluateRequestRequest records an officer's risk evaluation.
type EvaluateRequestRequest struct {
	RequestID string `json:"request_id"`
	OfficerID string `json:"officer_id"`
	RiskScore int    `json:"risk_score"`
	Note      string `json:"note"`
}

// DecideRequestRequest records the approve/reject decision on an evaluated
// request.
type DecideRequestRequest struct {
	RequestID string `json:"request_id"`
	OfficerID string `json:"officer_id"`
	Approve   bool   `json:"approve"`
	Reason    string `json:"reason,omitempty"`
}

// GenerateScheduleRequest asks for a persisted payment schedule bound to an
// approved credit request. FirstDueDate is optional; when nil it defaults to
// one month after the approval date. Overwrite permits regenerating over an
// existing schedule.
type GenerateScheduleRequest struct {
	RequestID    string     `json:"request_id"`
	GeneratedBy  string     `json:"generated_by"`
	FirstDueDate *time.Time `json:"first_due_date,omitempty"`
	Overwrite    bool       `json:"overwrite"`
}

// PreviewScheduleRequest asks for an ad-hoc schedule computation that is
// never persisted. Principal, term, and rate are all required here since
// there is no backing request to read them from.
type PreviewScheduleRequest struct {
	Principal         decimal.Decimal `json:"principal"`
	TermMonths        int             `json:"term_months"`
	NominalAnnualRate decimal.Decimal `json:"nominal_annual_rate"`
	Currency          string          `json:"currency,omitempty"`
	FirstDueDate      *time.Time      `json:"first_due_date,omitempty"`
}

// SimulateScheduleRequest is the public simulation shape: amount, term, and
// annual rate, with an optional first due date to pin the calendar.
type SimulateScheduleRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	TermMonths   int             `json:"term_months"`
	AnnualRate   decimal.Decimal `json:"annual_rate"`
	FirstDueDate *time.Time      `json:"first_due_date,omitempty"`
}

// RegisterCustomerRequest carries the data to register a credit applicant.
type RegisterCustomerRequest struct {
	FullName       string          `json:"full_name"`
	DocumentType   string          `json:"document_type"`
	DocumentNumber string          `json:"document_number"`
	Phone          string          `json:"phone,omitempty"`
	Address        string          `json:"address,omitempty"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
}

// AttachDocumentRequest uploads a supporting document against a request.
type AttachDocumentRequest struct {
	RequestID      string    `json:"request_id"`
	DocumentTypeID string    `json:"document_type_id"`
	FileName       string    `json:"file_name"`
	IssueDate      time.Time `json:"issue_date"`
}

// GetRequestRequest identifies a credit request to retrieve.
type GetRequestRequest struct {
	RequestID string `json:"request_id"`
}

// GetScheduleRequest identifies the schedule of a credit request.
type GetScheduleRequest struct {
	RequestID string `json:"request_id"`
}

// GetChecklistRequest identifies the document checklist of a credit request.
type GetChecklistRequest struct {
	RequestID string `json:"request_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// CreditRequestResponse is the external representation of a credit request.
type CreditRequestResponse struct {
	ID                string          `json:"id"`
	CustomerID        string          `json:"customer_id"`
	OfficerID         string          `json:"officer_id,omitempty"`
	ProductID         string          `json:"product_id"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	TermMonths        int             `json:"term_months"`
	NominalAnnualRate decimal.Decimal `json:"nominal_annual_rate"`
	WorkerType        string          `json:"worker_type"`
	Status            string          `json:"status"`
	RiskScore         int             `json:"risk_score,omitempty"`
	EvaluationNote    string          `json:"evaluation_note,omitempty"`
	EvaluatedAt       *time.Time      `json:"evaluated_at,omitempty"`
	ApprovedAt        *time.Time      `json:"approved_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// InstallmentResponse is one schedule row.
type InstallmentResponse struct {
	Number     int             `json:"number"`
	DueDate    time.Time       `json:"due_date"`
	Capital    decimal.Decimal `json:"capital"`
	Interest   decimal.Decimal `json:"interest"`
	Payment    decimal.Decimal `json:"payment"`
	Balance    decimal.Decimal `json:"balance"`
	Adjustment decimal.Decimal `json:"adjustment"`
}

// ScheduleResponse is the external representation of a payment schedule.
type ScheduleResponse struct {
	ID                 string                `json:"id,omitempty"`
	RequestID          string                `json:"request_id,omitempty"`
	Method             string                `json:"method"`
	Currency           string                `json:"currency"`
	FirstDueDate       time.Time             `json:"first_due_date"`
	InstallmentAmount  decimal.Decimal       `json:"installment_amount"`
	TotalCapital       decimal.Decimal       `json:"total_capital"`
	TotalInterest      decimal.Decimal       `json:"total_interest"`
	TotalPayments      decimal.Decimal       `json:"total_payments"`
	RoundingAdjustment decimal.Decimal       `json:"rounding_adjustment"`
	GeneratedBy        string                `json:"generated_by,omitempty"`
	CreatedAt          time.Time             `json:"created_at,omitempty"`
	Installments       []InstallmentResponse `json:"installments"`
}

// SimulationResponse is the fixed public simulation shape.
type SimulationResponse struct {
	Amount         decimal.Decimal       `json:"amount"`
	TermMonths     int                   `json:"term_months"`
	AnnualRate     decimal.Decimal       `json:"annual_rate"`
	MonthlyPayment decimal.Decimal       `json:"monthly_payment"`
	TotalInterest  decimal.Decimal       `json:"total_interest"`
	TotalPayment   decimal.Decimal       `json:"total_payment"`
	Installments   []InstallmentResponse `json:"installments"`
}

// CustomerResponse is the external representation of a customer.
type CustomerResponse struct {
	ID             string          `json:"id"`
	FullName       string          `json:"full_name"`
	DocumentType   string          `json:"document_type"`
	DocumentNumber string          `json:"document_number"`
	Phone          string          `json:"phone,omitempty"`
	Address        string          `json:"address,omitempty"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
	CreatedAt      time.Time       `json:"created_at"`
}

// AttachmentResponse is the external representation of an uploaded document.
type AttachmentResponse struct {
	ID             string    `json:"id"`
	RequestID      string    `json:"request_id"`
	DocumentTypeID string    `json:"document_type_id"`
	FileName       string    `json:"file_name"`
	IssueDate      time.Time `json:"issue_date"`
	Valid          bool      `json:"valid"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ChecklistItemResponse is one row of the document checklist.
type ChecklistItemResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Mandatory    bool   `json:"mandatory"`
	Received     bool   `json:"received"`
	Valid        bool   `json:"valid"`
	Note         string `json:"note,omitempty"`
	AttachmentID string `json:"attachment_id,omitempty"`
}

// ChecklistResponse is the document checklist of a credit request.
type ChecklistResponse struct {
	RequestID string                  `json:"request_id"`
	Complete  bool                    `json:"complete"`
	Items     []ChecklistItemResponse `json:"items"`
}
