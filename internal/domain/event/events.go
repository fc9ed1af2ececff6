package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/luisfernandobanegasro/entidad-financiera/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Credit request events
// ---------------------------------------------------------------------------

// CreditRequestSubmitted is raised when a new credit request enters the system.
type CreditRequestSubmitted struct {
	events.BaseEvent
	CustomerID string          `json:"customer_id"`
	ProductID  string          `json:"product_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	TermMonths int             `json:"term_months"`
}

func NewCreditRequestSubmitted(
	requestID, customerID, productID string,
	amount decimal.Decimal, currency string, termMonths int,
) CreditRequestSubmitted {
	return CreditRequestSubmitted{
		BaseEvent:  events.NewBaseEvent("credit.request.submitted", requestID, "CreditRequest"),
		CustomerID: customerID,
		ProductID:  productID,
		Amount:     amount,
		Currency:   currency,
		TermMonths: termMonths,
	}
}

// CreditRequestEvaluated is raised when an officer records a risk evaluation.
type CreditRequestEvaluated struct {
	events.BaseEvent
	OfficerID string `json:"officer_id"`
	RiskScore int    `json:"risk_score"`
}

func NewCreditRequestEvaluated(requestID, officerID string, riskScore int) CreditRequestEvaluated {
	return CreditRequestEvaluated{
		BaseEvent: events.NewBaseEvent("credit.request.evaluated", requestID, "CreditRequest"),
		OfficerID: officerID,
		RiskScore: riskScore,
	}
}

// CreditRequestApproved is raised when a credit request is approved.
type CreditRequestApproved struct {
	events.BaseEvent
	OfficerID  string    `json:"officer_id"`
	ApprovedAt time.Time `json:"approved_at"`
}

func NewCreditRequestApproved(requestID, officerID string, approvedAt time.Time) CreditRequestApproved {
	return CreditRequestApproved{
		BaseEvent:  events.NewBaseEvent("credit.request.approved", requestID, "CreditRequest"),
		OfficerID:  officerID,
		ApprovedAt: approvedAt,
	}
}

// CreditRequestRejected is raised when a credit request is rejected.
type CreditRequestRejected struct {
	events.BaseEvent
	OfficerID string `json:"officer_id"`
	Reason    string `json:"reason"`
}

func NewCreditRequestRejected(requestID, officerID, reason string) CreditRequestRejected {
	return CreditRequestRejected{
		BaseEvent: events.NewBaseEvent("credit.request.rejected", requestID, "CreditRequest"),
		OfficerID: officerID,
		Reason:    reason,
	}
}

// ---------------------------------------------------------------------------
// Payment schedule events
// ---------------------------------------------------------------------------

// ScheduleGenerated is raised when a payment schedule is persisted for a request.
type ScheduleGenerated struct {
	events.BaseEvent
	RequestID     string          `json:"request_id"`
	GeneratedBy   string          `json:"generated_by"`
	TermMonths    int             `json:"term_months"`
	TotalCapital  decimal.Decimal `json:"total_capital"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	Regenerated   bool            `json:"regenerated"`
}

func NewScheduleGenerated(
	scheduleID, requestID, generatedBy string,
	termMonths int,
	totalCapital, totalInterest decimal.Decimal,
	regenerated bool,
) ScheduleGenerated {
	return ScheduleGenerated{
		BaseEvent:     events.NewBaseEvent("credit.schedule.generated", scheduleID, "Schedule"),
		RequestID:     requestID,
		GeneratedBy:   generatedBy,
		TermMonths:    termMonths,
		TotalCapital:  totalCapital,
		TotalInterest: totalInterest,
		Regenerated:   regenerated,
	}
}
