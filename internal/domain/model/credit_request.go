package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/event"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/valueobject"
	"github.com/luisfernandobanegasro/entidad-financiera/pkg/money"
)

// ---------------------------------------------------------------------------
// CreditRequest aggregate root
// ---------------------------------------------------------------------------

// CreditRequest is an immutable aggregate. Mutations return a new copy.
type CreditRequest struct {
	id                string
	customerID        string
	officerID         string
	productID         string
	amount            decimal.Decimal
	currency          money.Currency
	termMonths        int
	nominalAnnualRate decimal.Decimal
	workerType        valueobject.WorkerType
	status            valueobject.RequestStatus
	riskScore         int
	evaluationNote    string
	evaluatedAt       time.Time
	approvedAt        time.Time
	version           int
	createdAt         time.Time
	updatedAt         time.Time
	domainEvents      []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewCreditRequest creates a credit request in SUBMITTED status.
func NewCreditRequest(
	customerID, productID string,
	amount decimal.Decimal,
	currency money.Currency,
	termMonths int,
	nominalAnnualRate decimal.Decimal,
	workerType valueobject.WorkerType,
	now time.Time,
) (CreditRequest, error) {
	if customerID == "" {
		return CreditRequest{}, apperror.Validation("customer ID is required")
	}
	if productID == "" {
		return CreditRequest{}, apperror.Validation("product ID is required")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return CreditRequest{}, apperror.Validation("amount must be positive")
	}
	if currency.IsZero() {
		return CreditRequest{}, apperror.Validation("currency is required")
	}
	if termMonths < 1 {
		return CreditRequest{}, apperror.Validation("term months must be at least 1")
	}
	if nominalAnnualRate.IsNegative() {
		return CreditRequest{}, apperror.Validation("nominal annual rate cannot be negative")
	}
	if workerType.IsZero() {
		return CreditRequest{}, apperror.Validation("worker type is required")
	}

	id := uuid.New().String()
	req := CreditRequest{
		id:                id,
		customerID:        customerID,
		productID:         productID,
		amount:            amount,
		currency:          currency,
		termMonths:        termMonths,
		nominalAnnualRate: nominalAnnualRate,
		workerType:        workerType,
		status:            valueobject.RequestStatusSubmitted,
		version:           1,
		createdAt:         now,
		updatedAt:         now,
	}

	req.domainEvents = append(req.domainEvents, event.NewCreditRequestSubmitted(
		id, customerID, productID, amount, currency.Code(), termMonths,
	))
	return req, nil
}

// ReconstructCreditRequest rebuilds the aggregate from persistence.
func ReconstructCreditRequest(
	id, customerID, officerID, productID string,
	amount decimal.Decimal,
	currency money.Currency,
	termMonths int,
	nominalAnnualRate decimal.Decimal,
	workerType valueobject.WorkerType,
	status valueobject.RequestStatus,
	riskScore int,
	evaluationNote string,
	evaluatedAt, approvedAt time.Time,
	version int,
	createdAt, updatedAt time.Time,
) CreditRequest {
	return CreditRequest{
		id:                id,
		customerID:        customerID,
		officerID:         officerID,
		productID:         productID,
		amount:            amount,
		currency:          currency,
		termMonths:        termMonths,
		nominalAnnualRate: nominalAnnualRate,
		workerType:        workerType,
		status:            status,
		riskScore:         riskScore,
		evaluationNote:    evaluationNote,
		evaluatedAt:       evaluatedAt,
		approvedAt:        approvedAt,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// Evaluate records an officer's risk evaluation. Allowed from SUBMITTED or
// DRAFT; the request moves to EVALUATED.
func (r CreditRequest) Evaluate(officerID string, riskScore int, note string, now time.Time) (CreditRequest, error) {
	if officerID == "" {
		return r, apperror.Validation("officer ID is required")
	}
	if !r.status.Equal(valueobject.RequestStatusSubmitted) && !r.status.Equal(valueobject.RequestStatusDraft) {
		return r, apperror.State("request %s cannot be evaluated in status %s", r.id, r.status)
	}

	next := r
	next.officerID = officerID
	next.riskScore = riskScore
	next.evaluationNote = note
	next.evaluatedAt = now
	next.status = valueobject.RequestStatusEvaluated
	next.updatedAt = now
	next.domainEvents = copyEvents(r.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewCreditRequestEvaluated(r.id, officerID, riskScore))
	return next, nil
}

// Approve transitions EVALUATED -> APPROVED and stamps the approval time.
func (r CreditRequest) Approve(officerID string, now time.Time) (CreditRequest, error) {
	if officerID == "" {
		return r, apperror.Validation("officer ID is required")
	}
	if !r.status.Equal(valueobject.RequestStatusEvaluated) {
		return r, apperror.State("request %s cannot be approved in status %s", r.id, r.status)
	}

	next := r
	next.officerID = officerID
	next.status = valueobject.RequestStatusApproved
	next.approvedAt = now
	next.updatedAt = now
	next.domainEvents = copyEvents(r.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewCreditRequestApproved(r.id, officerID, now))
	return next, nil
}

// Reject transitions SUBMITTED or EVALUATED -> REJECTED.
func (r CreditRequest) Reject(officerID, reason string, now time.Time) (CreditRequest, error) {
	if officerID == "" {
		return r, apperror.Validation("officer ID is required")
	}
	if !r.status.Equal(valueobject.RequestStatusSubmitted) && !r.status.Equal(valueobject.RequestStatusEvaluated) {
		return r, apperror.State("request %s cannot be rejected in status %s", r.id, r.status)
	}

	next := r
	next.officerID = officerID
	next.status = valueobject.RequestStatusRejected
	next.approvedAt = time.Time{}
	next.updatedAt = now
	next.domainEvents = copyEvents(r.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewCreditRequestRejected(r.id, officerID, reason))
	return next, nil
}

// IsApproved reports whether the request is in APPROVED status.
func (r CreditRequest) IsApproved() bool {
	return r.status.Equal(valueobject.RequestStatusApproved)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (r CreditRequest) ID() string                             { return r.id }
func (r CreditRequest) CustomerID() string                     { return r.customerID }
func (r CreditRequest) OfficerID() string                      { return r.officerID }
func (r CreditRequest) ProductID() string                      { return r.productID }
func (r CreditRequest) Amount() decimal.Decimal                { return r.amount }
func (r CreditRequest) Currency() money.Currency               { return r.currency }
func (r CreditRequest) TermMonths() int                        { return r.termMonths }
func (r CreditRequest) NominalAnnualRate() decimal.Decimal     { return r.nominalAnnualRate }
func (r CreditRequest) WorkerType() valueobject.WorkerType     { return r.workerType }
func (r CreditRequest) Status() valueobject.RequestStatus      { return r.status }
func (r CreditRequest) RiskScore() int                         { return r.riskScore }
func (r CreditRequest) EvaluationNote() string                 { return r.evaluationNote }
func (r CreditRequest) EvaluatedAt() time.Time                 { return r.evaluatedAt }
func (r CreditRequest) ApprovedAt() time.Time                  { return r.approvedAt }
func (r CreditRequest) Version() int                           { return r.version }
func (r CreditRequest) CreatedAt() time.Time                   { return r.createdAt }
func (r CreditRequest) UpdatedAt() time.Time                   { return r.updatedAt }
func (r CreditRequest) DomainEvents() []event.DomainEvent      { return r.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (r CreditRequest) ClearEvents() CreditRequest {
	next := r
	next.domainEvents = nil
	return next
}

func copyEvents(evts []event.DomainEvent) []event.DomainEvent {
	if evts == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(evts))
	copy(out, evts)
	return out
}
