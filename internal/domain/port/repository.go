package port

import (
	"context"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/event"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
)

// CreditRequestRepository persists credit request aggregates.
type CreditRequestRepository interface {
	Create(ctx context.Context, request model.CreditRequest) error
	GetByID(ctx context.Context, id string) (model.CreditRequest, error)
	Update(ctx context.Context, request model.CreditRequest) error
	ListByCustomer(ctx context.Context, customerID string) ([]model.CreditRequest, error)
}

// ScheduleRepository persists payment schedules. A request owns at most one
// schedule; Create fails with apperror.ErrConflict when one already exists,
// and Replace swaps header and installments atomically.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule model.Schedule, installments []model.Installment) error
	Replace(ctx context.Context, schedule model.Schedule, installments []model.Installment) error
	GetByRequestID(ctx context.Context, requestID string) (model.Schedule, []model.Installment, error)
	ExistsForRequest(ctx context.Context, requestID string) (bool, error)
}

// CustomerRepository persists credit applicants.
type CustomerRepository interface {
	Create(ctx context.Context, customer model.Customer) error
	GetByID(ctx context.Context, id string) (model.Customer, error)
	GetByDocument(ctx context.Context, documentType, documentNumber string) (model.Customer, error)
}

// OfficerRepository reads bank officer records.
type OfficerRepository interface {
	GetByID(ctx context.Context, id string) (model.Officer, error)
}

// ProductRepository reads the financial product catalog.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (model.Product, error)
	ListActive(ctx context.Context) ([]model.Product, error)
}

// DocumentRepository handles the document catalog, per-product requirements,
// and the attachments uploaded against a request.
type DocumentRepository interface {
	GetDocumentType(ctx context.Context, id string) (model.DocumentType, error)
	GetDocumentTypes(ctx context.Context, ids []string) (map[string]model.DocumentType, error)
	ListRequirements(ctx context.Context, productID string) ([]model.ProductRequirement, error)
	CreateAttachment(ctx context.Context, attachment model.Attachment) error
	ListAttachments(ctx context.Context, requestID string) ([]model.Attachment, error)
}

// AuditLogRepository appends to the audit trail.
type AuditLogRepository interface {
	Record(ctx context.Context, entry model.AuditEntry) error
}

// EventPublisher pushes domain events to the message broker. Publishing is
// best-effort after commit; a failed publish must not roll back the write.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
