package usecase_test

import (
	"context"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/event"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
)

// --- Mock implementations ---

type mockCreditRequestRepository struct {
	createFunc  func(ctx context.Context, request model.CreditRequest) error
	getByIDFunc func(ctx context.Context, id string) (model.CreditRequest, error)
	updateFunc  func(ctx context.Context, request model.CreditRequest) error
	created     []model.CreditRequest
	updated     []model.CreditRequest
}

func (m *mockCreditRequestRepository) Create(ctx context.Context, request model.CreditRequest) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, request)
	}
	m.created = append(m.created, request)
	return nil
}

func (m *mockCreditRequestRepository) GetByID(ctx context.Context, id string) (model.CreditRequest, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return model.CreditRequest{}, apperror.NotFound("request %s", id)
}

func (m *mockCreditRequestRepository) Update(ctx context.Context, request model.CreditRequest) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, request)
	}
	m.updated = append(m.updated, request)
	return nil
}

func (m *mockCreditRequestRepository) ListByCustomer(_ context.Context, _ string) ([]model.CreditRequest, error) {
	return nil, nil
}

type mockScheduleRepository struct {
	createFunc  func(ctx context.Context, schedule model.Schedule, installments []model.Installment) error
	replaceFunc func(ctx context.Context, schedule model.Schedule, installments []model.Installment) error
	getFunc     func(ctx context.Context, requestID string) (model.Schedule, []model.Installment, error)
	existsFunc  func(ctx context.Context, requestID string) (bool, error)
	created     []model.Schedule
	replaced    []model.Schedule
}

func (m *mockScheduleRepository) Create(ctx context.Context, schedule model.Schedule, installments []model.Installment) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, schedule, installments)
	}
	m.created = append(m.created, schedule)
	return nil
}

func (m *mockScheduleRepository) Replace(ctx context.Context, schedule model.Schedule, installments []model.Installment) error {
	if m.replaceFunc != nil {
		return m.replaceFunc(ctx, schedule, installments)
	}
	m.replaced = append(m.replaced, schedule)
	return nil
}

func (m *mockScheduleRepository) GetByRequestID(ctx context.Context, requestID string) (model.Schedule, []model.Installment, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, requestID)
	}
	return model.Schedule{}, nil, apperror.NotFound("schedule for request %s", requestID)
}

func (m *mockScheduleRepository) ExistsForRequest(ctx context.Context, requestID string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, requestID)
	}
	return false, nil
}

type mockCustomerRepository struct {
	createFunc        func(ctx context.Context, customer model.Customer) error
	getByIDFunc       func(ctx context.Context, id string) (model.Customer, error)
	getByDocumentFunc func(ctx context.Context, documentType, documentNumber string) (model.Customer, error)
	created           []model.Customer
}

func (m *mockCustomerRepository) Create(ctx context.Context, customer model.Customer) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, customer)
	}
	m.created = append(m.created, customer)
	return nil
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id string) (model.Customer, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return model.Customer{}, apperror.NotFound("customer %s", id)
}

func (m *mockCustomerRepository) GetByDocument(ctx context.Context, documentType, documentNumber string) (model.Customer, error) {
	if m.getByDocumentFunc != nil {
		return m.getByDocumentFunc(ctx, documentType, documentNumber)
	}
	return model.Customer{}, apperror.NotFound("customer document %s %s", documentType, documentNumber)
}

type mockOfficerRepository struct {
	getByIDFunc func(ctx context.Context, id string) (model.Officer, error)
}

func (m *mockOfficerRepository) GetByID(ctx context.Context, id string) (model.Officer, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return model.Officer{}, apperror.NotFound("officer %s", id)
}

type mockProductRepository struct {
	getByIDFunc func(ctx context.Context, id string) (model.Product, error)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (model.Product, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return model.Product{}, apperror.NotFound("product %s", id)
}

func (m *mockProductRepository) ListActive(_ context.Context) ([]model.Product, error) {
	return nil, nil
}

type mockDocumentRepository struct {
	getTypeFunc          func(ctx context.Context, id string) (model.DocumentType, error)
	getTypesFunc         func(ctx context.Context, ids []string) (map[string]model.DocumentType, error)
	listRequirementsFunc func(ctx context.Context, productID string) ([]model.ProductRequirement, error)
	createAttachmentFunc func(ctx context.Context, attachment model.Attachment) error
	listAttachmentsFunc  func(ctx context.Context, requestID string) ([]model.Attachment, error)
	createdAttachments   []model.Attachment
}

func (m *mockDocumentRepository) GetDocumentType(ctx context.Context, id string) (model.DocumentType, error) {
	if m.getTypeFunc != nil {
		return m.getTypeFunc(ctx, id)
	}
	return model.DocumentType{}, apperror.NotFound("document type %s", id)
}

func (m *mockDocumentRepository) GetDocumentTypes(ctx context.Context, ids []string) (map[string]model.DocumentType, error) {
	if m.getTypesFunc != nil {
		return m.getTypesFunc(ctx, ids)
	}
	return map[string]model.DocumentType{}, nil
}

func (m *mockDocumentRepository) ListRequirements(ctx context.Context, productID string) ([]model.ProductRequirement, error) {
	if m.listRequirementsFunc != nil {
		return m.listRequirementsFunc(ctx, productID)
	}
	return nil, nil
}

func (m *mockDocumentRepository) CreateAttachment(ctx context.Context, attachment model.Attachment) error {
	if m.createAttachmentFunc != nil {
		return m.createAttachmentFunc(ctx, attachment)
	}
	m.createdAttachments = append(m.createdAttachments, attachment)
	return nil
}

func (m *mockDocumentRepository) ListAttachments(ctx context.Context, requestID string) ([]model.Attachment, error) {
	if m.listAttachmentsFunc != nil {
		return m.listAttachmentsFunc(ctx, requestID)
	}
	return nil, nil
}

type mockAuditLogRepository struct {
	recordFunc func(ctx context.Context, entry model.AuditEntry) error
	entries    []model.AuditEntry
}

func (m *mockAuditLogRepository) Record(ctx context.Context, entry model.AuditEntry) error {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, entry)
	}
	m.entries = append(m.entries, entry)
	return nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}
