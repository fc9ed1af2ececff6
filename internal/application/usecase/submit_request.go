package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/application/dto"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/port"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/valueobject"
	"github.com/luisfernandobanegasro/entidad-financiera/pkg/money"
)

// SubmitRequestUseCase opens a new credit request for an existing customer
// against an active product.
type SubmitRequestUseCase struct {
	customerRepo port.CustomerRepository
	productRepo  port.ProductRepository
	requestRepo  port.CreditRequestRepository
	auditRepo    port.AuditLogRepository
	publisher    port.EventPublisher
}

// NewSubmitRequestUseCase wires dependencies.
func NewSubmitRequestUseCase(
	customerRepo port.CustomerRepository,
	productRepo port.ProductRepository,
	requestRepo port.CreditRequestRepository,
	auditRepo port.AuditLogRepository,
	publisher port.EventPublisher,
) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		requestRepo:  requestRepo,
		auditRepo:    auditRepo,
		publisher:    publisher,
	}
}

// Execute submits a credit request.
func (uc *SubmitRequestUseCase) Execute(
	ctx context.Context,
	req dto.SubmitRequestRequest,
) (dto.CreditRequestResponse, error) {
	now := time.Now().UTC()

	// 1. The customer must exist.
	if req.CustomerID == "" {
		return dto.CreditRequestResponse{}, apperror.Validation("customer ID is required")
	}
	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		return dto.CreditRequestResponse{}, fmt.Errorf("get customer: %w", err)
	}

	// 2. The product gates amount and term; its default rate applies when
	// the caller does not name one.
	if req.ProductID == "" {
		return dto.CreditRequestResponse{}, apperror.Validation("product ID is required")
	}
	product, err := uc.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return dto.CreditRequestResponse{}, fmt.Errorf("get product: %w", err)
	}
	if err := product.ValidateRequest(req.Amount, req.TermMonths); err != nil {
		return dto.CreditRequestResponse{}, err
	}
	rate := req.NominalAnnualRate
	if rate.IsZero() {
		rate = product.DefaultRate
	}

	// 3. Parse value objects.
	currency := money.BOB
	if req.Currency != "" {
		if currency, err = money.NewCurrency(req.Currency); err != nil {
			return dto.CreditRequestResponse{}, apperror.Validation("%s", err)
		}
	}
	workerType, err := valueobject.NewWorkerType(req.WorkerType)
	if err != nil {
		return dto.CreditRequestResponse{}, apperror.Validation("%s", err)
	}

	// 4. Create and persist the aggregate.
	request, err := model.NewCreditRequest(
		req.CustomerID, req.ProductID,
		req.Amount, currency, req.TermMonths, rate,
		workerType, now,
	)
	if err != nil {
		return dto.CreditRequestResponse{}, fmt.Errorf("create request: %w", err)
	}
	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return dto.CreditRequestResponse{}, fmt.Errorf("save request: %w", err)
	}

	// 5. Audit and publish after commit.
	entry := model.NewAuditEntry(
		req.CustomerID, "request.submit", "CreditRequest", request.ID(),
		fmt.Sprintf("%s %s over %d months", request.Amount(), currency, req.TermMonths),
		now,
	)
	if err := uc.auditRepo.Record(ctx, entry); err != nil {
		slog.WarnContext(ctx, "record audit entry failed", "request_id", request.ID(), "error", err)
	}
	if err := uc.publisher.Publish(ctx, request.DomainEvents()...); err != nil {
		slog.WarnContext(ctx, "publish request events failed", "request_id", request.ID(), "error", err)
	}

	return toCreditRequestResponse(request), nil
}

func toCreditRequestResponse(request model.CreditRequest) dto.CreditRequestResponse {
	resp := dto.CreditRequestResponse{
		ID:                request.ID(),
		CustomerID:        request.CustomerID(),
		OfficerID:         request.OfficerID(),
		ProductID:         request.ProductID(),
		Amount:            request.Amount(),
		Currency:          request.Currency().Code(),
		TermMonths:        request.TermMonths(),
		NominalAnnualRate: request.NominalAnnualRate(),
		WorkerType:        request.WorkerType().String(),
		Status:            request.Status().String(),
		RiskScore:         request.RiskScore(),
		EvaluationNote:    request.EvaluationNote(),
		CreatedAt:         request.CreatedAt(),
		UpdatedAt:         request.UpdatedAt(),
	}
	if t := request.EvaluatedAt(); !t.IsZero() {
		resp.EvaluatedAt = &t
	}
	if t := request.ApprovedAt(); !t.IsZero() {
		resp.ApprovedAt = &t
	}
	return resp
}
