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
)

// EvaluateRequestUseCase records an officer's risk evaluation on a submitted
// credit request.
type EvaluateRequestUseCase struct {
	requestRepo port.CreditRequestRepository
	officerRepo port.OfficerRepository
	auditRepo   port.AuditLogRepository
	publisher   port.EventPublisher
}

// NewEvaluateRequestUseCase wires dependencies.
func NewEvaluateRequestUseCase(
	requestRepo port.CreditRequestRepository,
	officerRepo port.OfficerRepository,
	auditRepo port.AuditLogRepository,
	publisher port.EventPublisher,
) *EvaluateRequestUseCase {
	return &EvaluateRequestUseCase{
		requestRepo: requestRepo,
		officerRepo: officerRepo,
		auditRepo:   auditRepo,
		publisher:   publisher,
	}
}

// Execute evaluates a credit request.
func (uc *EvaluateRequestUseCase) Execute(
	ctx context.Context,
	req dto.EvaluateRequestRequest,
) (dto.CreditRequestResponse, error) {
	now := time.Now().UTC()

	// 1. Validate caller input.
	if req.RequestID == "" {
		return dto.CreditRequestResponse{}, apperror.Validation("request ID is required")
	}
	if req.RiskScore < 0 || req.RiskScore > 1000 {
		return dto.CreditRequestResponse{}, apperror.Validation("risk score %d out of range [0, 1000]", req.RiskScore)
	}

	// 2. The evaluating officer must exist.
	if _, err := uc.officerRepo.GetByID(ctx, req.OfficerID); err != nil {
		return dto.CreditRequestResponse{}, fmt.Errorf("get officer: %w", err)
	}

	// 3. Load, transition, persist.
	request, err := uc.requestRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return dto.CreditRequestResponse{}, fmt.Errorf("get request: %w", err)
	}
	request, err = request.Evaluate(req.OfficerID, req.RiskScore, req.Note, now)
	if err != nil {
		return dto.CreditRequestResponse{}, fmt.Errorf("evaluate request: %w", err)
	}
	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return dto.CreditRequestResponse{}, fmt.Errorf("save request: %w", err)
	}

	// 4. Audit and publish after commit.
	entry := model.NewAuditEntry(
		req.OfficerID, "request.evaluate", "CreditRequest", request.ID(),
		fmt.Sprintf("risk score %d", req.RiskScore),
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
