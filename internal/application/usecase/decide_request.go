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

// DecideRequestUseCase records the approve or reject decision on an
// evaluated credit request, enforcing the deciding officer's approval limit.
type DecideRequestUseCase struct {
	requestRepo port.CreditRequestRepository
	officerRepo port.OfficerRepository
	auditRepo   port.AuditLogRepository
	publisher   port.EventPublisher
}

// NewDecideRequestUseCase wires dependencies.
func NewDecideRequestUseCase(
	requestRepo port.CreditRequestRepository,
	officerRepo port.OfficerRepository,
	auditRepo port.AuditLogRepository,
	publisher port.EventPublisher,
) *DecideRequestUseCase {
	return &DecideRequestUseCase{
		requestRepo: requestRepo,
		officerRepo: officerRepo,
		auditRepo:   auditRepo,
		publisher:   publisher,
	}
}

// Execute decides a credit request.
func (uc *DecideRequestUseCase) Execute(
	ctx context.Context,
	req dto.DecideRequestRequest,
) (dto.CreditRequestResponse, error) {
	now := time.Now().UTC()

	// 1. Validate caller input.
	if req.RequestID == "" {
		return dto.CreditRequestResponse{}, apperror.Validation("request ID is required")
	}
	if !req.Approve && req.Reason == "" {
		return dto.CreditRequestResponse{}, apperror.Validation("rejection requires a reason")
	}

	// 2. Load the officer and the request.
	officer, err := uc.officerRepo.GetByID(ctx, req.OfficerID)
	if err != nil {
		return dto.CreditRequestResponse{}, fmt.Errorf("get officer: %w", err)
	}
	request, err := uc.requestRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return dto.CreditRequestResponse{}, fmt.Errorf("get request: %w", err)
	}

	// 3. Transition. Approval additionally checks the officer's limit.
	var action, detail string
	if req.Approve {
		if !officer.MayApprove(request.Amount()) {
			return dto.CreditRequestResponse{}, apperror.Validation(
				"officer %s may not approve %s %s",
				officer.ID, request.Amount(), request.Currency(),
			)
		}
		request, err = request.Approve(req.OfficerID, now)
		action, detail = "request.approve", "approved"
	} else {
		request, err = request.Reject(req.OfficerID, req.Reason, now)
		action, detail = "request.reject", "rejected: "+req.Reason
	}
	if err != nil {
		return dto.CreditRequestResponse{}, fmt.Errorf("decide request: %w", err)
	}

	// 4. Persist.
	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return dto.CreditRequestResponse{}, fmt.Errorf("save request: %w", err)
	}

	// 5. Audit and publish after commit.
	entry := model.NewAuditEntry(req.OfficerID, action, "CreditRequest", request.ID(), detail, now)
	if err := uc.auditRepo.Record(ctx, entry); err != nil {
		slog.WarnContext(ctx, "record audit entry failed", "request_id", request.ID(), "error", err)
	}
	if err := uc.publisher.Publish(ctx, request.DomainEvents()...); err != nil {
		slog.WarnContext(ctx, "publish request events failed", "request_id", request.ID(), "error", err)
	}

	return toCreditRequestResponse(request), nil
}
