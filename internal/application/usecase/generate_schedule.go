package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/application/dto"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/event"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/port"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/service"
)

// GenerateScheduleUseCase produces and persists the payment schedule of an
// approved credit request. Regeneration over an existing schedule requires an
// explicit overwrite flag; losing a creation race surfaces as a conflict.
type GenerateScheduleUseCase struct {
	requestRepo  port.CreditRequestRepository
	scheduleRepo port.ScheduleRepository
	auditRepo    port.AuditLogRepository
	publisher    port.EventPublisher
}

// NewGenerateScheduleUseCase wires dependencies.
func NewGenerateScheduleUseCase(
	requestRepo port.CreditRequestRepository,
	scheduleRepo port.ScheduleRepository,
	auditRepo port.AuditLogRepository,
	publisher port.EventPublisher,
) *GenerateScheduleUseCase {
	return &GenerateScheduleUseCase{
		requestRepo:  requestRepo,
		scheduleRepo: scheduleRepo,
		auditRepo:    auditRepo,
		publisher:    publisher,
	}
}

// Execute generates the schedule for an approved request and persists it.
func (uc *GenerateScheduleUseCase) Execute(
	ctx context.Context,
	req dto.GenerateScheduleRequest,
) (dto.ScheduleResponse, error) {
	now := time.Now().UTC()

	// 1. Validate caller input.
	if req.RequestID == "" {
		return dto.ScheduleResponse{}, apperror.Validation("request ID is required")
	}
	if req.GeneratedBy == "" {
		return dto.ScheduleResponse{}, apperror.Validation("generating user is required")
	}

	// 2. Load the request; only approved requests get a schedule.
	request, err := uc.requestRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("get request: %w", err)
	}
	if !request.IsApproved() {
		return dto.ScheduleResponse{}, apperror.State(
			"request %s must be approved to generate a schedule, current status %s",
			request.ID(), request.Status(),
		)
	}

	// 3. Refuse to silently clobber an existing schedule.
	exists, err := uc.scheduleRepo.ExistsForRequest(ctx, req.RequestID)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("check existing schedule: %w", err)
	}
	if exists && !req.Overwrite {
		return dto.ScheduleResponse{}, apperror.Conflict(
			"request %s already has a schedule; pass overwrite to regenerate", req.RequestID,
		)
	}

	// 4. First due date defaults to one month after approval, or one month
	// from now when no approval timestamp was recorded. An explicit caller
	// date always wins.
	base := request.ApprovedAt()
	if base.IsZero() {
		base = now
	}
	firstDueDate := service.AddMonthsClamped(base, 1)
	if req.FirstDueDate != nil {
		firstDueDate = *req.FirstDueDate
	}

	// 5. Compute the schedule.
	schedule, installments := service.BuildFrenchSchedule(service.ScheduleInput{
		Principal:         request.Amount(),
		TermMonths:        request.TermMonths(),
		NominalAnnualRate: request.NominalAnnualRate(),
		Currency:          request.Currency(),
		FirstDueDate:      firstDueDate,
	})
	schedule.ID = uuid.New().String()
	schedule.RequestID = request.ID()
	schedule.GeneratedBy = req.GeneratedBy
	schedule.CreatedAt = now

	// 6. Persist header and installments atomically. A concurrent creation
	// losing the race comes back as a conflict from the unique constraint.
	if exists {
		err = uc.scheduleRepo.Replace(ctx, schedule, installments)
	} else {
		err = uc.scheduleRepo.Create(ctx, schedule, installments)
	}
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("persist schedule: %w", err)
	}

	// 7. Audit and publish are best-effort once the write is committed.
	uc.recordAudit(ctx, req, schedule, len(installments), now)
	evt := event.NewScheduleGenerated(
		schedule.ID, schedule.RequestID, schedule.GeneratedBy,
		request.TermMonths(), schedule.TotalCapital, schedule.TotalInterest,
		exists,
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		slog.WarnContext(ctx, "publish schedule generated event failed",
			"schedule_id", schedule.ID, "error", err)
	}

	return toScheduleResponse(schedule, installments), nil
}

func (uc *GenerateScheduleUseCase) recordAudit(
	ctx context.Context,
	req dto.GenerateScheduleRequest,
	schedule model.Schedule,
	installmentCount int,
	now time.Time,
) {
	action := "schedule.generate"
	if req.Overwrite {
		action = "schedule.regenerate"
	}
	entry := model.NewAuditEntry(
		req.GeneratedBy, action, "Schedule", schedule.ID,
		fmt.Sprintf("request %s, %d installments of %s %s",
			schedule.RequestID, installmentCount, schedule.InstallmentAmount, schedule.Currency),
		now,
	)
	if err := uc.auditRepo.Record(ctx, entry); err != nil {
		slog.WarnContext(ctx, "record audit entry failed",
			"schedule_id", schedule.ID, "error", err)
	}
}

func toScheduleResponse(schedule model.Schedule, installments []model.Installment) dto.ScheduleResponse {
	rows := make([]dto.InstallmentResponse, len(installments))
	for i, inst := range installments {
		rows[i] = dto.InstallmentResponse{
			Number:     inst.Number,
			DueDate:    inst.DueDate,
			Capital:    inst.Capital,
			Interest:   inst.Interest,
			Payment:    inst.Payment,
			Balance:    inst.Balance,
			Adjustment: inst.Adjustment,
		}
	}
	return dto.ScheduleResponse{
		ID:                 schedule.ID,
		RequestID:          schedule.RequestID,
		Method:             schedule.Method,
		Currency:           schedule.Currency.Code(),
		FirstDueDate:       schedule.FirstDueDate,
		InstallmentAmount:  schedule.InstallmentAmount,
		TotalCapital:       schedule.TotalCapital,
		TotalInterest:      schedule.TotalInterest,
		TotalPayments:      schedule.TotalPayments,
		RoundingAdjustment: schedule.RoundingAdjustment,
		GeneratedBy:        schedule.GeneratedBy,
		CreatedAt:          schedule.CreatedAt,
		Installments:       rows,
	}
}
