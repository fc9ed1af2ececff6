package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/application/dto"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/service"
	"github.com/luisfernandobanegasro/entidad-financiera/pkg/money"
)

// PreviewScheduleUseCase computes an ad-hoc schedule from explicit terms.
// Nothing is ever persisted; the same inputs always produce the same output.
type PreviewScheduleUseCase struct{}

// NewPreviewScheduleUseCase wires dependencies (there are none; the
// computation is pure).
func NewPreviewScheduleUseCase() *PreviewScheduleUseCase {
	return &PreviewScheduleUseCase{}
}

// Execute computes a schedule preview.
func (uc *PreviewScheduleUseCase) Execute(
	_ context.Context,
	req dto.PreviewScheduleRequest,
) (dto.ScheduleResponse, error) {
	// 1. Validate: with no backing request, every term must be explicit.
	if req.Principal.LessThanOrEqual(decimal.Zero) {
		return dto.ScheduleResponse{}, apperror.Validation("principal must be positive")
	}
	if req.TermMonths < 1 {
		return dto.ScheduleResponse{}, apperror.Validation("term months must be at least 1")
	}
	if req.NominalAnnualRate.IsNegative() {
		return dto.ScheduleResponse{}, apperror.Validation("nominal annual rate cannot be negative")
	}

	// 2. Currency defaults to BOB.
	currency := money.BOB
	if req.Currency != "" {
		var err error
		if currency, err = money.NewCurrency(req.Currency); err != nil {
			return dto.ScheduleResponse{}, apperror.Validation("%s", err)
		}
	}

	// 3. First due date defaults to one month from today.
	firstDueDate := service.AddMonthsClamped(time.Now().UTC(), 1)
	if req.FirstDueDate != nil {
		firstDueDate = *req.FirstDueDate
	}

	// 4. Compute; the result carries no ID and never touches storage.
	schedule, installments := service.BuildFrenchSchedule(service.ScheduleInput{
		Principal:         req.Principal,
		TermMonths:        req.TermMonths,
		NominalAnnualRate: req.NominalAnnualRate,
		Currency:          currency,
		FirstDueDate:      firstDueDate,
	})
	return toScheduleResponse(schedule, installments), nil
}
