package usecase

import (
	"context"
	"fmt"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/application/dto"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/port"
)

// GetScheduleUseCase retrieves the persisted payment schedule of a request.
type GetScheduleUseCase struct {
	scheduleRepo port.ScheduleRepository
}

// NewGetScheduleUseCase wires dependencies.
func NewGetScheduleUseCase(scheduleRepo port.ScheduleRepository) *GetScheduleUseCase {
	return &GetScheduleUseCase{scheduleRepo: scheduleRepo}
}

// Execute retrieves the schedule.
func (uc *GetScheduleUseCase) Execute(
	ctx context.Context,
	req dto.GetScheduleRequest,
) (dto.ScheduleResponse, error) {
	if req.RequestID == "" {
		return dto.ScheduleResponse{}, apperror.Validation("request ID is required")
	}

	schedule, installments, err := uc.scheduleRepo.GetByRequestID(ctx, req.RequestID)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("get schedule: %w", err)
	}
	return toScheduleResponse(schedule, installments), nil
}
