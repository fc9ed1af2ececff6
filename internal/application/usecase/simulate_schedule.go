package usecase

import (
	"context"
	"fmt"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/application/dto"
)

// SimulateScheduleUseCase is the public simulation facade: a fixed
// amount/term/rate shape delegated to the preview computation. It exists so
// the outward simulation contract can stay stable while the preview surface
// grows richer options.
type SimulateScheduleUseCase struct {
	preview *PreviewScheduleUseCase
}

// NewSimulateScheduleUseCase wires dependencies.
func NewSimulateScheduleUseCase(preview *PreviewScheduleUseCase) *SimulateScheduleUseCase {
	return &SimulateScheduleUseCase{preview: preview}
}

// Execute runs a simulation. Validation and computation are entirely
// delegated; only the response shape is fixed here.
func (uc *SimulateScheduleUseCase) Execute(
	ctx context.Context,
	req dto.SimulateScheduleRequest,
) (dto.SimulationResponse, error) {
	schedule, err := uc.preview.Execute(ctx, dto.PreviewScheduleRequest{
		Principal:         req.Amount,
		TermMonths:        req.TermMonths,
		NominalAnnualRate: req.AnnualRate,
		FirstDueDate:      req.FirstDueDate,
	})
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("preview schedule: %w", err)
	}

	return dto.SimulationResponse{
		Amount:         req.Amount,
		TermMonths:     req.TermMonths,
		AnnualRate:     req.AnnualRate,
		MonthlyPayment: schedule.InstallmentAmount,
		TotalInterest:  schedule.TotalInterest,
		TotalPayment:   schedule.TotalPayments,
		Installments:   schedule.Installments,
	}, nil
}
