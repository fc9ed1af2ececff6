package usecase

import (
	"context"
	"fmt"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/application/dto"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/port"
)

// GetRequestUseCase retrieves a credit request.
type GetRequestUseCase struct {
	requestRepo port.CreditRequestRepository
}

// NewGetRequestUseCase wires dependencies.
func NewGetRequestUseCase(requestRepo port.CreditRequestRepository) *GetRequestUseCase {
	return &GetRequestUseCase{requestRepo: requestRepo}
}

// Execute retrieves the request.
func (uc *GetRequestUseCase) Execute(
	ctx context.Context,
	req dto.GetRequestRequest,
) (dto.CreditRequestResponse, error) {
	if req.RequestID == "" {
		return dto.CreditRequestResponse{}, apperror.Validation("request ID is required")
	}

	request, err := uc.requestRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return dto.CreditRequestResponse{}, fmt.Errorf("get request: %w", err)
	}
	return toCreditRequestResponse(request), nil
}
