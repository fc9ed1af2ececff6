package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/application/dto"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/port"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/valueobject"
)

// RegisterCustomerUseCase registers a new credit applicant. Identity
// documents are unique: a second registration with the same document is a
// conflict.
type RegisterCustomerUseCase struct {
	customerRepo port.CustomerRepository
}

// NewRegisterCustomerUseCase wires dependencies.
func NewRegisterCustomerUseCase(customerRepo port.CustomerRepository) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{customerRepo: customerRepo}
}

// Execute registers a customer.
func (uc *RegisterCustomerUseCase) Execute(
	ctx context.Context,
	req dto.RegisterCustomerRequest,
) (dto.CustomerResponse, error) {
	now := time.Now().UTC()

	// 1. Parse the identity document type.
	docType, err := valueobject.NewIdentityDocumentType(req.DocumentType)
	if err != nil {
		return dto.CustomerResponse{}, apperror.Validation("%s", err)
	}

	// 2. Pre-check the document; the unique constraint still backstops races.
	_, err = uc.customerRepo.GetByDocument(ctx, docType.String(), req.DocumentNumber)
	switch {
	case err == nil:
		return dto.CustomerResponse{}, apperror.Conflict(
			"customer with document %s %s already exists", docType, req.DocumentNumber,
		)
	case !errors.Is(err, apperror.ErrNotFound):
		return dto.CustomerResponse{}, fmt.Errorf("check document: %w", err)
	}

	// 3. Create and persist.
	customer, err := model.NewCustomer(
		req.FullName, docType, req.DocumentNumber,
		req.Phone, req.Address, req.MonthlyIncome, now,
	)
	if err != nil {
		return dto.CustomerResponse{}, fmt.Errorf("create customer: %w", err)
	}
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return dto.CustomerResponse{}, fmt.Errorf("save customer: %w", err)
	}

	return dto.CustomerResponse{
		ID:             customer.ID,
		FullName:       customer.FullName,
		DocumentType:   customer.DocumentType.String(),
		DocumentNumber: customer.DocumentNumber,
		Phone:          customer.Phone,
		Address:        customer.Address,
		MonthlyIncome:  customer.MonthlyIncome,
		CreatedAt:      customer.CreatedAt,
	}, nil
}
