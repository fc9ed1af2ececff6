package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/application/dto"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/port"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/service"
)

// GetChecklistUseCase assembles the document checklist of a credit request:
// the product's requirements for the applicant's worker type matched against
// what has been uploaded so far.
type GetChecklistUseCase struct {
	requestRepo  port.CreditRequestRepository
	documentRepo port.DocumentRepository
}

// NewGetChecklistUseCase wires dependencies.
func NewGetChecklistUseCase(
	requestRepo port.CreditRequestRepository,
	documentRepo port.DocumentRepository,
) *GetChecklistUseCase {
	return &GetChecklistUseCase{
		requestRepo:  requestRepo,
		documentRepo: documentRepo,
	}
}

// Execute builds the checklist.
func (uc *GetChecklistUseCase) Execute(
	ctx context.Context,
	req dto.GetChecklistRequest,
) (dto.ChecklistResponse, error) {
	if req.RequestID == "" {
		return dto.ChecklistResponse{}, apperror.Validation("request ID is required")
	}

	request, err := uc.requestRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return dto.ChecklistResponse{}, fmt.Errorf("get request: %w", err)
	}

	requirements, err := uc.documentRepo.ListRequirements(ctx, request.ProductID())
	if err != nil {
		return dto.ChecklistResponse{}, fmt.Errorf("list requirements: %w", err)
	}
	typeIDs := make([]string, len(requirements))
	for i, r := range requirements {
		typeIDs[i] = r.DocumentTypeID
	}
	docTypes, err := uc.documentRepo.GetDocumentTypes(ctx, typeIDs)
	if err != nil {
		return dto.ChecklistResponse{}, fmt.Errorf("get document types: %w", err)
	}
	attachments, err := uc.documentRepo.ListAttachments(ctx, request.ID())
	if err != nil {
		return dto.ChecklistResponse{}, fmt.Errorf("list attachments: %w", err)
	}

	items := service.BuildChecklist(requirements, docTypes, attachments, request.WorkerType(), time.Now().UTC())
	return dto.ChecklistResponse{
		RequestID: request.ID(),
		Complete:  service.ChecklistComplete(items),
		Items:     toChecklistItems(items),
	}, nil
}

func toChecklistItems(items []model.ChecklistItem) []dto.ChecklistItemResponse {
	out := make([]dto.ChecklistItemResponse, len(items))
	for i, item := range items {
		out[i] = dto.ChecklistItemResponse{
			Code:         item.Code,
			Name:         item.Name,
			Mandatory:    item.Mandatory,
			Received:     item.Received,
			Valid:        item.Valid,
			Note:         item.Note,
			AttachmentID: item.AttachmentID,
		}
	}
	return out
}
