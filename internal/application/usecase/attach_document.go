package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/application/dto"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/port"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/service"
)

// AttachDocumentUseCase records a supporting document uploaded against a
// credit request and stamps its validity verdict.
type AttachDocumentUseCase struct {
	requestRepo  port.CreditRequestRepository
	documentRepo port.DocumentRepository
}

// NewAttachDocumentUseCase wires dependencies.
func NewAttachDocumentUseCase(
	requestRepo port.CreditRequestRepository,
	documentRepo port.DocumentRepository,
) *AttachDocumentUseCase {
	return &AttachDocumentUseCase{
		requestRepo:  requestRepo,
		documentRepo: documentRepo,
	}
}

// Execute attaches a document to a request.
func (uc *AttachDocumentUseCase) Execute(
	ctx context.Context,
	req dto.AttachDocumentRequest,
) (dto.AttachmentResponse, error) {
	now := time.Now().UTC()

	// 1. Both sides of the link must exist.
	request, err := uc.requestRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return dto.AttachmentResponse{}, fmt.Errorf("get request: %w", err)
	}
	docType, err := uc.documentRepo.GetDocumentType(ctx, req.DocumentTypeID)
	if err != nil {
		return dto.AttachmentResponse{}, fmt.Errorf("get document type: %w", err)
	}

	// 2. Create the record and stamp its validity verdict up front.
	attachment, err := model.NewAttachment(request.ID(), docType.ID, req.FileName, req.IssueDate, now)
	if err != nil {
		return dto.AttachmentResponse{}, fmt.Errorf("create attachment: %w", err)
	}
	attachment.Valid, attachment.Note = service.CheckAttachmentValidity(attachment, docType, now)

	// 3. Persist.
	if err := uc.documentRepo.CreateAttachment(ctx, attachment); err != nil {
		return dto.AttachmentResponse{}, fmt.Errorf("save attachment: %w", err)
	}

	return dto.AttachmentResponse{
		ID:             attachment.ID,
		RequestID:      attachment.RequestID,
		DocumentTypeID: attachment.DocumentTypeID,
		FileName:       attachment.FileName,
		IssueDate:      attachment.IssueDate,
		Valid:          attachment.Valid,
		Note:           attachment.Note,
		CreatedAt:      attachment.CreatedAt,
	}, nil
}
