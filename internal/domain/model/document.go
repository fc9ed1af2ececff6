package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/valueobject"
)

// DocumentType is a catalog entry for a kind of supporting document.
// ValidityDays == 0 means the document never expires.
type DocumentType struct {
	ID           string
	Code         string
	Name         string
	ValidityDays int
}

// ProductRequirement binds a document type to a product for a given worker
// type, marking whether it is mandatory for the checklist.
type ProductRequirement struct {
	ProductID      string
	DocumentTypeID string
	WorkerType     valueobject.WorkerType
	Mandatory      bool
}

// Attachment is the bookkeeping record of a document uploaded against a
// credit request. File storage itself is handled elsewhere; only the
// filename and the validity verdict are tracked here.
type Attachment struct {
	ID             string
	RequestID      string
	DocumentTypeID string
	FileName       string
	IssueDate      time.Time
	Valid          bool
	Note           string
	CreatedAt      time.Time
}

// NewAttachment validates and creates an attachment record. The validity
// verdict is filled in by the document check service.
func NewAttachment(requestID, documentTypeID, fileName string, issueDate time.Time, now time.Time) (Attachment, error) {
	if requestID == "" {
		return Attachment{}, apperror.Validation("request ID is required")
	}
	if documentTypeID == "" {
		return Attachment{}, apperror.Validation("document type ID is required")
	}
	if fileName == "" {
		return Attachment{}, apperror.Validation("file name is required")
	}

	return Attachment{
		ID:             uuid.New().String(),
		RequestID:      requestID,
		DocumentTypeID: documentTypeID,
		FileName:       fileName,
		IssueDate:      issueDate,
		CreatedAt:      now,
	}, nil
}

// ChecklistItem is one row of the per-request document checklist.
type ChecklistItem struct {
	Code         string
	Name         string
	Mandatory    bool
	Received     bool
	Valid        bool
	Note         string
	AttachmentID string
}
