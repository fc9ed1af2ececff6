package service

import (
	"fmt"
	"time"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/valueobject"
)

// CheckAttachmentValidity decides whether an uploaded document is still
// within its validity window. Document types with ValidityDays == 0 never
// expire. Returns the verdict and a human-readable note for the checklist.
func CheckAttachmentValidity(att model.Attachment, docType model.DocumentType, now time.Time) (bool, string) {
	if docType.ValidityDays == 0 {
		return true, ""
	}
	if att.IssueDate.IsZero() {
		return false, "issue date is required for documents with a validity window"
	}
	expiresAt := att.IssueDate.AddDate(0, 0, docType.ValidityDays)
	if now.After(expiresAt) {
		return false, fmt.Sprintf("expired on %s", expiresAt.Format("2006-01-02"))
	}
	return true, ""
}

// BuildChecklist assembles the per-request document checklist: one row per
// requirement of the product that applies to the applicant's worker type,
// matched against the attachments uploaded so far. When the same document
// type was uploaded more than once, the most recent attachment wins.
func BuildChecklist(
	requirements []model.ProductRequirement,
	docTypes map[string]model.DocumentType,
	attachments []model.Attachment,
	workerType valueobject.WorkerType,
	now time.Time,
) []model.ChecklistItem {
	latest := make(map[string]model.Attachment, len(attachments))
	for _, att := range attachments {
		if prev, ok := latest[att.DocumentTypeID]; !ok || att.CreatedAt.After(prev.CreatedAt) {
			latest[att.DocumentTypeID] = att
		}
	}

	items := make([]model.ChecklistItem, 0, len(requirements))
	for _, req := range requirements {
		if !req.WorkerType.IsZero() && !req.WorkerType.Equal(workerType) {
			continue
		}
		docType, ok := docTypes[req.DocumentTypeID]
		if !ok {
			continue
		}

		item := model.ChecklistItem{
			Code:      docType.Code,
			Name:      docType.Name,
			Mandatory: req.Mandatory,
		}
		if att, ok := latest[req.DocumentTypeID]; ok {
			item.Received = true
			item.AttachmentID = att.ID
			item.Valid, item.Note = CheckAttachmentValidity(att, docType, now)
		}
		items = append(items, item)
	}
	return items
}

// ChecklistComplete reports whether every mandatory item has been received
// and is currently valid.
func ChecklistComplete(items []model.ChecklistItem) bool {
	for _, item := range items {
		if item.Mandatory && (!item.Received || !item.Valid) {
			return false
		}
	}
	return true
}
