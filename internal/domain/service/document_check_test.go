package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/valueobject"
)

func TestCheckAttachmentValidity(t *testing.T) {
	now := date(2026, time.August, 28)

	t.Run("no validity window never expires", func(t *testing.T) {
		valid, note := CheckAttachmentValidity(
			model.Attachment{IssueDate: date(2010, time.January, 1)},
			model.DocumentType{ValidityDays: 0},
			now,
		)
		assert.True(t, valid)
		assert.Empty(t, note)
	})

	t.Run("inside window", func(t *testing.T) {
		valid, note := CheckAttachmentValidity(
			model.Attachment{IssueDate: date(2026, time.August, 1)},
			model.DocumentType{ValidityDays: 30},
			now,
		)
		assert.True(t, valid)
		assert.Empty(t, note)
	})

	t.Run("expired", func(t *testing.T) {
		valid, note := CheckAttachmentValidity(
			model.Attachment{IssueDate: date(2026, time.June, 1)},
			model.DocumentType{ValidityDays: 30},
			now,
		)
		assert.False(t, valid)
		assert.Contains(t, note, "expired on 2026-07-01")
	})

	t.Run("missing issue date", func(t *testing.T) {
		valid, note := CheckAttachmentValidity(
			model.Attachment{},
			model.DocumentType{ValidityDays: 90},
			now,
		)
		assert.False(t, valid)
		assert.Contains(t, note, "issue date")
	})
}

func TestBuildChecklist(t *testing.T) {
	now := date(2026, time.August, 28)

	docTypes := map[string]model.DocumentType{
		"dt-ci":     {ID: "dt-ci", Code: "CI", Name: "Identity card", ValidityDays: 0},
		"dt-boleta": {ID: "dt-boleta", Code: "BOLETA", Name: "Pay slip", ValidityDays: 60},
		"dt-nit":    {ID: "dt-nit", Code: "NIT", Name: "Tax registration", ValidityDays: 365},
	}
	requirements := []model.ProductRequirement{
		{ProductID: "p1", DocumentTypeID: "dt-ci", Mandatory: true},
		{ProductID: "p1", DocumentTypeID: "dt-boleta", WorkerType: valueobject.WorkerTypePrivate, Mandatory: true},
		{ProductID: "p1", DocumentTypeID: "dt-nit", WorkerType: valueobject.WorkerTypeSelfEmployed, Mandatory: true},
	}

	t.Run("filters requirements by worker type", func(t *testing.T) {
		items := BuildChecklist(requirements, docTypes, nil, valueobject.WorkerTypePrivate, now)
		require.Len(t, items, 2)
		assert.Equal(t, "CI", items[0].Code)
		assert.Equal(t, "BOLETA", items[1].Code)
		assert.False(t, items[0].Received)
		assert.False(t, ChecklistComplete(items))
	})

	t.Run("matches attachments and checks validity", func(t *testing.T) {
		attachments := []model.Attachment{
			{ID: "a1", DocumentTypeID: "dt-ci", IssueDate: date(2020, time.March, 3), CreatedAt: now},
			{ID: "a2", DocumentTypeID: "dt-boleta", IssueDate: date(2026, time.August, 10), CreatedAt: now},
		}
		items := BuildChecklist(requirements, docTypes, attachments, valueobject.WorkerTypePrivate, now)
		require.Len(t, items, 2)
		for _, item := range items {
			assert.True(t, item.Received, "%s should be received", item.Code)
			assert.True(t, item.Valid, "%s should be valid", item.Code)
		}
		assert.True(t, ChecklistComplete(items))
	})

	t.Run("expired mandatory document blocks completion", func(t *testing.T) {
		attachments := []model.Attachment{
			{ID: "a1", DocumentTypeID: "dt-ci", CreatedAt: now},
			{ID: "a2", DocumentTypeID: "dt-boleta", IssueDate: date(2026, time.January, 1), CreatedAt: now},
		}
		items := BuildChecklist(requirements, docTypes, attachments, valueobject.WorkerTypePrivate, now)
		require.Len(t, items, 2)
		assert.False(t, items[1].Valid)
		assert.NotEmpty(t, items[1].Note)
		assert.False(t, ChecklistComplete(items))
	})

	t.Run("latest upload wins", func(t *testing.T) {
		attachments := []model.Attachment{
			{ID: "old", DocumentTypeID: "dt-boleta", IssueDate: date(2026, time.January, 1), CreatedAt: now.AddDate(0, -2, 0)},
			{ID: "new", DocumentTypeID: "dt-boleta", IssueDate: date(2026, time.August, 15), CreatedAt: now},
		}
		items := BuildChecklist(requirements, docTypes, attachments, valueobject.WorkerTypePrivate, now)
		require.Len(t, items, 2)
		assert.Equal(t, "new", items[1].AttachmentID)
		assert.True(t, items[1].Valid)
	})
}
