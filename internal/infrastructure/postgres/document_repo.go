package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/valueobject"
)

// DocumentRepo implements port.DocumentRepository.
type DocumentRepo struct {
	pool *pgxpool.Pool
}

// NewDocumentRepo creates a new repository backed by PostgreSQL.
func NewDocumentRepo(pool *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

// GetDocumentType retrieves a catalog entry by ID.
func (r *DocumentRepo) GetDocumentType(ctx context.Context, id string) (model.DocumentType, error) {
	query := `SELECT id, code, name, validity_days FROM document_types WHERE id = $1`
	var dt model.DocumentType
	err := r.pool.QueryRow(ctx, query, id).Scan(&dt.ID, &dt.Code, &dt.Name, &dt.ValidityDays)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.DocumentType{}, apperror.NotFound("document type %s", id)
	}
	if err != nil {
		return model.DocumentType{}, fmt.Errorf("scan document type: %w", err)
	}
	return dt, nil
}

// GetDocumentTypes retrieves several catalog entries keyed by ID.
func (r *DocumentRepo) GetDocumentTypes(ctx context.Context, ids []string) (map[string]model.DocumentType, error) {
	result := make(map[string]model.DocumentType, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `SELECT id, code, name, validity_days FROM document_types WHERE id = ANY($1)`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("query document types: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dt model.DocumentType
		if err := rows.Scan(&dt.ID, &dt.Code, &dt.Name, &dt.ValidityDays); err != nil {
			return nil, fmt.Errorf("scan document type: %w", err)
		}
		result[dt.ID] = dt
	}
	return result, rows.Err()
}

// ListRequirements retrieves the document requirements of a product.
func (r *DocumentRepo) ListRequirements(ctx context.Context, productID string) ([]model.ProductRequirement, error) {
	query := `
		SELECT product_id, document_type_id, worker_type, mandatory
		FROM product_requirements
		WHERE product_id = $1
	`
	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("query requirements: %w", err)
	}
	defer rows.Close()

	var result []model.ProductRequirement
	for rows.Next() {
		var (
			req           model.ProductRequirement
			workerTypeStr string
		)
		if err := rows.Scan(&req.ProductID, &req.DocumentTypeID, &workerTypeStr, &req.Mandatory); err != nil {
			return nil, fmt.Errorf("scan requirement: %w", err)
		}
		// Empty worker_type means the requirement applies to every applicant.
		if workerTypeStr != "" {
			wt, err := valueobject.NewWorkerType(workerTypeStr)
			if err != nil {
				return nil, fmt.Errorf("parse worker type: %w", err)
			}
			req.WorkerType = wt
		}
		result = append(result, req)
	}
	return result, rows.Err()
}

// CreateAttachment inserts an attachment record.
func (r *DocumentRepo) CreateAttachment(ctx context.Context, attachment model.Attachment) error {
	query := `
		INSERT INTO request_attachments (
			id, request_id, document_type_id, file_name,
			issue_date, valid, note, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err := r.pool.Exec(ctx, query,
		attachment.ID, attachment.RequestID, attachment.DocumentTypeID,
		attachment.FileName, nullTime(attachment.IssueDate),
		attachment.Valid, attachment.Note, attachment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert attachment: %w", err)
	}
	return nil
}

// ListAttachments retrieves the attachments of a request, oldest first.
func (r *DocumentRepo) ListAttachments(ctx context.Context, requestID string) ([]model.Attachment, error) {
	query := `
		SELECT id, request_id, document_type_id, file_name,
		       issue_date, valid, note, created_at
		FROM request_attachments
		WHERE request_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("query attachments: %w", err)
	}
	defer rows.Close()

	var result []model.Attachment
	for rows.Next() {
		var (
			att       model.Attachment
			issueDate *time.Time
		)
		if err := rows.Scan(
			&att.ID, &att.RequestID, &att.DocumentTypeID, &att.FileName,
			&issueDate, &att.Valid, &att.Note, &att.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan attachment: %w", err)
		}
		att.IssueDate = derefTime(issueDate)
		result = append(result, att)
	}
	return result, rows.Err()
}
