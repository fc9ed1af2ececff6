package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/valueobject"
	"github.com/luisfernandobanegasro/entidad-financiera/pkg/money"
	pgutil "github.com/luisfernandobanegasro/entidad-financiera/pkg/postgres"
)

// CreditRequestRepo implements port.CreditRequestRepository.
type CreditRequestRepo struct {
	pool *pgxpool.Pool
}

// NewCreditRequestRepo creates a new repository backed by PostgreSQL.
func NewCreditRequestRepo(pool *pgxpool.Pool) *CreditRequestRepo {
	return &CreditRequestRepo{pool: pool}
}

const creditRequestColumns = `
	id, customer_id, officer_id, product_id, amount, currency,
	term_months, nominal_annual_rate, worker_type, status,
	risk_score, evaluation_note, evaluated_at, approved_at,
	version, created_at, updated_at
`

// Create inserts a new credit request.
func (r *CreditRequestRepo) Create(ctx context.Context, request model.CreditRequest) error {
	query := `
		INSERT INTO credit_requests (` + creditRequestColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`
	_, err := r.pool.Exec(ctx, query, requestArgs(request)...)
	if err != nil {
		if pgutil.IsUniqueViolation(err) {
			return apperror.Conflict("credit request %s already exists", request.ID())
		}
		return fmt.Errorf("insert credit request: %w", err)
	}
	return nil
}

// Update persists a state change with optimistic locking on version.
func (r *CreditRequestRepo) Update(ctx context.Context, request model.CreditRequest) error {
	query := `
		UPDATE credit_requests SET
			officer_id          = $2,
			status              = $3,
			risk_score          = $4,
			evaluation_note     = $5,
			evaluated_at        = $6,
			approved_at         = $7,
			version             = version + 1,
			updated_at          = $8
		WHERE id = $1 AND version = $9
	`
	tag, err := r.pool.Exec(ctx, query,
		request.ID(), nullString(request.OfficerID()),
		request.Status().String(), request.RiskScore(), request.EvaluationNote(),
		nullTime(request.EvaluatedAt()), nullTime(request.ApprovedAt()),
		request.UpdatedAt(), request.Version(),
	)
	if err != nil {
		return fmt.Errorf("update credit request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.Conflict("credit request %s was modified concurrently", request.ID())
	}
	return nil
}

// GetByID retrieves a single credit request.
func (r *CreditRequestRepo) GetByID(ctx context.Context, id string) (model.CreditRequest, error) {
	query := `SELECT ` + creditRequestColumns + ` FROM credit_requests WHERE id = $1`
	request, err := scanCreditRequest(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.CreditRequest{}, apperror.NotFound("credit request %s", id)
	}
	return request, err
}

// ListByCustomer retrieves all requests of a customer, newest first.
func (r *CreditRequestRepo) ListByCustomer(ctx context.Context, customerID string) ([]model.CreditRequest, error) {
	query := `
		SELECT ` + creditRequestColumns + `
		FROM credit_requests
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("query credit requests: %w", err)
	}
	defer rows.Close()

	var result []model.CreditRequest
	for rows.Next() {
		request, err := scanCreditRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}

func requestArgs(request model.CreditRequest) []any {
	return []any{
		request.ID(), request.CustomerID(), nullString(request.OfficerID()), request.ProductID(),
		request.Amount(), request.Currency().Code(),
		request.TermMonths(), request.NominalAnnualRate(),
		request.WorkerType().String(), request.Status().String(),
		request.RiskScore(), request.EvaluationNote(),
		nullTime(request.EvaluatedAt()), nullTime(request.ApprovedAt()),
		request.Version(), request.CreatedAt(), request.UpdatedAt(),
	}
}

func scanCreditRequest(s scannable) (model.CreditRequest, error) {
	var (
		id, customerID, productID  string
		officerID                  *string
		amount, nominalAnnualRate  decimal.Decimal
		currencyCode               string
		termMonths, riskScore      int
		workerTypeStr, statusStr   string
		evaluationNote             string
		evaluatedAt, approvedAt    *time.Time
		version                    int
		createdAt, updatedAt       time.Time
	)

	err := s.Scan(
		&id, &customerID, &officerID, &productID, &amount, &currencyCode,
		&termMonths, &nominalAnnualRate, &workerTypeStr, &statusStr,
		&riskScore, &evaluationNote, &evaluatedAt, &approvedAt,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.CreditRequest{}, err
	}

	currency, err := money.NewCurrency(currencyCode)
	if err != nil {
		return model.CreditRequest{}, fmt.Errorf("parse currency: %w", err)
	}
	workerType, err := valueobject.NewWorkerType(workerTypeStr)
	if err != nil {
		return model.CreditRequest{}, fmt.Errorf("parse worker type: %w", err)
	}
	status, err := valueobject.NewRequestStatus(statusStr)
	if err != nil {
		return model.CreditRequest{}, fmt.Errorf("parse status: %w", err)
	}

	return model.ReconstructCreditRequest(
		id, customerID, derefString(officerID), productID,
		amount, currency, termMonths, nominalAnnualRate,
		workerType, status, riskScore, evaluationNote,
		derefTime(evaluatedAt), derefTime(approvedAt),
		version, createdAt, updatedAt,
	), nil
}
