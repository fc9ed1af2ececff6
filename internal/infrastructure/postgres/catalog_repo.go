package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
)

// OfficerRepo implements port.OfficerRepository.
type OfficerRepo struct {
	pool *pgxpool.Pool
}

// NewOfficerRepo creates a new repository backed by PostgreSQL.
func NewOfficerRepo(pool *pgxpool.Pool) *OfficerRepo {
	return &OfficerRepo{pool: pool}
}

// GetByID retrieves an officer by ID.
func (r *OfficerRepo) GetByID(ctx context.Context, id string) (model.Officer, error) {
	query := `
		SELECT id, full_name, code, department, can_approve, approval_limit, created_at
		FROM officers
		WHERE id = $1
	`
	var officer model.Officer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&officer.ID, &officer.FullName, &officer.Code, &officer.Department,
		&officer.CanApprove, &officer.ApprovalLimit, &officer.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Officer{}, apperror.NotFound("officer %s", id)
	}
	if err != nil {
		return model.Officer{}, fmt.Errorf("scan officer: %w", err)
	}
	return officer, nil
}

// ProductRepo implements port.ProductRepository.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepo creates a new repository backed by PostgreSQL.
func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `
	id, name, min_amount, max_amount, min_term, max_term, default_rate, active
`

// GetByID retrieves a product by ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	product, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Product{}, apperror.NotFound("product %s", id)
	}
	return product, err
}

// ListActive retrieves the active product catalog.
func (r *ProductRepo) ListActive(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE active ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, product)
	}
	return result, rows.Err()
}

func scanProduct(s scannable) (model.Product, error) {
	var product model.Product
	err := s.Scan(
		&product.ID, &product.Name, &product.MinAmount, &product.MaxAmount,
		&product.MinTerm, &product.MaxTerm, &product.DefaultRate, &product.Active,
	)
	if err != nil {
		return model.Product{}, err
	}
	return product, nil
}
