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
	pgutil "github.com/luisfernandobanegasro/entidad-financiera/pkg/postgres"
)

// CustomerRepo implements port.CustomerRepository.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepo creates a new repository backed by PostgreSQL.
func NewCustomerRepo(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

const customerColumns = `
	id, full_name, document_type, document_number, phone, address,
	birth_date, occupation, monthly_income, credit_score, preferred, created_at
`

// Create inserts a customer. The unique index on (document_type,
// document_number) turns duplicate registrations into conflicts.
func (r *CustomerRepo) Create(ctx context.Context, customer model.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`
	_, err := r.pool.Exec(ctx, query,
		customer.ID, customer.FullName,
		customer.DocumentType.String(), customer.DocumentNumber,
		customer.Phone, customer.Address,
		nullTime(customer.BirthDate), customer.Occupation,
		customer.MonthlyIncome, customer.CreditScore,
		customer.Preferred, customer.CreatedAt,
	)
	if err != nil {
		if pgutil.IsUniqueViolation(err) {
			return apperror.Conflict(
				"customer with document %s %s already exists",
				customer.DocumentType, customer.DocumentNumber,
			)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	customer, err := scanCustomer(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Customer{}, apperror.NotFound("customer %s", id)
	}
	return customer, err
}

// GetByDocument retrieves a customer by identity document.
func (r *CustomerRepo) GetByDocument(ctx context.Context, documentType, documentNumber string) (model.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE document_type = $1 AND document_number = $2
	`
	customer, err := scanCustomer(r.pool.QueryRow(ctx, query, documentType, documentNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Customer{}, apperror.NotFound("customer document %s %s", documentType, documentNumber)
	}
	return customer, err
}

func scanCustomer(s scannable) (model.Customer, error) {
	var (
		customer      model.Customer
		docTypeStr    string
		birthDate     *time.Time
		monthlyIncome decimal.Decimal
	)
	err := s.Scan(
		&customer.ID, &customer.FullName, &docTypeStr, &customer.DocumentNumber,
		&customer.Phone, &customer.Address, &birthDate, &customer.Occupation,
		&monthlyIncome, &customer.CreditScore, &customer.Preferred, &customer.CreatedAt,
	)
	if err != nil {
		return model.Customer{}, err
	}

	docType, err := valueobject.NewIdentityDocumentType(docTypeStr)
	if err != nil {
		return model.Customer{}, fmt.Errorf("parse document type: %w", err)
	}
	customer.DocumentType = docType
	customer.BirthDate = derefTime(birthDate)
	customer.MonthlyIncome = monthlyIncome
	return customer, nil
}
