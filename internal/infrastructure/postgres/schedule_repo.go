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
	"github.com/luisfernandobanegasro/entidad-financiera/pkg/money"
	pgutil "github.com/luisfernandobanegasro/entidad-financiera/pkg/postgres"
)

// ScheduleRepo implements port.ScheduleRepository. Header and installments
// are written in one transaction; the unique constraint on request_id is the
// backstop against concurrent generation.
type ScheduleRepo struct {
	pool *pgxpool.Pool
}

// NewScheduleRepo creates a new repository backed by PostgreSQL.
func NewScheduleRepo(pool *pgxpool.Pool) *ScheduleRepo {
	return &ScheduleRepo{pool: pool}
}

// Create inserts a schedule with its installments atomically. A schedule
// already present for the request surfaces as a conflict.
func (r *ScheduleRepo) Create(ctx context.Context, schedule model.Schedule, installments []model.Installment) error {
	err := pgutil.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return insertSchedule(ctx, tx, schedule, installments)
	})
	if err != nil {
		if pgutil.IsUniqueViolation(err) {
			return apperror.Conflict("schedule for request %s already exists", schedule.RequestID)
		}
		return err
	}
	return nil
}

// Replace swaps the existing schedule of the request for a new one in a
// single transaction. Installments go with the old header via cascade.
func (r *ScheduleRepo) Replace(ctx context.Context, schedule model.Schedule, installments []model.Installment) error {
	return pgutil.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM payment_schedules WHERE request_id = $1`, schedule.RequestID,
		); err != nil {
			return fmt.Errorf("delete old schedule: %w", err)
		}
		return insertSchedule(ctx, tx, schedule, installments)
	})
}

// GetByRequestID loads the schedule of a request with all installments.
func (r *ScheduleRepo) GetByRequestID(ctx context.Context, requestID string) (model.Schedule, []model.Installment, error) {
	headerQuery := `
		SELECT id, request_id, method, currency, first_due_date,
		       installment_amount, total_capital, total_interest,
		       total_payments, rounding_adjustment, generated_by, created_at
		FROM payment_schedules
		WHERE request_id = $1
	`
	var (
		schedule     model.Schedule
		currencyCode string
	)
	err := r.pool.QueryRow(ctx, headerQuery, requestID).Scan(
		&schedule.ID, &schedule.RequestID, &schedule.Method, &currencyCode,
		&schedule.FirstDueDate, &schedule.InstallmentAmount,
		&schedule.TotalCapital, &schedule.TotalInterest,
		&schedule.TotalPayments, &schedule.RoundingAdjustment,
		&schedule.GeneratedBy, &schedule.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Schedule{}, nil, apperror.NotFound("schedule for request %s", requestID)
	}
	if err != nil {
		return model.Schedule{}, nil, fmt.Errorf("scan schedule: %w", err)
	}
	if schedule.Currency, err = money.NewCurrency(currencyCode); err != nil {
		return model.Schedule{}, nil, fmt.Errorf("parse currency: %w", err)
	}

	rowsQuery := `
		SELECT number, due_date, capital, interest, payment, balance, adjustment
		FROM schedule_installments
		WHERE schedule_id = $1
		ORDER BY number
	`
	rows, err := r.pool.Query(ctx, rowsQuery, schedule.ID)
	if err != nil {
		return model.Schedule{}, nil, fmt.Errorf("query installments: %w", err)
	}
	defer rows.Close()

	var installments []model.Installment
	for rows.Next() {
		var (
			inst    model.Installment
			dueDate time.Time
		)
		if err := rows.Scan(
			&inst.Number, &dueDate, &inst.Capital, &inst.Interest,
			&inst.Payment, &inst.Balance, &inst.Adjustment,
		); err != nil {
			return model.Schedule{}, nil, fmt.Errorf("scan installment: %w", err)
		}
		inst.DueDate = dueDate
		installments = append(installments, inst)
	}
	return schedule, installments, rows.Err()
}

// ExistsForRequest reports whether the request already has a schedule.
func (r *ScheduleRepo) ExistsForRequest(ctx context.Context, requestID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM payment_schedules WHERE request_id = $1)`, requestID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check schedule existence: %w", err)
	}
	return exists, nil
}

func insertSchedule(ctx context.Context, tx pgx.Tx, schedule model.Schedule, installments []model.Installment) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO payment_schedules (
			id, request_id, method, currency, first_due_date,
			installment_amount, total_capital, total_interest,
			total_payments, rounding_adjustment, generated_by, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		schedule.ID, schedule.RequestID, schedule.Method, schedule.Currency.Code(),
		schedule.FirstDueDate, schedule.InstallmentAmount,
		schedule.TotalCapital, schedule.TotalInterest,
		schedule.TotalPayments, schedule.RoundingAdjustment,
		schedule.GeneratedBy, schedule.CreatedAt,
	)
	if err != nil {
		if pgutil.IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("insert schedule: %w", err)
	}

	batch := &pgx.Batch{}
	for _, inst := range installments {
		batch.Queue(`
			INSERT INTO schedule_installments (
				schedule_id, number, due_date, capital, interest,
				payment, balance, adjustment
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		`,
			schedule.ID, inst.Number, inst.DueDate, inst.Capital,
			inst.Interest, inst.Payment, inst.Balance, inst.Adjustment,
		)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range installments {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert installment: %w", err)
		}
	}
	return results.Close()
}
