package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/application/dto"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/application/usecase"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
)

func TestPreviewSchedule_Execute(t *testing.T) {
	uc := usecase.NewPreviewScheduleUseCase()

	t.Run("computes without persisting", func(t *testing.T) {
		first := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
		resp, err := uc.Execute(context.Background(), dto.PreviewScheduleRequest{
			Principal:         decimal.NewFromInt(10000),
			TermMonths:        12,
			NominalAnnualRate: decimal.NewFromInt(24),
			FirstDueDate:      &first,
		})

		require.NoError(t, err)
		assert.Empty(t, resp.ID, "preview carries no identity")
		assert.Empty(t, resp.RequestID)
		assert.Equal(t, "BOB", resp.Currency, "currency defaults to BOB")
		require.Len(t, resp.Installments, 12)
		assert.True(t, resp.InstallmentAmount.Equal(decimal.RequireFromString("945.60")))
		assert.Equal(t, first, resp.FirstDueDate)
	})

	t.Run("is deterministic", func(t *testing.T) {
		first := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
		req := dto.PreviewScheduleRequest{
			Principal:         decimal.NewFromInt(5000),
			TermMonths:        6,
			NominalAnnualRate: decimal.RequireFromString("18.5"),
			Currency:          "USD",
			FirstDueDate:      &first,
		}
		a, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		b, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("validates required terms", func(t *testing.T) {
		cases := []struct {
			name string
			req  dto.PreviewScheduleRequest
		}{
			{"zero principal", dto.PreviewScheduleRequest{TermMonths: 12, NominalAnnualRate: decimal.NewFromInt(10)}},
			{"zero term", dto.PreviewScheduleRequest{Principal: decimal.NewFromInt(1000), NominalAnnualRate: decimal.NewFromInt(10)}},
			{"negative rate", dto.PreviewScheduleRequest{Principal: decimal.NewFromInt(1000), TermMonths: 12, NominalAnnualRate: decimal.NewFromInt(-1)}},
			{"bad currency", dto.PreviewScheduleRequest{Principal: decimal.NewFromInt(1000), TermMonths: 12, Currency: "bolivianos"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tc.req)
				require.Error(t, err)
				assert.ErrorIs(t, err, apperror.ErrValidation)
			})
		}
	})
}

func TestSimulateSchedule_Execute(t *testing.T) {
	uc := usecase.NewSimulateScheduleUseCase(usecase.NewPreviewScheduleUseCase())

	t.Run("returns the fixed simulation shape", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), dto.SimulateScheduleRequest{
			Amount:     decimal.NewFromInt(10000),
			TermMonths: 12,
			AnnualRate: decimal.NewFromInt(24),
		})

		require.NoError(t, err)
		assert.True(t, resp.MonthlyPayment.Equal(decimal.RequireFromString("945.60")))
		assert.True(t, resp.TotalInterest.Equal(decimal.RequireFromString("1347.15")))
		assert.True(t, resp.TotalPayment.Equal(decimal.RequireFromString("11347.15")))
		require.Len(t, resp.Installments, 12)
		assert.Equal(t, 12, resp.TermMonths)
	})

	t.Run("an explicit first due date pins the calendar", func(t *testing.T) {
		first := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
		resp, err := uc.Execute(context.Background(), dto.SimulateScheduleRequest{
			Amount:       decimal.NewFromInt(10000),
			TermMonths:   12,
			AnnualRate:   decimal.NewFromInt(24),
			FirstDueDate: &first,
		})

		require.NoError(t, err)
		require.Len(t, resp.Installments, 12)
		assert.Equal(t, first, resp.Installments[0].DueDate)
		assert.Equal(t, time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC), resp.Installments[1].DueDate)
	})

	t.Run("propagates validation failures", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), dto.SimulateScheduleRequest{
			Amount:     decimal.Zero,
			TermMonths: 12,
			AnnualRate: decimal.NewFromInt(24),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})
}
