package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/application/dto"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/application/usecase"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
)

func TestEvaluateRequest_Execute(t *testing.T) {
	anyOfficer := func(ctx context.Context, id string) (model.Officer, error) {
		return model.Officer{ID: id, CanApprove: true, ApprovalLimit: decimal.NewFromInt(50000)}, nil
	}

	t.Run("evaluates a submitted request", func(t *testing.T) {
		requestRepo := &mockCreditRequestRepository{
			getByIDFunc: func(ctx context.Context, id string) (model.CreditRequest, error) {
				return submittedRequest(), nil
			},
		}
		auditRepo := &mockAuditLogRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewEvaluateRequestUseCase(
			requestRepo, &mockOfficerRepository{getByIDFunc: anyOfficer},
			auditRepo, publisher,
		)

		resp, err := uc.Execute(context.Background(), dto.EvaluateRequestRequest{
			RequestID: "req-002",
			OfficerID: "off-001",
			RiskScore: 720,
			Note:      "stable income",
		})

		require.NoError(t, err)
		assert.Equal(t, "EVALUATED", resp.Status)
		assert.Equal(t, 720, resp.RiskScore)
		require.NotNil(t, resp.EvaluatedAt)
		require.Len(t, requestRepo.updated, 1)
		require.Len(t, auditRepo.entries, 1)
		assert.Equal(t, "request.evaluate", auditRepo.entries[0].Action)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "credit.request.evaluated", publisher.publishedEvents[0].EventType())
	})

	t.Run("rejects a risk score out of range", func(t *testing.T) {
		requestRepo := &mockCreditRequestRepository{}
		uc := usecase.NewEvaluateRequestUseCase(
			requestRepo, &mockOfficerRepository{getByIDFunc: anyOfficer},
			&mockAuditLogRepository{}, &mockEventPublisher{},
		)
		_, err := uc.Execute(context.Background(), dto.EvaluateRequestRequest{
			RequestID: "req-002",
			OfficerID: "off-001",
			RiskScore: 1001,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrValidation)
		assert.Empty(t, requestRepo.updated)
	})

	t.Run("fails when the officer does not exist", func(t *testing.T) {
		uc := usecase.NewEvaluateRequestUseCase(
			&mockCreditRequestRepository{}, &mockOfficerRepository{},
			&mockAuditLogRepository{}, &mockEventPublisher{},
		)
		_, err := uc.Execute(context.Background(), dto.EvaluateRequestRequest{
			RequestID: "req-002",
			OfficerID: "off-missing",
			RiskScore: 500,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("cannot evaluate a request twice", func(t *testing.T) {
		requestRepo := &mockCreditRequestRepository{
			getByIDFunc: func(ctx context.Context, id string) (model.CreditRequest, error) {
				return evaluatedRequest(), nil
			},
		}
		uc := usecase.NewEvaluateRequestUseCase(
			requestRepo, &mockOfficerRepository{getByIDFunc: anyOfficer},
			&mockAuditLogRepository{}, &mockEventPublisher{},
		)
		_, err := uc.Execute(context.Background(), dto.EvaluateRequestRequest{
			RequestID: "req-003",
			OfficerID: "off-001",
			RiskScore: 650,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrState)
		assert.Empty(t, requestRepo.updated)
	})
}
