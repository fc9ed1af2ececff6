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
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/valueobject"
	"github.com/luisfernandobanegasro/entidad-financiera/pkg/money"
)

func evaluatedRequest() model.CreditRequest {
	now := time.Now().UTC()
	return model.ReconstructCreditRequest(
		"req-003", "cust-001", "off-001", "prod-001",
		decimal.NewFromInt(10000), money.BOB, 12, decimal.NewFromInt(24),
		valueobject.WorkerTypePrivate, valueobject.RequestStatusEvaluated,
		720, "stable income", now, time.Time{},
		2, now.AddDate(0, 0, -3), now,
	)
}

func approvingOfficer(limit int64) func(ctx context.Context, id string) (model.Officer, error) {
	return func(ctx context.Context, id string) (model.Officer, error) {
		return model.Officer{
			ID:            id,
			CanApprove:    true,
			ApprovalLimit: decimal.NewFromInt(limit),
		}, nil
	}
}

func TestDecideRequest_Execute(t *testing.T) {
	t.Run("approves within the officer limit", func(t *testing.T) {
		request := evaluatedRequest()
		requestRepo := &mockCreditRequestRepository{
			getByIDFunc: func(ctx context.Context, id string) (model.CreditRequest, error) {
				return request, nil
			},
		}
		auditRepo := &mockAuditLogRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewDecideRequestUseCase(
			requestRepo, &mockOfficerRepository{getByIDFunc: approvingOfficer(50000)},
			auditRepo, publisher,
		)

		resp, err := uc.Execute(context.Background(), dto.DecideRequestRequest{
			RequestID: "req-003",
			OfficerID: "off-001",
			Approve:   true,
		})

		require.NoError(t, err)
		assert.Equal(t, "APPROVED", resp.Status)
		require.NotNil(t, resp.ApprovedAt)
		require.Len(t, requestRepo.updated, 1)
		require.Len(t, auditRepo.entries, 1)
		assert.Equal(t, "request.approve", auditRepo.entries[0].Action)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "credit.request.approved", publisher.publishedEvents[0].EventType())
	})

	t.Run("refuses approval above the officer limit", func(t *testing.T) {
		request := evaluatedRequest()
		requestRepo := &mockCreditRequestRepository{
			getByIDFunc: func(ctx context.Context, id string) (model.CreditRequest, error) {
				return request, nil
			},
		}
		uc := usecase.NewDecideRequestUseCase(
			requestRepo, &mockOfficerRepository{getByIDFunc: approvingOfficer(5000)},
			&mockAuditLogRepository{}, &mockEventPublisher{},
		)
		_, err := uc.Execute(context.Background(), dto.DecideRequestRequest{
			RequestID: "req-003",
			OfficerID: "off-001",
			Approve:   true,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrValidation)
		assert.Empty(t, requestRepo.updated)
	})

	t.Run("rejects with a reason", func(t *testing.T) {
		request := evaluatedRequest()
		requestRepo := &mockCreditRequestRepository{
			getByIDFunc: func(ctx context.Context, id string) (model.CreditRequest, error) {
				return request, nil
			},
		}
		auditRepo := &mockAuditLogRepository{}
		uc := usecase.NewDecideRequestUseCase(
			requestRepo, &mockOfficerRepository{getByIDFunc: approvingOfficer(50000)},
			auditRepo, &mockEventPublisher{},
		)
		resp, err := uc.Execute(context.Background(), dto.DecideRequestRequest{
			RequestID: "req-003",
			OfficerID: "off-001",
			Approve:   false,
			Reason:    "insufficient income",
		})
		require.NoError(t, err)
		assert.Equal(t, "REJECTED", resp.Status)
		assert.Nil(t, resp.ApprovedAt)
		require.Len(t, auditRepo.entries, 1)
		assert.Contains(t, auditRepo.entries[0].Detail, "insufficient income")
	})

	t.Run("rejection requires a reason", func(t *testing.T) {
		uc := usecase.NewDecideRequestUseCase(
			&mockCreditRequestRepository{}, &mockOfficerRepository{},
			&mockAuditLogRepository{}, &mockEventPublisher{},
		)
		_, err := uc.Execute(context.Background(), dto.DecideRequestRequest{
			RequestID: "req-003",
			OfficerID: "off-001",
			Approve:   false,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("cannot approve a request that is not evaluated", func(t *testing.T) {
		requestRepo := &mockCreditRequestRepository{
			getByIDFunc: func(ctx context.Context, id string) (model.CreditRequest, error) {
				return submittedRequest(), nil
			},
		}
		uc := usecase.NewDecideRequestUseCase(
			requestRepo, &mockOfficerRepository{getByIDFunc: approvingOfficer(50000)},
			&mockAuditLogRepository{}, &mockEventPublisher{},
		)
		_, err := uc.Execute(context.Background(), dto.DecideRequestRequest{
			RequestID: "req-002",
			OfficerID: "off-001",
			Approve:   true,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrState)
	})
}
