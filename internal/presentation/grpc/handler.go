package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/application/usecase"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/apperror"
	"github.com/luisfernandobanegasro/entidad-financiera/pkg/auth"
)

// CreditHandler exposes the credit engine operations over gRPC. Simulation
// is open to any authenticated caller; evaluating, deciding, and generating
// schedules require the officer or admin role.
type CreditHandler struct {
	UnimplementedCreditServiceServer

	registerCustomer *usecase.RegisterCustomerUseCase
	submitRequest    *usecase.SubmitRequestUseCase
	evaluateRequest  *usecase.EvaluateRequestUseCase
	decideRequest    *usecase.DecideRequestUseCase
	generateSchedule *usecase.GenerateScheduleUseCase
	simulate         *usecase.SimulateScheduleUseCase
	attachDocument   *usecase.AttachDocumentUseCase
	getRequest       *usecase.GetRequestUseCase
	getSchedule      *usecase.GetScheduleUseCase
	getChecklist     *usecase.GetChecklistUseCase
}

// NewCreditHandler creates a new handler with all use-case dependencies.
func NewCreditHandler(
	registerCustomer *usecase.RegisterCustomerUseCase,
	submitRequest *usecase.SubmitRequestUseCase,
	evaluateRequest *usecase.EvaluateRequestUseCase,
	decideRequest *usecase.DecideRequestUseCase,
	generateSchedule *usecase.GenerateScheduleUseCase,
	simulate *usecase.SimulateScheduleUseCase,
	attachDocument *usecase.AttachDocumentUseCase,
	getRequest *usecase.GetRequestUseCase,
	getSchedule *usecase.GetScheduleUseCase,
	getChecklist *usecase.GetChecklistUseCase,
) *CreditHandler {
	return &CreditHandler{
		registerCustomer: registerCustomer,
		submitRequest:    submitRequest,
		evaluateRequest:  evaluateRequest,
		decideRequest:    decideRequest,
		generateSchedule: generateSchedule,
		simulate:         simulate,
		attachDocument:   attachDocument,
		getRequest:       getRequest,
		getSchedule:      getSchedule,
		getChecklist:     getChecklist,
	}
}

// RegisterCustomer registers a credit applicant.
func (h *CreditHandler) RegisterCustomer(ctx context.Context, req *RegisterCustomerRequest) (*CustomerResponse, error) {
	resp, err := h.registerCustomer.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// SubmitRequest opens a new credit request.
func (h *CreditHandler) SubmitRequest(ctx context.Context, req *SubmitRequestRequest) (*CreditRequestResponse, error) {
	resp, err := h.submitRequest.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// EvaluateRequest records an officer's risk evaluation.
func (h *CreditHandler) EvaluateRequest(ctx context.Context, req *EvaluateRequestRequest) (*CreditRequestResponse, error) {
	claims, err := requireOfficer(ctx)
	if err != nil {
		return nil, err
	}
	in := *req
	if in.OfficerID == "" {
		in.OfficerID = claims.UserID.String()
	}
	resp, err := h.evaluateRequest.Execute(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// DecideRequest approves or rejects an evaluated request.
func (h *CreditHandler) DecideRequest(ctx context.Context, req *DecideRequestRequest) (*CreditRequestResponse, error) {
	claims, err := requireOfficer(ctx)
	if err != nil {
		return nil, err
	}
	in := *req
	if in.OfficerID == "" {
		in.OfficerID = claims.UserID.String()
	}
	resp, err := h.decideRequest.Execute(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// GenerateSchedule produces and persists the payment schedule of an
// approved request.
func (h *CreditHandler) GenerateSchedule(ctx context.Context, req *GenerateScheduleRequest) (*ScheduleResponse, error) {
	claims, err := requireOfficer(ctx)
	if err != nil {
		return nil, err
	}
	in := *req
	if in.GeneratedBy == "" {
		in.GeneratedBy = claims.UserID.String()
	}
	resp, err := h.generateSchedule.Execute(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// SimulateSchedule computes a schedule without persisting anything.
func (h *CreditHandler) SimulateSchedule(ctx context.Context, req *SimulateScheduleRequest) (*SimulationResponse, error) {
	resp, err := h.simulate.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// AttachDocument uploads a supporting document against a request.
func (h *CreditHandler) AttachDocument(ctx context.Context, req *AttachDocumentRequest) (*AttachmentResponse, error) {
	resp, err := h.attachDocument.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// GetRequest retrieves a credit request.
func (h *CreditHandler) GetRequest(ctx context.Context, req *GetRequestRequest) (*CreditRequestResponse, error) {
	resp, err := h.getRequest.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// GetSchedule retrieves the persisted schedule of a request.
func (h *CreditHandler) GetSchedule(ctx context.Context, req *GetScheduleRequest) (*ScheduleResponse, error) {
	resp, err := h.getSchedule.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// GetChecklist retrieves the document checklist of a request.
func (h *CreditHandler) GetChecklist(ctx context.Context, req *GetChecklistRequest) (*ChecklistResponse, error) {
	resp, err := h.getChecklist.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

func requireOfficer(ctx context.Context) (*auth.Claims, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing credentials")
	}
	if !claims.HasRole(auth.RoleOfficer) && !claims.HasRole(auth.RoleAdmin) {
		return nil, status.Error(codes.PermissionDenied, "officer role required")
	}
	return claims, nil
}

// toStatusError maps the business-error taxonomy onto gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, apperror.ErrState):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, apperror.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, apperror.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
