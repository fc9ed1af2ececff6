package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// RequestStatus – immutable value object
// ---------------------------------------------------------------------------

// RequestStatus represents the lifecycle stage of a credit request.
type RequestStatus struct {
	value string
}

const (
	requestStatusDraft     = "DRAFT"
	requestStatusSubmitted = "SUBMITTED"
	requestStatusEvaluated = "EVALUATED"
	requestStatusApproved  = "APPROVED"
	requestStatusRejected  = "REJECTED"
)

var (
	RequestStatusDraft     = RequestStatus{value: requestStatusDraft}
	RequestStatusSubmitted = RequestStatus{value: requestStatusSubmitted}
	RequestStatusEvaluated = RequestStatus{value: requestStatusEvaluated}
	RequestStatusApproved  = RequestStatus{value: requestStatusApproved}
	RequestStatusRejected  = RequestStatus{value: requestStatusRejected}
)

var validRequestStatuses = map[string]RequestStatus{
	requestStatusDraft:     RequestStatusDraft,
	requestStatusSubmitted: RequestStatusSubmitted,
	requestStatusEvaluated: RequestStatusEvaluated,
	requestStatusApproved:  RequestStatusApproved,
	requestStatusRejected:  RequestStatusRejected,
}

// NewRequestStatus creates a RequestStatus from a raw string.
func NewRequestStatus(s string) (RequestStatus, error) {
	v, ok := validRequestStatuses[s]
	if !ok {
		return RequestStatus{}, fmt.Errorf("invalid request status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s RequestStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s RequestStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s RequestStatus) Equal(other RequestStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var ErrInvalidStatusTransition = errors.New("invalid status transition")
