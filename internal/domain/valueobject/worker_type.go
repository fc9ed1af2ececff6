package valueobject

import "fmt"

// WorkerType classifies the applicant's employment situation. It selects
// which document requirements apply to a credit request.
type WorkerType struct {
	value string
}

const (
	workerTypePublic       = "PUBLIC"
	workerTypePrivate      = "PRIVATE"
	workerTypeSelfEmployed = "SELF_EMPLOYED"
)

var (
	WorkerTypePublic       = WorkerType{value: workerTypePublic}
	WorkerTypePrivate      = WorkerType{value: workerTypePrivate}
	WorkerTypeSelfEmployed = WorkerType{value: workerTypeSelfEmployed}
)

var validWorkerTypes = map[string]WorkerType{
	workerTypePublic:       WorkerTypePublic,
	workerTypePrivate:      WorkerTypePrivate,
	workerTypeSelfEmployed: WorkerTypeSelfEmployed,
}

// NewWorkerType creates a WorkerType from a raw string.
func NewWorkerType(s string) (WorkerType, error) {
	v, ok := validWorkerTypes[s]
	if !ok {
		return WorkerType{}, fmt.Errorf("invalid worker type: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (w WorkerType) String() string { return w.value }

// IsZero returns true when not initialised.
func (w WorkerType) IsZero() bool { return w.value == "" }

// Equal returns true when both types match.
func (w WorkerType) Equal(other WorkerType) bool { return w.value == other.value }
