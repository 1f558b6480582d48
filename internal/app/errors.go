package app

import "fmt"

type PlanErrorCode string

const (
	// PlanErrDataAccess means reading task or check-in history failed.
	PlanErrDataAccess PlanErrorCode = "DATA_ACCESS"

	// PlanErrAdapterFormat means the live generator returned output that
	// could not be parsed into the expected task array.
	PlanErrAdapterFormat PlanErrorCode = "ADAPTER_FORMAT"

	// PlanErrIncomplete means generated tasks did not cover every pillar
	// the strategy requested.
	PlanErrIncomplete PlanErrorCode = "INCOMPLETE_PLAN"

	// PlanErrConfig means no usable generator variant could be resolved.
	PlanErrConfig PlanErrorCode = "CONFIG"
)

// PlanError is a classified failure of the plan generation pipeline. There
// is never a partial plan: a PlanError means nothing was persisted.
type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *PlanError) Unwrap() error {
	return e.Err
}

// NewPlanError wraps err with a pipeline failure classification.
func NewPlanError(code PlanErrorCode, err error, format string, args ...any) *PlanError {
	return &PlanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
