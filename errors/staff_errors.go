// api/errors/staff_errors.go
package errors

import "errors"

var (
	ErrStaffNotFound       = errors.New("staff member not found")
	ErrInvalidStaffData    = errors.New("invalid staff data")
	ErrLastActiveOnFloor   = errors.New("only active staff member on the floor")
	ErrSameFloor           = errors.New("already assigned to that floor")
	ErrNoDelegateAvailable = errors.New("no eligible nurse available on the floor")
	ErrStillHoldsBeds      = errors.New("nurse still holds bed assignments")
	ErrDelegateNotEligible = errors.New("delegate must be an active nurse on the same floor")
	ErrWorkflowInProgress  = errors.New("another workflow is already running for this staff member")
	ErrNoPendingWorkflow   = errors.New("no operation is awaiting a delegate choice for this nurse")
)
