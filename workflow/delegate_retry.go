// api/workflow/delegate_retry.go

// Package workflow models the multi-step staff operations that can be blocked
// by held bed assignments. A nurse still holding beds can neither be
// deactivated nor moved to another floor outright; her beds must first be
// delegated to a colleague, after which the blocked operation is retried
// exactly once. Encoding the retry as a state transition makes "at most one
// retry" structural rather than a convention.
package workflow

import (
	"context"
	"errors"
	"sync"

	facility_errors "github.com/hospicore/facility/api/errors"
)

// State is the position of a delegate-then-retry run in its lifecycle.
type State string

const (
	StateIdle                   State = "IDLE"
	StateAwaitingDelegateChoice State = "AWAITING_DELEGATE_CHOICE"
	StateRetrying               State = "RETRYING"
	StateDone                   State = "DONE"
	StateFailed                 State = "FAILED"
)

// OperationFunc performs the guarded operation (deactivation, floor
// reassignment) against the backend and returns its confirmation message.
type OperationFunc func(ctx context.Context) (string, error)

// DelegateFunc moves every bed held by the nurse to the chosen colleague and
// returns the backend's confirmation message. The operation is idempotent on
// the backend side; delegating a nurse with no beds left succeeds.
type DelegateFunc func(ctx context.Context, toNurseID int) (string, error)

// DelegateRetry drives one nurse's blocked operation. It is safe for
// concurrent use; the two steps usually arrive on separate requests.
type DelegateRetry struct {
	mu      sync.Mutex
	state   State
	nurseID int

	op       OperationFunc
	delegate DelegateFunc

	delegatedTo int
	conflictMsg string
}

func NewDelegateRetry(nurseID int, op OperationFunc, delegate DelegateFunc) *DelegateRetry {
	return &DelegateRetry{
		state:    StateIdle,
		nurseID:  nurseID,
		op:       op,
		delegate: delegate,
	}
}

func (d *DelegateRetry) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *DelegateRetry) NurseID() int {
	return d.nurseID
}

// ConflictMessage is the backend's explanation for the conflict that parked
// the workflow in AWAITING_DELEGATE_CHOICE.
func (d *DelegateRetry) ConflictMessage() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.conflictMsg
}

// Start runs the first attempt. On success the workflow is DONE and the
// backend's confirmation is returned. A conflict parks it in
// AWAITING_DELEGATE_CHOICE and returns ErrStillHoldsBeds so the caller can
// offer a delegate choice. Any other failure is terminal.
func (d *DelegateRetry) Start(ctx context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StateIdle {
		return "", facility_errors.ErrWorkflowInProgress
	}

	msg, err := d.op(ctx)
	switch {
	case err == nil:
		d.state = StateDone
		return msg, nil
	case errors.Is(err, facility_errors.ErrConflict):
		d.state = StateAwaitingDelegateChoice
		var be *facility_errors.BackendError
		if errors.As(err, &be) {
			d.conflictMsg = be.Message
		}
		return "", facility_errors.ErrStillHoldsBeds
	default:
		d.state = StateFailed
		return "", err
	}
}

// ChooseDelegate resolves the conflict: it delegates the nurse's beds to the
// chosen colleague and retries the blocked operation once. A second conflict
// is terminal; there is no second retry by construction. The returned message
// is the operation's confirmation, or the delegation's when the operation
// answers with an empty body.
func (d *DelegateRetry) ChooseDelegate(ctx context.Context, toNurseID int) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StateAwaitingDelegateChoice {
		return "", facility_errors.ErrWorkflowInProgress
	}
	if toNurseID == d.nurseID {
		return "", facility_errors.ErrDelegateNotEligible
	}

	delegateMsg, err := d.delegate(ctx, toNurseID)
	if err != nil {
		d.state = StateFailed
		return "", err
	}
	d.delegatedTo = toNurseID

	d.state = StateRetrying
	msg, err := d.op(ctx)
	if err != nil {
		d.state = StateFailed
		return "", err
	}
	d.state = StateDone
	if msg == "" {
		msg = delegateMsg
	}
	return msg, nil
}

// Terminal reports whether the workflow has run to completion, in either
// direction.
func (d *DelegateRetry) Terminal() bool {
	s := d.State()
	return s == StateDone || s == StateFailed
}
