package workflow_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	facility_errors "github.com/hospicore/facility/api/errors"
	"github.com/hospicore/facility/api/workflow"
)

func conflictErr(msg string) error {
	return facility_errors.NewBackendError(facility_errors.ErrConflict, http.StatusConflict, msg)
}

func TestDelegateRetry_CleanSuccess(t *testing.T) {
	calls := 0
	d := workflow.NewDelegateRetry(7,
		func(ctx context.Context) (string, error) { calls++; return "", nil },
		func(ctx context.Context, to int) (string, error) {
			t.Fatal("delegate must not run on a clean first attempt")
			return "", nil
		})

	_, err := d.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, workflow.StateDone, d.State())
	assert.Equal(t, 1, calls)
	assert.True(t, d.Terminal())
}

func TestDelegateRetry_ConflictThenDelegateThenSuccess(t *testing.T) {
	attempts := 0
	delegations := 0

	d := workflow.NewDelegateRetry(7,
		func(ctx context.Context) (string, error) {
			attempts++
			if attempts == 1 {
				return "", conflictErr("la enfermera tiene camas asignadas")
			}
			return "", nil
		},
		func(ctx context.Context, to int) (string, error) {
			delegations++
			assert.Equal(t, 9, to)
			return "Camas delegadas correctamente", nil
		})

	_, err := d.Start(context.Background())
	require.ErrorIs(t, err, facility_errors.ErrStillHoldsBeds)
	assert.Equal(t, workflow.StateAwaitingDelegateChoice, d.State())
	assert.Equal(t, "la enfermera tiene camas asignadas", d.ConflictMessage())

	msg, err := d.ChooseDelegate(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Camas delegadas correctamente", msg)
	assert.Equal(t, workflow.StateDone, d.State())
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 1, delegations)
}

func TestDelegateRetry_OperationMessageWinsOverDelegateMessage(t *testing.T) {
	attempts := 0
	d := workflow.NewDelegateRetry(7,
		func(ctx context.Context) (string, error) {
			attempts++
			if attempts == 1 {
				return "", conflictErr("la enfermera tiene camas asignadas")
			}
			return "Usuario reasignado", nil
		},
		func(ctx context.Context, to int) (string, error) {
			return "Camas delegadas correctamente", nil
		})

	_, err := d.Start(context.Background())
	require.ErrorIs(t, err, facility_errors.ErrStillHoldsBeds)

	msg, err := d.ChooseDelegate(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Usuario reasignado", msg)
	assert.Equal(t, workflow.StateDone, d.State())
}

func TestDelegateRetry_SecondConflictIsTerminal(t *testing.T) {
	attempts := 0

	d := workflow.NewDelegateRetry(7,
		func(ctx context.Context) (string, error) {
			attempts++
			return "", conflictErr("la enfermera tiene camas asignadas")
		},
		func(ctx context.Context, to int) (string, error) { return "ok", nil })

	_, err := d.Start(context.Background())
	require.ErrorIs(t, err, facility_errors.ErrStillHoldsBeds)

	_, err = d.ChooseDelegate(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, facility_errors.ErrConflict))
	assert.Equal(t, workflow.StateFailed, d.State())

	// No third attempt is possible: the workflow is terminal.
	_, err = d.ChooseDelegate(context.Background(), 11)
	assert.ErrorIs(t, err, facility_errors.ErrWorkflowInProgress)
	assert.Equal(t, 2, attempts)
}

func TestDelegateRetry_DelegateFailureIsTerminal(t *testing.T) {
	d := workflow.NewDelegateRetry(7,
		func(ctx context.Context) (string, error) { return "", conflictErr("camas asignadas") },
		func(ctx context.Context, to int) (string, error) {
			return "", facility_errors.NewBackendError(facility_errors.ErrNoResponse, 0, "")
		})

	_, err := d.Start(context.Background())
	require.ErrorIs(t, err, facility_errors.ErrStillHoldsBeds)

	_, err = d.ChooseDelegate(context.Background(), 9)
	require.ErrorIs(t, err, facility_errors.ErrNoResponse)
	assert.Equal(t, workflow.StateFailed, d.State())
}

func TestDelegateRetry_SelfDelegationRejected(t *testing.T) {
	d := workflow.NewDelegateRetry(7,
		func(ctx context.Context) (string, error) { return "", conflictErr("camas asignadas") },
		func(ctx context.Context, to int) (string, error) {
			t.Fatal("delegate must not run for a self delegation")
			return "", nil
		})

	_, err := d.Start(context.Background())
	require.ErrorIs(t, err, facility_errors.ErrStillHoldsBeds)

	_, err = d.ChooseDelegate(context.Background(), 7)
	assert.ErrorIs(t, err, facility_errors.ErrDelegateNotEligible)
	// The workflow stays parked; a valid choice can still arrive.
	assert.Equal(t, workflow.StateAwaitingDelegateChoice, d.State())
}

func TestDelegateRetry_StartTwiceRejected(t *testing.T) {
	d := workflow.NewDelegateRetry(7,
		func(ctx context.Context) (string, error) { return "", nil },
		func(ctx context.Context, to int) (string, error) { return "", nil })

	_, err := d.Start(context.Background())
	require.NoError(t, err)
	_, err = d.Start(context.Background())
	assert.ErrorIs(t, err, facility_errors.ErrWorkflowInProgress)
}

func TestDelegateRetry_ChooseDelegateBeforeStartRejected(t *testing.T) {
	d := workflow.NewDelegateRetry(7,
		func(ctx context.Context) (string, error) { return "", nil },
		func(ctx context.Context, to int) (string, error) { return "", nil })

	_, err := d.ChooseDelegate(context.Background(), 9)
	assert.ErrorIs(t, err, facility_errors.ErrWorkflowInProgress)
}

func TestRegistry_PendingLifecycle(t *testing.T) {
	r := workflow.NewRegistry()

	build := func() *workflow.DelegateRetry {
		return workflow.NewDelegateRetry(7,
			func(ctx context.Context) (string, error) { return "", conflictErr("camas asignadas") },
			func(ctx context.Context, to int) (string, error) { return "ok", nil })
	}

	d := r.GetOrCreate(7, build)
	same := r.GetOrCreate(7, build)
	assert.Same(t, d, same, "non-terminal workflow is reused")

	_, ok := r.Pending(7)
	assert.True(t, ok)
	_, ok = r.Pending(8)
	assert.False(t, ok)

	_, err := d.Start(context.Background())
	require.ErrorIs(t, err, facility_errors.ErrStillHoldsBeds)
	_, err = d.ChooseDelegate(context.Background(), 9)
	require.Error(t, err) // second conflict, terminal

	_, ok = r.Pending(7)
	assert.False(t, ok, "terminal workflow is evicted")

	fresh := r.GetOrCreate(7, build)
	assert.NotSame(t, d, fresh, "terminal workflow is replaced")
}
