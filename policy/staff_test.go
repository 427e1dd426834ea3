package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hospicore/facility/api/model"
	"github.com/hospicore/facility/api/policy"
)

func nurse(id, floorID int, active bool) model.Staff {
	return model.Staff{
		ID:     id,
		Role:   model.RoleNurse,
		Active: active,
		Floor:  &model.Floor{ID: floorID},
	}
}

func TestCanDeactivate(t *testing.T) {
	t.Run("sole active entry is denied", func(t *testing.T) {
		staff := []model.Staff{nurse(1, 3, true), nurse(2, 3, false), nurse(3, 3, false)}
		d := policy.CanDeactivate(staff[0], staff)
		assert.False(t, d.Allowed)
		assert.Equal(t, policy.ReasonLastActiveOnFloor, d.Reason)
	})

	t.Run("another active entry allows deactivation", func(t *testing.T) {
		staff := []model.Staff{nurse(1, 3, true), nurse(2, 3, true)}
		assert.True(t, policy.CanDeactivate(staff[0], staff).Allowed)
		assert.True(t, policy.CanDeactivate(staff[1], staff).Allowed)
	})

	t.Run("already inactive entries are always allowed", func(t *testing.T) {
		staff := []model.Staff{nurse(1, 3, false)}
		assert.True(t, policy.CanDeactivate(staff[0], staff).Allowed)
	})

	t.Run("deny iff unique active entry", func(t *testing.T) {
		// Property from the rule set: for every member of the floor list the
		// decision is a denial exactly when that member is the only active one.
		staff := []model.Staff{nurse(1, 5, true), nurse(2, 5, false), nurse(3, 5, true), nurse(4, 5, false)}
		activeCount := 0
		for _, s := range staff {
			if s.Active {
				activeCount++
			}
		}
		for _, s := range staff {
			d := policy.CanDeactivate(s, staff)
			wantDeny := s.Active && activeCount == 1
			assert.Equal(t, !wantDeny, d.Allowed, "staff %d", s.ID)
		}
	})
}

func TestCanReassign(t *testing.T) {
	n := nurse(1, 3, true)

	d := policy.CanReassign(n, 3)
	assert.False(t, d.Allowed)
	assert.Equal(t, policy.ReasonSameFloor, d.Reason)

	assert.True(t, policy.CanReassign(n, 4).Allowed)
}

func TestCanReassignSecretary(t *testing.T) {
	sec := func(id, floorID int) model.Staff {
		s := nurse(id, floorID, true)
		s.Role = model.RoleSecretary
		return s
	}

	t.Run("only secretary on floor cannot move", func(t *testing.T) {
		floor := []model.Staff{sec(1, 2)}
		d := policy.CanReassignSecretary(floor[0], floor, 5)
		assert.False(t, d.Allowed)
		assert.Equal(t, policy.ReasonOnlySecretary, d.Reason)
	})

	t.Run("another secretary on floor permits the move", func(t *testing.T) {
		floor := []model.Staff{sec(1, 2), sec(2, 2)}
		assert.True(t, policy.CanReassignSecretary(floor[0], floor, 5).Allowed)
	})

	t.Run("same floor beats the sole-secretary check", func(t *testing.T) {
		floor := []model.Staff{sec(1, 2)}
		d := policy.CanReassignSecretary(floor[0], floor, 2)
		assert.Equal(t, policy.ReasonSameFloor, d.Reason)
	})
}

func TestCanDelegate(t *testing.T) {
	from := nurse(1, 3, true)

	tests := []struct {
		name   string
		to     model.Staff
		reason string
	}{
		{"self", nurse(1, 3, true), policy.ReasonSelfDelegation},
		{"inactive target", nurse(2, 3, false), policy.ReasonDelegateInactive},
		{"other floor", nurse(2, 4, true), policy.ReasonDelegateOtherFloor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := policy.CanDelegate(from, tt.to)
			assert.False(t, d.Allowed)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}

	assert.True(t, policy.CanDelegate(from, nurse(2, 3, true)).Allowed)
}

func TestEligibleDelegates(t *testing.T) {
	from := nurse(1, 3, true)
	floor := []model.Staff{
		nurse(1, 3, true),  // self
		nurse(2, 3, true),  // eligible
		nurse(3, 3, false), // inactive
		nurse(4, 3, true),  // eligible
	}

	eligible := policy.EligibleDelegates(from, floor)
	assert.Len(t, eligible, 2)
	assert.Equal(t, 2, eligible[0].ID)
	assert.Equal(t, 4, eligible[1].ID)

	t.Run("empty when nobody qualifies", func(t *testing.T) {
		alone := []model.Staff{nurse(1, 3, true), nurse(3, 3, false)}
		assert.Empty(t, policy.EligibleDelegates(from, alone))
	})
}
