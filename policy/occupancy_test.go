package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hospicore/facility/api/model"
	"github.com/hospicore/facility/api/policy"
)

func floorBeds(names ...string) []model.Bed {
	beds := make([]model.Bed, len(names))
	for i, n := range names {
		beds[i] = model.Bed{ID: i + 1, Name: n, State: model.BedFree}
	}
	return beds
}

func TestCanDeleteBed_SequencePosition(t *testing.T) {
	beds := floorBeds("Piso1-1", "Piso1-2", "Piso1-3", "Piso1-4")

	t.Run("first bed is deletable", func(t *testing.T) {
		d := policy.CanDeleteBed(beds[0], beds)
		assert.True(t, d.Allowed)
	})

	t.Run("last bed is deletable", func(t *testing.T) {
		d := policy.CanDeleteBed(beds[3], beds)
		assert.True(t, d.Allowed)
	})

	t.Run("every interior bed is denied", func(t *testing.T) {
		for _, bed := range beds[1:3] {
			d := policy.CanDeleteBed(bed, beds)
			assert.False(t, d.Allowed, "bed %s", bed.Name)
			assert.Equal(t, policy.ReasonBedIsInterior, d.Reason)
		}
	})

	t.Run("order of the floor slice does not matter", func(t *testing.T) {
		shuffled := []model.Bed{beds[2], beds[0], beds[3], beds[1]}
		d := policy.CanDeleteBed(beds[1], shuffled)
		assert.False(t, d.Allowed)
	})

	t.Run("single bed on floor is both first and last", func(t *testing.T) {
		only := floorBeds("Piso7-1")
		d := policy.CanDeleteBed(only[0], only)
		assert.True(t, d.Allowed)
	})
}

func TestCanDeleteBed_Occupancy(t *testing.T) {
	beds := floorBeds("Piso1-1", "Piso1-2", "Piso1-3")

	t.Run("occupied by patient is denied regardless of position", func(t *testing.T) {
		occupied := beds[0]
		occupied.State = model.BedOccupied
		occupied.PatientID = 42
		occupied.PatientName = "Juan Perez Lopez"

		d := policy.CanDeleteBed(occupied, beds)
		assert.False(t, d.Allowed)
		assert.Equal(t, policy.ReasonBedHoldsPatient, d.Reason)
	})

	t.Run("assigned to nurse is denied regardless of position", func(t *testing.T) {
		assigned := beds[2]
		assigned.NurseName = "Maria Gomez"

		d := policy.CanDeleteBed(assigned, beds)
		assert.False(t, d.Allowed)
		assert.Equal(t, policy.ReasonBedHasNurse, d.Reason)
	})

	t.Run("patient check wins over nurse check", func(t *testing.T) {
		both := beds[1]
		both.State = model.BedOccupied
		both.NurseName = "Maria Gomez"

		d := policy.CanDeleteBed(both, beds)
		assert.Equal(t, policy.ReasonBedHoldsPatient, d.Reason)
	})
}

func TestCanDeleteBed_MalformedLabels(t *testing.T) {
	t.Run("unparseable own label is denied", func(t *testing.T) {
		beds := floorBeds("Piso1-1", "Piso1-2")
		bad := model.Bed{ID: 9, Name: "CamaExtra", State: model.BedFree}

		d := policy.CanDeleteBed(bad, beds)
		assert.False(t, d.Allowed)
		assert.Equal(t, policy.ReasonBedBadLabel, d.Reason)
	})

	t.Run("unparseable sibling label blocks deletion", func(t *testing.T) {
		beds := floorBeds("Piso1-1", "Piso1-2")
		beds = append(beds, model.Bed{ID: 9, Name: "Piso1-x", State: model.BedFree})

		d := policy.CanDeleteBed(beds[0], beds)
		assert.False(t, d.Allowed)
		assert.Equal(t, policy.ReasonBedBadLabel, d.Reason)
	})
}

// Mirrors the screen flow: free first and last beds go, the occupied middle
// one stays, and once the ends are gone the floor can be emptied.
func TestCanDeleteBed_FloorDrainScenario(t *testing.T) {
	beds := floorBeds("P1-1", "P1-2", "P1-3")
	beds[1].State = model.BedOccupied
	beds[1].PatientID = 7

	assert.True(t, policy.CanDeleteBed(beds[0], beds).Allowed, "P1-1 is first and free")
	assert.False(t, policy.CanDeleteBed(beds[1], beds).Allowed, "P1-2 is occupied")
	assert.True(t, policy.CanDeleteBed(beds[2], beds).Allowed, "P1-3 is last and free")

	// After both ends are deleted only the middle remains; once discharged it
	// is first and last at the same time.
	remaining := []model.Bed{beds[1]}
	remaining[0].State = model.BedFree
	remaining[0].PatientID = 0
	assert.True(t, policy.CanDeleteBed(remaining[0], remaining).Allowed)
}

func TestSequenceNumber(t *testing.T) {
	tests := []struct {
		label   string
		want    int
		wantErr bool
	}{
		{"Piso1-3", 3, false},
		{"P1-1", 1, false},
		{"Piso10-25", 25, false},
		{"Piso1- 4", 4, false},
		{"Piso1", 0, true},
		{"Piso1-3-4", 0, true},
		{"Piso1-abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		n, err := policy.SequenceNumber(tt.label)
		if tt.wantErr {
			assert.Error(t, err, tt.label)
		} else {
			assert.NoError(t, err, tt.label)
			assert.Equal(t, tt.want, n, tt.label)
		}
	}
}

func TestSortBySequence(t *testing.T) {
	beds := floorBeds("Piso2-3", "Piso2-1", "Piso2-2")
	sorted := policy.SortBySequence(beds)

	assert.Equal(t, "Piso2-1", sorted[0].Name)
	assert.Equal(t, "Piso2-2", sorted[1].Name)
	assert.Equal(t, "Piso2-3", sorted[2].Name)
	// Input slice untouched.
	assert.Equal(t, "Piso2-3", beds[0].Name)
}
