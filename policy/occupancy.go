// api/policy/occupancy.go
package policy

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hospicore/facility/api/model"
)

// Denial reasons surfaced to the user, worded as the screens word them.
const (
	ReasonBedHoldsPatient = "cama ocupada por un paciente"
	ReasonBedHasNurse     = "cama asignada a una enfermera"
	ReasonBedIsInterior   = "no se puede eliminar una cama intermedia"
	ReasonBedBadLabel     = "etiqueta de cama no reconocida"
)

// CanDeleteBed decides whether a bed may be removed from its floor. A bed is
// deletable only when no patient occupies it, no nurse is assigned to it, and
// it sits at either end of the floor's numbered sequence, so the sequence
// never acquires a gap. Beds whose sequence label cannot be parsed are never
// deletable: deleting around an unparseable label could silently break the
// first/last computation for every other bed on the floor.
func CanDeleteBed(bed model.Bed, floorBeds []model.Bed) Decision {
	if bed.Occupied() || bed.PatientID != 0 {
		return Deny(ReasonBedHoldsPatient)
	}
	if bed.HasNurse() {
		return Deny(ReasonBedHasNurse)
	}

	seq, err := SequenceNumber(bed.Name)
	if err != nil {
		return Deny(ReasonBedBadLabel)
	}

	first, last := seq, seq
	for _, other := range floorBeds {
		n, err := SequenceNumber(other.Name)
		if err != nil {
			return Deny(ReasonBedBadLabel)
		}
		if n < first {
			first = n
		}
		if n > last {
			last = n
		}
	}

	if seq != first && seq != last {
		return Deny(ReasonBedIsInterior)
	}
	return Allow()
}

// SequenceNumber extracts the position of a bed within its floor from labels
// shaped "<floorPrefix>-<n>", e.g. "Piso1-3" -> 3.
func SequenceNumber(label string) (int, error) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed bed label %q", label)
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("malformed bed label %q: %w", label, err)
	}
	return n, nil
}

// SortBySequence orders a floor's beds by sequence number. Beds with
// unparseable labels keep their relative order at the end of the slice.
func SortBySequence(beds []model.Bed) []model.Bed {
	sorted := make([]model.Bed, len(beds))
	copy(sorted, beds)
	sort.SliceStable(sorted, func(i, j int) bool {
		ni, erri := SequenceNumber(sorted[i].Name)
		nj, errj := SequenceNumber(sorted[j].Name)
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		return ni < nj
	})
	return sorted
}
