// api/policy/staff.go
package policy

import "github.com/hospicore/facility/api/model"

const (
	ReasonLastActiveOnFloor  = "no se puede desactivar al único personal activo del piso"
	ReasonSameFloor          = "ya asignada a ese piso"
	ReasonOnlySecretary      = "no puedes reasignar a la única secretaria del piso"
	ReasonSelfDelegation     = "una enfermera no puede delegarse camas a sí misma"
	ReasonDelegateInactive   = "la enfermera delegada debe estar activa"
	ReasonDelegateOtherFloor = "la enfermera delegada debe pertenecer al mismo piso"
)

// CanDeactivate decides whether a nurse or secretary may be soft-deleted.
// A floor must retain at least one active member of each staff kind, so the
// sole active entry on its floor is never deactivatable.
func CanDeactivate(person model.Staff, floorStaff []model.Staff) Decision {
	if !person.Active {
		// Already inactive; deactivating again is harmless.
		return Allow()
	}
	for _, other := range floorStaff {
		if other.ID != person.ID && other.Active {
			return Allow()
		}
	}
	return Deny(ReasonLastActiveOnFloor)
}

// CanReassign rejects a floor move that would be a no-op. The check is purely
// local: no backend call is spent on moving someone to their own floor.
func CanReassign(person model.Staff, newFloorID int) Decision {
	if person.FloorID() == newFloorID {
		return Deny(ReasonSameFloor)
	}
	return Allow()
}

// CanReassignSecretary additionally requires that the current floor keeps at
// least one other secretary after the move.
func CanReassignSecretary(sec model.Staff, floorSecretaries []model.Staff, newFloorID int) Decision {
	if d := CanReassign(sec, newFloorID); !d.Allowed {
		return d
	}
	for _, other := range floorSecretaries {
		if other.ID != sec.ID {
			return Allow()
		}
	}
	return Deny(ReasonOnlySecretary)
}

// CanDelegate validates a delegation target: an active nurse on the same
// floor as the delegating nurse, and not the delegating nurse herself.
func CanDelegate(from, to model.Staff) Decision {
	if from.ID == to.ID {
		return Deny(ReasonSelfDelegation)
	}
	if !to.Active {
		return Deny(ReasonDelegateInactive)
	}
	if from.FloorID() != to.FloorID() {
		return Deny(ReasonDelegateOtherFloor)
	}
	return Allow()
}

// EligibleDelegates lists the nurses on the floor that may receive another
// nurse's beds. An empty result means the delegate action is unavailable and
// the caller must disable it.
func EligibleDelegates(from model.Staff, floorNurses []model.Staff) []model.Staff {
	eligible := make([]model.Staff, 0, len(floorNurses))
	for _, n := range floorNurses {
		if CanDelegate(from, n).Allowed {
			eligible = append(eligible, n)
		}
	}
	return eligible
}
