package model

// Floor is an organizational unit owning a contiguous numbered sequence of beds.
// Field names follow the hospital backend's wire format.
type Floor struct {
	ID     int    `json:"idPiso"`
	Number int    `json:"numeroPiso,omitempty"`
	Name   string `json:"nombre"`
}

// BedState is the occupancy state reported by the backend.
type BedState string

const (
	BedOccupied BedState = "Ocupada"
	BedFree     BedState = "Desocupada"
)

// Bed is the atomic occupancy unit, optionally linked to one patient and one nurse.
// The backend reports "Sin Paciente"/"Sin Enfermera" placeholders for empty links;
// those are normalized away by the directory client.
type Bed struct {
	ID          int      `json:"idCama"`
	FloorID     int      `json:"idPiso,omitempty"`
	Name        string   `json:"nombre"` // sequence label, e.g. "Piso1-3"
	State       BedState `json:"estadoCama"`
	PatientID   int      `json:"idPaciente,omitempty"`
	PatientName string   `json:"nombrePaciente,omitempty"`
	NurseName   string   `json:"nombreEnfermera,omitempty"`
}

// Occupied reports whether a patient currently holds the bed.
func (b Bed) Occupied() bool {
	return b.State == BedOccupied
}

// HasNurse reports whether the bed is assigned to a nurse.
func (b Bed) HasNurse() bool {
	return b.NurseName != ""
}

// FloorsChanged is the event payload for floor inventory changes. ChangeType
// is "created" or "deleted".
type FloorsChanged struct {
	ChangeType string
	Count      int
}

// AddFloorsRequest inserts a batch of floors at the top of the sequence.
type AddFloorsRequest struct {
	Count int `json:"cantidadPisos" binding:"required,gte=1"`
}

// AddBedsRequest appends a batch of beds to one floor's sequence.
type AddBedsRequest struct {
	FloorID int `json:"idPiso" binding:"required"`
	Count   int `json:"cantidadCamas" binding:"required,gte=1"`
}

// BedAssignment is the weak relation between a nurse and a bed.
type BedAssignment struct {
	NurseID  int    `json:"idEnfermera"`
	BedID    int    `json:"idCama"`
	BedName  string `json:"nombreCama,omitempty"`
	FloorID  int    `json:"idPiso,omitempty"`
	BedState string `json:"estadoCama,omitempty"`
}

// AssignBedsRequest bulk-assigns free beds to one nurse.
type AssignBedsRequest struct {
	NurseID int   `json:"enfermeraId" binding:"required"`
	BedIDs  []int `json:"camasIds" binding:"required,min=1"`
}
