package model

// StaffRole distinguishes the two floor-bound staff kinds.
type StaffRole string

const (
	RoleNurse     StaffRole = "enfermera"
	RoleSecretary StaffRole = "secretaria"
)

// Staff is a nurse or secretary record. Deactivation is a soft-delete: Active
// flips to false and the record stays listable and reactivatable.
type Staff struct {
	ID             int       `json:"id"`
	FirstName      string    `json:"nombre"`
	PaternalName   string    `json:"paterno"`
	MaternalName   string    `json:"materno"`
	Email          string    `json:"correo"`
	Phone          string    `json:"telefono"`
	Username       string    `json:"username"`
	Active         bool      `json:"estatus"`
	Role           StaffRole `json:"rol,omitempty"`
	Floor          *Floor    `json:"piso,omitempty"`
}

// FloorID returns the assigned floor's id, or zero when unassigned.
func (s Staff) FloorID() int {
	if s.Floor == nil {
		return 0
	}
	return s.Floor.ID
}

// FullName joins the three name parts the way the screens display them.
func (s Staff) FullName() string {
	return s.FirstName + " " + s.PaternalName + " " + s.MaternalName
}

// CreateStaffRequest is the payload for registering a nurse or secretary.
// The password is filled in by the service when the system generates
// credentials for the new account.
type CreateStaffRequest struct {
	FirstName    string `json:"nombre" binding:"required"`
	PaternalName string `json:"paterno" binding:"required"`
	MaternalName string `json:"materno" binding:"required"`
	Email        string `json:"correo" binding:"required"`
	Phone        string `json:"telefono" binding:"required"`
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password,omitempty"`
	Floor        struct {
		ID int `json:"idPiso" binding:"required"`
	} `json:"pisoAsignado"`
}

// UpdateCredentialsRequest is the self-service username/password change.
type UpdateCredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// DelegateBedsRequest moves every bed assignment from one nurse to another.
type DelegateBedsRequest struct {
	FromNurseID int `json:"enfermeraActualId" binding:"required"`
	ToNurseID   int `json:"nuevaEnfermeraId" binding:"required"`
}

// ReassignFloorRequest moves a staff member to a different floor.
type ReassignFloorRequest struct {
	StaffID    int `json:"usuarioId" binding:"required"`
	NewFloorID int `json:"nuevoPisoId" binding:"required"`
}

// BedsDelegated is the event payload recording a completed delegation. The
// floor id locates the bed snapshot whose nurse column just changed.
type BedsDelegated struct {
	FromNurseID int
	ToNurseID   int
	FloorID     int
}
