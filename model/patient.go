package model

import "time"

// Patient is created on admission, tied to the bed it occupies. Discharge sets
// DischargedAt and frees the bed; the record itself is kept for consultation.
type Patient struct {
	ID           int        `json:"id"`
	FirstName    string     `json:"nombre"`
	PaternalName string     `json:"paterno"`
	MaternalName string     `json:"materno"`
	Phone        string     `json:"telefono"`
	AdmittedAt   *time.Time `json:"fechaingreso,omitempty"`
	DischargedAt *time.Time `json:"fechasalida,omitempty"`
	BedName      string     `json:"camaqueocupo,omitempty"`
}

// AdmitPatientRequest registers a patient into a free bed, under the admitting
// nurse's care.
type AdmitPatientRequest struct {
	FirstName    string `json:"nombre" binding:"required"`
	PaternalName string `json:"paterno" binding:"required"`
	MaternalName string `json:"materno" binding:"required"`
	Phone        string `json:"telefono" binding:"required"`
	BedID        int    `json:"camaId" binding:"required"`
	NurseID      int    `json:"enfermeraId" binding:"required"`
}

// DischargePatientRequest frees the bed held by the patient. The nurse keeps
// the bed assignment for the next patient; only occupancy is cleared.
type DischargePatientRequest struct {
	PatientID int `json:"pacienteId" binding:"required"`
}
