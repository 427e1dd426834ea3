// api/directory/patients.go
package directory

import (
	"context"

	"github.com/hospicore/facility/api/model"
)

// AdmitPatient registers a patient into a bed. The bed flips to occupied on
// the backend; a bed taken in the meantime comes back as a conflict and no
// local state is touched.
func (c *Client) AdmitPatient(ctx context.Context, sess model.Session, req model.AdmitPatientRequest) error {
	resp, err := c.request(ctx, sess).
		SetBody(req).
		Post("/pacientes/registrar")
	return wrap(resp, err)
}

// DischargePatient frees the patient's bed. The nurse assignment on the bed
// is left alone: the nurse keeps the bed for the next patient.
func (c *Client) DischargePatient(ctx context.Context, sess model.Session, patientID int) error {
	resp, err := c.request(ctx, sess).
		SetBody(model.DischargePatientRequest{PatientID: patientID}).
		Post("/pacientes/desocupar-cama")
	return wrap(resp, err)
}

func (c *Client) ListPatients(ctx context.Context, sess model.Session) ([]model.Patient, error) {
	var patients []model.Patient
	resp, err := c.request(ctx, sess).
		SetResult(&patients).
		Get("/pacientes/listar")
	if err := wrap(resp, err); err != nil {
		return nil, err
	}
	return patients, nil
}
