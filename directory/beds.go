// api/directory/beds.go
package directory

import (
	"context"
	"fmt"

	"github.com/hospicore/facility/api/model"
)

// Placeholder strings the backend uses for empty bed links.
const (
	noPatientPlaceholder = "Sin Paciente"
	noNursePlaceholder   = "Sin Enfermera"
)

// ListFloorBeds fetches one floor's beds and normalizes the backend's
// placeholder names away, so an empty link is an empty field.
func (c *Client) ListFloorBeds(ctx context.Context, sess model.Session, floorID int) ([]model.Bed, error) {
	var beds []model.Bed
	resp, err := c.request(ctx, sess).
		SetResult(&beds).
		Get(fmt.Sprintf("/camas/piso/%d", floorID))
	if err := wrap(resp, err); err != nil {
		return nil, err
	}

	for i := range beds {
		beds[i].FloorID = floorID
		if beds[i].PatientName == noPatientPlaceholder {
			beds[i].PatientName = ""
		}
		if beds[i].NurseName == noNursePlaceholder {
			beds[i].NurseName = ""
		}
	}
	return beds, nil
}

func (c *Client) AddBeds(ctx context.Context, sess model.Session, floorID, count int) (string, error) {
	resp, err := c.request(ctx, sess).
		SetBody(model.AddBedsRequest{FloorID: floorID, Count: count}).
		Post("/camas/insertar")
	if err := wrap(resp, err); err != nil {
		return "", err
	}
	return extractMessage(resp.Body()), nil
}

// DeleteBed removes one bed. The backend re-validates occupancy and sequence
// position on its side; the local policy check is advisory.
func (c *Client) DeleteBed(ctx context.Context, sess model.Session, bedID int) (string, error) {
	resp, err := c.request(ctx, sess).
		Delete(fmt.Sprintf("/camas/eliminar/%d", bedID))
	if err := wrap(resp, err); err != nil {
		return "", err
	}
	return extractMessage(resp.Body()), nil
}
