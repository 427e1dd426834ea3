// api/directory/staff.go
package directory

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hospicore/facility/api/model"
)

func (c *Client) ListNurses(ctx context.Context, sess model.Session) ([]model.Staff, error) {
	return c.listStaff(ctx, sess, "/api/usuarios/persona/enfermeras", model.RoleNurse)
}

func (c *Client) ListFloorNurses(ctx context.Context, sess model.Session, floorID int) ([]model.Staff, error) {
	path := fmt.Sprintf("/api/usuarios/persona/enfermeras/piso/%d", floorID)
	return c.listStaff(ctx, sess, path, model.RoleNurse)
}

func (c *Client) ListSecretaries(ctx context.Context, sess model.Session) ([]model.Staff, error) {
	return c.listStaff(ctx, sess, "/api/usuarios/persona/secretarias", model.RoleSecretary)
}

func (c *Client) ListFloorSecretaries(ctx context.Context, sess model.Session, floorID int) ([]model.Staff, error) {
	path := fmt.Sprintf("/api/usuarios/persona/secretarias/piso/%d", floorID)
	return c.listStaff(ctx, sess, path, model.RoleSecretary)
}

func (c *Client) listStaff(ctx context.Context, sess model.Session, path string, role model.StaffRole) ([]model.Staff, error) {
	var staff []model.Staff
	resp, err := c.request(ctx, sess).
		SetResult(&staff).
		Get(path)
	if err := wrap(resp, err); err != nil {
		return nil, err
	}
	for i := range staff {
		staff[i].Role = role
	}
	return staff, nil
}

// GetSecretary fetches one secretary record; the screens use it to pin a
// signed-in secretary to her own floor.
func (c *Client) GetSecretary(ctx context.Context, sess model.Session, id int) (*model.Staff, error) {
	var sec model.Staff
	resp, err := c.request(ctx, sess).
		SetResult(&sec).
		Get(fmt.Sprintf("/api/usuarios/persona/secretarias/%d", id))
	if err := wrap(resp, err); err != nil {
		return nil, err
	}
	sec.Role = model.RoleSecretary
	return &sec, nil
}

func (c *Client) CreateNurse(ctx context.Context, sess model.Session, req model.CreateStaffRequest) error {
	resp, err := c.request(ctx, sess).
		SetBody(req).
		Post("/api/usuarios/persona/enfermera")
	return wrap(resp, err)
}

func (c *Client) UpdateNurse(ctx context.Context, sess model.Session, id int, req model.CreateStaffRequest) error {
	resp, err := c.request(ctx, sess).
		SetBody(req).
		Put(fmt.Sprintf("/api/usuarios/persona/enfermera/%d", id))
	return wrap(resp, err)
}

// DeactivateNurse soft-deletes the nurse. A nurse still holding bed
// assignments makes the backend answer with a conflict; the staff service
// owns the delegate-then-retry workflow that resolves it.
func (c *Client) DeactivateNurse(ctx context.Context, sess model.Session, id int) error {
	resp, err := c.request(ctx, sess).
		Delete(fmt.Sprintf("/api/usuarios/persona/eliminar/enfermera/%d", id))
	return wrap(resp, err)
}

func (c *Client) CreateSecretary(ctx context.Context, sess model.Session, req model.CreateStaffRequest) error {
	resp, err := c.request(ctx, sess).
		SetBody(req).
		Post("/api/usuarios/secretarias")
	return wrap(resp, err)
}

func (c *Client) UpdateSecretary(ctx context.Context, sess model.Session, id int, req model.CreateStaffRequest) error {
	resp, err := c.request(ctx, sess).
		SetBody(req).
		Put(fmt.Sprintf("/api/usuarios/persona/secretaria/%d", id))
	return wrap(resp, err)
}

func (c *Client) DeactivateSecretary(ctx context.Context, sess model.Session, id int) error {
	resp, err := c.request(ctx, sess).
		Delete(fmt.Sprintf("/api/usuarios/persona/eliminar/secretaria/%d", id))
	return wrap(resp, err)
}

// ReactivateStaff reverses a soft-delete for either staff kind.
func (c *Client) ReactivateStaff(ctx context.Context, sess model.Session, id int) error {
	resp, err := c.request(ctx, sess).
		Put(fmt.Sprintf("/api/usuarios/persona/activar/%d", id))
	return wrap(resp, err)
}

func (c *Client) UpdateCredentials(ctx context.Context, sess model.Session, id int, req model.UpdateCredentialsRequest) error {
	resp, err := c.request(ctx, sess).
		SetBody(req).
		Put(fmt.Sprintf("/api/usuarios/persona/info-personal/%d", id))
	return wrap(resp, err)
}

// DelegateBeds bulk-moves every bed assignment from one nurse to another.
// The backend treats a nurse with nothing left to delegate as a success, so
// retried delegations are no-ops.
func (c *Client) DelegateBeds(ctx context.Context, sess model.Session, fromNurseID, toNurseID int) (string, error) {
	resp, err := c.request(ctx, sess).
		SetQueryParam("enfermeraActualId", strconv.Itoa(fromNurseID)).
		SetQueryParam("nuevaEnfermeraId", strconv.Itoa(toNurseID)).
		Put("/api/usuarios/persona/delegar-camas")
	if err := wrap(resp, err); err != nil {
		return "", err
	}
	return extractMessage(resp.Body()), nil
}

func (c *Client) ReassignFloor(ctx context.Context, sess model.Session, staffID, newFloorID int) (string, error) {
	resp, err := c.request(ctx, sess).
		SetQueryParam("usuarioId", strconv.Itoa(staffID)).
		SetQueryParam("nuevoPisoId", strconv.Itoa(newFloorID)).
		Put("/api/usuarios/persona/reasignar-usuario")
	if err := wrap(resp, err); err != nil {
		return "", err
	}
	return extractMessage(resp.Body()), nil
}
