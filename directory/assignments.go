// api/directory/assignments.go
package directory

import (
	"context"

	"github.com/hospicore/facility/api/model"
)

func (c *Client) ListAssignments(ctx context.Context, sess model.Session) ([]model.BedAssignment, error) {
	var assignments []model.BedAssignment
	resp, err := c.request(ctx, sess).
		SetResult(&assignments).
		Get("/asignaciones/listar")
	if err := wrap(resp, err); err != nil {
		return nil, err
	}
	return assignments, nil
}

// AssignBeds hands a batch of free beds to one nurse.
func (c *Client) AssignBeds(ctx context.Context, sess model.Session, req model.AssignBedsRequest) error {
	resp, err := c.request(ctx, sess).
		SetBody(req).
		Post("/asignaciones/asignar-multiples")
	return wrap(resp, err)
}
