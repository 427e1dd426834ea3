// api/directory/floors.go
package directory

import (
	"context"
	"fmt"

	"github.com/hospicore/facility/api/model"
)

func (c *Client) ListFloors(ctx context.Context, sess model.Session) ([]model.Floor, error) {
	var floors []model.Floor
	resp, err := c.request(ctx, sess).
		SetResult(&floors).
		Get("/pisos/listar")
	if err := wrap(resp, err); err != nil {
		return nil, err
	}
	return floors, nil
}

// AddFloors registers count new floors on top of the current sequence. The
// backend answers with a confirmation message.
func (c *Client) AddFloors(ctx context.Context, sess model.Session, count int) (string, error) {
	resp, err := c.request(ctx, sess).
		SetBody(model.AddFloorsRequest{Count: count}).
		Post("/pisos/insertar")
	if err := wrap(resp, err); err != nil {
		return "", err
	}
	return extractMessage(resp.Body()), nil
}

// DeleteFloor removes an empty floor. A floor that still owns beds makes the
// backend answer 409, surfaced through the conflict taxonomy.
func (c *Client) DeleteFloor(ctx context.Context, sess model.Session, floorID int) (string, error) {
	resp, err := c.request(ctx, sess).
		Delete(fmt.Sprintf("/pisos/%d", floorID))
	if err := wrap(resp, err); err != nil {
		return "", err
	}
	return extractMessage(resp.Body()), nil
}
