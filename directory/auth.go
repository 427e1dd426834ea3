// api/directory/auth.go
package directory

import (
	"context"

	"github.com/hospicore/facility/api/model"
)

// SignIn exchanges credentials for a Session. The backend mints and verifies
// the token; the gateway only carries it.
func (c *Client) SignIn(ctx context.Context, req model.SignInRequest) (*model.Session, error) {
	var sess model.Session
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&sess).
		Post("/api/auth/signin")
	if err := wrap(resp, err); err != nil {
		return nil, err
	}
	sess.Username = req.Username
	return &sess, nil
}
