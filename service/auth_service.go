// api/service/auth_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/hospicore/facility/api/directory"
	logger "github.com/hospicore/facility/api/logging"
	"github.com/hospicore/facility/api/model"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	SignIn(ctx context.Context, req model.SignInRequest) (*model.Session, error)
}

// AuthService exchanges credentials for a backend-minted session. The gateway
// never verifies tokens itself; a 401 from the backend invalidates the session.
type AuthService struct {
	api directory.API
}

var _ IAuthService = &AuthService{}

func NewAuthService(api directory.API) *AuthService {
	return &AuthService{api: api}
}

func (s *AuthService) SignIn(ctx context.Context, req model.SignInRequest) (*model.Session, error) {
	sess, err := s.api.SignIn(ctx, req)
	if err != nil {
		return nil, err
	}

	logger.Info("User signed in",
		zap.String("username", sess.Username),
		zap.String("role", sess.Role))
	return sess, nil
}
