package session

import (
	"context"

	"github.com/plutoride/vendor-app/internal/pkg/models"
)

// SessionUC defines the interface for session business logic operations
type SessionUC interface {
	Restore(ctx context.Context)
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
	Signup(ctx context.Context, req models.SignupRequest) (*models.Session, error)
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, updated models.DriverProfile) (*models.DriverProfile, error)

	Token() string
	Current() models.Session
}
