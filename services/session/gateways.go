package session

import (
	"context"

	"github.com/plutoride/vendor-app/internal/pkg/models"
)

// SessionGW defines the remote user-endpoint operations
type SessionGW interface {
	// Login exchanges credentials for a bearer token and, when the server
	// includes one, the user document mapped to the canonical profile shape.
	Login(ctx context.Context, creds models.Credentials) (string, *models.DriverProfile, error)

	// Signup registers a new vendor and returns the issued bearer token.
	Signup(ctx context.Context, req models.SignupRequest) (string, error)

	// UpdateUser pushes a profile edit and returns the server-merged profile.
	UpdateUser(ctx context.Context, token string, profile models.DriverProfile) (*models.DriverProfile, error)
}
