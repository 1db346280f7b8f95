package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plutoride/vendor-app/internal/pkg/jwt"
	"github.com/plutoride/vendor-app/internal/pkg/logger"
	"github.com/plutoride/vendor-app/internal/pkg/models"
	"github.com/plutoride/vendor-app/internal/utils"
	"github.com/plutoride/vendor-app/services/session"
)

// SessionHandler handles HTTP requests for login, signup and profile
// operations
type SessionHandler struct {
	sessionUC session.SessionUC
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionUC session.SessionUC) *SessionHandler {
	return &SessionHandler{sessionUC: sessionUC}
}

// RegisterRoutes registers the session API routes. protected carries the
// session-required middleware.
func (h *SessionHandler) RegisterRoutes(e *echo.Echo, protected *echo.Group) {
	e.POST("/auth/login", h.Login)
	e.POST("/auth/signup", h.Signup)
	e.POST("/auth/logout", h.Logout)
	e.GET("/session", h.GetSession)

	protected.GET("/profile", h.GetProfile)
	protected.PUT("/profile", h.UpdateProfile)
}

// Login handles credential submission
func (h *SessionHandler) Login(c echo.Context) error {
	var creds models.Credentials
	if err := c.Bind(&creds); err != nil {
		logger.Warn("Invalid request payload for login", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	sess, err := h.sessionUC.Login(c.Request().Context(), creds)
	if err != nil {
		logger.Warn("Login failed", logger.String("email", creds.Email), logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in", sess)
}

// Signup handles vendor registration
func (h *SessionHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for signup", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	sess, err := h.sessionUC.Signup(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created", sess)
}

// Logout clears the session
func (h *SessionHandler) Logout(c echo.Context) error {
	h.sessionUC.Logout(c.Request().Context())
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// GetSession returns the current session state. Open route: the logged-out
// state is a valid answer.
func (h *SessionHandler) GetSession(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.sessionUC.Current())
}

// GetProfile returns the locally held driver profile
func (h *SessionHandler) GetProfile(c echo.Context) error {
	sess := h.sessionUC.Current()
	if sess.Profile == nil {
		return utils.ErrorResponseHandler(c, http.StatusNotFound, "no profile held")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", sess.Profile)
}

// UpdateProfile pushes a profile edit to the remote service. When the
// submitted profile omits its ID, it is recovered from the bearer token.
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	var profile models.DriverProfile
	if err := c.Bind(&profile); err != nil {
		logger.Warn("Invalid request payload for profile update", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if profile.ID == "" {
		if id, err := jwt.ProfileID(h.sessionUC.Token()); err == nil {
			profile.ID = id
		}
	}

	updated, err := h.sessionUC.UpdateProfile(c.Request().Context(), profile)
	if err != nil {
		logger.Warn("Profile update failed", logger.String("profile_id", profile.ID), logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", updated)
}
