package gateway_http

import (
	"context"
	"fmt"
	"time"

	"github.com/plutoride/vendor-app/internal/pkg/apperr"
	httpclient "github.com/plutoride/vendor-app/internal/pkg/http"
	"github.com/plutoride/vendor-app/internal/pkg/models"
)

// UserClient is an HTTP client for the remote cab-user endpoints
type UserClient struct {
	client *httpclient.BearerClient
}

// NewUserClient creates a new user HTTP client
func NewUserClient(client *httpclient.BearerClient) *UserClient {
	return &UserClient{client: client}
}

// cabUserDoc is the remote user document. The server names fields
// inconsistently ("mobile" for phone, "RC" for the registration number);
// normalization to the canonical profile shape happens here and only here.
type cabUserDoc struct {
	ID             string        `json:"_id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Mobile         string        `json:"mobile"`
	DrivingLicense string        `json:"drivingLicense"`
	Vehicles       []cabVehicle  `json:"vehicles"`
	States         []string      `json:"states"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

type cabVehicle struct {
	VehicleName string `json:"vehicleName"`
	RC          string `json:"RC"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  *cabUserDoc `json:"user"`
}

type signupRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Mobile         string   `json:"mobile"`
	DrivingLicense string   `json:"drivingLicense"`
	RC             string   `json:"RC"`
	States         []string `json:"states"`
}

type signupResponse struct {
	Token string `json:"token"`
}

type updateUserRequest struct {
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Mobile         string       `json:"mobile"`
	DrivingLicense string       `json:"drivingLicense"`
	Vehicles       []cabVehicle `json:"vehicles"`
	States         []string     `json:"states"`
}

type updateUserResponse struct {
	Data struct {
		User cabUserDoc `json:"user"`
	} `json:"data"`
}

// Login calls the remote login endpoint. Any failure, including a missing
// token in an otherwise successful response, is an AuthenticationError.
func (g *UserClient) Login(ctx context.Context, creds models.Credentials) (string, *models.DriverProfile, error) {
	var resp loginResponse
	err := g.client.PostJSON(ctx, "/api/cabuser/login", "", loginRequest{
		Email:    creds.Email,
		Password: creds.Password,
	}, &resp)
	if err != nil {
		if apperr.IsAuthentication(err) {
			return "", nil, err
		}
		return "", nil, &apperr.AuthenticationError{Reason: "login rejected", Err: err}
	}

	if resp.Token == "" {
		return "", nil, apperr.NewAuthentication("login response carried no token")
	}

	var profile *models.DriverProfile
	if resp.User != nil {
		p := mapUserDoc(*resp.User)
		profile = &p
	}

	return resp.Token, profile, nil
}

// Signup calls the remote signup endpoint
func (g *UserClient) Signup(ctx context.Context, req models.SignupRequest) (string, error) {
	var resp signupResponse
	err := g.client.PostJSON(ctx, "/api/cabuser/signup", "", signupRequest{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Mobile:         req.Phone,
		DrivingLicense: req.DrivingLicense,
		RC:             req.RegistrationNumber,
		States:         req.States,
	}, &resp)
	if err != nil {
		if apperr.IsAuthentication(err) {
			return "", err
		}
		return "", &apperr.AuthenticationError{Reason: "signup rejected", Err: err}
	}

	if resp.Token == "" {
		return "", apperr.NewAuthentication("signup response carried no token")
	}

	return resp.Token, nil
}

// UpdateUser pushes a profile edit to the remote user-update endpoint and
// returns the server-merged profile.
func (g *UserClient) UpdateUser(ctx context.Context, token string, profile models.DriverProfile) (*models.DriverProfile, error) {
	endpoint := fmt.Sprintf("/api/cabuser/update/%s", profile.ID)

	vehicles := make([]cabVehicle, 0, len(profile.Vehicles))
	for _, v := range profile.Vehicles {
		vehicles = append(vehicles, cabVehicle{
			VehicleName: v.VehicleName,
			RC:          v.RegistrationNumber,
		})
	}

	var resp updateUserResponse
	err := g.client.PutJSON(ctx, endpoint, token, updateUserRequest{
		Name:           profile.Name,
		Email:          profile.Email,
		Mobile:         profile.Phone,
		DrivingLicense: profile.DrivingLicense,
		Vehicles:       vehicles,
		States:         profile.SelectedStates,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}

	merged := mapUserDoc(resp.Data.User)
	return &merged, nil
}

// mapUserDoc converts the remote user document to the canonical profile
// shape. A server-held profile passed registration validation, so it is
// considered complete.
func mapUserDoc(doc cabUserDoc) models.DriverProfile {
	vehicles := make([]models.Vehicle, 0, len(doc.Vehicles))
	for _, v := range doc.Vehicles {
		vehicles = append(vehicles, models.Vehicle{
			VehicleName:        v.VehicleName,
			RegistrationNumber: v.RC,
		})
	}

	states := doc.States
	if states == nil {
		states = []string{}
	}

	lastUpdated := doc.UpdatedAt
	if lastUpdated.IsZero() {
		lastUpdated = time.Now()
	}

	return models.DriverProfile{
		ID:              doc.ID,
		Name:            doc.Name,
		Email:           doc.Email,
		Phone:           doc.Mobile,
		DrivingLicense:  doc.DrivingLicense,
		Vehicles:        vehicles,
		SelectedStates:  states,
		ProfileComplete: true,
		LastUpdated:     lastUpdated,
	}
}
