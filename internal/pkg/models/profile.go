package models

import (
	"time"
)

// ProfileSchemaVersion is bumped whenever the locally persisted profile
// document changes shape. Documents with a different version are discarded
// on restore rather than migrated.
const ProfileSchemaVersion = 1

// Vehicle is the canonical vehicle shape. The remote service names the
// registration number "RC"; that renaming happens only at the gateway
// serialization boundary.
type Vehicle struct {
	VehicleName        string `json:"vehicleName"`
	RegistrationNumber string `json:"registrationNumber"`
}

// DriverProfile is the vendor/driver registration record
type DriverProfile struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	DrivingLicense  string    `json:"drivingLicense"`
	Vehicles        []Vehicle `json:"vehicles"`
	SelectedStates  []string  `json:"selectedStates"`
	ProfileComplete bool      `json:"profileComplete"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// StoredProfile is the envelope persisted to the local profile store
type StoredProfile struct {
	SchemaVersion int           `json:"schemaVersion"`
	Profile       DriverProfile `json:"profile"`
}

// Credentials is the login request input
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the signup form input
type SignupRequest struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Password           string   `json:"password"`
	Phone              string   `json:"phone"`
	DrivingLicense     string   `json:"drivingLicense"`
	RegistrationNumber string   `json:"registrationNumber"`
	States             []string `json:"states"`
}

// Session is the process-wide authentication state. Profile is only
// authoritative when Profile.ProfileComplete is true.
type Session struct {
	Token     string         `json:"token"`
	Profile   *DriverProfile `json:"profile,omitempty"`
	IsLoading bool           `json:"is_loading"`
}

// Authenticated reports whether the session holds a bearer token
func (s Session) Authenticated() bool {
	return s.Token != ""
}
