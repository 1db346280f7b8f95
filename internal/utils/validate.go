package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/plutoride/vendor-app/internal/pkg/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// ValidateProfile checks a driver profile for completeness. It returns a map
// of field name to error message; an empty map means the profile is valid.
// Pure function, performs no I/O.
func ValidateProfile(p models.DriverProfile) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		errs["name"] = "name is required"
	}
	if !emailPattern.MatchString(p.Email) {
		errs["email"] = "valid email is required"
	}
	if !phonePattern.MatchString(p.Phone) {
		errs["phone"] = "10-digit phone number is required"
	}
	if strings.TrimSpace(p.DrivingLicense) == "" {
		errs["drivingLicense"] = "driving license is required"
	}

	hasValidVehicle := false
	for _, v := range p.Vehicles {
		if strings.TrimSpace(v.VehicleName) != "" && strings.TrimSpace(v.RegistrationNumber) != "" {
			hasValidVehicle = true
			break
		}
	}
	if !hasValidVehicle {
		errs["vehicles"] = "at least one vehicle with a registration number is required"
	}

	if len(p.SelectedStates) == 0 {
		errs["states"] = "at least one state is required"
	}

	return errs
}

// ValidateRejection checks a rejection submission. The reason is mandatory;
// the bid amount, when given, must parse as a non-negative number.
// Pure function, performs no I/O.
func ValidateRejection(r models.RejectionSubmission) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Reason) == "" {
		errs["reason"] = "reason required"
	}

	if r.BidAmount != "" {
		amount, err := strconv.ParseFloat(r.BidAmount, 64)
		if err != nil || amount < 0 {
			errs["bidAmount"] = "invalid bid"
		}
	}

	return errs
}

// ParseBidAmount converts the raw bid text to its numeric value. An empty
// bid means no counter-offer and maps to zero, matching the remote payload
// contract. Call ValidateRejection first; malformed input parses as zero.
func ParseBidAmount(raw string) float64 {
	if raw == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount < 0 {
		return 0
	}
	return amount
}

// ValidateSignup checks the signup form input
func ValidateSignup(req models.SignupRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "name is required"
	}
	if !emailPattern.MatchString(req.Email) {
		errs["email"] = "valid email is required"
	}
	if len(req.Password) < 6 {
		errs["password"] = "password of at least 6 characters is required"
	}
	if !phonePattern.MatchString(req.Phone) {
		errs["phone"] = "10-digit phone number is required"
	}
	if strings.TrimSpace(req.DrivingLicense) == "" {
		errs["drivingLicense"] = "driving license is required"
	}
	if strings.TrimSpace(req.RegistrationNumber) == "" {
		errs["registrationNumber"] = "vehicle registration number is required"
	}
	if len(req.States) == 0 {
		errs["states"] = "at least one state is required"
	}

	return errs
}
