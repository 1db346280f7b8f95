package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError is a client-side input failure. It is surfaced to the
// caller immediately and never results in a network call.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidation builds a single-field validation error
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Validation wraps a field-error map produced by a validator
func Validation(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// AuthenticationError covers login/signup rejection, malformed tokens and
// 401 responses from authenticated calls.
type AuthenticationError struct {
	Reason string
	Err    error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Reason, e.Err)
	}
	return "authentication failed: " + e.Reason
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// NewAuthentication builds an authentication error
func NewAuthentication(reason string) *AuthenticationError {
	return &AuthenticationError{Reason: reason}
}

// RemoteServiceError is any non-2xx response or transport failure from the
// remote booking service. Body carries the raw response text when available.
type RemoteServiceError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote service error: %v", e.Err)
	}
	return fmt.Sprintf("remote service error: status %d", e.StatusCode)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

// StorageError is a local persistence failure. Treated as non-fatal: logged,
// never surfaced to the user.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsAuthentication reports whether err is an AuthenticationError
func IsAuthentication(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}

// IsRemote reports whether err is a RemoteServiceError
func IsRemote(err error) bool {
	var re *RemoteServiceError
	return errors.As(err, &re)
}
