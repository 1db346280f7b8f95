package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/plutoride/vendor-app/internal/pkg/apperr"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Code    int               `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// AppErrorResponse maps a typed application error to an HTTP response:
// validation errors become 400 with the field map, authentication errors 401,
// remote service failures 502, everything else 500.
func AppErrorResponse(c echo.Context, err error) error {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "validation failed",
			Code:    http.StatusBadRequest,
			Fields:  ve.Fields,
		})
	}

	if apperr.IsAuthentication(err) {
		return UnauthorizedResponse(c, err.Error())
	}

	var re *apperr.RemoteServiceError
	if errors.As(err, &re) {
		return ErrorResponseHandler(c, http.StatusBadGateway, re.Error())
	}

	return InternalServerErrorResponse(c, err.Error())
}
