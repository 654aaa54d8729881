package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response. Flag carries a machine-readable
// marker for conditions clients branch on (UserExists, UserNameExists, ...).
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Flag    string      `json:"flag,omitempty"`
	Code    int         `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
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

// ErrorResponseWithFlag sends an error response with a machine-readable flag
func ErrorResponseWithFlag(c echo.Context, statusCode int, errorMessage, flag string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Flag:    flag,
		Code:    statusCode,
	})
}

// ValidationErrorResponse sends a 400 response with per-field details
func ValidationErrorResponse(c echo.Context, details interface{}) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   "Validation failed",
		Code:    http.StatusBadRequest,
		Details: details,
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

// UnauthorizedResponseWithFlag sends a 401 response with a flag
func UnauthorizedResponseWithFlag(c echo.Context, errorMessage, flag string) error {
	return ErrorResponseWithFlag(c, http.StatusUnauthorized, errorMessage, flag)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}
