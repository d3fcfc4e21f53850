package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ledger/internal/pkg/apperror"
	"github.com/piresc/ledger/internal/pkg/constants"
	"github.com/piresc/ledger/internal/pkg/logger"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response. Fails lists validation
// messages per input field.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Error   string              `json:"error"`
	Code    int                 `json:"code,omitempty"`
	Fails   map[string][]string `json:"fails,omitempty"`
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

// ValidationErrorResponse sends a 422 with per-field messages
func ValidationErrorResponse(c echo.Context, fails map[string][]string) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Success: false,
		Error:   constants.MsgValidationFailed,
		Code:    http.StatusUnprocessableEntity,
		Fails:   fails,
	})
}

func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// AppErrorResponse maps an error from the usecase layer to its HTTP response.
// Internal errors are logged and answered with a generic message.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperror.KindInternal {
		logger.Error("Request failed",
			logger.String("path", c.Path()),
			logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			logger.Err(err))
		return ErrorResponseHandler(c, http.StatusInternalServerError, constants.MsgInternalError)
	}

	switch appErr.Kind {
	case apperror.KindValidation:
		field := appErr.Field
		if field == "" {
			field = "request"
		}
		return ValidationErrorResponse(c, map[string][]string{field: {appErr.Message}})
	case apperror.KindNotFound:
		return ErrorResponseHandler(c, http.StatusNotFound, appErr.Message)
	case apperror.KindForbidden:
		return ErrorResponseHandler(c, http.StatusForbidden, appErr.Message)
	case apperror.KindConflict:
		return ErrorResponseHandler(c, http.StatusConflict, appErr.Message)
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, constants.MsgInternalError)
}
