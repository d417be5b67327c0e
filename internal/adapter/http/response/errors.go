package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// failure writes an error envelope with the given status, code and message.
func failure(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, &Response{
		Success: false,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return failure(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody, nil)
}

// ValidationError writes a 400 Bad Request response with field-level details.
func ValidationError(c echo.Context, details map[string]string) error {
	return failure(c, http.StatusBadRequest, CodeValidationError, MsgValidationFailed, details)
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return failure(c, http.StatusBadRequest, CodeValidationError, message, nil)
}

// SessionNotFound writes a 404 Not Found response for missing or expired sessions.
func SessionNotFound(c echo.Context) error {
	return failure(c, http.StatusNotFound, CodeNotFound, MsgSessionNotFound, nil)
}

// StoreUnavailable writes a 503 Service Unavailable response.
func StoreUnavailable(c echo.Context) error {
	return failure(c, http.StatusServiceUnavailable, CodeServiceUnavailable, MsgStoreUnavailable, nil)
}

// ConfirmationFailed writes a 502 Bad Gateway response when the external
// booking endpoint rejects the snapshot.
func ConfirmationFailed(c echo.Context) error {
	return failure(c, http.StatusBadGateway, CodeConfirmationFailed, MsgConfirmationFailed, nil)
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return failure(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout, nil)
}

// TooManyRequests writes a 429 Too Many Requests response.
func TooManyRequests(c echo.Context) error {
	return failure(c, http.StatusTooManyRequests, CodeRateLimited, MsgTooManyRequests, nil)
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return failure(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError, nil)
}
