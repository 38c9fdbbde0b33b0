package http

import (
	"net/http"

	"elite-paisa-backend/internal/domain/apperr"

	"github.com/labstack/echo/v4"
)

// statusFor maps error kinds to HTTP codes. Conflict deliberately maps to
// 400, not 409: existing clients depend on duplicate-email signups coming
// back as a plain bad request.
func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindConflict:
		return http.StatusBadRequest
	case apperr.KindAuthentication:
		return http.StatusUnauthorized
	case apperr.KindAuthorization:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func fail(c echo.Context, err error) error {
	ae := apperr.As(err)
	body := map[string]any{
		"success": false,
		"message": ae.Message,
	}
	if len(ae.Fields) > 0 {
		body["errors"] = ae.Fields
	}
	return c.JSON(statusFor(ae.Kind), body)
}

func ok(c echo.Context, code int, kv map[string]any) error {
	body := map[string]any{"success": true}
	for k, v := range kv {
		body[k] = v
	}
	return c.JSON(code, body)
}

func badRequest(c echo.Context, msg string, fields ...apperr.FieldError) error {
	return fail(c, apperr.Validation(msg, fields...))
}
