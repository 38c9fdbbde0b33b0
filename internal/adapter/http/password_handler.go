package http

import (
	"net/http"

	"elite-paisa-backend/internal/usecase/password"

	"github.com/labstack/echo/v4"
)

type PasswordHandler struct{ uc *password.Usecase }

func NewPasswordHandler(uc *password.Usecase) *PasswordHandler { return &PasswordHandler{uc: uc} }

type forgotReq struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *PasswordHandler) Forgot(c echo.Context) error {
	var req forgotReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Invalid request", ToFieldErrors(err)...)
	}
	if err := h.uc.Forgot(c.Request().Context(), req.Email); err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"message": "OTP sent to your email"})
}

type resetReq struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

func (h *PasswordHandler) Reset(c echo.Context) error {
	var req resetReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Invalid request", ToFieldErrors(err)...)
	}
	if err := h.uc.Reset(c.Request().Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"message": "Password has been reset"})
}
