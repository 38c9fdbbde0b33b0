package http

import (
	"net/http"

	"elite-paisa-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type signupReq struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	PhoneNo  string `json:"phoneNo" validate:"required,phone10"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Invalid signup data", ToFieldErrors(err)...)
	}
	res, err := h.uc.Register(c.Request().Context(), auth.RegisterInput(req))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, map[string]any{"token": res.Token, "user": res.User})
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Invalid login data", ToFieldErrors(err)...)
	}
	res, err := h.uc.Login(c.Request().Context(), auth.LoginInput(req))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"token": res.Token, "user": res.User})
}
