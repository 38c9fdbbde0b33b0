package http

import (
	"net/http"

	"elite-paisa-backend/internal/adapter/middleware"
	"elite-paisa-backend/internal/usecase/loantype"

	"github.com/labstack/echo/v4"
)

type LoanTypeHandler struct{ uc *loantype.Usecase }

func NewLoanTypeHandler(uc *loantype.Usecase) *LoanTypeHandler { return &LoanTypeHandler{uc: uc} }

func (h *LoanTypeHandler) Create(c echo.Context) error {
	var req loantype.UpsertInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	lt, err := h.uc.Create(c.Request().Context(), middleware.Principal(c), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, map[string]any{"loanType": lt})
}

func (h *LoanTypeHandler) List(c echo.Context) error {
	in := loantype.ListInput{
		Category:    c.QueryParam("loanCategory"),
		Subcategory: c.QueryParam("loanSubcategory"),
		Status:      c.QueryParam("status"),
	}
	lts, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"count": len(lts), "loanTypes": lts})
}

func (h *LoanTypeHandler) Get(c echo.Context) error {
	lt, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"loanType": lt})
}

func (h *LoanTypeHandler) Update(c echo.Context) error {
	var req loantype.UpsertInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	lt, err := h.uc.Update(c.Request().Context(), middleware.Principal(c), c.Param("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"loanType": lt})
}

func (h *LoanTypeHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), middleware.Principal(c), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"message": "Loan type deleted"})
}
