package http

import (
	"net/http"
	"strconv"

	"elite-paisa-backend/internal/adapter/middleware"
	"elite-paisa-backend/internal/usecase/dashboard"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct{ uc *dashboard.Usecase }

func NewDashboardHandler(uc *dashboard.Usecase) *DashboardHandler { return &DashboardHandler{uc: uc} }

func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"stats": stats})
}

func (h *DashboardHandler) Recent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	apps, err := h.uc.Recent(c.Request().Context(), middleware.Principal(c), limit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"count": len(apps), "loanApplications": apps})
}
