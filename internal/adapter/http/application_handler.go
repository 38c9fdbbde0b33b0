package http

import (
	"io"
	"net/http"

	"elite-paisa-backend/internal/adapter/middleware"
	"elite-paisa-backend/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

// maxDocumentSize caps uploaded document blobs at 10 MiB.
const maxDocumentSize = 10 << 20

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) Apply(c echo.Context) error {
	var req application.ApplyInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	d, err := h.uc.Apply(c.Request().Context(), middleware.Principal(c), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, map[string]any{"loanApplication": d})
}

func listInput(c echo.Context) application.ListInput {
	return application.ListInput{
		Status:          c.QueryParam("status"),
		LoanTypeID:      c.QueryParam("loanType"),
		LoanSubcategory: c.QueryParam("loanSubcategory"),
	}
}

func (h *ApplicationHandler) ListMine(c echo.Context) error {
	apps, err := h.uc.ListMine(c.Request().Context(), middleware.Principal(c), listInput(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"count": len(apps), "loanApplications": apps})
}

func (h *ApplicationHandler) ListAll(c echo.Context) error {
	apps, err := h.uc.ListAll(c.Request().Context(), middleware.Principal(c), listInput(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"count": len(apps), "loanApplications": apps})
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	d, err := h.uc.Get(c.Request().Context(), middleware.Principal(c), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"loanApplication": d})
}

type setStatusReq struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

func (h *ApplicationHandler) SetStatus(c echo.Context) error {
	var req setStatusReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	d, err := h.uc.SetStatus(c.Request().Context(), middleware.Principal(c), c.Param("id"), req.Status, req.Remarks)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"loanApplication": d})
}

func (h *ApplicationHandler) UploadDocument(c echo.Context) error {
	fh, err := c.FormFile("document")
	if err != nil {
		return badRequest(c, "A file is required under the 'document' form field")
	}
	if fh.Size > maxDocumentSize {
		return badRequest(c, "File too large; the limit is 10 MB")
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "Could not read uploaded file")
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxDocumentSize))
	if err != nil {
		return badRequest(c, "Could not read uploaded file")
	}

	url, err := h.uc.UploadDocument(
		c.Request().Context(),
		middleware.Principal(c),
		c.Param("documentType"),
		fh.Filename,
		fh.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"data": map[string]string{"documentUrl": url}})
}
