package http

import (
	"io"
	"net/http"

	"elite-paisa-backend/internal/adapter/middleware"
	"elite-paisa-backend/internal/usecase/profile"

	"github.com/labstack/echo/v4"
)

// maxPictureSize caps profile pictures at 5 MiB.
const maxPictureSize = 5 << 20

type ProfileHandler struct{ uc *profile.Usecase }

func NewProfileHandler(uc *profile.Usecase) *ProfileHandler { return &ProfileHandler{uc: uc} }

func (h *ProfileHandler) Upsert(c echo.Context) error {
	var req profile.UpsertInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Invalid profile data", ToFieldErrors(err)...)
	}
	prof, err := h.uc.CreateOrUpdate(c.Request().Context(), middleware.Principal(c), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"profile": prof})
}

func (h *ProfileHandler) GetOwn(c echo.Context) error {
	prof, err := h.uc.GetOwn(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"profile": prof})
}

func (h *ProfileHandler) GetByID(c echo.Context) error {
	prof, err := h.uc.GetByAuthID(c.Request().Context(), middleware.Principal(c), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"profile": prof})
}

func (h *ProfileHandler) ListAll(c echo.Context) error {
	profs, err := h.uc.ListAll(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"count": len(profs), "profiles": profs})
}

func (h *ProfileHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), middleware.Principal(c)); err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"message": "Profile deleted"})
}

func (h *ProfileHandler) UploadPicture(c echo.Context) error {
	fh, err := c.FormFile("profilePic")
	if err != nil {
		return badRequest(c, "A file is required under the 'profilePic' form field")
	}
	if fh.Size > maxPictureSize {
		return badRequest(c, "File too large; the limit is 5 MB")
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "Could not read uploaded file")
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxPictureSize))
	if err != nil {
		return badRequest(c, "Could not read uploaded file")
	}

	url, err := h.uc.UploadPicture(
		c.Request().Context(),
		middleware.Principal(c),
		fh.Filename,
		fh.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, map[string]any{"data": map[string]string{"profilePic": url}})
}
