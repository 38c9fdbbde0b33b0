package http

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"elite-paisa-backend/internal/adapter/middleware"
)

type Handlers struct {
	Base        *Handler
	Auth        *AuthHandler
	LoanType    *LoanTypeHandler
	Application *ApplicationHandler
	Profile     *ProfileHandler
	Password    *PasswordHandler
	Dashboard   *DashboardHandler
}

// NewRouter assembles the echo instance. Idempotency sits inside the
// authenticated groups so the caller id is available for its key.
func NewRouter(h Handlers, auth *middleware.Authenticator, idemp echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Base.Health)

	e.POST("/auth/signup", h.Auth.Signup)
	e.POST("/auth/login", h.Auth.Login)
	e.POST("/password/forgot", h.Password.Forgot)
	e.POST("/password/reset", h.Password.Reset)

	// Catalog reads are public; writes go through the auth gate.
	lt := e.Group("/loan-types")
	lt.GET("", h.LoanType.List)
	lt.GET("/:id", h.LoanType.Get)
	lt.POST("", h.LoanType.Create, auth.Require, idemp)
	lt.PUT("/:id", h.LoanType.Update, auth.Require, idemp)
	lt.DELETE("/:id", h.LoanType.Delete, auth.Require, idemp)

	la := e.Group("/loan-applications", auth.Require, idemp)
	la.POST("/apply", h.Application.Apply)
	la.GET("/my", h.Application.ListMine)
	la.GET("", h.Application.ListAll)
	la.GET("/:id", h.Application.Get)
	la.PATCH("/:id/status", h.Application.SetStatus)
	la.POST("/upload/:documentType", h.Application.UploadDocument)

	pr := e.Group("/profile", auth.Require, idemp)
	pr.POST("", h.Profile.Upsert)
	pr.PUT("", h.Profile.Upsert)
	pr.GET("", h.Profile.GetOwn)
	pr.DELETE("", h.Profile.Delete)
	pr.POST("/upload/profile-pic", h.Profile.UploadPicture)
	pr.GET("/all", h.Profile.ListAll)
	pr.GET("/:id", h.Profile.GetByID)

	db := e.Group("/dashboard", auth.Require)
	db.GET("/stats", h.Dashboard.Stats)
	db.GET("/recent-applications", h.Dashboard.Recent)

	return e
}
