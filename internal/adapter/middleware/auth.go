package middleware

import (
	"context"
	"net/http"
	"strings"

	userDomain "elite-paisa-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
)

// principalKey is the echo context key the authenticated principal is stored
// under.
const principalKey = "principal"

// PrincipalResolver turns a verified token subject into a live principal.
// The role comes from the store on every request, never from the token.
type PrincipalResolver interface {
	Principal(ctx context.Context, userID string) (*userDomain.Principal, error)
}

// TokenVerifier checks a bearer token and returns its subject id.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

type Authenticator struct {
	tokens   TokenVerifier
	resolver PrincipalResolver
}

func NewAuthenticator(tokens TokenVerifier, resolver PrincipalResolver) *Authenticator {
	return &Authenticator{tokens: tokens, resolver: resolver}
}

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, map[string]any{"success": false, "message": msg})
}

func bearerToken(c echo.Context) string {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func (a *Authenticator) attach(c echo.Context, raw string) error {
	sub, err := a.tokens.Verify(raw)
	if err != nil {
		return unauthorized(c, "Not authorized, token failed")
	}
	p, err := a.resolver.Principal(c.Request().Context(), sub)
	if err != nil {
		return unauthorized(c, "Not authorized, user not found")
	}
	c.Set(principalKey, p)
	return nil
}

// Require rejects requests without a valid bearer token.
func (a *Authenticator) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := bearerToken(c)
		if raw == "" {
			return unauthorized(c, "Not authorized, no token")
		}
		if err := a.attach(c, raw); err != nil {
			return err
		}
		return next(c)
	}
}

// Optional attaches a principal when a valid token is presented but lets
// anonymous requests through; the authorization gate then sees a nil
// principal. A token that is present but invalid is still rejected.
func (a *Authenticator) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if raw := bearerToken(c); raw != "" {
			if err := a.attach(c, raw); err != nil {
				return err
			}
		}
		return next(c)
	}
}

// Principal returns the authenticated principal, or nil for anonymous
// requests.
func Principal(c echo.Context) *userDomain.Principal {
	p, _ := c.Get(principalKey).(*userDomain.Principal)
	return p
}
