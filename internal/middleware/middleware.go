package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"vidchef/internal/service"

	"github.com/labstack/echo/v4"
)

// ContextPrincipalKey is where RequireAuth stores the resolved principal.
const ContextPrincipalKey = "principal"

// PrincipalResolver turns a bearer token into the authenticated principal.
// *service.Auth implements it; handlers receive it explicitly instead of
// reaching for ambient state.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, token string) (*service.Principal, error)
}

func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	return parts[1], nil
}

// RequireAuth rejects requests without a valid bearer token before any
// handler-specific logic runs. The resolved principal is stored under
// ContextPrincipalKey.
func RequireAuth(resolver PrincipalResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := extractToken(c)
			if err != nil {
				return err
			}
			principal, err := resolver.ResolvePrincipal(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, service.ErrUnauthorized) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				// storage failure, not an auth verdict
				return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
			}
			c.Set(ContextPrincipalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal RequireAuth stored on the context.
func PrincipalFrom(c echo.Context) (*service.Principal, bool) {
	p, ok := c.Get(ContextPrincipalKey).(*service.Principal)
	return p, ok
}
