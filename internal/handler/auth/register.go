// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"

	"vidchef/internal/dto"
	"vidchef/internal/service"
	"vidchef/internal/store"

	"github.com/labstack/echo/v4"
)

// RegisterHandler creates a user account and returns a fresh access token,
// so the caller does not need a separate login after signing up.
// @Summary     Register a new user
// @Description Creates an account and returns an access token bound to it
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.RegisterRequest true "registration payload"
// @Success     201 {object} dto.TokenResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /users [post]
func RegisterHandler(svc *service.Auth) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		token, expiresAt, err := svc.Register(c.Request().Context(), req.Email, req.Password, req.FullName)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidInput):
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid credentials"})
			case errors.Is(err, store.ErrDuplicateEmail):
				return c.JSON(http.StatusConflict, dto.HTTPError{Message: "email already registered"})
			default:
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "registration failed"})
			}
		}

		return c.JSON(http.StatusCreated, dto.TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresAt:   expiresAt,
		})
	}
}
