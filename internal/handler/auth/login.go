// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"vidchef/internal/dto"
	"vidchef/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler verifies an email/password pair and issues an access token.
// @Summary     Log in
// @Description Verifies credentials and returns an access token with its expiry
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.LoginRequest true "login payload"
// @Success     200 {object} dto.TokenResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /token [post]
func LoginHandler(svc *service.Auth) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		token, expiresAt, err := svc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrAuthenticationFailed) {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "login failed"})
		}

		return c.JSON(http.StatusOK, dto.TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresAt:   expiresAt,
		})
	}
}
