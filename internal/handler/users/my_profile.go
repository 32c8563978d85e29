// File: internal/handler/users/my_profile.go
package users

import (
	"net/http"

	"vidchef/internal/database"
	"vidchef/internal/dto"
	"vidchef/internal/middleware"
	"vidchef/internal/store"

	"github.com/labstack/echo/v4"
)

// GetMyProfileHandler returns the profile of the authenticated caller.
// @Summary     Get my profile
// @Description Returns the account behind the presented access token
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/my-profile [get]
func GetMyProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := middleware.PrincipalFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "unauthorized"})
		}

		user, err := store.GetUserByID(c.Request().Context(), db, principal.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to load profile"})
		}

		return c.JSON(http.StatusOK, dto.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			FullName:  user.FullName,
			CreatedAt: user.CreatedAt,
		})
	}
}
