// File: internal/handler/ping.go
package handler

import (
	"errors"
	"net/http"

	"vidchef/internal/cache"
	"vidchef/internal/database"
	"vidchef/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// PingResponse is the health check response body.
// swagger:model handler.PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler reports whether the database and cache are reachable.
// @Summary     Health Check
// @Description Returns pong after probing the database and cache connections
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /ping [get]
func PingHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ec echo.Context) error {
		ctx := ec.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return ec.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "database unhealthy"})
		}
		// a miss on the probe key is fine, only transport errors count
		if err := c.Get(ctx, "ping").Err(); err != nil && !errors.Is(err, redis.Nil) {
			return ec.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "cache unhealthy"})
		}
		return ec.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
