package handlers

import (
	"errors"
	"net/http"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/common"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// respondError maps service errors onto the standard error response.
func respondError(c echo.Context, log zerolog.Logger, err error, resource string) error {
	switch {
	case errors.Is(err, services.ErrUnsupportedFileType):
		return common.SendUnsupportedMediaError(c, err.Error())
	case errors.Is(err, services.ErrEmptyFile), errors.Is(err, services.ErrInvalidInput):
		return common.SendClientError(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return common.SendNotFoundError(c, resource)
	}
	log.Error().Err(err).Str("method", c.Request().Method).Str("path", c.Path()).Msg("Request failed")
	return common.SendServerError(c, "Failed to process request")
}

func ownerID(c echo.Context) (uuid.UUID, error) {
	id, ok := common.OwnerID(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Owner not found")
	}
	return id, nil
}
