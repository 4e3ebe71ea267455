package handlers

import (
	"context"
	"net/http"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/common"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type FeeSettingsService interface {
	Create(ctx context.Context, ownerID uuid.UUID, settings *models.FeeSettings) (*models.FeeSettings, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*models.FeeSettings, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*models.FeeSettings, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, settings *models.FeeSettings) (*models.FeeSettings, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	SetDefault(ctx context.Context, ownerID, id uuid.UUID) error
}

type FeeSettingsHandlers struct {
	service FeeSettingsService
	log     zerolog.Logger
}

func NewFeeSettingsHandlers(service FeeSettingsService, log zerolog.Logger) *FeeSettingsHandlers {
	return &FeeSettingsHandlers{service: service, log: log.With().Str("handler", "fee_settings").Logger()}
}

// ListFeeSettings handles GET /fee-settings
func (h *FeeSettingsHandlers) ListFeeSettings(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	list, err := h.service.List(c.Request().Context(), owner)
	if err != nil {
		return respondError(c, h.log, err, "Fee settings")
	}
	return c.JSON(http.StatusOK, list)
}

// CreateFeeSettings handles POST /fee-settings
func (h *FeeSettingsHandlers) CreateFeeSettings(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req models.FeeSettings
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	created, err := h.service.Create(c.Request().Context(), owner, &req)
	if err != nil {
		return respondError(c, h.log, err, "Fee settings")
	}
	return c.JSON(http.StatusCreated, created)
}

// GetFeeSettings handles GET /fee-settings/:id
func (h *FeeSettingsHandlers) GetFeeSettings(c echo.Context) error {
	owner, id, err := h.ownerAndID(c)
	if err != nil {
		return err
	}

	settings, err := h.service.Get(c.Request().Context(), owner, id)
	if err != nil {
		return respondError(c, h.log, err, "Fee settings")
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateFeeSettings handles PUT /fee-settings/:id
func (h *FeeSettingsHandlers) UpdateFeeSettings(c echo.Context) error {
	owner, id, err := h.ownerAndID(c)
	if err != nil {
		return err
	}

	var req models.FeeSettings
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	updated, err := h.service.Update(c.Request().Context(), owner, id, &req)
	if err != nil {
		return respondError(c, h.log, err, "Fee settings")
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteFeeSettings handles DELETE /fee-settings/:id
func (h *FeeSettingsHandlers) DeleteFeeSettings(c echo.Context) error {
	owner, id, err := h.ownerAndID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), owner, id); err != nil {
		return respondError(c, h.log, err, "Fee settings")
	}
	return c.NoContent(http.StatusNoContent)
}

// SetDefaultFeeSettings handles POST /fee-settings/:id/default
func (h *FeeSettingsHandlers) SetDefaultFeeSettings(c echo.Context) error {
	owner, id, err := h.ownerAndID(c)
	if err != nil {
		return err
	}

	if err := h.service.SetDefault(c.Request().Context(), owner, id); err != nil {
		return respondError(c, h.log, err, "Fee settings")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *FeeSettingsHandlers) ownerAndID(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	owner, err := ownerID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return owner, id, nil
}
