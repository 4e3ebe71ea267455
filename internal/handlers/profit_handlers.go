package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/common"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type ProfitService interface {
	Report(ctx context.Context, ownerID uuid.UUID, q services.ProfitQuery) (*models.ProfitReport, error)
	UpdateUnitCost(ctx context.Context, ownerID uuid.UUID, sku string, cost decimal.Decimal) (int, error)
}

type ProfitHandlers struct {
	service ProfitService
	log     zerolog.Logger
}

func NewProfitHandlers(service ProfitService, log zerolog.Logger) *ProfitHandlers {
	return &ProfitHandlers{service: service, log: log.With().Str("handler", "profit").Logger()}
}

// Report handles GET /profit?level&settings_id&from&to&status
func (h *ProfitHandlers) Report(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	q := services.ProfitQuery{Level: models.GroupByProduct, Status: common.OptionalString(c.QueryParam("status"))}
	switch level := strings.ToLower(strings.TrimSpace(c.QueryParam("level"))); level {
	case "", string(models.GroupByProduct):
	case string(models.GroupByVariation):
		q.Level = models.GroupByVariation
	default:
		return common.SendValidationError(c, "level", "level must be product or variation")
	}
	if raw := c.QueryParam("settings_id"); raw != "" {
		id, err := common.ValidateUUID(raw, "settings_id")
		if err != nil {
			return common.SendValidationError(c, "settings_id", err.Error())
		}
		q.SettingsID = &id
	}
	if q.From, q.To, err = dateRange(c); err != nil {
		return common.SendClientError(c, err.Error())
	}

	report, err := h.service.Report(c.Request().Context(), owner, q)
	if err != nil {
		return respondError(c, h.log, err, "Fee settings")
	}
	return c.JSON(http.StatusOK, report)
}

// UpdateUnitCost handles PATCH /orders/unit-cost
func (h *ProfitHandlers) UpdateUnitCost(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req models.UnitCostUpdate
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	updated, err := h.service.UpdateUnitCost(c.Request().Context(), owner, req.SKU, req.UnitCost)
	if err != nil {
		return respondError(c, h.log, err, "Orders")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"sku":     strings.TrimSpace(req.SKU),
		"updated": updated,
	})
}
