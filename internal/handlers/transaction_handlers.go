package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/common"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type TransactionService interface {
	ListAll(ctx context.Context, ownerID uuid.UUID, filter models.BankTransactionFilter) ([]models.BankTransaction, error)
	Summary(ctx context.Context, ownerID uuid.UUID, filter models.BankTransactionFilter) (*models.TransactionSummary, error)
	SetCategory(ctx context.Context, ownerID, id uuid.UUID, category string) (*models.BankTransaction, error)
	ListSettlements(ctx context.Context, ownerID uuid.UUID, filter models.SettlementFilter) ([]models.SettlementRow, error)
}

type TransactionHandlers struct {
	service TransactionService
	log     zerolog.Logger
}

func NewTransactionHandlers(service TransactionService, log zerolog.Logger) *TransactionHandlers {
	return &TransactionHandlers{service: service, log: log.With().Str("handler", "transactions").Logger()}
}

// ListTransactions handles GET /transactions?from&to&direction&category
func (h *TransactionHandlers) ListTransactions(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	filter, err := bankFilter(c)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	txs, err := h.service.ListAll(c.Request().Context(), owner, filter)
	if err != nil {
		return respondError(c, h.log, err, "Transactions")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"transactions": txs,
		"count":        len(txs),
	})
}

// Summary handles GET /transactions/summary
func (h *TransactionHandlers) Summary(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	filter, err := bankFilter(c)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	summary, err := h.service.Summary(c.Request().Context(), owner, filter)
	if err != nil {
		return respondError(c, h.log, err, "Transactions")
	}
	return c.JSON(http.StatusOK, summary)
}

// SetCategory handles PATCH /transactions/:id/category
func (h *TransactionHandlers) SetCategory(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req struct {
		Category string `json:"category"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	tx, err := h.service.SetCategory(c.Request().Context(), owner, id, req.Category)
	if err != nil {
		return respondError(c, h.log, err, "Transaction")
	}
	return c.JSON(http.StatusOK, tx)
}

// ListSettlements handles GET /settlements?from&to
func (h *TransactionHandlers) ListSettlements(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	from, to, err := dateRange(c)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	rows, err := h.service.ListSettlements(c.Request().Context(), owner, models.SettlementFilter{From: from, To: to})
	if err != nil {
		return respondError(c, h.log, err, "Settlements")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"settlements": rows,
		"count":       len(rows),
	})
}

func bankFilter(c echo.Context) (models.BankTransactionFilter, error) {
	from, to, err := dateRange(c)
	if err != nil {
		return models.BankTransactionFilter{}, err
	}
	filter := models.BankTransactionFilter{From: from, To: to, Category: common.OptionalString(c.QueryParam("category"))}
	if d := common.OptionalString(c.QueryParam("direction")); d != nil {
		direction := models.Direction(*d)
		filter.Direction = &direction
	}
	return filter, nil
}

func dateRange(c echo.Context) (from, to *time.Time, err error) {
	if from, err = common.ParseOptionalDate(c.QueryParam("from"), "from"); err != nil {
		return nil, nil, err
	}
	if to, err = common.ParseOptionalDate(c.QueryParam("to"), "to"); err != nil {
		return nil, nil, err
	}
	return from, to, common.ValidateDateRange(from, to)
}
