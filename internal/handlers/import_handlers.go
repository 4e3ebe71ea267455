package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/common"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// MaxUploadSize bounds the bytes read from one uploaded file.
const MaxUploadSize = 20 << 20

type ImportService interface {
	ImportBankStatement(ctx context.Context, ownerID uuid.UUID, filename, profile string, data []byte) (*models.ImportResult, error)
	ImportSettlements(ctx context.Context, ownerID uuid.UUID, filename string, data []byte) (*models.ImportResult, error)
	ImportOrders(ctx context.Context, ownerID uuid.UUID, settingsID *uuid.UUID, filename string, data []byte) (*models.ImportResult, error)
	LatestDiagnostics(ctx context.Context, ownerID uuid.UUID) (*models.ImportResult, error)
}

// ImportHandlers accepts statement, settlement and order uploads.
type ImportHandlers struct {
	service ImportService
	log     zerolog.Logger
}

func NewImportHandlers(service ImportService, log zerolog.Logger) *ImportHandlers {
	return &ImportHandlers{service: service, log: log.With().Str("handler", "imports").Logger()}
}

// ImportBank handles POST /imports/bank?profile=
func (h *ImportHandlers) ImportBank(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	name, data, err := readUpload(c)
	if err != nil {
		return common.SendValidationError(c, "file", err.Error())
	}

	result, err := h.service.ImportBankStatement(c.Request().Context(), owner, name, c.QueryParam("profile"), data)
	if err != nil {
		return respondError(c, h.log, err, "Bank profile")
	}
	return c.JSON(http.StatusOK, result)
}

// ImportSettlements handles POST /imports/settlements
func (h *ImportHandlers) ImportSettlements(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	name, data, err := readUpload(c)
	if err != nil {
		return common.SendValidationError(c, "file", err.Error())
	}

	result, err := h.service.ImportSettlements(c.Request().Context(), owner, name, data)
	if err != nil {
		return respondError(c, h.log, err, "Settlement report")
	}
	return c.JSON(http.StatusOK, result)
}

// ImportOrders handles POST /imports/orders?settings_id=
func (h *ImportHandlers) ImportOrders(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var settingsID *uuid.UUID
	if raw := c.QueryParam("settings_id"); raw != "" {
		id, err := common.ValidateUUID(raw, "settings_id")
		if err != nil {
			return common.SendValidationError(c, "settings_id", err.Error())
		}
		settingsID = &id
	}

	name, data, err := readUpload(c)
	if err != nil {
		return common.SendValidationError(c, "file", err.Error())
	}

	result, err := h.service.ImportOrders(c.Request().Context(), owner, settingsID, name, data)
	if err != nil {
		return respondError(c, h.log, err, "Fee settings")
	}
	return c.JSON(http.StatusOK, result)
}

// LatestDiagnostics handles GET /imports/diagnostics/latest
func (h *ImportHandlers) LatestDiagnostics(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	result, err := h.service.LatestDiagnostics(c.Request().Context(), owner)
	if err != nil {
		return respondError(c, h.log, err, "Import diagnostics")
	}
	return c.JSON(http.StatusOK, result)
}

func readUpload(c echo.Context) (string, []byte, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("multipart field \"file\" is required")
	}
	if header.Size > MaxUploadSize {
		return "", nil, fmt.Errorf("file exceeds %d MB", MaxUploadSize>>20)
	}

	f, err := header.Open()
	if err != nil {
		return "", nil, fmt.Errorf("cannot open upload: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
	if err != nil {
		return "", nil, fmt.Errorf("cannot read upload: %v", err)
	}
	if len(data) > MaxUploadSize {
		return "", nil, fmt.Errorf("file exceeds %d MB", MaxUploadSize>>20)
	}
	return header.Filename, data, nil
}
