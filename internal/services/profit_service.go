package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/analytics"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ProfitQuery selects the orders of a report and the settings applied to
// them. A nil SettingsID means the owner's default settings.
type ProfitQuery struct {
	Level      models.GroupLevel
	SettingsID *uuid.UUID
	From       *time.Time
	To         *time.Time
	Status     *string
}

type ProfitService struct {
	orderRepo repositories.OrderRepository
	feeRepo   repositories.FeeSettingsRepository
	pageSize  int
	log       zerolog.Logger
}

func NewProfitService(orderRepo repositories.OrderRepository, feeRepo repositories.FeeSettingsRepository, log zerolog.Logger) *ProfitService {
	return &ProfitService{
		orderRepo: orderRepo,
		feeRepo:   feeRepo,
		pageSize:  repositories.DefaultPageSize,
		log:       log.With().Str("service", "profit").Logger(),
	}
}

// Report groups every matching order and applies the fee cascade. Orders are
// filtered by the settings they were imported under only when the query
// names settings explicitly.
func (s *ProfitService) Report(ctx context.Context, ownerID uuid.UUID, q ProfitQuery) (*models.ProfitReport, error) {
	settings, err := s.resolveSettings(ctx, ownerID, q.SettingsID)
	if err != nil {
		return nil, err
	}

	filter := models.OrderFilter{From: q.From, To: q.To, Status: q.Status, SettingsID: q.SettingsID}
	orders, err := repositories.FetchAll(ctx, s.pageSize, func(ctx context.Context, limit, offset int) ([]models.Order, error) {
		return s.orderRepo.ListPage(ctx, ownerID, filter, limit, offset)
	})
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	report := analytics.BuildReport(orders, q.Level, *settings)
	s.log.Debug().
		Str("owner_id", ownerID.String()).
		Str("level", string(report.Level)).
		Int("orders", len(orders)).
		Int("groups", len(report.Groups)).
		Msg("Profit report built")
	return &report, nil
}

// resolveSettings falls back to an all-zero cascade when the owner has no
// default yet, so a fresh account still sees its gross figures.
func (s *ProfitService) resolveSettings(ctx context.Context, ownerID uuid.UUID, id *uuid.UUID) (*models.FeeSettings, error) {
	if id != nil {
		settings, err := s.feeRepo.GetByID(ctx, ownerID, *id)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("fee settings %s: %w", id, ErrNotFound)
		}
		return settings, err
	}

	settings, err := s.feeRepo.GetDefault(ctx, ownerID)
	if errors.Is(err, repositories.ErrNotFound) {
		return &models.FeeSettings{OwnerID: ownerID}, nil
	}
	return settings, err
}

// UpdateUnitCost sets the unit cost of every order of the owner with sku and
// returns how many orders changed.
func (s *ProfitService) UpdateUnitCost(ctx context.Context, ownerID uuid.UUID, sku string, cost decimal.Decimal) (int, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return 0, fmt.Errorf("%w: sku is required", ErrInvalidInput)
	}
	if cost.IsNegative() {
		return 0, fmt.Errorf("%w: unit cost cannot be negative", ErrInvalidInput)
	}

	n, err := s.orderRepo.UpdateUnitCostBySKU(ctx, ownerID, sku, cost)
	if err != nil {
		return 0, err
	}
	s.log.Info().Str("owner_id", ownerID.String()).Str("sku", sku).Str("unit_cost", cost.String()).Int("orders", n).Msg("Unit cost updated")
	return n, nil
}
