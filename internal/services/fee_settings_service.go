package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/caching"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type FeeSettingsService struct {
	repo  repositories.FeeSettingsRepository
	cache caching.CacheService
	log   zerolog.Logger
}

func NewFeeSettingsService(repo repositories.FeeSettingsRepository, cache caching.CacheService, log zerolog.Logger) *FeeSettingsService {
	return &FeeSettingsService{
		repo:  repo,
		cache: cache,
		log:   log.With().Str("service", "fee_settings").Logger(),
	}
}

// Create stores new settings for the owner. The first settings an owner
// creates become the default.
func (s *FeeSettingsService) Create(ctx context.Context, ownerID uuid.UUID, settings *models.FeeSettings) (*models.FeeSettings, error) {
	if err := ValidateFeeSettings(settings); err != nil {
		return nil, err
	}
	settings.ID = uuid.New()
	settings.OwnerID = ownerID
	settings.Name = strings.TrimSpace(settings.Name)

	if !settings.IsDefault {
		_, err := s.repo.GetDefault(ctx, ownerID)
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			settings.IsDefault = true
		case err != nil:
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, settings); err != nil {
		return nil, err
	}
	s.log.Info().Str("owner_id", ownerID.String()).Str("settings_id", settings.ID.String()).Bool("default", settings.IsDefault).Msg("Fee settings created")
	return settings, nil
}

func (s *FeeSettingsService) Get(ctx context.Context, ownerID, id uuid.UUID) (*models.FeeSettings, error) {
	settings, err := s.repo.GetByID(ctx, ownerID, id)
	return settings, mapNotFound(err)
}

func (s *FeeSettingsService) GetDefault(ctx context.Context, ownerID uuid.UUID) (*models.FeeSettings, error) {
	settings, err := s.repo.GetDefault(ctx, ownerID)
	return settings, mapNotFound(err)
}

func (s *FeeSettingsService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.FeeSettings, error) {
	return s.repo.List(ctx, ownerID)
}

func (s *FeeSettingsService) Update(ctx context.Context, ownerID, id uuid.UUID, settings *models.FeeSettings) (*models.FeeSettings, error) {
	if err := ValidateFeeSettings(settings); err != nil {
		return nil, err
	}
	settings.ID = id
	settings.OwnerID = ownerID
	settings.Name = strings.TrimSpace(settings.Name)

	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, mapNotFound(err)
	}
	return s.repo.GetByID(ctx, ownerID, id)
}

// Delete removes the settings and every order imported under them.
func (s *FeeSettingsService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return mapNotFound(err)
	}
	if err := s.cache.InvalidateOwner(ctx, ownerID); err != nil {
		s.log.Warn().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to invalidate owner cache")
	}
	s.log.Info().Str("owner_id", ownerID.String()).Str("settings_id", id.String()).Msg("Fee settings deleted")
	return nil
}

func (s *FeeSettingsService) SetDefault(ctx context.Context, ownerID, id uuid.UUID) error {
	return mapNotFound(s.repo.SetDefault(ctx, ownerID, id))
}

// ValidateFeeSettings checks that rates are fractions and fixed amounts are
// not negative.
func ValidateFeeSettings(s *models.FeeSettings) error {
	if s == nil {
		return fmt.Errorf("%w: settings are required", ErrInvalidInput)
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	rates := []struct {
		name  string
		value decimal.Decimal
	}{
		{"commission_rate", s.CommissionRate},
		{"affiliate_rate", s.AffiliateRate},
		{"tax_rate", s.TaxRate},
		{"pre_tax_discount_rate", s.PreTaxDiscount()},
		{"entry_invoice_percent", s.EntryInvoicePercent},
		{"advance_payment_rate", s.AdvancePaymentRate},
	}
	for _, r := range rates {
		if r.value.IsNegative() || r.value.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%w: %s must be between 0 and 1", ErrInvalidInput, r.name)
		}
	}
	if s.PerItemFee.IsNegative() {
		return fmt.Errorf("%w: per_item_fee cannot be negative", ErrInvalidInput)
	}
	if s.AdSpend.IsNegative() {
		return fmt.Errorf("%w: ad_spend cannot be negative", ErrInvalidInput)
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
