package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FeeSettingsServiceTestSuite struct {
	suite.Suite
	repo    *MockFeeSettingsRepo
	cache   *MockCacheService
	service *FeeSettingsService
	ctx     context.Context
	owner   uuid.UUID
}

func (s *FeeSettingsServiceTestSuite) SetupTest() {
	s.repo = new(MockFeeSettingsRepo)
	s.cache = new(MockCacheService)
	s.service = NewFeeSettingsService(s.repo, s.cache, zerolog.Nop())
	s.ctx = context.Background()
	s.owner = uuid.New()
}

func (s *FeeSettingsServiceTestSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
	s.cache.AssertExpectations(s.T())
}

func shopeeSettings() *models.FeeSettings {
	return &models.FeeSettings{
		Name:           " Shopee padrão ",
		CommissionRate: decimal.RequireFromString("0.14"),
		PerItemFee:     decimal.RequireFromString("4"),
		TaxRate:        decimal.RequireFromString("0.06"),
	}
}

func (s *FeeSettingsServiceTestSuite) TestCreate_FirstSettingsBecomeDefault() {
	s.repo.On("GetDefault", s.ctx, s.owner).Return(nil, repositories.ErrNotFound)
	s.repo.On("Create", s.ctx, mock.AnythingOfType("*models.FeeSettings")).Return(nil)

	created, err := s.service.Create(s.ctx, s.owner, shopeeSettings())
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, created.ID)
	s.Equal(s.owner, created.OwnerID)
	s.Equal("Shopee padrão", created.Name)
	s.True(created.IsDefault)
}

func (s *FeeSettingsServiceTestSuite) TestCreate_KeepsExistingDefault() {
	s.repo.On("GetDefault", s.ctx, s.owner).Return(&models.FeeSettings{ID: uuid.New(), IsDefault: true}, nil)
	s.repo.On("Create", s.ctx, mock.MatchedBy(func(fs *models.FeeSettings) bool { return !fs.IsDefault })).Return(nil)

	created, err := s.service.Create(s.ctx, s.owner, shopeeSettings())
	s.Require().NoError(err)
	s.False(created.IsDefault)
}

func (s *FeeSettingsServiceTestSuite) TestCreate_ExplicitDefaultSkipsLookup() {
	settings := shopeeSettings()
	settings.IsDefault = true
	s.repo.On("Create", s.ctx, settings).Return(nil)

	_, err := s.service.Create(s.ctx, s.owner, settings)
	s.Require().NoError(err)
}

func (s *FeeSettingsServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	s.repo.On("Update", s.ctx, mock.Anything).Return(repositories.ErrNotFound)

	_, err := s.service.Update(s.ctx, s.owner, id, shopeeSettings())
	s.ErrorIs(err, ErrNotFound)
}

func (s *FeeSettingsServiceTestSuite) TestUpdate_ReturnsStoredRow() {
	id := uuid.New()
	stored := &models.FeeSettings{ID: id, OwnerID: s.owner, Name: "Shopee padrão"}
	s.repo.On("Update", s.ctx, mock.MatchedBy(func(fs *models.FeeSettings) bool {
		return fs.ID == id && fs.OwnerID == s.owner
	})).Return(nil)
	s.repo.On("GetByID", s.ctx, s.owner, id).Return(stored, nil)

	updated, err := s.service.Update(s.ctx, s.owner, id, shopeeSettings())
	s.Require().NoError(err)
	s.Equal(stored, updated)
}

func (s *FeeSettingsServiceTestSuite) TestDelete_InvalidatesCache() {
	id := uuid.New()
	s.repo.On("Delete", s.ctx, s.owner, id).Return(nil)
	s.cache.On("InvalidateOwner", s.ctx, s.owner).Return(errors.New("redis down"))

	s.NoError(s.service.Delete(s.ctx, s.owner, id))
}

func (s *FeeSettingsServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	s.repo.On("Delete", s.ctx, s.owner, id).Return(repositories.ErrNotFound)

	s.ErrorIs(s.service.Delete(s.ctx, s.owner, id), ErrNotFound)
}

func (s *FeeSettingsServiceTestSuite) TestSetDefaultAndGetDefault() {
	id := uuid.New()
	s.repo.On("SetDefault", s.ctx, s.owner, id).Return(nil)
	s.repo.On("GetDefault", s.ctx, s.owner).Return(&models.FeeSettings{ID: id, IsDefault: true}, nil)

	s.Require().NoError(s.service.SetDefault(s.ctx, s.owner, id))
	def, err := s.service.GetDefault(s.ctx, s.owner)
	s.Require().NoError(err)
	s.Equal(id, def.ID)
}

func TestFeeSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FeeSettingsServiceTestSuite))
}

func TestValidateFeeSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.FeeSettings)
		valid  bool
	}{
		{"valid", func(*models.FeeSettings) {}, true},
		{"rate of one", func(s *models.FeeSettings) { s.TaxRate = decimal.NewFromInt(1) }, true},
		{"blank name", func(s *models.FeeSettings) { s.Name = "  " }, false},
		{"commission above one", func(s *models.FeeSettings) { s.CommissionRate = decimal.RequireFromString("14") }, false},
		{"negative affiliate", func(s *models.FeeSettings) { s.AffiliateRate = decimal.RequireFromString("-0.01") }, false},
		{"pre-tax discount above one", func(s *models.FeeSettings) {
			s.PreTaxDiscountRate = decimal.NewNullDecimal(decimal.RequireFromString("1.5"))
		}, false},
		{"negative per item fee", func(s *models.FeeSettings) { s.PerItemFee = decimal.NewFromInt(-4) }, false},
		{"negative ad spend", func(s *models.FeeSettings) { s.AdSpend = decimal.NewFromInt(-1) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := shopeeSettings()
			tt.mutate(settings)
			err := ValidateFeeSettings(settings)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidInput)
			}
		})
	}

	assert.ErrorIs(t, ValidateFeeSettings(nil), ErrInvalidInput)
}
