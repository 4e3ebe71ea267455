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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProfitServiceTestSuite struct {
	suite.Suite
	orderRepo *MockOrderRepo
	feeRepo   *MockFeeSettingsRepo
	service   *ProfitService
	ctx       context.Context
	owner     uuid.UUID
}

func (s *ProfitServiceTestSuite) SetupTest() {
	s.orderRepo = new(MockOrderRepo)
	s.feeRepo = new(MockFeeSettingsRepo)
	s.service = NewProfitService(s.orderRepo, s.feeRepo, zerolog.Nop())
	s.ctx = context.Background()
	s.owner = uuid.New()
}

func (s *ProfitServiceTestSuite) TearDownTest() {
	s.orderRepo.AssertExpectations(s.T())
	s.feeRepo.AssertExpectations(s.T())
}

func testOrder(sku string, qty int, gross, cost string) models.Order {
	return models.Order{
		ID:          uuid.New(),
		OrderID:     uuid.NewString(),
		SKU:         sku,
		ProductName: sku,
		Quantity:    qty,
		GrossAmount: decimal.RequireFromString(gross),
		UnitCost:    decimal.RequireFromString(cost),
	}
}

func (s *ProfitServiceTestSuite) TestReport_PagesThroughAllOrders() {
	s.service.pageSize = 2
	settings := &models.FeeSettings{
		ID:             uuid.New(),
		OwnerID:        s.owner,
		CommissionRate: decimal.RequireFromString("0.1"),
		IsDefault:      true,
	}
	s.feeRepo.On("GetDefault", s.ctx, s.owner).Return(settings, nil)

	filter := models.OrderFilter{}
	s.orderRepo.On("ListPage", s.ctx, s.owner, filter, 2, 0).Return([]models.Order{testOrder("A", 1, "100", "10"), testOrder("B", 1, "50", "5")}, nil)
	s.orderRepo.On("ListPage", s.ctx, s.owner, filter, 2, 2).Return([]models.Order{testOrder("A", 1, "100", "30")}, nil)

	report, err := s.service.Report(s.ctx, s.owner, ProfitQuery{Level: models.GroupByProduct})
	s.Require().NoError(err)

	s.Equal(models.GroupByProduct, report.Level)
	s.Require().NotNil(report.SettingsID)
	s.Equal(settings.ID, *report.SettingsID)
	s.Require().Len(report.Groups, 2)
	s.Equal("A", report.Groups[0].Key)
	s.Equal(2, report.Groups[0].Quantity)
	s.True(decimal.NewFromInt(200).Equal(report.Groups[0].Gross))
	s.True(decimal.NewFromInt(20).Equal(report.Groups[0].AverageUnitCost))
	s.True(decimal.NewFromInt(20).Equal(report.Groups[0].CommissionFee))
	s.True(decimal.NewFromInt(250).Equal(report.Totals.Gross))
}

func (s *ProfitServiceTestSuite) TestReport_ExplicitSettingsFilterOrders() {
	settingsID := uuid.New()
	s.feeRepo.On("GetByID", s.ctx, s.owner, settingsID).Return(&models.FeeSettings{ID: settingsID, OwnerID: s.owner}, nil)
	s.orderRepo.On("ListPage", s.ctx, s.owner, mock.MatchedBy(func(f models.OrderFilter) bool {
		return f.SettingsID != nil && *f.SettingsID == settingsID
	}), repositories.DefaultPageSize, 0).Return([]models.Order{}, nil)

	report, err := s.service.Report(s.ctx, s.owner, ProfitQuery{Level: models.GroupByVariation, SettingsID: &settingsID})
	s.Require().NoError(err)
	s.Empty(report.Groups)
	s.True(report.Totals.Profit.IsZero())
}

func (s *ProfitServiceTestSuite) TestReport_UnknownSettings() {
	settingsID := uuid.New()
	s.feeRepo.On("GetByID", s.ctx, s.owner, settingsID).Return(nil, repositories.ErrNotFound)

	_, err := s.service.Report(s.ctx, s.owner, ProfitQuery{SettingsID: &settingsID})
	s.ErrorIs(err, ErrNotFound)
}

func (s *ProfitServiceTestSuite) TestReport_NoDefaultUsesZeroSettings() {
	s.feeRepo.On("GetDefault", s.ctx, s.owner).Return(nil, repositories.ErrNotFound)
	s.orderRepo.On("ListPage", s.ctx, s.owner, models.OrderFilter{}, repositories.DefaultPageSize, 0).
		Return([]models.Order{testOrder("A", 2, "100", "10")}, nil)

	report, err := s.service.Report(s.ctx, s.owner, ProfitQuery{Level: models.GroupByProduct})
	s.Require().NoError(err)
	s.Nil(report.SettingsID)
	s.True(decimal.NewFromInt(80).Equal(report.Totals.Profit))
}

func (s *ProfitServiceTestSuite) TestReport_PageErrorStopsTheReport() {
	s.feeRepo.On("GetDefault", s.ctx, s.owner).Return(&models.FeeSettings{}, nil)
	s.orderRepo.On("ListPage", s.ctx, s.owner, models.OrderFilter{}, repositories.DefaultPageSize, 0).
		Return(nil, errors.New("connection reset"))

	_, err := s.service.Report(s.ctx, s.owner, ProfitQuery{})
	s.Require().Error(err)
	s.Contains(err.Error(), "connection reset")
}

func (s *ProfitServiceTestSuite) TestUpdateUnitCost() {
	cost := decimal.RequireFromString("12.50")
	s.orderRepo.On("UpdateUnitCostBySKU", s.ctx, s.owner, "CAM-01", cost).Return(3, nil)

	n, err := s.service.UpdateUnitCost(s.ctx, s.owner, " CAM-01 ", cost)
	s.Require().NoError(err)
	s.Equal(3, n)
}

func (s *ProfitServiceTestSuite) TestUpdateUnitCost_Invalid() {
	_, err := s.service.UpdateUnitCost(s.ctx, s.owner, "", decimal.NewFromInt(1))
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.service.UpdateUnitCost(s.ctx, s.owner, "CAM-01", decimal.NewFromInt(-1))
	s.ErrorIs(err, ErrInvalidInput)
}

func TestProfitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfitServiceTestSuite))
}
