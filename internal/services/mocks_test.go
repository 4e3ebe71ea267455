package services

import (
	"context"
	"time"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockBankTransactionRepo struct {
	mock.Mock
}

func (m *MockBankTransactionRepo) InsertBatch(ctx context.Context, txs []models.BankTransaction) (int, error) {
	args := m.Called(ctx, txs)
	return args.Int(0), args.Error(1)
}

func (m *MockBankTransactionRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.BankTransaction, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BankTransaction), args.Error(1)
}

func (m *MockBankTransactionRepo) ListPage(ctx context.Context, ownerID uuid.UUID, filter models.BankTransactionFilter, limit, offset int) ([]models.BankTransaction, error) {
	args := m.Called(ctx, ownerID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BankTransaction), args.Error(1)
}

func (m *MockBankTransactionRepo) SetCategory(ctx context.Context, ownerID, id uuid.UUID, category *string) error {
	args := m.Called(ctx, ownerID, id, category)
	return args.Error(0)
}

func (m *MockBankTransactionRepo) Summary(ctx context.Context, ownerID uuid.UUID, filter models.BankTransactionFilter) (*models.TransactionSummary, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionSummary), args.Error(1)
}

type MockSettlementRepo struct {
	mock.Mock
}

func (m *MockSettlementRepo) UpsertBatch(ctx context.Context, rows []models.SettlementRow) (int, error) {
	args := m.Called(ctx, rows)
	return args.Int(0), args.Error(1)
}

func (m *MockSettlementRepo) ListPage(ctx context.Context, ownerID uuid.UUID, filter models.SettlementFilter, limit, offset int) ([]models.SettlementRow, error) {
	args := m.Called(ctx, ownerID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SettlementRow), args.Error(1)
}

type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) UpsertBatch(ctx context.Context, orders []models.Order) (int, error) {
	args := m.Called(ctx, orders)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepo) ListPage(ctx context.Context, ownerID uuid.UUID, filter models.OrderFilter, limit, offset int) ([]models.Order, error) {
	args := m.Called(ctx, ownerID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepo) UpdateUnitCostBySKU(ctx context.Context, ownerID uuid.UUID, sku string, cost decimal.Decimal) (int, error) {
	args := m.Called(ctx, ownerID, sku, cost)
	return args.Int(0), args.Error(1)
}

type MockFeeSettingsRepo struct {
	mock.Mock
}

func (m *MockFeeSettingsRepo) Create(ctx context.Context, s *models.FeeSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockFeeSettingsRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.FeeSettings, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FeeSettings), args.Error(1)
}

func (m *MockFeeSettingsRepo) GetDefault(ctx context.Context, ownerID uuid.UUID) (*models.FeeSettings, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FeeSettings), args.Error(1)
}

func (m *MockFeeSettingsRepo) List(ctx context.Context, ownerID uuid.UUID) ([]*models.FeeSettings, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FeeSettings), args.Error(1)
}

func (m *MockFeeSettingsRepo) Update(ctx context.Context, s *models.FeeSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockFeeSettingsRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockFeeSettingsRepo) SetDefault(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) SetDiagnostics(ctx context.Context, ownerID uuid.UUID, result *models.ImportResult) error {
	args := m.Called(ctx, ownerID, result)
	return args.Error(0)
}

func (m *MockCacheService) GetLatestDiagnostics(ctx context.Context, ownerID uuid.UUID) (*models.ImportResult, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ImportResult), args.Error(1)
}

func (m *MockCacheService) InvalidateOwner(ctx context.Context, ownerID uuid.UUID) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) EnsureBucket(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStorageService) Archive(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func (m *MockStorageService) List(ctx context.Context, prefix string) ([]StoredObject, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]StoredObject), args.Error(1)
}

func (m *MockStorageService) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStorageService) Move(ctx context.Context, src, dst string) error {
	args := m.Called(ctx, src, dst)
	return args.Error(0)
}

func (m *MockStorageService) RemoveOlderThan(ctx context.Context, prefix string, age time.Duration) (int, error) {
	args := m.Called(ctx, prefix, age)
	return args.Int(0), args.Error(1)
}
