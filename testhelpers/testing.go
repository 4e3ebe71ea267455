package testhelpers

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"
	"github.com/Thur2312/remix-of-finance-manager-sub000/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// TestDB holds the database connection for testing
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func()
}

// SetupTestDB connects to TEST_DATABASE_URL and makes sure the schema exists.
// The test is skipped when the variable is unset.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := database.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return &TestDB{
		Pool:    pool,
		Cleanup: pool.Close,
	}
}

// TruncateOwner removes every row of one owner.
func TruncateOwner(t *testing.T, db *TestDB, ownerID uuid.UUID) {
	t.Helper()

	for _, table := range []string{"orders", "settlements", "bank_transactions", "fee_settings"} {
		if _, err := db.Pool.Exec(context.Background(), "DELETE FROM "+table+" WHERE owner_id = $1", ownerID); err != nil {
			t.Fatalf("Failed to clean %s: %v", table, err)
		}
	}
}

// SetupTestFeeSettings inserts a default settings row for the owner.
func SetupTestFeeSettings(t *testing.T, db *TestDB, ownerID uuid.UUID) *models.FeeSettings {
	t.Helper()

	settings := &models.FeeSettings{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Name:           "Test settings",
		CommissionRate: decimal.RequireFromString("0.14"),
		PerItemFee:     decimal.RequireFromString("4"),
		TaxRate:        decimal.RequireFromString("0.06"),
		IsDefault:      true,
	}

	query := `
		INSERT INTO fee_settings (id, owner_id, name, commission_rate, per_item_fee, tax_rate, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := db.Pool.Exec(context.Background(), query,
		settings.ID, settings.OwnerID, settings.Name, settings.CommissionRate,
		settings.PerItemFee, settings.TaxRate, settings.IsDefault)
	if err != nil {
		t.Fatalf("Failed to create test fee settings: %v", err)
	}

	return settings
}

// SetupTestOrders inserts count orders of one SKU, one per day from date.
func SetupTestOrders(t *testing.T, db *TestDB, ownerID uuid.UUID, settingsID *uuid.UUID, sku string, count int, date time.Time) {
	t.Helper()

	query := `
		INSERT INTO orders (id, owner_id, settings_id, order_id, sku, product_name, variation, quantity, gross_amount, order_date)
		VALUES ($1, $2, $3, $4, $5, $6, '', 1, $7, $8)
	`
	for i := 0; i < count; i++ {
		_, err := db.Pool.Exec(context.Background(), query,
			uuid.New(), ownerID, settingsID, uuid.NewString(), sku, sku, decimal.NewFromInt(10), date.AddDate(0, 0, i))
		if err != nil {
			t.Fatalf("Failed to create test order: %v", err)
		}
	}
}
