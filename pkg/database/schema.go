package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is satisfied by *pgxpool.Pool and pgxmock pools.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// schema is applied in order; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS fee_settings (
		id UUID PRIMARY KEY,
		owner_id UUID NOT NULL,
		name TEXT NOT NULL,
		commission_rate NUMERIC(10,6) NOT NULL DEFAULT 0,
		affiliate_rate NUMERIC(10,6) NOT NULL DEFAULT 0,
		per_item_fee NUMERIC(14,2) NOT NULL DEFAULT 0,
		tax_rate NUMERIC(10,6) NOT NULL DEFAULT 0,
		pre_tax_discount_rate NUMERIC(10,6),
		entry_invoice_percent NUMERIC(10,6) NOT NULL DEFAULT 0,
		advance_payment_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		advance_payment_rate NUMERIC(10,6) NOT NULL DEFAULT 0,
		ad_spend NUMERIC(14,2) NOT NULL DEFAULT 0,
		is_default BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS fee_settings_one_default ON fee_settings (owner_id) WHERE is_default`,
	`CREATE TABLE IF NOT EXISTS bank_transactions (
		id UUID PRIMARY KEY,
		owner_id UUID NOT NULL,
		batch_id UUID NOT NULL,
		date DATE NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		amount NUMERIC(14,2) NOT NULL CHECK (amount >= 0),
		direction TEXT NOT NULL CHECK (direction IN ('income', 'expense')),
		counterpart TEXT,
		balance NUMERIC(14,2),
		external_id TEXT,
		category TEXT,
		source TEXT NOT NULL,
		bank_profile TEXT NOT NULL DEFAULT 'generic',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS bank_transactions_owner_external ON bank_transactions (owner_id, external_id)`,
	`CREATE INDEX IF NOT EXISTS bank_transactions_owner_date ON bank_transactions (owner_id, date DESC)`,
	`CREATE TABLE IF NOT EXISTS settlements (
		id UUID PRIMARY KEY,
		owner_id UUID NOT NULL,
		batch_id UUID NOT NULL,
		order_id TEXT NOT NULL,
		refund_id TEXT,
		record_type TEXT NOT NULL,
		buyer_username TEXT,
		product_name TEXT,
		sku TEXT,
		payment_method TEXT,
		shipping_carrier TEXT,
		order_created_at DATE,
		payout_date DATE,
		amounts JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (owner_id, order_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		owner_id UUID NOT NULL,
		settings_id UUID REFERENCES fee_settings (id) ON DELETE CASCADE,
		order_id TEXT NOT NULL,
		sku TEXT NOT NULL DEFAULT '',
		product_name TEXT NOT NULL DEFAULT '',
		variation TEXT NOT NULL DEFAULT '',
		quantity INTEGER NOT NULL DEFAULT 1,
		gross_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		platform_discount NUMERIC(14,2) NOT NULL DEFAULT 0,
		seller_discount NUMERIC(14,2) NOT NULL DEFAULT 0,
		unit_cost NUMERIC(14,2) NOT NULL DEFAULT 0,
		order_date DATE NOT NULL,
		status TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (owner_id, order_id, sku, variation)
	)`,
	`CREATE INDEX IF NOT EXISTS orders_owner_date ON orders (owner_id, order_date DESC)`,
	`CREATE INDEX IF NOT EXISTS orders_owner_sku ON orders (owner_id, sku)`,
}

// EnsureSchema creates the tables and indexes the repositories rely on.
func EnsureSchema(ctx context.Context, db Execer) error {
	for i, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
