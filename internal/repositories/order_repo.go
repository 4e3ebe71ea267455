package repositories

import (
	"context"
	"fmt"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	UpsertBatch(ctx context.Context, orders []models.Order) (int, error)
	ListPage(ctx context.Context, ownerID uuid.UUID, filter models.OrderFilter, limit, offset int) ([]models.Order, error)
	UpdateUnitCostBySKU(ctx context.Context, ownerID uuid.UUID, sku string, cost decimal.Decimal) (int, error)
}

type orderRepo struct {
	db DBTX
}

func NewOrderRepo(db DBTX) OrderRepository {
	return &orderRepo{db: db}
}

const orderColumns = `id, owner_id, settings_id, order_id, sku, product_name, variation, quantity, gross_amount, platform_discount, seller_discount, unit_cost, order_date, status, created_at, updated_at`

// UpsertBatch stores imported orders keyed by order id, SKU and variation.
// A re-import refreshes the sale figures but keeps a unit cost the seller
// already typed in when the file carries none.
func (r *orderRepo) UpsertBatch(ctx context.Context, orders []models.Order) (int, error) {
	if len(orders) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer rollback(ctx, tx)

	query := `
		INSERT INTO orders (id, owner_id, settings_id, order_id, sku, product_name, variation, quantity, gross_amount, platform_discount, seller_discount, unit_cost, order_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		ON CONFLICT (owner_id, order_id, sku, variation) DO UPDATE SET
			settings_id = EXCLUDED.settings_id,
			product_name = EXCLUDED.product_name,
			quantity = EXCLUDED.quantity,
			gross_amount = EXCLUDED.gross_amount,
			platform_discount = EXCLUDED.platform_discount,
			seller_discount = EXCLUDED.seller_discount,
			unit_cost = CASE WHEN EXCLUDED.unit_cost > 0 THEN EXCLUDED.unit_cost ELSE orders.unit_cost END,
			order_date = EXCLUDED.order_date,
			status = EXCLUDED.status,
			updated_at = NOW()
	`
	written := 0
	for _, o := range orders {
		tag, err := tx.Exec(ctx, query, o.ID, o.OwnerID, o.SettingsID, o.OrderID, o.SKU, o.ProductName, o.Variation, o.Quantity, o.GrossAmount, o.PlatformDiscount, o.SellerDiscount, o.UnitCost, o.OrderDate, o.Status)
		if err != nil {
			return 0, fmt.Errorf("upsert order %s: %w", o.OrderID, err)
		}
		written += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return written, nil
}

func (r *orderRepo) ListPage(ctx context.Context, ownerID uuid.UUID, filter models.OrderFilter, limit, offset int) ([]models.Order, error) {
	where := ` WHERE owner_id = $1`
	args := []any{ownerID}

	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(` AND order_date >= $%d`, len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(` AND order_date <= $%d`, len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if filter.SettingsID != nil {
		args = append(args, *filter.SettingsID)
		where += fmt.Sprintf(` AND settings_id = $%d`, len(args))
	}

	query := `SELECT ` + orderColumns + ` FROM orders` + where +
		fmt.Sprintf(` ORDER BY order_date DESC, id LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// UpdateUnitCostBySKU sets the cost of every order of the owner with that SKU
// and reports how many were touched.
func (r *orderRepo) UpdateUnitCostBySKU(ctx context.Context, ownerID uuid.UUID, sku string, cost decimal.Decimal) (int, error) {
	query := `UPDATE orders SET unit_cost = $1, updated_at = NOW() WHERE owner_id = $2 AND sku = $3`
	tag, err := r.db.Exec(ctx, query, cost, ownerID, sku)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	o := &models.Order{}
	err := row.Scan(&o.ID, &o.OwnerID, &o.SettingsID, &o.OrderID, &o.SKU, &o.ProductName, &o.Variation, &o.Quantity, &o.GrossAmount, &o.PlatformDiscount, &o.SellerDiscount, &o.UnitCost, &o.OrderDate, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}
