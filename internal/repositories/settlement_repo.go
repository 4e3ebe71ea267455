package repositories

import (
	"context"
	"fmt"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SettlementRepository interface {
	UpsertBatch(ctx context.Context, rows []models.SettlementRow) (int, error)
	ListPage(ctx context.Context, ownerID uuid.UUID, filter models.SettlementFilter, limit, offset int) ([]models.SettlementRow, error)
}

type settlementRepo struct {
	db DBTX
}

func NewSettlementRepo(db DBTX) SettlementRepository {
	return &settlementRepo{db: db}
}

const settlementColumns = `id, owner_id, batch_id, order_id, refund_id, record_type, buyer_username, product_name, sku, payment_method, shipping_carrier, order_created_at, payout_date, amounts, created_at`

// UpsertBatch stores accepted settlement lines. A second report for the same
// order replaces the amounts of the first.
func (r *settlementRepo) UpsertBatch(ctx context.Context, rows []models.SettlementRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer rollback(ctx, tx)

	query := `
		INSERT INTO settlements (id, owner_id, batch_id, order_id, refund_id, record_type, buyer_username, product_name, sku, payment_method, shipping_carrier, order_created_at, payout_date, amounts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		ON CONFLICT (owner_id, order_id) DO UPDATE SET
			batch_id = EXCLUDED.batch_id,
			refund_id = EXCLUDED.refund_id,
			record_type = EXCLUDED.record_type,
			buyer_username = EXCLUDED.buyer_username,
			product_name = EXCLUDED.product_name,
			sku = EXCLUDED.sku,
			payment_method = EXCLUDED.payment_method,
			shipping_carrier = EXCLUDED.shipping_carrier,
			order_created_at = EXCLUDED.order_created_at,
			payout_date = EXCLUDED.payout_date,
			amounts = EXCLUDED.amounts
	`
	written := 0
	for _, s := range rows {
		tag, err := tx.Exec(ctx, query, s.ID, s.OwnerID, s.BatchID, s.OrderID, s.RefundID, s.RecordType, s.BuyerUsername, s.ProductName, s.SKU, s.PaymentMethod, s.ShippingCarrier, s.OrderCreatedAt, s.PayoutDate, s.Amounts)
		if err != nil {
			return 0, fmt.Errorf("upsert settlement %s: %w", s.OrderID, err)
		}
		written += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return written, nil
}

func (r *settlementRepo) ListPage(ctx context.Context, ownerID uuid.UUID, filter models.SettlementFilter, limit, offset int) ([]models.SettlementRow, error) {
	where := ` WHERE owner_id = $1`
	args := []any{ownerID}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(` AND payout_date >= $%d`, len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(` AND payout_date <= $%d`, len(args))
	}

	query := `SELECT ` + settlementColumns + ` FROM settlements` + where +
		fmt.Sprintf(` ORDER BY payout_date DESC NULLS LAST, order_id LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.SettlementRow{}
	for rows.Next() {
		s, err := scanSettlement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func scanSettlement(row pgx.Row) (*models.SettlementRow, error) {
	s := &models.SettlementRow{}
	err := row.Scan(&s.ID, &s.OwnerID, &s.BatchID, &s.OrderID, &s.RefundID, &s.RecordType, &s.BuyerUsername, &s.ProductName, &s.SKU, &s.PaymentMethod, &s.ShippingCarrier, &s.OrderCreatedAt, &s.PayoutDate, &s.Amounts, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}
