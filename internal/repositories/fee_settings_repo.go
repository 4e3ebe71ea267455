package repositories

import (
	"context"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type FeeSettingsRepository interface {
	Create(ctx context.Context, s *models.FeeSettings) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.FeeSettings, error)
	GetDefault(ctx context.Context, ownerID uuid.UUID) (*models.FeeSettings, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*models.FeeSettings, error)
	Update(ctx context.Context, s *models.FeeSettings) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	SetDefault(ctx context.Context, ownerID, id uuid.UUID) error
}

type feeSettingsRepo struct {
	db DBTX
}

func NewFeeSettingsRepo(db DBTX) FeeSettingsRepository {
	return &feeSettingsRepo{db: db}
}

const feeSettingsColumns = `id, owner_id, name, commission_rate, affiliate_rate, per_item_fee, tax_rate, pre_tax_discount_rate, entry_invoice_percent, advance_payment_enabled, advance_payment_rate, ad_spend, is_default, created_at, updated_at`

const clearOtherDefaults = `UPDATE fee_settings SET is_default = FALSE, updated_at = NOW() WHERE owner_id = $1 AND id <> $2 AND is_default`

func (r *feeSettingsRepo) Create(ctx context.Context, s *models.FeeSettings) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	if s.IsDefault {
		if _, err := tx.Exec(ctx, clearOtherDefaults, s.OwnerID, s.ID); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO fee_settings (id, owner_id, name, commission_rate, affiliate_rate, per_item_fee, tax_rate, pre_tax_discount_rate, entry_invoice_percent, advance_payment_enabled, advance_payment_rate, ad_spend, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err = tx.QueryRow(ctx, query, s.ID, s.OwnerID, s.Name, s.CommissionRate, s.AffiliateRate, s.PerItemFee, s.TaxRate, s.PreTaxDiscountRate, s.EntryInvoicePercent, s.AdvancePaymentEnabled, s.AdvancePaymentRate, s.AdSpend, s.IsDefault).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *feeSettingsRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.FeeSettings, error) {
	query := `SELECT ` + feeSettingsColumns + ` FROM fee_settings WHERE owner_id = $1 AND id = $2`
	s, err := scanFeeSettings(r.db.QueryRow(ctx, query, ownerID, id))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

func (r *feeSettingsRepo) GetDefault(ctx context.Context, ownerID uuid.UUID) (*models.FeeSettings, error) {
	query := `SELECT ` + feeSettingsColumns + ` FROM fee_settings WHERE owner_id = $1 AND is_default LIMIT 1`
	s, err := scanFeeSettings(r.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

func (r *feeSettingsRepo) List(ctx context.Context, ownerID uuid.UUID) ([]*models.FeeSettings, error) {
	query := `SELECT ` + feeSettingsColumns + ` FROM fee_settings WHERE owner_id = $1 ORDER BY is_default DESC, name`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.FeeSettings{}
	for rows.Next() {
		s, err := scanFeeSettings(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *feeSettingsRepo) Update(ctx context.Context, s *models.FeeSettings) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	if s.IsDefault {
		if _, err := tx.Exec(ctx, clearOtherDefaults, s.OwnerID, s.ID); err != nil {
			return err
		}
	}

	query := `
		UPDATE fee_settings
		SET name = $1, commission_rate = $2, affiliate_rate = $3, per_item_fee = $4, tax_rate = $5, pre_tax_discount_rate = $6, entry_invoice_percent = $7, advance_payment_enabled = $8, advance_payment_rate = $9, ad_spend = $10, is_default = $11, updated_at = NOW()
		WHERE owner_id = $12 AND id = $13
	`
	tag, err := tx.Exec(ctx, query, s.Name, s.CommissionRate, s.AffiliateRate, s.PerItemFee, s.TaxRate, s.PreTaxDiscountRate, s.EntryInvoicePercent, s.AdvancePaymentEnabled, s.AdvancePaymentRate, s.AdSpend, s.IsDefault, s.OwnerID, s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}

// Delete removes the settings row; orders imported under it go with it.
func (r *feeSettingsRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM fee_settings WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetDefault makes id the only default of the owner.
func (r *feeSettingsRepo) SetDefault(ctx context.Context, ownerID, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	if _, err := tx.Exec(ctx, clearOtherDefaults, ownerID, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `UPDATE fee_settings SET is_default = TRUE, updated_at = NOW() WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}

func scanFeeSettings(row pgx.Row) (*models.FeeSettings, error) {
	s := &models.FeeSettings{}
	err := row.Scan(&s.ID, &s.OwnerID, &s.Name, &s.CommissionRate, &s.AffiliateRate, &s.PerItemFee, &s.TaxRate, &s.PreTaxDiscountRate, &s.EntryInvoicePercent, &s.AdvancePaymentEnabled, &s.AdvancePaymentRate, &s.AdSpend, &s.IsDefault, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}
