package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeSettings is a named set of marketplace fee parameters. Rates are
// fractions (0.14 for 14%). At most one row per owner has IsDefault set.
type FeeSettings struct {
	ID                    uuid.UUID           `json:"id" db:"id"`
	OwnerID               uuid.UUID           `json:"owner_id" db:"owner_id"`
	Name                  string              `json:"name" db:"name"`
	CommissionRate        decimal.Decimal     `json:"commission_rate" db:"commission_rate"`
	AffiliateRate         decimal.Decimal     `json:"affiliate_rate" db:"affiliate_rate"`
	PerItemFee            decimal.Decimal     `json:"per_item_fee" db:"per_item_fee"`
	TaxRate               decimal.Decimal     `json:"tax_rate" db:"tax_rate"`
	PreTaxDiscountRate    decimal.NullDecimal `json:"pre_tax_discount_rate" db:"pre_tax_discount_rate"`
	EntryInvoicePercent   decimal.Decimal     `json:"entry_invoice_percent" db:"entry_invoice_percent"` // fraction of cost of goods
	AdvancePaymentEnabled bool                `json:"advance_payment_enabled" db:"advance_payment_enabled"`
	AdvancePaymentRate    decimal.Decimal     `json:"advance_payment_rate" db:"advance_payment_rate"`
	AdSpend               decimal.Decimal     `json:"ad_spend" db:"ad_spend"`
	IsDefault             bool                `json:"is_default" db:"is_default"`
	CreatedAt             time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at" db:"updated_at"`
}

// PreTaxDiscount returns the pre-tax discount rate, zero when unset.
func (s *FeeSettings) PreTaxDiscount() decimal.Decimal {
	if !s.PreTaxDiscountRate.Valid {
		return decimal.Zero
	}
	return s.PreTaxDiscountRate.Decimal
}
