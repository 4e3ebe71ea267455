package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettlementRow is one accepted line of a marketplace income report: the
// per-order breakdown of price, discounts, shipping, fees and payout.
type SettlementRow struct {
	ID              uuid.UUID         `json:"id" db:"id"`
	OwnerID         uuid.UUID         `json:"owner_id" db:"owner_id"`
	BatchID         uuid.UUID         `json:"batch_id" db:"batch_id"`
	OrderID         string            `json:"order_id" db:"order_id"`
	RefundID        *string           `json:"refund_id" db:"refund_id"`
	RecordType      string            `json:"record_type" db:"record_type"`
	BuyerUsername   *string           `json:"buyer_username" db:"buyer_username"`
	ProductName     *string           `json:"product_name" db:"product_name"`
	SKU             *string           `json:"sku" db:"sku"`
	PaymentMethod   *string           `json:"payment_method" db:"payment_method"`
	ShippingCarrier *string           `json:"shipping_carrier" db:"shipping_carrier"`
	OrderCreatedAt  *time.Time        `json:"order_created_at" db:"order_created_at"`
	PayoutDate      *time.Time        `json:"payout_date" db:"payout_date"`
	Amounts         SettlementAmounts `json:"amounts" db:"amounts"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
}

// SettlementAmounts carries the monetary columns of a settlement line. Values
// keep the sign found in the report.
type SettlementAmounts struct {
	Quantity                decimal.Decimal `json:"quantity"`
	ProductPrice            decimal.Decimal `json:"product_price"`
	SellerProductDiscount   decimal.Decimal `json:"seller_product_discount"`
	PlatformProductRebate   decimal.Decimal `json:"platform_product_rebate"`
	BundleDiscount          decimal.Decimal `json:"bundle_discount"`
	RefundAmount            decimal.Decimal `json:"refund_amount"`
	SellerVoucher           decimal.Decimal `json:"seller_voucher"`
	PlatformVoucher         decimal.Decimal `json:"platform_voucher"`
	SellerCoinCashback      decimal.Decimal `json:"seller_coin_cashback"`
	PlatformCoins           decimal.Decimal `json:"platform_coins"`
	PromotionRebate         decimal.Decimal `json:"promotion_rebate"`
	BuyerPaidShipping       decimal.Decimal `json:"buyer_paid_shipping"`
	ShippingRebate          decimal.Decimal `json:"shipping_rebate"`
	SellerShippingDiscount  decimal.Decimal `json:"seller_shipping_discount"`
	ActualShippingFee       decimal.Decimal `json:"actual_shipping_fee"`
	DeductedShippingFee     decimal.Decimal `json:"deducted_shipping_fee"`
	ReverseShippingFee      decimal.Decimal `json:"reverse_shipping_fee"`
	ReturnToSellerFee       decimal.Decimal `json:"return_to_seller_fee"`
	CommissionFee           decimal.Decimal `json:"commission_fee"`
	ServiceFee              decimal.Decimal `json:"service_fee"`
	TransactionFee          decimal.Decimal `json:"transaction_fee"`
	FixedFee                decimal.Decimal `json:"fixed_fee"`
	ProcessingFee           decimal.Decimal `json:"processing_fee"`
	AffiliateCommission     decimal.Decimal `json:"affiliate_commission"`
	CampaignFee             decimal.Decimal `json:"campaign_fee"`
	InstallmentFee          decimal.Decimal `json:"installment_fee"`
	CreditCardFee           decimal.Decimal `json:"credit_card_fee"`
	PixFee                  decimal.Decimal `json:"pix_fee"`
	OtherFees               decimal.Decimal `json:"other_fees"`
	TotalFees               decimal.Decimal `json:"total_fees"`
	WithholdingTax          decimal.Decimal `json:"withholding_tax"`
	SalesTax                decimal.Decimal `json:"sales_tax"`
	AdjustmentAmount        decimal.Decimal `json:"adjustment_amount"`
	CompensationAmount      decimal.Decimal `json:"compensation_amount"`
	OrderTotal              decimal.Decimal `json:"order_total"`
	BuyerPayment            decimal.Decimal `json:"buyer_payment"`
	PayoutAmount            decimal.Decimal `json:"payout_amount"`
	AdvancePaymentDeduction decimal.Decimal `json:"advance_payment_deduction"`
}

// SettlementFilter narrows a settlement listing by payout date.
type SettlementFilter struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}
