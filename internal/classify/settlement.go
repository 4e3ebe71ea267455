package classify

import (
	"fmt"
	"time"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/columns"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/normalize"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettlementDecision is the verdict on one settlement report row.
type SettlementDecision struct {
	Accepted bool
	Reason   string
	Detail   string
	Row      models.SettlementRow
}

type amountSetter func(*models.SettlementAmounts, decimal.Decimal)

// settlementAmountFields pairs each monetary column key with its struct field.
var settlementAmountFields = []struct {
	key string
	set amountSetter
}{
	{"quantity", func(a *models.SettlementAmounts, d decimal.Decimal) { a.Quantity = d }},
	{"product_price", func(a *models.SettlementAmounts, d decimal.Decimal) { a.ProductPrice = d }},
	{"seller_product_discount", func(a *models.SettlementAmounts, d decimal.Decimal) { a.SellerProductDiscount = d }},
	{"platform_product_rebate", func(a *models.SettlementAmounts, d decimal.Decimal) { a.PlatformProductRebate = d }},
	{"bundle_discount", func(a *models.SettlementAmounts, d decimal.Decimal) { a.BundleDiscount = d }},
	{"refund_amount", func(a *models.SettlementAmounts, d decimal.Decimal) { a.RefundAmount = d }},
	{"seller_voucher", func(a *models.SettlementAmounts, d decimal.Decimal) { a.SellerVoucher = d }},
	{"platform_voucher", func(a *models.SettlementAmounts, d decimal.Decimal) { a.PlatformVoucher = d }},
	{"seller_coin_cashback", func(a *models.SettlementAmounts, d decimal.Decimal) { a.SellerCoinCashback = d }},
	{"platform_coins", func(a *models.SettlementAmounts, d decimal.Decimal) { a.PlatformCoins = d }},
	{"promotion_rebate", func(a *models.SettlementAmounts, d decimal.Decimal) { a.PromotionRebate = d }},
	{"buyer_paid_shipping", func(a *models.SettlementAmounts, d decimal.Decimal) { a.BuyerPaidShipping = d }},
	{"shipping_rebate", func(a *models.SettlementAmounts, d decimal.Decimal) { a.ShippingRebate = d }},
	{"seller_shipping_discount", func(a *models.SettlementAmounts, d decimal.Decimal) { a.SellerShippingDiscount = d }},
	{"actual_shipping_fee", func(a *models.SettlementAmounts, d decimal.Decimal) { a.ActualShippingFee = d }},
	{"deducted_shipping_fee", func(a *models.SettlementAmounts, d decimal.Decimal) { a.DeductedShippingFee = d }},
	{"reverse_shipping_fee", func(a *models.SettlementAmounts, d decimal.Decimal) { a.ReverseShippingFee = d }},
	{"return_to_seller_fee", func(a *models.SettlementAmounts, d decimal.Decimal) { a.ReturnToSellerFee = d }},
	{"commission_fee", func(a *models.SettlementAmounts, d decimal.Decimal) { a.CommissionFee = d }},
	{"service_fee", func(a *models.SettlementAmounts, d decimal.Decimal) { a.ServiceFee = d }},
	{"transaction_fee", func(a *models.SettlementAmounts, d decimal.Decimal) { a.TransactionFee = d }},
	{"fixed_fee", func(a *models.SettlementAmounts, d decimal.Decimal) { a.FixedFee = d }},
	{"processing_fee", func(a *models.SettlementAmounts, d decimal.Decimal) { a.ProcessingFee = d }},
	{"affiliate_commission", func(a *models.SettlementAmounts, d decimal.Decimal) { a.AffiliateCommission = d }},
	{"campaign_fee", func(a *models.SettlementAmounts, d decimal.Decimal) { a.CampaignFee = d }},
	{"installment_fee", func(a *models.SettlementAmounts, d decimal.Decimal) { a.InstallmentFee = d }},
	{"credit_card_fee", func(a *models.SettlementAmounts, d decimal.Decimal) { a.CreditCardFee = d }},
	{"pix_fee", func(a *models.SettlementAmounts, d decimal.Decimal) { a.PixFee = d }},
	{"other_fees", func(a *models.SettlementAmounts, d decimal.Decimal) { a.OtherFees = d }},
	{"total_fees", func(a *models.SettlementAmounts, d decimal.Decimal) { a.TotalFees = d }},
	{"withholding_tax", func(a *models.SettlementAmounts, d decimal.Decimal) { a.WithholdingTax = d }},
	{"sales_tax", func(a *models.SettlementAmounts, d decimal.Decimal) { a.SalesTax = d }},
	{"adjustment_amount", func(a *models.SettlementAmounts, d decimal.Decimal) { a.AdjustmentAmount = d }},
	{"compensation_amount", func(a *models.SettlementAmounts, d decimal.Decimal) { a.CompensationAmount = d }},
	{"order_total", func(a *models.SettlementAmounts, d decimal.Decimal) { a.OrderTotal = d }},
	{"buyer_payment", func(a *models.SettlementAmounts, d decimal.Decimal) { a.BuyerPayment = d }},
	{"payout_amount", func(a *models.SettlementAmounts, d decimal.Decimal) { a.PayoutAmount = d }},
	{"advance_payment_deduction", func(a *models.SettlementAmounts, d decimal.Decimal) { a.AdvancePaymentDeduction = d }},
}

// IsSaleOrderType reports whether a raw record type names a sale order once
// case and whitespace are normalized.
func IsSaleOrderType(recordType string) bool {
	_, ok := columns.SaleOrderRecordTypes[columns.Normalize(recordType)]
	return ok
}

// ClassifySettlement accepts a row only when it is a sale order line with a
// real order id. Checks run in a fixed order: repeated header row, record
// type, empty order id. Only the order id is compared against the column
// aliases, since record types such as "Ajuste" or "Taxas" share names with
// amount columns. Monetary values never cause a rejection.
func ClassifySettlement(b columns.Binding, row models.RawRow) SettlementDecision {
	orderID := b.String(row, columns.SettlementOrderID)
	recordType := b.String(row, columns.SettlementRecordType)
	table := b.Table()

	if table.LooksLikeHeader(orderID) {
		return SettlementDecision{Reason: ReasonHeaderRow, Detail: fmt.Sprintf("order id %q repeats a column header", orderID)}
	}
	if !IsSaleOrderType(recordType) {
		return SettlementDecision{Reason: ReasonInvalidRecordType, Detail: fmt.Sprintf("record type %q is not a sale order", recordType)}
	}
	if orderID == "" {
		return SettlementDecision{Reason: ReasonEmptyOrderID, Detail: "order id is empty"}
	}

	return SettlementDecision{Accepted: true, Row: buildSettlementRow(b, row, orderID, recordType)}
}

func buildSettlementRow(b columns.Binding, row models.RawRow, orderID, recordType string) models.SettlementRow {
	s := models.SettlementRow{
		ID:              uuid.New(),
		OrderID:         orderID,
		RecordType:      recordType,
		RefundID:        optionalText(b, row, columns.SettlementRefundID),
		BuyerUsername:   optionalText(b, row, columns.SettlementBuyerUsername),
		ProductName:     optionalText(b, row, columns.SettlementProductName),
		SKU:             optionalText(b, row, columns.SettlementSKU),
		PaymentMethod:   optionalText(b, row, columns.SettlementPaymentMethod),
		ShippingCarrier: optionalText(b, row, columns.SettlementShippingCarrier),
		OrderCreatedAt:  optionalDate(b, row, columns.SettlementOrderCreatedAt),
		PayoutDate:      optionalDate(b, row, columns.SettlementPayoutDate),
	}
	for _, f := range settlementAmountFields {
		v, _ := b.Get(row, f.key)
		f.set(&s.Amounts, normalize.Amount(v))
	}
	return s
}

// SettlementsFromRows classifies a whole settlement report.
func SettlementsFromRows(rows []models.RawRow) ([]models.SettlementRow, []SettlementDecision, models.ImportDiagnostics) {
	diag := NewDiagnostics()
	if len(rows) == 0 {
		return nil, nil, diag.Result()
	}

	binding := columns.Bind(columns.SettlementTable, rows[0].Headers())
	diag.Coverage(binding, rows[0])

	accepted := make([]models.SettlementRow, 0, len(rows))
	var rejected []SettlementDecision
	for _, row := range rows {
		d := ClassifySettlement(binding, row)
		diag.Observe(d.Accepted, d.Reason)
		if d.Accepted {
			accepted = append(accepted, d.Row)
			continue
		}
		rejected = append(rejected, d)
	}
	return accepted, rejected, diag.Result()
}

func optionalText(b columns.Binding, row models.RawRow, key string) *string {
	s := b.String(row, key)
	if s == "" {
		return nil
	}
	return &s
}

func optionalDate(b columns.Binding, row models.RawRow, key string) *time.Time {
	v, ok := b.Get(row, key)
	if !ok {
		return nil
	}
	d, ok := normalize.Date(v)
	if !ok {
		return nil
	}
	return &d
}

func magnitude(b columns.Binding, row models.RawRow, key string) decimal.Decimal {
	v, _ := b.Get(row, key)
	return normalize.Magnitude(v)
}
