package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GroupLevel selects the grouping key of a profit report.
type GroupLevel string

const (
	GroupByProduct   GroupLevel = "product"
	GroupByVariation GroupLevel = "variation"
)

// GroupedResult holds the summed order figures of one product or
// product+variation and, after the fee cascade, its deductions and profit.
type GroupedResult struct {
	Key              string          `json:"key"`
	SKU              string          `json:"sku"`
	ProductName      string          `json:"product_name"`
	Variation        string          `json:"variation,omitempty"`
	OrderCount       int             `json:"order_count"`
	Quantity         int             `json:"quantity"`
	Gross            decimal.Decimal `json:"gross"`
	PlatformDiscount decimal.Decimal `json:"platform_discount"`
	SellerDiscount   decimal.Decimal `json:"seller_discount"`
	AverageUnitCost  decimal.Decimal `json:"average_unit_cost"`

	CommissionFee    decimal.Decimal `json:"commission_fee"`
	AffiliateFee     decimal.Decimal `json:"affiliate_fee"`
	PerItemFee       decimal.Decimal `json:"per_item_fee"`
	Receivable       decimal.Decimal `json:"receivable"`
	CostOfGoods      decimal.Decimal `json:"cost_of_goods"`
	Tax              decimal.Decimal `json:"tax"`
	EntryInvoiceCost decimal.Decimal `json:"entry_invoice_cost"`
	Profit           decimal.Decimal `json:"profit"`
	ProfitPercent    decimal.Decimal `json:"profit_percent"`
}

// ProfitTotals sums every additive group field. Profit already has AdSpend
// taken out.
type ProfitTotals struct {
	OrderCount           int             `json:"order_count"`
	Quantity             int             `json:"quantity"`
	Gross                decimal.Decimal `json:"gross"`
	PlatformDiscount     decimal.Decimal `json:"platform_discount"`
	SellerDiscount       decimal.Decimal `json:"seller_discount"`
	CommissionFee        decimal.Decimal `json:"commission_fee"`
	AffiliateFee         decimal.Decimal `json:"affiliate_fee"`
	PerItemFee           decimal.Decimal `json:"per_item_fee"`
	Receivable           decimal.Decimal `json:"receivable"`
	CostOfGoods          decimal.Decimal `json:"cost_of_goods"`
	Tax                  decimal.Decimal `json:"tax"`
	EntryInvoiceCost     decimal.Decimal `json:"entry_invoice_cost"`
	AdSpend              decimal.Decimal `json:"ad_spend"`
	Profit               decimal.Decimal `json:"profit"`
	ProfitPercentAverage decimal.Decimal `json:"profit_percent_average"`
}

// ProfitReport is the rollup served to the dashboard.
type ProfitReport struct {
	Level      GroupLevel      `json:"level"`
	SettingsID *uuid.UUID      `json:"settings_id,omitempty"`
	Groups     []GroupedResult `json:"groups"`
	Totals     ProfitTotals    `json:"totals"`
}
