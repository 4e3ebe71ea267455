package analytics

import (
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ApplyCascade fills the fee, tax and profit fields of one group. Each step
// only reads figures computed before it.
func ApplyCascade(g models.GroupedResult, s models.FeeSettings) models.GroupedResult {
	qty := decimal.NewFromInt(int64(g.Quantity))

	g.CommissionFee = g.Gross.Mul(s.CommissionRate)
	g.AffiliateFee = g.Gross.Mul(s.AffiliateRate)
	g.PerItemFee = qty.Mul(s.PerItemFee)
	g.Receivable = g.Gross.Sub(g.CommissionFee).Sub(g.AffiliateFee).Sub(g.PerItemFee)
	g.CostOfGoods = qty.Mul(g.AverageUnitCost)

	taxBase := g.Gross
	if discount := s.PreTaxDiscount(); discount.Sign() > 0 {
		taxBase = g.Gross.Sub(g.Gross.Mul(discount))
	}
	g.Tax = taxBase.Mul(s.TaxRate)

	g.EntryInvoiceCost = g.CostOfGoods.Mul(s.EntryInvoicePercent)
	g.Profit = g.Receivable.Sub(g.CostOfGoods).Sub(g.Tax).Sub(g.EntryInvoiceCost)
	g.ProfitPercent = percentOf(g.Profit, g.Receivable)
	return g
}

// BuildReport groups orders, runs the cascade on each group and totals the
// result. Ad spend is taken out once, from the total profit.
func BuildReport(orders []models.Order, level models.GroupLevel, s models.FeeSettings) models.ProfitReport {
	if level != models.GroupByVariation {
		level = models.GroupByProduct
	}

	grouped := GroupOrders(orders, level)
	report := models.ProfitReport{
		Level:  level,
		Groups: make([]models.GroupedResult, 0, len(grouped)),
	}
	if s.ID != uuid.Nil {
		id := s.ID
		report.SettingsID = &id
	}

	t := models.ProfitTotals{
		Gross:            decimal.Zero,
		PlatformDiscount: decimal.Zero,
		SellerDiscount:   decimal.Zero,
		CommissionFee:    decimal.Zero,
		AffiliateFee:     decimal.Zero,
		PerItemFee:       decimal.Zero,
		Receivable:       decimal.Zero,
		CostOfGoods:      decimal.Zero,
		Tax:              decimal.Zero,
		EntryInvoiceCost: decimal.Zero,
		Profit:           decimal.Zero,
	}
	for _, g := range grouped {
		g = ApplyCascade(g, s)
		report.Groups = append(report.Groups, g)

		t.OrderCount += g.OrderCount
		t.Quantity += g.Quantity
		t.Gross = t.Gross.Add(g.Gross)
		t.PlatformDiscount = t.PlatformDiscount.Add(g.PlatformDiscount)
		t.SellerDiscount = t.SellerDiscount.Add(g.SellerDiscount)
		t.CommissionFee = t.CommissionFee.Add(g.CommissionFee)
		t.AffiliateFee = t.AffiliateFee.Add(g.AffiliateFee)
		t.PerItemFee = t.PerItemFee.Add(g.PerItemFee)
		t.Receivable = t.Receivable.Add(g.Receivable)
		t.CostOfGoods = t.CostOfGoods.Add(g.CostOfGoods)
		t.Tax = t.Tax.Add(g.Tax)
		t.EntryInvoiceCost = t.EntryInvoiceCost.Add(g.EntryInvoiceCost)
		t.Profit = t.Profit.Add(g.Profit)
	}

	t.AdSpend = s.AdSpend
	t.Profit = t.Profit.Sub(s.AdSpend)
	t.ProfitPercentAverage = percentOf(t.Profit, t.Receivable)
	report.Totals = t
	return report
}

func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.Sign() <= 0 {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}
