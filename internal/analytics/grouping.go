// Package analytics rolls orders up into per-product figures and runs the
// marketplace fee cascade over them.
package analytics

import (
	"sort"
	"strings"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"github.com/shopspring/decimal"
)

// GroupKey is the grouping key of one order: the SKU, else the product name,
// followed by "|variation" at the variation level.
func GroupKey(o models.Order, level models.GroupLevel) string {
	key := strings.TrimSpace(o.SKU)
	if key == "" {
		key = strings.TrimSpace(o.ProductName)
	}
	if level == models.GroupByVariation {
		key += "|" + strings.TrimSpace(o.Variation)
	}
	return key
}

type accumulator struct {
	result    models.GroupedResult
	costSum   decimal.Decimal
	costCount int64
}

// GroupOrders sums orders per key. The average unit cost only looks at
// orders whose cost is above zero, so uncosted orders do not drag it down.
// Groups come back by gross descending, then key ascending.
func GroupOrders(orders []models.Order, level models.GroupLevel) []models.GroupedResult {
	byKey := make(map[string]*accumulator)
	for _, o := range orders {
		key := GroupKey(o, level)
		acc, ok := byKey[key]
		if !ok {
			acc = &accumulator{result: models.GroupedResult{
				Key:              key,
				SKU:              o.SKU,
				ProductName:      o.ProductName,
				Gross:            decimal.Zero,
				PlatformDiscount: decimal.Zero,
				SellerDiscount:   decimal.Zero,
				AverageUnitCost:  decimal.Zero,
			}}
			if level == models.GroupByVariation {
				acc.result.Variation = o.Variation
			}
			byKey[key] = acc
		}

		r := &acc.result
		if r.ProductName == "" {
			r.ProductName = o.ProductName
		}
		r.OrderCount++
		r.Quantity += o.Quantity
		r.Gross = r.Gross.Add(o.GrossAmount)
		r.PlatformDiscount = r.PlatformDiscount.Add(o.PlatformDiscount)
		r.SellerDiscount = r.SellerDiscount.Add(o.SellerDiscount)
		if o.UnitCost.Sign() > 0 {
			acc.costSum = acc.costSum.Add(o.UnitCost)
			acc.costCount++
		}
	}

	groups := make([]models.GroupedResult, 0, len(byKey))
	for _, acc := range byKey {
		if acc.costCount > 0 {
			acc.result.AverageUnitCost = acc.costSum.Div(decimal.NewFromInt(acc.costCount))
		}
		groups = append(groups, acc.result)
	}

	sort.Slice(groups, func(i, j int) bool {
		if c := groups[i].Gross.Cmp(groups[j].Gross); c != 0 {
			return c > 0
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}
