package classify

import (
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/columns"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/normalize"

	"github.com/google/uuid"
)

// OrdersFromRows builds canonical orders from a marketplace order export.
// Rows are rejected for a repeated header, an empty order id, no product
// key, an unusable order date or a second line with the same order id, SKU
// and variation, which would overwrite the first on upsert. Quantity
// defaults to 1.
func OrdersFromRows(rows []models.RawRow) ([]models.Order, models.ImportDiagnostics) {
	diag := NewDiagnostics()
	if len(rows) == 0 {
		return nil, diag.Result()
	}

	binding := columns.Bind(columns.OrderTable, rows[0].Headers())
	diag.Coverage(binding, rows[0])

	orders := make([]models.Order, 0, len(rows))
	seen := make(map[orderLineKey]struct{}, len(rows))
	for _, row := range rows {
		order, reason := buildOrder(binding, row)
		if reason != "" {
			diag.Reject(reason)
			continue
		}
		key := orderLineKey{orderID: order.OrderID, sku: order.SKU, variation: order.Variation}
		if _, dup := seen[key]; dup {
			diag.Reject(ReasonDuplicateLine)
			continue
		}
		seen[key] = struct{}{}
		orders = append(orders, order)
		diag.Accept()
	}
	return orders, diag.Result()
}

// orderLineKey mirrors the unique key of the orders table.
type orderLineKey struct {
	orderID, sku, variation string
}

func buildOrder(b columns.Binding, row models.RawRow) (models.Order, string) {
	orderID := b.String(row, columns.OrderID)
	if columns.OrderTable.LooksLikeHeader(orderID) {
		return models.Order{}, ReasonHeaderRow
	}
	if orderID == "" {
		return models.Order{}, ReasonEmptyOrderID
	}

	sku := b.String(row, columns.OrderSKU)
	name := b.String(row, columns.OrderProductName)
	if sku == "" && name == "" {
		return models.Order{}, ReasonEmptyProduct
	}

	rawDate, _ := b.Get(row, columns.OrderDate)
	date, ok := normalize.Date(rawDate)
	if !ok {
		return models.Order{}, ReasonInvalidDate
	}

	quantity := 1
	if v, ok := b.Get(row, columns.OrderQuantity); ok {
		if q := normalize.Amount(v).IntPart(); q > 0 {
			quantity = int(q)
		}
	}

	order := models.Order{
		ID:          uuid.New(),
		OrderID:     orderID,
		SKU:         sku,
		ProductName: name,
		Variation:   b.String(row, columns.OrderVariation),
		Quantity:    quantity,
		OrderDate:   date,
		Status:      b.String(row, columns.OrderStatus),
	}
	order.GrossAmount = magnitude(b, row, columns.OrderGross)
	order.PlatformDiscount = magnitude(b, row, columns.OrderPlatformDiscount)
	order.SellerDiscount = magnitude(b, row, columns.OrderSellerDiscount)
	order.UnitCost = magnitude(b, row, columns.OrderUnitCost)
	return order, ""
}
