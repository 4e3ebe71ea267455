package classify

import (
	"testing"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/columns"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settlementHeaders = []string{"ID do pedido", "Tipo de registro", "Nome do produto", "Preço do produto", "Taxa de comissão", "Valor liberado", "Data de liberação"}

func settlementRow(values ...any) models.RawRow {
	row := models.NewRawRow(len(settlementHeaders))
	for i, h := range settlementHeaders {
		var v any
		if i < len(values) {
			v = values[i]
		}
		row.Set(h, v)
	}
	return row
}

func TestClassifySettlement(t *testing.T) {
	binding := columns.Bind(columns.SettlementTable, settlementHeaders)

	tests := []struct {
		name     string
		row      models.RawRow
		accepted bool
		reason   string
	}{
		{"sale order", settlementRow("240101ABC", "Pedido", "Camiseta", "59,90", "-7,19", "52,71", "20/01/2024"), true, ""},
		{"english record type", settlementRow("240101ABD", " ORDER ", "Shirt", "10.00"), true, ""},
		{"refund", settlementRow("240101ABC", "Refund", "Camiseta", "59,90"), false, ReasonInvalidRecordType},
		{"withdrawal", settlementRow("240101ABE", "Saque", nil, "5,00"), false, ReasonInvalidRecordType},
		{"adjustment", settlementRow("240101ABE", "Ajuste"), false, ReasonInvalidRecordType},
		{"english adjustment", settlementRow("240101ABE", "Adjustment"), false, ReasonInvalidRecordType},
		{"compensation", settlementRow("240101ABE", "Compensação"), false, ReasonInvalidRecordType},
		{"fees", settlementRow("240101ABE", "Taxas"), false, ReasonInvalidRecordType},
		{"english fees", settlementRow("240101ABE", "Fees"), false, ReasonInvalidRecordType},
		{"empty order id", settlementRow("", "Pedido", "Camiseta"), false, ReasonEmptyOrderID},
		{"repeated header", settlementRow("ID do pedido", "Tipo de registro", "Nome do produto"), false, ReasonHeaderRow},
		{"header-like record type with real order id", settlementRow("240101ABF", "Record Type"), false, ReasonInvalidRecordType},
		{"negative money is still a sale", settlementRow("240101ABG", "pedido", "Caneca", "-12,00", "(3,00)"), true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ClassifySettlement(binding, tt.row)
			assert.Equal(t, tt.accepted, d.Accepted)
			assert.Equal(t, tt.reason, d.Reason)
			if !tt.accepted {
				assert.NotEmpty(t, d.Detail)
			}
		})
	}
}

func TestClassifySettlement_Deterministic(t *testing.T) {
	binding := columns.Bind(columns.SettlementTable, settlementHeaders)
	row := settlementRow("240101ABC", "Refund")
	for i := 0; i < 5; i++ {
		d := ClassifySettlement(binding, row)
		assert.Equal(t, ReasonInvalidRecordType, d.Reason)
	}
}

func TestSettlementsFromRows(t *testing.T) {
	rows := []models.RawRow{
		settlementRow("240101ABC", "Pedido", "Camiseta", "59,90", "-7,19", "52,71", "20/01/2024"),
		settlementRow("240101ABC", "Reembolso", "Camiseta", "59,90"),
		settlementRow("", "Pedido"),
		settlementRow("ID do pedido", "Tipo de registro"),
	}

	accepted, rejected, diag := SettlementsFromRows(rows)
	require.Len(t, accepted, 1)
	require.Len(t, rejected, 3)

	s := accepted[0]
	assert.Equal(t, "240101ABC", s.OrderID)
	assert.Equal(t, "Pedido", s.RecordType)
	require.NotNil(t, s.ProductName)
	assert.Equal(t, "Camiseta", *s.ProductName)
	assert.Nil(t, s.SKU)
	assert.True(t, decimal.RequireFromString("59.90").Equal(s.Amounts.ProductPrice))
	assert.True(t, decimal.RequireFromString("-7.19").Equal(s.Amounts.CommissionFee))
	assert.True(t, decimal.RequireFromString("52.71").Equal(s.Amounts.PayoutAmount))
	assert.True(t, s.Amounts.RefundAmount.IsZero())
	require.NotNil(t, s.PayoutDate)
	assert.Equal(t, "2024-01-20", s.PayoutDate.Format("2006-01-02"))

	assert.Equal(t, 4, diag.TotalRows)
	assert.Equal(t, 1, diag.ValidRecords)
	assert.Equal(t, 3, diag.RejectedRecords)
	assert.Equal(t, map[string]int{
		ReasonInvalidRecordType: 1,
		ReasonEmptyOrderID:      1,
		ReasonHeaderRow:         1,
	}, diag.RejectionReasons)
	assert.Contains(t, diag.FoundColumns, columns.SettlementOrderID)
	assert.Contains(t, diag.MissingColumns, columns.SettlementRefundID)
}

func TestSettlementsFromRows_CoverageFromFirstRow(t *testing.T) {
	rows := []models.RawRow{
		settlementRow("240101ABC", "Pedido", "Camiseta", "59,90", "", "52,71"),
		settlementRow("240101ABD", "Pedido", "Caneca", "20,00", "-2,40", "17,60"),
	}

	_, _, diag := SettlementsFromRows(rows)
	assert.Contains(t, diag.FoundColumns, columns.SettlementOrderID)
	assert.Contains(t, diag.FoundColumns, columns.SettlementRecordType)
	assert.NotContains(t, diag.FoundColumns, "commission_fee")
	assert.Contains(t, diag.MissingColumns, "commission_fee")
}

func TestIsSaleOrderType(t *testing.T) {
	assert.True(t, IsSaleOrderType("Order"))
	assert.True(t, IsSaleOrderType("  PEDIDO "))
	assert.False(t, IsSaleOrderType("Refund"))
	assert.False(t, IsSaleOrderType(""))
}
