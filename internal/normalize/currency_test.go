package normalize

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"brazilian thousands and decimal", "1.234,56", "1234.56"},
		{"us thousands and decimal", "1,234.56", "1234.56"},
		{"real marker", "R$ 1.234,56", "1234.56"},
		{"dollar marker", "US$ 1,234.56", "1234.56"},
		{"marker without space", "R$45,90", "45.9"},
		{"trailing euro marker", "12,50 €", "12.5"},
		{"negative before marker", "-R$ 45,90", "-45.9"},
		{"negative after marker", "R$ -45,90", "-45.9"},
		{"trailing minus", "45,90-", "-45.9"},
		{"accounting parentheses", "(1.234,56)", "-1234.56"},
		{"explicit plus", "+150,00", "150"},
		{"comma decimal only", "150,00", "150"},
		{"negative thousands", "-1.200,00", "-1200"},
		{"single dot is decimal", "1.200", "1.2"},
		{"repeated dots are grouping", "1.234.567", "1234567"},
		{"repeated commas are grouping", "1,234,567", "1234567"},
		{"plain integer", "42", "42"},
		{"non breaking space", "R$ 1.000,00", "1000"},
		{"empty string", "", "0"},
		{"whitespace", "   ", "0"},
		{"nil", nil, "0"},
		{"letters", "abc", "0"},
		{"trailing garbage", "12a", "0"},
		{"marker only", "R$", "0"},
		{"two decimal commas", "1.234,56,78", "0"},
		{"native float", 150.5, "150.5"},
		{"native negative float", -45.9, "-45.9"},
		{"native int", 3, "3"},
		{"native int64", int64(-7), "-7"},
		{"json number", json.Number("10.25"), "10.25"},
		{"decimal passthrough", decimal.RequireFromString("9.99"), "9.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Amount(tt.input)
			expected := decimal.RequireFromString(tt.expected)
			assert.True(t, expected.Equal(got), "Amount(%#v) = %s, want %s", tt.input, got, expected)
		})
	}
}

func TestAmount_LocaleEquivalence(t *testing.T) {
	pairs := [][2]string{
		{"1.234,56", "1,234.56"},
		{"0,99", "0.99"},
		{"R$ 12.345.678,90", "$12,345,678.90"},
		{"-3.000,10", "-3,000.10"},
		{"7,5", "7.5"},
	}

	for _, p := range pairs {
		br, us := Amount(p[0]), Amount(p[1])
		assert.True(t, br.Equal(us), "%q parsed to %s but %q parsed to %s", p[0], br, p[1], us)
	}
}

func TestMagnitude(t *testing.T) {
	assert.True(t, decimal.RequireFromString("45.90").Equal(Magnitude("-45,90")))
	assert.True(t, decimal.RequireFromString("150").Equal(Magnitude("150,00")))
	assert.True(t, decimal.Zero.Equal(Magnitude(nil)))
}
