package columns

import (
	"testing"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Descrição", "descricao"},
		{"  Valor   (R$) ", "valor r"},
		{"Dt. Lançamento", "dt lancamento"},
		{"ORDER_ID", "order_id"},
		{"Nº do pedido", "nº do pedido"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestResolveHeader_Priority(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		aliases  []string
		expected string
	}{
		{
			name:     "exact beats normalized on same alias",
			headers:  []string{"VALOR", "Valor"},
			aliases:  []string{"Valor"},
			expected: "Valor",
		},
		{
			name:     "exact on later alias beats normalized on earlier alias",
			headers:  []string{"AMOUNT", "Valor"},
			aliases:  []string{"Amount", "Valor"},
			expected: "Valor",
		},
		{
			name:     "normalized beats substring",
			headers:  []string{"Valor da parcela", "VALOR"},
			aliases:  []string{"Valor"},
			expected: "VALOR",
		},
		{
			name:     "normalized on later alias beats substring on earlier alias",
			headers:  []string{"Data do pagamento", "DATE"},
			aliases:  []string{"Data", "Date"},
			expected: "DATE",
		},
		{
			name:     "accent and case folding",
			headers:  []string{"DESCRICAO"},
			aliases:  []string{"Descrição"},
			expected: "DESCRICAO",
		},
		{
			name:     "punctuation ignored",
			headers:  []string{"Valor (R$)"},
			aliases:  []string{"Valor R$"},
			expected: "Valor (R$)",
		},
		{
			name:     "header contains alias",
			headers:  []string{"Id", "Valor da transação"},
			aliases:  []string{"Valor"},
			expected: "Valor da transação",
		},
		{
			name:     "alias contains header",
			headers:  []string{"Saldo"},
			aliases:  []string{"Saldo final"},
			expected: "Saldo",
		},
		{
			name:     "first header wins within a stage",
			headers:  []string{"valor bruto", "valor liquido"},
			aliases:  []string{"Valor"},
			expected: "valor bruto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveHeader(tt.headers, tt.aliases)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveHeader_SubstringGuard(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		aliases []string
	}{
		{"short header", []string{"Val"}, []string{"Valor"}},
		{"short alias", []string{"SKU principal"}, []string{"SKU"}},
		{"both short", []string{"Id"}, []string{"Ids"}},
		{"punctuation shrinks below limit", []string{"V.A.L"}, []string{"Valor"}},
		{"no overlap", []string{"Histórico", "Saldo"}, []string{"Amount", "Valor"}},
		{"empty headers", nil, []string{"Valor"}},
		{"empty aliases", []string{"Valor"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ResolveHeader(tt.headers, tt.aliases)
			assert.False(t, ok)
		})
	}
}

// Containment is a heuristic; these cases pin down the false positives it is
// known to produce so a change in behavior shows up here.
func TestResolveHeader_KnownSubstringFalsePositives(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		aliases  []string
		expected string
	}{
		{"date alias grabs shipping date", []string{"Data de envio", "Valor"}, []string{"Data"}, "Data de envio"},
		{"fee total grabs other fees", []string{"Other Fees"}, []string{"Fees"}, "Other Fees"},
		{"coins grabs seller coin cashback", []string{"Cashback em moedas do vendedor"}, []string{"Moedas"}, "Cashback em moedas do vendedor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveHeader(tt.headers, tt.aliases)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolve(t *testing.T) {
	row := models.NewRawRow(3)
	row.Set("Data", "15/01/2024")
	row.Set("Descrição", "PIX RECEBIDO - JOAO")
	row.Set("Valor", "150,00")

	v, ok := Resolve(row, []string{"Amount", "Valor"})
	require.True(t, ok)
	assert.Equal(t, "150,00", v)

	_, ok = Resolve(row, []string{"Saldo"})
	assert.False(t, ok)
}

func TestBinding(t *testing.T) {
	profiles := DefaultBankProfiles()
	table, ok := profiles.Lookup("")
	require.True(t, ok)

	b := Bind(table, []string{"Data", "Descrição", "Valor"})

	assert.Equal(t, []string{BankDate, BankDescription, BankAmount}, b.Found())
	assert.Equal(t, []string{BankBalance}, b.Missing())
	assert.Empty(t, b.MissingRequired())

	row := models.NewRawRow(3)
	row.Set("Data", "15/01/2024")
	row.Set("Descrição", "  TED - MARIA ")
	row.Set("Valor", "")

	assert.Equal(t, "TED - MARIA", b.String(row, BankDescription))
	_, ok = b.Get(row, BankAmount)
	assert.False(t, ok, "blank cells read as absent")
	_, ok = b.Get(row, BankBalance)
	assert.False(t, ok)

	missing := Bind(table, []string{"Descrição", "Saldo"})
	assert.Equal(t, []string{BankDate, BankAmount}, missing.MissingRequired())
}

func TestLooksLikeHeader(t *testing.T) {
	assert.True(t, SettlementTable.LooksLikeHeader("Order ID"))
	assert.True(t, SettlementTable.LooksLikeHeader("id do pedido"))
	assert.False(t, SettlementTable.LooksLikeHeader("240115ABCD"))
	assert.False(t, SettlementTable.LooksLikeHeader(""))
}

func TestBankProfiles(t *testing.T) {
	profiles := DefaultBankProfiles()

	_, ok := profiles.Lookup("unknown-bank")
	assert.False(t, ok)

	itau, ok := profiles.Lookup(" ITAU ")
	require.True(t, ok)
	amount, _ := itau.Field(BankAmount)
	assert.Equal(t, "valor (R$)", amount.Aliases[0])
	assert.Contains(t, amount.Aliases, "Valor")

	profiles.Merge(map[string]map[string][]string{
		"itau":     {BankAmount: {"Valor lançamento"}},
		"cora":     {BankDate: {"Data da transação"}},
		"nonsense": nil,
	})

	itau, _ = profiles.Lookup("itau")
	amount, _ = itau.Field(BankAmount)
	assert.Equal(t, "Valor lançamento", amount.Aliases[0])

	cora, ok := profiles.Lookup("cora")
	require.True(t, ok)
	date, _ := cora.Field(BankDate)
	assert.Equal(t, "Data da transação", date.Aliases[0])
	assert.True(t, date.Required)

	assert.Contains(t, profiles.IDs(), "nonsense")
}
