package columns

import (
	"sort"
	"strings"
)

// Canonical bank statement fields.
const (
	BankDate        = "date"
	BankDescription = "description"
	BankAmount      = "amount"
	BankBalance     = "balance"
)

// DefaultBankProfile is used when the caller names no bank.
const DefaultBankProfile = "generic"

var genericBankAliases = map[string][]string{
	BankDate: {
		"Data", "Date", "Data Lançamento", "Data de lançamento", "Data do lançamento",
		"Data Movimento", "Data Mov.", "Dt. Lançamento", "Posting Date", "Transaction Date",
	},
	BankDescription: {
		"Descrição", "Description", "Histórico", "Lançamento", "Detalhes", "Memo", "Title", "Título",
	},
	BankAmount: {
		"Valor", "Amount", "Valor (R$)", "Value", "Quantia",
	},
	BankBalance: {
		"Saldo", "Balance", "Saldo (R$)", "Saldos (R$)",
	},
}

// bank specific spellings are tried before the generic ones
var bankSpecificAliases = map[string]map[string][]string{
	"nubank": {
		BankDate:        {"Data", "date"},
		BankDescription: {"Descrição", "title"},
		BankAmount:      {"Valor", "amount"},
	},
	"itau": {
		BankDate:        {"data"},
		BankDescription: {"lançamento"},
		BankAmount:      {"valor (R$)"},
		BankBalance:     {"saldos (R$)"},
	},
	"bradesco": {
		BankDate:        {"Data"},
		BankDescription: {"Histórico", "Lançamento"},
		BankAmount:      {"Valor", "Valor (R$)"},
		BankBalance:     {"Saldo (R$)"},
	},
	"inter": {
		BankDate:        {"Data Lançamento"},
		BankDescription: {"Descrição", "Histórico"},
		BankAmount:      {"Valor"},
		BankBalance:     {"Saldo"},
	},
	"santander": {
		BankDate:        {"Data"},
		BankDescription: {"Descrição", "Histórico"},
		BankAmount:      {"Valor (R$)", "Valor"},
		BankBalance:     {"Saldo (R$)"},
	},
	"caixa": {
		BankDate:        {"Data Mov."},
		BankDescription: {"Histórico"},
		BankAmount:      {"Valor"},
		BankBalance:     {"Saldo"},
	},
	"bb": {
		BankDate:        {"Data"},
		BankDescription: {"Lançamento", "Detalhes"},
		BankAmount:      {"Valor"},
		BankBalance:     {"Saldo"},
	},
}

// BankProfiles maps a bank identifier to its statement alias table.
type BankProfiles map[string]Table

// DefaultBankProfiles returns a fresh copy of the built-in profiles.
func DefaultBankProfiles() BankProfiles {
	profiles := BankProfiles{DefaultBankProfile: bankTable(nil)}
	for id, extra := range bankSpecificAliases {
		profiles[id] = bankTable(extra)
	}
	return profiles
}

// Lookup returns the table for id, falling back to the generic profile for
// an empty id. Unknown ids are reported as not found.
func (p BankProfiles) Lookup(id string) (Table, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		id = DefaultBankProfile
	}
	t, ok := p[id]
	return t, ok
}

// Merge adds or extends profiles. Aliases given for an existing field are
// tried before the ones already present.
func (p BankProfiles) Merge(overrides map[string]map[string][]string) {
	for id, fields := range overrides {
		id = strings.ToLower(strings.TrimSpace(id))
		if _, ok := p[id]; !ok {
			p[id] = bankTable(fields)
			continue
		}
		t := p[id]
		for i := range t {
			if extra, ok := fields[t[i].Key]; ok {
				t[i].Aliases = dedupe(append(append([]string{}, extra...), t[i].Aliases...))
			}
		}
	}
}

// IDs lists the profile identifiers in sorted order.
func (p BankProfiles) IDs() []string {
	ids := make([]string, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func bankTable(extra map[string][]string) Table {
	field := func(key string, required bool) Field {
		aliases := append(append([]string{}, extra[key]...), genericBankAliases[key]...)
		return Field{Key: key, Aliases: dedupe(aliases), Required: required}
	}
	return Table{
		field(BankDate, true),
		field(BankDescription, false),
		field(BankAmount, true),
		field(BankBalance, false),
	}
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
