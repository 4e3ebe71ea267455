package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/columns"
)

// BankProfilesFile is the on-disk shape of extra bank column aliases:
//
//	[profiles.sicredi]
//	date = ["Data Lanc."]
//	amount = ["Valor (R$)"]
type BankProfilesFile struct {
	Profiles map[string]BankProfileAliases `toml:"profiles"`
}

// BankProfileAliases lists header spellings per canonical bank field.
type BankProfileAliases struct {
	Date        []string `toml:"date"`
	Description []string `toml:"description"`
	Amount      []string `toml:"amount"`
	Balance     []string `toml:"balance"`
}

// LoadBankProfiles returns the built-in profiles with the ones from path
// merged on top. An empty path yields the built-in set.
func LoadBankProfiles(path string) (columns.BankProfiles, error) {
	profiles := columns.DefaultBankProfiles()
	if path == "" {
		return profiles, nil
	}

	file := &BankProfilesFile{}
	if _, err := toml.DecodeFile(path, file); err != nil {
		return nil, fmt.Errorf("failed to load bank profiles file: %w", err)
	}

	overrides := make(map[string]map[string][]string, len(file.Profiles))
	for id, p := range file.Profiles {
		overrides[id] = map[string][]string{
			columns.BankDate:        p.Date,
			columns.BankDescription: p.Description,
			columns.BankAmount:      p.Amount,
			columns.BankBalance:     p.Balance,
		}
	}
	profiles.Merge(overrides)
	return profiles, nil
}
