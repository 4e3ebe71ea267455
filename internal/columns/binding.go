package columns

import "github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

// Binding is a table resolved once against the headers of one file.
type Binding struct {
	table   Table
	headers map[string]string
}

// Bind resolves every field of table against headers.
func Bind(table Table, headers []string) Binding {
	b := Binding{table: table, headers: make(map[string]string, len(table))}
	for _, f := range table {
		if h, ok := ResolveHeader(headers, f.Aliases); ok {
			b.headers[f.Key] = h
		}
	}
	return b
}

// Header returns the source header bound to key.
func (b Binding) Header(key string) (string, bool) {
	h, ok := b.headers[key]
	return h, ok
}

// Has reports whether key was bound.
func (b Binding) Has(key string) bool {
	_, ok := b.headers[key]
	return ok
}

// Get reads the cell for key; unbound keys and blank cells give false.
func (b Binding) Get(row models.RawRow, key string) (any, bool) {
	h, ok := b.headers[key]
	if !ok {
		return nil, false
	}
	v, ok := row.Get(h)
	if !ok || models.IsBlankCell(v) {
		return nil, false
	}
	return v, true
}

// String reads the cell for key as trimmed text.
func (b Binding) String(row models.RawRow, key string) string {
	v, ok := b.Get(row, key)
	if !ok {
		return ""
	}
	return models.CellString(v)
}

// Found lists bound keys in table order.
func (b Binding) Found() []string {
	var found []string
	for _, f := range b.table {
		if b.Has(f.Key) {
			found = append(found, f.Key)
		}
	}
	return found
}

// Missing lists unbound keys in table order.
func (b Binding) Missing() []string {
	var missing []string
	for _, f := range b.table {
		if !b.Has(f.Key) {
			missing = append(missing, f.Key)
		}
	}
	return missing
}

// FoundIn lists keys, in table order, whose cell in row is bound and not
// blank.
func (b Binding) FoundIn(row models.RawRow) []string {
	var found []string
	for _, f := range b.table {
		if _, ok := b.Get(row, f.Key); ok {
			found = append(found, f.Key)
		}
	}
	return found
}

// MissingIn lists keys, in table order, with no usable cell in row.
func (b Binding) MissingIn(row models.RawRow) []string {
	var missing []string
	for _, f := range b.table {
		if _, ok := b.Get(row, f.Key); !ok {
			missing = append(missing, f.Key)
		}
	}
	return missing
}

// MissingRequired lists unbound keys flagged Required.
func (b Binding) MissingRequired() []string {
	var missing []string
	for _, f := range b.table {
		if f.Required && !b.Has(f.Key) {
			missing = append(missing, f.Key)
		}
	}
	return missing
}

// Table returns the table the binding was built from.
func (b Binding) Table() Table {
	return b.table
}

// LooksLikeHeader reports whether value equals, after normalization, one of
// the aliases of any field. Used to spot header rows repeated inside data.
func (t Table) LooksLikeHeader(value string) bool {
	nv := Normalize(value)
	if nv == "" {
		return false
	}
	for _, f := range t {
		for _, a := range f.Aliases {
			if Normalize(a) == nv {
				return true
			}
		}
	}
	return false
}
