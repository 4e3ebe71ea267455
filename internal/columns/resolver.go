// Package columns maps the header names found in exported files onto
// canonical field names through ordered alias tables.
package columns

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minSubstringLen is the rune length both sides must exceed before a
// containment match is considered.
const minSubstringLen = 3

// Field is one canonical field and the header spellings that may carry it,
// in preference order.
type Field struct {
	Key      string
	Aliases  []string
	Required bool
}

// Table is an ordered list of canonical fields.
type Table []Field

// Field returns the entry for key.
func (t Table) Field(key string) (Field, bool) {
	for _, f := range t {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Keys lists the canonical keys in table order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for _, f := range t {
		keys = append(keys, f.Key)
	}
	return keys
}

// Normalize lowercases s, folds accents, drops every character that is not
// a letter, digit, underscore or space, and collapses runs of whitespace.
func Normalize(s string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ResolveHeader picks the header that carries a field. Every alias is tried
// for an exact match first, then for a normalized match, and only then for
// containment in either direction, which needs both normalized strings to be
// longer than three characters. Within a stage the earliest alias wins.
func ResolveHeader(headers []string, aliases []string) (string, bool) {
	for _, alias := range aliases {
		for _, h := range headers {
			if h == alias {
				return h, true
			}
		}
	}

	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = Normalize(h)
	}

	for _, alias := range aliases {
		na := Normalize(alias)
		if na == "" {
			continue
		}
		for i, nh := range normalized {
			if nh == na {
				return headers[i], true
			}
		}
	}

	for _, alias := range aliases {
		na := Normalize(alias)
		if utf8.RuneCountInString(na) <= minSubstringLen {
			continue
		}
		for i, nh := range normalized {
			if utf8.RuneCountInString(nh) <= minSubstringLen {
				continue
			}
			if strings.Contains(nh, na) || strings.Contains(na, nh) {
				return headers[i], true
			}
		}
	}

	return "", false
}

// Resolve returns the cell of row found under the best header for aliases.
func Resolve(row models.RawRow, aliases []string) (any, bool) {
	header, ok := ResolveHeader(row.Headers(), aliases)
	if !ok {
		return nil, false
	}
	return row.Get(header)
}
