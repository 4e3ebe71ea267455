// Package normalize turns loosely typed spreadsheet and statement cells into
// amounts and calendar dates. None of its functions fail: unusable input
// yields zero or a false ok flag, so one bad cell never aborts a file.
package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyMarkers are stripped from either end of an amount. Longer markers
// come first so "US$" is not read as "$".
var currencyMarkers = []string{"US$", "R$", "BRL", "USD", "EUR", "$", "€"}

// Amount parses a signed amount. Strings may use "1.234,56" or "1,234.56":
// whichever of comma and dot appears last is the decimal separator and the
// other one is dropped. A separator that appears more than once with no
// competitor is treated as grouping. Anything unparseable is zero.
func Amount(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		return *x
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(x)
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat32(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt32(x)
	case int64:
		return decimal.NewFromInt(x)
	case json.Number:
		return parseAmountText(x.String())
	case []byte:
		return parseAmountText(string(x))
	case string:
		return parseAmountText(x)
	default:
		return parseAmountText(fmt.Sprint(x))
	}
}

// Magnitude is the absolute value of Amount.
func Magnitude(v any) decimal.Decimal {
	return Amount(v).Abs()
}

func parseAmountText(raw string) decimal.Decimal {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\t', '\u202f':
			return -1
		}
		return r
	}, raw)
	if s == "" {
		return decimal.Zero
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s, neg := stripSignsAndMarkers(s)
	if neg {
		negative = !negative
	}
	if s == "" {
		return decimal.Zero
	}

	for _, r := range s {
		if (r < '0' || r > '9') && r != ',' && r != '.' {
			return decimal.Zero
		}
	}

	s = canonicalSeparators(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		return d.Neg()
	}
	return d
}

// stripSignsAndMarkers peels currency markers and sign characters off both
// ends and reports whether an odd number of minus signs was seen.
func stripSignsAndMarkers(s string) (string, bool) {
	negative := false
	for changed := true; changed && s != ""; {
		changed = false
		switch {
		case strings.HasPrefix(s, "-"):
			negative = !negative
			s, changed = s[1:], true
		case strings.HasPrefix(s, "+"):
			s, changed = s[1:], true
		case strings.HasSuffix(s, "-"):
			negative = !negative
			s, changed = s[:len(s)-1], true
		}
		if changed {
			continue
		}
		upper := strings.ToUpper(s)
		for _, m := range currencyMarkers {
			if strings.HasPrefix(upper, m) {
				s, changed = s[len(m):], true
				break
			}
			if strings.HasSuffix(upper, m) {
				s, changed = s[:len(s)-len(m)], true
				break
			}
		}
	}
	return s, negative
}

func canonicalSeparators(s string) string {
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			return strings.ReplaceAll(s, ",", ".")
		}
		return strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			return strings.ReplaceAll(s, ",", "")
		}
		return strings.Replace(s, ",", ".", 1)
	case lastDot >= 0:
		if strings.Count(s, ".") > 1 {
			return strings.ReplaceAll(s, ".", "")
		}
		return s
	default:
		return s
	}
}
