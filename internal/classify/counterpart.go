package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxCounterpartLen = 100

// tail captures the party name up to the next " - " separator or the end.
const tail = `\s*[-:]?\s*(.+?)(?:\s+-\s+|$)`

// counterpartPatterns are tried in order; the first non-empty capture wins.
var counterpartPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:transfer[eê]ncia|pagamento)\s+(?:recebid[oa]|enviad[oa])\s+pelo\s+pix\s*-\s*([^-]+)`),
	regexp.MustCompile(`(?i)\bpix\b(?:\s+(?:recebid[oa]|enviad[oa]|transfer[eê]ncia)\b)?(?:\s+(?:de|para)\b)?` + tail),
	regexp.MustCompile(`(?i)\bted\b(?:\s+(?:recebid[oa]|enviad[oa])\b)?(?:\s+(?:de|para)\b)?` + tail),
	regexp.MustCompile(`(?i)\bdoc\b(?:\s+(?:recebid[oa]|enviad[oa])\b)?(?:\s+(?:de|para)\b)?` + tail),
	regexp.MustCompile(`(?i)\btransf(?:er[eê]ncia\b|\.|\b)(?:\s+(?:recebid[oa]|enviad[oa]|entre contas)\b)?(?:\s+(?:de|para)\b)?` + tail),
	regexp.MustCompile(`(?i)\bpag(?:amento|to)?\b\.?(?:\s+de\b)?(?:\s+(?:boleto|conta|fatura|t[ií]tulo)\b)?` + tail),
	regexp.MustCompile(`(?i)\bcompra\b(?:\s+(?:cart[aã]o|d[eé]bito|cr[eé]dito|no|com|elo|visa|master)\b)*` + tail),
}

// Counterpart guesses the other party of a statement line from its
// description. It returns nil when no pattern yields a name.
func Counterpart(description string) *string {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil
	}
	for _, re := range counterpartPatterns {
		m := re.FindStringSubmatch(description)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		name = truncateRunes(name, maxCounterpartLen)
		return &name
	}
	return nil
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:max]))
}
