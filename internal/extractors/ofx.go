package extractors

import (
	"html"
	"strings"
)

// OFXTransaction holds the raw tag values of one STMTTRN block.
type OFXTransaction struct {
	Type   string
	Posted string
	Amount string
	FITID  string
	Name   string
	Memo   string
}

// Statement is what an OFX file yields: account identity plus its lines.
type Statement struct {
	BankID       string
	AccountID    string
	Currency     string
	Transactions []OFXTransaction
}

// ParseOFX reads SGML or XML flavored OFX. Tags are often left open, so a
// value runs from the end of its tag to the next '<' or line break.
func ParseOFX(text string) Statement {
	header := scanTags(headerSection(text))
	stmt := Statement{
		BankID:    header["BANKID"],
		AccountID: header["ACCTID"],
		Currency:  header["CURDEF"],
	}

	for _, block := range transactionBlocks(text) {
		tags := scanTags(block)
		stmt.Transactions = append(stmt.Transactions, OFXTransaction{
			Type:   tags["TRNTYPE"],
			Posted: tags["DTPOSTED"],
			Amount: tags["TRNAMT"],
			FITID:  tags["FITID"],
			Name:   tags["NAME"],
			Memo:   tags["MEMO"],
		})
	}
	return stmt
}

// headerSection is everything before the first transaction block, where
// account tags live.
func headerSection(text string) string {
	if i := strings.Index(asciiUpper(text), "<STMTTRN>"); i >= 0 {
		return text[:i]
	}
	return text
}

// transactionBlocks returns the body of every <STMTTRN> block. A block with
// no closing tag ends where the next block or the transaction list ends.
func transactionBlocks(text string) []string {
	const open = "<STMTTRN>"
	upper := asciiUpper(text)
	terminators := []string{"</STMTTRN>", open, "</BANKTRANLIST>"}

	var blocks []string
	pos := 0
	for {
		i := strings.Index(upper[pos:], open)
		if i < 0 {
			break
		}
		start := pos + i + len(open)
		end := len(text)
		for _, term := range terminators {
			if j := strings.Index(upper[start:], term); j >= 0 && start+j < end {
				end = start + j
			}
		}
		blocks = append(blocks, text[start:end])
		pos = end
	}
	return blocks
}

type scanState int

const (
	stateText scanState = iota
	stateTagName
	stateValue
)

// scanTags walks a fragment and records the first non-empty value of every
// opening tag, keyed by upper-case tag name. Closing tags and processing
// instructions are skipped.
func scanTags(fragment string) map[string]string {
	values := make(map[string]string)
	state := stateText
	var name string
	mark := 0

	for i := 0; i <= len(fragment); i++ {
		atEnd := i == len(fragment)
		var c byte
		if !atEnd {
			c = fragment[i]
		}

		switch state {
		case stateText:
			if !atEnd && c == '<' {
				state = stateTagName
				mark = i + 1
			}
		case stateTagName:
			if atEnd {
				break
			}
			if c == '>' {
				name = strings.TrimSpace(fragment[mark:i])
				if name == "" || name[0] == '/' || name[0] == '?' || name[0] == '!' {
					state = stateText
					continue
				}
				state = stateValue
				mark = i + 1
			}
		case stateValue:
			if atEnd || c == '<' || c == '\n' || c == '\r' {
				value := html.UnescapeString(strings.TrimSpace(fragment[mark:i]))
				key := asciiUpper(name)
				if _, seen := values[key]; !seen && value != "" {
					values[key] = value
				}
				state = stateText
				if !atEnd && c == '<' {
					state = stateTagName
					mark = i + 1
				}
			}
		}
	}
	return values
}

// asciiUpper upper-cases ASCII letters only, keeping byte offsets aligned
// with the input.
func asciiUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
