package extractors

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"
)

// DetectDelimiter picks ';' when the header line has one, ',' otherwise.
func DetectDelimiter(headerLine string) rune {
	if strings.Contains(headerLine, ";") {
		return ';'
	}
	return ','
}

// ReadDelimited splits delimited text into rows keyed by the first non-empty
// line. Blank lines are dropped and short rows read as empty cells.
func ReadDelimited(text string) ([]models.RawRow, error) {
	text = strings.TrimPrefix(text, "\ufeff")

	start, headerLine := firstNonBlankLine(text)
	if headerLine == "" {
		return nil, ErrEmptyFile
	}

	reader := csv.NewReader(strings.NewReader(text[start:]))
	reader.Comma = DetectDelimiter(headerLine)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read delimited text: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]models.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := models.NewRawRow(len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			var value any
			if i < len(record) {
				value = record[i]
			}
			row.Set(h, value)
		}
		if row.IsBlank() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func firstNonBlankLine(text string) (int, string) {
	offset := 0
	for offset < len(text) {
		end := strings.IndexByte(text[offset:], '\n')
		line := text[offset:]
		if end >= 0 {
			line = text[offset : offset+end]
		}
		if strings.TrimSpace(line) != "" {
			return offset, strings.TrimRight(line, "\r")
		}
		if end < 0 {
			break
		}
		offset += end + 1
	}
	return 0, ""
}
