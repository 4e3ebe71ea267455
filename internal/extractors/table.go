package extractors

import (
	"bytes"
	"fmt"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"
)

// ReadTable reads a delimited or workbook file into header-keyed rows. OFX is
// not tabular and is refused.
func ReadTable(format Format, data []byte) ([]models.RawRow, error) {
	switch format {
	case FormatDelimited:
		return ReadDelimited(DecodeText(data))
	case FormatXLSX:
		cells, err := ReadWorkbook(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return GridRows(cells), nil
	}
	return nil, fmt.Errorf("%w: %s is not a table", ErrUnsupportedFileType, format)
}
