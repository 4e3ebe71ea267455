package extractors

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook loads the first sheet of an .xlsx workbook as a grid. Numeric
// cells come back as float64 (dates stay serial numbers), everything else as
// string, empty cells as nil.
func ReadWorkbook(r io.Reader) ([][]any, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrEmptyFile
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	grid := make([][]any, len(rows))
	for r, cols := range rows {
		cells := make([]any, len(cols))
		for c, raw := range cols {
			if raw == "" {
				continue
			}
			cells[c] = typedCell(f, sheet, c+1, r+1, raw)
		}
		grid[r] = cells
	}
	return grid, nil
}

func typedCell(f *excelize.File, sheet string, col, row int, raw string) any {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return raw
	}
	typ, err := f.GetCellType(sheet, name)
	if err != nil {
		return raw
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeBool, excelize.CellTypeError:
		return raw
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}

// GridRows keys every row below the first non-blank row by that row's
// headers. Fully blank rows and columns without a header are dropped.
func GridRows(cells [][]any) []models.RawRow {
	headerIdx := -1
	for i, r := range cells {
		if !blankCells(r) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	headers := make([]string, len(cells[headerIdx]))
	for i, c := range cells[headerIdx] {
		headers[i] = models.CellString(c)
	}

	rows := make([]models.RawRow, 0, len(cells)-headerIdx-1)
	for _, r := range cells[headerIdx+1:] {
		if blankCells(r) {
			continue
		}
		row := models.NewRawRow(len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			var value any
			if i < len(r) {
				value = r[i]
			}
			row.Set(h, value)
		}
		rows = append(rows, row)
	}
	return rows
}

func blankCells(r []any) bool {
	for _, c := range r {
		if !models.IsBlankCell(c) {
			return false
		}
	}
	return true
}
