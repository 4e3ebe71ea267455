package models

import (
	"fmt"
	"strings"
)

// RawRow is one extracted row: header names in source order mapped to the
// untyped cell found under each (string, float64 or nil).
type RawRow struct {
	headers []string
	cells   map[string]any
}

// NewRawRow creates an empty row with room for n cells.
func NewRawRow(n int) RawRow {
	return RawRow{
		headers: make([]string, 0, n),
		cells:   make(map[string]any, n),
	}
}

// Set appends a cell. A repeated header is kept under a numbered name so no
// column is silently overwritten.
func (r *RawRow) Set(header string, value any) {
	if r.cells == nil {
		r.cells = make(map[string]any)
	}
	name := header
	for i := 2; ; i++ {
		if _, exists := r.cells[name]; !exists {
			break
		}
		name = fmt.Sprintf("%s (%d)", header, i)
	}
	r.headers = append(r.headers, name)
	r.cells[name] = value
}

// Get returns the cell stored under header.
func (r RawRow) Get(header string) (any, bool) {
	v, ok := r.cells[header]
	return v, ok
}

// Headers returns the header names in source order.
func (r RawRow) Headers() []string {
	return r.headers
}

func (r RawRow) Len() int {
	return len(r.headers)
}

// IsBlank reports whether every cell is nil or whitespace.
func (r RawRow) IsBlank() bool {
	for _, v := range r.cells {
		if !IsBlankCell(v) {
			return false
		}
	}
	return true
}

// IsBlankCell reports whether a cell carries no usable value.
func IsBlankCell(v any) bool {
	switch c := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(c) == ""
	default:
		return false
	}
}

// CellString renders a cell as trimmed text; nil becomes "".
func CellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(c)
	case float64:
		if c == float64(int64(c)) {
			return fmt.Sprintf("%d", int64(c))
		}
		return strings.TrimSpace(fmt.Sprintf("%v", c))
	default:
		return strings.TrimSpace(fmt.Sprint(c))
	}
}
