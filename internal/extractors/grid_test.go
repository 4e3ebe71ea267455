package extractors

import (
	"bytes"
	"testing"
	"time"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/normalize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := r
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &values))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadWorkbook_TypedCells(t *testing.T) {
	posted := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	buf := buildWorkbook(t, [][]any{
		{"Data", "Descrição", "Valor", "Saldo"},
		{posted, "PIX RECEBIDO - JOAO", 150.0, "1.234,56"},
		{"16/01/2024", "COMPRA", -45.9, nil},
	})

	grid, err := ReadWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, grid, 3)

	assert.Equal(t, "Data", grid[0][0])
	assert.Equal(t, 150.0, grid[1][2])
	assert.Equal(t, "1.234,56", grid[1][3], "text stays text")
	assert.Equal(t, -45.9, grid[2][2])

	serial, ok := grid[1][0].(float64)
	require.True(t, ok, "dates arrive as serial numbers")
	date, ok := normalize.Date(serial)
	require.True(t, ok)
	assert.Equal(t, posted, date)
}

func TestReadWorkbook_Invalid(t *testing.T) {
	_, err := ReadWorkbook(bytes.NewReader([]byte("not a zip")))
	assert.Error(t, err)
}

func TestGridRows(t *testing.T) {
	cells := [][]any{
		{nil, ""},
		{"Data", "Valor", nil, "Obs"},
		{"15/01/2024", 150.0},
		{nil, "  ", nil},
		{"16/01/2024", "-45,90", "ignored", "nota"},
	}

	rows := GridRows(cells)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"Data", "Valor", "Obs"}, rows[0].Headers())
	v, _ := rows[0].Get("Valor")
	assert.Equal(t, 150.0, v)
	obs, _ := rows[0].Get("Obs")
	assert.Nil(t, obs)

	obs, _ = rows[1].Get("Obs")
	assert.Equal(t, "nota", obs)
}

func TestGridRows_Empty(t *testing.T) {
	assert.Nil(t, GridRows(nil))
	assert.Nil(t, GridRows([][]any{{nil}, {""}}))
	assert.Equal(t, []models.RawRow{}, GridRows([][]any{{"Data"}}))
}
