package inventory

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildPriceList(t *testing.T, rows [][]any) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestParsePriceList(t *testing.T) {
	r := buildPriceList(t, [][]any{
		{"FLOWER NAME", "PRICE", "STOCK", "THRESHOLD", "SHELF LIFE", "DESCRIPTION"},
		{"Red Rose", "5.00", "50", "10", "7", "Classic red rose"},
		{"White Lily", "7.5", "30", "", "", ""},
		// adsız satır atlanır, fiyatı bozuk satır skipped'e düşer
		{"", "3.0", "10", "", "", ""},
		{"Broken Row", "abc", "10", "", "", ""},
	})

	inputs, skipped, err := ParsePriceList(r)
	require.NoError(t, err)

	require.Len(t, inputs, 2)
	assert.Equal(t, []string{"Broken Row"}, skipped)

	rose := inputs[0]
	assert.Equal(t, "Red Rose", rose.Name)
	require.NotNil(t, rose.Price)
	assert.Equal(t, 5.0, *rose.Price)
	require.NotNil(t, rose.Stock)
	assert.Equal(t, 50, *rose.Stock)
	require.NotNil(t, rose.Threshold)
	assert.Equal(t, 10, *rose.Threshold)
	require.NotNil(t, rose.ShelfLifeDays)
	assert.Equal(t, 7, *rose.ShelfLifeDays)
	assert.Equal(t, "Classic red rose", rose.Description)

	lily := inputs[1]
	assert.Equal(t, "White Lily", lily.Name)
	require.NotNil(t, lily.Price)
	assert.Equal(t, 7.5, *lily.Price)
	assert.Nil(t, lily.Threshold, "boş eşik upsert varsayılanına düşmeli")
	assert.Nil(t, lily.ShelfLifeDays)
}

func TestParsePriceListWithoutHeader(t *testing.T) {
	r := buildPriceList(t, [][]any{
		{"Sunflower", "4.0", "12"},
	})

	inputs, skipped, err := ParsePriceList(r)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, inputs, 1)
	assert.Equal(t, "Sunflower", inputs[0].Name)
}

func TestParsePriceListNegativePriceSkipped(t *testing.T) {
	r := buildPriceList(t, [][]any{
		{"Rose", "-1", "5"},
	})

	inputs, skipped, err := ParsePriceList(r)
	require.NoError(t, err)
	assert.Empty(t, inputs)
	assert.Equal(t, []string{"Rose"}, skipped)
}
