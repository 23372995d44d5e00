package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.xlsx")

	f := excelize.NewFile()
	defer f.Close()
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, value))
		}
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFileExcel(t *testing.T) {
	path := writeTestWorkbook(t, [][]any{
		{"Action", "Date", "Symbol", "Quantity"},
		{"Buy", "15-Jan-2024", "AAPL", 100},
		{"Sell", "16-Jan-2024", "MSFT", 50},
	})

	sheet, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Action", "Date", "Symbol", "Quantity"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, []string{"Buy", "15-Jan-2024", "AAPL", "100"}, sheet.Rows[0])
	assert.Equal(t, []string{"Sell", "16-Jan-2024", "MSFT", "50"}, sheet.Rows[1])
}

// Broker exports often carry a title block above the real header row.
func TestReadFileExcelSkipsLeadingBlankRows(t *testing.T) {
	path := writeTestWorkbook(t, [][]any{
		{"", "", ""},
		{"", "", ""},
		{"Action", "Date", "Symbol"},
		{"Buy", "15-Jan-2024", "AAPL"},
		{"", "", ""},
		{"Sell", "16-Jan-2024", "MSFT"},
	})

	sheet, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Action", "Date", "Symbol"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "Buy", sheet.Rows[0][0])
	assert.Equal(t, "Sell", sheet.Rows[1][0])
}

func TestReadFileCSV(t *testing.T) {
	path := writeTestCSV(t, "Action,Date,Symbol,Quantity\nBuy,15-Jan-2024,AAPL,100\nSell,16-Jan-2024,MSFT,50\n")

	sheet, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Action", "Date", "Symbol", "Quantity"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
}

func TestReadFileCSVStripsBOM(t *testing.T) {
	path := writeTestCSV(t, "\xEF\xBB\xBFAction,Date\nBuy,15-Jan-2024\n")

	sheet, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Action", "Date"}, sheet.Headers)
}

func TestReadFileCSVTrimsCells(t *testing.T) {
	path := writeTestCSV(t, "Action , Date \n Buy , 15-Jan-2024 \n")

	sheet, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Action", "Date"}, sheet.Headers)
	assert.Equal(t, []string{"Buy", "15-Jan-2024"}, sheet.Rows[0])
}

func TestReadFileCSVRaggedRows(t *testing.T) {
	path := writeTestCSV(t, "Action,Date,Symbol\nBuy,15-Jan-2024\nSell,16-Jan-2024,MSFT,extra\n")

	sheet, err := ReadFile(path)
	require.NoError(t, err)

	require.Len(t, sheet.Rows, 2)
	assert.Len(t, sheet.Rows[0], 2)
	assert.Len(t, sheet.Rows[1], 4)
}

func TestReadFileEmpty(t *testing.T) {
	path := writeTestCSV(t, "")

	_, err := ReadFile(path)
	require.ErrorIs(t, err, ErrEmptyFile)
}

func TestReadFileHeaderOnly(t *testing.T) {
	path := writeTestCSV(t, "Action,Date,Symbol\n")

	sheet, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, sheet.Rows)
}

func TestReadFileUnsupportedExtension(t *testing.T) {
	_, err := ReadFile("trades.pdf")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}
