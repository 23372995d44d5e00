package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrEmptyFile means the file parsed but held no non-empty rows.
	ErrEmptyFile = errors.New("file contains no data")

	// ErrUnsupportedFormat means the file extension is neither CSV nor Excel.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Sheet is a parsed spreadsheet split into its header row and the ordered
// data rows that follow it. Every cell is already trimmed.
type Sheet struct {
	Headers []string
	Rows    [][]string
}

// ReadFile opens a broker export and splits it into header and data rows.
// The format is chosen by extension: .csv via encoding/csv, .xlsx/.xls/.xlsm
// via excelize (first sheet only).
func ReadFile(path string) (*Sheet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx", ".xls", ".xlsm":
		return readExcel(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func readExcel(path string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	slog.Debug("read workbook",
		slog.String("file", path),
		slog.String("sheet", sheets[0]),
		slog.Int("raw_rows", len(rows)))

	return fromRows(rows)
}

func readCSV(path string) (*Sheet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Broker exports pad or truncate rows freely.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	// Strip a UTF-8 BOM left by Excel exports.
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\uFEFF")
	}

	slog.Debug("read CSV",
		slog.String("file", path),
		slog.Int("raw_rows", len(records)))

	return fromRows(records)
}

// fromRows trims every cell, takes the first row with any content as the
// header row, and keeps only the subsequent rows that still hold data.
func fromRows(rows [][]string) (*Sheet, error) {
	trimmed := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = strings.TrimSpace(cell)
		}
		trimmed[i] = cells
	}

	headerIdx := -1
	for i, row := range trimmed {
		if hasData(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, ErrEmptyFile
	}

	var dataRows [][]string
	for _, row := range trimmed[headerIdx+1:] {
		if hasData(row) {
			dataRows = append(dataRows, row)
		}
	}

	slog.Debug("sheet parsed",
		slog.Int("header_row", headerIdx),
		slog.Int("data_rows", len(dataRows)))

	return &Sheet{Headers: trimmed[headerIdx], Rows: dataRows}, nil
}

func hasData(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return true
		}
	}
	return false
}
