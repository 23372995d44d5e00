package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"tradeimport/pkg/contracts/domain"
)

// Writer exports import batches for user review or hand-off to an external
// submitter.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a new export writer.
func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // add a UTF-8 BOM so Excel opens the file correctly
}

// WriteCSV writes rows to a CSV file, creating parent directories as needed.
func (w *Writer) WriteCSV(path string, options WriteOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	w.logger.Info("CSV written",
		slog.String("path", path),
		slog.Int("records", len(options.Records)))

	return writer.Error()
}

// WriteRowErrors exports the rejected rows of a batch as a Row,Message CSV.
func (w *Writer) WriteRowErrors(path string, rowErrors []domain.RowError) error {
	records := make([][]string, 0, len(rowErrors))
	for _, re := range rowErrors {
		records = append(records, []string{formatInt(int64(re.Row)), re.Message})
	}
	return w.WriteCSV(path, WriteOptions{
		Headers:   []string{"Row", "Message"},
		Records:   records,
		BOMPrefix: true,
	})
}

// WriteRecords exports accepted trade records as CSV for review.
func (w *Writer) WriteRecords(path string, records []domain.TradeRecord) error {
	headers := []string{
		"action", "tradeDate", "symbol", "trade_type",
		"usymbol", "expirationDate", "optionType", "strikePrice",
		"quantity", "price", "commission", "fee", "netAmount", "portfolioName",
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			string(rec.Action),
			rec.TradeDate.Format("2006-01-02T15:04:05"),
			rec.Symbol,
			string(rec.TradeType),
			rec.USymbol,
			rec.ExpirationDate,
			string(rec.OptionType),
			formatFloat(rec.StrikePrice),
			formatFloat(rec.Quantity),
			formatFloat(rec.Price),
			formatFloat(rec.Commission),
			formatFloat(rec.Fee),
			formatFloat(rec.NetAmount),
			rec.PortfolioName,
		})
	}
	return w.WriteCSV(path, WriteOptions{
		Headers:   headers,
		Records:   rows,
		BOMPrefix: true,
	})
}

// WriteJSON writes v as indented JSON, creating parent directories as
// needed. Used for the batch payload an external submitter would post.
func (w *Writer) WriteJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	w.logger.Info("JSON written", slog.String("path", path))
	return nil
}
