package importer

import (
	"log/slog"

	"github.com/google/uuid"

	"tradeimport/pkg/contracts/domain"
)

// BatchResult is the outcome of one import batch: the accepted records and
// the rejected rows, each list preserving source-row order.
type BatchResult struct {
	BatchID       string               `json:"batch_id"`
	PortfolioName string               `json:"portfolio_name"`
	Records       []domain.TradeRecord `json:"records"`
	Errors        []domain.RowError    `json:"errors"`
}

// Pipeline drives a Transformer over every data row of a parsed sheet. It is
// synchronous, stateless and deterministic: identical inputs produce
// identical partitions (the batch id aside).
type Pipeline struct {
	transformer *Transformer
	logger      *slog.Logger
}

// NewPipeline wires a pipeline around an already-configured transformer.
func NewPipeline(transformer *Transformer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{transformer: transformer, logger: logger}
}

// Run transforms every row, partitioning results into records and row
// errors. A failed row never stops the batch. An empty input yields an empty
// result with no error; whether that is acceptable is the caller's call.
func (p *Pipeline) Run(rows [][]string) BatchResult {
	result := BatchResult{
		BatchID:       uuid.NewString(),
		PortfolioName: p.transformer.portfolioName,
		Records:       []domain.TradeRecord{},
		Errors:        []domain.RowError{},
	}

	for i, row := range rows {
		rec, rowErr := p.transformer.Transform(row, i+1)
		if rowErr != nil {
			p.logger.Debug("row rejected",
				slog.Int("row", rowErr.Row),
				slog.String("reason", rowErr.Message))
			result.Errors = append(result.Errors, *rowErr)
			continue
		}
		result.Records = append(result.Records, *rec)
	}

	p.logger.Info("import batch processed",
		slog.String("batch_id", result.BatchID),
		slog.String("portfolio", result.PortfolioName),
		slog.Int("rows", len(rows)),
		slog.Int("records", len(result.Records)),
		slog.Int("errors", len(result.Errors)))

	return result
}
