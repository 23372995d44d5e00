package importer

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"tradeimport/pkg/contracts/domain"
)

const (
	// DefaultSymbolThreshold separates equity tickers from OCC option
	// symbols: tokens shorter than this are equities, anything longer must
	// decode as an option. The shortest legal OCC symbol is nine characters
	// (1-char root + YYMMDD + C/P + 1-digit strike).
	DefaultSymbolThreshold = 9

	// OptionContractSize is the number of underlying units per option
	// contract.
	OptionContractSize = 100
)

var numericFields = []string{FieldQuantity, FieldPrice, FieldCommission, FieldFee, FieldNetAmount}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Transformer converts raw sheet rows into validated TradeRecords. It holds
// only read-only state and is safe for concurrent use.
type Transformer struct {
	headers       []string
	mapping       ColumnMapping
	portfolioName string

	// SymbolThreshold overrides DefaultSymbolThreshold when set above zero.
	SymbolThreshold int
}

// NewTransformer builds a Transformer over a sheet's header row, a finalized
// column mapping and the batch's portfolio tag.
func NewTransformer(headers []string, mapping ColumnMapping, portfolioName string) *Transformer {
	return &Transformer{
		headers:         headers,
		mapping:         mapping,
		portfolioName:   portfolioName,
		SymbolThreshold: DefaultSymbolThreshold,
	}
}

// Transform produces either a complete TradeRecord or a RowError carrying
// the 1-based row index. Processing stops at the first failure; a failed row
// never yields a partial record.
func (t *Transformer) Transform(row []string, rowNum int) (*domain.TradeRecord, *domain.RowError) {
	rec, err := t.transform(row)
	if err != nil {
		return nil, &domain.RowError{Row: rowNum, Message: err.Error()}
	}
	return rec, nil
}

func (t *Transformer) transform(row []string) (*domain.TradeRecord, error) {
	var (
		rec       domain.TradeRecord
		hasAction bool
		hasDate   bool
		numbers   = make(map[string]float64, len(numericFields))
	)

	// Action first: an unclassifiable action makes the rest of the row moot.
	raw, err := t.cell(row, FieldAction)
	if err != nil {
		return nil, err
	}
	if raw != "" {
		action := ClassifyAction(raw)
		if action == domain.ActionInvalid {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAction, raw)
		}
		rec.Action = action
		hasAction = true
	}

	// Symbol: short tokens are equities, long ones must decode as OCC
	// option symbols.
	raw, err = t.cell(row, FieldSymbol)
	if err != nil {
		return nil, err
	}
	if raw != "" {
		if len(raw) < t.symbolThreshold() {
			rec.TradeType = domain.TradeTypeStock
			rec.Symbol = strings.ToUpper(raw)
		} else {
			details, derr := DecodeOptionSymbol(raw)
			if derr != nil {
				return nil, derr
			}
			rec.TradeType = domain.TradeTypeOption
			rec.Symbol = strings.ToUpper(raw)
			rec.USymbol = details.USymbol
			rec.ExpirationDate = details.ExpirationDate
			rec.OptionType = details.OptionType
			rec.StrikePrice = details.StrikePrice
		}
	}

	raw, err = t.cell(row, FieldTradeDate)
	if err != nil {
		return nil, err
	}
	if raw != "" {
		parsed, ok := NormalizeDate(raw)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
		}
		rec.TradeDate = parsed
		hasDate = true
	}

	for _, field := range numericFields {
		raw, err = t.cell(row, field)
		if err != nil {
			return nil, err
		}
		if raw == "" {
			continue
		}
		value, perr := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if perr != nil {
			return nil, fmt.Errorf("%w for %s: %q", ErrInvalidNumber, field, raw)
		}
		// Brokers encode direction in the action column; any sign on the
		// amount itself is noise.
		numbers[field] = math.Abs(value)
	}

	for _, field := range RequiredFields {
		var missing bool
		switch field {
		case FieldAction:
			missing = !hasAction
		case FieldTradeDate:
			missing = !hasDate
		case FieldSymbol:
			missing = rec.Symbol == ""
		case FieldQuantity:
			_, ok := numbers[FieldQuantity]
			missing = !ok
		}
		if !missing {
			continue
		}
		if t.mapping[field] == "" {
			return nil, fmt.Errorf("%w: %s is not mapped to any column", ErrMissingRequiredField, field)
		}
		return nil, fmt.Errorf("%w: %s in column %q", ErrMissingRequiredField, field, t.mapping[field])
	}

	// Unset price, commission and fee default to zero.
	rec.Quantity = numbers[FieldQuantity]
	rec.Price = numbers[FieldPrice]
	rec.Commission = numbers[FieldCommission]
	rec.Fee = numbers[FieldFee]

	if rec.TradeType == domain.TradeTypeOption {
		rec.Quantity *= OptionContractSize
	}

	if net, supplied := numbers[FieldNetAmount]; supplied {
		// A supplied net amount is authoritative: back out the commission
		// and drop the fee.
		rec.NetAmount = net
		rec.Commission = net - rec.Quantity*rec.Price
		rec.Fee = 0
	} else {
		rec.NetAmount = rec.Quantity*rec.Price - (rec.Commission + rec.Fee)
	}

	rec.PortfolioName = t.portfolioName
	rec.TradeDate = rec.TradeDate.UTC().Truncate(time.Second)

	if verr := validate.Struct(&rec); verr != nil {
		return nil, fmt.Errorf("record failed validation: %w", verr)
	}
	return &rec, nil
}

// cell returns the trimmed source cell for a mapped field, or "" when the
// field is unmapped or the row is short. A mapped column missing from the
// header row is an error.
func (t *Transformer) cell(row []string, field string) (string, error) {
	column := t.mapping[field]
	if column == "" {
		return "", nil
	}
	idx := slices.Index(t.headers, column)
	if idx < 0 {
		return "", fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}
	if idx >= len(row) {
		return "", nil
	}
	return strings.TrimSpace(row[idx]), nil
}

func (t *Transformer) symbolThreshold() int {
	if t.SymbolThreshold > 0 {
		return t.SymbolThreshold
	}
	return DefaultSymbolThreshold
}
