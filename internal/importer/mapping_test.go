package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoMapExactFieldNames(t *testing.T) {
	headers := []string{"action", "tradeDate", "symbol", "quantity", "price", "commission", "fee", "netAmount"}
	mapping := NewColumnMapping()

	AutoMap(headers, mapping)

	for _, field := range TargetFields {
		assert.Equal(t, field, mapping[field])
	}
}

func TestAutoMapSynonyms(t *testing.T) {
	headers := []string{"Transaction Type", "Run Date", "Ticker", "Qty", "Trade Price", "Commission", "Fees ($)", "Total Cost ($)"}
	mapping := NewColumnMapping()

	AutoMap(headers, mapping)

	assert.Equal(t, "Transaction Type", mapping[FieldAction])
	assert.Equal(t, "Run Date", mapping[FieldTradeDate])
	assert.Equal(t, "Ticker", mapping[FieldSymbol])
	assert.Equal(t, "Qty", mapping[FieldQuantity])
	assert.Equal(t, "Trade Price", mapping[FieldPrice])
	assert.Equal(t, "Commission", mapping[FieldCommission])
	assert.Equal(t, "Fees ($)", mapping[FieldFee])
	assert.Equal(t, "Total Cost ($)", mapping[FieldNetAmount])
}

func TestAutoMapFirstHeaderWins(t *testing.T) {
	mapping := NewColumnMapping()

	AutoMap([]string{"Date", "Run Date", "Settlement Date"}, mapping)

	assert.Equal(t, "Date", mapping[FieldTradeDate])
}

func TestAutoMapNeverOverwrites(t *testing.T) {
	mapping := NewColumnMapping()
	mapping[FieldSymbol] = "Instrument"

	AutoMap([]string{"Ticker", "Symbol"}, mapping)

	assert.Equal(t, "Instrument", mapping[FieldSymbol])
}

func TestAutoMapIdempotent(t *testing.T) {
	headers := []string{"Action", "Date", "Symbol", "Shares", "Price"}
	mapping := NewColumnMapping()

	AutoMap(headers, mapping)
	snapshot := make(ColumnMapping, len(mapping))
	for k, v := range mapping {
		snapshot[k] = v
	}

	AutoMap(headers, mapping)
	assert.Equal(t, snapshot, mapping)
}

func TestAutoMapLeavesUnmatchedEmpty(t *testing.T) {
	mapping := NewColumnMapping()

	AutoMap([]string{"Symbol", "Shares"}, mapping)

	assert.Empty(t, mapping[FieldAction])
	assert.Empty(t, mapping[FieldTradeDate])
	assert.Empty(t, mapping[FieldCommission])
}

// Fields do not compete for headers: a bare "Amount" header is a synonym of
// both quantity and netAmount and maps to both.
func TestAutoMapSharedHeader(t *testing.T) {
	mapping := NewColumnMapping()

	AutoMap([]string{"Amount"}, mapping)

	assert.Equal(t, "Amount", mapping[FieldQuantity])
	assert.Equal(t, "Amount", mapping[FieldNetAmount])
}
