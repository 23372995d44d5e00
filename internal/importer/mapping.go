package importer

import (
	"strings"
)

// Target field names of a normalized trade row. They double as the keys of a
// ColumnMapping and as the exact spellings a template header would use.
const (
	FieldAction     = "action"
	FieldTradeDate  = "tradeDate"
	FieldSymbol     = "symbol"
	FieldQuantity   = "quantity"
	FieldPrice      = "price"
	FieldCommission = "commission"
	FieldFee        = "fee"
	FieldNetAmount  = "netAmount"
)

// TargetFields lists every mappable field in the order AutoMap considers
// them. Fields do not compete for headers: an "Amount" header matches both
// quantity and netAmount, and both get it.
var TargetFields = []string{
	FieldAction,
	FieldTradeDate,
	FieldSymbol,
	FieldQuantity,
	FieldPrice,
	FieldCommission,
	FieldFee,
	FieldNetAmount,
}

// RequiredFields must be populated on every row after extraction.
var RequiredFields = []string{FieldAction, FieldTradeDate, FieldSymbol, FieldQuantity}

// fieldSynonyms holds the header spellings brokers use for each field.
// Static, read-only configuration.
var fieldSynonyms = map[string][]string{
	FieldTradeDate:  {"trade date", "date", "run date", "rundate"},
	FieldAction:     {"action", "type", "transaction type", "transactiontype", "buy/sell"},
	FieldSymbol:     {"symbol", "ticker", "security"},
	FieldQuantity:   {"quantity", "qty", "amount", "shares"},
	FieldPrice:      {"price", "price ($)", "price($)", "trade price"},
	FieldCommission: {"commission", "commission fees", "commission fees ($)"},
	FieldFee:        {"fee", "fees", "tax", "fees ($)"},
	FieldNetAmount:  {"net amount", "total", "amount", "amount ($)", "net", "cost", "cost basis"},
}

// ColumnMapping maps each target field to a source column name. An empty
// value means unmapped; unmapped required fields surface downstream as
// missing-required-field row errors, not here.
type ColumnMapping map[string]string

// NewColumnMapping returns a mapping with every target field unmapped.
func NewColumnMapping() ColumnMapping {
	m := make(ColumnMapping, len(TargetFields))
	for _, field := range TargetFields {
		m[field] = ""
	}
	return m
}

// AutoMap fills the unmapped entries of mapping by scanning headers in order
// and taking the first header that matches the field name or one of its
// synonyms. Existing non-empty entries are never overwritten, so callers may
// pre-seed or override before calling; repeated calls are no-ops. AutoMap is
// best-effort and never fails.
func AutoMap(headers []string, mapping ColumnMapping) {
	for _, field := range TargetFields {
		if mapping[field] != "" {
			continue
		}
		for _, header := range headers {
			if headerMatchesField(header, field) {
				mapping[field] = header
				break
			}
		}
	}
}

func headerMatchesField(header, field string) bool {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" {
		return false
	}
	if h == strings.ToLower(field) {
		return true
	}
	for _, synonym := range fieldSynonyms[field] {
		s := strings.ToLower(synonym)
		if h == s || strings.Contains(h, s) {
			return true
		}
	}
	return false
}
