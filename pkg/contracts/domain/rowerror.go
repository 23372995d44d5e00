package domain

import "fmt"

// RowError is a row-scoped validation failure. A failed row produces exactly
// one RowError and no partial TradeRecord; the batch as a whole continues.
type RowError struct {
	// Row is the 1-based index into the source data rows (the header row is
	// not counted).
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}
