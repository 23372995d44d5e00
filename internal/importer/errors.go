package importer

import "errors"

// Row-scoped import errors. Each converts to a domain.RowError inside the
// pipeline; none of them aborts the batch.
var (
	// ErrInvalidAction means the action string matched no known broker synonym.
	ErrInvalidAction = errors.New("unrecognized trade action")

	// ErrInvalidSymbolFormat means a long symbol token did not match OCC symbology.
	ErrInvalidSymbolFormat = errors.New("invalid OCC option symbol format")

	// ErrInvalidExpirationDate means the OCC symbol matched but encoded an
	// impossible calendar date.
	ErrInvalidExpirationDate = errors.New("invalid expiration date in option symbol")

	// ErrInvalidDate means every date layout, the serial-date rule and the
	// free-form fallbacks were exhausted.
	ErrInvalidDate = errors.New("unparseable trade date")

	// ErrInvalidNumber means a numeric field held a non-numeric token.
	ErrInvalidNumber = errors.New("invalid numeric value")

	// ErrMissingRequiredField means a required field was still unset after
	// extraction.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrColumnNotFound means the mapping references a column that is absent
	// from the header row.
	ErrColumnNotFound = errors.New("mapped column not found in headers")
)
