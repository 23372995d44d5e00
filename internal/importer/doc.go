// Package importer normalizes broker-exported trade rows into strict
// TradeRecords. It owns the column auto-mapper, the per-row transformer and
// its three classifiers (date normalizer, action classifier, OCC option
// symbol decoder), and the batch pipeline that partitions a sheet into
// accepted records and row-scoped errors.
//
// The package performs no I/O and keeps no state across batches; callers
// feed it pre-parsed header and data rows (see the sheet package) and decide
// what an empty batch means.
package importer
