package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tradeimport/internal/config"
	"tradeimport/internal/exporter"
	"tradeimport/internal/importer"
	"tradeimport/internal/infrastructure"
	"tradeimport/internal/sheet"
	"tradeimport/pkg/contracts"
)

func main() {
	inFile := flag.String("in", "", "broker export to import (.csv, .xlsx, .xls)")
	portfolio := flag.String("portfolio", "", "portfolio name stamped on every record")
	outDir := flag.String("out", "", "output directory (defaults to config import.output_dir)")
	configFile := flag.String("config", "", "optional YAML config file")
	mapOverrides := flag.String("map", "", "comma-separated field=Column mapping overrides, e.g. netAmount=Cost Basis")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.VersionString())
		return
	}

	if *inFile == "" || *portfolio == "" {
		fmt.Fprintln(os.Stderr, "usage: tradeimport -in <file> -portfolio <name> [-out dir] [-map field=Column,...]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.InitializeLogger(cfg.Logging)
	logger.Info("Starting import",
		slog.String("version", contracts.Version),
		slog.String("file", *inFile),
		slog.String("portfolio", *portfolio))

	sh, err := sheet.ReadFile(*inFile)
	if err != nil {
		logger.Error("Failed to read input file",
			slog.String("file", *inFile),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(sh.Rows) == 0 {
		logger.Error("No data rows found in input file", slog.String("file", *inFile))
		os.Exit(1)
	}

	mapping := importer.NewColumnMapping()
	if err := applyOverrides(mapping, *mapOverrides); err != nil {
		logger.Error("Invalid mapping override", slog.String("error", err.Error()))
		os.Exit(2)
	}
	importer.AutoMap(sh.Headers, mapping)
	for _, field := range importer.TargetFields {
		logger.Info("Column mapping",
			slog.String("field", field),
			slog.String("column", mapping[field]))
	}

	transformer := importer.NewTransformer(sh.Headers, mapping, *portfolio)
	transformer.SymbolThreshold = cfg.Import.SymbolThreshold

	result := importer.NewPipeline(transformer, logger).Run(sh.Rows)

	dir := cfg.Import.OutputDir
	if *outDir != "" {
		dir = *outDir
	}

	writer := exporter.NewWriter(logger)
	if err := writer.WriteJSON(filepath.Join(dir, "batch.json"), result); err != nil {
		logger.Error("Failed to write batch JSON", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := writer.WriteRecords(filepath.Join(dir, "records.csv"), result.Records); err != nil {
		logger.Error("Failed to write records CSV", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(result.Errors) > 0 {
		if err := writer.WriteRowErrors(filepath.Join(dir, "errors.csv"), result.Errors); err != nil {
			logger.Error("Failed to write errors CSV", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, re := range result.Errors {
			fmt.Fprintf(os.Stderr, "Row %d: %s\n", re.Row, re.Message)
		}
	}

	logger.Info("Import complete",
		slog.String("batch_id", result.BatchID),
		slog.Int("records", len(result.Records)),
		slog.Int("errors", len(result.Errors)),
		slog.String("output_dir", dir))

	if len(result.Records) == 0 {
		// Nothing importable; make that visible to scripts.
		os.Exit(1)
	}
}

// applyOverrides pre-seeds the mapping from "field=Column" pairs so AutoMap
// leaves those fields alone.
func applyOverrides(mapping importer.ColumnMapping, overrides string) error {
	if overrides == "" {
		return nil
	}
	for _, pair := range strings.Split(overrides, ",") {
		field, column, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return fmt.Errorf("malformed override %q", pair)
		}
		if _, known := mapping[field]; !known {
			return fmt.Errorf("unknown field %q", field)
		}
		mapping[field] = column
	}
	return nil
}
