// Package main provides the CLI entry point for ligandid.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ligandid/pkg/ecocyc"
	"ligandid/pkg/hmdb"
	"ligandid/pkg/identify"
	"ligandid/pkg/identify/models"
	"ligandid/pkg/workbook"
)

var (
	excelFile  string
	outDir     string
	hmdbFile   string
	configPath string
	cachePath  string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ligandid",
		Short: "Cross-reference spreadsheet metabolite IDs against EcoCyc and HMDB",
		Long: `ligandid reconciles the metabolite identifiers in a laboratory Excel
workbook to chemical structures (InChI, InChIKey, SMILES) via EcoCyc and
HMDB, classifies every row, and writes five outcome workbooks.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&excelFile, "excelfile", "e", "raw-data/essential_2017Nov(July2018).xlsx", "Raw data Excel file")
	rootCmd.Flags().StringVarP(&outDir, "outdir", "o", "processed-data", "Output directory")
	rootCmd.Flags().StringVar(&hmdbFile, "hmdbfile", "", "Zipped HMDB metabolite dump (default from config)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML run configuration")
	rootCmd.Flags().StringVar(&cachePath, "cache", "", "SQLite file caching EcoCyc responses")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug-level logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := buildLogger(verbose)
	if err != nil {
		return fmt.Errorf("logger setup failed: %w", err)
	}
	defer logger.Sync()

	cfg := identify.DefaultConfig()
	if configPath != "" {
		if cfg, err = identify.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if hmdbFile != "" {
		cfg.HMDB.File = hmdbFile
	}

	if _, err := os.Stat(excelFile); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", workbook.ErrWorkbookNotFound, excelFile)
	}

	logger.Info("loading HMDB dump", zap.String("file", cfg.HMDB.File))
	start := time.Now()
	index, err := hmdb.Load(cfg.HMDB.File)
	if err != nil {
		return fmt.Errorf("HMDB load failed: %w", err)
	}
	logger.Info("HMDB dump loaded",
		zap.Int("metabolites", index.Len()),
		zap.Duration("elapsed", time.Since(start)))

	var cache *ecocyc.Cache
	if cachePath != "" {
		if cache, err = ecocyc.OpenCache(cachePath); err != nil {
			return fmt.Errorf("cache setup failed: %w", err)
		}
		defer cache.Close()
	}
	client := ecocyc.NewClient(cfg.EcoCyc.Endpoint, cfg.EcoCyc.Organism, cfg.EcoCyc.Timeout(), cache, logger)

	proc := identify.New(cfg, client, index, logger)
	logger.Info("processing workbook",
		zap.String("excelfile", excelFile),
		zap.String("outdir", outDir))
	summary, err := proc.Run(cmd.Context(), excelFile, outDir)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	fields := []zap.Field{zap.Int("sheets", summary.Sheets)}
	for _, outcome := range models.Outcomes {
		fields = append(fields, zap.Int(string(outcome), summary.Counts[outcome]))
	}
	logger.Info("run complete", fields...)
	return nil
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
