package main

import (
	"fmt"
	"os"

	"phone-stats/config"
	"phone-stats/services"
	"phone-stats/storage"
	"phone-stats/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration: %v", err)
		os.Exit(1)
	}
	level, _ := utils.ParseLevel(cfg.LogLevel)
	logger.SetLevel(level)

	logger.Info("=== Phone dataset statistics starting ===")
	logger.Info("Config — input: %s | year threshold: %d | format: %s",
		cfg.CSVInputPath, cfg.YearThreshold, cfg.ReportFormat)

	if err := run(cfg, logger, services.NewInsightService(logger)); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

// run loads the whole input, normalizes it and prints the report. Any
// ingestion failure aborts before a single statistic is computed.
func run(cfg *config.Config, logger *utils.Logger, insightSvc *services.InsightService) error {
	var reader storage.RawPhoneReader = storage.NewCSVReader(cfg.CSVInputPath)
	rawPhones, err := reader.ReadRaw()
	if err != nil {
		return err
	}
	logger.Info("[csv] Read %d rows from %s", len(rawPhones), cfg.CSVInputPath)

	cleaner := services.NewCleaner(logger)
	phones, err := cleaner.Clean(rawPhones)
	if err != nil {
		return fmt.Errorf("normalize %s: %w", cfg.CSVInputPath, err)
	}

	var store storage.PhoneStore = storage.NewMemoryStore()
	if err := store.Write(phones); err != nil {
		return fmt.Errorf("store phones: %w", err)
	}
	snapshot, err := store.FetchAll()
	if err != nil {
		return fmt.Errorf("fetch phones: %w", err)
	}
	logger.Debug("[store] Holding %d phones", len(snapshot))

	report := insightSvc.Generate(snapshot, cfg.YearThreshold)

	switch cfg.ReportFormat {
	case config.FormatYAML:
		if err := insightSvc.PrintYAML(report); err != nil {
			return err
		}
	default:
		insightSvc.Print(report)
	}

	if cfg.DumpRecords {
		insightSvc.PrintRecords(snapshot)
	}
	return nil
}
