package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"phone-stats/config"
	"phone-stats/models"
	"phone-stats/services"
	"phone-stats/storage"
	"phone-stats/utils"
)

func fixtureConfig(format string) *config.Config {
	return &config.Config{
		CSVInputPath:  filepath.Join("storage", "testdata", "cells_test.csv"),
		YearThreshold: 1999,
		ReportFormat:  format,
		LogLevel:      "info",
	}
}

func runWithBuffer(t *testing.T, cfg *config.Config) (string, error) {
	t.Helper()
	var out, logOut, logErr bytes.Buffer
	logger := utils.NewLoggerTo(&logOut, &logErr)
	svc := services.NewInsightService(logger)
	svc.SetOutput(&out)

	err := run(cfg, logger, svc)
	return out.String(), err
}

func TestRunTextReport(t *testing.T) {
	out, err := runWithBuffer(t, fixtureConfig(config.FormatText))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, want := range []string{
		"Razr V3",
		"Galaxy A51",
		"152.75",
		"159.50",
		"Apple",
		"Samsung",
		"6.1",
		"2019",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestRunYAMLReport(t *testing.T) {
	out, err := runWithBuffer(t, fixtureConfig(config.FormatYAML))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var r models.InsightReport
	if err := yaml.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("decode report: %v", err)
	}

	if r.TotalPhones != 9 {
		t.Errorf("total_phones: got %d, want 9", r.TotalPhones)
	}
	if r.YearMostLaunches == nil || *r.YearMostLaunches != 2019 {
		t.Errorf("year_most_launches: got %v, want 2019", r.YearMostLaunches)
	}
	if r.MostCommonOEM == nil || *r.MostCommonOEM != "Samsung" {
		t.Errorf("most_common_oem: got %v, want Samsung", r.MostCommonOEM)
	}
	if r.HeaviestOEM == nil || *r.HeaviestOEM != "Apple" {
		t.Errorf("highest_avg_weight_oem: got %v, want Apple", r.HeaviestOEM)
	}
	if r.SingleSensorPhones != 2 {
		t.Errorf("single_sensor_phones: got %d, want 2", r.SingleSensorPhones)
	}
	if r.MostCommonDisplaySize == nil || *r.MostCommonDisplaySize != "6.1" {
		t.Errorf("most_common_display_size: got %v, want 6.1", r.MostCommonDisplaySize)
	}
	if r.MeanBodyWeight == nil || *r.MeanBodyWeight != 152.75 {
		t.Errorf("mean_body_weight: got %v, want 152.75", r.MeanBodyWeight)
	}
	if r.MedianBodyWeight == nil || *r.MedianBodyWeight != 159.5 {
		t.Errorf("median_body_weight: got %v, want 159.5", r.MedianBodyWeight)
	}

	want := []models.ModelPair{
		{OEM: "Nokia", Model: "3310"},
		{OEM: "Motorola", Model: "Razr V3"},
		{OEM: "Samsung", Model: "Galaxy A51"},
	}
	if len(r.MismatchedYears) != len(want) {
		t.Fatalf("mismatched_years: got %v, want %v", r.MismatchedYears, want)
	}
	for i := range want {
		if r.MismatchedYears[i] != want[i] {
			t.Errorf("mismatched_years[%d]: got %v, want %v", i, r.MismatchedYears[i], want[i])
		}
	}
}

func TestRunDumpsRecords(t *testing.T) {
	cfg := fixtureConfig(config.FormatText)
	cfg.DumpRecords = true

	out, err := runWithBuffer(t, cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "Alcatel | OT-club | announced=None status=Cancelled") {
		t.Errorf("record dump missing Alcatel row\n%s", out)
	}
}

func TestRunMissingFileIsIngestionError(t *testing.T) {
	cfg := fixtureConfig(config.FormatText)
	cfg.CSVInputPath = filepath.Join(t.TempDir(), "cells.csv")

	out, err := runWithBuffer(t, cfg)
	var ingestErr *storage.IngestionError
	if !errors.As(err, &ingestErr) {
		t.Fatalf("expected *storage.IngestionError, got %v", err)
	}
	if out != "" {
		t.Errorf("no report should be printed on ingestion failure, got %q", out)
	}
}
