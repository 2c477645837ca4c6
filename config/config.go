package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

var (
	ErrInvalidReportFormat = errors.New("REPORT_FORMAT must be 'text' or 'yaml'")
	ErrInvalidLogLevel     = errors.New("LOG_LEVEL must be one of: debug, info, warn, error")
	ErrMissingInputPath    = errors.New("CSV_INPUT_PATH must not be empty")
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	CSVInputPath  string
	YearThreshold int

	ReportFormat string
	LogLevel     string
	DumpRecords  bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		CSVInputPath:  getEnv("CSV_INPUT_PATH", "cells.csv"),
		YearThreshold: getEnvInt("YEAR_THRESHOLD", 1999),

		ReportFormat: strings.ToLower(getEnv("REPORT_FORMAT", FormatText)),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "info")),
		DumpRecords:  getEnvBool("DUMP_RECORDS", false),
	}
}

// Validate checks the values Load could not sanity-check on its own.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CSVInputPath) == "" {
		return ErrMissingInputPath
	}

	switch c.ReportFormat {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidReportFormat, c.ReportFormat)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
