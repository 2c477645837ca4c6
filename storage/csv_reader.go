package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"phone-stats/models"
)

// columnCount is the number of positional columns a phone row carries.
const columnCount = 12

// CSVReader loads raw phone rows from a CSV file with a header row.
type CSVReader struct {
	path string
}

// NewCSVReader returns a reader for the file at path. The file is not
// opened until ReadRaw is called.
func NewCSVReader(path string) *CSVReader {
	return &CSVReader{path: path}
}

// Path returns the file this reader loads from.
func (c *CSVReader) Path() string {
	return c.path
}

// ReadRaw reads every data row of the file. Any open, header or row
// failure aborts the whole load with an *IngestionError; no partial
// result is returned.
func (c *CSVReader) ReadRaw() ([]*models.RawPhone, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, &IngestionError{Path: c.path, Err: err}
	}
	defer f.Close()

	return readRaw(c.path, f)
}

func readRaw(path string, r io.Reader) ([]*models.RawPhone, error) {
	reader := csv.NewReader(r)
	// The header fixes the expected field count for every following row.
	reader.FieldsPerRecord = 0
	reader.LazyQuotes = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []*models.RawPhone{}, nil
		}
		return nil, &IngestionError{Path: path, Err: fmt.Errorf("read header: %w", err)}
	}

	phones := make([]*models.RawPhone, 0, 64)
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &IngestionError{Path: path, Row: row, Err: err}
		}
		phones = append(phones, rawFromRecord(record))
	}

	return phones, nil
}

// rawFromRecord maps positional cells onto a RawPhone. Cells beyond the end
// of a short record read as empty.
func rawFromRecord(record []string) *models.RawPhone {
	cells := make([]string, columnCount)
	copy(cells, record)

	return &models.RawPhone{
		OEM:               cells[0],
		Model:             cells[1],
		LaunchAnnounced:   cells[2],
		LaunchStatus:      cells[3],
		BodyDimensions:    cells[4],
		BodyWeight:        cells[5],
		BodySIM:           cells[6],
		DisplayType:       cells[7],
		DisplaySize:       cells[8],
		DisplayResolution: cells[9],
		FeaturesSensors:   cells[10],
		PlatformOS:        cells[11],
	}
}
