package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"phone-stats/models"
	"phone-stats/utils"
)

var (
	// yearRegexp captures the first standalone four-digit number
	yearRegexp = regexp.MustCompile(`\b(\d{4})\b`)
	// numericRegexp captures the first integer or decimal literal
	numericRegexp = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// Cleaner transforms RawPhones into normalized Phone records.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean normalizes every raw row in order. A row that cannot be normalized
// fails the whole batch; no partial result is returned.
func (c *Cleaner) Clean(raw []*models.RawPhone) ([]*models.Phone, error) {
	result := make([]*models.Phone, 0, len(raw))

	for i, r := range raw {
		phone, err := c.normalize(r)
		if err != nil {
			return nil, fmt.Errorf("cleaner: row %d: %w", i+1, err)
		}
		result = append(result, phone)
	}

	c.logger.Info("[cleaner] Normalized %d rows", len(result))
	return result, nil
}

func (c *Cleaner) normalize(r *models.RawPhone) (*models.Phone, error) {
	announced, err := parseYear(r.LaunchAnnounced)
	if err != nil {
		return nil, err
	}

	// OEM and model are copied verbatim, empty strings included.
	oem, model := r.OEM, r.Model
	status := parseStatus(r.LaunchStatus)

	phone := &models.Phone{
		OEM:               &oem,
		Model:             &model,
		AnnouncedYear:     announced,
		ReleaseStatus:     &status,
		BodyDimensions:    checkEmpty(r.BodyDimensions),
		BodyWeightGrams:   parseNumber(r.BodyWeight),
		BodySIM:           checkEmpty(r.BodySIM),
		DisplayType:       checkEmpty(r.DisplayType),
		DisplaySizeInches: parseNumber(r.DisplaySize),
		DisplayResolution: checkEmpty(r.DisplayResolution),
		SensorList:        checkEmpty(r.FeaturesSensors),
		PlatformOS:        checkEmpty(r.PlatformOS),
	}

	if phone.BodyWeightGrams == nil && checkEmpty(r.BodyWeight) != nil {
		c.logger.Debug("[cleaner] No weight in %q for %s %s", r.BodyWeight, oem, model)
	}
	return phone, nil
}

// parseYear extracts the first standalone four-digit year.
// No match yields nil without error.
func parseYear(raw string) (*int, error) {
	match := yearRegexp.FindStringSubmatch(raw)
	if len(match) < 2 {
		return nil, nil
	}
	year, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, fmt.Errorf("parse year %q: %w", match[1], err)
	}
	return &year, nil
}

// parseStatus keeps only the year when the status text carries one,
// otherwise the raw text ("Discontinued", "Cancelled", "") as-is.
func parseStatus(raw string) string {
	if match := yearRegexp.FindStringSubmatch(raw); len(match) >= 2 {
		return match[1]
	}
	return raw
}

// parseNumber extracts the first numeric literal, e.g.
//
//	"162 g (5.71 oz)" → 162
//	"6.1 inches"      → 6.1
//	"-"               → nil
func parseNumber(raw string) *float64 {
	match := numericRegexp.FindString(raw)
	if match == "" {
		return nil
	}
	val, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return &val
}

// checkEmpty maps blank and "-" cells to nil and keeps anything else untrimmed.
func checkEmpty(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "-" {
		return nil
	}
	return &raw
}
