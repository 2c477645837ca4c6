package models

// RawPhone holds the twelve text cells of one CSV row exactly as read.
// Nothing here has been trimmed or parsed.
type RawPhone struct {
	OEM               string
	Model             string
	LaunchAnnounced   string
	LaunchStatus      string
	BodyDimensions    string
	BodyWeight        string
	BodySIM           string
	DisplayType       string
	DisplaySize       string
	DisplayResolution string
	FeaturesSensors   string
	PlatformOS        string
}

// Phone is the normalized record built from a RawPhone.
// A nil field means the value was blank, a "-" placeholder, or could not be parsed.
type Phone struct {
	OEM               *string
	Model             *string
	AnnouncedYear     *int
	ReleaseStatus     *string
	BodyDimensions    *string
	BodyWeightGrams   *float64
	BodySIM           *string
	DisplayType       *string
	DisplaySizeInches *float64
	DisplayResolution *string
	SensorList        *string
	PlatformOS        *string
}

// ModelPair identifies a phone by manufacturer and model name.
type ModelPair struct {
	OEM   string `yaml:"oem"`
	Model string `yaml:"model"`
}

// InsightReport holds the computed statistics over the normalized dataset.
type InsightReport struct {
	TotalPhones           int         `yaml:"total_phones"`
	YearThreshold         int         `yaml:"year_threshold"`
	YearMostLaunches      *int        `yaml:"year_most_launches"`
	HeaviestOEM           *string     `yaml:"highest_avg_weight_oem"`
	SingleSensorPhones    int         `yaml:"single_sensor_phones"`
	MismatchedYears       []ModelPair `yaml:"mismatched_years"`
	MostCommonOEM         *string     `yaml:"most_common_oem"`
	MostCommonDisplaySize *string     `yaml:"most_common_display_size"`
	MeanBodyWeight        *float64    `yaml:"mean_body_weight"`
	MedianBodyWeight      *float64    `yaml:"median_body_weight"`
}
