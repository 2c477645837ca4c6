package services

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"phone-stats/models"
	"phone-stats/utils"
)

type InsightService struct {
	logger *utils.Logger
	out    io.Writer
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger, out: os.Stdout}
}

// SetOutput redirects report output, which defaults to stdout.
func (s *InsightService) SetOutput(w io.Writer) {
	s.out = w
}

// Generate runs every statistic over phones. phones is only read.
func (s *InsightService) Generate(phones []*models.Phone, yearThreshold int) *models.InsightReport {
	report := &models.InsightReport{
		TotalPhones:           len(phones),
		YearThreshold:         yearThreshold,
		YearMostLaunches:      YearWithMostLaunchesAfter(phones, yearThreshold),
		HeaviestOEM:           OEMWithHighestAvgWeight(phones),
		SingleSensorPhones:    CountSingleSensorPhones(phones),
		MismatchedYears:       MismatchedAnnounceReleaseYears(phones),
		MostCommonOEM:         MostCommonOEM(phones),
		MostCommonDisplaySize: MostCommonDisplaySize(phones),
		MeanBodyWeight:        MeanBodyWeight(phones),
		MedianBodyWeight:      MedianBodyWeight(phones),
	}

	s.logger.Debug("[insights] %d phones, %d with mismatched years, %d single-sensor",
		report.TotalPhones, len(report.MismatchedYears), report.SingleSensorPhones)
	return report
}

// tally counts keys and remembers the order they were first seen in, so
// ties resolve to the earliest key.
type tally[K comparable] struct {
	counts map[K]int
	order  []K
}

func newTally[K comparable]() *tally[K] {
	return &tally[K]{counts: make(map[K]int)}
}

func (t *tally[K]) add(key K) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

func (t *tally[K]) top() (K, bool) {
	var best K
	bestCount := 0
	for _, key := range t.order {
		if n := t.counts[key]; n > bestCount {
			best, bestCount = key, n
		}
	}
	return best, bestCount > 0
}

// YearWithMostLaunchesAfter returns the announcement year after threshold
// that the most phones share.
func YearWithMostLaunchesAfter(phones []*models.Phone, threshold int) *int {
	years := newTally[int]()
	for _, p := range phones {
		if p.AnnouncedYear != nil && *p.AnnouncedYear > threshold {
			years.add(*p.AnnouncedYear)
		}
	}

	year, ok := years.top()
	if !ok {
		return nil
	}
	return &year
}

// OEMWithHighestAvgWeight returns the manufacturer whose weighed phones
// have the highest mean weight.
func OEMWithHighestAvgWeight(phones []*models.Phone) *string {
	type weightSum struct {
		total float64
		count int
	}

	sums := make(map[string]*weightSum)
	var order []string
	for _, p := range phones {
		if p.OEM == nil || p.BodyWeightGrams == nil {
			continue
		}
		ws, ok := sums[*p.OEM]
		if !ok {
			ws = &weightSum{}
			sums[*p.OEM] = ws
			order = append(order, *p.OEM)
		}
		ws.total += *p.BodyWeightGrams
		ws.count++
	}

	if len(order) == 0 {
		return nil
	}

	best := order[0]
	bestAvg := sums[best].total / float64(sums[best].count)
	for _, oem := range order[1:] {
		if avg := sums[oem].total / float64(sums[oem].count); avg > bestAvg {
			best, bestAvg = oem, avg
		}
	}
	return &best
}

// CountSingleSensorPhones counts phones whose sensor list has exactly one
// comma-separated entry.
func CountSingleSensorPhones(phones []*models.Phone) int {
	count := 0
	for _, p := range phones {
		if p.SensorList == nil {
			continue
		}
		if len(strings.Split(*p.SensorList, ",")) == 1 {
			count++
		}
	}
	return count
}

// MismatchedAnnounceReleaseYears lists phones announced in one year and
// released in another. A status without a year, such as "Discontinued",
// compares as year 0 and is therefore always reported.
func MismatchedAnnounceReleaseYears(phones []*models.Phone) []models.ModelPair {
	pairs := make([]models.ModelPair, 0)
	for _, p := range phones {
		if p.AnnouncedYear == nil || p.ReleaseStatus == nil {
			continue
		}
		released, err := strconv.ParseUint(*p.ReleaseStatus, 10, 32)
		if err != nil {
			released = 0
		}
		if uint64(*p.AnnouncedYear) == released {
			continue
		}
		if p.OEM == nil || p.Model == nil {
			continue
		}
		pairs = append(pairs, models.ModelPair{OEM: *p.OEM, Model: *p.Model})
	}
	return pairs
}

// MostCommonOEM returns the manufacturer that appears most often. An empty
// manufacturer name counts like any other.
func MostCommonOEM(phones []*models.Phone) *string {
	oems := newTally[string]()
	for _, p := range phones {
		if p.OEM != nil {
			oems.add(*p.OEM)
		}
	}

	oem, ok := oems.top()
	if !ok {
		return nil
	}
	return &oem
}

// MostCommonDisplaySize returns the most frequent display size in its
// shortest decimal form ("6.1", "5").
func MostCommonDisplaySize(phones []*models.Phone) *string {
	sizes := newTally[string]()
	for _, p := range phones {
		if p.DisplaySizeInches != nil {
			sizes.add(strconv.FormatFloat(*p.DisplaySizeInches, 'f', -1, 64))
		}
	}

	size, ok := sizes.top()
	if !ok {
		return nil
	}
	return &size
}

func MeanBodyWeight(phones []*models.Phone) *float64 {
	weights := bodyWeights(phones)
	if len(weights) == 0 {
		return nil
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	mean := total / float64(len(weights))
	return &mean
}

func MedianBodyWeight(phones []*models.Phone) *float64 {
	weights := bodyWeights(phones)
	n := len(weights)
	if n == 0 {
		return nil
	}

	sort.Float64s(weights)
	median := weights[n/2]
	if n%2 == 0 {
		median = (weights[n/2-1] + weights[n/2]) / 2
	}
	return &median
}

func bodyWeights(phones []*models.Phone) []float64 {
	weights := make([]float64, 0, len(phones))
	for _, p := range phones {
		if p.BodyWeightGrams != nil {
			weights = append(weights, *p.BodyWeightGrams)
		}
	}
	return weights
}

func (s *InsightService) Print(r *models.InsightReport) {
	w := s.out
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  📱 PHONE DATASET INSIGHTS\033[0m\n")
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	fmt.Fprintf(w, "\033[1;33m  Launch Years\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.MismatchedYears) == 0 {
		fmt.Fprintf(w, "  No phones were announced in one year and released in another.\n")
	} else {
		fmt.Fprintf(w, "  Phones announced in one year and released in another:\n")
		oemWidth := runewidth.StringWidth("OEM")
		for _, p := range r.MismatchedYears {
			if pw := runewidth.StringWidth(p.OEM); pw > oemWidth {
				oemWidth = pw
			}
		}
		if oemWidth > 24 {
			oemWidth = 24
		}
		fmt.Fprintf(w, "  %s  %s\n", runewidth.FillRight("OEM", oemWidth), "Model")
		for _, p := range r.MismatchedYears {
			oem := runewidth.Truncate(p.OEM, oemWidth, "...")
			fmt.Fprintf(w, "  %s  %s\n", runewidth.FillRight(oem, oemWidth), runewidth.Truncate(p.Model, 40, "..."))
		}
	}
	printLine(w, fmt.Sprintf("Year with most phones launched after %d", r.YearThreshold), optInt(r.YearMostLaunches))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Manufacturers\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if r.MostCommonOEM != nil {
		printLine(w, "Most common OEM", *r.MostCommonOEM)
	} else {
		printLine(w, "Most common OEM", "No data found.")
	}
	printLine(w, "Highest average body weight OEM", optString(r.HeaviestOEM))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Hardware\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	printLine(w, "Phones with only one feature sensor", strconv.Itoa(r.SingleSensorPhones))
	printLine(w, "Most common display size", optString(r.MostCommonDisplaySize))
	printLine(w, "Mean body weight", optFloat2(r.MeanBodyWeight))
	printLine(w, "Median body weight", optFloat2(r.MedianBodyWeight))

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
}

// PrintYAML writes the report as a YAML document with weights rounded to
// two decimals.
func (s *InsightService) PrintYAML(r *models.InsightReport) error {
	out := *r
	if r.MeanBodyWeight != nil {
		mean := round2(*r.MeanBodyWeight)
		out.MeanBodyWeight = &mean
	}
	if r.MedianBodyWeight != nil {
		median := round2(*r.MedianBodyWeight)
		out.MedianBodyWeight = &median
	}

	enc := yaml.NewEncoder(s.out)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("insights: encode yaml: %w", err)
	}
	return enc.Close()
}

// PrintRecords writes one line per normalized phone.
func (s *InsightService) PrintRecords(phones []*models.Phone) {
	for i, p := range phones {
		fmt.Fprintf(s.out, "%4d. %s | %s | announced=%s status=%s | weight=%s size=%s | sensors=%s | os=%s\n",
			i+1, optString(p.OEM), optString(p.Model),
			optInt(p.AnnouncedYear), optString(p.ReleaseStatus),
			optFloat(p.BodyWeightGrams), optFloat(p.DisplaySizeInches),
			optString(p.SensorList), optString(p.PlatformOS))
	}
}

const labelWidth = 40

func printLine(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s: \033[1m%s\033[0m\n", runewidth.FillRight(label, labelWidth), value)
}

func optString(v *string) string {
	if v == nil {
		return "None"
	}
	return *v
}

func optInt(v *int) string {
	if v == nil {
		return "None"
	}
	return strconv.Itoa(*v)
}

func optFloat(v *float64) string {
	if v == nil {
		return "None"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func optFloat2(v *float64) string {
	if v == nil {
		return "None"
	}
	return fmt.Sprintf("%.2f", *v)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
