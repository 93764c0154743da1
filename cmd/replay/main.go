// Command replay classifies saved wttr.in format=j1 documents with the same
// domain code the hazards CLI uses, without touching the network. It is used
// to check classifier changes against captured responses and to regenerate
// report fixtures.
//
// Usage:
//
//	go run ./cmd/replay \
//	  -checked-at 2024-10-31T23:00:00Z \
//	  -out data/mock/hazard_reports.json \
//	  data/mock/*_j1.json
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/couchcryptid/weather-hazards/internal/domain"
	"github.com/jonboulle/clockwork"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	checkedAt := fs.String("checked-at", "", "fixed RFC3339 timestamp for report checked_at (default: now)")
	out := fs.String("out", "", "optional output path for the JSON report fixture")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no input files given")
	}

	if *checkedAt != "" {
		ts, err := time.Parse(time.RFC3339, *checkedAt)
		if err != nil {
			return fmt.Errorf("parse -checked-at: %w", err)
		}
		// Fixed clock for reproducible fixtures.
		domain.SetClock(clockwork.NewFakeClockAt(ts))
		defer domain.SetClock(nil)
	}

	reports := make([]domain.HazardReport, 0, fs.NArg())
	for _, path := range fs.Args() {
		report, err := replayFile(path)
		if err != nil {
			return fmt.Errorf("replay %s: %w", path, err)
		}
		reports = append(reports, report)

		fmt.Fprintf(stdout, "# %s\n", path)
		fmt.Fprint(stdout, report.Result.Render())
	}

	printStats(stdout, reports)

	if *out != "" {
		if err := writeJSON(*out, reports); err != nil {
			return fmt.Errorf("writing report fixture: %w", err)
		}
		log.Printf("wrote %d reports: %s", len(reports), *out)
	}
	return nil
}

// replayFile runs one saved document through snapshot construction and
// classification. The query is the file name without its extension.
func replayFile(path string) (domain.HazardReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.HazardReport{}, fmt.Errorf("read: %w", err)
	}

	resp, err := domain.ParseProviderResponse(data)
	if err != nil {
		return domain.HazardReport{}, err
	}

	snap, err := domain.NewSnapshot(resp)
	if err != nil {
		return domain.HazardReport{}, err
	}

	query := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return domain.NewReport(query, domain.Classify(snap)), nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

// collectStats counts non-ok judgments keyed by "category=level".
func collectStats(reports []domain.HazardReport) map[string]int {
	counts := map[string]int{}
	for i := range reports {
		r := &reports[i].Result
		if r.Vampires != domain.VampiresNo {
			counts["vampires="+r.Vampires.String()]++
		}
		if r.Precipitation != domain.PrecipitationOk {
			counts["precipitation="+r.Precipitation.String()]++
		}
		if r.Temperature != domain.TemperatureOk {
			counts["temperature="+r.Temperature.String()]++
		}
		if r.Sun != domain.SunOk {
			counts["sun="+r.Sun.String()]++
		}
	}
	return counts
}

func printStats(w io.Writer, reports []domain.HazardReport) {
	counts := collectStats(reports)
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var calm int
	for i := range reports {
		if reports[i].Hazards == 0 {
			calm++
		}
	}

	fmt.Fprintf(w, "\n=== %d documents, %d without hazards ===\n", len(reports), calm)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %d\n", k, counts[k])
	}
}
