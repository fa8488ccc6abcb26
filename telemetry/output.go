package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/warsheep/config"
)

// OutputManager writes run output: rounds.csv, perf.csv and the effective config.
type OutputManager struct {
	dir    string
	rounds csvFile
	perf   csvFile
}

// csvFile is an output file whose header is written with the first record.
type csvFile struct {
	f             *os.File
	headerWritten bool
}

// NewOutputManager creates the output directory and files.
// Returns nil if dir is empty (output disabled); all methods accept a nil receiver.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "rounds.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating rounds.csv: %w", err)
	}
	om.rounds.f = f

	f, err = os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		om.rounds.f.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perf.f = f

	return om, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteRound appends a row to rounds.csv.
func (om *OutputManager) WriteRound(stats RoundStats) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(&om.rounds, []RoundStats{stats}); err != nil {
		return fmt.Errorf("writing round: %w", err)
	}
	return nil
}

// WritePerf appends a row to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, round int) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(&om.perf, []PerfStatsCSV{stats.ToCSV(round)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

func writeRecords[T any](out *csvFile, records []T) error {
	if out.headerWritten {
		return gocsv.MarshalWithoutHeaders(records, out.f)
	}
	if err := gocsv.Marshal(records, out.f); err != nil {
		return err
	}
	out.headerWritten = true
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	for _, out := range []*csvFile{&om.rounds, &om.perf} {
		if out.f == nil {
			continue
		}
		if err := out.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
