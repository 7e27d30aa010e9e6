// Package storage keeps completed simulation runs on disk, one directory
// per run with JSON metadata and the trace as CSV.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/graspsim/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Tissue        string    `json:"tissue"`
	Timestamp     time.Time `json:"timestamp"`
	Target        float64   `json:"target"`
	Breathing     bool      `json:"breathing"`
	Duration      float64   `json:"duration"`
	Dt            float64   `json:"dt"`
	Kp            float64   `json:"kp"`
	Ki            float64   `json:"ki"`
	Kd            float64   `json:"kd"`
	Damaged       bool      `json:"damaged"`
	DamageTime    float64   `json:"damage_time,omitempty"`
	BreakingPoint float64   `json:"breaking_point"`
	MaxGrip       float64   `json:"max_grip"`
}

func (s *Store) Save(tissueName string, g sim.Gains, target float64, breathing bool, duration float64, tr *sim.Trace) (string, error) {
	runID := fmt.Sprintf("%s_%d", strings.ToLower(tissueName), time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Tissue:        tissueName,
		Timestamp:     time.Now(),
		Target:        target,
		Breathing:     breathing,
		Duration:      duration,
		Dt:            sim.Dt,
		Kp:            g.Kp,
		Ki:            g.Ki,
		Kd:            g.Kd,
		Damaged:       tr.Damaged,
		DamageTime:    tr.DamageTime,
		BreakingPoint: tr.BreakingPoint,
		MaxGrip:       tr.MaxGrip,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "grip", "setpoint"}); err != nil {
		return "", err
	}

	for i := range tr.Times {
		row := []string{
			strconv.FormatFloat(tr.Times[i], 'f', 6, 64),
			strconv.FormatFloat(tr.Grips[i], 'f', 6, 64),
			strconv.FormatFloat(tr.Setpoints[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTrace rebuilds a run's trace from its CSV and metadata.
func (s *Store) LoadTrace(runID string) (*sim.Trace, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	tr := &sim.Trace{
		Damaged:       meta.Damaged,
		DamageTime:    meta.DamageTime,
		BreakingPoint: meta.BreakingPoint,
		MaxGrip:       meta.MaxGrip,
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 3 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		grip, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		setpoint, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}

		tr.Times = append(tr.Times, t)
		tr.Grips = append(tr.Grips, grip)
		tr.Setpoints = append(tr.Setpoints, setpoint)
	}

	return tr, nil
}

// ExportJSON writes a run's metadata and trace as a single JSON document.
func ExportJSON(w *json.Encoder, meta *RunMetadata, tr *sim.Trace) error {
	payload := struct {
		RunMetadata
		Times     []float64 `json:"times"`
		Grips     []float64 `json:"grips"`
		Setpoints []float64 `json:"setpoints"`
	}{
		RunMetadata: *meta,
		Times:       tr.Times,
		Grips:       tr.Grips,
		Setpoints:   tr.Setpoints,
	}
	return w.Encode(payload)
}
