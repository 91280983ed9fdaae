// Package storage persists simulation runs under a data directory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
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
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Joints    int                `json:"joints"`
	Masses    []float64          `json:"masses"`
	Lengths   []float64          `json:"lengths"`
	Gravity   float64            `json:"gravity"`
	Dt        float64            `json:"dt"`
	Steps     int                `json:"steps"`
	Position  string             `json:"position"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes metadata.json and trajectory.csv for a completed run and
// returns the generated run id.
func (s *Store) Save(meta RunMetadata, trajectory dynamo.Trajectory) (string, error) {
	// Nanosecond resolution keeps back-to-back runs from colliding.
	runID := fmt.Sprintf("chain%d_%d", meta.Joints, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

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

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(Header(meta.Joints)); err != nil {
		return "", err
	}
	for k, row := range trajectory {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, strconv.FormatFloat(float64(k+1)*meta.Dt, 'f', 6, 64))
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// Header names the CSV columns for a chain with n joints: time, cart
// position and velocity, then angle/angular-velocity pairs per joint.
func Header(n int) []string {
	h := []string{"time", "cart_pos", "cart_vel"}
	for j := 1; j <= n; j++ {
		h = append(h, fmt.Sprintf("theta%d", j), fmt.Sprintf("omega%d", j))
	}
	return h
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

// LoadTrajectory reads back the recorded rows and their times.
func (s *Store) LoadTrajectory(runID string) (dynamo.Trajectory, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return dynamo.Trajectory{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	rows := make(dynamo.Trajectory, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			continue
		}
		row := make([]float64, 0, len(rec)-1)
		for _, field := range rec[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			row = append(row, v)
		}
		times = append(times, t)
		rows = append(rows, row)
	}
	return rows, times, nil
}
