package storage

import (
	"math"
	"strings"
	"testing"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	meta := RunMetadata{
		Joints:   2,
		Masses:   []float64{1, 0.5, 0.5},
		Lengths:  []float64{1, 1},
		Gravity:  9.81,
		Dt:       0.001,
		Steps:    3,
		Position: "reset",
		Metrics:  map[string]float64{"energy": 1.5},
	}
	trajectory := dynamo.Trajectory{
		{0.1, 1.0, 0.2, 0.3, 0.4, 0.5},
		{0.2, 1.1, 0.21, 0.31, 0.41, 0.51},
		{0.3, 1.2, 0.22, 0.32, 0.42, 0.52},
	}

	runID, err := st.Save(meta, trajectory)
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Joints != 2 || loaded.Dt != 0.001 {
		t.Errorf("metadata mismatch: %+v", loaded)
	}
	if loaded.Metrics["energy"] != 1.5 {
		t.Errorf("metrics not persisted: %v", loaded.Metrics)
	}

	rows, times, err := st.LoadTrajectory(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for k := range rows {
		if len(rows[k]) != 6 {
			t.Fatalf("row %d has %d columns, want 6", k, len(rows[k]))
		}
		for i := range rows[k] {
			if math.Abs(rows[k][i]-trajectory[k][i]) > 1e-12 {
				t.Errorf("row %d col %d = %v, want %v", k, i, rows[k][i], trajectory[k][i])
			}
		}
		wantTime := float64(k+1) * meta.Dt
		if math.Abs(times[k]-wantTime) > 1e-9 {
			t.Errorf("time[%d] = %v, want %v", k, times[k], wantTime)
		}
	}
}

func TestSaveGeneratesDistinctIDs(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	meta := RunMetadata{Joints: 1, Dt: 0.001}
	trajectory := dynamo.Trajectory{{0, 0, 0, 0}}

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		id, err := st.Save(meta, trajectory)
		if err != nil {
			t.Fatal(err)
		}
		if seen[id] {
			t.Fatalf("duplicate run id %s", id)
		}
		seen[id] = true
	}
}

func TestExportCSV(t *testing.T) {
	meta := RunMetadata{ID: "chain1_1", Joints: 1, Dt: 0.5}
	times := []float64{0.5, 1.0}
	trajectory := dynamo.Trajectory{
		{0.1, 0.2, 0.3, 0.4},
		{0.11, 0.21, 0.31, 0.41},
	}

	var buf strings.Builder
	if err := ExportCSV(&buf, meta, times, trajectory); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "time,cart_pos,cart_vel,theta1,omega1" {
		t.Errorf("header = %s", lines[0])
	}
	if lines[1] != "0.500000,0.1,0.2,0.3,0.4" {
		t.Errorf("row 1 = %s", lines[1])
	}
	if lines[2] != "1.000000,0.11,0.21,0.31,0.41" {
		t.Errorf("row 2 = %s", lines[2])
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/missing")
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestHeader(t *testing.T) {
	h := Header(2)
	want := []string{"time", "cart_pos", "cart_vel", "theta1", "omega1", "theta2", "omega2"}
	if len(h) != len(want) {
		t.Fatalf("header length %d, want %d", len(h), len(want))
	}
	for i := range want {
		if h[i] != want[i] {
			t.Errorf("header[%d] = %s, want %s", i, h[i], want[i])
		}
	}
}
