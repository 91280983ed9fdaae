package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
)

type ExportData struct {
	Meta       RunMetadata `json:"meta"`
	Times      []float64   `json:"times"`
	Trajectory [][]float64 `json:"trajectory"`
}

// ExportJSON writes a full run (metadata plus rows) as indented JSON.
func ExportJSON(w io.Writer, meta RunMetadata, times []float64, trajectory dynamo.Trajectory) error {
	data := ExportData{
		Meta:       meta,
		Times:      times,
		Trajectory: trajectory,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes a run's rows in the same header and row format the store
// persists, so a run can be streamed without touching the data directory.
func ExportCSV(w io.Writer, meta RunMetadata, times []float64, trajectory dynamo.Trajectory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header(meta.Joints)); err != nil {
		return err
	}
	for k, row := range trajectory {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, strconv.FormatFloat(times[k], 'f', 6, 64))
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
