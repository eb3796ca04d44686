package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazesearch/maze"
	"github.com/katalvlaran/mazesearch/search"
)

// Record is the serialisable form of search.Metrics.
type Record struct {
	Algorithm      string          `yaml:"algorithm" json:"algorithm"`
	Name           string          `yaml:"name" json:"name"`
	Success        bool            `yaml:"success" json:"success"`
	Optimal        bool            `yaml:"optimal" json:"optimal"`
	Complete       bool            `yaml:"complete" json:"complete"`
	Cost           float64         `yaml:"cost" json:"cost"`
	Expanded       int             `yaml:"expanded" json:"expanded"`
	Generated      int             `yaml:"generated" json:"generated"`
	PeakMemory     int             `yaml:"peak_memory" json:"peak_memory"`
	ElapsedSeconds float64         `yaml:"elapsed_seconds" json:"elapsed_seconds"`
	Path           []maze.Position `yaml:"path,flow" json:"path"`
	Actions        string          `yaml:"actions" json:"actions"`
	Error          string          `yaml:"error,omitempty" json:"error,omitempty"`
}

// NewRecord converts res. Actions spells the path as N/S/W/E letters.
func NewRecord(res *search.Metrics) Record {
	rec := Record{
		Algorithm:      res.Algorithm.String(),
		Name:           res.Name,
		Success:        res.Success,
		Optimal:        res.Optimal,
		Complete:       res.Complete,
		Cost:           res.Cost,
		Expanded:       res.Expanded,
		Generated:      res.Generated,
		PeakMemory:     res.PeakMemory,
		ElapsedSeconds: res.Elapsed.Seconds(),
		Path:           res.Path,
	}
	if rec.Path == nil {
		rec.Path = []maze.Position{}
	}
	if acts, err := search.PathActions(res.Path); err == nil {
		for _, a := range acts {
			rec.Actions += a.String()
		}
	}
	if res.Err != nil {
		rec.Error = res.Err.Error()
	}

	return rec
}

// Records converts every result, keeping order.
func Records(results []*search.Metrics) []Record {
	out := make([]Record, len(results))
	for i, res := range results {
		out[i] = NewRecord(res)
	}

	return out
}

// WriteJSON writes results as an indented JSON array.
func WriteJSON(w io.Writer, results []*search.Metrics) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Records(results)); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}

	return nil
}

// WriteYAML writes results as a YAML sequence.
func WriteYAML(w io.Writer, results []*search.Metrics) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Records(results)); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}
