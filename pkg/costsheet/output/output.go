// Package output serializes ingestion results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"gopkg.in/yaml.v2"
)

// Format names a serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ToJSON serializes a result to JSON.
func ToJSON(result *models.Result, pretty bool) ([]byte, error) {
	return marshalJSON(result, pretty)
}

// ToYAML serializes a result to YAML.
func ToYAML(result *models.Result) ([]byte, error) {
	return yaml.Marshal(result)
}

// Marshal serializes a result in the given format. An empty format means JSON.
func Marshal(result *models.Result, format Format, pretty bool) ([]byte, error) {
	if format == FormatYAML {
		return ToYAML(result)
	}
	return ToJSON(result, pretty)
}

// ManifestToJSON serializes a batch manifest to JSON.
func ManifestToJSON(m *Manifest, pretty bool) ([]byte, error) {
	return marshalJSON(m, pretty)
}

func marshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// Manifest describes one batch run over several input files.
type Manifest struct {
	RunID string          `json:"run_id"`
	Files []ManifestEntry `json:"files"`
}

// ManifestEntry records the outcome for one input file.
type ManifestEntry struct {
	Input       string  `json:"input"`
	Output      string  `json:"output,omitempty"`
	ProjectName string  `json:"project_name,omitempty"`
	FinalTotal  float64 `json:"final_total,omitempty"`
	Warnings    int     `json:"warnings,omitempty"`
	Error       string  `json:"error,omitempty"`
}
