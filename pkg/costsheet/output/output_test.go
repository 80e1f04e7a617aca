package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"gopkg.in/yaml.v2"
)

func sampleResult() *models.Result {
	return &models.Result{
		Specifications: []models.SpecificationRecord{
			{Name: "Center Hung", Pitch: 4, Height: 20, Width: 30, Quantity: 1},
		},
		Totals:              models.ProjectTotals{FinalClientTotal: 300000, Reconciliation: models.ReconciledComputed},
		ResolvedProjectName: "Arena Refresh",
	}
}

func TestToJSON(t *testing.T) {
	compact, err := ToJSON(sampleResult(), false)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if bytes.Contains(compact, []byte("\n")) {
		t.Error("compact output contains newlines")
	}

	var decoded map[string]any
	if err := json.Unmarshal(compact, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["resolved_project_name"] != "Arena Refresh" {
		t.Errorf("resolved_project_name = %v", decoded["resolved_project_name"])
	}
	totals := decoded["totals"].(map[string]any)
	if totals["final_client_total"] != 300000.0 {
		t.Errorf("final_client_total = %v", totals["final_client_total"])
	}
	if _, ok := decoded["specifications"].([]any)[0].(map[string]any)["brightness"]; ok {
		t.Error("absent brightness should be omitted")
	}

	pretty, err := ToJSON(sampleResult(), true)
	if err != nil {
		t.Fatalf("ToJSON pretty: %v", err)
	}
	if !bytes.Contains(pretty, []byte("\n  \"")) {
		t.Error("pretty output is not indented")
	}
}

func TestToYAML(t *testing.T) {
	data, err := ToYAML(sampleResult())
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	if !strings.Contains(string(data), "resolved_project_name: Arena Refresh") {
		t.Errorf("unexpected YAML:\n%s", data)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
}

func TestMarshal(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML, ""} {
		if _, err := Marshal(sampleResult(), f, false); err != nil {
			t.Errorf("Marshal(%q): %v", f, err)
		}
	}
}

func TestManifestToJSON(t *testing.T) {
	m := &Manifest{RunID: "run-1", Files: []ManifestEntry{{Input: "a.xlsx", Error: "no sheet"}}}
	data, err := ManifestToJSON(m, false)
	if err != nil {
		t.Fatalf("ManifestToJSON: %v", err)
	}
	expected := `{"run_id":"run-1","files":[{"input":"a.xlsx","error":"no sheet"}]}`
	if string(data) != expected {
		t.Errorf("ManifestToJSON = %s, expected %s", data, expected)
	}
}
