// Package config holds the tunable heuristics of the ingestion pass.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the heuristics configuration, usually read from costsheet.toml.
type Config struct {
	// HeaderScanRows bounds the specification header search.
	HeaderScanRows int `toml:"header_scan_rows"`
	// FinancialScanRows bounds the financial header search.
	FinancialScanRows int `toml:"financial_scan_rows"`
	// NameScanRows bounds the project-name label search on the two known sheets.
	NameScanRows int `toml:"name_scan_rows"`
	// OtherSheetScanRows and OtherSheetScanCols bound the top-left region
	// searched on every other sheet.
	OtherSheetScanRows int `toml:"other_sheet_scan_rows"`
	OtherSheetScanCols int `toml:"other_sheet_scan_cols"`
	// MatchFloor caps the minimum containment score of a cross-sheet match.
	MatchFloor int `toml:"match_floor"`

	SoftCostKeywords []string `toml:"soft_cost_keywords"`
	PlaceholderName  string   `toml:"placeholder_name"`
	FillMergedCells  bool     `toml:"fill_merged_cells"`
}

// DefaultConfig returns the built-in heuristics.
func DefaultConfig() *Config {
	return &Config{
		HeaderScanRows:     20,
		FinancialScanRows:  40,
		NameScanRows:       15,
		OtherSheetScanRows: 10,
		OtherSheetScanCols: 6,
		MatchFloor:         10,
		PlaceholderName:    "Untitled Project",
	}
}

// Parse decodes TOML data over the defaults. Absent or zero settings keep
// their default value.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// LoadConfig reads a TOML file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return Parse(data)
}

func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.HeaderScanRows <= 0 {
		c.HeaderScanRows = d.HeaderScanRows
	}
	if c.FinancialScanRows <= 0 {
		c.FinancialScanRows = d.FinancialScanRows
	}
	if c.NameScanRows <= 0 {
		c.NameScanRows = d.NameScanRows
	}
	if c.OtherSheetScanRows <= 0 {
		c.OtherSheetScanRows = d.OtherSheetScanRows
	}
	if c.OtherSheetScanCols <= 0 {
		c.OtherSheetScanCols = d.OtherSheetScanCols
	}
	if c.MatchFloor <= 0 {
		c.MatchFloor = d.MatchFloor
	}
	if c.PlaceholderName == "" {
		c.PlaceholderName = d.PlaceholderName
	}
}
