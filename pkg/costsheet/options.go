// Package costsheet ingests LED cost sheet workbooks into a normalized,
// reconciled financial model.
package costsheet

import (
	"io"
	"log/slog"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/config"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/naming"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/parser"
)

// Options configures an ingestion pass.
type Options struct {
	// Config holds the heuristics. If nil, config.DefaultConfig() is used.
	Config *config.Config
	// Filename is the naming hint of last resort.
	// If empty, the workbook's BookName is used.
	Filename string
	// Logger receives diagnostics. If nil, logging is discarded.
	Logger *slog.Logger
	// NameStrategies overrides the project-name cascade.
	// If nil, naming.DefaultStrategies is used.
	NameStrategies []naming.Strategy
}

// DefaultOptions returns default ingestion options.
func DefaultOptions() Options {
	return Options{
		Config: config.DefaultConfig(),
	}
}

func (o Options) config() *config.Config {
	if o.Config != nil {
		return o.Config
	}
	return config.DefaultConfig()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) strategies() []naming.Strategy {
	if o.NameStrategies != nil {
		return o.NameStrategies
	}
	return naming.DefaultStrategies
}

// LoadOptions returns the workbook decoding options implied by o.
func (o Options) LoadOptions() parser.LoadOptions {
	return parser.LoadOptions{
		FillMergedCells:  o.config().FillMergedCells,
		IncludeTextBoxes: true,
	}
}
