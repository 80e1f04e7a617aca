package models

// RowRef identifies the sheet row a record was read from.
type RowRef struct {
	// Sheet is the source sheet name.
	Sheet string `json:"sheet" yaml:"sheet"`
	// Row is the 1-based row number as shown in a spreadsheet UI.
	Row int `json:"row" yaml:"row"`
}

// SpecificationRecord is one physical display read from the specification sheet.
type SpecificationRecord struct {
	Name   string `json:"name" yaml:"name"`
	Source RowRef `json:"source" yaml:"source"`
	// Pitch is the pixel pitch in millimetres.
	Pitch float64 `json:"pitch" yaml:"pitch"`
	// Height and Width are in feet.
	Height float64 `json:"height" yaml:"height"`
	Width  float64 `json:"width" yaml:"width"`
	// ResolutionX and ResolutionY are pixel counts (wide x high).
	ResolutionX int `json:"resolution_x" yaml:"resolution_x"`
	ResolutionY int `json:"resolution_y" yaml:"resolution_y"`
	// Brightness in nits; nil when the sheet has no usable value.
	Brightness  *int   `json:"brightness,omitempty" yaml:"brightness,omitempty"`
	Quantity    int    `json:"quantity" yaml:"quantity"`
	IsAlternate bool   `json:"is_alternate" yaml:"is_alternate"`
	IsHDR       bool   `json:"is_hdr" yaml:"is_hdr"`
	Group       string `json:"group,omitempty" yaml:"group,omitempty"`
}
