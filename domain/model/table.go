package model

import "strings"

// TableDescriptor represents a table entry of a lakehouse listing.
type TableDescriptor struct {
	Name string `json:"name"`
	// Format is the table storage format reported by the service
	// (e.g. "Delta", "csv"). Comparison against delta is case-insensitive.
	Format string `json:"format"`
	Type   string `json:"type"`
	// Location is the storage path/URI handed to the table reader.
	Location string `json:"location"`
}

// IsDelta reports whether the descriptor declares the Delta format.
func (t TableDescriptor) IsDelta() bool {
	return strings.EqualFold(t.Format, "delta")
}
