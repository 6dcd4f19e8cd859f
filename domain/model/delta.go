package model

// Field is one column of a Delta table schema.
type Field struct {
	Name string `json:"name"`
	// Type is the type descriptor rendered by the table reader; nested
	// types arrive as their serialized form (e.g. "array<string>").
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}

// Schema is the ordered column list of a Delta table. Field order reflects
// on-disk column order and must be preserved in output.
type Schema struct {
	Fields []Field `json:"fields"`
}

// Metadata is the Delta table metadata record. Optional fields are zero
// when absent on the source record and are then omitted from rendering.
type Metadata struct {
	ID               string            `json:"id"`
	Name             string            `json:"name,omitempty"`
	Description      string            `json:"description,omitempty"`
	PartitionColumns []string          `json:"partitionColumns,omitempty"`
	// CreatedTime is epoch milliseconds; nil when the record carries none.
	CreatedTime   *int64            `json:"createdTime,omitempty"`
	Configuration map[string]string `json:"configuration,omitempty"`
}

// TableSchema bundles a listed table with the schema and metadata read
// from its Delta log.
type TableSchema struct {
	Table    TableDescriptor `json:"table"`
	Schema   Schema          `json:"schema"`
	Metadata Metadata        `json:"metadata"`
}
