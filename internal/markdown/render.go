// Package markdown renders catalog listings and schema triples as
// markdown text. Rendering is deterministic given its input, aside from
// the generation timestamp embedded in Document.
package markdown

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lakedocs/lakedocs/domain/model"
)

// Document renders the full schema document for one lakehouse. The
// workspace and lakehouse lines carry the caller's original references,
// not the resolved IDs.
func Document(workspace, lakehouse string, now time.Time, schemas []model.TableSchema) string {
	var b strings.Builder
	b.WriteString("# Delta Table Schemas\n\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Workspace: %s\n", workspace)
	fmt.Fprintf(&b, "Lakehouse: %s\n\n", lakehouse)
	for _, ts := range schemas {
		b.WriteString(TableSection(ts))
	}
	return b.String()
}

// TableSection renders one schema triple: heading, type and location,
// the schema table in field order, then the metadata block.
func TableSection(ts model.TableSchema) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Delta Table: `%s`\n\n", ts.Table.Name)
	fmt.Fprintf(&b, "**Type:** %s\n\n", ts.Table.Type)
	fmt.Fprintf(&b, "**Location:** `%s`\n\n", ts.Table.Location)

	b.WriteString("### Schema\n\n")
	b.WriteString("| Column Name | Data Type | Nullable |\n")
	b.WriteString("|------------|-----------|----------|\n")
	for _, f := range ts.Schema.Fields {
		fmt.Fprintf(&b, "| %s | %s | %t |\n", f.Name, f.Type, f.Nullable)
	}
	b.WriteString("\n")

	b.WriteString(metadataSection(ts.Metadata))
	b.WriteString("\n")
	return b.String()
}

// metadataSection renders the metadata block. Absent fields are omitted
// entirely, never rendered as empty lines.
func metadataSection(m model.Metadata) string {
	var b strings.Builder
	b.WriteString("### Metadata\n\n")
	fmt.Fprintf(&b, "**ID:** %s\n\n", m.ID)
	if m.Name != "" {
		fmt.Fprintf(&b, "**Name:** %s\n\n", m.Name)
	}
	if m.Description != "" {
		fmt.Fprintf(&b, "**Description:** %s\n\n", m.Description)
	}
	if len(m.PartitionColumns) > 0 {
		fmt.Fprintf(&b, "**Partition Columns:** %s\n\n", strings.Join(m.PartitionColumns, ", "))
	}
	if m.CreatedTime != nil {
		created := time.UnixMilli(*m.CreatedTime)
		fmt.Fprintf(&b, "**Created Time:** %s\n\n", created.Format("2006-01-02 15:04:05"))
	}
	if len(m.Configuration) > 0 {
		// json.Marshal sorts map keys, keeping the fence deterministic.
		data, _ := json.MarshalIndent(m.Configuration, "", "  ")
		b.WriteString("**Configuration:**\n\n")
		b.WriteString("```json\n")
		b.Write(data)
		b.WriteString("\n```\n")
	}
	return b.String()
}

// Workspaces renders the workspace listing as a markdown table.
func Workspaces(workspaces []model.Workspace) string {
	var b strings.Builder
	b.WriteString("# Fabric Workspaces\n\n")
	b.WriteString("| ID | Name | Capacity |\n")
	b.WriteString("|-----|------|----------|\n")
	for _, w := range workspaces {
		capacity := w.CapacityID
		if capacity == "" {
			capacity = "N/A"
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", w.ID, w.DisplayName, capacity)
	}
	return b.String()
}

// Lakehouses renders the lakehouse listing for one workspace reference.
func Lakehouses(workspace string, lakehouses []model.Lakehouse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Lakehouses in workspace '%s'\n\n", workspace)
	b.WriteString("| ID | Name |\n")
	b.WriteString("|-----|------|\n")
	for _, lh := range lakehouses {
		fmt.Fprintf(&b, "| %s | %s |\n", lh.ID, lh.DisplayName)
	}
	return b.String()
}

// Tables renders the table listing for one lakehouse reference.
func Tables(lakehouse string, tables []model.TableDescriptor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Tables in lakehouse '%s'\n\n", lakehouse)
	b.WriteString("| Name | Format | Type |\n")
	b.WriteString("|------|--------|------|\n")
	for _, t := range tables {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", t.Name, t.Format, t.Type)
	}
	return b.String()
}
