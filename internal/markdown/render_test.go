package markdown

import (
	"strings"
	"testing"
	"time"

	"github.com/lakedocs/lakedocs/domain/model"
)

func sampleTriple(name string) model.TableSchema {
	return model.TableSchema{
		Table: model.TableDescriptor{Name: name, Format: "Delta", Type: "Managed", Location: "abfss://lh/" + name},
		Schema: model.Schema{Fields: []model.Field{
			{Name: "id", Type: "long", Nullable: false},
			{Name: "amount", Type: "decimal(10,2)", Nullable: true},
		}},
		Metadata: model.Metadata{ID: "meta-" + name},
	}
}

func TestTableSectionSchemaOrder(t *testing.T) {
	out := TableSection(sampleTriple("orders"))
	if !strings.Contains(out, "## Delta Table: `orders`") {
		t.Errorf("missing table heading:\n%s", out)
	}
	idIdx := strings.Index(out, "| id | long | false |")
	amountIdx := strings.Index(out, "| amount | decimal(10,2) | true |")
	if idIdx < 0 || amountIdx < 0 || idIdx > amountIdx {
		t.Errorf("schema rows missing or out of order:\n%s", out)
	}
	if !strings.Contains(out, "**Location:** `abfss://lh/orders`") {
		t.Errorf("missing location line:\n%s", out)
	}
}

func TestMetadataOmitsAbsentFields(t *testing.T) {
	out := TableSection(sampleTriple("orders"))
	if strings.Contains(out, "Description") {
		t.Errorf("absent description must be omitted:\n%s", out)
	}
	if strings.Contains(out, "```json") {
		t.Errorf("empty configuration must not render a fence:\n%s", out)
	}
	if strings.Contains(out, "Partition Columns") {
		t.Errorf("empty partition columns must be omitted:\n%s", out)
	}
	if !strings.Contains(out, "**ID:** meta-orders") {
		t.Errorf("ID line is mandatory:\n%s", out)
	}
}

func TestMetadataPresentFields(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 30, 0, 0, time.Local).UnixMilli()
	ts := sampleTriple("orders")
	ts.Metadata = model.Metadata{
		ID:               "m1",
		Name:             "orders",
		Description:      "order fact table",
		PartitionColumns: []string{"year", "month"},
		CreatedTime:      &created,
		Configuration:    map[string]string{"delta.appendOnly": "false"},
	}
	out := TableSection(ts)
	if !strings.Contains(out, "**Partition Columns:** year, month") {
		t.Errorf("partition columns line wrong:\n%s", out)
	}
	if !strings.Contains(out, "**Description:** order fact table") {
		t.Errorf("missing description:\n%s", out)
	}
	if !strings.Contains(out, "**Created Time:** 2024-06-01 12:30:00") {
		t.Errorf("created time formatting wrong:\n%s", out)
	}
	if !strings.Contains(out, "```json") || !strings.Contains(out, `"delta.appendOnly": "false"`) {
		t.Errorf("configuration fence wrong:\n%s", out)
	}
}

func TestDocumentUsesOriginalReferences(t *testing.T) {
	schemas := []model.TableSchema{sampleTriple("orders"), sampleTriple("customers")}
	out := Document("Analytics", "Bronze", time.Now(), schemas)

	if !strings.HasPrefix(out, "# Delta Table Schemas\n") {
		t.Errorf("missing top-level heading:\n%s", out)
	}
	if !strings.Contains(out, "Workspace: Analytics\n") || !strings.Contains(out, "Lakehouse: Bronze\n") {
		t.Errorf("header must carry the original references:\n%s", out)
	}
	first := strings.Index(out, "## Delta Table: `orders`")
	second := strings.Index(out, "## Delta Table: `customers`")
	if first < 0 || second < 0 || first > second {
		t.Errorf("table sections missing or out of order:\n%s", out)
	}
}

func TestWorkspacesListing(t *testing.T) {
	out := Workspaces([]model.Workspace{
		{ID: "ws-1", DisplayName: "Sales", CapacityID: "cap-1"},
		{ID: "ws-2", DisplayName: "HR"},
	})
	if !strings.Contains(out, "| ws-1 | Sales | cap-1 |") {
		t.Errorf("missing workspace row:\n%s", out)
	}
	if !strings.Contains(out, "| ws-2 | HR | N/A |") {
		t.Errorf("missing capacity fallback:\n%s", out)
	}
}

func TestLakehousesAndTablesListings(t *testing.T) {
	lh := Lakehouses("Sales", []model.Lakehouse{{ID: "lh-1", DisplayName: "Bronze"}})
	if !strings.Contains(lh, "# Lakehouses in workspace 'Sales'") || !strings.Contains(lh, "| lh-1 | Bronze |") {
		t.Errorf("lakehouse listing wrong:\n%s", lh)
	}
	tb := Tables("Bronze", []model.TableDescriptor{{Name: "orders", Format: "Delta", Type: "Managed"}})
	if !strings.Contains(tb, "# Tables in lakehouse 'Bronze'") || !strings.Contains(tb, "| orders | Delta | Managed |") {
		t.Errorf("table listing wrong:\n%s", tb)
	}
}
