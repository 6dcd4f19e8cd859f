// Package deltago adapts the external Delta Lake reader library to the
// table driver contract. The reader dispatches its log store on the
// location URL scheme and resolves blob credentials from the process
// environment, so opening a Fabric table means translating the OneLake
// abfss location into the reader's azblob form and exchanging the
// delegated bearer token for a user delegation SAS the store honors.
package deltago

import (
	"context"
	"fmt"
	"sync"

	delta "github.com/csimplestring/delta-go"

	tabledrv "github.com/lakedocs/lakedocs/adapters/drivers/table"
	"github.com/lakedocs/lakedocs/domain/model"
)

// DriverName is the registry name of this driver.
const DriverName = "delta"

type driver struct {
	stage    sync.Once
	stageErr error
}

// ID returns the driver identifier.
func (d *driver) ID() string { return DriverName }

func init() {
	tabledrv.Register(DriverName, func() (tabledrv.Driver, error) {
		return &driver{}, nil
	})
}

// Open reads the Delta log at location and converts the reader's schema
// and metadata into domain types.
func (d *driver) Open(ctx context.Context, location string, opts tabledrv.Options) (*model.Schema, *model.Metadata, error) {
	loc, err := translateLocation(location, opts.UseFabricEndpoint)
	if err != nil {
		return nil, nil, err
	}
	if loc.storeType == storeTypeAzure {
		// The reader's blob opener snapshots the credential environment
		// on its first bucket open and keeps it for the process, so the
		// endpoint and SAS are staged once, before any log is read.
		d.stage.Do(func() { d.stageErr = stageStorageEnv(ctx, loc, opts) })
		if d.stageErr != nil {
			return nil, nil, fmt.Errorf("prepare storage credentials for %s: %w", location, d.stageErr)
		}
	}

	table, err := delta.ForTable(loc.storeURL, delta.Config{StoreType: loc.storeType}, &delta.SystemClock{})
	if err != nil {
		return nil, nil, fmt.Errorf("open delta table at %s: %w", location, err)
	}
	snapshot, err := table.Snapshot()
	if err != nil {
		return nil, nil, fmt.Errorf("read delta snapshot at %s: %w", location, err)
	}
	meta, err := snapshot.Metadata()
	if err != nil {
		return nil, nil, fmt.Errorf("read delta metadata at %s: %w", location, err)
	}
	structType, err := meta.Schema()
	if err != nil {
		return nil, nil, fmt.Errorf("parse delta schema at %s: %w", location, err)
	}

	schema := &model.Schema{Fields: make([]model.Field, 0, len(structType.Fields))}
	for _, f := range structType.Fields {
		schema.Fields = append(schema.Fields, model.Field{
			Name:     f.Name,
			Type:     f.DataType.Name(),
			Nullable: f.Nullable,
		})
	}

	out := &model.Metadata{
		ID:               meta.ID,
		Name:             meta.Name,
		Description:      meta.Description,
		PartitionColumns: meta.PartitionColumns,
		CreatedTime:      meta.CreatedTime,
		Configuration:    meta.Configuration,
	}
	return schema, out, nil
}
