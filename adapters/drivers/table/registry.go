// Package tabledrv abstracts the external table-format reader behind a
// driver registry. Implementations live under adapters/drivers/table/<name>
// and register themselves from init().
package tabledrv

import (
	"context"

	"github.com/lakedocs/lakedocs/domain/model"
)

// Options carries the delegated storage credential for a read.
type Options struct {
	// BearerToken is a storage-audience token, distinct from the
	// control-plane API token.
	BearerToken string
	// UseFabricEndpoint selects the OneLake/Fabric storage endpoint.
	UseFabricEndpoint bool
}

// Driver opens tables at a storage location and reports their schema and
// metadata. Failures surface as plain errors; callers treat them as
// per-table and never abort a batch on one.
type Driver interface {
	// ID returns the driver identifier (e.g. "delta").
	ID() string

	// Open reads the table at location and returns its schema and
	// metadata record.
	Open(ctx context.Context, location string, opts Options) (*model.Schema, *model.Metadata, error)
}

// driverFactory is a constructor function for a table reader driver.
type driverFactory func() (Driver, error)

// registry holds registered drivers by name.
var registry = map[string]driverFactory{}

// Register makes a driver available by the given name. Drivers should
// call this from their init() function.
func Register(name string, factory driverFactory) {
	registry[name] = factory
}

// GetDriverFactory returns the driver factory function for the given name.
func GetDriverFactory(name string) (driverFactory, bool) {
	factory, exists := registry[name]
	return factory, exists
}
