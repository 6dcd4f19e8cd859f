package schema

import (
	tabledrv "github.com/lakedocs/lakedocs/adapters/drivers/table"
	"github.com/lakedocs/lakedocs/domain"
)

// UseCase wires the ports needed for schema extraction.
type UseCase struct {
	Client domain.CatalogClient
	Tokens domain.StorageTokenSource
	Reader tabledrv.Driver
}
