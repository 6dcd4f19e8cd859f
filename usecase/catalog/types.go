package catalog

import "github.com/lakedocs/lakedocs/domain"

// UseCase wires the catalog client needed for listing use cases.
type UseCase struct {
	Client domain.CatalogClient
}
