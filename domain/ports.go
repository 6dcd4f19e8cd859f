// Package domain defines the ports between use cases and adapters.
package domain

import (
	"context"

	"github.com/lakedocs/lakedocs/domain/model"
)

// CatalogClient lists and resolves Fabric catalog entities. Implemented
// by the control-plane API client in adapters/fabric.
type CatalogClient interface {
	ListWorkspaces(ctx context.Context) ([]model.Workspace, error)
	ListLakehouses(ctx context.Context, workspaceID string) ([]model.Lakehouse, error)
	ListTables(ctx context.Context, workspaceID, lakehouseID string) ([]model.TableDescriptor, error)

	// ResolveWorkspace and ResolveLakehouse turn a display name or
	// canonical ID into the canonical ID, caching results for the
	// process lifetime.
	ResolveWorkspace(ctx context.Context, ref string) (string, error)
	ResolveLakehouse(ctx context.Context, workspaceID, ref string) (string, error)
}

// StorageTokenSource supplies storage-audience bearer tokens for the
// table reader. Implemented by the credential holder in internal/azauth.
type StorageTokenSource interface {
	StorageToken(ctx context.Context) (string, error)
}
