package catalog

import (
	"context"

	"github.com/lakedocs/lakedocs/domain/model"
)

// ListTablesInput identifies a lakehouse by workspace and lakehouse
// display names or IDs.
type ListTablesInput struct {
	Workspace string `json:"workspace"`
	Lakehouse string `json:"lakehouse"`
}

// ListTablesOutput wraps the table listing with both resolved IDs.
type ListTablesOutput struct {
	WorkspaceID string                  `json:"workspaceId"`
	LakehouseID string                  `json:"lakehouseId"`
	Tables      []model.TableDescriptor `json:"tables"`
}

// ListTables resolves both references and returns the lakehouse tables.
func (u *UseCase) ListTables(ctx context.Context, in *ListTablesInput) (*ListTablesOutput, error) {
	workspaceID, err := u.Client.ResolveWorkspace(ctx, in.Workspace)
	if err != nil {
		return nil, err
	}
	lakehouseID, err := u.Client.ResolveLakehouse(ctx, workspaceID, in.Lakehouse)
	if err != nil {
		return nil, err
	}
	tables, err := u.Client.ListTables(ctx, workspaceID, lakehouseID)
	if err != nil {
		return nil, err
	}
	return &ListTablesOutput{WorkspaceID: workspaceID, LakehouseID: lakehouseID, Tables: tables}, nil
}
