package catalog

import (
	"context"

	"github.com/lakedocs/lakedocs/domain/model"
)

// ListLakehousesInput identifies the workspace by display name or ID.
type ListLakehousesInput struct {
	Workspace string `json:"workspace"`
}

// ListLakehousesOutput wraps listed lakehouses with the resolved
// workspace ID.
type ListLakehousesOutput struct {
	WorkspaceID string            `json:"workspaceId"`
	Lakehouses  []model.Lakehouse `json:"lakehouses"`
}

// ListLakehouses resolves the workspace reference and returns its
// lakehouses.
func (u *UseCase) ListLakehouses(ctx context.Context, in *ListLakehousesInput) (*ListLakehousesOutput, error) {
	workspaceID, err := u.Client.ResolveWorkspace(ctx, in.Workspace)
	if err != nil {
		return nil, err
	}
	items, err := u.Client.ListLakehouses(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return &ListLakehousesOutput{WorkspaceID: workspaceID, Lakehouses: items}, nil
}
