package catalog

import (
	"context"

	"github.com/lakedocs/lakedocs/domain/model"
)

// ListWorkspacesInput placeholder (add filters later).
type ListWorkspacesInput struct{}

// ListWorkspacesOutput wraps listed workspaces.
type ListWorkspacesOutput struct {
	Workspaces []model.Workspace `json:"workspaces"`
}

// ListWorkspaces returns all workspaces visible to the credential.
func (u *UseCase) ListWorkspaces(ctx context.Context, _ *ListWorkspacesInput) (*ListWorkspacesOutput, error) {
	items, err := u.Client.ListWorkspaces(ctx)
	if err != nil {
		return nil, err
	}
	return &ListWorkspacesOutput{Workspaces: items}, nil
}
