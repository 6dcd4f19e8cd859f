package schema

import (
	"context"
	"fmt"
	"strings"

	"github.com/lakedocs/lakedocs/domain/model"
)

// GetInput identifies a single table by workspace/lakehouse references
// and table name.
type GetInput struct {
	Workspace string `json:"workspace"`
	Lakehouse string `json:"lakehouse"`
	Table     string `json:"table"`
}

// GetOutput is the schema triple for the requested table.
type GetOutput struct {
	Schema model.TableSchema `json:"schema"`
}

// Get resolves both references, locates the table by case-insensitive
// name, and extracts its schema. A missing table or a non-Delta format
// is a typed error, unlike batch extraction where such tables are
// skipped.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
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

	var found *model.TableDescriptor
	for i := range tables {
		if strings.EqualFold(tables[i].Name, in.Table) {
			found = &tables[i]
			break
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s in lakehouse %s", model.ErrTableNotFound, in.Table, in.Lakehouse)
	}
	if !found.IsDelta() {
		return nil, fmt.Errorf("%w: %s has format %s", model.ErrNotDeltaTable, found.Name, found.Format)
	}

	out, err := u.Extract(ctx, &ExtractInput{Tables: []model.TableDescriptor{*found}})
	if err != nil {
		return nil, err
	}
	if len(out.Schemas) == 0 {
		return nil, fmt.Errorf("could not retrieve schema for table %s", in.Table)
	}
	return &GetOutput{Schema: out.Schemas[0]}, nil
}

// ListInput identifies a lakehouse whose Delta tables should all be
// extracted.
type ListInput struct {
	Workspace string `json:"workspace"`
	Lakehouse string `json:"lakehouse"`
}

// ListOutput holds the lakehouse table listing and the extracted
// triples.
type ListOutput struct {
	Tables  []model.TableDescriptor `json:"tables"`
	Schemas []model.TableSchema     `json:"schemas"`
}

// List resolves both references and extracts schemas for every Delta
// table in the lakehouse.
func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
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
	out, err := u.Extract(ctx, &ExtractInput{Tables: tables})
	if err != nil {
		return nil, err
	}
	return &ListOutput{Tables: tables, Schemas: out.Schemas}, nil
}
