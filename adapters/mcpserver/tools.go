package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lakedocs/lakedocs/domain/model"
	"github.com/lakedocs/lakedocs/internal/markdown"
	"github.com/lakedocs/lakedocs/usecase/catalog"
	"github.com/lakedocs/lakedocs/usecase/schema"
)

type getTableSchemaArgs struct {
	Workspace string `json:"workspace" jsonschema:"Name or ID of the workspace"`
	Lakehouse string `json:"lakehouse" jsonschema:"Name or ID of the lakehouse"`
	TableName string `json:"table_name" jsonschema:"Name of the table to retrieve"`
}

func (s *Server) getTableSchema(ctx context.Context, req *mcp.CallToolRequest, args getTableSchemaArgs) (*mcp.CallToolResult, any, error) {
	out, err := s.Schemas.Get(ctx, &schema.GetInput{
		Workspace: args.Workspace,
		Lakehouse: args.Lakehouse,
		Table:     args.TableName,
	})
	switch {
	case errors.Is(err, model.ErrTableNotFound):
		return textResult(fmt.Sprintf("No table found with name '%s' in lakehouse '%s'.", args.TableName, args.Lakehouse)), nil, nil
	case errors.Is(err, model.ErrNotDeltaTable):
		return textResult(fmt.Sprintf("The table '%s' is not a Delta table.", args.TableName)), nil, nil
	case err != nil:
		return textResult(fmt.Sprintf("Error retrieving table schema: %s", err)), nil, nil
	}
	return textResult(markdown.TableSection(out.Schema)), nil, nil
}

type getAllSchemasArgs struct {
	Workspace string `json:"workspace" jsonschema:"Name or ID of the workspace"`
	Lakehouse string `json:"lakehouse" jsonschema:"Name or ID of the lakehouse"`
}

func (s *Server) getAllSchemas(ctx context.Context, req *mcp.CallToolRequest, args getAllSchemasArgs) (*mcp.CallToolResult, any, error) {
	out, err := s.Schemas.List(ctx, &schema.ListInput{Workspace: args.Workspace, Lakehouse: args.Lakehouse})
	if err != nil {
		return textResult(fmt.Sprintf("Error retrieving table schemas: %s", err)), nil, nil
	}
	if len(out.Tables) == 0 {
		return textResult(fmt.Sprintf("No tables found in lakehouse '%s'.", args.Lakehouse)), nil, nil
	}
	if len(out.Schemas) == 0 {
		return textResult(fmt.Sprintf("No Delta table schemas could be retrieved from lakehouse '%s'.", args.Lakehouse)), nil, nil
	}
	// The document header carries the caller's references, not the
	// resolved IDs.
	return textResult(markdown.Document(args.Workspace, args.Lakehouse, time.Now(), out.Schemas)), nil, nil
}

type emptyArgs struct{}

func (s *Server) listWorkspaces(ctx context.Context, req *mcp.CallToolRequest, args emptyArgs) (*mcp.CallToolResult, any, error) {
	out, err := s.Catalog.ListWorkspaces(ctx, &catalog.ListWorkspacesInput{})
	if err != nil {
		return textResult(fmt.Sprintf("Error listing workspaces: %s", err)), nil, nil
	}
	if len(out.Workspaces) == 0 {
		return textResult("No workspaces found."), nil, nil
	}
	return textResult(markdown.Workspaces(out.Workspaces)), nil, nil
}

type listLakehousesArgs struct {
	Workspace string `json:"workspace" jsonschema:"Name or ID of the workspace"`
}

func (s *Server) listLakehouses(ctx context.Context, req *mcp.CallToolRequest, args listLakehousesArgs) (*mcp.CallToolResult, any, error) {
	out, err := s.Catalog.ListLakehouses(ctx, &catalog.ListLakehousesInput{Workspace: args.Workspace})
	if err != nil {
		return textResult(fmt.Sprintf("Error listing lakehouses: %s", err)), nil, nil
	}
	if len(out.Lakehouses) == 0 {
		return textResult(fmt.Sprintf("No lakehouses found in workspace '%s'.", args.Workspace)), nil, nil
	}
	return textResult(markdown.Lakehouses(args.Workspace, out.Lakehouses)), nil, nil
}

type listTablesArgs struct {
	Workspace string `json:"workspace" jsonschema:"Name or ID of the workspace"`
	Lakehouse string `json:"lakehouse" jsonschema:"Name or ID of the lakehouse"`
}

func (s *Server) listTables(ctx context.Context, req *mcp.CallToolRequest, args listTablesArgs) (*mcp.CallToolResult, any, error) {
	out, err := s.Catalog.ListTables(ctx, &catalog.ListTablesInput{Workspace: args.Workspace, Lakehouse: args.Lakehouse})
	if err != nil {
		return textResult(fmt.Sprintf("Error listing tables: %s", err)), nil, nil
	}
	if len(out.Tables) == 0 {
		return textResult(fmt.Sprintf("No tables found in lakehouse '%s'.", args.Lakehouse)), nil, nil
	}
	return textResult(markdown.Tables(args.Lakehouse, out.Tables)), nil, nil
}
