// Package mcpserver exposes the catalog and schema operations as MCP
// tools over stdio. Every tool returns markdown or plain text and never
// lets an error escape its boundary: failures become descriptive text
// messages for the calling model.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lakedocs/lakedocs/usecase/catalog"
	"github.com/lakedocs/lakedocs/usecase/schema"
)

// Server wires the use cases behind the five MCP tools.
type Server struct {
	Catalog *catalog.UseCase
	Schemas *schema.UseCase
	Version string
}

// New returns a Server over the given use cases.
func New(cat *catalog.UseCase, sch *schema.UseCase, version string) *Server {
	return &Server{Catalog: cat, Schemas: sch, Version: version}
}

// MCP builds the MCP server with all tools registered.
func (s *Server) MCP() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "lakedocs", Version: s.Version}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_table_schema",
		Description: "Get schema for a specific table in a Fabric lakehouse.",
	}, s.getTableSchema)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_all_schemas",
		Description: "Get schemas for all Delta tables in a Fabric lakehouse.",
	}, s.getAllSchemas)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_workspaces",
		Description: "List all available Fabric workspaces.",
	}, s.listWorkspaces)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_lakehouses",
		Description: "List all lakehouses in a Fabric workspace.",
	}, s.listLakehouses)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tables",
		Description: "List all tables in a Fabric lakehouse.",
	}, s.listTables)
	return server
}

// Run serves MCP over stdio until the client disconnects or ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.MCP().Run(ctx, &mcp.StdioTransport{})
}

// textResult wraps plain text in a tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: text}}}
}
