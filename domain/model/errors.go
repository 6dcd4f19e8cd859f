package model

import "errors"

var (
	ErrWorkspaceNotFound  = errors.New("workspace not found")
	ErrWorkspaceAmbiguous = errors.New("multiple workspaces match name")
	ErrLakehouseNotFound  = errors.New("lakehouse not found")
	ErrLakehouseAmbiguous = errors.New("multiple lakehouses match name")
	ErrTableNotFound      = errors.New("table not found")
	ErrNotDeltaTable      = errors.New("table is not a Delta table")
	ErrPaginationExceeded = errors.New("pagination page limit exceeded")
)
