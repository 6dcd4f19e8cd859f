package model

// Workspace represents a Fabric workspace as returned by the control-plane API.
type Workspace struct {
	// ID is the canonical workspace identifier.
	ID string `json:"id"`
	// DisplayName is the human-facing workspace label. Uniqueness is assumed
	// by the resolver but not guaranteed by the service.
	DisplayName string `json:"displayName"`
	// CapacityID is the attached capacity, empty when none is assigned.
	CapacityID string `json:"capacityId,omitempty"`
}

// Lakehouse represents a lakehouse item scoped to exactly one workspace.
type Lakehouse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	WorkspaceID string `json:"workspaceId,omitempty"`
}
