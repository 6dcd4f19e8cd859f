package fabric

import (
	"context"
	"fmt"
	"strings"

	"github.com/lakedocs/lakedocs/domain/model"
	"github.com/lakedocs/lakedocs/internal/logging"
	"github.com/lakedocs/lakedocs/internal/naming"
)

// ResolveWorkspace turns a workspace display name or canonical ID into
// the workspace ID. A syntactically canonical ID passes through without
// any API call; its existence is only checked by whatever downstream
// call uses it. Name matching is case-insensitive over the full listing:
// zero matches is not-found, more than one is ambiguous, with no
// exact-case tie-break. Successful resolutions are cached by exact input
// for the rest of the process.
func (c *Client) ResolveWorkspace(ctx context.Context, ref string) (string, error) {
	if naming.IsCanonicalID(ref) {
		return ref, nil
	}

	c.mu.Lock()
	if id, ok := c.workspaceCache[ref]; ok {
		c.mu.Unlock()
		return id, nil
	}
	c.mu.Unlock()

	workspaces, err := c.ListWorkspaces(ctx)
	if err != nil {
		return "", err
	}

	var matches []model.Workspace
	for _, w := range workspaces {
		if strings.EqualFold(w.DisplayName, ref) {
			matches = append(matches, w)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", model.ErrWorkspaceNotFound, ref)
	case 1:
	default:
		return "", fmt.Errorf("%w: %s", model.ErrWorkspaceAmbiguous, ref)
	}

	id := matches[0].ID
	c.mu.Lock()
	c.workspaceCache[ref] = id
	c.mu.Unlock()

	logging.FromContext(ctx).Debug(ctx, "resolved workspace", "ref", ref, "id", id)
	return id, nil
}

// ResolveLakehouse turns a lakehouse display name or canonical ID into
// the lakehouse ID, scoped to the given workspace ID. Resolution policy
// matches ResolveWorkspace; the cache key includes the workspace ID.
func (c *Client) ResolveLakehouse(ctx context.Context, workspaceID, ref string) (string, error) {
	if naming.IsCanonicalID(ref) {
		return ref, nil
	}

	key := workspaceID + "/" + ref
	c.mu.Lock()
	if id, ok := c.lakehouseCache[key]; ok {
		c.mu.Unlock()
		return id, nil
	}
	c.mu.Unlock()

	lakehouses, err := c.ListLakehouses(ctx, workspaceID)
	if err != nil {
		return "", err
	}

	var matches []model.Lakehouse
	for _, lh := range lakehouses {
		if strings.EqualFold(lh.DisplayName, ref) {
			matches = append(matches, lh)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", model.ErrLakehouseNotFound, ref)
	case 1:
	default:
		return "", fmt.Errorf("%w: %s", model.ErrLakehouseAmbiguous, ref)
	}

	id := matches[0].ID
	c.mu.Lock()
	c.lakehouseCache[key] = id
	c.mu.Unlock()

	logging.FromContext(ctx).Debug(ctx, "resolved lakehouse", "ref", ref, "id", id, "workspaceId", workspaceID)
	return id, nil
}
