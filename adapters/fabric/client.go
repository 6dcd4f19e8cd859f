// Package fabric implements the Fabric control-plane REST client:
// authenticated listing calls, continuation-token pagination, and
// name/ID resolution with a process-lifetime cache.
package fabric

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/lakedocs/lakedocs/config/lakedocscfg"
	"github.com/lakedocs/lakedocs/domain/model"
	"github.com/lakedocs/lakedocs/internal/azauth"
)

const (
	moduleName    = "github.com/lakedocs/lakedocs"
	moduleVersion = "v0.1.0"
)

// Options configures a Client beyond its credential.
type Options struct {
	// API carries base URL, page-size hint, and page cap. Zero values are
	// filled from lakedocscfg defaults.
	API lakedocscfg.API
	// Transport overrides the HTTP transport, used by tests.
	Transport policy.Transporter
}

// Client is the Fabric control-plane API client. The zero value is not
// usable; construct with NewClient.
type Client struct {
	baseURL    string
	maxResults int
	maxPages   int
	pl         runtime.Pipeline

	// Resolution caches live for the process and are never invalidated:
	// renames occurring mid-run are not observed. Guarded for the tool
	// surface; the batch surface is single-threaded anyway.
	mu             sync.Mutex
	workspaceCache map[string]string
	lakehouseCache map[string]string
}

// NewClient returns a Client authenticating with cred for the Fabric
// API scope. Transport failures are not retried: a non-2xx response or
// network error aborts the enclosing operation.
func NewClient(cred azcore.TokenCredential, opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}
	api := opts.API
	if api.BaseURL == "" {
		api.BaseURL = lakedocscfg.DefaultBaseURL
	}
	if api.MaxResults <= 0 {
		api.MaxResults = lakedocscfg.DefaultMaxResults
	}
	if api.MaxPages <= 0 {
		api.MaxPages = lakedocscfg.DefaultMaxPages
	}

	clientOpts := &policy.ClientOptions{
		// A value below zero means one try and no retries.
		Retry: policy.RetryOptions{MaxRetries: -1},
		PerRetryPolicies: []policy.Policy{
			runtime.NewBearerTokenPolicy(cred, []string{azauth.FabricScope}, nil),
		},
	}
	if opts.Transport != nil {
		clientOpts.Transport = opts.Transport
	}

	return &Client{
		baseURL:        api.BaseURL,
		maxResults:     api.MaxResults,
		maxPages:       api.MaxPages,
		pl:             runtime.NewPipeline(moduleName, moduleVersion, runtime.PipelineOptions{}, clientOpts),
		workspaceCache: map[string]string{},
		lakehouseCache: map[string]string{},
	}
}

// ListWorkspaces returns all workspaces visible to the credential.
func (c *Client) ListWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	return listAll[model.Workspace](ctx, c, "workspaces", nil, "value")
}

// ListLakehouses returns all lakehouse items of the given workspace.
func (c *Client) ListLakehouses(ctx context.Context, workspaceID string) ([]model.Lakehouse, error) {
	query := url.Values{}
	query.Set("type", "Lakehouse")
	path := fmt.Sprintf("workspaces/%s/items", url.PathEscape(workspaceID))
	return listAll[model.Lakehouse](ctx, c, path, query, "value")
}

// ListTables returns all tables of the given lakehouse. The tables
// endpoint keys its payload under "data" rather than "value".
func (c *Client) ListTables(ctx context.Context, workspaceID, lakehouseID string) ([]model.TableDescriptor, error) {
	path := fmt.Sprintf("workspaces/%s/lakehouses/%s/tables",
		url.PathEscape(workspaceID), url.PathEscape(lakehouseID))
	return listAll[model.TableDescriptor](ctx, c, path, nil, "data")
}
