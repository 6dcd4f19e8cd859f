package fabric

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/lakedocs/lakedocs/domain/model"
	"github.com/lakedocs/lakedocs/internal/logging"
)

// listAll fetches every page of a listing endpoint, following the
// continuationToken protocol until the server stops returning one, and
// concatenates the arrays found under resultKey in page order.
//
// The page-size hint maxResults is added unless the caller set one. The
// continuation token is carried only on the follow-up request's query,
// never taken from the base query, and is percent-encoded by the query
// encoder. Crossing the configured page cap fails with
// model.ErrPaginationExceeded instead of looping on a misbehaving server.
func listAll[T any](ctx context.Context, c *Client, path string, query url.Values, resultKey string) ([]T, error) {
	logger := logging.FromContext(ctx)

	base := url.Values{}
	for k, vs := range query {
		if k == "continuationToken" {
			continue
		}
		base[k] = vs
	}
	if base.Get("maxResults") == "" {
		base.Set("maxResults", strconv.Itoa(c.maxResults))
	}

	var results []T
	token := ""
	for page := 1; ; page++ {
		if page > c.maxPages {
			return nil, fmt.Errorf("%w: %s returned more than %d pages", model.ErrPaginationExceeded, path, c.maxPages)
		}

		q := url.Values{}
		for k, vs := range base {
			q[k] = vs
		}
		if token != "" {
			q.Set("continuationToken", token)
		}

		endpoint := c.baseURL + "/" + strings.TrimPrefix(path, "/") + "?" + q.Encode()
		logger.Debug(ctx, "fabric API request", "endpoint", path, "page", page)

		req, err := runtime.NewRequest(ctx, http.MethodGet, endpoint)
		if err != nil {
			return nil, fmt.Errorf("build request for %s: %w", path, err)
		}
		resp, err := c.pl.Do(req)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", path, err)
		}
		if !runtime.HasStatusCode(resp, http.StatusOK) {
			return nil, runtime.NewResponseError(resp)
		}
		body, err := runtime.Payload(resp)
		if err != nil {
			return nil, fmt.Errorf("read response for %s: %w", path, err)
		}

		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("decode response for %s: %w", path, err)
		}
		if raw, ok := envelope[resultKey]; ok {
			var items []T
			if err := json.Unmarshal(raw, &items); err != nil {
				return nil, fmt.Errorf("decode %q items for %s: %w", resultKey, path, err)
			}
			results = append(results, items...)
		}

		token = ""
		if raw, ok := envelope["continuationToken"]; ok {
			// JSON null leaves token empty, ending the loop.
			if err := json.Unmarshal(raw, &token); err != nil {
				return nil, fmt.Errorf("decode continuation token for %s: %w", path, err)
			}
		}
		if token == "" {
			break
		}
	}

	logger.Debug(ctx, "fabric API listing complete", "endpoint", path, "items", len(results))
	return results, nil
}
