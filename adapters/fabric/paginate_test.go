package fabric

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/lakedocs/lakedocs/config/lakedocscfg"
	"github.com/lakedocs/lakedocs/domain/model"
)

func TestListWorkspacesFollowsContinuationToken(t *testing.T) {
	c, ft := newTestClient(func(req *http.Request) *http.Response {
		if req.URL.Query().Get("continuationToken") == "" {
			return jsonResponse(200, `{"value":[{"id":"a","displayName":"A"},{"id":"b","displayName":"B"}],"continuationToken":"t1"}`)
		}
		return jsonResponse(200, `{"value":[{"id":"c","displayName":"C"}],"continuationToken":null}`)
	}, lakedocscfg.API{})

	got, err := c.ListWorkspaces(context.Background())
	if err != nil {
		t.Fatalf("ListWorkspaces failed: %v", err)
	}
	if len(got) != 3 || got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Fatalf("unexpected result order: %+v", got)
	}

	if n := ft.calls.Load(); n != 2 {
		t.Fatalf("expected 2 requests, got %d", n)
	}
	first, second := ft.requests[0], ft.requests[1]
	if first.URL.Query().Get("continuationToken") != "" {
		t.Errorf("first request must not carry a continuation token: %s", first.URL.RawQuery)
	}
	if tok := second.URL.Query().Get("continuationToken"); tok != "t1" {
		t.Errorf("second request token = %q, want t1", tok)
	}
	if mr := second.URL.Query().Get("maxResults"); mr != "100" {
		t.Errorf("maxResults = %q, want default 100", mr)
	}
}

func TestListAllPercentEncodesToken(t *testing.T) {
	token := "abc =/+&xyz"
	c, ft := newTestClient(func(req *http.Request) *http.Response {
		if req.URL.Query().Get("continuationToken") == "" {
			return jsonResponse(200, `{"value":[],"continuationToken":"abc =/+&xyz"}`)
		}
		return jsonResponse(200, `{"value":[]}`)
	}, lakedocscfg.API{})

	if _, err := c.ListWorkspaces(context.Background()); err != nil {
		t.Fatalf("ListWorkspaces failed: %v", err)
	}
	second := ft.requests[1]
	if got := second.URL.Query().Get("continuationToken"); got != token {
		t.Errorf("decoded token = %q, want %q", got, token)
	}
	if raw := second.URL.RawQuery; strings.Contains(raw, "abc =") || !strings.Contains(raw, "continuationToken=") {
		t.Errorf("token not percent-encoded in query: %q", raw)
	}
}

func TestListAllPageCap(t *testing.T) {
	c, _ := newTestClient(func(req *http.Request) *http.Response {
		// Misbehaving server: always returns another token.
		return jsonResponse(200, `{"value":[{"id":"x","displayName":"X"}],"continuationToken":"again"}`)
	}, lakedocscfg.API{MaxPages: 5})

	_, err := c.ListWorkspaces(context.Background())
	if !errors.Is(err, model.ErrPaginationExceeded) {
		t.Fatalf("expected ErrPaginationExceeded, got %v", err)
	}
}

func TestListAllTransportFailureAborts(t *testing.T) {
	c, ft := newTestClient(func(req *http.Request) *http.Response {
		return jsonResponse(http.StatusForbidden, `{"error":{"code":"InsufficientPrivileges"}}`)
	}, lakedocscfg.API{})

	_, err := c.ListWorkspaces(context.Background())
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	if n := ft.calls.Load(); n != 1 {
		t.Errorf("expected exactly 1 request (no retry), got %d", n)
	}
}

func TestListTablesUsesDataKeyAndPath(t *testing.T) {
	c, ft := newTestClient(func(req *http.Request) *http.Response {
		return jsonResponse(200, `{"data":[{"name":"orders","format":"Delta","type":"Managed","location":"abfss://x/orders"}]}`)
	}, lakedocscfg.API{})

	got, err := c.ListTables(context.Background(), "ws-1", "lh-1")
	if err != nil {
		t.Fatalf("ListTables failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "orders" || !got[0].IsDelta() {
		t.Fatalf("unexpected tables: %+v", got)
	}
	req := ft.requests[0]
	if want := "/v1/workspaces/ws-1/lakehouses/lh-1/tables"; req.URL.Path != want {
		t.Errorf("path = %q, want %q", req.URL.Path, want)
	}
}

func TestListLakehousesQueriesItemType(t *testing.T) {
	c, ft := newTestClient(func(req *http.Request) *http.Response {
		return jsonResponse(200, `{"value":[{"id":"lh-1","displayName":"Bronze"}]}`)
	}, lakedocscfg.API{})

	got, err := c.ListLakehouses(context.Background(), "ws-1")
	if err != nil {
		t.Fatalf("ListLakehouses failed: %v", err)
	}
	if len(got) != 1 || got[0].DisplayName != "Bronze" {
		t.Fatalf("unexpected lakehouses: %+v", got)
	}
	req := ft.requests[0]
	if typ := req.URL.Query().Get("type"); typ != "Lakehouse" {
		t.Errorf("type query = %q, want Lakehouse", typ)
	}
	if want := "/v1/workspaces/ws-1/items"; req.URL.Path != want {
		t.Errorf("path = %q, want %q", req.URL.Path, want)
	}
}
