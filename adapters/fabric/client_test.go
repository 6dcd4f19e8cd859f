package fabric

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	"github.com/lakedocs/lakedocs/config/lakedocscfg"
)

// fakeCredential satisfies azcore.TokenCredential without any network.
type fakeCredential struct{}

func (fakeCredential) GetToken(ctx context.Context, opts policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: "unit-test-token", ExpiresOn: time.Now().Add(time.Hour)}, nil
}

// fakeTransport serves canned responses and records every request so
// tests can assert on call counts and query strings.
type fakeTransport struct {
	handler  func(req *http.Request) *http.Response
	calls    atomic.Int64
	requests []*http.Request
}

func (f *fakeTransport) Do(req *http.Request) (*http.Response, error) {
	f.calls.Add(1)
	f.requests = append(f.requests, req)
	resp := f.handler(req)
	resp.Request = req
	if resp.Header == nil {
		resp.Header = http.Header{}
	}
	if resp.Body == nil {
		resp.Body = io.NopCloser(bytes.NewReader(nil))
	}
	return resp, nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

func newTestClient(handler func(req *http.Request) *http.Response, api lakedocscfg.API) (*Client, *fakeTransport) {
	if api.BaseURL == "" {
		api.BaseURL = "https://fabric.unit.test/v1"
	}
	ft := &fakeTransport{handler: handler}
	c := NewClient(fakeCredential{}, &Options{API: api, Transport: ft})
	return c, ft
}
