// Package azauth holds the process-scoped Azure credential used by both
// entry surfaces. The credential is constructed lazily on first use and
// injected into every operation rather than re-created per call.
package azauth

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/lakedocs/lakedocs/config/lakedocscfg"
)

const (
	// FabricScope is the token audience for the Fabric control-plane API.
	FabricScope = "https://api.fabric.microsoft.com/.default"
	// StorageScope is the token audience handed to the Delta table reader.
	StorageScope = "https://storage.azure.com/.default"
)

// Holder lazily constructs and caches an azcore.TokenCredential.
// Safe for use from multiple goroutines.
type Holder struct {
	auth lakedocscfg.Auth

	once sync.Once
	cred azcore.TokenCredential
	err  error
}

// NewHolder returns a Holder for the given auth configuration. No
// credential is constructed until Credential or a token method is called.
func NewHolder(auth lakedocscfg.Auth) *Holder {
	return &Holder{auth: auth}
}

// Credential returns the shared token credential, constructing it on
// first call.
func (h *Holder) Credential() (azcore.TokenCredential, error) {
	h.once.Do(func() {
		h.cred, h.err = newCredential(h.auth)
	})
	return h.cred, h.err
}

// Token acquires a bearer token for the given scope.
func (h *Holder) Token(ctx context.Context, scope string) (string, error) {
	cred, err := h.Credential()
	if err != nil {
		return "", err
	}
	tk, err := cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{scope}})
	if err != nil {
		return "", fmt.Errorf("acquire token for %s: %w", scope, err)
	}
	return tk.Token, nil
}

// StorageToken acquires a bearer token for the storage audience. This is
// the token delegated to the Delta table reader, distinct from the
// control-plane token.
func (h *Holder) StorageToken(ctx context.Context) (string, error) {
	return h.Token(ctx, StorageScope)
}

// Verify eagerly acquires a storage token so callers can fail fast on
// authentication problems before starting a batch.
func (h *Holder) Verify(ctx context.Context) error {
	_, err := h.StorageToken(ctx)
	return err
}

func newCredential(auth lakedocscfg.Auth) (azcore.TokenCredential, error) {
	get := func(k string) string {
		if auth.Settings == nil {
			return ""
		}
		return strings.TrimSpace(auth.Settings[k])
	}

	switch auth.Method {
	case "", "default":
		return azidentity.NewDefaultAzureCredential(nil)
	case "azure_cli":
		return azidentity.NewAzureCLICredential(nil)
	case "client_secret":
		tenantID := get("AZURE_TENANT_ID")
		clientID := get("AZURE_CLIENT_ID")
		clientSecret := get("AZURE_CLIENT_SECRET")
		if tenantID == "" || clientID == "" || clientSecret == "" {
			return nil, fmt.Errorf("client_secret auth requires AZURE_TENANT_ID, AZURE_CLIENT_ID, AZURE_CLIENT_SECRET")
		}
		return azidentity.NewClientSecretCredential(tenantID, clientID, clientSecret, nil)
	case "managed_identity":
		opts := &azidentity.ManagedIdentityCredentialOptions{}
		if clientID := get("AZURE_CLIENT_ID"); clientID != "" {
			opts.ID = azidentity.ClientID(clientID)
		}
		return azidentity.NewManagedIdentityCredential(opts)
	default:
		return nil, fmt.Errorf("unsupported auth method: %s", auth.Method)
	}
}
