package deltago

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/service"

	tabledrv "github.com/lakedocs/lakedocs/adapters/drivers/table"
)

// sasValidity bounds the lifetime of the minted delegation SAS; one
// extraction run finishes well within it.
const sasValidity = time.Hour

// stageStorageEnv publishes the storage endpoint and credential through
// the environment contract the reader's blob store reads:
// AZURE_STORAGE_ACCOUNT and AZURE_STORAGE_DOMAIN name the service URL,
// and the delegated bearer token is exchanged for a user delegation SAS
// scoped to the workspace container, carried in AZURE_STORAGE_SAS_TOKEN.
func stageStorageEnv(ctx context.Context, loc blobLocation, opts tabledrv.Options) error {
	os.Setenv("AZURE_STORAGE_ACCOUNT", loc.account)
	os.Setenv("AZURE_STORAGE_DOMAIN", loc.domain)
	if opts.BearerToken == "" {
		// Without a delegated token the store falls back to the ambient
		// default credential chain.
		return nil
	}
	token, err := delegationSAS(ctx, loc, opts.BearerToken)
	if err != nil {
		return err
	}
	os.Setenv("AZURE_STORAGE_SAS_TOKEN", token)
	return nil
}

// delegationSAS exchanges the storage-audience bearer token for a
// read/list user delegation SAS on the location's container.
func delegationSAS(ctx context.Context, loc blobLocation, bearerToken string) (string, error) {
	svc, err := service.NewClient(
		fmt.Sprintf("https://%s.%s/", loc.account, loc.domain),
		staticTokenCredential{token: bearerToken}, nil)
	if err != nil {
		return "", fmt.Errorf("create blob service client: %w", err)
	}

	start := time.Now().UTC().Add(-5 * time.Minute)
	expiry := time.Now().UTC().Add(sasValidity)
	key, err := svc.GetUserDelegationCredential(ctx, service.KeyInfo{
		Start:  to.Ptr(start.Format(sas.TimeFormat)),
		Expiry: to.Ptr(expiry.Format(sas.TimeFormat)),
	}, nil)
	if err != nil {
		return "", fmt.Errorf("get user delegation key: %w", err)
	}

	perms := sas.ContainerPermissions{Read: true, List: true}
	qp, err := sas.BlobSignatureValues{
		Protocol:      sas.ProtocolHTTPS,
		StartTime:     start,
		ExpiryTime:    expiry,
		Permissions:   perms.String(),
		ContainerName: loc.container,
	}.SignWithUserDelegation(key)
	if err != nil {
		return "", fmt.Errorf("sign delegation SAS: %w", err)
	}
	return qp.Encode(), nil
}

// staticTokenCredential adapts an already-acquired bearer token to the
// azcore credential interface.
type staticTokenCredential struct {
	token string
}

func (c staticTokenCredential) GetToken(ctx context.Context, options policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: c.token, ExpiresOn: time.Now().Add(sasValidity)}, nil
}
