package deltago

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	storeTypeFile  = "file"
	storeTypeAzure = "azblob"
)

const (
	// fabricBlobDomain is the Blob-protocol endpoint of OneLake; table
	// locations reference the dfs endpoint, which the reader's store
	// does not speak.
	fabricBlobDomain = "blob.fabric.microsoft.com"
	publicBlobDomain = "blob.core.windows.net"
)

// blobLocation is a table location resolved to the reader's store URL
// plus the service endpoint its store authenticates against. The
// account, domain, and container fields are set for azblob locations
// only.
type blobLocation struct {
	storeURL  string
	storeType string

	account   string
	domain    string
	container string
}

// translateLocation maps a catalog table location onto the reader's
// store URL. The tables endpoint reports OneLake locations as
// abfss://<workspace>@<account>.dfs.<suffix>/<item>/Tables/<name>; the
// reader knows only file and azblob schemes, so the filesystem part
// becomes azblob://<workspace>/<item>/Tables/<name> and the host maps
// to the account's Blob service endpoint.
func translateLocation(location string, useFabricEndpoint bool) (blobLocation, error) {
	u, err := url.Parse(location)
	if err != nil {
		return blobLocation{}, fmt.Errorf("parse table location %s: %w", location, err)
	}
	switch u.Scheme {
	case "file":
		return blobLocation{storeURL: location, storeType: storeTypeFile}, nil
	case "abfss", "abfs":
		container := u.User.Username()
		account, _, found := strings.Cut(u.Host, ".")
		if container == "" || !found || account == "" {
			return blobLocation{}, fmt.Errorf("malformed table location %s", location)
		}
		domain := publicBlobDomain
		if useFabricEndpoint {
			domain = fabricBlobDomain
		}
		return blobLocation{
			storeURL:  "azblob://" + container + "/" + strings.TrimPrefix(u.Path, "/"),
			storeType: storeTypeAzure,
			account:   account,
			domain:    domain,
			container: container,
		}, nil
	default:
		return blobLocation{}, fmt.Errorf("unsupported table location scheme %q in %s", u.Scheme, location)
	}
}
