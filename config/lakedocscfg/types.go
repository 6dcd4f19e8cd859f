// Package lakedocscfg defines the configuration schema (structs) for
// lakedocs.yml. This package is intended for YAML -> struct
// deserialization; defaulting and env overrides live in load.go.
package lakedocscfg

// Root is the root structure of lakedocs.yml.
type Root struct {
	API  API  `yaml:"api"`
	Auth Auth `yaml:"auth"`
}

// API represents Fabric control-plane API settings.
type API struct {
	BaseURL string `yaml:"baseUrl"` // defaults to the public Fabric endpoint
	// MaxResults is the page-size hint sent as the maxResults query
	// parameter on listing calls.
	MaxResults int `yaml:"maxResults"`
	// MaxPages caps continuation-token pagination; crossing it fails the
	// listing instead of looping on a misbehaving server.
	MaxPages int `yaml:"maxPages"`
}

// Auth represents Azure credential configuration.
type Auth struct {
	// Method selects the azidentity credential: "" or "default",
	// "azure_cli", "client_secret", "managed_identity".
	Method   string            `yaml:"method"`
	Settings map[string]string `yaml:"settings"` // method-specific settings
}
