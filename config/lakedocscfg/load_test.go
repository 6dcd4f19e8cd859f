package lakedocscfg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.API.MaxResults != DefaultMaxResults {
		t.Errorf("MaxResults = %d, want %d", cfg.API.MaxResults, DefaultMaxResults)
	}
	if cfg.API.MaxPages != DefaultMaxPages {
		t.Errorf("MaxPages = %d, want %d", cfg.API.MaxPages, DefaultMaxPages)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lakedocs.yml")
	content := `
api:
  baseUrl: https://fabric.example.invalid/v1
  maxResults: 25
auth:
  method: client_secret
  settings:
    AZURE_TENANT_ID: tid
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.API.BaseURL != "https://fabric.example.invalid/v1" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.MaxResults != 25 {
		t.Errorf("MaxResults = %d, want 25", cfg.API.MaxResults)
	}
	if cfg.API.MaxPages != DefaultMaxPages {
		t.Errorf("MaxPages = %d, want default %d", cfg.API.MaxPages, DefaultMaxPages)
	}
	if cfg.Auth.Method != "client_secret" || cfg.Auth.Settings["AZURE_TENANT_ID"] != "tid" {
		t.Errorf("unexpected auth config: %+v", cfg.Auth)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LAKEDOCS_API_MAX_RESULTS", "7")
	t.Setenv("LAKEDOCS_AUTH_METHOD", "azure_cli")
	cfg := Default()
	if cfg.API.MaxResults != 7 {
		t.Errorf("MaxResults = %d, want 7", cfg.API.MaxResults)
	}
	if cfg.Auth.Method != "azure_cli" {
		t.Errorf("Auth.Method = %q, want azure_cli", cfg.Auth.Method)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/lakedocs.yml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
