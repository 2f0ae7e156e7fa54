package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LISTEN_ADDR", "SESSION_SECRET", "GIN_MODE", "SITE_BASE_URL",
		"SANITY_PROJECT_ID", "SANITY_DATASET", "SANITY_API_VERSION",
		"SANITY_API_WRITE_TOKEN", "SANITY_REVALIDATE_SECRET",
		"RESEND_API_KEY", "CONTACT_FROM_EMAIL", "CONTACT_TO_EMAIL", "ANALYTICS_ID",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected listen addr derived from port, got %q", cfg.ListenAddr)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("expected release mode default, got %q", cfg.GinMode)
	}
	if cfg.SanityDataset != "production" {
		t.Fatalf("expected production dataset default, got %q", cfg.SanityDataset)
	}
	if cfg.SanityAPIVersion != "2024-01-01" {
		t.Fatalf("expected api version default, got %q", cfg.SanityAPIVersion)
	}
	if cfg.ContactFromEmail != "onboarding@resend.dev" {
		t.Fatalf("expected sender default, got %q", cfg.ContactFromEmail)
	}
	if cfg.SanityWriteToken != "" {
		t.Fatalf("expected empty write token, got %q", cfg.SanityWriteToken)
	}
}

func TestLoadTrimsBaseURLTrailingSlash(t *testing.T) {
	t.Setenv("SITE_BASE_URL", "https://acme.example/")

	cfg := Load()

	if cfg.SiteBaseURL != "https://acme.example" {
		t.Fatalf("expected trimmed base url, got %q", cfg.SiteBaseURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9001")
	t.Setenv("SANITY_PROJECT_ID", "abc123")
	t.Setenv("SANITY_API_WRITE_TOKEN", " token-with-spaces ")

	cfg := Load()

	if cfg.ListenAddr != "127.0.0.1:9001" {
		t.Fatalf("expected explicit listen addr to win, got %q", cfg.ListenAddr)
	}
	if cfg.SanityProjectID != "abc123" {
		t.Fatalf("unexpected project id %q", cfg.SanityProjectID)
	}
	if cfg.SanityWriteToken != "token-with-spaces" {
		t.Fatalf("expected trimmed token, got %q", cfg.SanityWriteToken)
	}
}

func TestSiteURL(t *testing.T) {
	site := Site{BaseURL: "https://acme.example"}

	if got := site.URL("/"); got != "https://acme.example" {
		t.Fatalf("unexpected root url %q", got)
	}
	if got := site.URL(""); got != "https://acme.example" {
		t.Fatalf("unexpected empty-path url %q", got)
	}
	if got := site.URL("/blog/post"); got != "https://acme.example/blog/post" {
		t.Fatalf("unexpected joined url %q", got)
	}
}
