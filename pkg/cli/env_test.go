package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestContextFromEnv(t *testing.T) {
	t.Setenv("FISHVOICE_TEST_KEY", " fa-key ")
	t.Setenv("FISHVOICE_TEST_URL", "https://example.com")

	ctx, err := ContextFromEnv("FISHVOICE_TEST_KEY", "FISHVOICE_TEST_URL", filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("ContextFromEnv error: %v", err)
	}
	if ctx.Name != EnvContextName {
		t.Errorf("Name = %q, want %q", ctx.Name, EnvContextName)
	}
	if ctx.APIKey != "fa-key" {
		t.Errorf("APIKey = %q, want %q", ctx.APIKey, "fa-key")
	}
	if ctx.BaseURL != "https://example.com" {
		t.Errorf("BaseURL = %q, want %q", ctx.BaseURL, "https://example.com")
	}
}

func TestContextFromEnv_DotEnv(t *testing.T) {
	t.Setenv("FISHVOICE_DOTENV_KEY", "")
	os.Unsetenv("FISHVOICE_DOTENV_KEY")

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("FISHVOICE_DOTENV_KEY=from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}

	ctx, err := ContextFromEnv("FISHVOICE_DOTENV_KEY", "", envFile)
	if err != nil {
		t.Fatalf("ContextFromEnv error: %v", err)
	}
	if ctx.APIKey != "from-file" {
		t.Errorf("APIKey = %q, want %q", ctx.APIKey, "from-file")
	}
	if ctx.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty", ctx.BaseURL)
	}
}

func TestContextFromEnv_Missing(t *testing.T) {
	t.Setenv("FISHVOICE_MISSING_KEY", "")

	if _, err := ContextFromEnv("FISHVOICE_MISSING_KEY", "", filepath.Join(t.TempDir(), "none.env")); err == nil {
		t.Error("ContextFromEnv should fail when the key is unset")
	}
}
