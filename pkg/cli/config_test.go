package cli

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func newTestConfig(t *testing.T) (*Config, string) {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "fishaudio", "config.yaml")
	cfg, err := LoadConfigWithPath("fishaudio", configPath)
	if err != nil {
		t.Fatalf("LoadConfigWithPath error: %v", err)
	}
	return cfg, configPath
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", ""},
		{"1234", "****"},
		{"12345678", "********"},
		{"123456789", "1234*6789"},
		{"fa-1234567890abcdef", "fa-1***********cdef"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := MaskAPIKey(tt.key)
			if got != tt.want {
				t.Errorf("MaskAPIKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestContext_Extra(t *testing.T) {
	ctx := &Context{Name: "test"}

	if got := ctx.GetExtra(ExtraDefaultReferenceID); got != "" {
		t.Errorf("GetExtra on nil map = %q, want empty string", got)
	}

	ctx.SetExtra(ExtraDefaultReferenceID, "m1")
	if got := ctx.GetExtra(ExtraDefaultReferenceID); got != "m1" {
		t.Errorf("GetExtra = %q, want %q", got, "m1")
	}
}

func TestLoadConfigWithPath_NewConfig(t *testing.T) {
	cfg, configPath := newTestConfig(t)

	if cfg.AppName != "fishaudio" {
		t.Errorf("AppName = %q, want %q", cfg.AppName, "fishaudio")
	}
	if cfg.Contexts == nil {
		t.Error("Contexts should be initialized")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file should be created")
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %q, want %q", cfg.Path(), configPath)
	}
	if cfg.Dir() != filepath.Dir(configPath) {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), filepath.Dir(configPath))
	}
}

func TestLoadConfigWithPath_RoundTrip(t *testing.T) {
	cfg, configPath := newTestConfig(t)

	ctx := &Context{
		APIKey:  "fa-key",
		BaseURL: "https://api.example.com",
		Timeout: 60,
	}
	ctx.SetExtra(ExtraDefaultReferenceID, "m1")
	if err := cfg.AddContext("prod", ctx); err != nil {
		t.Fatalf("AddContext error: %v", err)
	}
	if err := cfg.UseContext("prod"); err != nil {
		t.Fatalf("UseContext error: %v", err)
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("Stat error: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config mode = %o, want 600", perm)
	}

	reloaded, err := LoadConfigWithPath("fishaudio", configPath)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if reloaded.CurrentContext != "prod" {
		t.Errorf("CurrentContext = %q, want %q", reloaded.CurrentContext, "prod")
	}
	got, err := reloaded.GetCurrentContext()
	if err != nil {
		t.Fatalf("GetCurrentContext error: %v", err)
	}
	if !reflect.DeepEqual(got, ctx) {
		t.Errorf("reloaded context = %+v, want %+v", got, ctx)
	}
}

func TestLoadConfigWithPath_Invalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("contexts: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigWithPath("fishaudio", configPath); err == nil {
		t.Error("LoadConfigWithPath should fail for invalid YAML")
	}
}

func TestConfig_AddContext_EmptyName(t *testing.T) {
	cfg, _ := newTestConfig(t)
	if err := cfg.AddContext("", &Context{APIKey: "k"}); err == nil {
		t.Error("AddContext should fail for empty name")
	}
}

func TestConfig_DeleteContext(t *testing.T) {
	cfg, _ := newTestConfig(t)

	cfg.AddContext("ctx1", &Context{APIKey: "key1"})
	cfg.AddContext("ctx2", &Context{APIKey: "key2"})
	cfg.UseContext("ctx1")

	if err := cfg.DeleteContext("ctx2"); err != nil {
		t.Fatalf("DeleteContext error: %v", err)
	}
	if _, ok := cfg.Contexts["ctx2"]; ok {
		t.Error("Context should be deleted")
	}

	if err := cfg.DeleteContext("ctx1"); err != nil {
		t.Fatalf("DeleteContext error: %v", err)
	}
	if cfg.CurrentContext != "" {
		t.Errorf("CurrentContext should be cleared, got %q", cfg.CurrentContext)
	}

	if err := cfg.DeleteContext("nonexistent"); err == nil {
		t.Error("DeleteContext should fail for non-existent context")
	}
}

func TestConfig_ResolveContext(t *testing.T) {
	cfg, _ := newTestConfig(t)

	if _, err := cfg.ResolveContext(""); err == nil {
		t.Error("ResolveContext('') should fail when no current context")
	}

	cfg.AddContext("ctx1", &Context{APIKey: "key1"})
	cfg.AddContext("ctx2", &Context{APIKey: "key2"})
	if err := cfg.UseContext("missing"); err == nil {
		t.Error("UseContext should fail for non-existent context")
	}
	cfg.UseContext("ctx1")

	ctx, err := cfg.ResolveContext("ctx2")
	if err != nil {
		t.Fatalf("ResolveContext(ctx2) error: %v", err)
	}
	if ctx.APIKey != "key2" {
		t.Errorf("APIKey = %q, want %q", ctx.APIKey, "key2")
	}

	ctx, err = cfg.ResolveContext("")
	if err != nil {
		t.Fatalf("ResolveContext('') error: %v", err)
	}
	if ctx.APIKey != "key1" {
		t.Errorf("APIKey = %q, want %q", ctx.APIKey, "key1")
	}

	if _, err := cfg.ResolveContext("missing"); err == nil {
		t.Error("ResolveContext should fail for non-existent context")
	}
}

func TestConfig_ListContexts(t *testing.T) {
	cfg, _ := newTestConfig(t)
	cfg.AddContext("staging", &Context{})
	cfg.AddContext("production", &Context{})
	cfg.AddContext("development", &Context{})

	got := cfg.ListContexts()
	want := []string{"development", "production", "staging"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListContexts() = %v, want %v", got, want)
	}
}

func TestConfig_ContextNotFound(t *testing.T) {
	cfg, _ := newTestConfig(t)

	for name, fn := range map[string]func() error{
		"GetContext":    func() error { _, err := cfg.GetContext("ghost"); return err },
		"UseContext":    func() error { return cfg.UseContext("ghost") },
		"DeleteContext": func() error { return cfg.DeleteContext("ghost") },
	} {
		if err := fn(); !errors.Is(err, ErrContextNotFound) {
			t.Errorf("%s error = %v, want ErrContextNotFound", name, err)
		}
	}
}

func TestContext_Helpers(t *testing.T) {
	ctx := &Context{Timeout: 90}
	if got := ctx.TimeoutDuration(); got != 90*time.Second {
		t.Errorf("TimeoutDuration = %v, want 90s", got)
	}
	if got := (&Context{}).TimeoutDuration(); got != 0 {
		t.Errorf("TimeoutDuration unset = %v, want 0", got)
	}

	if got := ctx.DefaultReferenceID(); got != "" {
		t.Errorf("DefaultReferenceID = %q, want empty", got)
	}
	ctx.SetExtra(ExtraDefaultReferenceID, "ref-9")
	if got := ctx.DefaultReferenceID(); got != "ref-9" {
		t.Errorf("DefaultReferenceID = %q, want ref-9", got)
	}
}
