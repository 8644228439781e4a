package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testRequest struct {
	Text        string `yaml:"text" json:"text"`
	ReferenceID string `yaml:"reference_id" json:"reference_id"`
}

func TestLoadRequest(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"req.yaml", "text: hello\nreference_id: m1\n"},
		{"req.yml", "text: hello\nreference_id: m1\n"},
		{"req.json", `{"text":"hello","reference_id":"m1"}`},
		{"req.txt", "text: hello\nreference_id: m1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			var req testRequest
			if err := LoadRequest(path, &req); err != nil {
				t.Fatalf("LoadRequest error: %v", err)
			}
			if req.Text != "hello" || req.ReferenceID != "m1" {
				t.Errorf("req = %+v", req)
			}
		})
	}
}

func TestLoadRequest_Errors(t *testing.T) {
	var req testRequest
	if err := LoadRequest(filepath.Join(t.TempDir(), "missing.yaml"), &req); err == nil {
		t.Error("LoadRequest should fail for missing file")
	}
	if err := ParseRequest([]byte(`{"text":`), "req.json", &req); err == nil {
		t.Error("ParseRequest should fail for invalid JSON")
	}
	if err := ParseRequest([]byte("text: [oops"), "req.yaml", &req); err == nil {
		t.Error("ParseRequest should fail for invalid YAML")
	}
}

func TestLoadRequestFrom(t *testing.T) {
	var req testRequest
	if err := LoadRequestFrom(strings.NewReader(`{"text":"hi"}`), &req); err != nil {
		t.Fatalf("LoadRequestFrom error: %v", err)
	}
	if req.Text != "hi" {
		t.Errorf("Text = %q, want %q", req.Text, "hi")
	}
}
