package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutput_Formats(t *testing.T) {
	model := map[string]any{"_id": "abc123", "title": "Clone_abc"}

	tests := []struct {
		name   string
		result any
		opts   OutputOptions
		want   []string
	}{
		{"yaml", model, OutputOptions{Format: FormatYAML}, []string{"_id: abc123", "title: Clone_abc"}},
		{"default is yaml", model, OutputOptions{}, []string{"title: Clone_abc"}},
		{"json", model, OutputOptions{Format: FormatJSON}, []string{`  "_id": "abc123"`}},
		{"json indent", model, OutputOptions{Format: FormatJSON, Indent: "\t"}, []string{"\t\"title\": \"Clone_abc\""}},
		{"raw bytes", []byte("ID3 frames"), OutputOptions{Format: FormatRaw}, []string{"ID3 frames"}},
		{"raw string", "VOICE_MODEL_ID:abc123", OutputOptions{Format: FormatRaw}, []string{"VOICE_MODEL_ID:abc123"}},
		{"raw falls back to yaml", map[string]int{"credit": 42}, OutputOptions{Format: FormatRaw}, []string{"credit: 42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.opts.Writer = &buf
			if err := Output(tt.result, tt.opts); err != nil {
				t.Fatalf("Output error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output %q does not contain %q", buf.String(), want)
				}
			}
		})
	}
}

func TestOutput_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Output("x", OutputOptions{Format: "table", Writer: &buf}); err == nil {
		t.Error("Output should fail for unsupported format")
	}
}

func TestOutput_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credit.json")

	if err := Output(map[string]string{"credit": "9.99"}, OutputOptions{Format: FormatJSON, File: path}); err != nil {
		t.Fatalf("Output error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON in file: %v", err)
	}
	if got["credit"] != "9.99" {
		t.Errorf("credit = %q, want 9.99", got["credit"])
	}
}

func TestOutputBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speech.mp3")
	audio := []byte{0xff, 0xfb, 0x90, 0x00}

	if err := OutputBytes(audio, path); err != nil {
		t.Fatalf("OutputBytes error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !bytes.Equal(got, audio) {
		t.Errorf("file = %v, want %v", got, audio)
	}

	if err := OutputBytes(audio, ""); err == nil {
		t.Error("OutputBytes should fail for empty path")
	}
}

func TestPrinter(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	p.Line("VOICE_MODEL_ID:%s", "abc")
	p.Success("done %d", 1)
	p.Info("info")
	p.Warning("careful")
	p.Verbosef("hidden")

	wantOut := "VOICE_MODEL_ID:abc\n✓ done 1\nℹ info\n"
	if out.String() != wantOut {
		t.Errorf("out = %q, want %q", out.String(), wantOut)
	}
	if errOut.String() != "⚠ careful\n" {
		t.Errorf("err = %q, want warning only", errOut.String())
	}

	errOut.Reset()
	p.Verbose = true
	p.Verbosef("shown %d", 2)
	if errOut.String() != "[verbose] shown 2\n" {
		t.Errorf("verbose = %q, want %q", errOut.String(), "[verbose] shown 2\n")
	}
}

func TestNewPrinter_Defaults(t *testing.T) {
	p := NewPrinter(nil, nil)
	if p.Out != os.Stdout || p.Err != os.Stderr {
		t.Error("NewPrinter(nil, nil) should default to stdout and stderr")
	}
}
