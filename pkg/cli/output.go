package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// OutputFormat selects how Output encodes a result.
type OutputFormat string

const (
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
	// FormatRaw writes []byte and string results unchanged and falls back to
	// YAML for anything else.
	FormatRaw OutputFormat = "raw"
)

// OutputOptions says where and how a result is written.
type OutputOptions struct {
	// Format defaults to FormatYAML.
	Format OutputFormat

	// File is written instead of stdout when set.
	File string

	// Indent is the JSON indent, two spaces by default.
	Indent string

	// Writer takes precedence over File.
	Writer io.Writer
}

// Output encodes result to the destination in opts.
func Output(result any, opts OutputOptions) (err error) {
	w := opts.Writer
	if w == nil && opts.File != "" {
		f, err := os.Create(opts.File)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("close output file: %w", cerr)
			}
		}()
		w = f
	}
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case FormatYAML, "":
		return writeYAML(w, result)
	case FormatJSON:
		indent := opts.Indent
		if indent == "" {
			indent = "  "
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", indent)
		return enc.Encode(result)
	case FormatRaw:
		switch v := result.(type) {
		case []byte:
			_, err := w.Write(v)
			return err
		case string:
			_, err := io.WriteString(w, v)
			return err
		}
		return writeYAML(w, result)
	}
	return fmt.Errorf("unsupported output format %q", opts.Format)
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// OutputBytes writes binary data such as audio to path.
func OutputBytes(data []byte, path string) error {
	if path == "" {
		return errors.New("output file path is required for binary data")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Printer writes human-oriented lines. Results belong on Out; warnings and
// verbose diagnostics go to Err.
type Printer struct {
	Out     io.Writer
	Err     io.Writer
	Verbose bool
}

// NewPrinter creates a printer. Nil writers default to stdout and stderr.
func NewPrinter(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{Out: out, Err: errOut}
}

func (p *Printer) printf(w io.Writer, prefix, format string, args ...any) {
	fmt.Fprintf(w, prefix+format+"\n", args...)
}

// Line prints format as is.
func (p *Printer) Line(format string, args ...any) { p.printf(p.Out, "", format, args...) }

// Success prints a line marked with a check.
func (p *Printer) Success(format string, args ...any) { p.printf(p.Out, "✓ ", format, args...) }

// Info prints a progress line.
func (p *Printer) Info(format string, args ...any) { p.printf(p.Out, "ℹ ", format, args...) }

// Warning prints a line marked as a warning to Err.
func (p *Printer) Warning(format string, args ...any) { p.printf(p.Err, "⚠ ", format, args...) }

// Verbosef prints to Err only in verbose mode.
func (p *Printer) Verbosef(format string, args ...any) {
	if p.Verbose {
		p.printf(p.Err, "[verbose] ", format, args...)
	}
}
