package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadRequest decodes a YAML or JSON request file into v.
func LoadRequest(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read request file: %w", err)
	}
	return ParseRequest(data, path, v)
}

// ParseRequest decodes data into v. The extension of filename picks the
// format; anything else is tried as YAML and then JSON.
func ParseRequest(data []byte, filename string, v any) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return decodeJSON(data, v)
	case ".yaml", ".yml":
		return decodeYAML(data, v)
	}
	return decodeAny(data, v, decodeYAML, decodeJSON)
}

// LoadRequestFrom decodes a request read from r, such as stdin. JSON is
// tried before YAML.
func LoadRequestFrom(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	return decodeAny(data, v, decodeJSON, decodeYAML)
}

type decodeFunc func([]byte, any) error

func decodeJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse JSON request: %w", err)
	}
	return nil
}

func decodeYAML(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse YAML request: %w", err)
	}
	return nil
}

func decodeAny(data []byte, v any, decoders ...decodeFunc) error {
	var errs []error
	for _, decode := range decoders {
		err := decode(data, v)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
