package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

const (
	// DefaultBaseDir is the directory under $HOME holding all app settings.
	DefaultBaseDir = ".fishvoice"
	// DefaultConfigFile is the config filename inside an app directory.
	DefaultConfigFile = "config.yaml"

	// ExtraDefaultReferenceID names the Extra entry with the voice model tts
	// falls back to.
	ExtraDefaultReferenceID = "default_reference_id"
)

// ErrContextNotFound is returned for unknown context names.
var ErrContextNotFound = errors.New("context not found")

// Config is the on-disk state of one CLI app: its named contexts and which
// one is selected.
type Config struct {
	AppName string `yaml:"-"`

	CurrentContext string              `yaml:"current_context,omitempty"`
	Contexts       map[string]*Context `yaml:"contexts,omitempty"`

	configPath string
}

// Context is a named credential plus endpoint settings.
type Context struct {
	Name    string `yaml:"name"`
	APIKey  string `yaml:"api_key,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout is in seconds; zero keeps the client default.
	Timeout int `yaml:"timeout,omitempty"`

	// Extra holds per-app settings such as ExtraDefaultReferenceID.
	Extra map[string]string `yaml:"extra,omitempty"`
}

// LoadConfig loads ~/.fishvoice/<appName>/config.yaml, creating it if needed.
func LoadConfig(appName string) (*Config, error) {
	return LoadConfigWithPath(appName, "")
}

// LoadConfigWithPath is LoadConfig with an explicit file. An empty path
// selects the default location.
func LoadConfigWithPath(appName, path string) (*Config, error) {
	if path == "" {
		paths, err := NewPaths(appName)
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = paths.ConfigFile()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	cfg := &Config{configPath: path}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg.init(appName)
		return cfg, cfg.Save()
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.init(appName)
	return cfg, nil
}

func (c *Config) init(appName string) {
	c.AppName = appName
	if c.Contexts == nil {
		c.Contexts = make(map[string]*Context)
	}
	for name, ctx := range c.Contexts {
		if ctx == nil {
			delete(c.Contexts, name)
			continue
		}
		ctx.Name = name
	}
}

// Save writes the config back to its file. The file holds API keys and is
// created owner-only.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Path returns the config file path.
func (c *Config) Path() string { return c.configPath }

// Dir returns the directory holding the config file.
func (c *Config) Dir() string { return filepath.Dir(c.configPath) }

// AddContext stores ctx under name, replacing an existing entry, and saves.
func (c *Config) AddContext(name string, ctx *Context) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("context name is required")
	}
	if ctx == nil {
		return errors.New("context is nil")
	}
	ctx.Name = name
	c.Contexts[name] = ctx
	return c.Save()
}

// DeleteContext removes a context and saves. Deleting the current context
// leaves no context selected.
func (c *Config) DeleteContext(name string) error {
	if _, err := c.GetContext(name); err != nil {
		return err
	}
	delete(c.Contexts, name)
	if c.CurrentContext == name {
		c.CurrentContext = ""
	}
	return c.Save()
}

// UseContext selects a context and saves.
func (c *Config) UseContext(name string) error {
	if _, err := c.GetContext(name); err != nil {
		return err
	}
	c.CurrentContext = name
	return c.Save()
}

// GetContext looks a context up by name.
func (c *Config) GetContext(name string) (*Context, error) {
	if ctx, ok := c.Contexts[name]; ok {
		return ctx, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrContextNotFound, name)
}

// GetCurrentContext returns the selected context.
func (c *Config) GetCurrentContext() (*Context, error) {
	if c.CurrentContext == "" {
		return nil, errors.New("no current context set")
	}
	return c.GetContext(c.CurrentContext)
}

// ResolveContext returns the named context, or the current one for "".
func (c *Config) ResolveContext(name string) (*Context, error) {
	if name != "" {
		return c.GetContext(name)
	}
	return c.GetCurrentContext()
}

// ListContexts returns the context names in lexical order.
func (c *Config) ListContexts() []string {
	names := make([]string, 0, len(c.Contexts))
	for name := range c.Contexts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GetExtra returns the Extra value for key, or "".
func (ctx *Context) GetExtra(key string) string {
	return ctx.Extra[key]
}

// SetExtra sets an Extra value, allocating the map on first use.
func (ctx *Context) SetExtra(key, value string) {
	if ctx.Extra == nil {
		ctx.Extra = map[string]string{}
	}
	ctx.Extra[key] = value
}

// DefaultReferenceID returns the voice model configured for tts.
func (ctx *Context) DefaultReferenceID() string {
	return ctx.GetExtra(ExtraDefaultReferenceID)
}

// TimeoutDuration converts Timeout to a duration; zero means unset.
func (ctx *Context) TimeoutDuration() time.Duration {
	if ctx.Timeout <= 0 {
		return 0
	}
	return time.Duration(ctx.Timeout) * time.Second
}

// MaskAPIKey hides all but the first and last four characters of key.
// Keys of eight characters or fewer are hidden entirely.
func MaskAPIKey(key string) string {
	n := len(key)
	if n <= 8 {
		return strings.Repeat("*", n)
	}
	return key[:4] + strings.Repeat("*", n-8) + key[n-4:]
}
