package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Paths locates the files of one app under ~/.fishvoice/<app>.
type Paths struct {
	AppName string
	HomeDir string
}

// NewPaths returns the Paths of appName in the user's home directory.
func NewPaths(appName string) (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Paths{AppName: appName, HomeDir: home}, nil
}

// BaseDir is ~/.fishvoice.
func (p *Paths) BaseDir() string { return filepath.Join(p.HomeDir, DefaultBaseDir) }

// AppDir is ~/.fishvoice/<app>.
func (p *Paths) AppDir() string { return filepath.Join(p.BaseDir(), p.AppName) }

// ConfigFile is ~/.fishvoice/<app>/config.yaml.
func (p *Paths) ConfigFile() string { return filepath.Join(p.AppDir(), DefaultConfigFile) }

// DataDir is ~/.fishvoice/<app>/data, where generated audio is kept.
func (p *Paths) DataDir() string { return filepath.Join(p.AppDir(), "data") }

// DataPath joins name onto DataDir.
func (p *Paths) DataPath(name string) string { return filepath.Join(p.DataDir(), name) }

// EnsureDataDir creates DataDir.
func (p *Paths) EnsureDataDir() error { return os.MkdirAll(p.DataDir(), 0755) }

// NewAudioFile creates DataDir and returns a fresh path there named
// <prefix>-<uuid>.<ext>. The file itself is not created.
func (p *Paths) NewAudioFile(prefix, ext string) (string, error) {
	if err := p.EnsureDataDir(); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return p.DataPath(fmt.Sprintf("%s-%s.%s", prefix, uuid.NewString(), ext)), nil
}
