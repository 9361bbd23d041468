// Package config handles the XDG configuration directory and config.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "gtodo"

	// ConfigFile is the config filename inside the config directory.
	ConfigFile = "config.yaml"

	// DataDir is the default local store directory inside the config directory.
	DataDir = "data"

	// EmulatorHostEnv overrides firestore.emulator_host when set.
	EmulatorHostEnv = "FIRESTORE_EMULATOR_HOST"
)

// Backend names.
const (
	BackendLocal     = "local"
	BackendFirestore = "firestore"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// Debug enables debug logging.
	Debug bool `yaml:"-"`

	// Quiet suppresses informational output.
	Quiet bool `yaml:"-"`

	// Backend selects the document store: "local" or "firestore".
	Backend string `yaml:"backend"`

	Local     LocalConfig     `yaml:"local"`
	Firestore FirestoreConfig `yaml:"firestore"`
}

// LocalConfig configures the embedded store.
type LocalConfig struct {
	// Path is the database directory. Defaults to <Dir>/data.
	Path string `yaml:"path"`
}

// FirestoreConfig configures the Firestore store.
type FirestoreConfig struct {
	ProjectID       string `yaml:"project_id"`
	DatabaseID      string `yaml:"database_id"`
	CredentialsFile string `yaml:"credentials_file"`
	EmulatorHost    string `yaml:"emulator_host"`
}

// New creates a Config with the default or specified config directory and
// loads config.yaml from it. A missing file yields the defaults.
// If configDir is empty, uses XDG_CONFIG_HOME/gtodo or $HOME/.config/gtodo.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{Dir: dir, Backend: BackendLocal}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) load() error {
	data, err := os.ReadFile(c.Path())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("invalid %s: %w", ConfigFile, err)
		}
	}

	if c.Backend == "" {
		c.Backend = BackendLocal
	}
	if c.Local.Path == "" {
		c.Local.Path = filepath.Join(c.Dir, DataDir)
	}
	if host := os.Getenv(EmulatorHostEnv); host != "" {
		c.Firestore.EmulatorHost = host
	}
	return c.Validate()
}

// Validate checks the loaded settings.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendLocal:
	case BackendFirestore:
		if c.Firestore.ProjectID == "" {
			return errors.New("firestore.project_id is required when backend is firestore")
		}
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendLocal, BackendFirestore)
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the path to config.yaml.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// SessionDir returns the directory holding the persisted session.
func (c *Config) SessionDir() string {
	return c.Dir
}
