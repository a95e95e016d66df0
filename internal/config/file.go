package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "POWERLINE_GO_CONFIG"

// configNames are tried in order inside <UserConfigDir>/powerline-go.
var configNames = []string{"config.yaml", "config.yml", "config.toml"}

// FileConfig is the on-disk configuration. Unset keys leave the defaults alone.
type FileConfig struct {
	Shell           *string        `yaml:"shell" toml:"shell"`
	Color           *string        `yaml:"color" toml:"color"`
	Mode            *string        `yaml:"mode" toml:"mode"`
	Depth           *int           `yaml:"depth" toml:"depth"`
	ShowPath        *bool          `yaml:"show_path" toml:"show_path"`
	ShowRepo        *bool          `yaml:"show_repo" toml:"show_repo"`
	ShowRoot        *bool          `yaml:"show_root" toml:"show_root"`
	ShowContext     *bool          `yaml:"show_context" toml:"show_context"`
	DefaultBranches []string       `yaml:"default_branches" toml:"default_branches"`
	Timeout         *time.Duration `yaml:"timeout" toml:"timeout"`
	Debug           *bool          `yaml:"debug" toml:"debug"`
}

// Apply overlays the keys present in the file onto opts.
func (f *FileConfig) Apply(opts *Options) {
	if f.Shell != nil {
		opts.Shell = *f.Shell
	}
	if f.Color != nil {
		opts.Color = *f.Color
	}
	if f.Mode != nil {
		opts.Mode = *f.Mode
	}
	if f.Depth != nil {
		opts.Depth = *f.Depth
	}
	if f.ShowPath != nil {
		opts.ShowPath = *f.ShowPath
	}
	if f.ShowRepo != nil {
		opts.ShowRepo = *f.ShowRepo
	}
	if f.ShowRoot != nil {
		opts.ShowRoot = *f.ShowRoot
	}
	if f.ShowContext != nil {
		opts.ShowContext = *f.ShowContext
	}
	if len(f.DefaultBranches) > 0 {
		opts.DefaultBranches = append([]string(nil), f.DefaultBranches...)
	}
	if f.Timeout != nil {
		opts.Timeout = *f.Timeout
	}
	if f.Debug != nil {
		opts.Debug = *f.Debug
	}
}

// LoadFile decodes a YAML or TOML file, chosen by extension.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &fc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return &fc, nil
}

// FindConfigPath returns the first config file found under the user config directory, or "".
func FindConfigPath() string {
	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	for _, name := range configNames {
		p := filepath.Join(configHome, "powerline-go", name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// loadInto applies the config file at path onto opts. An explicit path must
// exist; a discovered one that disappeared in the meantime is skipped.
func loadInto(opts *Options, path string, explicit bool) error {
	if path == "" {
		return nil
	}
	fc, err := LoadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config file: %w", err)
	}
	fc.Apply(opts)
	return nil
}
