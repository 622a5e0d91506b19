// Package config resolves the settings of the enroll command from defaults,
// an optional enroll.yml / enroll.toml file and command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Defaults
const (
	DefaultDataFile       = "enrollments.json"
	DefaultSeparatorWidth = 50
)

// FileNames are looked up in order; the first one present wins.
var FileNames = []string{"enroll.yml", "enroll.yaml", "enroll.toml"}

// Config holds the resolved settings.
type Config struct {
	// DataFile is the JSON document holding the enrollment list.
	DataFile string `yaml:"data_file" toml:"data_file"`
	// SeparatorWidth is the width of the dashed line around listings.
	SeparatorWidth int `yaml:"separator_width" toml:"separator_width"`
	// Plain disables colored output even on a terminal.
	Plain bool `yaml:"plain" toml:"plain"`
	// Debug raises the log level to debug.
	Debug bool `yaml:"debug" toml:"debug"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataFile:       DefaultDataFile,
		SeparatorWidth: DefaultSeparatorWidth,
	}
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("data_file must not be empty")
	}
	if c.SeparatorWidth <= 0 {
		return fmt.Errorf("separator_width must be positive, got %d", c.SeparatorWidth)
	}
	return nil
}

// Load looks for a config file in dir and decodes it over the defaults. It
// returns the path of the file used, or "" when none was found.
func Load(dir string) (Config, string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
		cfg, err := LoadFile(path)
		if err != nil {
			return Config{}, "", err
		}
		return cfg, path, nil
	}
	return Default(), "", nil
}

// LoadFile decodes path over the defaults. The format is chosen by extension.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q for %s", ext, path)
	}
	return cfg, nil
}
