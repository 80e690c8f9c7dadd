package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no config file is given explicitly. It is fine for
// it not to exist.
const DefaultPath = "truthtable.yaml"

// Config holds the settings that can be given in a config file instead of on
// the command line. Flags given on the command line win.
//
// Example truthtable.yaml:
//
//	verbose: true
//	output: tables.txt
type Config struct {
	// Log every compilation step
	Verbose bool `yaml:"verbose" toml:"verbose"`
	// Where to print the truth tables, stdout if empty
	Output string `yaml:"output" toml:"output"`

	// Path is where the config was loaded from
	Path string `yaml:"-" toml:"-"`
}

// LoadConfig reads the config file at path. Files ending in .toml are read as
// TOML, everything else as YAML. If the file does not exist the error
// satisfies os.IsNotExist.
func LoadConfig(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// best effort, the relative path works just as well for reading
		absPath = path
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	switch strings.ToLower(filepath.Ext(absPath)) {
	case ".toml":
		err = toml.Unmarshal(content, config)
	default:
		err = yaml.Unmarshal(content, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", absPath, err)
	}

	config.Path = absPath
	return config, nil
}
