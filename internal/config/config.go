// internal/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up when none is given on
// the command line.
const DefaultFilename = "config.json"

// Config holds every build option. The file on disk is optional and
// only needs to list the keys it overrides; everything else keeps the
// built-in default. Loaded once at startup and read-only afterwards.
type Config struct {
	DataDir         string   `json:"data_dir" yaml:"data_dir"`
	TemplateDir     string   `json:"template_dir" yaml:"template_dir"`
	PostsDir        string   `json:"posts_dir" yaml:"posts_dir"`
	PublicDir       string   `json:"public_dir" yaml:"public_dir"`
	DataIndexes     []string `json:"data_indexs" yaml:"data_indexs"`
	CreatePublicDir bool     `json:"create_public_dir" yaml:"create_public_dir"`
	DataFormat      string   `json:"data_format" yaml:"data_format"`
	VerboseMode     bool     `json:"verbose_mode" yaml:"verbose_mode"`
	HomeTemplate    string   `json:"home_template" yaml:"home_template"`
	DateFormat      string   `json:"date_format" yaml:"date_format"`
}

// Default returns the built-in option table.
func Default() Config {
	return Config{
		DataDir:         "data",
		TemplateDir:     "templates",
		PostsDir:        "posts",
		PublicDir:       "public",
		DataIndexes:     []string{},
		CreatePublicDir: true,
		DataFormat:      "csv",
		VerboseMode:     false,
		HomeTemplate:    "home.html",
		DateFormat:      "%d%m%y",
	}
}

// Load reads the config file at path over the defaults. A missing file
// is not an error: the defaults are returned as-is. A file that exists
// but cannot be parsed is fatal. Files ending in .yaml or .yml are
// parsed as YAML, anything else as JSON.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if cfg.VerboseMode {
			fmt.Println("No config file, using defaults.")
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("could not parse config file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("could not parse config file %s: %w", path, err)
		}
	}

	return cfg, nil
}
