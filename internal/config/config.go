// Package config loads user defaults for transpose from a TOML or YAML file.
//
// The file is looked up at $XDG_CONFIG_HOME/transpose/config.toml, falling
// back to ~/.config/transpose, and config.yaml (or .yml) is accepted in the
// same place. Every key is optional:
//
//	separator = ","
//	output_separator = " | "
//	keep_spaces = true
//	skew = true
//	format = "json"
//
//	[cache]
//	dir = "~/.cache/transpose"
//	redis = "redis://localhost:6379/0"
//
//	[serve]
//	addr = ":8080"
//
// Values only fill in what the command line left unset.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/transpose/pkg/errors"
	"github.com/matzehuels/transpose/pkg/pipeline"
)

// Config mirrors the file layout.
type Config struct {
	Separator       *string `mapstructure:"separator"`
	Pattern         string  `mapstructure:"pattern"`
	Width           string  `mapstructure:"width"`
	OutputSeparator *string `mapstructure:"output_separator"`
	KeepSpaces      bool    `mapstructure:"keep_spaces"`
	Quoted          bool    `mapstructure:"quoted"`
	DQuoted         bool    `mapstructure:"dquoted"`
	Skew            bool    `mapstructure:"skew"`
	Format          string  `mapstructure:"format"`
	InputFormat     string  `mapstructure:"input_format"`

	Cache Cache `mapstructure:"cache"`
	Serve Serve `mapstructure:"serve"`

	// Path is the file the values came from, empty if none was found.
	Path string `mapstructure:"-"`
}

// Cache selects the result cache backend.
type Cache struct {
	Dir   string `mapstructure:"dir"`
	Redis string `mapstructure:"redis"`
}

// Serve configures `transpose serve`.
type Serve struct {
	Addr string `mapstructure:"addr"`
}

// Dir returns the directory searched for config files.
func Dir() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "transpose")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "transpose")
}

// LoadDefault loads the first config file found in Dir. No file is not an
// error.
func LoadDefault() (*Config, error) {
	dir := Dir()
	if dir == "" {
		return &Config{}, nil
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return &Config{}, nil
}

// Load reads path. The format follows the extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes data written in the format named by ext (".toml", ".yaml"
// or ".yml"). Unknown keys are rejected.
func Parse(data []byte, ext string) (*Config, error) {
	raw := map[string]any{}
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q", ext)
	}

	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, err
	}
	if cfg.Format != "" {
		if err := errors.ValidateFormat(cfg.Format); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// Apply copies values into o for every option whose flag changed reports
// false. Boolean switches can only be turned on by the file. The splitter
// keys form one group: a splitter flag on the command line drops all of them.
func (c *Config) Apply(o *pipeline.Options, changed func(flag string) bool) {
	if !splitterChanged(changed) {
		if c.Separator != nil {
			o.Columns.Separator = *c.Separator
			o.Columns.SeparatorSet = true
		}
		if c.Pattern != "" {
			o.Columns.Pattern = c.Pattern
		}
		if c.Width != "" {
			o.Columns.Width = c.Width
		}
		o.Columns.Quoted = o.Columns.Quoted || c.Quoted
		o.Columns.DQuoted = o.Columns.DQuoted || c.DQuoted
	}
	if c.OutputSeparator != nil && !changed("output-separator") {
		o.OutputSeparator = *c.OutputSeparator
		o.OutputSeparatorSet = true
	}
	o.Columns.KeepSpaces = o.Columns.KeepSpaces || c.KeepSpaces
	o.Request.Skew = o.Request.Skew || c.Skew
	if c.Format != "" && !changed("format") {
		o.Format = c.Format
	}
	if c.InputFormat != "" && !changed("input-format") {
		o.InputFormat = c.InputFormat
	}
}

func splitterChanged(changed func(flag string) bool) bool {
	for _, name := range []string{"separator", "pattern", "width", "quoted", "dquoted"} {
		if changed(name) {
			return true
		}
	}
	return false
}

// ExpandHome replaces a leading "~/" in p with the user's home directory.
func ExpandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
