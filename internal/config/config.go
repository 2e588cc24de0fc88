package config

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// EnvPath names the environment variable consulted when no path is given
const EnvPath = "JSFRONT_CONFIG"

// Output formats
const (
	FormatSexpr = "sexpr"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config holds the settings of the jsfront tool
type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
	Parser ParserConfig `toml:"parser"`
}

// OutputConfig controls how parse results are printed
type OutputConfig struct {
	Format  string `toml:"format"`
	NoColor bool   `toml:"no_color"`
}

// LogConfig controls diagnostics logging
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ParserConfig is passed through to the parser
type ParserConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the TOML file at path. An empty path falls back to $JSFRONT_CONFIG
// and then to ./jsfront.toml; if none of them exist the defaults are returned.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPath)
		explicit = path != ""
	}
	if !explicit {
		path = "jsfront.toml"
	}
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, errors.Errorf("config file not found: %s", path)
		}
		return Default(), nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = FormatSexpr
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = 512
	}
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case FormatSexpr, FormatJSON, FormatYAML:
	default:
		return errors.Errorf("unknown output format %q", c.Output.Format)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.WithStack(err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf("unknown log format %q", c.Log.Format)
	}
	if c.Parser.MaxDepth < 0 {
		return errors.Errorf("parser max_depth must not be negative, got %d", c.Parser.MaxDepth)
	}
	return nil
}

// Logger builds a logger writing to out according to the log settings
func (c *Config) Logger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	log := logrus.New()
	log.Out = out
	log.Level = level
	if c.Log.Format == "json" {
		log.Formatter = &logrus.JSONFormatter{}
	} else {
		log.Formatter = &logrus.TextFormatter{
			DisableColors: c.Output.NoColor,
			FullTimestamp: true,
		}
	}
	return log, nil
}
