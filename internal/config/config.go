// Package config loads goxwrap settings with Viper from defaults, an
// optional .goxwrap.yml file, GOXWRAP_* environment variables and flags.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/germtb/gox-wrapper/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. GOXWRAP_STYLES_FILE.
const EnvPrefix = "GOXWRAP"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Styles  StylesConfig  `mapstructure:"styles"`
	Preview PreviewConfig `mapstructure:"preview"`
	Log     LogConfig     `mapstructure:"log"`
}

type StylesConfig struct {
	// File is a YAML or JSON class map. When empty, Module is used to
	// derive identifiers.
	File   string `mapstructure:"file"`
	Module string `mapstructure:"module"`
	Watch  bool   `mapstructure:"watch"`
}

type PreviewConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("styles.file", "")
	v.SetDefault("styles.module", "Wrapper")
	v.SetDefault("styles.watch", false)
	v.SetDefault("preview.host", "localhost")
	v.SetDefault("preview.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Init wires defaults, the config file and environment overrides into v.
// cfgFile wins over GOXWRAP_CONFIG_FILE, which wins over ./.goxwrap.yml.
// A missing default file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := cfgFile
	if explicit == "" {
		explicit = os.Getenv(EnvPrefix + "_CONFIG_FILE")
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".goxwrap")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "read config")
	}
	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	if c.Styles.File == "" && strings.TrimSpace(c.Styles.Module) == "" {
		return errors.Wrap(ErrInvalidConfig, "styles.file or styles.module is required")
	}
	if c.Styles.Watch && c.Styles.File == "" {
		return errors.Wrap(ErrInvalidConfig, "styles.watch needs styles.file")
	}
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.Wrapf(ErrInvalidConfig, "preview.port %d out of range", c.Preview.Port)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.Wrapf(ErrInvalidConfig, "log.format %q: want text or json", c.Log.Format)
	}
	return nil
}

// Logger builds the logger described by the log section.
func (c *Config) Logger() logging.Logger {
	level, _ := logging.ParseLevel(c.Log.Level)
	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Format = c.Log.Format
	return logging.New(cfg)
}
