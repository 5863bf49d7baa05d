package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/tabula/internal/logging"
	"github.com/mesh-intelligence/tabula/pkg/column"
	"github.com/mesh-intelligence/tabula/pkg/columns"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "TABULA"

	cfgKeyMissingValues = "missing_values"
	cfgKeySeed          = "seed"
	cfgKeyDefaultType   = "default_type"
	cfgKeyLogLevel      = "log_level"
	cfgKeySeqURL        = "seq_url"

	defaultType     = "STRING"
	defaultLogLevel = "info"
)

// Configuration errors.
var (
	ErrInvalidType     = errors.New("invalid default_type")
	ErrInvalidLogLevel = errors.New("invalid log_level")
)

// Config is the content of config.yaml.
type Config struct {
	// MissingValues are the cell strings read as missing.
	MissingValues []string `yaml:"missing_values"`

	// Seed makes sampling repeatable; 0 leaves it random.
	Seed uint64 `yaml:"seed"`

	// DefaultType is the column type used when --type is not given.
	DefaultType string `yaml:"default_type"`

	LogLevel string `yaml:"log_level"`
	SeqURL   string `yaml:"seq_url,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		MissingValues: slices.Clone(column.DefaultMissingValues),
		DefaultType:   defaultType,
		LogLevel:      defaultLogLevel,
	}
}

// Validate checks values a typo could break.
func (c Config) Validate() error {
	if _, err := columns.Lookup(c.DefaultType); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidType, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogLevel, err)
	}
	return nil
}

// loadConfig reads config.yaml from configDir using Viper, with TABULA_*
// environment variables taking precedence over the file. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyMissingValues, def.MissingValues)
	v.SetDefault(cfgKeySeed, def.Seed)
	v.SetDefault(cfgKeyDefaultType, def.DefaultType)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeySeqURL, def.SeqURL)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		MissingValues: v.GetStringSlice(cfgKeyMissingValues),
		Seed:          v.GetUint64(cfgKeySeed),
		DefaultType:   v.GetString(cfgKeyDefaultType),
		LogLevel:      v.GetString(cfgKeyLogLevel),
		SeqURL:        v.GetString(cfgKeySeqURL),
	}, nil
}
