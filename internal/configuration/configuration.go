package configuration

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. NATURALLI_INFERENCE_PORT.
const EnvPrefix = "NATURALLI"

// AppConfig represents the complete application configuration.
type AppConfig struct {
	// Logger: logger component configuration
	Logger LoggerConfig `mapstructure:"logger"`
	// Inference: NaturalLI inference server and dispatch settings
	Inference InferenceConfig `mapstructure:"inference"`
	// Model: cost model files
	Model ModelConfig `mapstructure:"model"`
	// Learning: cost update rules
	Learning LearningConfig `mapstructure:"learning"`
	// Dataset: scored query log
	Dataset DatasetConfig `mapstructure:"dataset"`
	// Status: HTTP status endpoint
	Status StatusConfig `mapstructure:"status"`
	// Solr: IR query runner
	Solr SolrConfig `mapstructure:"solr"`
}

// LoggerConfig defines logging settings.
type LoggerConfig struct {
	// Level: log level: debug, info, warn, warning, error (case-insensitive).
	Level string `mapstructure:"level"`
}

// InferenceConfig describes how queries reach the inference server.
type InferenceConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// Parallelism: number of queries in flight.
	Parallelism int `mapstructure:"parallelism"`
	// Timeout: deadline for one exchange; 0 waits forever.
	Timeout time.Duration `mapstructure:"timeout"`
	// SendCosts: send the cost vector preamble with every query.
	SendCosts bool `mapstructure:"send_costs"`
	// BufferSize: maximum response size in bytes.
	BufferSize int `mapstructure:"buffer_size"`
}

// ModelConfig points to the cost vector files.
type ModelConfig struct {
	// Input: model loaded at start; missing file means built-in defaults.
	Input string `mapstructure:"input"`
	// Output: where the final model is written; empty disables saving.
	Output string `mapstructure:"output"`
}

// LearningConfig defines the cost update policy.
type LearningConfig struct {
	// Rules: YAML rules file; empty selects the built-in rules.
	Rules string `mapstructure:"rules"`
	// Window: number of recent outcomes used for the rolling accuracy.
	Window int `mapstructure:"window"`
}

// DatasetConfig defines the scored query log.
type DatasetConfig struct {
	// File: JSONL file path (optional)
	File string `mapstructure:"file"`
	// Size: maximal file size in megabytes (default 100)
	Size int `mapstructure:"size"`
	// Amount: number of rotated files (default 20)
	Amount int `mapstructure:"amount"`
}

// StatusConfig contains HTTP status server parameters.
type StatusConfig struct {
	// Address: listen address (e.g. ":8080"); empty disables the server.
	Address string `mapstructure:"address"`
}

// SolrConfig contains the Solr endpoint used by the IR query runner.
type SolrConfig struct {
	Host       string        `mapstructure:"host"`
	Port       int           `mapstructure:"port"`
	Collection string        `mapstructure:"collection"`
	Count      int           `mapstructure:"count"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// Validate checks the correctness of the entire application configuration.
// Returns the first detected error.
func (c *AppConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}

	if err := c.Inference.Validate(); err != nil {
		return err
	}

	if err := c.Learning.Validate(); err != nil {
		return err
	}

	if err := c.Dataset.Validate(); err != nil {
		return err
	}

	return c.Solr.Validate()
}

// Validate checks that the log level is one of the supported values.
func (l *LoggerConfig) Validate() error {
	if l.Level == "" {
		return errors.New("logger.level: must be specified")
	}

	valid := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !valid[strings.ToLower(l.Level)] {
		return fmt.Errorf("logger.level: unsupported level '%s'", l.Level)
	}

	return nil
}

// Validate checks the inference server parameters.
func (i *InferenceConfig) Validate() error {
	if i.Host == "" {
		return errors.New("inference.host: must be specified")
	}
	if i.Port <= 0 || i.Port > 65535 {
		return fmt.Errorf("inference.port: invalid port %d", i.Port)
	}
	if i.Parallelism <= 0 {
		return fmt.Errorf("inference.parallelism: must be positive, got %d", i.Parallelism)
	}
	if i.Timeout < 0 {
		return errors.New("inference.timeout: must not be negative")
	}
	if i.BufferSize <= 0 {
		return fmt.Errorf("inference.buffer_size: must be positive, got %d", i.BufferSize)
	}

	return nil
}

// Validate checks the learning parameters.
func (l *LearningConfig) Validate() error {
	if l.Window <= 0 {
		return fmt.Errorf("learning.window: must be positive, got %d", l.Window)
	}

	return nil
}

// Validate dataset parameters
func (d *DatasetConfig) Validate() error {
	if d.Amount == 0 {
		d.Amount = 20
	}

	if d.Size == 0 {
		d.Size = 100
	}

	return nil
}

// Validate checks the Solr parameters. The collection is checked by the solr command itself.
func (s *SolrConfig) Validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("solr.port: invalid port %d", s.Port)
	}
	if s.Count <= 0 {
		return fmt.Errorf("solr.count: must be positive, got %d", s.Count)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")

	v.SetDefault("inference.host", "127.0.0.1")
	v.SetDefault("inference.port", 1337)
	v.SetDefault("inference.parallelism", 4)
	v.SetDefault("inference.timeout", time.Duration(0))
	v.SetDefault("inference.send_costs", true)
	v.SetDefault("inference.buffer_size", 32768)

	v.SetDefault("model.input", "")
	v.SetDefault("model.output", "")

	v.SetDefault("learning.rules", "")
	v.SetDefault("learning.window", 100)

	v.SetDefault("dataset.file", "")
	v.SetDefault("dataset.size", 100)
	v.SetDefault("dataset.amount", 20)

	v.SetDefault("status.address", "")

	v.SetDefault("solr.host", "localhost")
	v.SetDefault("solr.port", 8983)
	v.SetDefault("solr.collection", "")
	v.SetDefault("solr.count", 8)
	v.SetDefault("solr.timeout", 30*time.Second)
}

// LoadConfig loads configuration using Viper. The YAML file at configPath is optional:
// an empty path uses defaults and environment variables (NATURALLI_<SECTION>_<KEY>) only.
//
// Returns an error if:
// - the file is given but not found or inaccessible
// - the configuration has invalid format
// - one of the sections fails validation
func LoadConfig(configPath string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}
