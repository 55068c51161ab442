package config

import (
	"fmt"

	"github.com/kbukum/gostream/errors"
	"github.com/kbukum/gostream/logger"
	"github.com/kbukum/gostream/observability"
	"github.com/kbukum/gostream/stream"
	"github.com/kbukum/gostream/validation"
)

// Config is the complete application configuration.
type Config struct {
	Name          string               `yaml:"name" mapstructure:"name" validate:"required"`
	Environment   string               `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Stream        StreamConfig         `yaml:"stream" mapstructure:"stream"`
	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// StreamConfig selects the engine options. Unset fields keep the defaults
// chosen by build tags.
type StreamConfig struct {
	// OnEndlessViolation is "error" or "abort".
	OnEndlessViolation string `yaml:"on_endless_violation" mapstructure:"on_endless_violation" validate:"omitempty,oneof=error abort"`
	// TypeReporting enables runtime type identity on type-erased stages.
	TypeReporting *bool `yaml:"type_reporting" mapstructure:"type_reporting"`
}

// ApplyDefaults applies default values to every section.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate checks the struct tags of every section, then the logger
// settings.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.Validation(fmt.Sprintf("logging: %v", err)).WithCause(err)
	}
	return nil
}

// StreamOptions converts the stream section into engine options.
func (c *Config) StreamOptions() (stream.Options, error) {
	opts := stream.DefaultOptions()
	if c.Stream.OnEndlessViolation != "" {
		p, err := stream.ParsePolicy(c.Stream.OnEndlessViolation)
		if err != nil {
			return opts, errors.Validation(err.Error()).WithCause(err)
		}
		opts.OnEndless = p
	}
	if c.Stream.TypeReporting != nil {
		opts.TypeReporting = *c.Stream.TypeReporting
	}
	return opts, nil
}

// Apply initialises the global logger and installs the stream options.
func (c *Config) Apply() error {
	opts, err := c.StreamOptions()
	if err != nil {
		return err
	}
	logger.Init(&c.Logging)
	stream.Configure(opts)
	logger.Get("config").Debug("configuration applied", logger.Fields(
		logger.FieldPolicy, opts.OnEndless.String(),
		"type_reporting", opts.TypeReporting,
		"environment", c.Environment,
	))
	return nil
}
