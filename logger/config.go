package logger

import "github.com/kbukum/propkit/validation"

// Config contains logging configuration.
type Config struct {
	Level     string `yaml:"level" mapstructure:"level"`
	Format    string `yaml:"format" mapstructure:"format"`
	Output    string `yaml:"output" mapstructure:"output"`
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller    bool   `yaml:"caller" mapstructure:"caller"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
	c.Timestamp = true
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	v := validation.New().
		Required("level", c.Level).
		OneOf("level", c.Level, []string{"trace", "debug", "info", "warn", "error", "disabled"}).
		Required("format", c.Format).
		OneOf("format", c.Format, []string{"json", "console", FormatPretty}).
		Required("output", c.Output).
		OneOf("output", c.Output, []string{"stdout", "stderr"})
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
