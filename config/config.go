package config

import (
	"time"

	"github.com/kbukum/propkit/bean"
	"github.com/kbukum/propkit/datetime"
	"github.com/kbukum/propkit/logger"
	"github.com/kbukum/propkit/random"
	"github.com/kbukum/propkit/util"
	"github.com/kbukum/propkit/validation"
)

// BeanConfig configures the property copier.
type BeanConfig struct {
	TagName string   `yaml:"tag_name" mapstructure:"tag_name"`
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`
}

// Validate validates bean configuration.
func (c *BeanConfig) Validate() error {
	if appErr := validation.New().Required("tag_name", c.TagName).Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// Config holds the settings of every propkit package.
type Config struct {
	Name        string          `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string          `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Logging     logger.Config   `yaml:"logging" mapstructure:"logging" validate:"-"`
	Bean        BeanConfig      `yaml:"bean" mapstructure:"bean" validate:"-"`
	DateTime    datetime.Config `yaml:"datetime" mapstructure:"datetime" validate:"-"`
	Random      random.Config   `yaml:"random" mapstructure:"random" validate:"-"`
}

// ApplyDefaults applies default values to every section.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Bean.TagName == "" {
		c.Bean.TagName = bean.DefaultTagName
	}
	c.Logging.ApplyDefaults()
	c.DateTime.ApplyDefaults()
	c.Random.ApplyDefaults()
}

// Validate validates every section and reports all problems at once. Sections
// validate themselves, so the struct tags stop at the top level.
func (c *Config) Validate() error {
	v := validation.New().
		Merge("", validation.Validate(c)).
		Merge("logging", c.Logging.Validate()).
		Merge("bean", c.Bean.Validate()).
		Merge("datetime", c.DateTime.Validate()).
		Merge("random", c.Random.Validate())
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// Load reads the configuration named name, applies defaults and validates it.
func Load(name string, opts ...LoaderOption) (*Config, error) {
	start := time.Now()
	log := logger.Get("config")

	cfg := &Config{}
	if err := LoadConfig(name, cfg, opts...); err != nil {
		log.Error("config not loaded", logger.ErrorFields("load", err))
		return nil, err
	}
	cfg.Name = util.Coalesce(cfg.Name, name)
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		log.Error("config invalid", logger.ErrorFields("validate", err))
		return nil, err
	}
	log.Info("config loaded", logger.DurationFields("load", time.Since(start)))
	return cfg, nil
}

// Kit bundles the components built from a Config.
type Kit struct {
	Logger    *logger.Logger
	Copier    *bean.Copier
	Converter *datetime.Converter
	Generator *random.Generator
}

// Build creates the components described by c. Call ApplyDefaults and
// Validate first, as Load does. The logging section becomes the global logger
// and each package gets a registered component logger.
func (c *Config) Build() (*Kit, error) {
	converter, err := datetime.NewConverter(c.DateTime)
	if err != nil {
		return nil, err
	}
	generator, err := random.NewGenerator(c.Random)
	if err != nil {
		return nil, err
	}

	logger.Init(c.Logging)
	for _, component := range []string{"bean", "random", "config"} {
		logger.Register(component, logger.New(&c.Logging, component))
	}
	return &Kit{
		Logger: logger.New(&c.Logging, c.Name),
		Copier: bean.New(
			bean.WithTagName(c.Bean.TagName),
			bean.WithIgnore(c.Bean.Ignore...),
			bean.WithLogger(logger.Get("bean")),
		),
		Converter: converter,
		Generator: generator,
	}, nil
}
