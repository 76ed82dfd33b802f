package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/kbukum/propkit/logger"
)

// EnvPrefix marks the environment variables bound onto configuration keys.
const EnvPrefix = "PROPKIT"

var configExtensions = []string{"yml", "yaml", "json", "toml"}

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver handles finding and resolving config and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns explicit paths if provided, otherwise searches for them.
func (r *Resolver) ResolveFiles(name string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.first(configSearchPaths(name))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.first(envSearchPaths(name))
	}
	return resolved
}

func (r *Resolver) first(paths []string) string {
	path, _ := lo.Find(paths, r.FileSystem.Exists)
	return path
}

// configSearchPaths lists <name>.<ext> before config.<ext>, in ./ then ./config.
func configSearchPaths(name string) []string {
	var paths []string
	for _, base := range []string{name, "config"} {
		for _, dir := range []string{".", "./config"} {
			for _, ext := range configExtensions {
				paths = append(paths, fmt.Sprintf("%s/%s.%s", dir, base, ext))
			}
		}
	}
	return lo.Uniq(paths)
}

func envSearchPaths(name string) []string {
	return []string{
		fmt.Sprintf("./.env.%s", name),
		fmt.Sprintf("./config/.env.%s", name),
		"./.env",
		"./config/.env",
	}
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
	EnvPrefix  string
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnvPrefix replaces EnvPrefix for environment binding.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvPrefix = prefix }
}

// LoadConfig loads configuration named name into cfg. It reads the first
// config file found, then the .env file, then binds prefixed environment
// variables; later sources override earlier ones.
func LoadConfig(name string, cfg any, opts ...LoaderOption) error {
	lc := LoaderConfig{EnvPrefix: EnvPrefix}
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(name, lc)

	return loadFromResolvedFiles(cfg, files, lc)
}

func loadFromResolvedFiles(cfg any, files ResolvedFiles, lc LoaderConfig) error {
	log := logger.Get("config")
	v := viper.New()

	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			log.WithFields(logger.Fields(logger.FieldPath, files.ConfigFile)).
				Warn("failed to load config file", logger.ErrorFields("read config", err))
		}
	}

	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			log.WithFields(logger.Fields(logger.FieldPath, files.EnvFile)).
				Warn("failed to load .env file", logger.ErrorFields("load env", err))
		}
	}
	bindEnvVars(v, lc.EnvPrefix)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

// bindEnvVars sets every PREFIX_ environment variable on v under each key
// shape it could address.
func bindEnvVars(v *viper.Viper, prefix string) {
	marker := strings.ToUpper(prefix) + "_"
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(key, marker) {
			continue
		}
		for _, variant := range envKeyVariants(strings.TrimPrefix(key, marker)) {
			v.Set(variant, value)
		}
	}
}

// envKeyVariants creates the possible configuration keys of an environment key.
//
//	DATETIME_ZONE   -> [datetime_zone, datetime.zone]
//	LOGGING_NO_COLOR -> [logging_no_color, logging.no.color, logging.no_color]
func envKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")
	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	variants := []string{
		lowerKey,
		strings.ReplaceAll(lowerKey, "_", "."),
	}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}
	return lo.Uniq(variants)
}
