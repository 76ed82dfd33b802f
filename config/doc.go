// Package config loads propkit settings from files and environment variables.
//
// It uses Viper to read YAML, JSON or TOML files and godotenv to load .env
// files. Environment variables prefixed with PROPKIT_ override file values,
// with underscores addressing nested keys (e.g. PROPKIT_DATETIME_ZONE).
//
// # Usage
//
//	cfg, err := config.Load("orders")
//	kit, err := cfg.Build()
//	kit.Copier.CopyNotNull(src, dst)
package config
