// Package config loads the gostream application configuration.
//
// It uses Viper to read a YAML, JSON or TOML file, godotenv to load an
// optional .env file, and environment variables with the GOSTREAM_ prefix
// to override individual keys (e.g., GOSTREAM_STREAM_ON_ENDLESS_VIOLATION).
//
// # Usage
//
//	cfg, err := config.Load("streamctl", config.WithConfigFile("config.yml"))
//	if err != nil { ... }
//	if err := cfg.Apply(); err != nil { ... }
//
// Apply initialises the global logger and installs the stream engine
// options. It is meant to run once at startup, before pipelines are built.
package config
