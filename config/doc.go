// Package config loads and validates the full pipeline configuration.
//
// Configuration is layered: a YAML file provides the base, a .env file
// (loaded via godotenv) and process environment variables override it.
// Environment variables use the AUDIOPIPE_ prefix with underscore-
// separated paths (e.g. AUDIOPIPE_CACHE_ADDR).
//
// # Usage
//
//	var cfg config.Config
//	err := config.Load(&cfg, config.WithConfigFile("config.yml"))
package config
