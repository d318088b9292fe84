// Package config loads typed configuration from environment variables.
//
// Struct fields are bound with caarlos0/env tags. A .env file in the working
// directory is read once before the first Load; variables already present in
// the process environment win. Each config type is parsed once and cached, so
// repeated Load calls for the same type are cheap and consistent.
//
// # Usage
//
//	type Config struct {
//		Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
//	}
//
//	if err := config.LoadEnv(".env.local"); err != nil {
//		return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Parse builds a config from an explicit map and skips the cache, which
// suits tests. ResetCache forgets every cached type.
package config
