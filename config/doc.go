// Package config loads typed configuration for seqkit binaries.
//
// It uses Viper to read a YAML file, optionally loads a .env file through
// godotenv, and applies environment overrides of the form
// <PREFIX>_<SECTION>__<KEY> (double underscore separates nesting levels).
//
// # Usage
//
//	var cfg MyConfig
//	err := config.Load("seqdemo", &cfg, config.WithConfigFile("config.yml"))
//
// With the default prefix SEQDEMO, SEQDEMO_LOGGING__LEVEL=debug overrides
// logging.level.
package config
