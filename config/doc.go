// Package config loads edukit configuration from a YAML file, an optional
// .env file and prefixed environment variables.
//
// It uses Viper for the file and override layers and godotenv for .env
// files. Programs embed ServiceConfig in their own struct:
//
//	var cfg appConfig
//	err := config.LoadConfig("edukit", &cfg, config.WithConfigFile(path))
//
// Environment variables override file values using the program prefix with
// underscore-separated paths (e.g. EDUKIT_PASSWORD_DEFAULT_LENGTH).
package config
