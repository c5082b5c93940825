// Package config loads graphq settings with viper: defaults, an optional
// YAML file, GRAPHQ_* environment variables and command-line flags.
package config
