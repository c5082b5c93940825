package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/graphq/query"
	"github.com/katalvlaran/graphq/report"
)

// EnvPrefix is the prefix of environment overrides, e.g. GRAPHQ_LOG_LEVEL.
const EnvPrefix = "GRAPHQ"

// Config holds all application configuration.
type Config struct {
	Input       string        `mapstructure:"input"`
	Output      string        `mapstructure:"output"`
	Format      string        `mapstructure:"format"`
	Append      bool          `mapstructure:"append"`
	Parallelism int           `mapstructure:"parallelism"`
	Log         LogConfig     `mapstructure:"log"`
	Queries     []QueryConfig `mapstructure:"queries"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// QueryConfig is one entry of the batch executed by `graphq run`.
type QueryConfig struct {
	Kind   string `mapstructure:"kind"`
	Source int    `mapstructure:"source"`
	Target int    `mapstructure:"target"`
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"input":       "input",
	"output":      "output",
	"format":      "format",
	"append":      "append",
	"parallelism": "parallelism",
	"log-level":   "log.level",
	"log-format":  "log.format",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "input.txt")
	v.SetDefault("output", "")
	v.SetDefault("format", string(report.Text))
	v.SetDefault("append", false)
	v.SetDefault("parallelism", query.DefaultParallelism)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if _, err := report.ParseFormat(c.Format); err != nil {
		warnings = append(warnings, fmt.Sprintf("format '%s' is not one of text, yaml, json", c.Format))
	}
	if c.Parallelism < 1 {
		warnings = append(warnings, fmt.Sprintf("parallelism %d is below 1, using 1", c.Parallelism))
	}
	if c.Log.Format != "" && c.Log.Format != "text" && c.Log.Format != "json" {
		warnings = append(warnings, fmt.Sprintf("log format '%s' is not one of text, json", c.Log.Format))
	}
	for i, q := range c.Queries {
		switch query.Kind(strings.ToLower(q.Kind)) {
		case query.KindDFS, query.KindBFS, query.KindComponents, query.KindPath, query.KindPaths:
		default:
			warnings = append(warnings, fmt.Sprintf("queries[%d]: unknown kind '%s'", i, q.Kind))
		}
	}

	return warnings
}

// Requests converts the configured batch into query requests.
func (c *Config) Requests() []query.Request {
	out := make([]query.Request, 0, len(c.Queries))
	for _, q := range c.Queries {
		out = append(out, query.Request{Kind: query.Kind(strings.ToLower(q.Kind)), Source: q.Source, Target: q.Target})
	}

	return out
}

// Load reads configuration from defaults, the optional file at path, the
// environment and the changed flags of fs, each layer overriding the last.
// An empty path skips the file; fs may be nil.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// Normalize replaces values Validate warned about with usable ones. Call it
// after Validate so the warnings still see the configured values.
func (c *Config) Normalize() {
	if c.Parallelism < 1 {
		c.Parallelism = 1
	}
}
