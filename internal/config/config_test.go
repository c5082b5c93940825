package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphq/query"
)

func TestValidate_Empty(t *testing.T) {
	cfg := &Config{Parallelism: 1}
	warnings := cfg.Validate()
	if len(warnings) != 0 {
		t.Errorf("empty config should have no warnings, got %v", warnings)
	}
}

func TestValidate_Warnings(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"format", Config{Format: "xml", Parallelism: 1}, "format 'xml'"},
		{"parallelism", Config{Parallelism: 0}, "parallelism 0"},
		{"log format", Config{Parallelism: 1, Log: LogConfig{Format: "logfmt"}}, "log format"},
		{"kind", Config{Parallelism: 1, Queries: []QueryConfig{{Kind: "dfs"}, {Kind: "teleport"}}}, "queries[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.cfg.Validate()
			require.Len(t, warnings, 1)
			assert.Contains(t, warnings[0], tt.want)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "input.txt", cfg.Input)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, query.DefaultParallelism, cfg.Parallelism)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Queries)
}

func TestLoad_FileEnvFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graphq.yaml")
	content := strings.Join([]string{
		"input: graph.txt",
		"format: yaml",
		"parallelism: 8",
		"log:",
		"  level: debug",
		"queries:",
		"  - kind: bfs",
		"    source: 1",
		"  - kind: PATH",
		"    source: 1",
		"    target: 4",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("GRAPHQ_LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("format", "text", "")
	fs.String("input", "", "")
	require.NoError(t, fs.Parse([]string{"--format", "json"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "graph.txt", cfg.Input) // flag not changed: file wins
	assert.Equal(t, "json", cfg.Format)     // changed flag wins
	assert.Equal(t, 8, cfg.Parallelism)
	assert.Equal(t, "warn", cfg.Log.Level) // env beats file

	assert.Equal(t, []query.Request{
		{Kind: query.KindBFS, Source: 1},
		{Kind: query.KindPath, Source: 1, Target: 4},
	}, cfg.Requests())
}

func TestLoad_ParallelismWarnedThenClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parallelism: 0\n"), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Parallelism)

	warnings := cfg.Validate()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "parallelism 0 is below 1")

	cfg.Normalize()
	assert.Equal(t, 1, cfg.Parallelism)
	assert.Empty(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
