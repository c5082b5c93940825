package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphq/core"
)

// Format selects an output encoding.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
)

var (
	// ErrUnknownFormat is returned for a format name other than text, yaml or json.
	ErrUnknownFormat = errors.New("report: unknown format")

	// ErrUnsupportedValue is returned for a value no renderer knows.
	ErrUnsupportedValue = errors.New("report: unsupported value")
)

// ParseFormat resolves a case-insensitive format name; "" means Text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return Text, nil
	case Text, YAML, JSON:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Encode writes value to w in the given format. value is any query result
// (*dfs.Result, *bfs.Result, []components.Component, *query.Route,
// *query.Routes, *stats.Summary, query.Result, []query.Result) or one of
// the view types of this package.
func Encode(w io.Writer, format Format, value interface{}) error {
	if format == Text {
		return writeText(w, value)
	}

	view, err := viewOf(value)
	if err != nil {
		return err
	}
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("report: json: %w", err)
		}
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// EncodeRepresentation writes the matrix and/or adjacency list of g.
func EncodeRepresentation(w io.Writer, format Format, g *core.Graph, withMatrix, withList bool) error {
	if format == Text {
		return WriteRepresentation(w, g, withMatrix, withList)
	}

	return Encode(w, format, Representation(g, withMatrix, withList))
}
