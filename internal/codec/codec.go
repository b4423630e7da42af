// Package codec reads and writes score cards as JSON or YAML. Both
// formats use the same camelCase keys.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pavelanni/scorecard/internal/model"
	"github.com/pavelanni/scorecard/internal/validate"
)

// Format is a serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json or yaml)", s)
	}
}

// FormatFromPath picks the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode writes v to w in the given format with a trailing newline.
func Encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		_, err = fmt.Fprintln(w)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// Decode parses a dataset or export document, checks it against the
// document schema and every dataset invariant, and checks any derived views
// it carries for staleness.
func Decode(data []byte, format Format) (model.Export, error) {
	raw, err := toJSON(data, format)
	if err != nil {
		return model.Export{}, err
	}
	if err := validate.Document(raw); err != nil {
		return model.Export{}, err
	}

	var ex model.Export
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ex); err != nil {
		return model.Export{}, fmt.Errorf("decode document: %w", err)
	}
	if err := validate.Export(ex); err != nil {
		return model.Export{}, fmt.Errorf("invalid score card: %w", err)
	}
	return ex, nil
}

// toJSON normalises input to JSON so one schema serves both formats.
func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
		raw, err := json.Marshal(plainDates(doc))
		if err != nil {
			return nil, fmt.Errorf("convert YAML to JSON: %w", err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// plainDates turns the timestamps YAML resolves from unquoted values like
// 2024-03-15 back into YYYY-MM-DD strings.
func plainDates(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = plainDates(e)
		}
	case []any:
		for i, e := range t {
			t[i] = plainDates(e)
		}
	case time.Time:
		return t.Format(time.DateOnly)
	}
	return v
}
