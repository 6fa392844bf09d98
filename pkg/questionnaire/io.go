package questionnaire

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for response files that are neither YAML
// nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported response file format")

// LoadResponses reads a response file: a flat mapping of question id to
// answer. The format follows the extension (.yaml, .yml or .json). The
// symptoms answer may be a comma-joined string or a list.
func LoadResponses(path string) (ResponseSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ResponseSet{}, fmt.Errorf("reading responses: %w", err)
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		return ResponseSet{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return ResponseSet{}, fmt.Errorf("parsing responses: %w", err)
	}

	m := make(map[string]string, len(raw))
	for k, v := range raw {
		m[k] = scalarString(v)
	}
	return FromMap(m), nil
}

// SaveResponses writes rs in the format implied by the path's extension.
func SaveResponses(path string, rs *ResponseSet) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(rs.ToMap())
	case ".json":
		data, err = json.MarshalIndent(rs.ToMap(), "", "  ")
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("marshaling responses: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for responses: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing responses: %w", err)
	}
	return nil
}

// scalarString flattens a decoded YAML/JSON value to the wire string form.
// Numeric answers such as pregnancy: 0 arrive as numbers.
func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, scalarString(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(t)
	}
}
