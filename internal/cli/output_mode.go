package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type outputMode string

const (
	outputModeText outputMode = "text"
	outputModeJSON outputMode = "json"
	outputModeYAML outputMode = "yaml"
)

func parseOutputMode(raw string, allowed ...outputMode) (outputMode, error) {
	for _, m := range allowed {
		if string(m) == raw {
			return m, nil
		}
	}
	return "", fmt.Errorf("unsupported --format %q (want %s)", raw, joinModes(allowed))
}

func joinModes(modes []outputMode) string {
	out := ""
	for i, m := range modes {
		switch {
		case i == 0:
		case i == len(modes)-1:
			out += " or "
		default:
			out += ", "
		}
		out += string(m)
	}
	return out
}

func (m outputMode) isJSON() bool {
	return m == outputModeJSON
}

// writeStructured renders v as indented JSON or YAML.
func writeStructured(w io.Writer, m outputMode, v any) error {
	if m.isJSON() {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
