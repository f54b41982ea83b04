package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lydakis/bulcmcp/internal/schema"
	"github.com/mattn/go-isatty"
)

type flagValue struct {
	key   string
	value any
}

type callArgs struct {
	tool     string
	toolArgs map[string]any
	flags    []flagValue
	quiet    bool
	help     bool

	// Root flags given after `call` reach us unparsed.
	logLevel   string
	configPath string
}

// parseCallArgs splits `call` arguments into the tool name and either one
// positional JSON object, GNU-style --key value flags, or JSON on stdin.
func parseCallArgs(args []string, stdin io.Reader, stdinIsTTY bool) (*callArgs, error) {
	parsed := &callArgs{}

	var positionalJSON string
	afterSeparator := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" && !afterSeparator {
			afterSeparator = true
			continue
		}

		if !afterSeparator {
			switch arg {
			case "-q", "--quiet":
				parsed.quiet = true
				continue
			case "-h", "--help":
				parsed.help = true
				continue
			}
		}

		if strings.HasPrefix(arg, "--") {
			if parsed.tool == "" && !afterSeparator {
				key, value, err := parseLongFlagValue(args, &i, arg)
				if err != nil {
					return nil, err
				}
				raw, ok := value.(string)
				switch {
				case key == "log-level" && ok:
					parsed.logLevel = raw
					continue
				case key == "config" && ok:
					parsed.configPath = raw
					continue
				}
				return nil, fmt.Errorf("missing tool name before %s", arg)
			}
			if parsed.tool == "" {
				return nil, fmt.Errorf("missing tool name before %s", arg)
			}
			if positionalJSON != "" {
				return nil, fmt.Errorf("cannot mix positional JSON arguments with --flags")
			}
			key, value, err := parseLongFlagValue(args, &i, arg)
			if err != nil {
				return nil, err
			}
			parsed.flags = append(parsed.flags, flagValue{key: key, value: value})
			continue
		}

		if strings.HasPrefix(arg, "-") && !afterSeparator {
			return nil, fmt.Errorf("unsupported short flag: %s", arg)
		}

		if parsed.tool == "" {
			parsed.tool = arg
			continue
		}
		if len(parsed.flags) > 0 {
			return nil, fmt.Errorf("unexpected positional argument: %s", arg)
		}
		if positionalJSON != "" {
			return nil, fmt.Errorf("multiple positional arguments are not supported")
		}
		positionalJSON = arg
	}

	if parsed.help {
		return parsed, nil
	}
	if parsed.tool == "" {
		return nil, fmt.Errorf("missing tool name (usage: bulcmcp call <tool> [json-args])")
	}

	if positionalJSON != "" {
		obj, err := parseJSONObject(positionalJSON)
		if err != nil {
			return nil, err
		}
		parsed.toolArgs = obj
		return parsed, nil
	}

	if len(parsed.flags) == 0 && !stdinIsTTY && stdin != nil {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		if trimmed := strings.TrimSpace(string(data)); trimmed != "" {
			obj, err := parseJSONObject(trimmed)
			if err != nil {
				return nil, err
			}
			parsed.toolArgs = obj
		}
	}

	return parsed, nil
}

// typeFlagArgs converts raw flag values to the JSON types the schema
// declares. Arrays and objects are given as JSON text.
func typeFlagArgs(s *schema.Schema, flags []flagValue) (map[string]any, error) {
	out := make(map[string]any, len(flags))
	for _, fv := range flags {
		key, value := fv.key, fv.value
		f := s.Field(key)
		if f == nil && strings.HasPrefix(key, "no-") {
			if neg := s.Field(strings.TrimPrefix(key, "no-")); neg != nil && neg.Kind == schema.KindBoolean && value == true {
				f, key, value = neg, neg.Name, false
			}
		}
		if f == nil {
			return nil, fmt.Errorf("unknown argument --%s", fv.key)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("argument --%s given more than once", key)
		}

		typed, err := typeFlagValue(f, value)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", key, err)
		}
		out[key] = typed
	}
	return out, nil
}

func typeFlagValue(f *schema.Field, value any) (any, error) {
	if b, ok := value.(bool); ok {
		if f.Kind != schema.KindBoolean {
			return nil, fmt.Errorf("missing value")
		}
		return b, nil
	}

	raw := value.(string)
	switch f.Kind {
	case schema.KindBoolean:
		return strconv.ParseBool(raw)
	case schema.KindInteger:
		return strconv.ParseInt(raw, 10, 64)
	case schema.KindNumber:
		return strconv.ParseFloat(raw, 64)
	case schema.KindArray, schema.KindObject:
		var decoded any
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			return nil, fmt.Errorf("invalid JSON %s: %w", f.Kind, err)
		}
		return decoded, nil
	default:
		return raw, nil
	}
}

func parseJSONObject(raw string) (map[string]any, error) {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("invalid JSON arguments: %w", err)
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("JSON arguments must be an object")
	}
	return obj, nil
}

func parseLongFlagValue(args []string, idx *int, token string) (string, any, error) {
	body := strings.TrimPrefix(token, "--")
	if body == "" {
		return "", nil, fmt.Errorf("invalid flag: %s", token)
	}

	if eq := strings.Index(body, "="); eq >= 0 {
		key := body[:eq]
		value := body[eq+1:]
		if key == "" {
			return "", nil, fmt.Errorf("invalid flag: %s", token)
		}
		return key, value, nil
	}

	if *idx+1 < len(args) && !strings.HasPrefix(args[*idx+1], "--") {
		*idx = *idx + 1
		return body, args[*idx], nil
	}

	return body, true, nil
}

func stdinIsTTY(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
