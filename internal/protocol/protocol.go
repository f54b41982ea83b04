// Package protocol implements the newline-delimited JSON framing spoken by
// the BULC application: one command line out, one result line back.
package protocol

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// Command is a single request sent to BULC.
type Command struct {
	Action string         `json:"action"`
	Params map[string]any `json:"params"`
}

// Result is the envelope BULC returns for every action.
type Result struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`

	// Raw is the decoded line exactly as received.
	Raw json.RawMessage `json:"-"`
}

// PingAction is the no-parameter liveness probe.
const PingAction = "ping"

var (
	// ErrMalformedResponse marks a response that is not a Result line.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrEmbeddedNewline marks an encoded command that would break framing.
	ErrEmbeddedNewline = errors.New("embedded line terminator")
)

// Encode serializes cmd as compact JSON terminated by a single newline.
func Encode(cmd Command) ([]byte, error) {
	if cmd.Params == nil {
		cmd.Params = map[string]any{}
	}
	payload, err := json.Marshal(cmd)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s command", cmd.Action)
	}
	if bytes.ContainsAny(payload, "\r\n") {
		return nil, errors.Mark(
			errors.Newf("encoding %s command: output contains a line terminator", cmd.Action),
			ErrEmbeddedNewline)
	}
	return append(payload, '\n'), nil
}

// Decode parses the last non-blank segment of buf once at least one line
// terminator has arrived. A trailing segment without a terminator still
// counts as the last one, so a truncated final line is malformed rather
// than hidden behind an earlier line. The segment count lets callers
// notice discarded output.
func Decode(buf []byte) (*Result, int, error) {
	if bytes.IndexByte(buf, '\n') < 0 {
		return nil, 0, malformed(buf, "no complete line")
	}

	var last []byte
	lines := 0
	for _, line := range bytes.Split(buf, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		lines++
		last = line
	}
	if last == nil {
		return nil, 0, malformed(buf, "no complete line")
	}

	res, err := parseResult(last)
	if err != nil {
		return nil, lines, malformed(buf, err.Error())
	}
	return res, lines, nil
}

func parseResult(line []byte) (*Result, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil {
		return nil, errors.New("not a JSON object")
	}
	if fields == nil {
		return nil, errors.New("not a JSON object")
	}

	res := &Result{Raw: append(json.RawMessage(nil), line...)}

	raw, ok := fields["success"]
	if !ok {
		return nil, errors.New(`missing "success"`)
	}
	if err := json.Unmarshal(raw, &res.Success); err != nil || isNull(raw) {
		return nil, errors.New(`"success" is not a boolean`)
	}
	if raw, ok := fields["message"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &res.Message); err != nil {
			return nil, errors.New(`"message" is not a string`)
		}
	}
	if raw, ok := fields["error"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &res.Error); err != nil {
			return nil, errors.New(`"error" is not a string`)
		}
	}
	if raw, ok := fields["data"]; ok {
		res.Data = raw
	}
	return res, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func malformed(buf []byte, reason string) error {
	return errors.Mark(
		errors.Newf("invalid response (%s): %q", reason, string(buf)),
		ErrMalformedResponse)
}
