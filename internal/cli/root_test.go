package cli

import (
	"bytes"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lydakis/bulcmcp/internal/bulc"
	"github.com/lydakis/bulcmcp/internal/bulctest"
	"github.com/lydakis/bulcmcp/internal/config"
	"github.com/lydakis/bulcmcp/internal/dispatch"
	"github.com/lydakis/bulcmcp/internal/paths"
	"github.com/lydakis/bulcmcp/internal/response"
	"github.com/lydakis/bulcmcp/internal/tools"
	"gopkg.in/yaml.v3"
)

type cliResult struct {
	stdout string
	stderr string
	code   int
}

// runCLI runs the command line against isolated config paths.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(paths.ConfigEnv, filepath.Join(dir, "bulcmcp", "config.toml"))
	t.Setenv(config.PortEnv, "")

	oldOut, oldErr, oldIn := rootStdout, rootStderr, rootStdin
	defer func() {
		rootStdout, rootStderr, rootStdin = oldOut, oldErr, oldIn
	}()

	var out, errOut bytes.Buffer
	rootStdout = &out
	rootStderr = &errOut
	rootStdin = strings.NewReader(stdin)

	code := Run(args)
	return cliResult{stdout: out.String(), stderr: errOut.String(), code: code}
}

// usePeer points the CLI transport at a loopback fake BULC.
func usePeer(t *testing.T, handler bulctest.Handler) *bulctest.Server {
	t.Helper()
	peer := bulctest.Start(t, handler)
	useSender(t, bulc.New(config.ClientConfig{
		Host:            peer.Host(),
		Port:            peer.Port(),
		ConnectTimeout:  time.Second,
		ResponseTimeout: time.Second,
	}))
	return peer
}

func useSender(t *testing.T, s dispatch.Sender) {
	t.Helper()
	old := newSender
	newSender = func() dispatch.Sender { return s }
	t.Cleanup(func() { newSender = old })
}

func closedPort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	return port
}

func TestRunVersion(t *testing.T) {
	oldVersion := buildVersion
	defer func() { buildVersion = oldVersion }()
	buildVersion = "1.2.3"

	res := runCLI(t, "", "--version")
	if res.code != response.ExitOK {
		t.Fatalf("code = %d, want 0 (stderr %q)", res.code, res.stderr)
	}
	if res.stdout != "bulcmcp 1.2.3\n" {
		t.Fatalf("stdout = %q, want %q", res.stdout, "bulcmcp 1.2.3\n")
	}
}

func TestRunUnknownCommandIsUsageError(t *testing.T) {
	res := runCLI(t, "", "frobnicate")
	if res.code != response.ExitUsageErr {
		t.Fatalf("code = %d, want %d", res.code, response.ExitUsageErr)
	}
	if !strings.Contains(res.stderr, "bulcmcp:") {
		t.Fatalf("stderr = %q, want bulcmcp: prefix", res.stderr)
	}
}

func TestRunRejectsUnknownLogLevel(t *testing.T) {
	res := runCLI(t, "", "--log-level", "loud", "tools")
	if res.code != response.ExitUsageErr {
		t.Fatalf("code = %d, want %d", res.code, response.ExitUsageErr)
	}
	if !strings.Contains(res.stderr, "unknown log level") {
		t.Fatalf("stderr = %q, want log level error", res.stderr)
	}
}

func TestToolsTextListsCatalog(t *testing.T) {
	res := runCLI(t, "", "tools")
	if res.code != response.ExitOK {
		t.Fatalf("code = %d, want 0 (stderr %q)", res.code, res.stderr)
	}
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	if len(lines) != tools.Default().Len() {
		t.Fatalf("lines = %d, want %d", len(lines), tools.Default().Len())
	}
	if !strings.HasPrefix(lines[0], "bulc_get_spatial_context\t") {
		t.Fatalf("first line = %q, want bulc_get_spatial_context entry", lines[0])
	}
}

func TestToolsGroupJSON(t *testing.T) {
	res := runCLI(t, "", "tools", "--group", tools.GroupRoom, "--format", "json")
	if res.code != response.ExitOK {
		t.Fatalf("code = %d, want 0 (stderr %q)", res.code, res.stderr)
	}

	var entries []toolListEntry
	if err := json.Unmarshal([]byte(res.stdout), &entries); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, res.stdout)
	}
	if len(entries) != 5 {
		t.Fatalf("len(entries) = %d, want 5", len(entries))
	}
	for _, e := range entries {
		if e.Group != tools.GroupRoom {
			t.Fatalf("entry %s group = %q, want %q", e.Name, e.Group, tools.GroupRoom)
		}
	}
}

func TestToolsYAML(t *testing.T) {
	res := runCLI(t, "", "tools", "-f", "yaml")
	if res.code != response.ExitOK {
		t.Fatalf("code = %d, want 0 (stderr %q)", res.code, res.stderr)
	}

	var entries []toolListEntry
	if err := yaml.Unmarshal([]byte(res.stdout), &entries); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if len(entries) != tools.Default().Len() {
		t.Fatalf("len(entries) = %d, want %d", len(entries), tools.Default().Len())
	}
}

func TestToolsUnknownGroup(t *testing.T) {
	res := runCLI(t, "", "tools", "--group", "kitchen")
	if res.code != response.ExitUsageErr {
		t.Fatalf("code = %d, want %d", res.code, response.ExitUsageErr)
	}
}

func TestToolsRejectsUnknownFormat(t *testing.T) {
	res := runCLI(t, "", "tools", "--format", "xml")
	if res.code != response.ExitUsageErr {
		t.Fatalf("code = %d, want %d", res.code, response.ExitUsageErr)
	}
	if !strings.Contains(res.stderr, "text, json or yaml") {
		t.Fatalf("stderr = %q, want allowed formats", res.stderr)
	}
}

func TestSchemaJSON(t *testing.T) {
	res := runCLI(t, "", "schema", "bulc_create_room")
	if res.code != response.ExitOK {
		t.Fatalf("code = %d, want 0 (stderr %q)", res.code, res.stderr)
	}

	var got struct {
		Type     string         `json:"type"`
		Required []string       `json:"required"`
		Props    map[string]any `json:"properties"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if got.Type != "object" {
		t.Fatalf("type = %q, want object", got.Type)
	}
	if strings.Join(got.Required, ",") != "x,y,width,depth" {
		t.Fatalf("required = %v, want [x y width depth]", got.Required)
	}
	if _, ok := got.Props["level"]; !ok {
		t.Fatalf("properties = %v, want level", got.Props)
	}
}

func TestSchemaUnknownTool(t *testing.T) {
	res := runCLI(t, "", "schema", "bulc_nope")
	if res.code != response.ExitUsageErr {
		t.Fatalf("code = %d, want %d", res.code, response.ExitUsageErr)
	}
}

func TestConfigInitThenShow(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bulc.toml")

	res := runCLI(t, "", "--config", cfgPath, "config", "init")
	if res.code != response.ExitOK {
		t.Fatalf("init code = %d, want 0 (stderr %q)", res.code, res.stderr)
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	res = runCLI(t, "", "--config", cfgPath, "config", "init")
	if res.code != response.ExitUsageErr {
		t.Fatalf("second init code = %d, want %d", res.code, response.ExitUsageErr)
	}

	t.Setenv(config.PortEnv, "4001")
	oldOut, oldErr := rootStdout, rootStderr
	defer func() { rootStdout, rootStderr = oldOut, oldErr }()
	var out, errOut bytes.Buffer
	rootStdout, rootStderr = &out, &errOut
	t.Setenv(paths.ConfigEnv, cfgPath)

	if code := Run([]string{"config", "show", "--format", "json"}); code != response.ExitOK {
		t.Fatalf("show code = %d, want 0 (stderr %q)", code, errOut.String())
	}
	var cfg config.Config
	if err := json.Unmarshal(out.Bytes(), &cfg); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if cfg.Remote.Port != 4001 {
		t.Fatalf("port = %d, want 4001", cfg.Remote.Port)
	}
	if cfg.Remote.Host != config.DefaultHost {
		t.Fatalf("host = %q, want %q", cfg.Remote.Host, config.DefaultHost)
	}
}
