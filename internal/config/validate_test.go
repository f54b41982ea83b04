package config

import (
	"strings"
	"testing"
)

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateRejectsOutOfRangePort(t *testing.T) {
	cfg := Default()
	cfg.Remote.Port = 70000

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() error = nil, want non-nil")
	}
	if !strings.Contains(err.Error(), "remote.port") {
		t.Fatalf("error = %q, want remote.port", err)
	}
}

func TestValidateRejectsEmptyHost(t *testing.T) {
	cfg := Default()
	cfg.Remote.Host = ""

	err := Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "remote.host") {
		t.Fatalf("Validate() error = %v, want remote.host", err)
	}
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "loud"

	err := Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "log.level") {
		t.Fatalf("Validate() error = %v, want log.level", err)
	}
}

func TestValidateReportsEveryBadTimeout(t *testing.T) {
	cfg := Default()
	cfg.Remote.ConnectTimeout = "-1s"
	cfg.Remote.ResponseTimeout = "later"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() error = nil, want non-nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "remote.connect_timeout: must be > 0") {
		t.Fatalf("error = %q, want connect_timeout", msg)
	}
	if !strings.Contains(msg, `remote.response_timeout: invalid duration "later"`) {
		t.Fatalf("error = %q, want response_timeout", msg)
	}
}

func TestValidateAcceptsIPHost(t *testing.T) {
	cfg := Default()
	cfg.Remote.Host = "127.0.0.1"

	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}
