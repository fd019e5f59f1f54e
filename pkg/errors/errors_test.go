package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestAPIErrorCarriesEnvelopeFields(t *testing.T) {
	err := NewAPIError("conversations.create", "name_taken", "channels:manage")

	if err.SlackCode != "name_taken" || err.Needed != "channels:manage" {
		t.Fatalf("fields not carried: %+v", err)
	}
	if err.Code != CodeAPI {
		t.Fatalf("unexpected code %q", err.Code)
	}
	if !strings.Contains(err.Error(), "name_taken") {
		t.Fatalf("error string should name the Slack code: %q", err.Error())
	}
}

func TestWithCauseUnwraps(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewTransportError("conversations.list", cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("cause not reachable via errors.Is")
	}
	if !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("cause missing from message: %q", err.Error())
	}
}

func TestConfigErrorAs(t *testing.T) {
	var err error = NewConfigError("failed to read channels file", "channels.json").
		WithCause(stderrors.New("no such file"))

	var cfgErr *ConfigError
	if !stderrors.As(err, &cfgErr) {
		t.Fatal("errors.As failed for ConfigError")
	}
	if cfgErr.Source != "channels.json" {
		t.Fatalf("unexpected source %q", cfgErr.Source)
	}
}

func TestCollisionErrorNames(t *testing.T) {
	err := NewCollisionError([]string{"proj-a", "proj-b"})

	if len(err.Names) != 2 {
		t.Fatalf("unexpected names: %v", err.Names)
	}
	if !strings.Contains(err.Error(), "proj-a") {
		t.Fatalf("colliding name missing from message: %q", err.Error())
	}
}
