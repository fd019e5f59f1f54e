package domain

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kapu/slack-channel-provisioner/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadChannelSpecsAppliesDefaults(t *testing.T) {
	path := writeFile(t, "channels.json", `[
		{"name": "proj-a"},
		{"name": "proj-b", "description": "project beta", "is_private": true}
	]`)

	specs, err := LoadChannelSpecs(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("expected 2 specs, got %d", len(specs))
	}
	if specs[0].Description != "" || specs[0].IsPrivate {
		t.Fatalf("defaults not applied: %+v", specs[0])
	}
	if specs[1].Description != "project beta" || !specs[1].IsPrivate {
		t.Fatalf("explicit fields lost: %+v", specs[1])
	}
}

func TestLoadChannelSpecsPreservesOrder(t *testing.T) {
	path := writeFile(t, "channels.json", `[{"name":"c"},{"name":"a"},{"name":"b"}]`)

	specs, err := LoadChannelSpecs(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []string{"c", "a", "b"} {
		if specs[i].Name != want {
			t.Fatalf("order not preserved: %+v", specs)
		}
	}
}

func TestLoadChannelSpecsMissingFile(t *testing.T) {
	_, err := LoadChannelSpecs(filepath.Join(t.TempDir(), "nope.json"))

	var cfgErr *errors.ConfigError
	if !stderrors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestLoadChannelSpecsMalformedJSON(t *testing.T) {
	path := writeFile(t, "channels.json", `[{"name": "proj-a"`)

	_, err := LoadChannelSpecs(path)

	var cfgErr *errors.ConfigError
	if !stderrors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestLoadChannelSpecsRejectsMissingName(t *testing.T) {
	path := writeFile(t, "channels.json", `[{"description": "no name here"}]`)

	_, err := LoadChannelSpecs(path)

	var cfgErr *errors.ConfigError
	if !stderrors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestLoadInviteeSet(t *testing.T) {
	path := writeFile(t, "invite_users.json", `{"users": ["U01AAA", "U02BBB"]}`)

	invitees, err := LoadInviteeSet(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(invitees) != 2 || invitees[0] != "U01AAA" || invitees[1] != "U02BBB" {
		t.Fatalf("unexpected invitees: %v", invitees)
	}
	if invitees.IsEmpty() {
		t.Fatal("non-empty set reported empty")
	}
}

func TestLoadInviteeSetMissingFile(t *testing.T) {
	_, err := LoadInviteeSet(filepath.Join(t.TempDir(), "nope.json"))

	var cfgErr *errors.ConfigError
	if !stderrors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestLoadInviteeSetEmptyDocument(t *testing.T) {
	path := writeFile(t, "invite_users.json", `{"users": []}`)

	invitees, err := LoadInviteeSet(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !invitees.IsEmpty() {
		t.Fatalf("expected empty set, got %v", invitees)
	}
}

func TestChannelSpecVisibility(t *testing.T) {
	public := &ChannelSpec{Name: "proj-a"}
	private := &ChannelSpec{Name: "proj-b", IsPrivate: true}

	if public.Visibility() != "public" {
		t.Fatalf("expected public, got %q", public.Visibility())
	}
	if private.Visibility() != "private" {
		t.Fatalf("expected private, got %q", private.Visibility())
	}
}
