package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateCommand(t *testing.T) {
	cmd := newGenerateCmd()

	if cmd.Use != "generate [type...]" {
		t.Errorf("unexpected use: %q", cmd.Use)
	}

	expectedFlags := []string{"count", "stats", "wide", "no-headers"}
	for _, flagName := range expectedFlags {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Errorf("expected flag %q to be defined", flagName)
		}
	}

	if shortFlag := cmd.Flags().ShorthandLookup("c"); shortFlag == nil || shortFlag.Name != "count" {
		t.Error("expected short flag -c for count")
	}
}

func TestGenerateCommand_RequiresType(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"generate"})

	output := &bytes.Buffer{}
	root.SetOut(output)
	root.SetErr(output)

	if err := root.Execute(); err == nil {
		t.Fatal("expected error when no type argument is given")
	}
}

func TestGenerateCommand_UnknownType(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"generate", "carrier_pigeon", "--no-color"})

	output := &bytes.Buffer{}
	root.SetOut(output)
	root.SetErr(output)

	err := root.Execute()
	if err == nil {
		t.Fatal("expected error for unknown credential type")
	}
	if !strings.Contains(err.Error(), "carrier_pigeon") {
		t.Errorf("expected error to name the bad type, got %v", err)
	}
}

func TestGenerateCommand_TaskFailures(t *testing.T) {
	// A pattern with no alphabet passes type validation but fails during
	// synthesis, so every task resolves with an error
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfgYAML := `patterns:
  broken_token:
    kind: random
    length: 0
`
	if err := os.WriteFile(path, []byte(cfgYAML), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	defer func() { cfgFile = "" }()

	root := newRootCmd()
	root.SetArgs([]string{"generate", "broken_token", "--config", path, "--no-color", "-c", "2"})

	output := &bytes.Buffer{}
	root.SetOut(output)
	root.SetErr(output)

	err := root.Execute()
	if err == nil {
		t.Fatal("expected error when every task fails")
	}
	if !strings.Contains(err.Error(), "2 of 2 generation tasks failed") {
		t.Errorf("expected failure count in error, got %v", err)
	}
	if !strings.Contains(err.Error(), "alphabet") {
		t.Errorf("expected underlying synthesis error, got %v", err)
	}
}

func TestTypesCommand(t *testing.T) {
	cmd := newTypesCmd()

	if cmd.Use != "types" {
		t.Errorf("unexpected use: %q", cmd.Use)
	}
	if cmd.RunE == nil {
		t.Error("expected RunE to be set")
	}
}
