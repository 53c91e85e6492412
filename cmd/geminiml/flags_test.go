package main

import (
	"strings"
	"testing"
)

func TestToFlag_AcceptedOnRootAndSubcommand(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{name: "root", args: []string{"Hola", "--to", "es,fr"}},
		{name: "translate", args: []string{"translate", "Hola", "--to", "es,fr"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := executeCommand(t, tc.args...)
			if err == nil {
				t.Fatalf("expected validation error from two targets, got nil")
			}
			if strings.Contains(out, "unknown flag: --to") {
				t.Fatalf("expected --to to be parsed, got output: %s", out)
			}
		})
	}
}

func TestUnknownFlagRejected(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{name: "root", args: []string{"--target", "ko"}},
		{name: "translate", args: []string{"translate", "--target", "ko"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := executeCommand(t, tc.args...)
			if err == nil {
				t.Fatalf("expected unknown flag error for --target")
			}
			if !strings.Contains(out, "unknown flag: --target") && !strings.Contains(err.Error(), "unknown flag: --target") {
				t.Fatalf("expected unknown flag: --target, got output: %s", out)
			}
		})
	}
}

func TestRoot_NoArgsShowsHelp(t *testing.T) {
	out, err := executeCommand(t)
	if err != nil {
		t.Fatalf("expected help without error, got: %v", err)
	}
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("expected usage output, got: %s", out)
	}
	for _, sub := range []string{"serve", "translate", "languages", "env", "about"} {
		if !strings.Contains(out, sub) {
			t.Fatalf("expected %q in command list, got: %s", sub, out)
		}
	}
}

func TestRoot_FlagsWithoutTextError(t *testing.T) {
	_, err := executeCommand(t, "--debug")
	if err == nil {
		t.Fatalf("expected error when flags are set but text is missing")
	}
	if !strings.Contains(err.Error(), "text to translate is required") {
		t.Fatalf("expected missing-text error, got: %v", err)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := executeCommand(t, "--version")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "geminiml") {
		t.Fatalf("expected version output, got: %s", out)
	}
}
