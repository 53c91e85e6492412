package main

import (
	"testing"

	"github.com/cpTheAideveloper/geminimultilingual/internal/metadata"
)

func findServeCmd(t *testing.T) (flags map[string]string) {
	t.Helper()
	root := newRootCmd()
	for _, sub := range root.Commands() {
		if sub.Name() != "serve" {
			continue
		}
		flags = map[string]string{}
		for _, name := range []string{"addr", "model", "log-file"} {
			f := sub.Flags().Lookup(name)
			if f == nil {
				t.Fatalf("serve is missing the --%s flag", name)
			}
			flags[name] = f.DefValue
		}
		return flags
	}
	t.Fatalf("root command has no serve subcommand")
	return nil
}

func TestServeFlags_BuiltInDefaults(t *testing.T) {
	t.Setenv("GEMINIML_ADDR", "")
	t.Setenv("GEMINIML_MODEL", "")
	t.Setenv("GEMINIML_LOG_FILE", "")

	flags := findServeCmd(t)
	if flags["addr"] != ":8080" {
		t.Errorf("expected default addr :8080, got %q", flags["addr"])
	}
	if flags["model"] != metadata.DefaultModelID {
		t.Errorf("expected default model %q, got %q", metadata.DefaultModelID, flags["model"])
	}
	if flags["log-file"] != "" {
		t.Errorf("expected empty default log file, got %q", flags["log-file"])
	}
}

func TestServeFlags_EnvironmentSeedsDefaults(t *testing.T) {
	t.Setenv("GEMINIML_ADDR", "127.0.0.1:7777")
	t.Setenv("GEMINIML_MODEL", "gemini-3-pro-preview")
	t.Setenv("GEMINIML_LOG_FILE", "/tmp/serve.jsonl")

	flags := findServeCmd(t)
	if flags["addr"] != "127.0.0.1:7777" {
		t.Errorf("expected env addr, got %q", flags["addr"])
	}
	if flags["model"] != "gemini-3-pro-preview" {
		t.Errorf("expected env model, got %q", flags["model"])
	}
	if flags["log-file"] != "/tmp/serve.jsonl" {
		t.Errorf("expected env log file, got %q", flags["log-file"])
	}
}
