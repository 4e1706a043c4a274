package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeOverridesDefaults(t *testing.T) {
	opts, err := Decode(strings.NewReader("tokens: true\nformat: yaml\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opts.Tokens || opts.Format != "yaml" {
		t.Fatalf("decoded options wrong: %+v", opts)
	}
	if opts.Prompt != Default().Prompt {
		t.Fatalf("unset prompt should keep default. expected=%q, got=%q", Default().Prompt, opts.Prompt)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"", "empty"},
		{"colour: blue\n", "field colour not found"},
		{"format: xml\n", "format must be text or yaml"},
		{"linebreaks: true\n", "linebreaks requires tokens"},
		{"tokens: [1\n", "parse"},
	}

	for i, tt := range tests {
		_, err := Decode(strings.NewReader(tt.input))
		if err == nil {
			t.Fatalf("tests[%d] expected error", i)
		}
		if !strings.Contains(err.Error(), tt.contains) {
			t.Fatalf("tests[%d] error %q missing %q", i, err.Error(), tt.contains)
		}
	}
}

func TestValidationErrorListsAllIssues(t *testing.T) {
	err := Options{Format: "csv", LineBreaks: true}.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got=%T", err)
	}
	if len(verr.Issues) != 2 {
		t.Fatalf("expected 2 issues, got=%d (%v)", len(verr.Issues), verr.Issues)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lolcode.yaml")
	if err := os.WriteFile(path, []byte("symbols: true\nprompt: \"> \"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opts.Symbols || opts.Prompt != "> " {
		t.Fatalf("loaded options wrong: %+v", opts)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
