package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Options controls what the lolcode command prints besides program output.
// Every field can come from a YAML file and be overridden by a flag.
type Options struct {
	Tokens     bool   `yaml:"tokens"`     // print the token table before running
	LineBreaks bool   `yaml:"linebreaks"` // include Line Break rows in the token table
	Symbols    bool   `yaml:"symbols"`    // print the final symbol table
	Format     string `yaml:"format"`     // text or yaml
	NoRun      bool   `yaml:"no_run"`     // stop after parsing
	Prompt     string `yaml:"prompt"`     // GIMMEH prompt on a terminal
}

// Default returns the options used when no file or flag sets them
func Default() Options {
	return Options{Format: "text", Prompt: "GIMMEH> "}
}

// ValidationError aggregates option validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid options"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Load reads options from a YAML file on top of Default.
func Load(path string) (Options, error) {
	if path == "" {
		return Options{}, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Options{}, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return Options{}, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	opts, err := Decode(file)
	if err != nil {
		return Options{}, fmt.Errorf("config: %s: %w", absPath, err)
	}
	return opts, nil
}

// Decode parses YAML options from r. Unknown keys are rejected.
func Decode(r io.Reader) (Options, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	opts := Default()
	if err := decoder.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return Options{}, fmt.Errorf("file is empty")
		}
		return Options{}, fmt.Errorf("parse: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks field values that YAML typing cannot
func (o Options) Validate() error {
	var errs ValidationError
	switch o.Format {
	case "text", "yaml":
	default:
		errs.Issues = append(errs.Issues, fmt.Sprintf("format must be text or yaml, got %q", o.Format))
	}
	if o.LineBreaks && !o.Tokens {
		errs.Issues = append(errs.Issues, "linebreaks requires tokens")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}
