package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// TestNameMatch selects how the test name is resolved when a log contains
// several "Running test" lines.
type TestNameMatch string

const (
	// TestNameCompat keeps the historical behavior: the test information
	// section takes the last match while the test result takes the first.
	TestNameCompat TestNameMatch = "compat"
	// TestNameFirst uses the first match everywhere.
	TestNameFirst TestNameMatch = "first"
)

const (
	DefaultInstructionWindow  = 20
	DefaultComparisonWindow   = 4
	DefaultSessionHeaderLines = 30
)

// Options controls how a log is scanned.
type Options struct {
	// InstructionWindow is how many lines after a driven instruction are
	// searched for its data word and transaction id.
	InstructionWindow int `yaml:"instruction_window"`
	// ComparisonWindow is how many lines after an "Expected instr" line are
	// searched for the address, data and write enable checks.
	ComparisonWindow   int           `yaml:"comparison_window"`
	SessionHeaderLines int           `yaml:"session_header_lines"`
	TestNameMatch      TestNameMatch `yaml:"test_name_match"`
	StripANSI          bool          `yaml:"strip_ansi"`
}

// Default returns the options matching the saved reports produced so far.
func Default() Options {
	return Options{
		InstructionWindow:  DefaultInstructionWindow,
		ComparisonWindow:   DefaultComparisonWindow,
		SessionHeaderLines: DefaultSessionHeaderLines,
		TestNameMatch:      TestNameCompat,
	}
}

// Load reads options from a YAML file. Keys missing from the file keep their
// default value.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	opts, err := Parse(data)
	if err != nil {
		return Options{}, fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}

// Parse decodes YAML options on top of the defaults and validates the result.
func Parse(data []byte) (Options, error) {
	opts := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("invalid yaml: %w", err)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate reports the first invalid setting.
func (o Options) Validate() error {
	if o.InstructionWindow <= 0 {
		return fmt.Errorf("instruction_window must be positive, got %d", o.InstructionWindow)
	}
	if o.ComparisonWindow <= 0 {
		return fmt.Errorf("comparison_window must be positive, got %d", o.ComparisonWindow)
	}
	if o.SessionHeaderLines <= 0 {
		return fmt.Errorf("session_header_lines must be positive, got %d", o.SessionHeaderLines)
	}
	switch o.TestNameMatch {
	case TestNameCompat, TestNameFirst:
	default:
		return fmt.Errorf("unsupported test_name_match: %q (supported: compat, first)", o.TestNameMatch)
	}
	return nil
}
