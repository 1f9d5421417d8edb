package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Interfaces []string     `yaml:"interfaces"`
	Output     OutputConfig `yaml:"output"`
	Query      QueryConfig  `yaml:"query"`
	Log        LogConfig    `yaml:"log"`
}

type OutputConfig struct {
	// Format is auto, text, json or yaml.
	Format  string `yaml:"format"`
	Details bool   `yaml:"details"`
}

type QueryConfig struct {
	Parallel        int  `yaml:"parallel"`
	SkipNonWireless bool `yaml:"skip_non_wireless"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

var validFormats = map[string]bool{"auto": true, "text": true, "json": true, "yaml": true}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Default returns the configuration used when no file is present.
func Default() Config {
	var cfg Config
	applyDefaults(&cfg)
	return cfg
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(b)
}

// Parse decodes a YAML document, rejects unknown fields, applies defaults and
// validates the result.
func Parse(b []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		var te *yaml.TypeError
		if errors.As(err, &te) && unknownFieldsOnly(te) {
			return Config{}, fmt.Errorf("config contains unknown fields: %s", strings.Join(stripLines(te.Errors), "; "))
		}
		return Config{}, err
	}

	applyDefaults(&cfg)
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Output.Format == "" {
		cfg.Output.Format = "auto"
	}
	if cfg.Query.Parallel <= 0 {
		cfg.Query.Parallel = 4
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// ValidateFormat checks an output format, for callers that override
// output.format after Load.
func ValidateFormat(format string) error {
	if !validFormats[format] {
		return fmt.Errorf("output.format must be one of auto, text, json, yaml")
	}
	return nil
}

func validate(cfg Config) error {
	if err := ValidateFormat(cfg.Output.Format); err != nil {
		return err
	}
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	if cfg.Query.Parallel > 64 {
		return fmt.Errorf("query.parallel must be <= 64")
	}
	for _, name := range cfg.Interfaces {
		if name == "" {
			return fmt.Errorf("interfaces must not contain empty names")
		}
		if len(name) >= 16 {
			return fmt.Errorf("interface name %q is longer than 15 characters", name)
		}
		if strings.ContainsAny(name, "/ \t\n:") {
			return fmt.Errorf("interface name %q contains invalid characters", name)
		}
	}
	return nil
}

var lineRE = regexp.MustCompile(`^line \d+: `)

func unknownFieldsOnly(te *yaml.TypeError) bool {
	for _, e := range te.Errors {
		if !strings.Contains(e, "not found in type") {
			return false
		}
	}
	return len(te.Errors) > 0
}

func stripLines(errs []string) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = lineRE.ReplaceAllString(e, "")
	}
	return out
}
