package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func requireErrEq(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", want)
	}
	if err.Error() != want {
		t.Fatalf("error=%q want %q", err.Error(), want)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeTempConfig(t, "interfaces: [wlan0]\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Output.Format != "auto" {
		t.Fatalf("format=%q want auto", cfg.Output.Format)
	}
	if cfg.Query.Parallel != 4 {
		t.Fatalf("parallel=%d want 4", cfg.Query.Parallel)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("level=%q want info", cfg.Log.Level)
	}
	if !reflect.DeepEqual(cfg.Interfaces, []string{"wlan0"}) {
		t.Fatalf("interfaces=%v", cfg.Interfaces)
	}
}

func TestLoad_EmptyFileIsDefault(t *testing.T) {
	path := writeTempConfig(t, "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("cfg=%+v want %+v", cfg, Default())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !os.IsNotExist(err) {
		t.Fatalf("err=%v want not-exist", err)
	}
}

func TestLoad_FullFile(t *testing.T) {
	path := writeTempConfig(t, ""+
		"interfaces: [wlan0, wlan1]\n"+
		"output:\n  format: json\n  details: true\n"+
		"query:\n  parallel: 2\n  skip_non_wireless: true\n"+
		"log:\n  level: debug\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Config{
		Interfaces: []string{"wlan0", "wlan1"},
		Output:     OutputConfig{Format: "json", Details: true},
		Query:      QueryConfig{Parallel: 2, SkipNonWireless: true},
		Log:        LogConfig{Level: "debug"},
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("cfg=%+v want %+v", cfg, want)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "Format",
			body: "output:\n  format: xml\n",
			want: "output.format must be one of auto, text, json, yaml",
		},
		{
			name: "Level",
			body: "log:\n  level: trace\n",
			want: "log.level must be one of debug, info, warn, error",
		},
		{
			name: "Parallel",
			body: "query:\n  parallel: 100\n",
			want: "query.parallel must be <= 64",
		},
		{
			name: "EmptyInterface",
			body: "interfaces: ['']\n",
			want: "interfaces must not contain empty names",
		},
		{
			name: "LongInterface",
			body: "interfaces: [abcdefghijklmnop]\n",
			want: `interface name "abcdefghijklmnop" is longer than 15 characters`,
		},
		{
			name: "BadCharacters",
			body: "interfaces: ['wl/an0']\n",
			want: `interface name "wl/an0" contains invalid characters`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempConfig(t, tc.body)
			_, err := Load(path)
			requireErrEq(t, err, tc.want)
		})
	}
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	path := writeTempConfig(t, "output:\n  format: text\n  colour: true\n")
	_, err := Load(path)
	requireErrEq(t, err, "config contains unknown fields: field colour not found in type config.OutputConfig")
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"auto", "text", "json", "yaml"} {
		if err := ValidateFormat(f); err != nil {
			t.Fatalf("ValidateFormat(%q): %v", f, err)
		}
	}
	requireErrEq(t, ValidateFormat("xml"), "output.format must be one of auto, text, json, yaml")
	requireErrEq(t, ValidateFormat(""), "output.format must be one of auto, text, json, yaml")
}
