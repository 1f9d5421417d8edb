package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// isTerminal can be overridden in tests.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// resolveFormat picks text for terminals and JSON for pipes when format is auto.
func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	if isTerminal(w) {
		return "text"
	}
	return "json"
}

func render(w io.Writer, format string, results []result, showNonWireless bool) error {
	switch format {
	case "text":
		return renderText(w, results, showNonWireless)
	case "json":
		b, err := json.MarshalIndent(tables(results), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case "yaml":
		b, err := yaml.Marshal(tables(results))
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func tables(results []result) map[string]map[string]string {
	out := make(map[string]map[string]string, len(results))
	for _, r := range results {
		if r.Err == nil {
			out[r.Iface] = r.Table
		}
	}
	return out
}

func renderText(w io.Writer, results []result, showNonWireless bool) error {
	for _, r := range results {
		if r.Err != nil {
			if showNonWireless && isNotWireless(r.Err) {
				if _, err := fmt.Fprintf(w, "%-9s no wireless extensions.\n\n", r.Iface); err != nil {
					return err
				}
			}
			continue
		}
		if _, err := fmt.Fprintln(w, r.Iface); err != nil {
			return err
		}
		keys := make([]string, 0, len(r.Table))
		for k := range r.Table {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if _, err := fmt.Fprintf(w, "    %s: %s\n", k, r.Table[k]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
