package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"

	"go.uber.org/zap"

	"iwscan/internal/config"
	"iwscan/internal/host"
	"iwscan/internal/iwscan"
)

const defaultConfigPath = "/etc/iwscan.yaml"

// registerModules is the startup registration step; tests swap in fakes.
var registerModules = func(rt *host.Runtime) error {
	return iwscan.Register(rt)
}

// interfacesFn lists every interface when none are named.
var interfacesFn = func() ([]string, error) {
	ifs, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ifs))
	for _, ifi := range ifs {
		names = append(names, ifi.Name)
	}
	return names, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("iwscan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath string
		format     string
		details    bool
	)
	fs.StringVar(&configPath, "config", defaultConfigPath, "Path to YAML config")
	fs.StringVar(&format, "format", "", "Output format: auto, text, json or yaml")
	fs.BoolVar(&details, "details", false, "Include thresholds, power settings and link statistics")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(configPath, isFlagSet(fs, "config"))
	if err != nil {
		fmt.Fprintf(stderr, "config load failed: %v\n", err)
		return 1
	}
	if format != "" {
		if err := config.ValidateFormat(format); err != nil {
			fmt.Fprintf(stderr, "invalid -format: %v\n", err)
			return 2
		}
		cfg.Output.Format = format
	}
	if details {
		cfg.Output.Details = true
	}

	log, err := newLogger(cfg.Log.Level, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "logger init failed: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	rt := host.NewRuntime()
	if err := registerModules(rt); err != nil {
		log.Error("module registration failed", zap.Error(err))
		return 1
	}

	names := fs.Args()
	if len(names) == 0 {
		names = cfg.Interfaces
	}
	explicit := len(names) > 0
	if !explicit {
		names, err = interfacesFn()
		if err != nil {
			log.Error("list interfaces failed", zap.Error(err))
			return 1
		}
	}
	log.Debug("querying interfaces", zap.Strings("ifaces", names), zap.Int("parallel", cfg.Query.Parallel))

	results := queryAll(rt, names, cfg.Query.Parallel, cfg.Output.Details)

	status := 0
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		if !explicit && isQuietError(r.Err) {
			log.Debug("skipping interface", zap.String("iface", r.Iface), zap.Error(r.Err))
			continue
		}
		log.Error("query failed", zap.String("iface", r.Iface), zap.Error(r.Err))
		status = 1
	}

	if err := render(stdout, resolveFormat(cfg.Output.Format, stdout), results, !cfg.Query.SkipNonWireless); err != nil {
		log.Error("render failed", zap.Error(err))
		return 1
	}
	return status
}

func loadConfig(path string, explicit bool) (config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	// A missing default config is normal; a missing named one is not.
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return config.Config{}, err
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
