package main

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"iwscan/internal/host"
	"iwscan/internal/iwscan"
	"iwscan/internal/wext"
)

type result struct {
	Iface string
	Table map[string]string
	Err   error
}

// queryAll asks the runtime about every name, at most parallel at a time.
// Results keep the order of names.
func queryAll(rt *host.Runtime, names []string, parallel int, details bool) []result {
	results := make([]result, len(names))
	var g errgroup.Group
	g.SetLimit(max(parallel, 1))
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			results[i] = queryOne(rt, name, details)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// queryOne makes one runtime call per interface; get_iwdetails already
// includes the get_iwconfig keys.
func queryOne(rt *host.Runtime, name string, details bool) result {
	method := iwscan.MethodIWConfig
	if details {
		method = iwscan.MethodIWDetails
	}
	table, err := callTable(rt, method, name)
	return result{Iface: name, Table: table, Err: err}
}

func callTable(rt *host.Runtime, method, name string) (map[string]string, error) {
	v, err := rt.Call(iwscan.ModuleName, method, name)
	if err != nil {
		return nil, err
	}
	table, ok := v.(map[string]string)
	if !ok {
		return nil, fmt.Errorf("%s.%s returned %T, want map[string]string", iwscan.ModuleName, method, v)
	}
	return table, nil
}

// isQuietError reports errors expected while sweeping every interface.
func isQuietError(err error) bool {
	return errors.Is(err, wext.ErrNotSupported) || errors.Is(err, wext.ErrNoDevice)
}

func isNotWireless(err error) bool {
	return errors.Is(err, wext.ErrNotSupported)
}
