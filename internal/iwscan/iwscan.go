// Package iwscan is the native module exposing wireless interface queries to
// the scripting host.
package iwscan

import (
	"errors"

	"iwscan/internal/host"
	"iwscan/internal/iwconfig"
	"iwscan/internal/wext"
)

const (
	ModuleName = "iwscan"

	MethodIWConfig  = "get_iwconfig"
	MethodIWDetails = "get_iwdetails"
)

// queryFn can be overridden in tests.
var queryFn = wext.Query

// Register adds the iwscan module to rt. The hosting process calls it once
// during startup.
func Register(rt *host.Runtime) error {
	return rt.Register(ModuleName,
		host.Method{Name: MethodIWConfig, Fn: GetIWConfig},
		host.Method{Name: MethodIWDetails, Fn: GetIWDetails},
	)
}

// GetIWConfig takes an interface name and returns its display table as a
// map[string]string.
func GetIWConfig(args ...any) (any, error) {
	info, err := queryArgs(args)
	if err != nil {
		return nil, err
	}
	return iwconfig.Map(info), nil
}

// GetIWDetails returns the GetIWConfig table plus the extended report, both
// built from a single query.
func GetIWDetails(args ...any) (any, error) {
	info, err := queryArgs(args)
	if err != nil {
		return nil, err
	}
	table := iwconfig.Map(info)
	for k, v := range iwconfig.DetailsMap(info) {
		table[k] = v
	}
	return table, nil
}

func queryArgs(args []any) (*wext.Info, error) {
	ifname, err := host.ParseString(args)
	if err != nil {
		return nil, err
	}
	info, err := queryFn(ifname)
	if err != nil {
		return nil, toIOError(err)
	}
	return info, nil
}

// toIOError surfaces a failed query in the host's I/O category. The errno is
// kept, so ErrNoDevice and ErrNotSupported stay distinguishable.
func toIOError(err error) *host.IOError {
	op := "get_info"
	var qe *wext.Error
	if errors.As(err, &qe) {
		op = qe.Op
	}
	return host.NewIOError(op, err)
}
