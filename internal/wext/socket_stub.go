//go:build !linux

package wext

import "syscall"

// Wireless Extensions exist only on Linux.
func openSocket() (transport, error) { return nil, syscall.EAFNOSUPPORT }
