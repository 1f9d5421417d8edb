// Package wext reads the configuration of a Linux wireless interface through
// the Wireless Extensions ioctl API.
//
// A query is a best-effort gather:
// - SIOCGIWNAME decides whether the interface speaks Wireless Extensions at all
// - every other request is optional and simply leaves its field unset on failure
// - only read requests are issued
package wext
