//go:build linux

package wext

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Any datagram socket can carry Wireless Extensions ioctls. These are the
// families iwlib tries, in its order.
var socketFamilies = []int{unix.AF_INET, unix.AF_IPX, unix.AF_AX25, unix.AF_APPLETALK}

var socketFn = unix.Socket

// iwreq is struct iwreq for requests answered inside the union.
type iwreq struct {
	name [ifNameSize]byte
	data unionData
}

// iwreqPoint is struct iwreq carrying a struct iw_point. A separate type keeps
// the pointer visible to the garbage collector.
type iwreqPoint struct {
	name    [ifNameSize]byte
	pointer unsafe.Pointer
	length  uint16
	flags   uint16
	_       [iwreqDataLen - unix.SizeofPtr - 4]byte
}

type socket struct {
	fd int
}

// openSocket returns the first family that opens, or the last family's error.
func openSocket() (transport, error) {
	var err error
	for _, family := range socketFamilies {
		fd, e := socketFn(family, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
		if e == nil {
			return &socket{fd: fd}, nil
		}
		err = e
	}
	return nil, err
}

func (s *socket) ioctl(req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(s.fd), uintptr(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

func (s *socket) get(ifname string, req uint, data *unionData) error {
	var r iwreq
	copy(r.name[:ifNameSize-1], ifname)
	r.data = *data
	if err := s.ioctl(req, unsafe.Pointer(&r)); err != nil {
		return err
	}
	*data = r.data
	return nil
}

func (s *socket) getPoint(ifname string, req uint, buf []byte, flags uint16) (uint16, uint16, error) {
	r := iwreqPoint{length: uint16(len(buf)), flags: flags}
	copy(r.name[:ifNameSize-1], ifname)
	if len(buf) > 0 {
		r.pointer = unsafe.Pointer(&buf[0])
	}
	err := s.ioctl(req, unsafe.Pointer(&r))
	runtime.KeepAlive(buf)
	if err != nil {
		return 0, 0, err
	}
	return r.length, r.flags, nil
}

func (s *socket) exists(ifname string) error {
	ifr, err := unix.NewIfreq(ifname)
	if err != nil {
		return err
	}
	return unix.IoctlIfreq(s.fd, unix.SIOCGIFFLAGS, ifr)
}

func (s *socket) Close() error {
	if s.fd < 0 {
		return nil
	}
	err := unix.Close(s.fd)
	s.fd = -1
	return err
}
