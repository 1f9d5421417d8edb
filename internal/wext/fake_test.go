package wext

import (
	"net"
	"syscall"

	"github.com/josharian/native"
)

// fakeKernel answers requests from canned replies. A request without a reply
// fails with EOPNOTSUPP, like a driver lacking the capability.
type fakeKernel struct {
	noDevice bool
	unions   map[uint]unionData
	points   map[uint]pointReply
	calls    []uint
	closed   bool

	// flags records the iw_point flags sent with each pointer request.
	flags map[uint]uint16
}

type pointReply struct {
	data  []byte
	flags uint16

	// length overrides len(data) as the reported length when non-zero.
	length uint16
}

func newFakeKernel() *fakeKernel {
	return &fakeKernel{
		unions: map[uint]unionData{},
		points: map[uint]pointReply{},
		flags:  map[uint]uint16{},
	}
}

func (k *fakeKernel) get(_ string, req uint, data *unionData) error {
	k.calls = append(k.calls, req)
	if k.noDevice {
		return syscall.ENODEV
	}
	d, ok := k.unions[req]
	if !ok {
		return syscall.EOPNOTSUPP
	}
	*data = d
	return nil
}

func (k *fakeKernel) getPoint(_ string, req uint, buf []byte, flags uint16) (uint16, uint16, error) {
	k.calls = append(k.calls, req)
	k.flags[req] = flags
	if k.noDevice {
		return 0, 0, syscall.ENODEV
	}
	p, ok := k.points[req]
	if !ok {
		return 0, 0, syscall.EOPNOTSUPP
	}
	n := copy(buf, p.data)
	length := uint16(n)
	if p.length != 0 {
		length = p.length
	}
	return length, p.flags, nil
}

func (k *fakeKernel) exists(string) error {
	if k.noDevice {
		return syscall.ENODEV
	}
	return nil
}

func (k *fakeKernel) Close() error {
	k.closed = true
	return nil
}

func (k *fakeKernel) setName(name string) {
	var d unionData
	copy(d[:], name)
	k.unions[SIOCGIWNAME] = d
}

func (k *fakeKernel) setParam(req uint, p Param) {
	var d unionData
	native.Endian.PutUint32(d[0:4], uint32(p.Value))
	if p.Fixed {
		d[4] = 1
	}
	if p.Disabled {
		d[5] = 1
	}
	native.Endian.PutUint16(d[6:8], p.Flags)
	k.unions[req] = d
}

func (k *fakeKernel) setFreq(m int32, e int16) {
	var d unionData
	putFreq(d[:], m, e)
	k.unions[SIOCGIWFREQ] = d
}

func (k *fakeKernel) setMode(m uint32) {
	var d unionData
	native.Endian.PutUint32(d[0:4], m)
	k.unions[SIOCGIWMODE] = d
}

func (k *fakeKernel) setAP(hw net.HardwareAddr) {
	var d unionData
	native.Endian.PutUint16(d[0:2], 1) // ARPHRD_ETHER
	copy(d[2:], hw)
	k.unions[SIOCGIWAP] = d
}

func putFreq(b []byte, m int32, e int16) {
	native.Endian.PutUint32(b[0:4], uint32(m))
	native.Endian.PutUint16(b[4:6], uint16(e))
}

func putChannel(b []byte, index uint8, m int32, e int16) {
	putFreq(b, m, e)
	b[6] = index
}

// rangeBytes builds a WE 16+ iw_range with the given version.
func rangeBytes(we uint8) []byte {
	b := make([]byte, sizeofRange)
	native.Endian.PutUint32(b[rangeSensitivity:], 3)
	b[rangeMaxQual] = 70
	b[rangeMaxQual+1] = 0
	b[rangeNumBitrates] = 2
	native.Endian.PutUint32(b[rangeBitrate:], 1000000)
	native.Endian.PutUint32(b[rangeBitrate+4:], 54000000)
	b[rangeNumTxPower] = 1
	native.Endian.PutUint32(b[rangeTxPower:], 20)
	b[rangeWECompiled] = we
	native.Endian.PutUint16(b[rangeNumChannels:], 14)
	b[rangeNumFrequency] = 2
	putChannel(b[rangeFreq:], 1, 2412, 6)
	putChannel(b[rangeFreq+8:], 6, 2437, 6)
	native.Endian.PutUint32(b[rangeEncCapa:], 0xF)
	return b
}

func statsBytes(s Stats) []byte {
	b := make([]byte, sizeofStats)
	native.Endian.PutUint16(b[0:2], s.Status)
	b[2], b[3], b[4], b[5] = s.Qual.Qual, s.Qual.Level, s.Qual.Noise, s.Qual.Updated
	native.Endian.PutUint32(b[8:], s.Discard.NWID)
	native.Endian.PutUint32(b[12:], s.Discard.Code)
	native.Endian.PutUint32(b[16:], s.Discard.Fragment)
	native.Endian.PutUint32(b[20:], s.Discard.Retries)
	native.Endian.PutUint32(b[24:], s.Discard.Misc)
	native.Endian.PutUint32(b[28:], s.Missed)
	return b
}
