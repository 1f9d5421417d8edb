package wext

import (
	"bytes"
	"net"

	"github.com/josharian/native"
)

// iwreqDataLen is sizeof(union iwreq_data); the largest members are
// struct sockaddr and char name[IFNAMSIZ].
const iwreqDataLen = 16

// Byte offsets inside struct iw_range (WE 16 and later).
const (
	sizeofRange = 568

	rangeSensitivity  = 40
	rangeMaxQual      = 44
	rangeNumBitrates  = 52
	rangeBitrate      = 56
	rangeTxPowerCapa  = 242
	rangeNumTxPower   = 244
	rangeTxPower      = 248
	rangeWECompiled   = 280
	rangeNumChannels  = 304
	rangeNumFrequency = 306
	rangeFreq         = 308
	rangeEncCapa      = 564

	// Drivers older than WE 11 return less than this.
	rangeOldLen = 300
)

// sizeofStats is sizeof(struct iw_statistics).
const sizeofStats = 32

type unionData = [iwreqDataLen]byte

func decodeParam(d *unionData) Param {
	return Param{
		Value:    int32(native.Endian.Uint32(d[0:4])),
		Fixed:    d[4] != 0,
		Disabled: d[5] != 0,
		Flags:    native.Endian.Uint16(d[6:8]),
	}
}

// decodeFreq converts struct iw_freq to a float the way iwlib does: the
// exponent only ever scales up. Byte 6 is the channel index, used only by
// the range's frequency list.
func decodeFreq(b []byte) float64 {
	m := int32(native.Endian.Uint32(b[0:4]))
	e := int16(native.Endian.Uint16(b[4:6]))
	f := float64(m)
	for i := int16(0); i < e; i++ {
		f *= 10
	}
	return f
}

func decodeQuality(b []byte) Quality {
	return Quality{Qual: b[0], Level: b[1], Noise: b[2], Updated: b[3]}
}

// decodeSockaddrHW pulls the hardware address out of a struct sockaddr.
func decodeSockaddrHW(d *unionData) net.HardwareAddr {
	hw := make(net.HardwareAddr, 6)
	copy(hw, d[2:8])
	return hw
}

func decodeMode(d *unionData) (Mode, bool) {
	m := Mode(native.Endian.Uint32(d[0:4]))
	return m, m.Valid()
}

// cString returns b up to its first NUL.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// decodeRange parses the n bytes of iw_range the driver returned.
func decodeRange(b []byte) Range {
	if len(b) < rangeOldLen {
		return Range{WEVersionCompiled: 9}
	}
	r := Range{WEVersionCompiled: b[rangeWECompiled]}
	if r.WEVersionCompiled <= 15 || len(b) < sizeofRange {
		// Pre-WE16 layouts are not decoded beyond the version.
		return r
	}

	u32 := func(off int) uint32 { return native.Endian.Uint32(b[off : off+4]) }
	s32 := func(off int) int32 { return int32(u32(off)) }

	r.Sensitivity = s32(rangeSensitivity)
	r.MaxQual = decodeQuality(b[rangeMaxQual:])

	n := min(int(b[rangeNumBitrates]), MaxBitrates)
	r.Bitrates = make([]int32, n)
	for i := range r.Bitrates {
		r.Bitrates[i] = s32(rangeBitrate + 4*i)
	}

	r.TxPowerCapa = native.Endian.Uint16(b[rangeTxPowerCapa:])
	n = min(int(b[rangeNumTxPower]), MaxTxPower)
	r.TxPower = make([]int32, n)
	for i := range r.TxPower {
		r.TxPower[i] = s32(rangeTxPower + 4*i)
	}

	r.NumChannels = native.Endian.Uint16(b[rangeNumChannels:])
	n = min(int(b[rangeNumFrequency]), MaxFrequencies)
	r.Channels = make([]Channel, n)
	for i := range r.Channels {
		f := b[rangeFreq+8*i:]
		r.Channels[i] = Channel{Index: f[6], Freq: decodeFreq(f)}
	}

	r.EncCapa = u32(rangeEncCapa)
	return r
}

func decodeStats(b []byte) Stats {
	u32 := func(off int) uint32 { return native.Endian.Uint32(b[off : off+4]) }
	return Stats{
		Status: native.Endian.Uint16(b[0:2]),
		Qual:   decodeQuality(b[2:6]),
		Discard: Discard{
			NWID:     u32(8),
			Code:     u32(12),
			Fragment: u32(16),
			Retries:  u32(20),
			Misc:     u32(24),
		},
		Missed: u32(28),
	}
}
