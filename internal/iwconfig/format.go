package iwconfig

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"iwscan/internal/wext"
)

const (
	kilo = 1e3
	mega = 1e6
	giga = 1e9
)

// formatG matches C's %g.
func formatG(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// FormatFreq prints a frequency with its scale, or a bare channel number for
// values below 1 kHz.
func FormatFreq(freq float64) string {
	if freq < kilo {
		return formatG(freq)
	}
	scale, div := scaleOf(freq)
	return formatG(freq/div) + " " + scale + "Hz"
}

// FormatBitrate prints a bit rate in b/s with its scale.
func FormatBitrate(bitrate int32) string {
	rate := float64(bitrate)
	scale, div := scaleOf(rate)
	return formatG(rate/div) + " " + scale + "b/s"
}

func scaleOf(v float64) (string, float64) {
	switch {
	case v >= giga:
		return "G", giga
	case v >= mega:
		return "M", mega
	default:
		return "k", kilo
	}
}

// FormatKey prints an encoding key as hex bytes grouped by two. Drivers that
// withhold the key (EncodeNoKey) get one "**" per byte instead.
func FormatKey(key []byte, flags uint16) string {
	if flags&wext.EncodeNoKey != 0 && len(key) == 0 {
		return "on"
	}
	var b strings.Builder
	for i, c := range key {
		if i > 0 && i%2 == 0 {
			b.WriteByte('-')
		}
		if flags&wext.EncodeNoKey != 0 {
			b.WriteString("**")
		} else {
			fmt.Fprintf(&b, "%02X", c)
		}
	}
	return b.String()
}

// FormatHWAddr prints a hardware address in upper-case colon notation.
func FormatHWAddr(hw net.HardwareAddr) string {
	parts := make([]string, len(hw))
	for i, c := range hw {
		parts[i] = fmt.Sprintf("%02X", c)
	}
	return strings.Join(parts, ":")
}

// formatTime prints a microsecond duration the way iwconfig does.
func formatTime(usec int32) string {
	v := float64(usec)
	switch {
	case v >= mega:
		return formatG(v/mega) + "s"
	case v >= kilo:
		return formatG(v/kilo) + "ms"
	default:
		return strconv.Itoa(int(usec)) + "us"
	}
}
