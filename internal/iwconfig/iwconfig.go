// Package iwconfig turns a wext.Info into the human-readable values iwconfig
// prints.
package iwconfig

import (
	"fmt"

	"iwscan/internal/wext"
)

// Keys of the table built by Map.
const (
	KeyMode        = "Mode"
	KeyESSID       = "ESSID"
	KeyNWID        = "NWID"
	KeyFrequency   = "Frequency"
	KeyAccessPoint = "Access Point"
	KeyCell        = "Cell"
	KeyBitRate     = "BitRate"
	KeyKey         = "Key"
)

// Map builds the display table for info. ESSID and Key are always present;
// every other key appears only when the driver answered the matching request.
func Map(info *wext.Info) map[string]string {
	m := make(map[string]string, 7)

	if info.Mode != nil {
		m[KeyMode] = info.Mode.String()
	}

	if info.ESSID != nil && info.ESSID.On {
		m[KeyESSID] = info.ESSID.Name
	} else {
		m[KeyESSID] = "Auto"
	}

	if info.NWID != nil {
		if info.NWID.Disabled {
			m[KeyNWID] = "Auto"
		} else {
			m[KeyNWID] = fmt.Sprintf("%X", uint32(info.NWID.Value))
		}
	}

	if info.Freq != nil {
		m[KeyFrequency] = FormatFreq(*info.Freq)
	}

	if info.APAddr != nil {
		// There is no access point in ad-hoc mode, only a cell.
		if info.Mode != nil && *info.Mode == wext.ModeAdHoc {
			m[KeyCell] = FormatHWAddr(info.APAddr)
		} else {
			m[KeyAccessPoint] = FormatHWAddr(info.APAddr)
		}
	}

	if info.Bitrate != nil {
		m[KeyBitRate] = FormatBitrate(info.Bitrate.Value)
	}

	if info.Key == nil || info.Key.Disabled() {
		m[KeyKey] = "off"
	} else {
		m[KeyKey] = FormatKey(info.Key.Data, info.Key.Flags)
	}

	return m
}
