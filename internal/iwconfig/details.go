package iwconfig

import (
	"fmt"
	"strconv"
	"strings"

	"iwscan/internal/wext"
)

// Field is one labelled line of the extended report.
type Field struct {
	Key   string
	Value string
}

// Details reports what Map leaves out: the protocol, radio thresholds, power
// settings, driver capabilities from the range and link statistics. Fields the
// driver did not answer are skipped.
func Details(info *wext.Info) []Field {
	var out []Field
	add := func(k, v string) { out = append(out, Field{Key: k, Value: v}) }

	add("Protocol", info.Name)
	if info.Nickname != "" {
		add("Nickname", info.Nickname)
	}
	if info.Freq != nil {
		if ch, ok := channelOf(*info.Freq, info.Range); ok {
			add("Channel", strconv.Itoa(ch))
		}
	}

	if info.Sens != nil {
		v := strconv.Itoa(int(info.Sens.Value))
		if info.Range != nil && info.Range.Sensitivity > 0 {
			v += "/" + strconv.Itoa(int(info.Range.Sensitivity))
		}
		add("Sensitivity", v)
	}

	if info.TxPower != nil {
		add("Tx-Power", formatTxPower(info.TxPower))
	}
	if info.Retry != nil {
		add("Retry", formatRetry(info.Retry))
	}
	if info.RTS != nil {
		add("RTS thr", formatThreshold(info.RTS))
	}
	if info.Frag != nil {
		add("Fragment thr", formatThreshold(info.Frag))
	}
	if k := info.Key; k != nil && !k.Disabled() {
		if idx := k.Flags & wext.EncodeIndex; idx > 1 {
			add("Key index", strconv.Itoa(int(idx)))
		}
		if mode := securityMode(k.Flags); mode != "" {
			add("Security mode", mode)
		}
	}
	if info.Power != nil {
		add("Power Management", formatPower(info.Power))
	}

	if r := info.Range; r != nil {
		add("WE version", strconv.Itoa(int(r.WEVersionCompiled)))
		if len(r.Bitrates) > 0 {
			rates := make([]string, len(r.Bitrates))
			for i, b := range r.Bitrates {
				rates[i] = FormatBitrate(b)
			}
			add("Bit Rates", strings.Join(rates, ", "))
		}
		if len(r.TxPower) > 0 {
			levels := make([]string, len(r.TxPower))
			for i, p := range r.TxPower {
				levels[i] = formatTxPowerValue(p, r.TxPowerCapa)
			}
			add("Tx-Power levels", strings.Join(levels, ", "))
		}
		if r.NumChannels > 0 {
			add("Channels", strconv.Itoa(int(r.NumChannels)))
		}
		if capa := encCapa(r.EncCapa); capa != "" {
			add("Encryption capa", capa)
		}
	}

	if s := info.Stats; s != nil {
		out = append(out, qualityFields(s.Qual, info.Range)...)
		add("Rx invalid nwid", strconv.FormatUint(uint64(s.Discard.NWID), 10))
		add("Rx invalid crypt", strconv.FormatUint(uint64(s.Discard.Code), 10))
		add("Rx invalid frag", strconv.FormatUint(uint64(s.Discard.Fragment), 10))
		add("Tx excessive retries", strconv.FormatUint(uint64(s.Discard.Retries), 10))
		add("Invalid misc", strconv.FormatUint(uint64(s.Discard.Misc), 10))
		add("Missed beacon", strconv.FormatUint(uint64(s.Missed), 10))
	}
	return out
}

// DetailsMap flattens Details into a table.
func DetailsMap(info *wext.Info) map[string]string {
	fields := Details(info)
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	return m
}

// channelOf maps a frequency to its channel through the range's list. Values
// below 1 kHz already are channel numbers.
func channelOf(freq float64, r *wext.Range) (int, bool) {
	if freq < kilo {
		return int(freq), true
	}
	if r == nil {
		return 0, false
	}
	for _, c := range r.Channels {
		if c.Freq == freq {
			return int(c.Index), true
		}
	}
	return 0, false
}

func securityMode(flags uint16) string {
	switch {
	case flags&wext.EncodeRestricted != 0:
		return "restricted"
	case flags&wext.EncodeOpen != 0:
		return "open"
	default:
		return ""
	}
}

var encCapaNames = []struct {
	bit  uint32
	name string
}{
	{wext.EncCapaWPA, "WPA"},
	{wext.EncCapaWPA2, "WPA2"},
	{wext.EncCapaCipherTKIP, "TKIP"},
	{wext.EncCapaCipherCCMP, "CCMP"},
	{wext.EncCapa4WayHandshake, "4-way-handshake"},
}

func encCapa(capa uint32) string {
	var names []string
	for _, c := range encCapaNames {
		if capa&c.bit != 0 {
			names = append(names, c.name)
		}
	}
	return strings.Join(names, " ")
}

func formatThreshold(p *wext.Param) string {
	if p.Disabled {
		return "off"
	}
	return strconv.Itoa(int(p.Value)) + " B"
}

func formatTxPower(p *wext.Param) string {
	if p.Disabled {
		return "off"
	}
	return formatTxPowerValue(p.Value, p.Flags)
}

func formatTxPowerValue(v int32, flags uint16) string {
	switch {
	case flags&wext.TxPowRelative != 0:
		return strconv.Itoa(int(v))
	case flags&wext.TxPowMWatt != 0:
		return strconv.Itoa(int(v)) + " mW"
	default:
		return strconv.Itoa(int(v)) + " dBm"
	}
}

// limitPrefix prints the "min " or "max " modifier some drivers set on retry
// and power values.
func limitPrefix(flags, minFlag, maxFlag uint16) string {
	switch {
	case flags&minFlag != 0:
		return "min "
	case flags&maxFlag != 0:
		return "max "
	default:
		return ""
	}
}

// formatDuration prints a microsecond value, or a bare number when the
// driver marked it relative.
func formatDuration(v int32, relative bool) string {
	if relative {
		return strconv.Itoa(int(v))
	}
	return formatTime(v)
}

func formatRetry(p *wext.Param) string {
	if p.Disabled {
		return "off"
	}
	prefix := limitPrefix(p.Flags, wext.RetryMin, wext.RetryMax)
	if p.Flags&wext.RetryLifetime != 0 {
		return prefix + "lifetime:" + formatDuration(p.Value, p.Flags&wext.RetryRelative != 0)
	}
	return prefix + "limit:" + strconv.Itoa(int(p.Value))
}

func formatPower(p *wext.Param) string {
	if p.Disabled {
		return "off"
	}
	var kind string
	switch {
	case p.Flags&wext.PowerTimeout != 0:
		kind = "timeout:"
	case p.Flags&wext.PowerPeriod != 0:
		kind = "period:"
	default:
		return "on"
	}
	if p.Flags&wext.PowerRelative != 0 && p.Value < 0 {
		return "on"
	}
	return limitPrefix(p.Flags, wext.PowerMin, wext.PowerMax) + kind +
		formatDuration(p.Value, p.Flags&wext.PowerRelative != 0)
}

// qualityFields renders link quality, signal and noise. Without a range, or
// with a zero relative level, nothing is known about the scale and all three
// are printed raw. Otherwise levels are RCPI, dBm or relative to the range
// maximum, and fields flagged invalid are left out.
func qualityFields(q wext.Quality, r *wext.Range) []Field {
	if r == nil || (q.Level == 0 && q.Updated&(wext.QualDBM|wext.QualRCPI) == 0) {
		return []Field{
			{Key: "Link Quality", Value: strconv.Itoa(int(q.Qual))},
			{Key: "Signal level", Value: strconv.Itoa(int(q.Level))},
			{Key: "Noise level", Value: strconv.Itoa(int(q.Noise))},
		}
	}

	var out []Field
	if q.Updated&wext.QualQualInvalid == 0 {
		out = append(out, Field{Key: "Link Quality", Value: fmt.Sprintf("%d/%d", q.Qual, r.MaxQual.Qual)})
	}

	var show func(v, top uint8) string
	switch {
	case q.Updated&wext.QualRCPI != 0:
		show = func(v, _ uint8) string { return rcpiDBM(v) }
	case q.Updated&wext.QualDBM != 0 || q.Level > r.MaxQual.Level:
		show = func(v, _ uint8) string { return byteDBM(v) }
	default:
		show = func(v, top uint8) string { return fmt.Sprintf("%d/%d", v, top) }
	}
	if q.Updated&wext.QualLevelInvalid == 0 {
		out = append(out, Field{Key: "Signal level", Value: show(q.Level, r.MaxQual.Level)})
	}
	if q.Updated&wext.QualNoiseInvalid == 0 {
		out = append(out, Field{Key: "Noise level", Value: show(q.Noise, r.MaxQual.Noise)})
	}
	return out
}

// byteDBM reads an 8-bit level as dBm in [-192, 63].
func byteDBM(v uint8) string {
	level := int(v)
	if level >= 64 {
		level -= 0x100
	}
	return strconv.Itoa(level) + " dBm"
}

// rcpiDBM converts an IEEE 802.11k RCPI value: RCPI = (dBm + 110) * 2.
func rcpiDBM(v uint8) string {
	return formatG(float64(v)/2-110) + " dBm"
}
