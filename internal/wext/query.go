package wext

import (
	"errors"
)

// transport is the control socket a query talks through.
type transport interface {
	// get issues a request whose answer fits in union iwreq_data.
	get(ifname string, req uint, data *unionData) error
	// getPoint issues a request answered through an iw_point into buf and
	// returns the length and flags the kernel wrote back.
	getPoint(ifname string, req uint, buf []byte, flags uint16) (length, outFlags uint16, err error)
	// exists checks the interface with SIOCGIFFLAGS.
	exists(ifname string) error
	Close() error
}

// openTransport is overridden by the platform file.
var openTransport = openSocket

// Query reads everything ifname reports through Wireless Extensions. The
// control socket is closed before returning.
func Query(ifname string) (*Info, error) {
	t, err := openTransport()
	if err != nil {
		return nil, &Error{Op: "iw_sockets_open", Err: err}
	}
	defer t.Close()

	info, err := query(t, ifname)
	if err != nil {
		return nil, &Error{Op: "get_info", Iface: ifname, Err: err}
	}
	return info, nil
}

func query(t transport, ifname string) (*Info, error) {
	if ifname == "" || len(ifname) >= ifNameSize {
		return nil, ErrNoDevice
	}

	var d unionData
	if err := t.get(ifname, SIOCGIWNAME, &d); err != nil {
		// No wireless name means no wireless extensions, unless the
		// interface is not there at all.
		if t.exists(ifname) != nil {
			return nil, ErrNoDevice
		}
		return nil, ErrNotSupported
	}
	info := &Info{Iface: ifname, Name: cString(d[:])}

	rangeBuf := make([]byte, 2*sizeofRange)
	if n, _, err := t.getPoint(ifname, SIOCGIWRANGE, rangeBuf, 0); err == nil {
		r := decodeRange(rangeBuf[:min(int(n), len(rangeBuf))])
		info.Range = &r
	}

	info.NWID = getParam(t, ifname, SIOCGIWNWID)

	d = unionData{}
	if t.get(ifname, SIOCGIWFREQ, &d) == nil {
		f := decodeFreq(d[:])
		info.Freq = &f
	}

	info.Sens = getParam(t, ifname, SIOCGIWSENS)

	keyBuf := make([]byte, EncodingTokenMax)
	if n, flags, err := t.getPoint(ifname, SIOCGIWENCODE, keyBuf, 0); err == nil {
		info.Key = &Key{Data: keyBuf[:min(int(n), len(keyBuf))], Flags: flags}
	}

	essidBuf := make([]byte, ESSIDMaxSize+1)
	if n, flags, err := t.getPoint(ifname, SIOCGIWESSID, essidBuf, 0); err == nil {
		info.ESSID = &ESSID{
			Name: cString(essidBuf[:min(int(n), len(essidBuf))]),
			On:   flags != 0,
		}
	}

	d = unionData{}
	if t.get(ifname, SIOCGIWAP, &d) == nil {
		info.APAddr = decodeSockaddrHW(&d)
	}

	nickBuf := make([]byte, ESSIDMaxSize+1)
	if n, _, err := t.getPoint(ifname, SIOCGIWNICKN, nickBuf, 0); err == nil && n > 1 {
		info.Nickname = cString(nickBuf[:min(int(n), len(nickBuf))])
	}

	info.Bitrate = getParam(t, ifname, SIOCGIWRATE)
	info.RTS = getParam(t, ifname, SIOCGIWRTS)
	info.Frag = getParam(t, ifname, SIOCGIWFRAG)

	d = unionData{}
	if t.get(ifname, SIOCGIWMODE, &d) == nil {
		if m, ok := decodeMode(&d); ok {
			info.Mode = &m
		}
	}

	info.Power = getParam(t, ifname, SIOCGIWPOWER)

	// Transmit power arrived in WE 10, retry limits in WE 11. Without a
	// range there is no version to go by, so both are tried.
	we := info.weVersion()
	if we == 0 || we > 9 {
		info.TxPower = getParam(t, ifname, SIOCGIWTXPOW)
	}
	if we == 0 || we > 10 {
		info.Retry = getParam(t, ifname, SIOCGIWRETRY)
	}

	if s, err := getStats(t, ifname, info.Range); err == nil {
		info.Stats = &s
	}

	return info, nil
}

// getParam issues a request answered with a struct iw_param. Request data
// starts zeroed, which selects the default flags for SIOCGIWPOWER.
func getParam(t transport, ifname string, req uint) *Param {
	var d unionData
	if err := t.get(ifname, req, &d); err != nil {
		return nil
	}
	p := decodeParam(&d)
	return &p
}

var errNoStats = errors.New("no wireless statistics")

// getStats asks the driver directly when the range says it can answer
// SIOCGIWSTATS, and reads /proc/net/wireless otherwise.
func getStats(t transport, ifname string, r *Range) (Stats, error) {
	if r != nil && r.WEVersionCompiled > 11 {
		buf := make([]byte, sizeofStats)
		// Flag 1 clears the driver's "updated" bits after the read.
		if _, _, err := t.getPoint(ifname, SIOCGIWSTATS, buf, 1); err != nil {
			return Stats{}, err
		}
		return decodeStats(buf), nil
	}
	return procStatsFn(ifname)
}
