package wext

import (
	"errors"
	"net"
	"syscall"
)

// Request codes from linux/wireless.h. Only the read side is used.
const (
	SIOCGIWNAME   = 0x8B01
	SIOCGIWNWID   = 0x8B03
	SIOCGIWFREQ   = 0x8B05
	SIOCGIWMODE   = 0x8B07
	SIOCGIWSENS   = 0x8B09
	SIOCGIWRANGE  = 0x8B0B
	SIOCGIWSTATS  = 0x8B0F
	SIOCGIWAP     = 0x8B15
	SIOCGIWESSID  = 0x8B1B
	SIOCGIWNICKN  = 0x8B1D
	SIOCGIWRATE   = 0x8B21
	SIOCGIWRTS    = 0x8B23
	SIOCGIWFRAG   = 0x8B25
	SIOCGIWTXPOW  = 0x8B27
	SIOCGIWRETRY  = 0x8B29
	SIOCGIWENCODE = 0x8B2B
	SIOCGIWPOWER  = 0x8B2D
)

const (
	ifNameSize = 16

	EncodingTokenMax = 64
	ESSIDMaxSize     = 32

	MaxBitrates    = 32
	MaxTxPower     = 8
	MaxFrequencies = 32
)

// Encoding flags (iw_point.flags for SIOCGIWENCODE).
const (
	EncodeIndex      = 0x00FF
	EncodeDisabled   = 0x8000
	EncodeRestricted = 0x4000
	EncodeOpen       = 0x2000
	EncodeNoKey      = 0x0800
)

// Encryption capabilities (iw_range.enc_capa).
const (
	EncCapaWPA           = 0x01
	EncCapaWPA2          = 0x02
	EncCapaCipherTKIP    = 0x04
	EncCapaCipherCCMP    = 0x08
	EncCapa4WayHandshake = 0x10
)

// Power management flags.
const (
	PowerPeriod   = 0x1000
	PowerTimeout  = 0x2000
	PowerMin      = 0x0001
	PowerMax      = 0x0002
	PowerRelative = 0x0004
)

// Transmit power flags. Without either bit the value is in dBm.
const (
	TxPowMWatt    = 0x0001
	TxPowRelative = 0x0002
)

// Retry flags.
const (
	RetryLimit    = 0x1000
	RetryLifetime = 0x2000
	RetryMin      = 0x0001
	RetryMax      = 0x0002
	RetryRelative = 0x0004
)

// Quality flags (iw_quality.updated).
const (
	QualAllUpdated   = 0x07
	QualDBM          = 0x08
	QualQualInvalid  = 0x10
	QualLevelInvalid = 0x20
	QualNoiseInvalid = 0x40
	QualRCPI         = 0x80
)

var (
	// ErrNoDevice reports that the interface does not exist.
	ErrNoDevice = syscall.ENODEV
	// ErrNotSupported reports an existing interface without Wireless Extensions.
	ErrNotSupported = syscall.EOPNOTSUPP
)

// Error is a failure that prevented the query from producing any information.
type Error struct {
	Op    string
	Iface string
	Err   error
}

func (e *Error) Error() string {
	if e.Iface == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Iface + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Errno returns the errno carried by err, or 0 when there is none.
func Errno(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return 0
}

// Mode is the operating mode reported by SIOCGIWMODE.
type Mode uint32

const (
	ModeAuto Mode = iota
	ModeAdHoc
	ModeManaged
	ModeMaster
	ModeRepeater
	ModeSecondary
	ModeMonitor
	ModeMesh
)

// numOperModes bounds the modes accepted from the kernel. Mesh is out of range.
const numOperModes = 7

var modeNames = [numOperModes]string{
	"Auto",
	"Ad-Hoc",
	"Managed",
	"Master",
	"Repeater",
	"Secondary",
	"Monitor",
}

func (m Mode) Valid() bool { return m < numOperModes }

func (m Mode) String() string {
	if !m.Valid() {
		return "Unknown/bug"
	}
	return modeNames[m]
}

// Param mirrors struct iw_param.
type Param struct {
	Value    int32
	Fixed    bool
	Disabled bool
	Flags    uint16
}

// Quality mirrors struct iw_quality.
type Quality struct {
	Qual    uint8
	Level   uint8
	Noise   uint8
	Updated uint8
}

// Key is the current encoding key. Data may be empty when the driver hides it.
type Key struct {
	Data  []byte
	Flags uint16
}

// Disabled reports whether encryption is off for display purposes.
func (k *Key) Disabled() bool {
	return k.Flags&EncodeDisabled != 0 || len(k.Data) == 0
}

type ESSID struct {
	Name string
	On   bool
}

// Range is the subset of struct iw_range this package decodes.
type Range struct {
	Sensitivity int32
	MaxQual     Quality

	Bitrates []int32

	TxPowerCapa uint16
	TxPower     []int32

	WEVersionCompiled uint8

	NumChannels uint16
	Channels    []Channel

	EncCapa uint32
}

// Channel pairs a channel number with its frequency in Hz.
type Channel struct {
	Index uint8
	Freq  float64
}

// Stats mirrors struct iw_statistics.
type Stats struct {
	Status  uint16
	Qual    Quality
	Discard Discard
	Missed  uint32
}

type Discard struct {
	NWID     uint32
	Code     uint32
	Fragment uint32
	Retries  uint32
	Misc     uint32
}

// Info is everything one query learned about an interface. A nil field (or an
// empty Nickname) means the driver did not answer that request.
type Info struct {
	Iface string
	Name  string

	Range    *Range
	NWID     *Param
	Freq     *float64
	Sens     *Param
	Key      *Key
	ESSID    *ESSID
	APAddr   net.HardwareAddr
	Nickname string
	Bitrate  *Param
	RTS      *Param
	Frag     *Param
	Mode     *Mode
	Power    *Param
	TxPower  *Param
	Retry    *Param
	Stats    *Stats
}

// weVersion returns the compiled Wireless Extensions version from the range,
// or 0 when it is unknown.
func (i *Info) weVersion() uint8 {
	if i.Range == nil {
		return 0
	}
	return i.Range.WEVersionCompiled
}
