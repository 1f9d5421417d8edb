package wext

import (
	"fmt"

	"github.com/prometheus/procfs"
)

// procStatsFn can be overridden in tests.
var procStatsFn = func(ifname string) (Stats, error) {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return Stats{}, err
	}
	return procStats(fs, ifname)
}

// procStats finds ifname's row in /proc/net/wireless.
func procStats(fs procfs.FS, ifname string) (Stats, error) {
	rows, err := fs.Wireless()
	if err != nil {
		return Stats{}, fmt.Errorf("read wireless stats: %w", err)
	}
	for _, w := range rows {
		if w.Name != ifname {
			continue
		}
		return statsFromProc(w), nil
	}
	return Stats{}, errNoStats
}

// statsFromProc converts a /proc/net/wireless row back to iw_statistics.
// The kernel prints dBm levels as negative numbers; the per-value update
// markers are not kept by the parser, so every value counts as updated.
func statsFromProc(w *procfs.Wireless) Stats {
	updated := uint8(QualAllUpdated)
	if w.QualityLevel < 0 || w.QualityNoise < 0 {
		updated |= QualDBM
	}
	return Stats{
		Status: uint16(w.Status),
		Qual: Quality{
			Qual:    uint8(w.QualityLink),
			Level:   uint8(w.QualityLevel),
			Noise:   uint8(w.QualityNoise),
			Updated: updated,
		},
		Discard: Discard{
			NWID:     uint32(w.DiscardedNwid),
			Code:     uint32(w.DiscardedCrypt),
			Fragment: uint32(w.DiscardedFrag),
			Retries:  uint32(w.DiscardedRetry),
			Misc:     uint32(w.DiscardedMisc),
		},
		Missed: uint32(w.MissedBeacon),
	}
}
