package timezone

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Descriptor is an immutable snapshot of one IANA time zone, taken once at
// startup. BaseOffset is the standard (non-DST) UTC offset in seconds and
// Transitions lists the future offset changes within the scan horizon.
type Descriptor struct {
	ID          string
	BaseOffset  int
	SupportsDST bool
	Transitions []Transition
	Location    *time.Location
}

// Transition is a single future offset change: the instant it takes effect
// and the offset in seconds east of UTC from that instant on.
type Transition struct {
	When   time.Time
	Offset int
}

// Common locations of the zoneinfo database.
var zoneDirs = []string{
	"/usr/share/zoneinfo/",
	"/usr/lib/zoneinfo/",
	"/usr/share/lib/zoneinfo/",
}

const (
	// transitionHorizon bounds how far ahead offset changes are scanned when
	// building descriptors. Rules beyond it cannot influence classification.
	transitionHorizon = 2 * 365 * 24 * time.Hour

	// probeStep is the coarse sampling interval; no real zone transitions
	// twice within it.
	probeStep = 6 * time.Hour
)

// ListZoneIDs returns every IANA zone name the host zoneinfo database can
// actually load.
func ListZoneIDs() []string {
	var zones []string

	for _, zoneDir := range zoneDirs {
		if _, err := os.Stat(zoneDir); os.IsNotExist(err) {
			continue
		}

		filepath.Walk(zoneDir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}

			// Skip the alternate rule sets some distributions ship.
			if strings.Contains(path, "zoneinfo/posix/") ||
				strings.Contains(path, "zoneinfo/right/") ||
				strings.Contains(path, "zoneinfo/posixrules") ||
				strings.Contains(path, "zoneinfo/localtime") {
				return nil
			}

			name := strings.TrimPrefix(path, zoneDir)
			if _, err := time.LoadLocation(name); err == nil {
				zones = append(zones, name)
			}
			return nil
		})

		if len(zones) > 0 {
			break
		}
	}

	return zones
}

// LoadCatalog builds a descriptor for every zone on the host, relative to now.
func LoadCatalog(now time.Time) ([]Descriptor, error) {
	ids := ListZoneIDs()
	if len(ids) == 0 {
		return nil, fmt.Errorf("no time zones found in %v", zoneDirs)
	}

	catalog := make([]Descriptor, 0, len(ids))
	for _, id := range ids {
		loc, err := time.LoadLocation(id)
		if err != nil {
			continue
		}
		catalog = append(catalog, describeZone(id, loc, now))
	}
	return catalog, nil
}

func describeZone(id string, loc *time.Location, now time.Time) Descriptor {
	return Descriptor{
		ID:          id,
		BaseOffset:  standardOffset(loc, now),
		SupportsDST: observesDST(loc, now),
		Transitions: scanTransitions(loc, now, now.Add(transitionHorizon)),
		Location:    loc,
	}
}

func offsetAt(t time.Time, loc *time.Location) int {
	_, offset := t.In(loc).Zone()
	return offset
}

// standardOffset is the zone's non-DST offset: the offset at the first probed
// instant within a year of now that is not in daylight saving.
func standardOffset(loc *time.Location, now time.Time) int {
	for t := now; t.Before(now.Add(365 * 24 * time.Hour)); t = t.Add(probeStep) {
		if !t.In(loc).IsDST() {
			return offsetAt(t, loc)
		}
	}
	return offsetAt(now, loc)
}

// observesDST reports whether the zone is in daylight saving at any probed
// instant within a year of now.
func observesDST(loc *time.Location, now time.Time) bool {
	for t := now; t.Before(now.Add(365 * 24 * time.Hour)); t = t.Add(probeStep) {
		if t.In(loc).IsDST() {
			return true
		}
	}
	return false
}

// scanTransitions discovers offset changes in (from, to] by coarse probing
// and refining each change to the minute with a binary search.
func scanTransitions(loc *time.Location, from, to time.Time) []Transition {
	var transitions []Transition

	prev := from
	prevOffset := offsetAt(prev, loc)
	for t := from.Add(probeStep); !t.After(to); t = t.Add(probeStep) {
		offset := offsetAt(t, loc)
		if offset != prevOffset {
			transitions = append(transitions, Transition{
				When:   findTransition(loc, prev, t),
				Offset: offset,
			})
			prevOffset = offset
		}
		prev = t
	}

	return transitions
}

// findTransition narrows a known offset change in (lo, hi] down to the minute.
func findTransition(loc *time.Location, lo, hi time.Time) time.Time {
	base := offsetAt(lo, loc)
	for hi.Sub(lo) > time.Minute {
		mid := lo.Add(hi.Sub(lo) / 2)
		if offsetAt(mid, loc) == base {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi.Truncate(time.Minute)
}
