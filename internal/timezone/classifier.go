package timezone

import (
	"fmt"
	"log"
	"time"

	"github.com/diegoclair/discord-timezone-bot/internal/domain"
)

// EquivalenceClass is a set of zones that are interchangeable for labeling:
// they always show the same half-hour-rounded local time.
type EquivalenceClass struct {
	RepresentativeID string
	Members          []string
}

// ClassIndex partitions the catalog into equivalence classes. It is built
// once at startup, immutable afterwards, and safe to share without locking.
// Classes are valid for the process lifetime only: a restart after a rule
// boundary may classify zones differently.
type ClassIndex struct {
	classes []*EquivalenceClass
	byZone  map[string]*EquivalenceClass
	byID    map[string]Descriptor
}

// BuildClasses partitions the catalog. Each descriptor is compared against
// the representative of every class formed so far; the first match joins that
// class, otherwise the descriptor founds a new one. Quadratic in the zone
// count, which is fine as a one-time startup cost.
func BuildClasses(catalog []Descriptor, now time.Time) *ClassIndex {
	index := &ClassIndex{
		byZone: make(map[string]*EquivalenceClass, len(catalog)),
		byID:   make(map[string]Descriptor, len(catalog)),
	}

	var representatives []Descriptor
	for _, desc := range catalog {
		index.byID[desc.ID] = desc

		joined := false
		for i, rep := range representatives {
			if !sameRules(desc, rep) {
				continue
			}
			index.classes[i].Members = append(index.classes[i].Members, desc.ID)
			index.byZone[desc.ID] = index.classes[i]
			joined = true
			break
		}

		if !joined {
			class := &EquivalenceClass{
				RepresentativeID: desc.ID,
				Members:          []string{desc.ID},
			}
			index.classes = append(index.classes, class)
			index.byZone[desc.ID] = class
			representatives = append(representatives, desc)
		}
	}

	index.verify(now)
	return index
}

// ClassOf resolves a zone id to its equivalence class.
func (ix *ClassIndex) ClassOf(zoneID string) (*EquivalenceClass, error) {
	class, ok := ix.byZone[zoneID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidZone, zoneID)
	}
	return class, nil
}

// DescriptorOf returns the descriptor for a zone id.
func (ix *ClassIndex) DescriptorOf(zoneID string) (Descriptor, bool) {
	desc, ok := ix.byID[zoneID]
	return desc, ok
}

// Size returns the number of classes.
func (ix *ClassIndex) Size() int {
	return len(ix.classes)
}

func sameRules(a, b Descriptor) bool {
	if roundOffsetToHalfHour(a.BaseOffset) != roundOffsetToHalfHour(b.BaseOffset) ||
		a.SupportsDST != b.SupportsDST {
		return false
	}
	if len(a.Transitions) != len(b.Transitions) {
		return false
	}
	for i := range a.Transitions {
		if !a.Transitions[i].When.Equal(b.Transitions[i].When) ||
			a.Transitions[i].Offset != b.Transitions[i].Offset {
			return false
		}
	}
	return true
}

// roundOffsetToHalfHour rounds an offset in seconds to the nearest 30 minutes.
func roundOffsetToHalfHour(seconds int) int {
	half := 900
	if seconds < 0 {
		half = -900
	}
	minutes := (seconds + half) / 60
	return (minutes - minutes%30) * 60
}

// verify re-evaluates every class member against its representative's current
// half-hour-rounded local time. A mismatch points at a classification edge
// case (e.g. a rule boundary being crossed right now) and is only logged.
func (ix *ClassIndex) verify(now time.Time) {
	for _, class := range ix.classes {
		rep, ok := ix.byID[class.RepresentativeID]
		if !ok || rep.Location == nil {
			continue
		}
		want, _ := LocalTimeLabel(now, rep.Location)
		for _, member := range class.Members {
			desc, ok := ix.byID[member]
			if !ok || desc.Location == nil {
				continue
			}
			if got, _ := LocalTimeLabel(now, desc.Location); got != want {
				log.Printf("time zone class mismatch: %s shows %s but representative %s shows %s",
					member, got, class.RepresentativeID, want)
			}
		}
	}
}
