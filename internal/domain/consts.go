package domain

import (
	"errors"
	"regexp"
)

// TimeLabelRegex matches role names that look exactly like the time labels
// this bot manages, e.g. "07:45 PM". Assignment revokes every matching role a
// member holds before granting a new one, and bulk erase deletes them.
var TimeLabelRegex = regexp.MustCompile(`^[0-9]{2}:[0-9]{2} [AP]M$`)

// CustomZoneID is recognized but intentionally unsupported; upstream shows a
// distinct "unsupported" message instead of the generic invalid one.
const CustomZoneID = "Antarctica/Troll"

var (
	// ErrInvalidZone means the identifier does not resolve to any known time zone.
	ErrInvalidZone = errors.New("invalid time zone identifier")

	// ErrUnsupportedZone means the identifier is recognized but not supported.
	ErrUnsupportedZone = errors.New("unsupported time zone")
)
