package timezone

import "time"

// RoundToHalfHour rounds t to the nearest half hour: minutes below 15 go to
// :00, below 45 to :30, and 45 or above roll over to the next hour.
func RoundToHalfHour(t time.Time) time.Time {
	switch m := t.Minute(); {
	case m < 15:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	case m < 45:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 30, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location()).Add(time.Hour)
	}
}

// AmPmString formats t as a 12-hour clock label, e.g. "07:30 PM".
func AmPmString(t time.Time) string {
	return t.Format("03:04 PM")
}

// LocalTimeLabel converts now into loc, rounds it to the nearest half hour and
// returns the role label along with the rounded local time (used for colors).
func LocalTimeLabel(now time.Time, loc *time.Location) (string, time.Time) {
	local := RoundToHalfHour(now.In(loc))
	return AmPmString(local), local
}

// NextBoundaryDelay returns the time until the next :00/:15/:30/:45 mark.
// The result is always in (0, 15] minutes: a time exactly on a boundary waits
// a full interval for the next one.
func NextBoundaryDelay(now time.Time) time.Duration {
	boundary := now.Truncate(15 * time.Minute).Add(15 * time.Minute)
	return boundary.Sub(now)
}
