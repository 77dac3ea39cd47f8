package leave

import "time"

// DayCount returns the inclusive day count between start and end,
// floor((end-start)/day) + 1, clamped at zero for inverted ranges.
func DayCount(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// WithinRequestWindow reports whether d falls inside the current or
// next calendar month relative to now.
func WithinRequestWindow(d, now time.Time) bool {
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, d.Location())
	nextEnd := currentStart.AddDate(0, 2, 0).Add(-time.Nanosecond)
	return !d.Before(currentStart) && !d.After(nextEnd)
}

// ValidateRange runs the submission-time date checks: a positive
// inclusive day count and both endpoints inside the request window.
func ValidateRange(start, end, now time.Time) (int, error) {
	days := DayCount(start, end)
	if days <= 0 {
		return 0, ErrInvalidRange
	}
	if !WithinRequestWindow(start, now) || !WithinRequestWindow(end, now) {
		return 0, ErrOutOfWindow
	}
	return days, nil
}

// Overlaps reports whether [aStart, aEnd] and [bStart, bEnd] share at
// least one day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}
