package validator

import "time"

// Overlaps reports whether two half-open date intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one night. Back-to-back stays where one
// check-out equals the other check-in do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
