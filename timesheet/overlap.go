/*
overlap.go - Same-day time-range conflict detection

PURPOSE:
  Detects conflicting punches within a single day. Detection is advisory:
  a conflict highlights the day for the user but never blocks totals or
  persistence. Conflicting punches are a warning, not a validation error.

ALGORITHM:
  Pairwise comparison over the day's complete intervals (typically <=5,
  so O(n^2) is fine). Two half-open ranges [s1,e1) and [s2,e2) in
  minutes-since-midnight overlap iff s1 < e2 && s2 < e1. Touching
  endpoints do not overlap.

NOTE:
  Unlike Duration, the comparison does NOT normalize overnight wraps.
  A 22:00-06:00 punch compares as [1320,360), which never overlaps
  anything. Kept as-is: wrapping here would retroactively flag overnight
  punches that were accepted historically.
*/
package timesheet

// FindConflict returns the indexes of the first pair of overlapping
// complete intervals, or ok=false when the day has no conflict.
// Incomplete intervals are excluded from the check, not flagged.
func FindConflict(intervals []TimeInterval) (i, j int, ok bool) {
	for a := 0; a < len(intervals); a++ {
		if !intervals[a].IsComplete() {
			continue
		}
		for b := a + 1; b < len(intervals); b++ {
			if !intervals[b].IsComplete() {
				continue
			}
			if rangesOverlap(intervals[a], intervals[b]) {
				return a, b, true
			}
		}
	}
	return 0, 0, false
}

// HasConflict reports whether any two complete intervals in the day overlap.
func HasConflict(intervals []TimeInterval) bool {
	_, _, found := FindConflict(intervals)
	return found
}

func rangesOverlap(a, b TimeInterval) bool {
	s1, e1 := a.Start.Minutes(), a.Stop.Minutes()
	s2, e2 := b.Start.Minutes(), b.Stop.Minutes()
	return s1 < e2 && s2 < e1
}
