package domain

import "time"

// EntryFilter carries the query parameters of the list and summary endpoints
// from the HTTP layer down to the repo layer.
// Zero-value fields mean "no constraint": an empty Moods slice matches every
// mood, and a nil Start/End leaves that side of the date range open.
type EntryFilter struct {
	// Moods restricts results to entries whose mood is in the set.
	Moods []Mood

	// Start is the inclusive lower bound on CreatedAt.
	Start *time.Time

	// End is the inclusive upper bound on CreatedAt.
	End *time.Time
}

// MatchesMood reports whether an entry with the given mood passes the filter.
func (f EntryFilter) MatchesMood(m Mood) bool {
	if len(f.Moods) == 0 {
		return true
	}
	for _, want := range f.Moods {
		if m == want {
			return true
		}
	}
	return false
}

// MatchesTime reports whether an entry created at t falls inside the
// (inclusive) date range. Bounds are checked independently.
func (f EntryFilter) MatchesTime(t time.Time) bool {
	if f.Start != nil && t.Before(*f.Start) {
		return false
	}
	if f.End != nil && t.After(*f.End) {
		return false
	}
	return true
}
