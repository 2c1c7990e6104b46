// Package query implements the pure filtering and aggregation engine behind
// the list and summary endpoints. Everything here operates on entry slices
// already loaded from the store; nothing mutates its input.
//
// The in-memory repo uses these functions to implement filter pushdown; the
// Postgres repo expresses the same semantics in SQL.
package query

import (
	"time"

	"github.com/404skill/mood-journal/backend/internal/domain"
)

// FilterByMoods returns the entries whose mood is a member of moods.
// An empty mood set means no filtering: the input is returned unchanged.
// No match yields an empty (non-nil) slice, never an error.
func FilterByMoods(entries []domain.Entry, moods []domain.Mood) []domain.Entry {
	if len(moods) == 0 {
		return entries
	}
	out := make([]domain.Entry, 0, len(entries))
	f := domain.EntryFilter{Moods: moods}
	for _, e := range entries {
		if f.MatchesMood(e.Mood) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByDateRange returns the entries whose CreatedAt lies inside the
// inclusive [start, end] range. Either bound may be nil, leaving that side
// of the range open.
func FilterByDateRange(entries []domain.Entry, start, end *time.Time) []domain.Entry {
	if start == nil && end == nil {
		return entries
	}
	out := make([]domain.Entry, 0, len(entries))
	f := domain.EntryFilter{Start: start, End: end}
	for _, e := range entries {
		if f.MatchesTime(e.CreatedAt) {
			out = append(out, e)
		}
	}
	return out
}

// Filter applies the full EntryFilter: mood set first, then date range.
func Filter(entries []domain.Entry, f domain.EntryFilter) []domain.Entry {
	return FilterByDateRange(FilterByMoods(entries, f.Moods), f.Start, f.End)
}

// Summarize groups entries by mood and counts them.
// Moods with no matching entries are absent from the result — the map is
// empty for empty input, never populated with zero-count keys.
func Summarize(entries []domain.Entry) map[domain.Mood]int {
	summary := make(map[domain.Mood]int)
	for _, e := range entries {
		summary[e.Mood]++
	}
	return summary
}
