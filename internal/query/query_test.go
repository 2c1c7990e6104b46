package query_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/404skill/mood-journal/backend/internal/domain"
	"github.com/404skill/mood-journal/backend/internal/query"
)

func entryAt(mood domain.Mood, created time.Time) domain.Entry {
	return domain.Entry{
		ID:        uuid.New(),
		Text:      "fixture",
		Mood:      mood,
		CreatedAt: created,
	}
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 12, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }

// ---- FilterByMoods ---------------------------------------------------------

func TestFilterByMoods_EmptySetReturnsAll(t *testing.T) {
	entries := []domain.Entry{
		entryAt(domain.MoodHappy, day(1)),
		entryAt(domain.MoodSad, day(2)),
	}

	got := query.FilterByMoods(entries, nil)

	assert.Equal(t, entries, got)
}

func TestFilterByMoods_SingleMood(t *testing.T) {
	entries := []domain.Entry{
		entryAt(domain.MoodHappy, day(1)),
		entryAt(domain.MoodSad, day(2)),
		entryAt(domain.MoodHappy, day(3)),
	}

	got := query.FilterByMoods(entries, []domain.Mood{domain.MoodHappy})

	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, domain.MoodHappy, e.Mood)
	}
}

func TestFilterByMoods_MultipleMoods(t *testing.T) {
	entries := []domain.Entry{
		entryAt(domain.MoodHappy, day(1)),
		entryAt(domain.MoodSad, day(2)),
		entryAt(domain.MoodAngry, day(3)),
	}

	got := query.FilterByMoods(entries, []domain.Mood{domain.MoodHappy, domain.MoodSad})

	require.Len(t, got, 2)
	for _, e := range got {
		assert.Contains(t, []domain.Mood{domain.MoodHappy, domain.MoodSad}, e.Mood)
	}
}

func TestFilterByMoods_NoMatchIsEmptyNotError(t *testing.T) {
	entries := []domain.Entry{entryAt(domain.MoodHappy, day(1))}

	got := query.FilterByMoods(entries, []domain.Mood{"nonexistent"})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- FilterByDateRange -----------------------------------------------------

func TestFilterByDateRange_InclusiveBounds(t *testing.T) {
	entries := []domain.Entry{
		entryAt(domain.MoodHappy, day(19)),
		entryAt(domain.MoodHappy, day(20)),
		entryAt(domain.MoodHappy, day(21)),
		entryAt(domain.MoodHappy, day(22)),
		entryAt(domain.MoodHappy, day(23)),
	}

	start := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 22, 23, 59, 59, 0, time.UTC)

	got := query.FilterByDateRange(entries, &start, &end)

	require.Len(t, got, 3)
	for _, e := range got {
		assert.False(t, e.CreatedAt.Before(start), "entry before range")
		assert.False(t, e.CreatedAt.After(end), "entry after range")
	}
}

func TestFilterByDateRange_OpenStart(t *testing.T) {
	entries := []domain.Entry{
		entryAt(domain.MoodHappy, day(21)),
		entryAt(domain.MoodHappy, day(23)),
	}

	end := time.Date(2025, 6, 22, 23, 59, 59, 0, time.UTC)
	got := query.FilterByDateRange(entries, nil, &end)

	require.Len(t, got, 1)
	assert.Equal(t, day(21), got[0].CreatedAt)
}

func TestFilterByDateRange_OpenEnd(t *testing.T) {
	entries := []domain.Entry{
		entryAt(domain.MoodHappy, day(19)),
		entryAt(domain.MoodHappy, day(21)),
	}

	start := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	got := query.FilterByDateRange(entries, &start, nil)

	require.Len(t, got, 1)
	assert.Equal(t, day(21), got[0].CreatedAt)
}

func TestFilterByDateRange_NoBoundsReturnsAll(t *testing.T) {
	entries := []domain.Entry{entryAt(domain.MoodHappy, day(1))}

	assert.Equal(t, entries, query.FilterByDateRange(entries, nil, nil))
}

// ---- Summarize -------------------------------------------------------------

func TestSummarize_CountsByMood(t *testing.T) {
	entries := []domain.Entry{
		entryAt(domain.MoodHappy, day(1)),
		entryAt(domain.MoodHappy, day(2)),
		entryAt(domain.MoodSad, day(3)),
	}

	got := query.Summarize(entries)

	assert.Equal(t, map[domain.Mood]int{
		domain.MoodHappy: 2,
		domain.MoodSad:   1,
	}, got)
}

func TestSummarize_EmptyInputIsEmptyMap(t *testing.T) {
	got := query.Summarize(nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSummarize_NeverContainsZeroCounts(t *testing.T) {
	got := query.Summarize([]domain.Entry{entryAt(domain.MoodAngry, day(1))})

	for m, count := range got {
		assert.Positive(t, count, "mood %q has non-positive count", m)
	}
	assert.NotContains(t, got, domain.MoodHappy)
}

// ---- Composition invariant -------------------------------------------------

// The summary total always equals the size of the filtered entry set the
// summary was computed over.
func TestSummarize_TotalMatchesFilteredCount(t *testing.T) {
	entries := []domain.Entry{
		entryAt(domain.MoodHappy, day(19)),
		entryAt(domain.MoodHappy, day(20)),
		entryAt(domain.MoodSad, day(21)),
		entryAt(domain.MoodHappy, day(22)),
		entryAt(domain.MoodAngry, day(23)),
	}

	filter := domain.EntryFilter{
		Moods: []domain.Mood{domain.MoodHappy, domain.MoodSad},
		Start: timePtr(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)),
		End:   timePtr(time.Date(2025, 6, 22, 23, 59, 59, 0, time.UTC)),
	}

	filtered := query.Filter(entries, filter)
	summary := query.Summarize(filtered)

	total := 0
	for _, count := range summary {
		total += count
	}
	assert.Equal(t, len(filtered), total)
	assert.Equal(t, 3, total)
}
