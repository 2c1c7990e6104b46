// Package validate contains the boundary validators for the Mood Journal API.
// Every function here is pure: input in, value-or-error out, no side effects.
// Failures wrap domain.ErrValidation so handlers can map them to HTTP 400
// with errors.Is, and the messages are part of the API contract — clients
// detect the failure class by substring ("empty", "date format").
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/404skill/mood-journal/backend/internal/domain"
)

// Text validates the text field of a create or update request.
// A nil pointer (field missing or JSON null), an empty string, and a
// whitespace-only string are all rejected. The stored value is the raw
// string as supplied — validation only checks the trimmed form.
func Text(raw *string) (string, error) {
	if raw == nil {
		return "", fmt.Errorf("%w: text cannot be empty", domain.ErrValidation)
	}
	if strings.TrimSpace(*raw) == "" {
		return "", fmt.Errorf("%w: text cannot be empty", domain.ErrValidation)
	}
	return *raw, nil
}

// EntryID parses raw as a canonical UUID (8-4-4-4-12 hex, case-insensitive).
// uuid.Parse accepts a handful of alternate encodings (urn prefix, braces,
// raw 32 hex digits); only the canonical 36-character form is an entry id.
func EntryID(raw string) (uuid.UUID, error) {
	if len(raw) != 36 {
		return uuid.Nil, fmt.Errorf("%w: invalid entry id %q", domain.ErrValidation, raw)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid entry id %q", domain.ErrValidation, raw)
	}
	return id, nil
}

// DateBound parses a startDate/endDate query parameter.
// Two forms are accepted:
//
//   - a calendar date "2006-01-02", interpreted at start-of-day (00:00:00)
//     for a lower bound and end-of-day (23:59:59) for an upper bound, in UTC;
//   - a full RFC 3339 timestamp, used verbatim.
//
// Impossible calendar values (month 13, day 45) are rejected by time.Parse.
func DateBound(raw string, end bool) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", raw); err == nil {
		if end {
			return d.Add(23*time.Hour + 59*time.Minute + 59*time.Second), nil
		}
		return d, nil
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid date format %q, expected YYYY-MM-DD", domain.ErrValidation, raw)
}

// Moods parses the moods query parameter: a comma-separated list of labels.
// Tokens are trimmed and empty tokens dropped, so "", ",", and an absent
// parameter all mean "no mood filtering" rather than "match nothing".
// Unknown labels are kept — they simply match no stored entry.
func Moods(raw string) []domain.Mood {
	var moods []domain.Mood
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			moods = append(moods, domain.Mood(t))
		}
	}
	return moods
}
