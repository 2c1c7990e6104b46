// Package service contains the business logic for the Mood Journal API.
// Services validate inputs, invoke the mood classifier, and orchestrate repo
// calls. No SQL lives here — services depend on the repo interface, not an
// implementation.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/404skill/mood-journal/backend/internal/domain"
	"github.com/404skill/mood-journal/backend/internal/query"
	"github.com/404skill/mood-journal/backend/internal/repo"
	"github.com/404skill/mood-journal/backend/internal/validate"
)

// Classifier maps entry text to a mood label. Implementations must be total
// and deterministic: any non-empty text yields exactly one valid label, and
// the same text always yields the same label.
type Classifier func(text string) domain.Mood

// EntryService implements business logic for journal entries.
type EntryService struct {
	repo     repo.EntryRepo
	classify Classifier
}

// NewEntryService constructs an EntryService backed by the provided repo and
// classifier.
func NewEntryService(r repo.EntryRepo, classify Classifier) *EntryService {
	return &EntryService{repo: r, classify: classify}
}

// Create validates the text, classifies its mood, and persists a new entry.
// Returns domain.ErrValidation when text is missing, empty, or whitespace-only.
func (s *EntryService) Create(ctx context.Context, text *string) (domain.Entry, error) {
	t, err := validate.Text(text)
	if err != nil {
		return domain.Entry{}, err
	}

	entry := domain.Entry{
		Text: t,
		Mood: s.classify(t),
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("service.EntryService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single entry. Entries stored before mood extraction
// existed have no mood; those are classified here and the result persisted
// (lazy backfill), so callers always see a non-empty mood.
func (s *EntryService) GetByID(ctx context.Context, id uuid.UUID) (domain.Entry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("service.EntryService.GetByID: %w", err)
	}

	entry, err = s.backfillMood(ctx, entry)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("service.EntryService.GetByID: %w", err)
	}
	return entry, nil
}

// List returns the entries matching the filter, each with lazy mood backfill
// applied. Always returns a non-nil slice so callers can safely range over it.
func (s *EntryService) List(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.List: %w", err)
	}

	for i, e := range entries {
		entries[i], err = s.backfillMood(ctx, e)
		if err != nil {
			return nil, fmt.Errorf("service.EntryService.List: %w", err)
		}
	}

	if entries == nil {
		return []domain.Entry{}, nil
	}
	return entries, nil
}

// Update replaces the text of an existing entry, reclassifies its mood, and
// stamps updated_at. Fails closed with domain.ErrNotFound for unknown ids and
// applies the same empty-text validation as Create.
func (s *EntryService) Update(ctx context.Context, id uuid.UUID, text *string) (domain.Entry, error) {
	t, err := validate.Text(text)
	if err != nil {
		return domain.Entry{}, err
	}

	entry := domain.Entry{
		ID:   id,
		Text: t,
		Mood: s.classify(t),
	}

	updated, err := s.repo.Update(ctx, entry)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("service.EntryService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes an entry by ID. Returns domain.ErrNotFound if it does not
// exist. After deletion the id is permanently invalid.
func (s *EntryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.EntryService.Delete: %w", err)
	}
	return nil
}

// Summary counts the entries matching the filter grouped by mood.
// Moods with zero matches are absent; an empty match set yields an empty map.
func (s *EntryService) Summary(ctx context.Context, filter domain.EntryFilter) (map[domain.Mood]int, error) {
	entries, err := s.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.Summary: %w", err)
	}
	return query.Summarize(entries), nil
}

// backfillMood classifies and persists the mood of an entry that predates
// mood extraction. Entries that already carry a mood pass through untouched.
func (s *EntryService) backfillMood(ctx context.Context, entry domain.Entry) (domain.Entry, error) {
	if entry.Mood != "" {
		return entry, nil
	}

	entry.Mood = s.classify(entry.Text)
	if err := s.repo.SetMood(ctx, entry.ID, entry.Mood); err != nil {
		return domain.Entry{}, err
	}
	return entry, nil
}
