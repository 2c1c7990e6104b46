package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/404skill/mood-journal/backend/internal/domain"
	"github.com/404skill/mood-journal/backend/internal/query"
)

// memEntryRepo is an in-memory implementation of EntryRepo backed by a map
// guarded with a single mutex. Every operation runs under the lock, so each
// call appears atomic to concurrent callers: a read never observes a
// half-applied update, and writes to the same id serialize.
//
// Entries are copied on the way in and out — callers never hold a reference
// into the store's state.
//
// Used when no DATABASE_URL is configured, and throughout the test suite.
type memEntryRepo struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]domain.Entry

	// now is swappable so tests can plant entries at known times.
	now func() time.Time
}

// NewMemoryEntryRepo constructs an empty in-memory EntryRepo.
func NewMemoryEntryRepo() EntryRepo {
	return &memEntryRepo{
		entries: make(map[uuid.UUID]domain.Entry),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *memEntryRepo) Create(_ context.Context, entry domain.Entry) (domain.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = uuid.New()
	entry.CreatedAt = r.now()
	entry.UpdatedAt = nil

	r.entries[entry.ID] = entry
	return entry, nil
}

func (r *memEntryRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return domain.Entry{}, domain.ErrNotFound
	}
	return e, nil
}

// List filters via the query engine and returns entries newest first,
// matching the ordering of the Postgres implementation.
func (r *memEntryRepo) List(_ context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	r.mu.RLock()
	all := make([]domain.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		all = append(all, e)
	}
	r.mu.RUnlock()

	matched := query.Filter(all, filter)
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (r *memEntryRepo) Update(_ context.Context, entry domain.Entry) (domain.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.entries[entry.ID]
	if !ok {
		return domain.Entry{}, domain.ErrNotFound
	}

	stored.Text = entry.Text
	stored.Mood = entry.Mood
	ts := r.now()
	stored.UpdatedAt = &ts

	r.entries[entry.ID] = stored
	return stored, nil
}

func (r *memEntryRepo) SetMood(_ context.Context, id uuid.UUID, mood domain.Mood) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.entries[id]
	if !ok {
		return domain.ErrNotFound
	}

	stored.Mood = mood
	r.entries[id] = stored
	return nil
}

func (r *memEntryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}
