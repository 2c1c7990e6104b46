// Package repo contains all persistence logic for the Mood Journal API.
// EntryRepo is the abstract storage interface the service layer depends on;
// this file holds the Postgres implementation, memory.go the in-memory one.
// No business logic lives here — only storage access and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/404skill/mood-journal/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// EntryRepo defines the persistence operations for journal entries.
// The service layer depends on this interface, not a concrete implementation,
// which allows unit tests with a mock and lets main pick the backend
// (Postgres or in-memory) at startup.
type EntryRepo interface {
	// Create inserts a new entry and returns the persisted record with
	// store-generated id and created_at populated.
	Create(ctx context.Context, entry domain.Entry) (domain.Entry, error)

	// GetByID retrieves a single entry by its UUID primary key.
	// Returns domain.ErrNotFound if no entry with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Entry, error)

	// List returns the entries matching the filter, newest first.
	List(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)

	// Update overwrites text and mood of an existing entry, stamps
	// updated_at, and returns the updated record.
	// Returns domain.ErrNotFound if no entry with that ID exists.
	Update(ctx context.Context, entry domain.Entry) (domain.Entry, error)

	// SetMood persists a lazily computed mood for an entry without touching
	// updated_at — backfill is not a user-visible update.
	// Returns domain.ErrNotFound if no entry with that ID exists.
	SetMood(ctx context.Context, id uuid.UUID, mood domain.Mood) error

	// Delete removes an entry by ID. Returns domain.ErrNotFound if it does
	// not exist. Removal is immediate and final.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgEntryRepo is the Postgres implementation of EntryRepo.
type pgEntryRepo struct {
	db db
}

// NewEntryRepo constructs an EntryRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewEntryRepo(db db) EntryRepo {
	return &pgEntryRepo{db: db}
}

// Create inserts a new entry row and returns the full persisted record.
func (r *pgEntryRepo) Create(ctx context.Context, entry domain.Entry) (domain.Entry, error) {
	const q = `
		INSERT INTO entries (text, mood)
		VALUES (@text, @mood)
		RETURNING id, text, mood, created_at, updated_at`

	args := pgx.NamedArgs{
		"text": entry.Text,
		"mood": moodArg(entry.Mood), // empty mood becomes NULL
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanEntry(row)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("repo.EntryRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves an entry by primary key.
func (r *pgEntryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Entry, error) {
	const q = `
		SELECT id, text, mood, created_at, updated_at
		FROM entries
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanEntry(row)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("repo.EntryRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns the entries matching the filter ordered by created_at
// descending (most recent first). The mood and date constraints are pushed
// down into the WHERE clause.
func (r *pgEntryRepo) List(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	q := `
		SELECT id, text, mood, created_at, updated_at
		FROM entries`

	args := pgx.NamedArgs{}
	var conds []string

	if len(filter.Moods) > 0 {
		moods := make([]string, len(filter.Moods))
		for i, m := range filter.Moods {
			moods[i] = string(m)
		}
		conds = append(conds, "mood = ANY(@moods)")
		args["moods"] = moods
	}
	if filter.Start != nil {
		conds = append(conds, "created_at >= @start")
		args["start"] = *filter.Start
	}
	if filter.End != nil {
		conds = append(conds, "created_at <= @end")
		args["end"] = *filter.End
	}

	for i, c := range conds {
		if i == 0 {
			q += "\n\t\tWHERE " + c
		} else {
			q += "\n\t\tAND " + c
		}
	}
	q += "\n\t\tORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.List: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.EntryRepo.List: scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.List: rows: %w", err)
	}

	return entries, nil
}

// Update overwrites text and mood of an entry and returns the updated record.
func (r *pgEntryRepo) Update(ctx context.Context, entry domain.Entry) (domain.Entry, error) {
	const q = `
		UPDATE entries
		SET text       = @text,
		    mood       = @mood,
		    updated_at = now()
		WHERE id = @id
		RETURNING id, text, mood, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":   entry.ID,
		"text": entry.Text,
		"mood": moodArg(entry.Mood),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanEntry(row)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("repo.EntryRepo.Update: %w", err)
	}
	return result, nil
}

// SetMood persists a backfilled mood. updated_at is deliberately untouched.
func (r *pgEntryRepo) SetMood(ctx context.Context, id uuid.UUID, mood domain.Mood) error {
	const q = `UPDATE entries SET mood = @mood WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "mood": string(mood)})
	if err != nil {
		return fmt.Errorf("repo.EntryRepo.SetMood: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.EntryRepo.SetMood: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes an entry by primary key.
func (r *pgEntryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM entries WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.EntryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.EntryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// moodArg converts a Mood to a nullable SQL argument: empty mood means the
// entry has not been classified yet and is stored as NULL.
func moodArg(m domain.Mood) *string {
	if m == "" {
		return nil
	}
	s := string(m)
	return &s
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanEntry to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanEntry maps a single database row into a domain.Entry.
// It handles the UUID and the nullable mood and updated_at conversions.
func scanEntry(s scanner) (domain.Entry, error) {
	var (
		e         domain.Entry
		id        pgtype.UUID
		mood      pgtype.Text
		updatedAt pgtype.Timestamptz
	)

	err := s.Scan(&id, &e.Text, &mood, &e.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Entry{}, domain.ErrNotFound
		}
		return domain.Entry{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	if mood.Valid {
		e.Mood = domain.Mood(mood.String)
	}
	if updatedAt.Valid {
		ts := updatedAt.Time
		e.UpdatedAt = &ts
	}

	return e, nil
}
