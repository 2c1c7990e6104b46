// Package handler implements the HTTP handlers for the Mood Journal API.
// All handlers are methods on Server. Methods are split into files by
// concern (health.go, entry.go, summary.go) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/404skill/mood-journal/backend/internal/domain"
)

// EntryServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type EntryServicer interface {
	Create(ctx context.Context, text *string) (domain.Entry, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Entry, error)
	List(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)
	Update(ctx context.Context, id uuid.UUID, text *string) (domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context, filter domain.EntryFilter) (map[domain.Mood]int, error)
}

// Server holds the dependencies shared by every endpoint handler.
type Server struct {
	entries EntryServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(entries EntryServicer) *Server {
	return &Server{entries: entries}
}
