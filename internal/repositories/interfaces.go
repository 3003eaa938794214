package repositories

import (
	"context"

	"notes-api/internal/models"
)

// NoteRepository is the note store client. Every method issues exactly one
// store request; existence requirements are enforced by the store itself
// through conditional writes, never by a read before the write.
type NoteRepository interface {
	// Create stores a new note. It fails with ErrConditionFailed when a note
	// with the same ID already exists.
	Create(ctx context.Context, note *models.Note) error

	// Update replaces the title and body of an existing note. It fails with
	// ErrConditionFailed when no note with the ID exists.
	Update(ctx context.Context, id string, content *models.NoteContent) error

	// Delete removes a note. It fails with ErrConditionFailed when no note
	// with the ID exists.
	Delete(ctx context.Context, id string) error

	// Get looks up a single note by exact ID. It fails with ErrNotFound when
	// there is no match.
	Get(ctx context.Context, id string) (*models.Note, error)

	// List reads every stored note. Order is unspecified.
	List(ctx context.Context) ([]*models.Note, error)

	// Close releases the underlying connection, if any
	Close() error
}
