package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"notes-api/internal/models"
	"notes-api/internal/repositories"
)

// NoteRepository implements repositories.NoteRepository for SQLite. The
// primary key provides the create-only-if-absent condition; update and
// delete report a failed condition when no row was affected.
type NoteRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewNoteRepository creates a new SQLite note repository
func NewNoteRepository(db *sql.DB, logger *logrus.Logger) *NoteRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &NoteRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new note
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	if err := repositories.ValidateID("create", repositories.EntityNote, note.ID); err != nil {
		return err
	}

	query := `INSERT INTO notes (notes_id, title, body) VALUES (?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, note.ID, note.Title, note.Body); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return repositories.ConditionFailedError("create", repositories.EntityNote, note.ID)
		}
		return r.unavailable("create", note.ID, err)
	}

	r.logger.WithField("id", note.ID).Debug("Note created")
	return nil
}

// Update replaces title and body of an existing note
func (r *NoteRepository) Update(ctx context.Context, id string, content *models.NoteContent) error {
	if err := repositories.ValidateID("update", repositories.EntityNote, id); err != nil {
		return err
	}

	query := `UPDATE notes SET title = ?, body = ? WHERE notes_id = ?`

	result, err := r.db.ExecContext(ctx, query, content.Title, content.Body, id)
	if err != nil {
		return r.unavailable("update", id, err)
	}

	return r.checkRowsAffected(result, "update", id)
}

// Delete deletes a note by ID
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	if err := repositories.ValidateID("delete", repositories.EntityNote, id); err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE notes_id = ?`, id)
	if err != nil {
		return r.unavailable("delete", id, err)
	}

	return r.checkRowsAffected(result, "delete", id)
}

// Get retrieves a note by ID
func (r *NoteRepository) Get(ctx context.Context, id string) (*models.Note, error) {
	if err := repositories.ValidateID("get", repositories.EntityNote, id); err != nil {
		return nil, err
	}

	query := `SELECT notes_id, title, body FROM notes WHERE notes_id = ? LIMIT 1`

	note := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&note.ID, &note.Title, &note.Body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError(repositories.EntityNote, id)
		}
		return nil, r.unavailable("get", id, err)
	}

	return note, nil
}

// List retrieves every note
func (r *NoteRepository) List(ctx context.Context) ([]*models.Note, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT notes_id, title, body FROM notes`)
	if err != nil {
		return nil, r.unavailable("list", "", err)
	}
	defer rows.Close()

	notes := make([]*models.Note, 0)
	for rows.Next() {
		note := &models.Note{}
		if err := rows.Scan(&note.ID, &note.Title, &note.Body); err != nil {
			return nil, r.unavailable("list", "", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, r.unavailable("list", "", err)
	}

	return notes, nil
}

// Close closes the database handle
func (r *NoteRepository) Close() error {
	return r.db.Close()
}

func (r *NoteRepository) checkRowsAffected(result sql.Result, op, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return r.unavailable(op, id, err)
	}

	if affected == 0 {
		return repositories.ConditionFailedError(op, repositories.EntityNote, id)
	}

	r.logger.WithFields(logrus.Fields{"op": op, "id": id}).Debug("Note written")
	return nil
}

func (r *NoteRepository) unavailable(op, id string, err error) error {
	r.logger.WithError(err).WithFields(logrus.Fields{
		"op": op,
		"id": id,
	}).Debug("SQLite operation failed")
	return repositories.UnavailableError(op, repositories.EntityNote, id, err)
}
