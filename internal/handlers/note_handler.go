package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"notes-api/internal/models"
	"notes-api/internal/repositories"
	"notes-api/pkg/lambda"
)

// NoteHandler handles note requests. Each method issues exactly one
// repository call and holds no state between invocations.
type NoteHandler struct {
	repo   repositories.NoteRepository
	logger *logrus.Logger
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(repo repositories.NoteRepository, logger *logrus.Logger) *NoteHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &NoteHandler{
		repo:   repo,
		logger: logger,
	}
}

// @Summary Create a note
// @Description Create a note with a caller-assigned id; fails if the id is taken
// @Tags notes
// @Accept json
// @Produce json
// @Param note body models.Note true "Note"
// @Success 200 {string} string "A new note was created"
// @Failure 500 {string} string "Error creating the note"
// @Security BearerAuth
// @Router /notes [post]
func (h *NoteHandler) Create(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if !req.HasBody() {
		return nil, ErrInvalidInput
	}

	note := &models.Note{}
	if err := json.Unmarshal(req.Body, note); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := note.Validate(); err != nil {
		h.logFailure("create", note.ID, err)
		return messageResponse(http.StatusInternalServerError, msgCreateFailed), nil
	}

	if err := h.repo.Create(ctx, note); err != nil {
		h.logFailure("create", note.ID, err)
		return messageResponse(http.StatusInternalServerError, msgCreateFailed), nil
	}

	return messageResponse(http.StatusOK, msgCreated), nil
}

// @Summary Update a note
// @Description Replace title and body of an existing note
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param note body models.NoteContent true "New content"
// @Success 200 {string} string "The note with id ... was updated successfully"
// @Failure 500 {string} string "Error updating the note"
// @Security BearerAuth
// @Router /notes/{id} [put]
func (h *NoteHandler) Update(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParam("id")
	if id == "" || !req.HasBody() {
		return nil, ErrInvalidInput
	}

	content := &models.NoteContent{}
	if err := json.Unmarshal(req.Body, content); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := content.Validate(); err != nil {
		h.logFailure("update", id, err)
		return messageResponse(http.StatusInternalServerError, msgUpdateFailed), nil
	}

	if err := h.repo.Update(ctx, id, content); err != nil {
		h.logFailure("update", id, err)
		return messageResponse(http.StatusInternalServerError, msgUpdateFailed), nil
	}

	return messageResponse(http.StatusOK, fmt.Sprintf(msgUpdatedFmt, id)), nil
}

// @Summary Delete a note
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {string} string "The note with id ... was deleted successfully"
// @Failure 500 {string} string "Error deleting the note"
// @Security BearerAuth
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParam("id")
	if id == "" {
		return nil, ErrInvalidInput
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		h.logFailure("delete", id, err)
		return messageResponse(http.StatusInternalServerError, msgDeleteFailed), nil
	}

	return messageResponse(http.StatusOK, fmt.Sprintf(msgDeletedFmt, id)), nil
}

// @Summary List notes
// @Description Return every stored note, in no particular order
// @Tags notes
// @Produce json
// @Success 200 {array} models.Note
// @Failure 500 {string} string "Error returning all notes"
// @Security BearerAuth
// @Router /notes [get]
func (h *NoteHandler) List(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	notes, err := h.repo.List(ctx)
	if err != nil {
		h.logFailure("list", "", err)
		return messageResponse(http.StatusInternalServerError, msgListFailed), nil
	}

	resp, err := jsonResponse(http.StatusOK, notes)
	if err != nil {
		h.logFailure("list", "", err)
		return messageResponse(http.StatusInternalServerError, msgListFailed), nil
	}
	return resp, nil
}

// @Summary Get a note
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} models.Note
// @Failure 404 {string} string "Item not found"
// @Failure 500 {string} string "Error getting the note"
// @Security BearerAuth
// @Router /notes/{id} [get]
func (h *NoteHandler) Get(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParam("id")
	if id == "" {
		return nil, ErrInvalidInput
	}

	note, err := h.repo.Get(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return messageResponse(http.StatusNotFound, msgNotFound), nil
		}
		h.logFailure("get", id, err)
		return messageResponse(http.StatusInternalServerError, msgGetFailed), nil
	}

	resp, err := jsonResponse(http.StatusOK, note)
	if err != nil {
		h.logFailure("get", id, err)
		return messageResponse(http.StatusInternalServerError, msgGetFailed), nil
	}
	return resp, nil
}

func (h *NoteHandler) logFailure(op, id string, err error) {
	fields := logrus.Fields{
		"op":                op,
		"condition_failed":  repositories.IsConditionFailed(err),
		"store_unavailable": repositories.IsUnavailable(err),
	}
	if id != "" {
		fields["id"] = id
	}
	h.logger.WithError(err).WithFields(fields).Error("Note operation failed")
}
