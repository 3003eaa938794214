package handlers

import (
	"errors"
)

// ErrInvalidInput is returned, not answered, when a request lacks its body
// or path id. The router is the layer that turns it into a response.
var ErrInvalidInput = errors.New("invalid input data")

// Response messages. Store failures of every kind collapse to the
// operation's fixed message.
const (
	msgInvalidInput   = "Invalid input data"
	msgCreated        = "A new note was created"
	msgUpdatedFmt     = "The note with id %s was updated successfully"
	msgDeletedFmt     = "The note with id %s was deleted successfully"
	msgNotFound       = "Item not found"
	msgCreateFailed   = "Error creating the note"
	msgUpdateFailed   = "Error updating the note"
	msgDeleteFailed   = "Error deleting the note"
	msgListFailed     = "Error returning all notes"
	msgGetFailed      = "Error getting the note"
	msgRouteNotFound  = "Not found"
	msgInternalFailed = "Internal server error"
)
