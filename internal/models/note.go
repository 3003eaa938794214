package models

// Note is the only persisted entity. ID is assigned by the caller and is the
// table's partition key, stored under the attribute name "notesId".
type Note struct {
	ID    string `json:"id" dynamodbav:"notesId" validate:"required"`
	Title string `json:"title" dynamodbav:"title" validate:"required"`
	Body  string `json:"body" dynamodbav:"body" validate:"required"`
}

// NoteContent is the replaceable part of a note, as sent to the update endpoint
type NoteContent struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// NewNote creates a note from its id and content
func NewNote(id, title, body string) *Note {
	return &Note{
		ID:    id,
		Title: title,
		Body:  body,
	}
}

// Validate checks that every field of the note is present
func (n *Note) Validate() error {
	return validate.Struct(n)
}

// Validate checks that both title and body are present
func (c *NoteContent) Validate() error {
	return validate.Struct(c)
}
