package models

import (
	"testing"
)

func TestNoteValidate(t *testing.T) {
	tests := []struct {
		name    string
		note    *Note
		wantErr bool
	}{
		{"complete note", NewNote("n1", "Groceries", "milk, eggs"), false},
		{"missing id", NewNote("", "Groceries", "milk"), true},
		{"missing title", NewNote("n1", "", "milk"), true},
		{"missing body", NewNote("n1", "Groceries", ""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.note.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNoteContentValidate(t *testing.T) {
	content := &NoteContent{Title: "t"}
	err := content.Validate()
	if err == nil {
		t.Fatal("Expected validation error for missing body")
	}

	messages := ValidationMessages(err)
	if len(messages) != 1 || messages[0] != "Body: required" {
		t.Errorf("Unexpected validation messages: %v", messages)
	}
}
