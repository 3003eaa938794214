package models

import (
	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata,
// so a single instance is shared by all models.
var validate = validator.New()

// ValidationMessages flattens validator errors into "field: tag" pairs
func ValidationMessages(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fieldErr.Field()+": "+fieldErr.Tag())
	}
	return messages
}
