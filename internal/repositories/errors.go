package repositories

import (
	"errors"
	"fmt"
)

// EntityNote is the entity name used in note repository errors
const EntityNote = "note"

// Common repository errors
var (
	// ErrNotFound is returned when a lookup matches nothing
	ErrNotFound = errors.New("entity not found")

	// ErrConditionFailed is returned when a conditional write is rejected:
	// a duplicate create, or an update/delete whose target does not exist
	ErrConditionFailed = errors.New("conditional check failed")

	// ErrUnavailable is returned for any other store-side failure
	ErrUnavailable = errors.New("store unavailable")

	// ErrInvalidID is returned when an empty ID is provided
	ErrInvalidID = errors.New("invalid ID")
)

// RepositoryError represents a repository-specific error with additional context
type RepositoryError struct {
	Op     string // Operation that failed
	Entity string // Entity type
	ID     string // Entity ID (if applicable)
	Err    error  // Underlying error
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s operation failed for ID %s: %v", e.Entity, e.Op, e.ID, e.Err)
	}

	return fmt.Sprintf("%s %s operation failed: %v", e.Entity, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, entity, id string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		ID:     id,
		Err:    err,
	}
}

// NotFoundError creates a "not found" repository error
func NotFoundError(entity, id string) *RepositoryError {
	return NewRepositoryError("get", entity, id, ErrNotFound)
}

// ConditionFailedError creates a "conditional check failed" repository error
func ConditionFailedError(op, entity, id string) *RepositoryError {
	return NewRepositoryError(op, entity, id, ErrConditionFailed)
}

// UnavailableError wraps a store fault so it matches ErrUnavailable while
// keeping the original cause reachable through errors.As
func UnavailableError(op, entity, id string, cause error) *RepositoryError {
	return NewRepositoryError(op, entity, id, fmt.Errorf("%w: %w", ErrUnavailable, cause))
}

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConditionFailed checks if an error is a rejected conditional write
func IsConditionFailed(err error) bool {
	return errors.Is(err, ErrConditionFailed)
}

// IsUnavailable checks if an error is a store fault
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// ValidateID rejects empty IDs before a request reaches the store
func ValidateID(op, entity, id string) error {
	if id == "" {
		return NewRepositoryError(op, entity, id, ErrInvalidID)
	}
	return nil
}
