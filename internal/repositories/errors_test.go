package repositories

import (
	"errors"
	"testing"
)

func TestRepositoryErrorClassification(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name            string
		err             error
		notFound        bool
		conditionFailed bool
		unavailable     bool
	}{
		{"not found", NotFoundError(EntityNote, "n1"), true, false, false},
		{"condition failed", ConditionFailedError("create", EntityNote, "n1"), false, true, false},
		{"unavailable", UnavailableError("scan", EntityNote, "", cause), false, false, true},
		{"plain error", cause, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsNotFound(tt.err) != tt.notFound {
				t.Errorf("IsNotFound() = %v, want %v", IsNotFound(tt.err), tt.notFound)
			}
			if IsConditionFailed(tt.err) != tt.conditionFailed {
				t.Errorf("IsConditionFailed() = %v, want %v", IsConditionFailed(tt.err), tt.conditionFailed)
			}
			if IsUnavailable(tt.err) != tt.unavailable {
				t.Errorf("IsUnavailable() = %v, want %v", IsUnavailable(tt.err), tt.unavailable)
			}
		})
	}
}

func TestUnavailableErrorKeepsCause(t *testing.T) {
	cause := errors.New("throttled")
	err := UnavailableError("put", EntityNote, "n1", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected the original cause to be reachable with errors.Is")
	}

	want := "note put operation failed for ID n1: store unavailable: throttled"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}

func TestValidateID(t *testing.T) {
	if err := ValidateID("get", EntityNote, ""); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID, got %v", err)
	}
	if err := ValidateID("get", EntityNote, "n1"); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
}
