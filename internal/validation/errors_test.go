package validation

import (
	"fmt"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "title", Message: "is required"}}, "validation error for field 'title': is required"},
		{"Multiple errors", []FieldError{
			{Field: "title", Message: "is required"},
			{Field: "pillar", Message: "is required"},
		}, "multiple validation errors: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := (&ValidationError{Errors: tt.errors}).Error()
			if !strings.HasPrefix(result, tt.expectError) {
				t.Errorf("ValidationError.Error() = %v, expected prefix %v", result, tt.expectError)
			}
		})
	}
}

func TestValidationError_ErrOrNil(t *testing.T) {
	ve := NewValidationError()
	if ve.ErrOrNil() != nil {
		t.Fatal("empty ValidationError should yield nil")
	}

	ve.AddRequiredError("title")
	if err := ve.ErrOrNil(); err == nil || !IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestValidationError_Merge(t *testing.T) {
	inner := NewValidationError()
	inner.AddRequiredError("date")
	inner.AddInvalidValueError("status", "done", "must be completed or skipped")

	outer := NewValidationError()
	outer.Merge("taskLogs[2]", inner)
	outer.Merge("ignored", fmt.Errorf("not a validation error"))
	outer.Merge("", nil)

	if len(outer.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(outer.Errors))
	}
	if got := outer.Errors[0].Field; got != "taskLogs[2].date" {
		t.Errorf("field = %q", got)
	}
	if len(outer.GetFieldErrors("taskLogs[2].status")) != 1 {
		t.Error("expected status error under prefixed field")
	}
}

func TestIsValidationError_Wrapped(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("title")

	if !IsValidationError(fmt.Errorf("add task: %w", ve)) {
		t.Error("wrapped ValidationError not detected")
	}
	if IsValidationError(fmt.Errorf("plain")) {
		t.Error("plain error detected as ValidationError")
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	if got := ve.GetUserFriendlyMessage(); got != "Input validation failed" {
		t.Errorf("got %q", got)
	}

	ve.AddRequiredError("title")
	if got := ve.GetUserFriendlyMessage(); got != "title is required" {
		t.Errorf("got %q", got)
	}

	ve.AddInvalidLengthError("content", 20001, 10000)
	got := ve.GetUserFriendlyMessage()
	if !strings.Contains(got, "- title is required") || !strings.Contains(got, "- content must be at most 10000 characters long") {
		t.Errorf("got %q", got)
	}
}
