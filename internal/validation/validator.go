package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/Manav279/DailyTracker/internal/config"
	"github.com/Manav279/DailyTracker/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a validator using the default limits
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithConfig creates a validator using the configured limits
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsWithinLength reports whether s has at most max characters.
func (v *Validator) IsWithinLength(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}

// IsValidID checks if an identifier was assigned by the store
func (v *Validator) IsValidID(id domain.ID) bool {
	return id.Assigned()
}

// IsValidDate checks for a real YYYY-MM-DD calendar date
func (v *Validator) IsValidDate(s string) bool {
	return domain.IsValidDate(s)
}

// TitleMaxLength returns the configured maximum task title length or the default.
func (v *Validator) TitleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMaxLength
	}
	return 100
}

// JournalMaxLength returns the configured maximum journal length or the default.
func (v *Validator) JournalMaxLength() int {
	if v.config != nil {
		return v.config.Validation.JournalMaxLength
	}
	return 10000
}
