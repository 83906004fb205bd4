package services

import (
	"errors"
	"fmt"

	apperrors "github.com/SAP-F-2025/item-analysis-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Analysis specific errors
	ErrNoInputFiles    = errors.New("at least one input file is required")
	ErrItemInfoInvalid = errors.New("item-metadata sheet could not be parsed")
	ErrNoUsableData    = errors.New("no data could be loaded from any source")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// FileError marks a failure tied to a single uploaded file. It surfaces as an
// error only for files with no per-file fallback, like the item-metadata
// sheet; answer-sheet and roster failures stay diagnostics.
type FileError struct {
	File   string `json:"file"`
	Stage  string `json:"stage"` // read, extract
	Reason string `json:"reason"`
}

func (fe *FileError) Error() string {
	return fmt.Sprintf("file %q failed during %s: %s", fe.File, fe.Stage, fe.Reason)
}

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

func NewFileError(file, stage, reason string) *FileError {
	return &FileError{File: file, Stage: stage, Reason: reason}
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsBadInput checks if error should map to a 400 response
func IsBadInput(err error) bool {
	return errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrNoInputFiles) ||
		errors.Is(err, ErrItemInfoInvalid) ||
		errors.Is(err, ErrNoUsableData) ||
		IsValidation(err)
}
