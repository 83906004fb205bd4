package models

import "fmt"

type DiagnosticSeverity string

const (
	SeverityInfo    DiagnosticSeverity = "info"
	SeverityWarning DiagnosticSeverity = "warning"
	SeverityError   DiagnosticSeverity = "error"
)

// Diagnostic is an operator-facing message about a recoverable condition:
// a file whose layout could not be inferred, students excluded by the
// roster join, and so on. Diagnostics are results, not errors: the batch
// keeps going.
type Diagnostic struct {
	Severity DiagnosticSeverity `json:"severity"`
	File     string             `json:"file,omitempty"`
	Message  string             `json:"message"`
}

func NewDiagnostic(severity DiagnosticSeverity, file, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Severity: severity,
		File:     file,
		Message:  fmt.Sprintf(format, args...),
	}
}
