package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/SAP-F-2025/item-analysis-service/internal/models"
)

// EventType represents different types of analysis events
type EventType string

const (
	EventAnalysisCompleted EventType = "analysis.completed"
	EventAnalysisDegraded  EventType = "analysis.degraded" // completed, but with warnings
)

// AnalysisEvent is the base event structure for all analysis events
type AnalysisEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// AnalysisCompletedEvent is published after every successful run.
type AnalysisCompletedEvent struct {
	AnalysisID    string   `json:"analysis_id"`
	Mode          string   `json:"mode"`
	ItemCount     int      `json:"item_count"`
	StudentCount  int      `json:"student_count"`
	ExcludedNames []string `json:"excluded_names,omitempty"`
	Reliability   float64  `json:"reliability"`
	WarningCount  int      `json:"warning_count"`
}

const (
	eventSource  = "item-analysis-service"
	eventVersion = "1.0"
)

// NewAnalysisEvent wraps a payload in the base event envelope.
func NewAnalysisEvent(eventType EventType, data interface{}) *AnalysisEvent {
	return &AnalysisEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}

// CompletedEventFor builds the completed/degraded event for a finished run.
func CompletedEventFor(analysisID string, mode string, itemCount, studentCount int, excluded []string, reliability float64, diagnostics []models.Diagnostic) *AnalysisEvent {
	warnings := 0
	for _, d := range diagnostics {
		if d.Severity != models.SeverityInfo {
			warnings++
		}
	}

	eventType := EventAnalysisCompleted
	if warnings > 0 {
		eventType = EventAnalysisDegraded
	}

	return NewAnalysisEvent(eventType, AnalysisCompletedEvent{
		AnalysisID:    analysisID,
		Mode:          mode,
		ItemCount:     itemCount,
		StudentCount:  studentCount,
		ExcludedNames: excluded,
		Reliability:   reliability,
		WarningCount:  warnings,
	})
}
