package models

// RawStudentResponse is one extracted answer-sheet row before reconciliation.
// Owned by the answer-sheet extractor until the reconciler consumes it; never
// mutated after creation.
type RawStudentResponse struct {
	ID            string     `json:"id"`   // provisional, may be empty
	Name          string     `json:"name"` // raw, unstripped
	Classroom     string     `json:"classroom,omitempty"`
	TotalScoreRaw string     `json:"total_score_raw"`
	Responses     []Response `json:"responses"` // index i holds item i+1
}

// GradeRecord is one extracted grade-roster row.
type GradeRecord struct {
	ID          string           `json:"id"` // may be empty
	Name        string           `json:"name"`
	Achievement AchievementLevel `json:"achievement" validate:"omitempty,achievement_level"`
}

// StudentRecord is the unit of analysis after reconciliation: exactly one per
// distinct student name in the run's authoritative source. TotalScore is
// always finite (0 when the sheet value was unparseable) and Achievement is
// always one of the configured band set.
type StudentRecord struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"` // trimmed
	Classroom   string           `json:"classroom,omitempty"`
	TotalScore  float64          `json:"total_score"`
	Responses   []Response       `json:"responses"`
	Achievement AchievementLevel `json:"achievement"`
}
