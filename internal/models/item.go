package models

type ExpectedDifficulty string

const (
	DifficultyLow    ExpectedDifficulty = "low"
	DifficultyMedium ExpectedDifficulty = "medium"
	DifficultyHigh   ExpectedDifficulty = "high"
)

// ItemDefinition is one row of the item-metadata sheet: a single exam question.
// Parsed once at load time and immutable thereafter; numbers are unique and
// contiguous from 1.
type ItemDefinition struct {
	Number             int                `json:"number" validate:"required,min=1"`
	Standard           string             `json:"standard"` // curriculum-standard tag, free text
	ExpectedDifficulty ExpectedDifficulty `json:"expected_difficulty" validate:"expected_difficulty"`
	Points             float64            `json:"points" validate:"min=0"`
	CorrectOption      string             `json:"correct_option"`
}
