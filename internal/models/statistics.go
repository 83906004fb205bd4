package models

// ItemStatistic holds the derived psychometric measures for one item.
// Recomputed for every run; never persisted.
type ItemStatistic struct {
	Number           int                          `json:"number"`
	Difficulty       float64                      `json:"difficulty"`     // fraction correct, 0..1
	Discrimination   float64                      `json:"discrimination"` // top minus bottom correct-fraction, -1..1
	BandCorrectRates map[AchievementLevel]float64 `json:"band_correct_rates"`
}

// ResponseDistribution counts how students answered one item, with the
// correct marker folded into the designated correct option.
type ResponseDistribution struct {
	Number     int            `json:"number"`
	Choices    map[string]int `json:"choices"` // "1".."5"
	NoResponse int            `json:"no_response"`
}

// AchievementSummary is one row of the per-band summary table.
type AchievementSummary struct {
	Level           AchievementLevel `json:"level"`
	Students        int              `json:"students"`
	Percentage      float64          `json:"percentage"`
	ExamMean        float64          `json:"exam_mean"`
	ExamStdDev      float64          `json:"exam_std_dev"`
	ConvertedMean   float64          `json:"converted_mean"`
	ConvertedStdDev float64          `json:"converted_std_dev"`
}
