package stats

import (
	"math"

	"github.com/SAP-F-2025/item-analysis-service/internal/models"
)

// ClassifyByCutPoints reassigns every student's achievement band from the
// configured score cut points. No-op when the run is in roster-supplied band
// mode (no cut points configured). Returns a new slice; the input records
// are not mutated.
func ClassifyByCutPoints(students []models.StudentRecord, cfg models.AnalysisConfig) []models.StudentRecord {
	if cfg.CutPoints == nil {
		return students
	}

	out := make([]models.StudentRecord, len(students))
	for i, s := range students {
		score := s.TotalScore
		if cfg.RoundScoresBeforeCut {
			score = math.Round(score)
		}
		s.Achievement = BandForScore(score, *cfg.CutPoints)
		out[i] = s
	}
	return out
}

// BandForScore maps a score to its achievement band. Which scheme applies
// follows from which cut points are set: AB/BC alone give the 3-level scheme,
// adding CD/DE the 5-level one, and EI the not-reached floor.
func BandForScore(score float64, cp models.CutPoints) models.AchievementLevel {
	if score >= cp.AB {
		return models.LevelA
	}
	if score >= cp.BC {
		return models.LevelB
	}
	if cp.CD == nil {
		return models.LevelC
	}
	if score >= *cp.CD {
		return models.LevelC
	}
	if cp.DE != nil && score >= *cp.DE {
		return models.LevelD
	}
	if cp.EI == nil {
		return models.LevelE
	}
	if score >= *cp.EI {
		return models.LevelE
	}
	return models.LevelNotReached
}
