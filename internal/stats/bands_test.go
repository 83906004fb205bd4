package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/item-analysis-service/internal/models"
)

func ptr(v float64) *float64 { return &v }

func TestBandForScoreThreeLevels(t *testing.T) {
	cp := models.CutPoints{AB: 80, BC: 60}

	assert.Equal(t, models.LevelA, BandForScore(95, cp))
	assert.Equal(t, models.LevelA, BandForScore(80, cp)) // boundary is inclusive
	assert.Equal(t, models.LevelB, BandForScore(79.9, cp))
	assert.Equal(t, models.LevelC, BandForScore(0, cp))
}

func TestBandForScoreFiveLevels(t *testing.T) {
	cp := models.CutPoints{AB: 90, BC: 80, CD: ptr(70.0), DE: ptr(60.0)}

	assert.Equal(t, models.LevelA, BandForScore(90, cp))
	assert.Equal(t, models.LevelB, BandForScore(85, cp))
	assert.Equal(t, models.LevelC, BandForScore(75, cp))
	assert.Equal(t, models.LevelD, BandForScore(65, cp))
	assert.Equal(t, models.LevelE, BandForScore(10, cp))
}

func TestBandForScoreNotReachedFloor(t *testing.T) {
	cp := models.CutPoints{AB: 90, BC: 80, CD: ptr(70.0), DE: ptr(60.0), EI: ptr(40.0)}

	assert.Equal(t, models.LevelE, BandForScore(45, cp))
	assert.Equal(t, models.LevelE, BandForScore(40, cp))
	assert.Equal(t, models.LevelNotReached, BandForScore(39.9, cp))
}

func TestClassifyByCutPoints(t *testing.T) {
	students := []models.StudentRecord{
		{Name: "김철수", TotalScore: 95, Achievement: models.LevelC},
		{Name: "이영희", TotalScore: 50, Achievement: models.LevelA},
	}
	cfg := models.DefaultAnalysisConfig()
	cfg.CutPoints = &models.CutPoints{AB: 80, BC: 60}

	out := ClassifyByCutPoints(students, cfg)

	require.Len(t, out, 2)
	assert.Equal(t, models.LevelA, out[0].Achievement)
	assert.Equal(t, models.LevelC, out[1].Achievement)

	// Input records stay untouched.
	assert.Equal(t, models.LevelC, students[0].Achievement)
}

func TestClassifyByCutPointsNoOpWithoutCutPoints(t *testing.T) {
	students := []models.StudentRecord{
		{Name: "김철수", TotalScore: 95, Achievement: models.LevelC},
	}

	out := ClassifyByCutPoints(students, models.DefaultAnalysisConfig())

	assert.Equal(t, models.LevelC, out[0].Achievement)
}

func TestClassifyByCutPointsRounding(t *testing.T) {
	students := []models.StudentRecord{
		{Name: "김철수", TotalScore: 79.5},
	}
	cfg := models.DefaultAnalysisConfig()
	cfg.CutPoints = &models.CutPoints{AB: 80, BC: 60}

	// Without rounding 79.5 misses the A cut.
	out := ClassifyByCutPoints(students, cfg)
	assert.Equal(t, models.LevelB, out[0].Achievement)

	// With rounding it reaches exactly 80.
	cfg.RoundScoresBeforeCut = true
	out = ClassifyByCutPoints(students, cfg)
	assert.Equal(t, models.LevelA, out[0].Achievement)
}
