package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/item-analysis-service/internal/models"
)

// student builds a record whose item responses are given as correct flags.
func student(name string, score float64, band models.AchievementLevel, correct ...bool) models.StudentRecord {
	responses := make([]models.Response, len(correct))
	for i, c := range correct {
		if c {
			responses[i] = models.CorrectResponse()
		} else {
			responses[i] = models.Response{Kind: models.ResponseChoice, Option: 5}
		}
	}
	return models.StudentRecord{
		Name:        name,
		TotalScore:  score,
		Achievement: band,
		Responses:   responses,
	}
}

func TestDifficulty(t *testing.T) {
	students := []models.StudentRecord{
		student("김철수", 40, models.LevelA, true, true),
		student("이영희", 10, models.LevelD, false, true),
	}

	assert.Equal(t, 0.5, Difficulty(students, 1))
	assert.Equal(t, 1.0, Difficulty(students, 2))
	// Item past the response slice counts as no response, never correct.
	assert.Equal(t, 0.0, Difficulty(students, 3))
	assert.Equal(t, 0.0, Difficulty(nil, 1))
}

func TestDifficultyBounds(t *testing.T) {
	students := []models.StudentRecord{
		student("가", 1, models.LevelA, true),
		student("나", 2, models.LevelA, false),
		student("다", 3, models.LevelA, true),
	}
	for item := 0; item <= 3; item++ {
		d := Difficulty(students, item)
		assert.GreaterOrEqual(t, d, 0.0)
		assert.LessOrEqual(t, d, 1.0)
	}
}

func TestDiscrimination(t *testing.T) {
	// Quartile groups of one: top student correct, bottom student wrong.
	students := []models.StudentRecord{
		student("김철수", 40, models.LevelA, true),
		student("이영희", 30, models.LevelB, true),
		student("박민수", 20, models.LevelC, false),
		student("정수진", 10, models.LevelD, false),
	}

	assert.Equal(t, 1.0, Discrimination(students, 1, 0.25))
	assert.Equal(t, 0.0, Discrimination(nil, 1, 0.25))
}

func TestDiscriminationNegative(t *testing.T) {
	// Only the lowest scorer answered correctly.
	students := []models.StudentRecord{
		student("김철수", 40, models.LevelA, false),
		student("이영희", 30, models.LevelB, false),
		student("박민수", 20, models.LevelC, false),
		student("정수진", 10, models.LevelD, true),
	}

	assert.Equal(t, -1.0, Discrimination(students, 1, 0.25))
}

func TestGroupSize(t *testing.T) {
	tests := []struct {
		n        int
		quantile float64
		want     int
	}{
		{4, 0.25, 1},
		{10, 0.25, 3}, // round(2.5) = 3, half away from zero
		{2, 0.25, 1},  // never below one
		{3, 0.5, 2},
		{1, 0.5, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, groupSize(tt.n, tt.quantile), "n=%d q=%v", tt.n, tt.quantile)
	}
}

func TestKR20(t *testing.T) {
	students := []models.StudentRecord{
		student("가", 2, models.LevelA, true, true),
		student("나", 1, models.LevelB, true, false),
		student("다", 0, models.LevelC, false, false),
		student("라", 2, models.LevelA, true, true),
	}

	assert.InDelta(t, 0.7273, KR20(students, 2), 0.0001)
}

func TestKR20ZeroVariance(t *testing.T) {
	// Everyone has the same total: reliability is exactly 0, not NaN.
	students := []models.StudentRecord{
		student("가", 2, models.LevelA, true, false),
		student("나", 2, models.LevelA, false, true),
	}

	assert.Equal(t, 0.0, KR20(students, 2))
}

func TestKR20DegenerateInputs(t *testing.T) {
	students := []models.StudentRecord{
		student("가", 2, models.LevelA, true, true),
	}

	// One student, one item, nobody: each falls short of the formula's domain.
	assert.Equal(t, 0.0, KR20(students, 2))
	assert.Equal(t, 0.0, KR20(students, 1))
	assert.Equal(t, 0.0, KR20(nil, 5))
}

func TestBandCorrectRates(t *testing.T) {
	students := []models.StudentRecord{
		student("김철수", 40, models.LevelA, true),
		student("이영희", 35, models.LevelA, false),
		student("박민수", 10, models.LevelC, false),
	}
	levels := []models.AchievementLevel{models.LevelA, models.LevelB, models.LevelC}

	rates := BandCorrectRates(students, 1, levels)

	assert.Equal(t, 0.5, rates[models.LevelA])
	assert.Equal(t, 0.0, rates[models.LevelB]) // empty band
	assert.Equal(t, 0.0, rates[models.LevelC])
}

func TestItemStatistics(t *testing.T) {
	students := []models.StudentRecord{
		student("김철수", 40, models.LevelA, true, true),
		student("이영희", 30, models.LevelB, true, false),
		student("박민수", 20, models.LevelC, false, false),
		student("정수진", 10, models.LevelD, false, false),
	}
	items := []models.ItemDefinition{
		{Number: 1, CorrectOption: "1"},
		{Number: 2, CorrectOption: "3"},
	}

	result := ItemStatistics(students, items, models.DefaultAnalysisConfig())

	require.Len(t, result, 2)
	assert.Equal(t, 1, result[0].Number)
	assert.Equal(t, 0.5, result[0].Difficulty)
	assert.Equal(t, 1.0, result[0].Discrimination)
	assert.Equal(t, 0.25, result[1].Difficulty)
	assert.Contains(t, result[0].BandCorrectRates, models.LevelNotReached)
}

func TestResponseDistribution(t *testing.T) {
	students := []models.StudentRecord{
		{Responses: []models.Response{models.CorrectResponse()}},
		{Responses: []models.Response{{Kind: models.ResponseChoice, Option: 3}}},
		{Responses: []models.Response{{Kind: models.ResponseChoice, Option: 3}}},
		{Responses: []models.Response{models.NoResponse()}},
	}
	item := models.ItemDefinition{Number: 1, CorrectOption: "2"}

	dist := ResponseDistribution(students, item)

	assert.Equal(t, 1, dist.Choices["2"]) // correct marker folded into option 2
	assert.Equal(t, 2, dist.Choices["3"])
	assert.Equal(t, 0, dist.Choices["1"])
	assert.Equal(t, 1, dist.NoResponse)
}

func TestAchievementSummaries(t *testing.T) {
	students := []models.StudentRecord{
		student("김철수", 40, models.LevelA),
		student("이영희", 30, models.LevelA),
		student("박민수", 10, models.LevelC),
	}
	cfg := models.DefaultAnalysisConfig()
	cfg.ScoreRatio = 50

	summaries := AchievementSummaries(students, cfg)

	require.Len(t, summaries, 2)

	a := summaries[0]
	assert.Equal(t, models.LevelA, a.Level)
	assert.Equal(t, 2, a.Students)
	assert.InDelta(t, 66.67, a.Percentage, 0.001)
	assert.InDelta(t, 35.0, a.ExamMean, 0.001)
	assert.InDelta(t, 7.07, a.ExamStdDev, 0.001)
	assert.InDelta(t, 17.5, a.ConvertedMean, 0.001)

	c := summaries[1]
	assert.Equal(t, models.LevelC, c.Level)
	assert.Equal(t, 0.0, c.ExamStdDev) // single member, sample stddev undefined

	assert.Empty(t, AchievementSummaries(nil, cfg))
}
