package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/SAP-F-2025/item-analysis-service/internal/errors"
	"github.com/SAP-F-2025/item-analysis-service/internal/models"
)

func ptr(v float64) *float64 { return &v }

func TestValidateStructCutPointOrdering(t *testing.T) {
	v := NewValidator()

	cfg := models.DefaultAnalysisConfig()
	cfg.CutPoints = &models.CutPoints{AB: 60, BC: 80}

	err := v.ValidateStruct(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cut_points")

	cfg.CutPoints = &models.CutPoints{AB: 80, BC: 60}
	assert.NoError(t, v.ValidateStruct(cfg))

	// nil cut points are the roster-supplied-band mode, not an error.
	cfg.CutPoints = nil
	assert.NoError(t, v.ValidateStruct(cfg))
}

func TestValidateStructCutPointOrderingFiveLevels(t *testing.T) {
	v := NewValidator()

	cfg := models.DefaultAnalysisConfig()
	cfg.CutPoints = &models.CutPoints{AB: 90, BC: 80, CD: ptr(70), DE: ptr(75)}
	require.Error(t, v.ValidateStruct(cfg))

	cfg.CutPoints = &models.CutPoints{AB: 90, BC: 80, CD: ptr(70), DE: ptr(60), EI: ptr(40)}
	assert.NoError(t, v.ValidateStruct(cfg))
}

func TestValidateStructAchievementLevel(t *testing.T) {
	v := NewValidator()

	record := models.GradeRecord{Name: "김철수", Achievement: "A"}
	assert.NoError(t, v.ValidateStruct(record))

	record.Achievement = models.LevelNotReached
	assert.NoError(t, v.ValidateStruct(record))

	record.Achievement = "F"
	err := v.ValidateStruct(record)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "achievement")

	// Empty means the roster row carried no band; the reconciler skips it.
	record.Achievement = ""
	assert.NoError(t, v.ValidateStruct(record))
}

func TestValidateStructExpectedDifficulty(t *testing.T) {
	v := NewValidator()

	item := models.ItemDefinition{Number: 1, ExpectedDifficulty: models.DifficultyHigh, Points: 10}
	assert.NoError(t, v.ValidateStruct(item))

	item.ExpectedDifficulty = "impossible"
	require.Error(t, v.ValidateStruct(item))
}

func TestValidateStructReturnsSharedErrorType(t *testing.T) {
	v := NewValidator()

	record := models.GradeRecord{Name: "김철수", Achievement: "F"}
	err := v.ValidateStruct(record)
	require.Error(t, err)

	var ve apperrors.ValidationErrors
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve, 1)
	assert.Equal(t, "achievement", ve[0].Field)
	assert.Equal(t, "achievement_level", ve[0].Rule)
	assert.Contains(t, ve[0].Message, "achievement level")
}
