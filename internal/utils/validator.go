package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/SAP-F-2025/item-analysis-service/internal/errors"
	"github.com/SAP-F-2025/item-analysis-service/internal/models"
)

// Validator wraps the struct validator with the domain's custom rules
// registered once.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the centralized validator instance
func NewValidator() *Validator {
	validate := validator.New()
	RegisterCustomValidators(validate)
	return &Validator{validate: validate}
}

// ValidateStruct validates struct tags, converting field failures to the
// shared ValidationErrors type so callers surface readable messages.
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	if _, ok := err.(validator.ValidationErrors); ok {
		return apperrors.ToValidationErrors(err)
	}
	return err
}

// Custom validation functions

func ValidateAchievementLevel(fl validator.FieldLevel) bool {
	validLevels := []models.AchievementLevel{
		models.LevelA,
		models.LevelB,
		models.LevelC,
		models.LevelD,
		models.LevelE,
		models.LevelNotReached,
	}

	value := fl.Field().String()
	for _, validLevel := range validLevels {
		if string(validLevel) == value {
			return true
		}
	}
	return false
}

func ValidateExpectedDifficulty(fl validator.FieldLevel) bool {
	validLevels := []models.ExpectedDifficulty{
		models.DifficultyLow,
		models.DifficultyMedium,
		models.DifficultyHigh,
	}

	value := fl.Field().String()
	for _, validLevel := range validLevels {
		if string(validLevel) == value {
			return true
		}
	}
	return false
}

// ValidateCutPoints checks that configured cut points decrease from AB down.
func ValidateCutPoints(fl validator.FieldLevel) bool {
	cp, ok := fl.Field().Interface().(models.CutPoints)
	if !ok {
		return false
	}
	prev := cp.AB
	for _, next := range []*float64{&cp.BC, cp.CD, cp.DE, cp.EI} {
		if next == nil {
			continue
		}
		if *next > prev {
			return false
		}
		prev = *next
	}
	return true
}

// RegisterCustomValidators registers all custom validators
func RegisterCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("achievement_level", ValidateAchievementLevel)
	validate.RegisterValidation("expected_difficulty", ValidateExpectedDifficulty)
	validate.RegisterValidation("cut_points", ValidateCutPoints)

	// Register custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
