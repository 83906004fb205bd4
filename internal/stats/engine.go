// Package stats computes psychometric item statistics over the reconciled
// StudentRecord set. Everything here is a pure function of its inputs.
package stats

import (
	"math"
	"sort"

	"github.com/SAP-F-2025/item-analysis-service/internal/models"
)

// Difficulty is the fraction of students answering item correctly; 0..1.
// Item numbers are 1-based.
func Difficulty(students []models.StudentRecord, item int) float64 {
	if len(students) == 0 {
		return 0
	}
	correct := 0
	for _, s := range students {
		if itemCorrect(s, item) {
			correct++
		}
	}
	return float64(correct) / float64(len(students))
}

// Discrimination is the correct-fraction difference between the top and
// bottom score-quantile groups; -1..1. Group size = max(1, round(n*quantile)).
func Discrimination(students []models.StudentRecord, item int, quantile float64) float64 {
	if len(students) == 0 {
		return 0
	}

	size := groupSize(len(students), quantile)
	ranked := make([]models.StudentRecord, len(students))
	copy(ranked, students)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		return ranked[i].Name < ranked[j].Name
	})

	top := ranked[:size]
	bottom := ranked[len(ranked)-size:]

	return correctFraction(top, item) - correctFraction(bottom, item)
}

func groupSize(n int, quantile float64) int {
	size := int(math.Round(float64(n) * quantile))
	if size < 1 {
		size = 1
	}
	if size > n {
		size = n
	}
	return size
}

// KR20 is the Kuder-Richardson Formula 20 internal-consistency reliability
// over the binary correct/incorrect matrix:
//
//	alpha = (k/(k-1)) * (1 - sum(item variances) / var(total correct))
//
// Returns exactly 0 when the total variance is zero or undefined. Values
// above 1 are possible with pathological inputs and are not clamped.
func KR20(students []models.StudentRecord, itemCount int) float64 {
	if itemCount < 2 || len(students) < 2 {
		return 0
	}

	totals := make([]float64, len(students))
	varSum := 0.0
	for item := 1; item <= itemCount; item++ {
		col := make([]float64, len(students))
		for i, s := range students {
			if itemCorrect(s, item) {
				col[i] = 1
				totals[i]++
			}
		}
		varSum += sampleVariance(col)
	}

	totalVar := sampleVariance(totals)
	if totalVar == 0 || math.IsNaN(totalVar) {
		return 0
	}

	k := float64(itemCount)
	return (k / (k - 1)) * (1 - varSum/totalVar)
}

// BandCorrectRates computes the correct-fraction per achievement band for one
// item; bands with no students score 0.
func BandCorrectRates(students []models.StudentRecord, item int, levels []models.AchievementLevel) map[models.AchievementLevel]float64 {
	rates := make(map[models.AchievementLevel]float64, len(levels))
	for _, level := range levels {
		var group []models.StudentRecord
		for _, s := range students {
			if s.Achievement == level {
				group = append(group, s)
			}
		}
		if len(group) == 0 {
			rates[level] = 0
			continue
		}
		rates[level] = correctFraction(group, item)
	}
	return rates
}

// ItemStatistics derives the full per-item statistic table.
func ItemStatistics(students []models.StudentRecord, items []models.ItemDefinition, cfg models.AnalysisConfig) []models.ItemStatistic {
	levels := cfg.Scheme().Levels()
	result := make([]models.ItemStatistic, 0, len(items))
	for _, item := range items {
		result = append(result, models.ItemStatistic{
			Number:           item.Number,
			Difficulty:       Difficulty(students, item.Number),
			Discrimination:   Discrimination(students, item.Number, cfg.Quantile),
			BandCorrectRates: BandCorrectRates(students, item.Number, levels),
		})
	}
	return result
}

// ResponseDistribution counts option picks for one item, folding the correct
// marker into the designated correct option.
func ResponseDistribution(students []models.StudentRecord, item models.ItemDefinition) models.ResponseDistribution {
	dist := models.ResponseDistribution{
		Number:  item.Number,
		Choices: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0},
	}
	for _, s := range students {
		r := response(s, item.Number)
		switch r.Kind {
		case models.ResponseCorrect:
			if _, ok := dist.Choices[item.CorrectOption]; ok {
				dist.Choices[item.CorrectOption]++
			}
		case models.ResponseChoice:
			dist.Choices[r.Token()]++
		case models.ResponseNone:
			dist.NoResponse++
		}
	}
	return dist
}

// AchievementSummaries builds the per-band summary table: head count, share,
// and mean/stddev of the exam score and of the ratio-converted score.
func AchievementSummaries(students []models.StudentRecord, cfg models.AnalysisConfig) []models.AchievementSummary {
	if len(students) == 0 {
		return nil
	}

	byLevel := make(map[models.AchievementLevel][]float64)
	for _, s := range students {
		byLevel[s.Achievement] = append(byLevel[s.Achievement], s.TotalScore)
	}

	var summaries []models.AchievementSummary
	for _, level := range cfg.Scheme().Levels() {
		scores, ok := byLevel[level]
		if !ok {
			continue
		}
		converted := make([]float64, len(scores))
		for i, v := range scores {
			converted[i] = v * cfg.ScoreRatio / 100
		}
		summaries = append(summaries, models.AchievementSummary{
			Level:           level,
			Students:        len(scores),
			Percentage:      round2(float64(len(scores)) / float64(len(students)) * 100),
			ExamMean:        round2(mean(scores)),
			ExamStdDev:      round2(math.Sqrt(sampleVariance(scores))),
			ConvertedMean:   round2(mean(converted)),
			ConvertedStdDev: round2(math.Sqrt(sampleVariance(converted))),
		})
	}
	return summaries
}

// ===== NUMERIC HELPERS =====

func itemCorrect(s models.StudentRecord, item int) bool {
	return response(s, item).Correct()
}

func response(s models.StudentRecord, item int) models.Response {
	if item < 1 || item > len(s.Responses) {
		return models.NoResponse()
	}
	return s.Responses[item-1]
}

func correctFraction(students []models.StudentRecord, item int) float64 {
	if len(students) == 0 {
		return 0
	}
	correct := 0
	for _, s := range students {
		if itemCorrect(s, item) {
			correct++
		}
	}
	return float64(correct) / float64(len(students))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleVariance uses the n-1 denominator; it is 0 for fewer than two values.
func sampleVariance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values)-1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
