package extract

import (
	"github.com/SAP-F-2025/item-analysis-service/internal/identity"
	"github.com/SAP-F-2025/item-analysis-service/internal/models"
	"github.com/SAP-F-2025/item-analysis-service/internal/sheet"
)

// achievementKeywords are the header variants for the achievement-band column.
var achievementKeywords = []string{"성취도", "등급"}

// GradeRosterResult is the per-file outcome of roster extraction. ok=false is
// the fatal-for-file condition: neither the name nor the achievement header
// could be located, and there is no fallback interpretation for a roster.
type GradeRosterResult struct {
	Rows        []models.GradeRecord
	Diagnostics []models.Diagnostic
}

// GradeRoster extracts {ID, name, achievement} rows from one grade-roster
// sheet.
func GradeRoster(s *sheet.Sheet, filename string, cfg models.AnalysisConfig) (GradeRosterResult, bool) {
	result := GradeRosterResult{}

	nameRow, nameCol, nameOK := sheet.LocateKeyword(s.Rows, cfg.RosterPreviewRows, nameKeywords...)
	gradeRow, gradeCol, gradeOK := sheet.LocateKeyword(s.Rows, cfg.RosterPreviewRows, achievementKeywords...)

	if !nameOK || !gradeOK {
		result.Diagnostics = append(result.Diagnostics, models.NewDiagnostic(
			models.SeverityError, filename,
			"name and achievement headers not found; roster file skipped"))
		return result, false
	}

	// Data starts below whichever header sits lower.
	dataStart := nameRow + 1
	if gradeRow >= nameRow {
		dataStart = gradeRow + 1
	}

	nameCol = correctNameColumn(s, dataStart, nameCol, cfg)
	classSeatCol := rosterClassSeatColumn(s, dataStart, nameCol, cfg)

	for row := dataStart; row < s.RowCount(); row++ {
		name := s.Cell(row, nameCol)
		if name == "" || annotationLabels[name] {
			continue
		}

		id := ""
		if classSeatCol != sheet.NotFound {
			id = identity.StudentID(s.Cell(row, classSeatCol), cfg.GradeDigit)
		}

		result.Rows = append(result.Rows, models.GradeRecord{
			ID:          id,
			Name:        name,
			Achievement: models.AchievementLevel(s.Cell(row, gradeCol)),
		})
	}

	return result, true
}

// correctNameColumn validates the header-derived name column against the
// sampled data and, when it fails, probes up to three columns right for a
// better candidate. The roster check is looser than the answer-sheet one:
// any digit-free string of length >= 2 counts as a name.
func correctNameColumn(s *sheet.Sheet, dataStart, nameCol int, cfg models.AnalysisConfig) int {
	count := func(col int) int {
		samples := s.ColumnSampleRaw(dataStart, col, cfg.SampleSize)
		return sheet.CountMatching(samples, identity.LooksLikeName)
	}

	if count(nameCol) >= cfg.NameMinHits {
		return nameCol
	}
	for offset := 1; offset <= 3; offset++ {
		if count(nameCol+offset) >= cfg.NameMinHits {
			return nameCol + offset
		}
	}
	return nameCol
}

// rosterClassSeatColumn checks the single column immediately left of the name
// column; rosters keep the class/seat code there when they carry one at all.
func rosterClassSeatColumn(s *sheet.Sheet, dataStart, nameCol int, cfg models.AnalysisConfig) int {
	col := nameCol - 1
	if col < 0 {
		return sheet.NotFound
	}
	samples := s.ColumnSampleRaw(dataStart, col, cfg.SampleSize)
	if sheet.CountMatching(samples, identity.IsClassSeatCode) >= cfg.NameMinHits {
		return col
	}
	return sheet.NotFound
}
