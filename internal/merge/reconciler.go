// Package merge reconciles the independently extracted source tables into
// one StudentRecord set.
package merge

import (
	"sort"
	"strconv"
	"strings"

	"github.com/SAP-F-2025/item-analysis-service/internal/models"
	"github.com/SAP-F-2025/item-analysis-service/internal/sheet"
)

// Mode identifies which merge path a run took, selected by which inputs were
// non-empty.
type Mode string

const (
	ModeRosterOnly  Mode = "roster-only"  // non-item-based assessments
	ModeAnswersOnly Mode = "answers-only" // no roster uploaded, or roster load degraded
	ModeJoined      Mode = "joined"       // inner join, roster authoritative
)

// Result is the reconciliation outcome. Mismatches are diagnostics, not
// errors: the caller decides whether to proceed with partial data.
type Result struct {
	Mode        Mode                   `json:"mode"`
	Students    []models.StudentRecord `json:"students"`
	Excluded    []string               `json:"excluded"` // answer-sheet names absent from the roster
	Diagnostics []models.Diagnostic    `json:"diagnostics"`
}

// Reconcile merges the unioned answer-sheet rows and roster rows. The output
// is deterministic regardless of input accumulation order: records are sorted
// by name and deduplicated to one per distinct name.
func Reconcile(answers []models.RawStudentResponse, grades []models.GradeRecord, cfg models.AnalysisConfig) *Result {
	switch {
	case len(answers) == 0 && len(grades) == 0:
		return &Result{
			Mode: ModeAnswersOnly,
			Diagnostics: []models.Diagnostic{models.NewDiagnostic(
				models.SeverityError, "", "no data could be loaded from any source")},
		}
	case len(answers) == 0:
		return rosterOnly(grades, cfg)
	case len(grades) == 0:
		return answersOnly(answers, cfg)
	default:
		return joined(answers, grades, cfg)
	}
}

func rosterOnly(grades []models.GradeRecord, cfg models.AnalysisConfig) *Result {
	result := &Result{Mode: ModeRosterOnly}

	for _, g := range dedupGrades(grades) {
		if g.Achievement == "" {
			continue
		}
		blank := make([]models.Response, cfg.MaxItems)
		for i := range blank {
			blank[i] = models.NoResponse()
		}
		result.Students = append(result.Students, models.StudentRecord{
			ID:          g.ID,
			Name:        g.Name,
			TotalScore:  0,
			Responses:   blank,
			Achievement: g.Achievement,
		})
	}

	sortStudents(result.Students)
	return result
}

func answersOnly(answers []models.RawStudentResponse, cfg models.AnalysisConfig) *Result {
	result := &Result{Mode: ModeAnswersOnly}

	for _, a := range dedupAnswers(answers) {
		result.Students = append(result.Students, models.StudentRecord{
			ID:         a.ID,
			Name:       strings.TrimSpace(a.Name),
			Classroom:  a.Classroom,
			TotalScore: coerceScore(a.TotalScoreRaw),
			Responses:  a.Responses,
			// No roster to copy a band from; E stands until the cut-point
			// classifier reassigns it.
			Achievement: models.LevelE,
		})
	}

	sortStudents(result.Students)
	return result
}

// joined inner-joins on trimmed name. The roster is authoritative for
// membership: answer-sheet students missing from it are excluded and reported
// (the usual cause is a transfer), never synthesized. Per joined row the
// answer-sheet-derived ID wins; the roster ID is the fallback.
func joined(answers []models.RawStudentResponse, grades []models.GradeRecord, cfg models.AnalysisConfig) *Result {
	result := &Result{Mode: ModeJoined}

	roster := make(map[string]models.GradeRecord)
	for _, g := range dedupGrades(grades) {
		roster[g.Name] = g
	}

	answerRows := dedupAnswers(answers)
	for _, a := range answerRows {
		name := strings.TrimSpace(a.Name)
		g, ok := roster[name]
		if !ok {
			result.Excluded = append(result.Excluded, name)
			continue
		}
		if g.Achievement == "" {
			continue
		}

		id := a.ID
		if id == "" {
			id = g.ID
		}

		result.Students = append(result.Students, models.StudentRecord{
			ID:          id,
			Name:        name,
			Classroom:   a.Classroom,
			TotalScore:  coerceScore(a.TotalScoreRaw),
			Responses:   a.Responses,
			Achievement: g.Achievement,
		})
	}

	sortStudents(result.Students)
	sort.Strings(result.Excluded)

	if len(result.Excluded) > 0 {
		result.Diagnostics = append(result.Diagnostics, models.NewDiagnostic(
			models.SeverityWarning, "",
			"%d students excluded: names present in answer sheets but not in roster (answer sheets: %d, roster: %d); likely transfers",
			len(result.Excluded), len(answerRows), len(roster)))
	}

	if len(result.Students) == 0 {
		result.Diagnostics = append(result.Diagnostics, models.NewDiagnostic(
			models.SeverityError, "",
			"join produced no rows; the name sets do not match (answer-sheet sample: %s / roster sample: %s)",
			strings.Join(sampleNames(answerNames(answerRows)), ", "),
			strings.Join(sampleNames(rosterNames(roster)), ", ")))
	}

	return result
}

// ===== HELPERS =====

// dedupAnswers trims names, drops empties, sorts for determinism and keeps
// the first row per distinct name.
func dedupAnswers(answers []models.RawStudentResponse) []models.RawStudentResponse {
	rows := make([]models.RawStudentResponse, 0, len(answers))
	for _, a := range answers {
		a.Name = strings.TrimSpace(a.Name)
		if a.Name == "" {
			continue
		}
		rows = append(rows, a)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		if rows[i].Classroom != rows[j].Classroom {
			return rows[i].Classroom < rows[j].Classroom
		}
		return rows[i].ID < rows[j].ID
	})

	out := rows[:0]
	seen := make(map[string]bool)
	for _, a := range rows {
		if seen[a.Name] {
			continue
		}
		seen[a.Name] = true
		out = append(out, a)
	}
	return out
}

func dedupGrades(grades []models.GradeRecord) []models.GradeRecord {
	rows := make([]models.GradeRecord, 0, len(grades))
	for _, g := range grades {
		g.Name = strings.TrimSpace(g.Name)
		if g.Name == "" {
			continue
		}
		rows = append(rows, g)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].ID < rows[j].ID
	})

	out := rows[:0]
	seen := make(map[string]bool)
	for _, g := range rows {
		if seen[g.Name] {
			continue
		}
		seen[g.Name] = true
		out = append(out, g)
	}
	return out
}

func sortStudents(students []models.StudentRecord) {
	sort.SliceStable(students, func(i, j int) bool {
		if students[i].Name != students[j].Name {
			return students[i].Name < students[j].Name
		}
		return students[i].ID < students[j].ID
	})
}

// coerceScore parses a raw total-score cell, substituting 0 for anything
// unparseable.
func coerceScore(raw string) float64 {
	v, err := strconv.ParseFloat(sheet.CleanNumericText(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

const diagnosticSampleSize = 5

func sampleNames(names []string) []string {
	sort.Strings(names)
	if len(names) > diagnosticSampleSize {
		names = names[:diagnosticSampleSize]
	}
	return names
}

func answerNames(rows []models.RawStudentResponse) []string {
	names := make([]string, 0, len(rows))
	for _, a := range rows {
		names = append(names, a.Name)
	}
	return names
}

func rosterNames(roster map[string]models.GradeRecord) []string {
	names := make([]string, 0, len(roster))
	for name := range roster {
		names = append(names, name)
	}
	return names
}
