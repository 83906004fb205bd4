package extract

import (
	"fmt"

	"github.com/SAP-F-2025/item-analysis-service/internal/identity"
	"github.com/SAP-F-2025/item-analysis-service/internal/models"
	"github.com/SAP-F-2025/item-analysis-service/internal/sheet"
)

// nameKeywords are the header variants NEIS uses for the student-name column.
var nameKeywords = []string{"성명", "이름"}

// annotationLabels are the non-student rows that follow an answer-sheet
// header: correct-answer and point-value rows plus summary rows.
var annotationLabels = map[string]bool{
	"정답":   true,
	"배점":   true,
	"합계":   true,
	"평균":   true,
	"None": true,
	"nan":  true,
}

// answerDataOffset is the distance from the header row to the first student
// row; the header is followed by the correct-answer and point-value rows.
const answerDataOffset = 3

// AnswerSheetResult is the per-file outcome of answer-sheet extraction.
// A file whose layout cannot be inferred yields zero rows and a warning
// diagnostic; the batch continues (per-file isolation).
type AnswerSheetResult struct {
	Rows        []models.RawStudentResponse
	Diagnostics []models.Diagnostic
	Strategy    string // name of the header strategy that matched
}

// headerStrategy locates the answer-sheet header row and item columns.
// Strategies are tried in declaration order until one matches; keeping the
// order as data makes the fallback chain testable on its own.
type headerStrategy struct {
	name   string
	locate func(rows [][]string, cfg models.AnalysisConfig) (sheet.ItemHeader, bool)
}

var answerHeaderStrategies = []headerStrategy{
	{name: "item-number-header", locate: locateItemNumberHeader},
	{name: "name-keyword-fallback", locate: locateNameKeywordHeader},
}

// locateItemNumberHeader is the primary strategy: find the row whose cells
// spell out the item numbers, recording an explicit column per item.
func locateItemNumberHeader(rows [][]string, cfg models.AnalysisConfig) (sheet.ItemHeader, bool) {
	return sheet.LocateItemHeader(rows, cfg.PreviewRows, cfg.MaxItems, cfg.ItemHeaderMinHits)
}

// locateNameKeywordHeader is the fallback for sheets whose item header was
// merged away: treat the row carrying a name keyword as the header and assume
// items occupy a contiguous run starting two columns right of the name.
func locateNameKeywordHeader(rows [][]string, cfg models.AnalysisConfig) (sheet.ItemHeader, bool) {
	row, col, ok := sheet.LocateKeyword(rows, cfg.PreviewRows, nameKeywords...)
	if !ok {
		return sheet.ItemHeader{Row: sheet.NotFound}, false
	}
	return sheet.ItemHeader{Row: row, Columns: map[int]int{1: col + 2}}, true
}

// AnswerSheet extracts the normalized per-student response rows from one
// answer-sheet file.
func AnswerSheet(s *sheet.Sheet, filename string, cfg models.AnalysisConfig) AnswerSheetResult {
	result := AnswerSheetResult{}

	classroom := Classroom(s.Preview(cfg.PreviewRows))

	var header sheet.ItemHeader
	located := false
	for _, strategy := range answerHeaderStrategies {
		if h, ok := strategy.locate(s.Rows, cfg); ok {
			header = h
			located = true
			result.Strategy = strategy.name
			break
		}
	}
	if !located {
		result.Diagnostics = append(result.Diagnostics, models.NewDiagnostic(
			models.SeverityWarning, filename,
			"item-number header not found; file contributes no rows"))
		return result
	}

	dataStart := header.Row + answerDataOffset
	itemStart := header.StartColumn()

	nameCol, nameDiag := findNameColumn(s, dataStart, itemStart, cfg)
	if nameDiag != nil {
		d := *nameDiag
		d.File = filename
		result.Diagnostics = append(result.Diagnostics, d)
	}

	classSeatCol := findClassSeatColumn(s, dataStart, nameCol, cfg)
	scoreCol := s.Width() - 1

	for row := dataStart; row < s.RowCount(); row++ {
		name := s.Cell(row, nameCol)
		if nameCol == sheet.NotFound {
			name = fmt.Sprintf("Unknown_%d", row-dataStart)
		}
		if name == "" || annotationLabels[name] {
			continue
		}

		id := ""
		if classSeatCol != sheet.NotFound {
			id = identity.StudentID(s.Cell(row, classSeatCol), cfg.GradeDigit)
		}

		responses := make([]models.Response, cfg.MaxItems)
		for item := 1; item <= cfg.MaxItems; item++ {
			col := header.Column(item)
			if col >= s.Width() {
				// Column runs past the sheet edge; the export fills those
				// with the correct marker.
				responses[item-1] = models.CorrectResponse()
				continue
			}
			responses[item-1] = models.ParseResponse(s.Cell(row, col))
		}

		result.Rows = append(result.Rows, models.RawStudentResponse{
			ID:            id,
			Name:          name,
			Classroom:     classroom,
			TotalScoreRaw: s.Cell(row, scoreCol),
			Responses:     responses,
		})
	}

	return result
}

// findNameColumn probes the conventional offsets left of the item-1 column:
// two columns left first, then one. When neither passes the Korean-name
// sample threshold the original offset is kept with a warning (best effort).
// When several columns would pass, the first candidate in this order wins;
// that is a heuristic tie-break, not a guarantee.
func findNameColumn(s *sheet.Sheet, dataStart, itemStart int, cfg models.AnalysisConfig) (int, *models.Diagnostic) {
	candidate := itemStart - 2
	if candidate < 0 {
		return sheet.NotFound, nil
	}

	if countKoreanNames(s, dataStart, candidate, cfg) >= cfg.NameMinHits {
		return candidate, nil
	}

	if adjacent := itemStart - 1; adjacent >= 0 {
		if countKoreanNames(s, dataStart, adjacent, cfg) >= cfg.NameMinHits {
			return adjacent, nil
		}
	}

	d := models.NewDiagnostic(models.SeverityWarning, "",
		"name column failed validation at offsets %d and %d; keeping column %d",
		candidate, itemStart-1, candidate)
	return candidate, &d
}

func countKoreanNames(s *sheet.Sheet, dataStart, col int, cfg models.AnalysisConfig) int {
	samples := s.ColumnSample(dataStart, col, cfg.SampleSize)
	return sheet.CountMatching(samples, identity.LooksLikeKoreanName)
}

// findClassSeatColumn scans up to three columns left of the name column for
// the first one whose sampled cells look like class/seat codes.
func findClassSeatColumn(s *sheet.Sheet, dataStart, nameCol int, cfg models.AnalysisConfig) int {
	if nameCol == sheet.NotFound {
		return sheet.NotFound
	}
	for offset := 1; offset <= 3; offset++ {
		col := nameCol - offset
		if col < 0 {
			break
		}
		samples := s.ColumnSampleRaw(dataStart, col, cfg.SampleSize)
		if sheet.CountMatching(samples, identity.IsClassSeatCode) >= cfg.NameMinHits {
			return col
		}
	}
	return sheet.NotFound
}
