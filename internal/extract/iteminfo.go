// Package extract carves normalized record tables out of raw NEIS sheets.
// Each extractor tolerates structural drift: layouts are inferred per file
// and a file whose layout cannot be inferred contributes zero rows plus a
// diagnostic, never an error that aborts the batch.
package extract

import (
	"strconv"

	"github.com/SAP-F-2025/item-analysis-service/internal/models"
	"github.com/SAP-F-2025/item-analysis-service/internal/sheet"
)

// Item-metadata sheets are the one fixed-layout input: a 10-row preamble,
// then at most 22 candidate rows with known column offsets.
const (
	itemInfoSkipRows = 10
	itemInfoMaxRows  = 22

	itemInfoColNumber   = 1
	itemInfoColStandard = 3
	itemInfoColHard     = 14
	itemInfoColMedium   = 16
	itemInfoColEasy     = 18
	itemInfoColPoints   = 19
	itemInfoColCorrect  = 21
)

// difficultyMark is the circle NEIS places in exactly one of the three
// expected-difficulty columns.
const difficultyMark = "○"

// ItemInfo parses the item-metadata sheet into ItemDefinitions. Rows whose
// item-number cell is not a positive integer are discarded; unparseable point
// values coerce to 0.
func ItemInfo(s *sheet.Sheet) []models.ItemDefinition {
	var items []models.ItemDefinition

	end := itemInfoSkipRows + itemInfoMaxRows
	if end > s.RowCount() {
		end = s.RowCount()
	}

	for row := itemInfoSkipRows; row < end; row++ {
		numText := sheet.CleanNumericText(s.Cell(row, itemInfoColNumber))
		num, err := strconv.Atoi(numText)
		if err != nil || num <= 0 {
			continue
		}

		points, err := strconv.ParseFloat(sheet.CleanNumericText(s.Cell(row, itemInfoColPoints)), 64)
		if err != nil {
			points = 0
		}

		items = append(items, models.ItemDefinition{
			Number:             num,
			Standard:           s.Cell(row, itemInfoColStandard),
			ExpectedDifficulty: expectedDifficulty(s, row),
			Points:             points,
			CorrectOption:      sheet.CleanNumericText(s.Cell(row, itemInfoColCorrect)),
		})
	}

	return items
}

func expectedDifficulty(s *sheet.Sheet, row int) models.ExpectedDifficulty {
	switch {
	case s.Cell(row, itemInfoColHard) == difficultyMark:
		return models.DifficultyHigh
	case s.Cell(row, itemInfoColMedium) == difficultyMark:
		return models.DifficultyMedium
	default:
		return models.DifficultyLow
	}
}
