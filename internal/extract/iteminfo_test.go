package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/item-analysis-service/internal/models"
	"github.com/SAP-F-2025/item-analysis-service/internal/sheet"
)

func infoRow(num, standard string, diffCol int, points, correct string) []string {
	row := make([]string, 22)
	row[itemInfoColNumber] = num
	row[itemInfoColStandard] = standard
	if diffCol >= 0 {
		row[diffCol] = difficultyMark
	}
	row[itemInfoColPoints] = points
	row[itemInfoColCorrect] = correct
	return row
}

func TestItemInfo(t *testing.T) {
	rows := make([][]string, itemInfoSkipRows)
	rows = append(rows,
		infoRow("1", "수와 연산", itemInfoColHard, "10.0", "1.0"),
		infoRow("2", "문자와 식", itemInfoColMedium, "8", "3"),
		infoRow("3", "함수", itemInfoColEasy, "12", "2"),
		infoRow("합계", "", -1, "30", ""),
		infoRow("4", "기하", -1, "점수없음", "4"),
	)

	items := ItemInfo(&sheet.Sheet{Rows: rows})

	require.Len(t, items, 4)

	assert.Equal(t, 1, items[0].Number)
	assert.Equal(t, "수와 연산", items[0].Standard)
	assert.Equal(t, models.DifficultyHigh, items[0].ExpectedDifficulty)
	assert.Equal(t, 10.0, items[0].Points)
	assert.Equal(t, "1", items[0].CorrectOption)

	assert.Equal(t, models.DifficultyMedium, items[1].ExpectedDifficulty)
	assert.Equal(t, models.DifficultyLow, items[2].ExpectedDifficulty)

	// Unmarked difficulty defaults to low; unparseable points coerce to 0.
	assert.Equal(t, 4, items[3].Number)
	assert.Equal(t, models.DifficultyLow, items[3].ExpectedDifficulty)
	assert.Equal(t, 0.0, items[3].Points)
}

func TestItemInfoIgnoresPreamble(t *testing.T) {
	// A numeric-looking row inside the preamble must not become an item.
	rows := make([][]string, 0, itemInfoSkipRows+1)
	for i := 0; i < itemInfoSkipRows; i++ {
		rows = append(rows, infoRow("9", "전처리 영역", -1, "1", "1"))
	}
	rows = append(rows, infoRow("1", "수와 연산", itemInfoColHard, "10", "1"))

	items := ItemInfo(&sheet.Sheet{Rows: rows})

	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Number)
}

func TestItemInfoEmptySheet(t *testing.T) {
	items := ItemInfo(&sheet.Sheet{Rows: [][]string{{"제목"}}})
	assert.Empty(t, items)
}
