package sheet

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet is an in-memory grid of cell texts from the first worksheet of a
// workbook. Rows are ragged, exactly as excelize returns them; Cell performs
// bounds checking so callers can probe freely.
type Sheet struct {
	Name string
	Rows [][]string
}

// Read loads the first worksheet of an xlsx workbook with every cell as text.
func Read(r io.Reader) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return &Sheet{Name: sheets[0], Rows: rows}, nil
}

// Cell returns the trimmed cell text at (row, col), or "" when out of range.
func (s *Sheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.Rows) {
		return ""
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// RowCount returns the number of rows in the sheet.
func (s *Sheet) RowCount() int {
	return len(s.Rows)
}

// Width returns the column count of the widest row, the conventional position
// of the total-score column being the last one.
func (s *Sheet) Width() int {
	w := 0
	for _, r := range s.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// Preview returns up to n leading rows for header inference.
func (s *Sheet) Preview(n int) [][]string {
	if n > len(s.Rows) {
		n = len(s.Rows)
	}
	return s.Rows[:n]
}

// ColumnSample returns up to limit trimmed, non-empty values from column col,
// starting at startRow. Used to validate candidate columns against the
// identity predicates.
func (s *Sheet) ColumnSample(startRow, col, limit int) []string {
	var samples []string
	for row := startRow; row < len(s.Rows) && len(samples) < limit; row++ {
		v := s.Cell(row, col)
		if v != "" {
			samples = append(samples, v)
		}
	}
	return samples
}

// ColumnSampleRaw is like ColumnSample but keeps empty cells, bounded to the
// first limit rows. Some validators need to count misses as well as hits.
func (s *Sheet) ColumnSampleRaw(startRow, col, limit int) []string {
	var samples []string
	for row := startRow; row < len(s.Rows) && len(samples) < limit; row++ {
		samples = append(samples, s.Cell(row, col))
	}
	return samples
}
