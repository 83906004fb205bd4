package sheet

import (
	"strconv"
	"strings"
)

// NotFound is the sentinel row/column index returned when no anchor matched.
// Callers branch to fallback strategies instead of handling an error.
const NotFound = -1

// Anchor is a named predicate over a single cell. The locator reports, per
// matched anchor, the column where it first matched.
type Anchor struct {
	Name  string
	Match func(cell string) bool
}

// KeywordAnchor matches a cell containing any of the keyword variants.
func KeywordAnchor(name string, keywords ...string) Anchor {
	return Anchor{
		Name: name,
		Match: func(cell string) bool {
			for _, kw := range keywords {
				if strings.Contains(cell, kw) {
					return true
				}
			}
			return false
		},
	}
}

// DigitAnchor matches a cell whose text equals the given number, tolerating a
// trailing ".0" from numeric cells rendered as text.
func DigitAnchor(n int) Anchor {
	want := strconv.Itoa(n)
	return Anchor{
		Name: "item-" + want,
		Match: func(cell string) bool {
			return CleanNumericText(cell) == want
		},
	}
}

// CleanNumericText trims a cell and strips the ".0" suffix that spreadsheet
// exports append to integer cells.
func CleanNumericText(cell string) string {
	return strings.TrimSuffix(strings.TrimSpace(cell), ".0")
}

// Header is a located header row with the column of each satisfied anchor.
type Header struct {
	Row     int
	Columns map[string]int // anchor name -> first matching column
}

// LocateByAnchors scans the first window rows for the first row on which at
// least minHits anchors are satisfied. Returns ok=false without side effects
// when nothing qualifies, leaving the fallback choice to the caller.
func LocateByAnchors(rows [][]string, window int, anchors []Anchor, minHits int) (Header, bool) {
	if window > len(rows) {
		window = len(rows)
	}
	for r := 0; r < window; r++ {
		cols := make(map[string]int)
		for c, cell := range rows[r] {
			for _, a := range anchors {
				if _, seen := cols[a.Name]; seen {
					continue
				}
				if a.Match(cell) {
					cols[a.Name] = c
				}
			}
		}
		if len(cols) >= minHits {
			return Header{Row: r, Columns: cols}, true
		}
	}
	return Header{Row: NotFound}, false
}

// ItemHeader is the located item-number header of an answer sheet, with an
// explicit column offset per item. Item columns need not be contiguous; real
// sheets sometimes skip or reorder them.
type ItemHeader struct {
	Row     int
	Columns map[int]int // item number -> column
}

// StartColumn returns the column of item 1, or NotFound.
func (h ItemHeader) StartColumn() int {
	if c, ok := h.Columns[1]; ok {
		return c
	}
	return NotFound
}

// Column returns the recorded column for an item, falling back to a
// contiguous run from the item-1 column for items the header did not list.
func (h ItemHeader) Column(item int) int {
	if c, ok := h.Columns[item]; ok {
		return c
	}
	start := h.StartColumn()
	if start == NotFound {
		return NotFound
	}
	return start + (item - 1)
}

// LocateItemHeader finds the row carrying the item-number header: the first
// preview row containing the digits 1 through 4 with at least minHits item
// numbers in 1..maxItems present overall. The first column per item number
// wins; duplicates further right are ignored.
func LocateItemHeader(rows [][]string, window, maxItems, minHits int) (ItemHeader, bool) {
	if window > len(rows) {
		window = len(rows)
	}
	for r := 0; r < window; r++ {
		cols := make(map[int]int)
		for c, cell := range rows[r] {
			v := CleanNumericText(cell)
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > maxItems {
				continue
			}
			if _, seen := cols[n]; !seen {
				cols[n] = c
			}
		}
		// Require the low anchors so a row of stray numbers cannot pass.
		if len(cols) >= minHits && hasAll(cols, 1, 2, 3, 4) {
			return ItemHeader{Row: r, Columns: cols}, true
		}
	}
	return ItemHeader{Row: NotFound}, false
}

func hasAll(cols map[int]int, items ...int) bool {
	for _, n := range items {
		if _, ok := cols[n]; !ok {
			return false
		}
	}
	return true
}

// LocateKeyword scans the window row-major for the first cell containing any
// keyword variant and returns its position.
func LocateKeyword(rows [][]string, window int, keywords ...string) (row, col int, ok bool) {
	if window > len(rows) {
		window = len(rows)
	}
	for r := 0; r < window; r++ {
		for c, cell := range rows[r] {
			for _, kw := range keywords {
				if strings.Contains(cell, kw) {
					return r, c, true
				}
			}
		}
	}
	return NotFound, NotFound, false
}

// CountMatching applies a predicate to a sample and reports the hit count.
func CountMatching(samples []string, match func(string) bool) int {
	n := 0
	for _, s := range samples {
		if match(s) {
			n++
		}
	}
	return n
}
