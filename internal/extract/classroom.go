package extract

import (
	"regexp"
	"strings"
)

// classroomPattern matches the classroom annotation NEIS prints somewhere in
// the answer-sheet preamble, in either order ("4 강의실", "강의실 1", "강의실1").
var classroomPattern = regexp.MustCompile(`(\d+)\s*강의실|강의실\s*(\d+)`)

// classroomScanRows bounds the preamble scan; the annotation is always near
// the top when present.
const classroomScanRows = 10

// Classroom extracts the classroom number from a sheet preview, or "" when
// no annotation is present.
func Classroom(preview [][]string) string {
	rows := classroomScanRows
	if rows > len(preview) {
		rows = len(preview)
	}
	for r := 0; r < rows; r++ {
		line := strings.Join(preview[r], " ")
		m := classroomPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if m[1] != "" {
			return m[1]
		}
		return m[2]
	}
	return ""
}
