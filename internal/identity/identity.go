// Package identity validates and normalizes the student identifiers found in
// NEIS exports: Korean names and "class/seat" codes.
package identity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var classSeatPattern = regexp.MustCompile(`^(\d+)[/\-](\d+)$`)

// LooksLikeKoreanName reports whether s, after trimming, is a plausible
// Korean personal name: 2 to 5 runes, all within the Hangul syllable block.
// Used to validate a candidate name column by sampling; merged-cell artifacts
// put other fields where the name should be.
func LooksLikeKoreanName(s string) bool {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) < 2 || len(runes) > 5 {
		return false
	}
	for _, r := range runes {
		if r < '가' || r > '힣' {
			return false
		}
	}
	return true
}

// LooksLikeName is the looser roster-side check: at least 2 characters and no
// digits. Roster name cells occasionally carry non-Hangul annotations that
// are still names.
func LooksLikeName(s string) bool {
	s = strings.TrimSpace(s)
	if len([]rune(s)) < 2 {
		return false
	}
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return false
		}
	}
	return true
}

// IsClassSeatCode reports whether s is a "class/seat" code such as "1/1" or
// "2-13".
func IsClassSeatCode(s string) bool {
	return classSeatPattern.MatchString(strings.TrimSpace(s))
}

// StudentID converts a class/seat code to the canonical five-character
// student ID: the grade digit followed by the zero-padded class and seat
// numbers ("3/7" with grade 2 -> "20307"). Malformed input yields "".
func StudentID(code string, gradeDigit int) string {
	m := classSeatPattern.FindStringSubmatch(strings.TrimSpace(code))
	if m == nil {
		return ""
	}
	class, _ := strconv.Atoi(m[1])
	seat, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%d%02d%02d", gradeDigit, class, seat)
}
