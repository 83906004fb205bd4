package models

import (
	"strconv"
	"strings"
)

// ResponseKind is the closed set of per-item response classifications. Raw
// sheet tokens ("." for correct, a digit for the chosen option) are parsed
// into this variant once at extraction time so that formatting differences
// can never be misread downstream.
type ResponseKind string

const (
	ResponseCorrect ResponseKind = "correct"
	ResponseChoice  ResponseKind = "choice" // wrong answer; Option holds the pick
	ResponseNone    ResponseKind = "none"   // blank / no response
	ResponseOther   ResponseKind = "other"  // unrecognized token
)

// Response is a single student's answer to a single item.
type Response struct {
	Kind   ResponseKind `json:"kind"`
	Option int          `json:"option,omitempty"` // 1..5, set only for ResponseChoice
}

// Correct reports whether the response carries the correct marker.
func (r Response) Correct() bool {
	return r.Kind == ResponseCorrect
}

// correctMark is the NEIS convention for a correct answer on an answer sheet.
const correctMark = "."

// ParseResponse classifies one raw answer-sheet cell.
func ParseResponse(cell string) Response {
	s := strings.TrimSpace(cell)
	switch s {
	case correctMark:
		return Response{Kind: ResponseCorrect}
	case "", "nan", "None", "NaN":
		return Response{Kind: ResponseNone}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 5 {
		return Response{Kind: ResponseChoice, Option: n}
	}
	return Response{Kind: ResponseOther}
}

// CorrectResponse and NoResponse are the fill values used when an item column
// is absent from a sheet.
func CorrectResponse() Response { return Response{Kind: ResponseCorrect} }
func NoResponse() Response      { return Response{Kind: ResponseNone} }

// Token renders the response back to its sheet form, for exports.
func (r Response) Token() string {
	switch r.Kind {
	case ResponseCorrect:
		return correctMark
	case ResponseChoice:
		return strconv.Itoa(r.Option)
	case ResponseNone:
		return ""
	default:
		return "?"
	}
}
