package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassroom(t *testing.T) {
	tests := []struct {
		name    string
		preview [][]string
		want    string
	}{
		{
			"number before keyword",
			[][]string{{"2학년 수학", "4 강의실"}},
			"4",
		},
		{
			"keyword before number",
			[][]string{{"강의실 1"}},
			"1",
		},
		{
			"no space",
			[][]string{{"강의실12"}},
			"12",
		},
		{
			"split across cells",
			[][]string{{"3", "강의실"}},
			"3",
		},
		{
			"lower row",
			[][]string{{}, {}, {"", "7 강의실"}},
			"7",
		},
		{
			"absent",
			[][]string{{"2학년 수학 중간고사"}},
			"",
		},
		{
			"empty preview",
			nil,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classroom(tt.preview))
		})
	}
}
