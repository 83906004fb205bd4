package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeKoreanName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"typical name", "홍길동", true},
		{"two syllables", "김수", true},
		{"five syllables", "남궁현우성", true},
		{"padded", "  홍길동  ", true},
		{"single syllable", "김", false},
		{"six syllables", "가나다라마바", false},
		{"contains digit", "홍길1", false},
		{"all digits", "123", false},
		{"latin", "Kim", false},
		{"mixed hangul latin", "김Kim", false},
		{"empty", "", false},
		{"class seat code", "3/7", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeKoreanName(tt.input))
		})
	}
}

func TestLooksLikeName(t *testing.T) {
	assert.True(t, LooksLikeName("홍길동"))
	assert.True(t, LooksLikeName("Kim"))
	assert.False(t, LooksLikeName("김1"))
	assert.False(t, LooksLikeName("가"))
	assert.False(t, LooksLikeName(""))
}

func TestIsClassSeatCode(t *testing.T) {
	assert.True(t, IsClassSeatCode("1/1"))
	assert.True(t, IsClassSeatCode("2-13"))
	assert.True(t, IsClassSeatCode(" 3/7 "))
	assert.False(t, IsClassSeatCode("홍길동"))
	assert.False(t, IsClassSeatCode("3/7/1"))
	assert.False(t, IsClassSeatCode("3/"))
	assert.False(t, IsClassSeatCode("/7"))
	assert.False(t, IsClassSeatCode(""))
}

func TestStudentID(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		grade int
		want  string
	}{
		{"slash separator", "3/7", 2, "20307"},
		{"dash with padding", "03-07", 2, "20307"},
		{"double digit seat", "1/13", 2, "20113"},
		{"first grade", "2/5", 1, "10205"},
		{"whitespace tolerated", " 3/7 ", 2, "20307"},
		{"malformed", "abc", 2, ""},
		{"missing seat", "3/", 2, ""},
		{"empty", "", 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StudentID(tt.code, tt.grade))
		})
	}
}

func TestStudentIDLength(t *testing.T) {
	// Any code the pattern accepts yields a five-character ID.
	for _, code := range []string{"1/1", "9-9", "12/34", "03-07"} {
		id := StudentID(code, 2)
		assert.Len(t, id, 5, "code %q", code)
	}
}
