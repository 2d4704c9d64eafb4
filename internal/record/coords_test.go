package record

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"josekle/internal/gametree"
)

func TestPointFromLetters(t *testing.T) {
	tests := []struct {
		letters string
		want    gametree.Point
	}{
		{"aa", gametree.Point{X: 1, Y: 1}},
		{"ce", gametree.Point{X: 3, Y: 5}},
		{"zA", gametree.Point{X: 26, Y: 27}},
		{"ZZ", gametree.Point{X: 52, Y: 52}},
		{"", gametree.Pass},
		{"a", gametree.Pass},
		{"abc", gametree.Pass},
		{"a1", gametree.Pass},
	}

	for _, tt := range tests {
		t.Run(tt.letters, func(t *testing.T) {
			assert.Equal(t, tt.want, PointFromLetters(tt.letters))
		})
	}
}

func TestLettersFromPoint(t *testing.T) {
	assert.Equal(t, "", LettersFromPoint(gametree.Pass))
	assert.Equal(t, "ce", LettersFromPoint(gametree.Point{X: 3, Y: 5}))
	assert.Equal(t, "zA", LettersFromPoint(gametree.Point{X: 26, Y: 27}))

	for x := 1; x <= gametree.MaxSize; x++ {
		p := gametree.Point{X: x, Y: gametree.MaxSize + 1 - x}
		assert.Equal(t, p, PointFromLetters(LettersFromPoint(p)))
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		value  string
		width  int
		height int
	}{
		{"19", 19, 19},
		{"9", 9, 9},
		{"9:13", 9, 13},
		{" 13 ", 13, 13},
		{"52:1", 52, 1},
		{"1", 1, 1},
		{"0", 19, 19},
		{"53", 19, 19},
		{"9:0", 19, 19},
		{"9:60", 19, 19},
		{"abc", 19, 19},
		{"9x9", 19, 19},
		{"", 19, 19},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			w, h := ParseSize(tt.value)
			assert.Equal(t, tt.width, w)
			assert.Equal(t, tt.height, h)
		})
	}
}
