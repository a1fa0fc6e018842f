package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedMeasurer gives every rune the same advance so wrap positions are easy
// to reason about in tests.
type fixedMeasurer struct {
	advance float64
}

func (m fixedMeasurer) TextWidth(text string, font string, size float64) float64 {
	return float64(len([]rune(text))) * m.advance
}

func TestWrapTextEmptyInput(t *testing.T) {
	m := fixedMeasurer{advance: 1}

	assert.Equal(t, []string{""}, WrapText(m, "", "Helvetica", 10, 100))
	assert.Equal(t, []string{""}, WrapText(m, "   \t  ", "Helvetica", 10, 100))
}

func TestWrapTextNoLineExceedsWidth(t *testing.T) {
	m := fixedMeasurer{advance: 1}
	text := "the quick brown fox jumps over the lazy dog again and again"

	lines := WrapText(m, text, "Helvetica", 10, 15)
	require.NotEmpty(t, lines)
	for _, line := range lines {
		// Every word in every line fits; only an indivisible word may exceed.
		assert.LessOrEqual(t, m.TextWidth(line, "Helvetica", 10), 15.0, line)
	}

	// No content is lost or reordered.
	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(lines, " ")))
}

func TestWrapTextGreedyPacking(t *testing.T) {
	m := fixedMeasurer{advance: 1}

	lines := WrapText(m, "aa bb cc dd", "Helvetica", 10, 5)
	// "aa bb" is exactly 5 wide, so it packs; "cc dd" likewise.
	assert.Equal(t, []string{"aa bb", "cc dd"}, lines)
}

func TestWrapTextOversizedWordStandsAlone(t *testing.T) {
	m := fixedMeasurer{advance: 1}

	lines := WrapText(m, "hi incomprehensibilities yo", "Helvetica", 10, 10)
	assert.Equal(t, []string{"hi", "incomprehensibilities", "yo"}, lines)
}

func TestWrapTextSingleWordFits(t *testing.T) {
	m := fixedMeasurer{advance: 2}

	lines := WrapText(m, "word", "Helvetica", 10, 100)
	assert.Equal(t, []string{"word"}, lines)
}
