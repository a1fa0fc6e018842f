package services

import "strings"

// TextMeasurer reports the rendered width of a string at a font and size, in
// the same unit the caller uses for line widths. The PDF renderer backs this
// with gofpdf's font metrics.
type TextMeasurer interface {
	TextWidth(text string, font string, size float64) float64
}

// WrapText breaks text into lines no wider than maxWidth using greedy
// word packing: a line starts with one word and accepts the next while
// "current + space + word" still fits. A single word wider than maxWidth is
// placed alone on its own line, never split. Empty input yields exactly one
// empty line so callers can advance a cursor uniformly.
func WrapText(m TextMeasurer, text string, font string, size float64, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if m.TextWidth(candidate, font, size) <= maxWidth {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}
