package services

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bonifacengila/cv-portfolio/internal/models"
	"bonifacengila/cv-portfolio/internal/templates"
)

func TestPDFRenderAllTemplates(t *testing.T) {
	r := NewPDFRenderer(true)
	doc := sampleDocument()

	for _, name := range templates.Available {
		payload, err := r.Render(doc, name)
		require.NoError(t, err, name)
		require.NotEmpty(t, payload, name)
		assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")), name)
	}
}

func TestPDFRenderDisabled(t *testing.T) {
	r := NewPDFRenderer(false)

	assert.False(t, r.Available())
	payload, err := r.Render(sampleDocument(), templates.OneColumnClassic)
	require.NoError(t, err)
	assert.Empty(t, payload)
}

func TestPDFSafeText(t *testing.T) {
	assert.Equal(t, "a b c", pdfSafeText("a\nb\r\nc"))
	assert.Equal(t, "café", pdfSafeText("café"))
	assert.Equal(t, "x ? y", pdfSafeText("x → y"))
	assert.Equal(t, "?", pdfSafeText("\U0001f552"))
	assert.Equal(t, "", pdfSafeText(""))
}

// extractPDF parses rendered output back into page count and plain text.
func extractPDF(t *testing.T, payload []byte) (int, string) {
	t.Helper()
	reader, err := pdf.NewReader(bytes.NewReader(payload), int64(len(payload)))
	require.NoError(t, err)

	plain, err := reader.GetPlainText()
	require.NoError(t, err)
	text, err := io.ReadAll(plain)
	require.NoError(t, err)
	return reader.NumPage(), string(text)
}

func overflowingDocument() models.CVDocument {
	doc := sampleDocument()
	doc.Experience = nil
	for i := 0; i < 14; i++ {
		entry := models.ExperienceEntry{
			Role:         fmt.Sprintf("Engineer %d", i+1),
			Organization: "Acme Subsidiary",
			Period:       "2020 - 2021",
		}
		for j := 0; j < 6; j++ {
			entry.Bullets = append(entry.Bullets,
				"Delivered a long-running initiative that required sustained coordination across several teams")
		}
		doc.Experience = append(doc.Experience, entry)
	}
	return doc
}

func TestPDFOneColumnPaginates(t *testing.T) {
	r := NewPDFRenderer(true)

	// Forty bullets, each opening with a unique marker and long enough to
	// wrap, spill well past one page.
	const bulletCount = 40
	doc := sampleDocument()
	doc.Experience = []models.ExperienceEntry{
		{Role: "Platform Engineer", Organization: "Acme", Period: "2020 - 2025"},
	}
	for i := 0; i < bulletCount; i++ {
		doc.Experience[0].Bullets = append(doc.Experience[0].Bullets, fmt.Sprintf(
			"marker-%02d delivered a long-running initiative that required sustained coordination across several teams",
			i))
	}

	payload, err := r.Render(doc, templates.OneColumnMinimal)
	require.NoError(t, err)

	pages, text := extractPDF(t, payload)
	require.Greater(t, pages, 1)
	assert.Contains(t, text, "Jane")

	// Every bullet survives the page breaks exactly once, in input order.
	last := -1
	for i := 0; i < bulletCount; i++ {
		marker := fmt.Sprintf("marker-%02d", i)
		require.Equal(t, 1, strings.Count(text, marker), marker)
		idx := strings.Index(text, marker)
		assert.Greater(t, idx, last, marker)
		last = idx
	}
}

func TestPDFTwoColumnPaginates(t *testing.T) {
	r := NewPDFRenderer(true)

	payload, err := r.Render(overflowingDocument(), templates.TwoColumnProfessional)
	require.NoError(t, err)

	pages, text := extractPDF(t, payload)
	assert.Greater(t, pages, 1)
	// Both columns' content survives the page breaks.
	assert.Contains(t, text, "Engineer 14")
	assert.Contains(t, text, "Swahili")
}

func makeOps(n int, height float64) []pdfOp {
	ops := make([]pdfOp, n)
	for i := range ops {
		ops[i] = pdfOp{kind: opLine, text: fmt.Sprintf("op-%d", i), height: height}
	}
	return ops
}

func TestDrainColumnOpsSinglePage(t *testing.T) {
	var drawn []string
	newPage := func(first bool) (float64, float64) { return 0, 0 }
	draw := func(op pdfOp, leftColumn bool, y float64) float64 {
		side := "R"
		if leftColumn {
			side = "L"
		}
		drawn = append(drawn, fmt.Sprintf("%s:%s@%g", side, op.text, y))
		return y + op.height
	}

	pages := drainColumnOps(makeOps(3, 10), makeOps(2, 10), 100, newPage, draw)
	assert.Equal(t, 1, pages)
	assert.Equal(t, []string{
		"L:op-0@0", "L:op-1@10", "L:op-2@20",
		"R:op-0@0", "R:op-1@10",
	}, drawn)
}

func TestDrainColumnOpsBreaksWhenBothStall(t *testing.T) {
	breaks := 0
	newPage := func(first bool) (float64, float64) {
		if !first {
			breaks++
		}
		return 0, 0
	}
	draw := func(op pdfOp, leftColumn bool, y float64) float64 { return y + op.height }

	// Left needs 10 slots of 30 against a 100-high page (3 per page); right
	// finishes on page one. Every break moves both columns together.
	pages := drainColumnOps(makeOps(10, 30), makeOps(2, 30), 100, newPage, draw)
	assert.Equal(t, 4, pages)
	assert.Equal(t, 3, breaks)
}

func TestDrainColumnOpsCouplesColumns(t *testing.T) {
	type placement struct {
		page int
		y    float64
	}
	page := 0
	newPage := func(first bool) (float64, float64) {
		page++
		return 0, 0
	}
	var rightPlacements []placement
	draw := func(op pdfOp, leftColumn bool, y float64) float64 {
		if !leftColumn {
			rightPlacements = append(rightPlacements, placement{page: page, y: y})
		}
		return y + op.height
	}

	// Right column stalls on page one with room to spare; its third op lands
	// at the top of page two because the page turn resets both cursors.
	drainColumnOps(makeOps(7, 30), makeOps(4, 40), 100, newPage, draw)
	require.Len(t, rightPlacements, 4)
	assert.Equal(t, placement{page: 1, y: 0}, rightPlacements[0])
	assert.Equal(t, placement{page: 2, y: 0}, rightPlacements[2])
}

func TestDrainColumnOpsEmptyQueues(t *testing.T) {
	pages := drainColumnOps(nil, nil, 100, func(bool) (float64, float64) { return 0, 0 },
		func(op pdfOp, leftColumn bool, y float64) float64 { return y + op.height })
	assert.Equal(t, 1, pages)
}

func TestWrapTextAgainstCanvasMetrics(t *testing.T) {
	c := newPDFCanvas()
	text := strings.Repeat("coordination across several teams ", 8)

	lines := WrapText(c, text, fontRegular, 9, 200)
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, c.TextWidth(line, fontRegular, 9), 200.0, line)
	}
}
