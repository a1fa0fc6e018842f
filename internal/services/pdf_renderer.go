package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"bonifacengila/cv-portfolio/internal/models"
	"bonifacengila/cv-portfolio/internal/templates"
)

// PDFRenderer draws a CV document onto an A4 canvas and returns the finished
// PDF bytes. When the capability is disabled (or construction failed) every
// render returns empty output instead of an error, so callers can degrade the
// download affordance instead of failing the page.
type PDFRenderer interface {
	Available() bool
	Render(doc models.CVDocument, template string) ([]byte, error)
}

type pdfRenderer struct {
	enabled bool
}

func NewPDFRenderer(enabled bool) PDFRenderer {
	return &pdfRenderer{enabled: enabled}
}

func (r *pdfRenderer) Available() bool {
	return r.enabled
}

func (r *pdfRenderer) Render(doc models.CVDocument, template string) ([]byte, error) {
	if !r.enabled {
		return nil, nil
	}

	canvas := newPDFCanvas()
	theme := templates.ThemeFor(template)
	if templates.IsTwoColumn(template) {
		renderPDFTwoColumn(canvas, doc, theme)
	} else {
		renderPDFOneColumn(canvas, doc, theme)
	}

	var buf bytes.Buffer
	if err := canvas.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Font identifiers used throughout the drawing code.
const (
	fontRegular = "Helvetica"
	fontBold    = "Helvetica-Bold"
)

// pdfSafeText flattens newlines to spaces (PDF text runs are single-line
// primitives) and replaces runes outside the single-byte core-font encoding
// with '?'. It never fails.
func pdfSafeText(value string) string {
	var sb strings.Builder
	sb.Grow(len(value))
	for _, r := range strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(value) {
		if r > 0xFF {
			sb.WriteRune('?')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// pdfCanvas wraps a gofpdf document in A4 points with manual pagination.
// Coordinates are top-down: y grows toward the page bottom.
type pdfCanvas struct {
	pdf   *gofpdf.Fpdf
	pageW float64
	pageH float64
}

func newPDFCanvas() *pdfCanvas {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	pdf.AddPage()
	w, h := pdf.GetPageSize()
	return &pdfCanvas{pdf: pdf, pageW: w, pageH: h}
}

func splitFont(font string) (family, style string) {
	if name, ok := strings.CutSuffix(font, "-Bold"); ok {
		return name, "B"
	}
	return font, ""
}

// TextWidth implements TextMeasurer with the canvas's own font metrics.
func (c *pdfCanvas) TextWidth(text string, font string, size float64) float64 {
	c.setFont(font, size)
	return c.pdf.GetStringWidth(text)
}

func (c *pdfCanvas) setFont(font string, size float64) {
	family, style := splitFont(font)
	c.pdf.SetFont(family, style, size)
}

func hexRGB(hex string) (int, int, int) {
	var r, g, b int
	if _, err := fmt.Sscanf(strings.TrimPrefix(hex, "#"), "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}

func (c *pdfCanvas) fill(hex string)   { c.pdf.SetFillColor(hexRGB(hex)) }
func (c *pdfCanvas) stroke(hex string) { c.pdf.SetDrawColor(hexRGB(hex)) }
func (c *pdfCanvas) color(hex string)  { c.pdf.SetTextColor(hexRGB(hex)) }

// text draws a sanitized string with its baseline at y.
func (c *pdfCanvas) text(x, y float64, s string) {
	c.pdf.Text(x, y, pdfSafeText(s))
}

// textCentered draws a sanitized string horizontally centered on x.
func (c *pdfCanvas) textCentered(x, y float64, s string) {
	s = pdfSafeText(s)
	c.pdf.Text(x-c.pdf.GetStringWidth(s)/2, y, s)
}

func (c *pdfCanvas) newPage() {
	c.pdf.AddPage()
}

// titleStyle carries the colors a section heading is drawn with.
type titleStyle struct {
	title     string
	line      string
	badge     string
	badgeText string
}

func defaultTitleStyle() titleStyle {
	return titleStyle{title: "#1e3a5f", line: "#bfd7ed", badge: "#bfd7ed", badgeText: "#ffffff"}
}

// Fallback glyphs for the small circular icon badge next to section titles.
var sectionIconFallbacks = map[string]string{
	"Profile":                 "P",
	"Core Competencies":       "C",
	"Professional Experience": "E",
	"Education":               "Ed",
	"Certifications":          "Cf",
	"Languages":               "Lg",
	"Referees":                "Rf",
	"Contact":                 "Ct",
}

// sectionTitleHeight is the vertical space one section heading consumes.
const sectionTitleHeight = 16

// drawSectionTitle draws the colored label, underline and icon badge at
// baseline y and returns the next baseline.
func drawSectionTitle(c *pdfCanvas, title string, x, y float64, style titleStyle) float64 {
	titleX := x
	if icon := sectionIconFallbacks[title]; icon != "" {
		badgeX := x + 6
		badgeY := y - 2
		c.fill(style.badge)
		c.pdf.Circle(badgeX, badgeY, 6, "F")
		c.color(style.badgeText)
		c.setFont(fontBold, 5)
		c.textCentered(badgeX, badgeY+2, icon)
		titleX = x + 20
	}

	c.color(style.title)
	c.setFont(fontBold, 12)
	c.text(titleX, y, title)
	c.stroke(style.line)
	c.pdf.SetLineWidth(1)
	c.pdf.Line(titleX, y+3, titleX+130, y+3)
	return y + sectionTitleHeight
}

// flattenedReferee renders one referee as a single pipe-separated summary
// line, the shape the PDF uses instead of the HTML sub-layout.
func flattenedReferee(ref models.RefereeEntry) string {
	var parts []string
	for _, p := range []string{ref.Name, ref.Position, ref.Organization} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if ref.Email != "" {
		parts = append(parts, "Email: "+ref.Email)
	}
	if ref.Phone != "" {
		parts = append(parts, "Phone: "+ref.Phone)
	}
	return strings.Join(parts, " | ")
}

// educationLine flattens an education record for canvas drawing.
func educationLine(record models.EducationEntry) string {
	var parts []string
	for _, p := range []string{record.Course, record.Institution} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if record.Timeline != "" {
		parts = append(parts, "("+record.Timeline+")")
	}
	return strings.Join(parts, " - ")
}
