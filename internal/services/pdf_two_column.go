package services

import (
	"fmt"

	"bonifacengila/cv-portfolio/internal/models"
	"bonifacengila/cv-portfolio/internal/templates"
)

// Two-column drawing strategy: both columns are compiled into ordered op
// queues (section titles, wrapped text lines, fixed gaps) whose heights are
// known up front, then drained against independent cursors with coupled page
// breaks.

type opKind int

const (
	opTitle opKind = iota
	opLine
	opGap
)

// pdfOp is one atomic drawing instruction with a known height, so the
// fits-on-page test during draining is exact rather than estimated.
type pdfOp struct {
	kind    opKind
	title   string
	text    string
	font    string
	size    float64
	leading float64
	height  float64
}

type opQueue struct {
	ops []pdfOp
}

func (q *opQueue) addTitle(title string) {
	q.ops = append(q.ops, pdfOp{kind: opTitle, title: title, height: sectionTitleHeight})
}

func (q *opQueue) addGap(height float64) {
	if height > 0 {
		q.ops = append(q.ops, pdfOp{kind: opGap, height: height})
	}
}

func (q *opQueue) addText(m TextMeasurer, text string, maxWidth float64, font string, size, leading float64) {
	safe := pdfSafeText(text)
	for _, line := range WrapText(m, safe, font, size, maxWidth) {
		q.ops = append(q.ops, pdfOp{kind: opLine, text: line, font: font, size: size, leading: leading, height: leading})
	}
}

// drainColumnOps draws both queues page by page. Each column drains against
// its own cursor until its next op no longer fits above maxY; when both
// columns have stalled and work remains, one page break moves both columns to
// the new page's top together. The coupling is deliberate: the columns always
// turn pages in lockstep even though their content heights differ. Returns
// the number of pages used. Terminates provided every op fits a fresh page on
// its own.
func drainColumnOps(
	left, right []pdfOp,
	maxY float64,
	newPage func(first bool) (yLeft, yRight float64),
	draw func(op pdfOp, leftColumn bool, y float64) float64,
) int {
	leftIdx, rightIdx := 0, 0
	yLeft, yRight := newPage(true)
	pages := 1

	for leftIdx < len(left) || rightIdx < len(right) {
		for leftIdx < len(left) {
			op := left[leftIdx]
			if yLeft+op.height > maxY {
				break
			}
			yLeft = draw(op, true, yLeft)
			leftIdx++
		}

		for rightIdx < len(right) {
			op := right[rightIdx]
			if yRight+op.height > maxY {
				break
			}
			yRight = draw(op, false, yRight)
			rightIdx++
		}

		if leftIdx >= len(left) && rightIdx >= len(right) {
			break
		}

		yLeft, yRight = newPage(false)
		pages++
	}
	return pages
}

func buildLeftOps(m TextMeasurer, doc models.CVDocument, width float64) []pdfOp {
	var q opQueue

	q.addTitle("Profile")
	q.addText(m, doc.ProfileSummary, width, fontRegular, 10, 13)
	q.addGap(6)

	q.addTitle("Professional Experience")
	for _, exp := range doc.Experience {
		header := fmt.Sprintf("%s - %s | %s", exp.Role, exp.Organization, exp.Period)
		q.addText(m, header, width, fontBold, 9, 12)
		for _, bullet := range exp.Bullets {
			q.addText(m, "- "+bullet, width, fontRegular, 9, 12)
		}
		q.addGap(3)
	}

	q.addTitle("Education")
	for _, record := range doc.Education {
		if line := educationLine(record); line != "" {
			q.addText(m, "- "+line, width, fontRegular, 10, 13)
		}
	}

	return q.ops
}

func buildRightOps(m TextMeasurer, doc models.CVDocument, width float64) []pdfOp {
	var q opQueue

	q.addTitle("Contact")
	for _, line := range []string{
		"Location: " + doc.Location,
		"Phone: " + doc.Phone,
		"Email: " + doc.Email,
		"LinkedIn: " + doc.LinkedIn,
		"GitHub: " + doc.GitHub,
	} {
		q.addText(m, line, width, fontRegular, 9, 12)
	}
	q.addGap(6)

	q.addTitle("Core Competencies")
	for _, item := range doc.CoreCompetencies {
		q.addText(m, "- "+item, width, fontRegular, 9, 12)
	}
	q.addGap(4)

	q.addTitle("Certifications")
	for _, item := range doc.Certifications {
		q.addText(m, "- "+item, width, fontRegular, 9, 12)
	}
	q.addGap(4)

	q.addTitle("Languages")
	for _, item := range doc.Languages {
		q.addText(m, "- "+item, width, fontRegular, 9, 12)
	}
	q.addGap(4)

	q.addTitle("Referees")
	for _, ref := range doc.Referees {
		if line := flattenedReferee(ref); line != "" {
			q.addText(m, "- "+line, width, fontRegular, 9, 12)
		}
	}

	return q.ops
}

func renderPDFTwoColumn(c *pdfCanvas, doc models.CVDocument, theme templates.Theme) {
	const (
		margin = 22.0
		gap    = 14.0
		top    = 22.0
		bottom = 28.0
	)
	totalWidth := c.pageW - 2*margin
	leftWidth := totalWidth * 0.62
	rightWidth := totalWidth - leftWidth - gap
	leftX := margin
	rightX := leftX + leftWidth + gap
	maxY := c.pageH - bottom

	style := defaultTitleStyle()

	// Panel backgrounds for both columns, redrawn on every page from the
	// given top edge down past the bottom margin.
	drawColumns := func(panelTop float64) {
		columnHeight := maxY - panelTop + 4
		c.pdf.SetLineWidth(1)
		c.fill(theme.PanelPrimary)
		c.stroke(theme.PanelBorder)
		c.pdf.RoundedRect(leftX-4, panelTop, leftWidth+8, columnHeight, 8, "1234", "FD")
		c.fill(theme.PanelSecondary)
		c.pdf.RoundedRect(rightX-4, panelTop, rightWidth+8, columnHeight, 8, "1234", "FD")
	}

	drawPageLayout := func(first bool) (float64, float64) {
		c.fill(theme.Background)
		c.pdf.Rect(0, 0, c.pageW, c.pageH, "F")

		if first {
			if theme.PDFLayout == templates.PDFLayoutProfessionalHeader {
				const headerHeight = 112.0
				headerTop := top
				c.fill(theme.HeroBackground)
				c.pdf.RoundedRect(leftX-2, headerTop, totalWidth+4, headerHeight, 6, "1234", "F")

				const contactBoxHeight = 76.0
				contactBoxWidth := rightWidth + 10
				contactBoxX := rightX - 2
				contactBoxY := headerTop + 18
				c.fill(theme.HeroAccent)
				c.pdf.RoundedRect(contactBoxX, contactBoxY, contactBoxWidth, contactBoxHeight, 6, "1234", "F")
				c.stroke("#7da0c4")
				c.pdf.SetLineWidth(0.8)
				c.pdf.RoundedRect(contactBoxX, contactBoxY, contactBoxWidth, contactBoxHeight, 6, "1234", "D")

				c.color(theme.HeroText)
				c.setFont(fontBold, 24)
				c.text(leftX+10, headerTop+36, doc.FullName)
				c.setFont(fontBold, 12)
				c.text(leftX+10, headerTop+58, doc.Headline)

				contactField := func(label, value string, offset, valueX float64) {
					c.setFont(fontBold, 11)
					c.text(contactBoxX+8, contactBoxY+offset, label)
					c.setFont(fontRegular, 11)
					c.text(contactBoxX+valueX, contactBoxY+offset, value)
				}
				contactField("Location:", doc.Location, 18, 56)
				contactField("Phone:", doc.Phone, 34, 48)
				contactField("Email:", doc.Email, 50, 46)

				drawColumns(headerTop + headerHeight + 10)
				startY := headerTop + headerHeight + 26
				return startY, startY
			}

			// Modern header: layered hero with accent bars and a compact
			// contact stack on the right.
			const heroHeight = 120.0
			heroTop := top + 10
			c.fill(theme.HeroBackground)
			c.pdf.RoundedRect(leftX-12, heroTop-10, totalWidth+24, heroHeight+20, 20, "1234", "F")
			c.fill(theme.HeroAccent)
			c.pdf.RoundedRect(leftX+6, heroTop+heroHeight*0.2, totalWidth*0.58, heroHeight*0.48, 18, "1234", "F")
			c.fill(theme.HeroStrip)
			c.pdf.RoundedRect(rightX-8, heroTop+heroHeight*0.2, rightWidth+16, heroHeight*0.22, 14, "1234", "F")
			c.color(theme.HeroText)
			c.setFont(fontBold, 24)
			c.text(leftX+12, heroTop+28, doc.FullName)
			c.setFont(fontRegular, 11)
			c.text(leftX+12, heroTop+50, doc.Headline)
			c.setFont(fontRegular, 8)
			c.text(rightX+6, heroTop+26, "Location: "+doc.Location)
			c.text(rightX+6, heroTop+38, "Phone: "+doc.Phone)
			c.text(rightX+6, heroTop+50, "Email: "+doc.Email)
			c.text(rightX+6, heroTop+62, "LinkedIn: "+doc.LinkedIn)
			c.text(rightX+6, heroTop+74, "GitHub: "+doc.GitHub)

			drawColumns(heroTop + heroHeight + 14)
			return heroTop + heroHeight + 30, heroTop + heroHeight + 38
		}

		// Continuation pages carry a slim header-free ribbon instead of the
		// full hero.
		const ribbonHeight = 24.0
		ribbonTop := top
		c.fill(theme.HeroBackground)
		if theme.PDFLayout == templates.PDFLayoutProfessionalHeader {
			c.pdf.RoundedRect(leftX-2, ribbonTop, totalWidth+4, ribbonHeight, 5, "1234", "F")
		} else {
			c.pdf.RoundedRect(leftX-10, ribbonTop, totalWidth+20, ribbonHeight, 10, "1234", "F")
		}
		c.fill(theme.HeroStrip)
		c.pdf.RoundedRect(rightX-4, ribbonTop+5, rightWidth+8, ribbonHeight-10, 8, "1234", "F")

		panelTop := ribbonTop + ribbonHeight + 8
		drawColumns(panelTop)
		startY := panelTop + 16
		return startY, startY
	}

	leftOps := buildLeftOps(c, doc, leftWidth)
	rightOps := buildRightOps(c, doc, rightWidth)

	newPage := func(first bool) (float64, float64) {
		if !first {
			c.newPage()
		}
		return drawPageLayout(first)
	}

	draw := func(op pdfOp, leftColumn bool, y float64) float64 {
		x := leftX
		if !leftColumn {
			x = rightX
		}
		switch op.kind {
		case opTitle:
			return drawSectionTitle(c, op.title, x, y, style)
		case opLine:
			c.color(theme.TextColor)
			c.setFont(op.font, op.size)
			c.text(x, y, op.text)
			return y + op.leading
		default:
			return y + op.height
		}
	}

	drainColumnOps(leftOps, rightOps, maxY, newPage, draw)
}
