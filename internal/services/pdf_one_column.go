package services

import (
	"fmt"

	"bonifacengila/cv-portfolio/internal/models"
	"bonifacengila/cv-portfolio/internal/templates"
)

// One-column drawing strategy: a single vertical cursor walks the page top to
// bottom; before any atomic unit (a title or one wrapped line) is drawn, the
// cursor checks whether the unit still fits above the bottom margin and starts
// a fresh page if not. A unit is never split across that check.

type oneColumnCursor struct {
	c      *pdfCanvas
	y      float64
	maxY   float64
	topY   float64
	onPage func() float64 // redraws persistent chrome, returns the reset baseline
}

func (cur *oneColumnCursor) ensure(height float64) {
	if cur.y+height > cur.maxY {
		cur.c.newPage()
		if cur.onPage != nil {
			cur.y = cur.onPage()
		} else {
			cur.y = cur.topY
		}
	}
}

func (cur *oneColumnCursor) wrappedText(text string, x, width float64, font string, size, leading float64, textColor string) {
	safe := pdfSafeText(text)
	for _, line := range WrapText(cur.c, safe, font, size, width) {
		cur.ensure(leading)
		cur.c.color(textColor)
		cur.c.setFont(font, size)
		cur.c.text(x, cur.y, line)
		cur.y += leading
	}
}

func (cur *oneColumnCursor) title(name string, x float64, style titleStyle) {
	cur.ensure(sectionTitleHeight)
	cur.y = drawSectionTitle(cur.c, name, x, cur.y, style)
}

func (cur *oneColumnCursor) gap(height float64) {
	cur.y += height
}

func renderPDFOneColumn(c *pdfCanvas, doc models.CVDocument, theme templates.Theme) {
	const (
		left   = 28.0
		top    = 34.0
		bottom = 28.0
	)
	right := c.pageW - 28
	contentWidth := right - left
	maxY := c.pageH - bottom

	linkColor := theme.LinkColor
	if linkColor == "" {
		linkColor = theme.HeroStrip
	}

	style := defaultTitleStyle()
	if theme.PDFLayout != templates.PDFLayoutMinimalClean {
		style.title = theme.HeroStrip
		style.line = theme.Border
		if style.line == "" {
			style.line = theme.HeroStrip
		}
		style.badge = style.line
	}

	cur := &oneColumnCursor{c: c, y: top, maxY: maxY, topY: top}

	if theme.PDFLayout == templates.PDFLayoutMinimalClean {
		drawMinimalFrame := func() {
			c.fill(theme.Background)
			c.pdf.Rect(0, 0, c.pageW, c.pageH, "F")
			c.fill(theme.HeroStrip)
			c.pdf.Rect(left-18, 0, 4, c.pageH, "F")
		}
		cur.onPage = func() float64 {
			drawMinimalFrame()
			return top + 6
		}

		drawMinimalFrame()
		c.color(theme.HeroText)
		c.setFont(fontBold, 30)
		c.text(left, cur.y, doc.FullName)
		cur.y += 34
		c.setFont(fontRegular, 17)
		c.text(left, cur.y, doc.Headline)
		cur.y += 28
		c.color(theme.TextColor)
		c.setFont(fontRegular, 14)
		for _, line := range []string{
			"Location: " + doc.Location,
			"Phone: " + doc.Phone,
			"Email: " + doc.Email,
		} {
			c.text(left, cur.y, line)
			cur.y += 24
		}
		c.color(linkColor)
		c.setFont(fontRegular, 13)
		c.text(left, cur.y, "LinkedIn | GitHub")
		cur.y += 24
	} else {
		// Classic hero: dark page, rounded hero band, accent bar, then one
		// bordered panel holding the content. The page background is redrawn
		// on every continuation page.
		drawClassicBackground := func() {
			c.fill(theme.Background)
			c.pdf.Rect(0, 0, c.pageW, c.pageH, "F")
		}
		cur.onPage = func() float64 {
			drawClassicBackground()
			return top
		}

		drawClassicBackground()
		const heroHeight = 120.0
		heroTop := top - 16
		c.fill(theme.HeroBackground)
		c.pdf.RoundedRect(left-16, heroTop-8, contentWidth+32, heroHeight+16, 20, "1234", "F")
		c.fill(theme.HeroAccent)
		c.pdf.Rect(left, heroTop+heroHeight*0.1, contentWidth*0.68, heroHeight*0.5, "F")
		c.color(theme.HeroText)
		c.setFont(fontBold, 22)
		c.text(left+8, heroTop+28, doc.FullName)
		c.setFont(fontRegular, 12)
		c.text(left+8, heroTop+48, doc.Headline)
		c.setFont(fontRegular, 10)
		c.text(right-160, heroTop+28, "Location: "+doc.Location)
		c.text(right-160, heroTop+44, "Phone: "+doc.Phone)
		c.text(right-160, heroTop+60, "Email: "+doc.Email)

		cur.y = heroTop + heroHeight + 28
		c.color(linkColor)
		c.text(left, cur.y-8, fmt.Sprintf("LinkedIn: %s | GitHub: %s", doc.LinkedIn, doc.GitHub))
		cur.y += 16

		border := theme.Border
		if border == "" {
			border = theme.HeroStrip
		}
		panelTop := cur.y - 12
		c.fill(theme.PanelPrimary)
		c.pdf.Rect(left-12, panelTop, contentWidth+24, maxY-panelTop+6, "F")
		c.stroke(border)
		c.pdf.SetLineWidth(1)
		c.pdf.Rect(left-12, panelTop, contentWidth+24, maxY-panelTop+6, "D")
		cur.y += 12
	}

	// Fixed section order; every item passes through the wrap engine so the
	// cursor advances one atomic line at a time.
	cur.ensure(40)
	cur.title("Profile", left, style)
	cur.wrappedText(doc.ProfileSummary, left, contentWidth, fontRegular, 10, 13, theme.TextColor)
	cur.gap(6)

	cur.ensure(40)
	cur.title("Core Competencies", left, style)
	for _, item := range doc.CoreCompetencies {
		cur.wrappedText("- "+item, left, contentWidth, fontRegular, 10, 13, theme.TextColor)
	}
	cur.gap(6)

	cur.ensure(40)
	cur.title("Professional Experience", left, style)
	for _, exp := range doc.Experience {
		cur.ensure(28)
		header := fmt.Sprintf("%s - %s | %s", exp.Role, exp.Organization, exp.Period)
		cur.wrappedText(header, left, contentWidth, fontBold, 10, 13, theme.TextColor)
		for _, bullet := range exp.Bullets {
			cur.wrappedText("  - "+bullet, left, contentWidth, fontRegular, 10, 13, theme.TextColor)
		}
		cur.gap(3)
	}

	cur.ensure(36)
	cur.title("Education", left, style)
	for _, record := range doc.Education {
		if line := educationLine(record); line != "" {
			cur.wrappedText("- "+line, left, contentWidth, fontRegular, 10, 13, theme.TextColor)
		}
	}

	cur.ensure(36)
	cur.title("Certifications", left, style)
	for _, item := range doc.Certifications {
		cur.wrappedText("- "+item, left, contentWidth, fontRegular, 10, 13, theme.TextColor)
	}

	cur.ensure(36)
	cur.title("Languages", left, style)
	for _, item := range doc.Languages {
		cur.wrappedText("- "+item, left, contentWidth, fontRegular, 10, 13, theme.TextColor)
	}

	cur.ensure(42)
	cur.title("Referees", left, style)
	for idx, ref := range doc.Referees {
		line := fmt.Sprintf("%d.", idx+1)
		if summary := flattenedReferee(ref); summary != "" {
			line = fmt.Sprintf("%d. %s", idx+1, summary)
		}
		cur.wrappedText(line, left, contentWidth, fontRegular, 10, 13, theme.TextColor)
	}
}
