package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bonifacengila/cv-portfolio/internal/models"
	"bonifacengila/cv-portfolio/internal/templates"
)

func sampleDocument() models.CVDocument {
	return models.CVDocument{
		FullName:       "Jane Doe",
		Headline:       "Platform Engineer",
		Location:       "Nairobi, Kenya",
		Phone:          "+254700000001",
		Email:          "jane@example.test",
		LinkedIn:       "https://www.linkedin.com/in/janedoe",
		GitHub:         "https://github.com/janedoe",
		ProfileSummary: "Builds reliable platforms.",
		CoreCompetencies: []string{
			"Kubernetes", "Terraform", "Go", "PostgreSQL", "Observability", "CI/CD", "Networking", "Security",
		},
		Experience: []models.ExperienceEntry{
			{Role: "Platform Engineer", Organization: "Acme", Period: "2022 - 2025",
				Bullets: []string{"Ran the cluster fleet", "Cut deploy times in half"}},
		},
		Education: []models.EducationEntry{
			{Course: "BSc Computer Science", Institution: "University of Nairobi", Timeline: "2015 - 2019"},
		},
		Certifications: []string{"CKA", "AWS SAA"},
		Languages:      []string{"English", "Swahili"},
		Referees: []models.RefereeEntry{
			{Name: "John Roe", Organization: "Acme", Position: "CTO", Email: "john@acme.test", Phone: "+254700000002"},
		},
	}
}

func TestRenderAllTemplatesProduceCompletePages(t *testing.T) {
	r := NewHTMLRenderer()
	doc := sampleDocument()

	for _, name := range templates.Available {
		page := r.Render(doc, name)
		assert.True(t, strings.HasPrefix(page, "<html>"), name)
		assert.Contains(t, page, "</html>", name)
		assert.Contains(t, page, "<style>", name)
		assert.Contains(t, page, "Jane Doe", name)
		assert.Contains(t, page, "Builds reliable platforms.", name)
		assert.Contains(t, page, "Platform Engineer", name)
		assert.Contains(t, page, "BSc Computer Science", name)
		assert.Contains(t, page, "John Roe", name)
	}
}

func TestRenderUnknownTemplateFallsBackToClassic(t *testing.T) {
	r := NewHTMLRenderer()
	doc := sampleDocument()

	assert.Equal(t, r.Render(doc, templates.OneColumnClassic), r.Render(doc, "No Such Template"))
}

func TestRenderEscapesUserContent(t *testing.T) {
	r := NewHTMLRenderer()
	doc := sampleDocument()
	doc.FullName = `<script>alert("x")</script>`
	doc.ProfileSummary = "Tom & Jerry <b>bold</b>"
	doc.CoreCompetencies = []string{"<img src=x onerror=alert(1)>"}

	for _, name := range templates.Available {
		page := r.Render(doc, name)
		assert.NotContains(t, page, "<script>", name)
		assert.NotContains(t, page, "<img src=x", name)
		assert.Contains(t, page, "&lt;script&gt;", name)
		assert.Contains(t, page, "Tom &amp; Jerry", name)
	}
}

func TestRenderMinimalSectionOrder(t *testing.T) {
	r := NewHTMLRenderer()
	page := r.Render(sampleDocument(), templates.OneColumnMinimal)

	headings := []string{
		"Profile",
		"Professional Experience",
		"Education",
		"Core Competencies",
		"Certifications",
		"Languages",
		"Referees",
	}
	cursor := 0
	for _, heading := range headings {
		needle := "<h2>" + heading + "</h2>"
		idx := strings.Index(page[cursor:], needle)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", heading)
		cursor += idx + len(needle)
		// Each heading appears exactly once.
		assert.Equal(t, -1, strings.Index(page[cursor:], needle), "duplicate section %q", heading)
	}
}

func TestEmptyFragmentsCollapse(t *testing.T) {
	assert.Empty(t, htmlList(nil))
	assert.Empty(t, htmlList([]string{"  ", ""}))
	assert.Empty(t, htmlReferees(nil))
	assert.Empty(t, htmlEducation([]models.EducationEntry{{}}))

	r := NewHTMLRenderer()
	doc := sampleDocument()
	doc.Referees = nil
	page := r.Render(doc, templates.OneColumnMinimal)
	// The stylesheet still carries the selector; only the markup must go.
	assert.NotContains(t, page, "class='referees-list'")
}

func TestRenderContactLinesOmitBlanks(t *testing.T) {
	r := NewHTMLRenderer()
	doc := sampleDocument()
	doc.Phone = ""
	doc.LinkedIn = ""

	page := r.Render(doc, templates.TwoColumnProfessional)
	assert.NotContains(t, page, "Phone:")
	assert.NotContains(t, page, ">LinkedIn</a>")
	assert.Contains(t, page, "Email:")
	assert.Contains(t, page, ">GitHub</a>")
}

func TestRenderSlateSkillsSplit(t *testing.T) {
	r := NewHTMLRenderer()
	doc := sampleDocument()

	page := r.Render(doc, templates.TwoColumnSlateProfile)
	require.Contains(t, page, "Technical Proficiencies")

	// First six stay under Skills, the rest move to the proficiency panel.
	skillsIdx := strings.Index(page, "Skills")
	techIdx := strings.Index(page, "Technical Proficiencies")
	seventhIdx := strings.Index(page, "Networking")
	require.Greater(t, techIdx, skillsIdx)
	assert.Greater(t, seventhIdx, techIdx)

	// With six or fewer competencies the proficiency panel disappears.
	doc.CoreCompetencies = doc.CoreCompetencies[:4]
	page = r.Render(doc, templates.TwoColumnSlateProfile)
	assert.NotContains(t, page, "Technical Proficiencies")
}

func TestRenderSlateLanguagesStandInForSkills(t *testing.T) {
	r := NewHTMLRenderer()
	doc := sampleDocument()
	doc.CoreCompetencies = nil

	page := r.Render(doc, templates.TwoColumnSlateProfile)
	skillsIdx := strings.Index(page, "Skills</h3>")
	require.GreaterOrEqual(t, skillsIdx, 0)
	assert.Contains(t, page[skillsIdx:], "Swahili")
}
