package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCVDocumentInvalidJSON(t *testing.T) {
	doc := ParseCVDocument("{not json")
	assert.Equal(t, CVDocument{}, doc)

	doc = ParseCVDocument("")
	assert.Equal(t, CVDocument{}, doc)
}

func TestParseCVDocumentRoundTrip(t *testing.T) {
	src := CVDocument{
		FullName:         "Jane Doe",
		Headline:         "Engineer",
		CoreCompetencies: []string{"Go", "SQL"},
		Experience: []ExperienceEntry{
			{Role: "Dev", Organization: "Acme", Period: "2020", Bullets: []string{"built things"}},
		},
	}
	payload, err := json.Marshal(src)
	require.NoError(t, err)

	doc := ParseCVDocument(string(payload))
	assert.Equal(t, src, doc)
}

func TestEducationEntryAcceptsStringShape(t *testing.T) {
	raw := `{"education": ["BSc Computer Science", {"course": "MSc", "institution": "UoN", "timeline": "2019"}]}`

	doc := ParseCVDocument(raw)
	require.Len(t, doc.Education, 2)
	assert.Equal(t, EducationEntry{Course: "BSc Computer Science"}, doc.Education[0])
	assert.Equal(t, EducationEntry{Course: "MSc", Institution: "UoN", Timeline: "2019"}, doc.Education[1])
}

func TestEducationEntryBrokenShapeNormalizesEmpty(t *testing.T) {
	raw := `{"education": [42]}`

	doc := ParseCVDocument(raw)
	require.Len(t, doc.Education, 1)
	assert.Equal(t, EducationEntry{}, doc.Education[0])
}

func TestRefereePositionWinsOverTitle(t *testing.T) {
	raw := `{"referees": [
		{"name": "A", "position": "CTO", "title": "Manager"},
		{"name": "B", "title": "Lead"},
		{"name": "C", "position": "VP"}
	]}`

	doc := ParseCVDocument(raw)
	require.Len(t, doc.Referees, 3)
	assert.Equal(t, "CTO", doc.Referees[0].Position)
	assert.Equal(t, "Lead", doc.Referees[1].Position)
	assert.Equal(t, "VP", doc.Referees[2].Position)
}

func TestDefaultDocumentIsPopulated(t *testing.T) {
	doc := DefaultDocument()

	assert.NotEmpty(t, doc.FullName)
	assert.NotEmpty(t, doc.ProfileSummary)
	assert.NotEmpty(t, doc.CoreCompetencies)
	assert.NotEmpty(t, doc.Experience)
	assert.NotEmpty(t, doc.Education)
	assert.NotEmpty(t, doc.Referees)
}
