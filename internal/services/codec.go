package services

import (
	"regexp"
	"strings"

	"bonifacengila/cv-portfolio/internal/models"
)

// Pipe-delimited text encodings the editor uses for multi-entry fields:
//
//	experience  blocks of "Role || Organization || Period" + "- bullet" lines,
//	            blocks separated by blank lines
//	education   one "Course || Institution || Timeline" line per entry
//	referees    one "Name || Organization || Position || Email || Phone" line
//	lists       one item per line
//
// Decoding is best-effort: missing fields stay blank, blank lines are skipped.

var blockSplitter = regexp.MustCompile(`\n\s*\n`)

func TextToList(value string) []string {
	var items []string
	for _, line := range strings.Split(value, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			items = append(items, line)
		}
	}
	return items
}

func ListToText(items []string) string {
	return strings.Join(items, "\n")
}

func splitFields(line string) []string {
	parts := strings.Split(line, "||")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func fieldAt(parts []string, idx int) string {
	if idx < len(parts) {
		return parts[idx]
	}
	return ""
}

func ExperienceToText(experience []models.ExperienceEntry) string {
	var blocks []string
	for _, item := range experience {
		lines := []string{strings.TrimSpace(item.Role + " || " + item.Organization + " || " + item.Period)}
		for _, bullet := range item.Bullets {
			if strings.TrimSpace(bullet) != "" {
				lines = append(lines, "- "+bullet)
			}
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func TextToExperience(raw string) []models.ExperienceEntry {
	var entries []models.ExperienceEntry
	for _, block := range blockSplitter.Split(strings.TrimSpace(raw), -1) {
		var lines []string
		for _, line := range strings.Split(block, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			continue
		}
		header := splitFields(lines[0])
		entry := models.ExperienceEntry{
			Role:         fieldAt(header, 0),
			Organization: fieldAt(header, 1),
			Period:       fieldAt(header, 2),
		}
		for _, line := range lines[1:] {
			if bullet := strings.TrimSpace(strings.TrimLeft(line, "- ")); bullet != "" {
				entry.Bullets = append(entry.Bullets, bullet)
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func EducationToText(education []models.EducationEntry) string {
	var lines []string
	for _, record := range education {
		lines = append(lines, strings.Join([]string{record.Course, record.Institution, record.Timeline}, " || "))
	}
	return strings.Join(lines, "\n")
}

func TextToEducation(raw string) []models.EducationEntry {
	var records []models.EducationEntry
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := splitFields(line)
		records = append(records, models.EducationEntry{
			Course:      fieldAt(parts, 0),
			Institution: fieldAt(parts, 1),
			Timeline:    fieldAt(parts, 2),
		})
	}
	return records
}

func RefereesToText(referees []models.RefereeEntry) string {
	var lines []string
	for _, ref := range referees {
		lines = append(lines, strings.Join([]string{ref.Name, ref.Organization, ref.Position, ref.Email, ref.Phone}, " || "))
	}
	return strings.Join(lines, "\n")
}

func TextToReferees(raw string) []models.RefereeEntry {
	var refs []models.RefereeEntry
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := splitFields(line)
		refs = append(refs, models.RefereeEntry{
			Name:         fieldAt(parts, 0),
			Organization: fieldAt(parts, 1),
			Position:     fieldAt(parts, 2),
			Email:        fieldAt(parts, 3),
			Phone:        fieldAt(parts, 4),
		})
	}
	return refs
}
