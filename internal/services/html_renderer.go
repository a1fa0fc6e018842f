package services

import (
	"fmt"
	"html"
	"strings"

	"bonifacengila/cv-portfolio/internal/models"
	"bonifacengila/cv-portfolio/internal/templates"
)

// HTMLRenderer turns a CV document plus a template name into a complete,
// self-contained HTML document with inline styling. Rendering is a pure
// function of its inputs; every user-provided string is escaped.
type HTMLRenderer interface {
	Render(doc models.CVDocument, template string) string
}

type htmlRenderer struct{}

func NewHTMLRenderer() HTMLRenderer {
	return &htmlRenderer{}
}

// skillsPanelSplit is where the Slate layout splits competencies: the first
// six go to the Skills panel, the remainder to Technical Proficiencies. The
// split is positional, not semantic.
const skillsPanelSplit = 6

func (r *htmlRenderer) Render(doc models.CVDocument, template string) string {
	switch template {
	case templates.OneColumnMinimal:
		return renderOneColumnMinimal(doc)
	case templates.TwoColumnProfessional:
		return renderTwoColumnProfessional(doc)
	case templates.TwoColumnSidebar:
		return renderTwoColumnSidebar(doc)
	case templates.TwoColumnSidebarSkills:
		return renderTwoColumnSidebarSkills(doc)
	case templates.TwoColumnAccentPanel:
		return renderTwoColumnAccentPanel(doc)
	case templates.TwoColumnSlateProfile:
		return renderTwoColumnSlateProfile(doc)
	default:
		// One Column - Classic, and the fallback for unknown template names.
		return renderOneColumnClassic(doc)
	}
}

func htmlPage(css string, body string) string {
	return fmt.Sprintf(
		"<html><head><meta charset='UTF-8'><style>%s%s</style></head>\n<body>\n%s\n</body></html>\n",
		css, sharedSectionCSS, body,
	)
}

// htmlList renders a bulleted list, dropping blank entries. Returns "" when
// nothing remains so the caller can omit the fragment entirely.
func htmlList(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		sb.WriteString("<li>")
		sb.WriteString(html.EscapeString(item))
		sb.WriteString("</li>")
	}
	if sb.Len() == 0 {
		return ""
	}
	return "<ul>" + sb.String() + "</ul>"
}

func htmlExperience(experience []models.ExperienceEntry) string {
	var sb strings.Builder
	for _, item := range experience {
		sb.WriteString(fmt.Sprintf(`
            <div class="job">
                <div class="experience-header">
                    <h4>%s</h4>
                    <span class="experience-period">🕒 %s</span>
                </div>
                <div class="experience-org">🏢 %s</div>
                %s
            </div>`,
			html.EscapeString(item.Role),
			html.EscapeString(item.Period),
			html.EscapeString(item.Organization),
			htmlList(item.Bullets),
		))
	}
	return sb.String()
}

func htmlEducation(education []models.EducationEntry) string {
	var sb strings.Builder
	for _, record := range education {
		if record.Course == "" && record.Institution == "" && record.Timeline == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf(`
            <div class="education-entry">
                <div class="education-top">
                    <span class="education-course">📚 %s</span>
                    <span class="education-timeline">%s</span>
                </div>
                <div class="education-institution">🎓 %s</div>
            </div>`,
			html.EscapeString(record.Course),
			html.EscapeString(record.Timeline),
			html.EscapeString(record.Institution),
		))
	}
	return sb.String()
}

func htmlReferees(referees []models.RefereeEntry) string {
	var entries strings.Builder
	for _, ref := range referees {
		var meta strings.Builder
		if ref.Position != "" {
			meta.WriteString(fmt.Sprintf("<span class='referee-field'>🎯 %s</span>", html.EscapeString(ref.Position)))
		}
		if ref.Email != "" {
			meta.WriteString(fmt.Sprintf("<span class='referee-field'>✉️ %s</span>", html.EscapeString(ref.Email)))
		}
		if ref.Phone != "" {
			meta.WriteString(fmt.Sprintf("<span class='referee-field'>📞 %s</span>", html.EscapeString(ref.Phone)))
		}
		entries.WriteString(fmt.Sprintf(`
            <li class='referee'>
                <div class='referee-head'>
                    <span class='referee-name'>🧑‍💼 %s</span>
                    <span class='referee-org'>🏢 %s</span>
                </div>
                <div class='referee-meta'>%s</div>
            </li>`,
			html.EscapeString(ref.Name),
			html.EscapeString(ref.Organization),
			meta.String(),
		))
	}
	if entries.Len() == 0 {
		return ""
	}
	return "<ul class='referees-list'>" + entries.String() + "</ul>"
}

func sectionHeader(title string, icon string) string {
	if title == "" {
		return ""
	}
	return fmt.Sprintf(
		"<div class='section-heading'><span class='section-icon'>%s</span><h2>%s</h2></div>",
		html.EscapeString(icon), html.EscapeString(title),
	)
}

// fragments holds the shared pieces every layout composes from.
type fragments struct {
	name     string
	headline string
	profile  string
	contact  string
	links    string

	linkItems []string

	sectionMain string
	sectionSide string
}

func buildFragments(doc models.CVDocument) fragments {
	f := fragments{
		name:     html.EscapeString(doc.FullName),
		headline: html.EscapeString(doc.Headline),
		profile:  html.EscapeString(doc.ProfileSummary),
	}

	var contact strings.Builder
	if strings.TrimSpace(doc.Location) != "" {
		contact.WriteString(fmt.Sprintf("<strong>Location:</strong> %s<br>", html.EscapeString(doc.Location)))
	}
	if strings.TrimSpace(doc.Phone) != "" {
		contact.WriteString(fmt.Sprintf("<strong>Phone:</strong> %s<br>", html.EscapeString(doc.Phone)))
	}
	if strings.TrimSpace(doc.Email) != "" {
		contact.WriteString(fmt.Sprintf("<strong>Email:</strong> %s", html.EscapeString(doc.Email)))
	}
	if contact.Len() > 0 {
		f.contact = "<p>" + contact.String() + "</p>"
	}

	if url := strings.TrimSpace(doc.LinkedIn); url != "" {
		f.linkItems = append(f.linkItems, fmt.Sprintf("<a href='%s'>LinkedIn</a>", html.EscapeString(url)))
	}
	if url := strings.TrimSpace(doc.GitHub); url != "" {
		f.linkItems = append(f.linkItems, fmt.Sprintf("<a href='%s'>GitHub</a>", html.EscapeString(url)))
	}
	if len(f.linkItems) > 0 {
		f.links = "<p>" + strings.Join(f.linkItems, " | ") + "</p>"
	}

	f.sectionMain = strings.Join([]string{
		sectionHeader("Profile", "🧭") + "<p>" + f.profile + "</p>",
		sectionHeader("Professional Experience", "💼") + htmlExperience(doc.Experience),
		sectionHeader("Education", "🎓") + htmlEducation(doc.Education),
	}, "\n")

	f.sectionSide = strings.Join([]string{
		sectionHeader("Core Competencies", "🧠") + htmlList(doc.CoreCompetencies),
		sectionHeader("Certifications", "📜") + htmlList(doc.Certifications),
		sectionHeader("Languages", "🗣️") + htmlList(doc.Languages),
		sectionHeader("Referees", "🧑‍💼") + htmlReferees(doc.Referees),
	}, "\n")

	return f
}

func renderOneColumnClassic(doc models.CVDocument) string {
	f := buildFragments(doc)
	body := fmt.Sprintf(`
        <div class='cv'>
            <div class='hero'>
                <div>
                    <h1>%s</h1>
                    <p class='headline'>%s</p>
                </div>
                <div class='hero-meta'>
                    %s
                    %s
                </div>
            </div>
            <div class='content'>
                <div class='section-block'>%s</div>
                <div class='section-block'>%s</div>
            </div>
        </div>`,
		f.name, f.headline, f.contact, f.links, f.sectionMain, f.sectionSide)
	return htmlPage(oneColumnCSS, body)
}

func renderOneColumnMinimal(doc models.CVDocument) string {
	f := buildFragments(doc)
	body := fmt.Sprintf(`
        <div class='cv'>
            <h1>%s</h1>
            <p class='meta'>%s</p>
            %s
            %s
            %s
            %s
        </div>`,
		f.name, f.headline, f.contact, f.links, f.sectionMain, f.sectionSide)
	return htmlPage(oneColumnMinimalCSS, body)
}

func renderTwoColumnProfessional(doc models.CVDocument) string {
	f := buildFragments(doc)
	body := fmt.Sprintf(`
        <div class='cv'>
            <div class='header'>
                <div class='header-grid'>
                    <div class='header-main'>
                        <h1>%s</h1>
                        <p class='headline'>%s</p>
                    </div>
                    <div class='header-contact'>
                        %s
                        %s
                    </div>
                </div>
            </div>
            <div class='grid'>
                <div class='main-panel'>%s</div>
                <div class='side-panel'>%s</div>
            </div>
        </div>`,
		f.name, f.headline, f.contact, f.links, f.sectionMain, f.sectionSide)
	return htmlPage(twoColumnCSS, body)
}

func renderTwoColumnSidebar(doc models.CVDocument) string {
	f := buildFragments(doc)
	body := fmt.Sprintf(`
        <div class='cv'>
            <aside class='sidebar'>
                <h1>%s</h1>
                <p>%s</p>
                %s
                %s
                %s
            </aside>
            <main class='content'>
                %s
            </main>
        </div>`,
		f.name, f.headline, f.contact, f.links, f.sectionSide, f.sectionMain)
	return htmlPage(twoColumnSidebarCSS, body)
}

func renderTwoColumnSidebarSkills(doc models.CVDocument) string {
	f := buildFragments(doc)

	var contact strings.Builder
	contactField := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			contact.WriteString(fmt.Sprintf("<strong>%s</strong><span>%s</span>", label, html.EscapeString(value)))
		}
	}
	contactField("Location", doc.Location)
	contactField("Phone", doc.Phone)
	contactField("Email", doc.Email)

	sidebarSection := func(title, inner string) string {
		if inner == "" {
			return ""
		}
		return fmt.Sprintf("<div class='sidebar-section'><h2>%s</h2>%s</div>", title, inner)
	}

	body := fmt.Sprintf(`
        <div class='cv'>
            <aside class='sidebar'>
                <h1>%s</h1>
                <p class='headline'>%s</p>
                <div class='contact-block'>%s</div>
                %s
                %s
                <div class='links'>%s</div>
            </aside>
            <main class='content'>
                <div class='section-block'>
                    %s
                </div>
                <div class='section-block'>
                    <h2>Certifications</h2>
                    %s
                </div>
                <div class='section-block'>
                    <h2>Referees</h2>
                    %s
                </div>
            </main>
        </div>`,
		f.name, f.headline, contact.String(),
		sidebarSection("Skills", htmlList(doc.CoreCompetencies)),
		sidebarSection("Languages", htmlList(doc.Languages)),
		f.links,
		f.sectionMain,
		htmlList(doc.Certifications),
		htmlReferees(doc.Referees))
	return htmlPage(twoColumnSidebarSkillsCSS, body)
}

func renderTwoColumnAccentPanel(doc models.CVDocument) string {
	f := buildFragments(doc)
	body := fmt.Sprintf(`
        <div class='cv'>
            <div class='hero'>
                <div>
                    <h1>%s</h1>
                    <p class='headline'>%s</p>
                </div>
                <div class='hero-meta'>
                    %s
                    <div class='hero-links'>%s</div>
                </div>
            </div>
            <div class='main'>
                <div class='main-panel'>%s</div>
                <aside class='aside-panel'>%s</aside>
            </div>
        </div>`,
		f.name, f.headline, f.contact, f.links, f.sectionMain, f.sectionSide)
	return htmlPage(twoColumnAccentCSS, body)
}

func renderTwoColumnSlateProfile(doc models.CVDocument) string {
	f := buildFragments(doc)

	var details strings.Builder
	detailRow := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		details.WriteString(fmt.Sprintf(
			"<div class='detail-row'><span class='detail-label'>%s</span><span class='detail-value'>%s</span></div>",
			label, html.EscapeString(value),
		))
	}
	detailRow("Name", doc.FullName)
	detailRow("Address", doc.Location)
	detailRow("Phone", doc.Phone)
	detailRow("Email", doc.Email)

	linksRow := ""
	if len(f.linkItems) > 0 {
		linksRow = "<div class='links-row'>" + strings.Join(f.linkItems, " | ") + "</div>"
	}

	// Positional split: first six competencies are Skills, the rest Technical
	// Proficiencies. Languages stand in when there are no competencies at all.
	skillsEntries := doc.CoreCompetencies
	var technicalEntries []string
	if len(skillsEntries) > skillsPanelSplit {
		technicalEntries = skillsEntries[skillsPanelSplit:]
		skillsEntries = skillsEntries[:skillsPanelSplit]
	}
	if len(skillsEntries) == 0 {
		skillsEntries = doc.Languages
	}

	sidebarSection := func(title, inner string) string {
		if inner == "" {
			return ""
		}
		return fmt.Sprintf("<div class='sidebar-section'><h3>%s</h3>%s</div>", title, inner)
	}

	refereesSection := ""
	if refs := htmlReferees(doc.Referees); refs != "" {
		refereesSection = fmt.Sprintf("<div class='section-body'><h2>Referees</h2>%s</div>", refs)
	}

	body := fmt.Sprintf(`
        <div class='cv'>
            <div class='name-banner'>
                <h1>%s</h1>
            </div>
            <div class='layout'>
                <aside class='sidebar'>
                    <div class='sidebar-section'>
                        <h3>Personal Details</h3>
                        %s
                        %s
                    </div>
                    %s
                    %s
                    %s
                    %s
                </aside>
                <div class='main-area'>
                    <div class='summary'><p>%s</p></div>
                    <div class='section-body'>
                        <h2>Work Experience</h2>
                        %s
                    </div>
                    <div class='divider'></div>
                    <div class='section-body'>
                        <h2>Courses and Certificates</h2>
                        %s
                    </div>
                    %s
                </div>
            </div>
        </div>`,
		f.name,
		details.String(), linksRow,
		sidebarSection("🎓 Education", htmlEducation(doc.Education)),
		sidebarSection("🧠 Skills", htmlList(skillsEntries)),
		sidebarSection("⚙️ Technical Proficiencies", htmlList(technicalEntries)),
		sidebarSection("🗣️ Languages", htmlList(doc.Languages)),
		f.profile,
		htmlExperience(doc.Experience),
		htmlList(doc.Certifications),
		refereesSection)
	return htmlPage(twoColumnSlateCSS, body)
}
