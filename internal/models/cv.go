package models

import "encoding/json"

// CVDocument is the structured CV record stored as JSON inside a version row.
// Every field is optional; renderers omit whatever is blank.
type CVDocument struct {
	FullName         string            `json:"full_name"`
	Headline         string            `json:"headline"`
	Location         string            `json:"location"`
	Phone            string            `json:"phone"`
	Email            string            `json:"email"`
	LinkedIn         string            `json:"linkedin"`
	GitHub           string            `json:"github"`
	ProfileSummary   string            `json:"profile_summary"`
	CoreCompetencies []string          `json:"core_competencies"`
	Experience       []ExperienceEntry `json:"experience"`
	Education        []EducationEntry  `json:"education"`
	Certifications   []string          `json:"certifications"`
	Languages        []string          `json:"languages"`
	Referees         []RefereeEntry    `json:"referees"`
}

type ExperienceEntry struct {
	Role         string   `json:"role"`
	Organization string   `json:"organization"`
	Period       string   `json:"period"`
	Bullets      []string `json:"bullets"`
}

// EducationEntry accepts two historical shapes: a structured object, or a bare
// string which normalizes to {Course: s}. Normalization never fails.
type EducationEntry struct {
	Course      string `json:"course"`
	Institution string `json:"institution"`
	Timeline    string `json:"timeline"`
}

func (e *EducationEntry) UnmarshalJSON(data []byte) error {
	var course string
	if err := json.Unmarshal(data, &course); err == nil {
		*e = EducationEntry{Course: course}
		return nil
	}

	var record struct {
		Course      string `json:"course"`
		Institution string `json:"institution"`
		Timeline    string `json:"timeline"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		// Unrecognized shape coerces to an empty record rather than failing.
		*e = EducationEntry{}
		return nil
	}
	*e = EducationEntry(record)
	return nil
}

// RefereeEntry's role field is canonically "position"; older documents used
// "title". Both keys are accepted on read and "position" wins when both exist.
type RefereeEntry struct {
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
	Position     string `json:"position"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

func (r *RefereeEntry) UnmarshalJSON(data []byte) error {
	var record struct {
		Name         string `json:"name"`
		Organization string `json:"organization"`
		Position     string `json:"position"`
		Title        string `json:"title"`
		Email        string `json:"email"`
		Phone        string `json:"phone"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}
	position := record.Position
	if position == "" {
		position = record.Title
	}
	*r = RefereeEntry{
		Name:         record.Name,
		Organization: record.Organization,
		Position:     position,
		Email:        record.Email,
		Phone:        record.Phone,
	}
	return nil
}

// ParseCVDocument deserializes a stored cv_json payload, tolerating the legacy
// field shapes above. A broken payload yields an empty document, not an error.
func ParseCVDocument(raw string) CVDocument {
	var doc CVDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return CVDocument{}
	}
	return doc
}

// DefaultDocument is the hardcoded template every new profile's "Default v1"
// version is cloned from.
func DefaultDocument() CVDocument {
	return CVDocument{
		FullName: "ALEX KAMAU MWANGI",
		Headline: "IT Officer | IAM | IT Operations | Security",
		Location: "Kilifi, Kenya",
		Phone:    "+254700000000",
		Email:    "alex.mwangi@example.com",
		LinkedIn: "https://www.linkedin.com/in/alex-mwangi",
		GitHub:   "https://github.com/alexmwangi",
		ProfileSummary: "Highly skilled IT professional with expertise in IT system administration, " +
			"network administration, IT security, and Identity & Access Management (IAM). Proven " +
			"track record in managing IT infrastructure, optimizing services, and ensuring " +
			"continuous operations within global NGO environments. Committed to delivering " +
			"exceptional IT support and driving organizational success through secure, innovative " +
			"technology solutions.",
		CoreCompetencies: []string{
			"Identity & Access Management (IAM): User Identity Lifecycle, SSO, MFA, Conditional Access",
			"Cloud & Workplace Tech: Azure AD / Entra ID, Microsoft 365, Exchange Online, AWS",
			"IT Operations & Security: ITIL Principles, Incident Management, Endpoint Security",
			"Service Delivery & Operations: ServiceNow, incident management, documentation",
			"Technical Support: Windows & macOS support, hardware/software troubleshooting",
			"Active Directory & Azure AD Management: User accounts, groups, and permissions",
			"Network Fundamentals: TCP/IP, DNS, DHCP, VPN",
			"Customer Service & Communication: Strong verbal and written skills",
		},
		Experience: []ExperienceEntry{
			{
				Role:         "IT OFFICER",
				Organization: "Plan International Kenya, Coastal Hub",
				Period:       "March 2024 - December 2025",
				Bullets: []string{
					"Managed IT infrastructure, servers, and networks to ensure high availability, security, and performance.",
					"Configured user access, virtualized environments, and server applications in line with IAM governance.",
					"Provided first- to mid-level helpdesk support and conducted staff training on secure authentication.",
					"Maintained accurate documentation and prepared regular IT performance reports.",
					"Managed service tickets on ServiceNow, ensuring timely documentation of incidents and resolutions.",
				},
			},
			{
				Role:         "IT ASSISTANT",
				Organization: "Plan International Kenya, Coastal Hub",
				Period:       "November 2022 - February 2024",
				Bullets: []string{
					"Executed user identity lifecycle activities by configuring user accounts and permissions.",
					"Collaborated with IT management on global directory services and email groups.",
					"Optimized IT infrastructure for efficiency and supported system upgrades and backups.",
					"Delivered Tier 1 support for desktop, network, and infrastructure issues.",
				},
			},
		},
		Education: []EducationEntry{
			{Course: "Master of Science in Computer Science", Institution: "UNICAF University", Timeline: "Ongoing"},
			{Course: "Bachelor of Business Information Technology", Institution: "Taita Taveta University", Timeline: "November 2019"},
		},
		Certifications: []string{
			"Google IT Support Professional Certification",
			"Oracle Cloud Infrastructure 2025 Certified Architect Associate",
			"CIPIT's Data Protection Course, Strathmore University",
		},
		Languages: []string{"English (Fluent)", "Swahili (Native)"},
		Referees: []RefereeEntry{
			{
				Name:         "Winfred Mukonza",
				Organization: "Plan International Kenya",
				Position:     "Country Sponsorship Manager",
				Email:        "winfred.mukonza@example.org",
				Phone:        "+254713000001",
			},
			{
				Name:         "Eston Nyaga",
				Organization: "Plan International Kenya, Coast Hub",
				Position:     "Program Area Manager",
				Email:        "eston.nyaga@example.org",
				Phone:        "+254722000002",
			},
		},
	}
}
