package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"bonifacengila/cv-portfolio/internal/models"
	"bonifacengila/cv-portfolio/internal/repositories"
	"bonifacengila/cv-portfolio/internal/services"
)

type VersionHandler struct {
	profileRepo repositories.ProfileRepository
	versionRepo repositories.VersionRepository
}

func NewVersionHandler(
	profileRepo repositories.ProfileRepository,
	versionRepo repositories.VersionRepository,
) *VersionHandler {
	return &VersionHandler{
		profileRepo: profileRepo,
		versionRepo: versionRepo,
	}
}

func (h *VersionHandler) HandleListVersions(c *fiber.Ctx) error {
	profileID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid profile ID",
		})
	}
	if _, err := h.profileRepo.FindByID(profileID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	versions, err := h.versionRepo.FindByProfile(profileID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list versions",
		})
	}
	return c.JSON(fiber.Map{
		"versions": versions,
	})
}

// versionEditor is the line-oriented shape used by editing clients. List
// sections are newline separated; experience, education, and referees use
// pipe-delimited headers with one blank line between records.
type versionEditor struct {
	CoreCompetencies string `json:"core_competencies"`
	Experience       string `json:"experience"`
	Education        string `json:"education"`
	Certifications   string `json:"certifications"`
	Languages        string `json:"languages"`
	Referees         string `json:"referees"`
}

func editorShape(doc models.CVDocument) versionEditor {
	return versionEditor{
		CoreCompetencies: services.ListToText(doc.CoreCompetencies),
		Experience:       services.ExperienceToText(doc.Experience),
		Education:        services.EducationToText(doc.Education),
		Certifications:   services.ListToText(doc.Certifications),
		Languages:        services.ListToText(doc.Languages),
		Referees:         services.RefereesToText(doc.Referees),
	}
}

func (h *VersionHandler) HandleGetVersion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid version ID",
		})
	}

	version, err := h.versionRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Version not found",
		})
	}

	doc := version.Document()
	return c.JSON(fiber.Map{
		"version":  version,
		"document": doc,
		"editor":   editorShape(doc),
	})
}

type updateVersionRequest struct {
	VersionName string             `json:"version_name"`
	Document    *models.CVDocument `json:"document"`
	Editor      *versionEditor     `json:"editor"`

	FullName       string `json:"full_name"`
	Headline       string `json:"headline"`
	Location       string `json:"location"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	LinkedIn       string `json:"linkedin"`
	GitHub         string `json:"github"`
	ProfileSummary string `json:"profile_summary"`
}

// buildDocument assembles the stored document from whichever shape the
// client sent. A full structured document wins; otherwise scalar fields plus
// the editor text sections are applied over the current document.
func (req *updateVersionRequest) buildDocument(current models.CVDocument) models.CVDocument {
	if req.Document != nil {
		return *req.Document
	}

	doc := current
	doc.FullName = req.FullName
	doc.Headline = req.Headline
	doc.Location = req.Location
	doc.Phone = req.Phone
	doc.Email = req.Email
	doc.LinkedIn = req.LinkedIn
	doc.GitHub = req.GitHub
	doc.ProfileSummary = req.ProfileSummary
	if req.Editor != nil {
		doc.CoreCompetencies = services.TextToList(req.Editor.CoreCompetencies)
		doc.Experience = services.TextToExperience(req.Editor.Experience)
		doc.Education = services.TextToEducation(req.Editor.Education)
		doc.Certifications = services.TextToList(req.Editor.Certifications)
		doc.Languages = services.TextToList(req.Editor.Languages)
		doc.Referees = services.TextToReferees(req.Editor.Referees)
	}
	return doc
}

func (h *VersionHandler) HandleUpdateVersion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid version ID",
		})
	}

	version, err := h.versionRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Version not found",
		})
	}

	var req updateVersionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	name := strings.TrimSpace(req.VersionName)
	if name == "" {
		name = version.VersionName
	}

	doc := req.buildDocument(version.Document())
	if err := h.versionRepo.Update(id, name, doc); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update version",
		})
	}

	updated, err := h.versionRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reload version",
		})
	}
	return c.JSON(fiber.Map{
		"version": updated,
	})
}

type forkVersionRequest struct {
	VersionName string `json:"version_name"`
}

// HandleForkVersion copies an existing version into a new sibling under the
// same profile. The source is never modified.
func (h *VersionHandler) HandleForkVersion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid version ID",
		})
	}

	version, err := h.versionRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Version not found",
		})
	}

	var req forkVersionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	name := strings.TrimSpace(req.VersionName)
	if name == "" {
		name = version.VersionName + " (copy)"
	}

	fork, err := h.versionRepo.Fork(version.ProfileID, name, version.Document())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fork version",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"version": fork,
	})
}
