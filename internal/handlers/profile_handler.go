package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"bonifacengila/cv-portfolio/internal/models"
	"bonifacengila/cv-portfolio/internal/repositories"
)

type ProfileHandler struct {
	profileRepo repositories.ProfileRepository
	versionRepo repositories.VersionRepository
}

func NewProfileHandler(
	profileRepo repositories.ProfileRepository,
	versionRepo repositories.VersionRepository,
) *ProfileHandler {
	return &ProfileHandler{
		profileRepo: profileRepo,
		versionRepo: versionRepo,
	}
}

func (h *ProfileHandler) HandleListProfiles(c *fiber.Ctx) error {
	profiles, err := h.profileRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list profiles",
		})
	}
	return c.JSON(fiber.Map{
		"profiles": profiles,
	})
}

type createProfileRequest struct {
	Name string `json:"name"`
}

// HandleCreateProfile creates a named profile. The seed version copies the
// current default profile's latest document so a new profile starts from a
// real CV rather than a blank one.
func (h *ProfileHandler) HandleCreateProfile(c *fiber.Ctx) error {
	var req createProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Profile name is required",
		})
	}

	seed := models.DefaultDocument()
	if current, err := h.versionRepo.FindDefaultLatest(); err == nil && current != nil {
		seed = current.Document()
	}

	profile, err := h.profileRepo.Create(name, seed)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Failed to create profile (name may already exist)",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"profile": profile,
	})
}

func (h *ProfileHandler) HandleSetDefault(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid profile ID",
		})
	}

	if _, err := h.profileRepo.FindByID(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	if err := h.profileRepo.SetDefault(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to set default profile",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Default profile updated",
	})
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
