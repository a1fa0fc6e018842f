package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"bonifacengila/cv-portfolio/internal/models"
	"bonifacengila/cv-portfolio/internal/repositories"
	"bonifacengila/cv-portfolio/internal/services"
	"bonifacengila/cv-portfolio/internal/templates"
)

type RenderHandler struct {
	versionRepo repositories.VersionRepository
	htmlRender  services.HTMLRenderer
	pdfRender   services.PDFRenderer
}

func NewRenderHandler(
	versionRepo repositories.VersionRepository,
	htmlRender services.HTMLRenderer,
	pdfRender services.PDFRenderer,
) *RenderHandler {
	return &RenderHandler{
		versionRepo: versionRepo,
		htmlRender:  htmlRender,
		pdfRender:   pdfRender,
	}
}

// resolveDocument picks the document to render: an explicit version_id when
// given, otherwise the default profile's latest version, otherwise the
// built-in sample document.
func (h *RenderHandler) resolveDocument(c *fiber.Ctx) (models.CVDocument, error) {
	if raw := c.Query("version_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return models.CVDocument{}, fmt.Errorf("invalid version_id")
		}
		version, err := h.versionRepo.FindByID(uint(id))
		if err != nil {
			return models.CVDocument{}, fmt.Errorf("version not found")
		}
		return version.Document(), nil
	}

	version, err := h.versionRepo.FindDefaultLatest()
	if err == nil && version != nil {
		return version.Document(), nil
	}
	return models.DefaultDocument(), nil
}

func resolveTemplate(c *fiber.Ctx) string {
	name := c.Query("template")
	if name == "" {
		return templates.OneColumnClassic
	}
	return name
}

// HandleViewCV serves the public landing page: the current default CV as a
// full HTML document.
func (h *RenderHandler) HandleViewCV(c *fiber.Ctx) error {
	doc, err := h.resolveDocument(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	page := h.htmlRender.Render(doc, resolveTemplate(c))
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(page)
}

func (h *RenderHandler) HandleListTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"templates":     templates.Available,
		"diagnostics":   templates.Validate(),
		"pdf_available": h.pdfRender.Available(),
	})
}

func (h *RenderHandler) HandleRenderHTML(c *fiber.Ctx) error {
	doc, err := h.resolveDocument(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	template := resolveTemplate(c)

	page := h.htmlRender.Render(doc, template)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	if c.QueryBool("download") {
		c.Set(fiber.HeaderContentDisposition,
			fmt.Sprintf("attachment; filename=%q", downloadName(doc, template, "html")))
	}
	return c.SendString(page)
}

func (h *RenderHandler) HandleRenderPDF(c *fiber.Ctx) error {
	if !h.pdfRender.Available() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "PDF generation is disabled",
		})
	}

	doc, err := h.resolveDocument(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	template := resolveTemplate(c)

	payload, err := h.pdfRender.Render(doc, template)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate PDF",
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", downloadName(doc, template, "pdf")))
	return c.Send(payload)
}

func downloadName(doc models.CVDocument, template string, ext string) string {
	name := strings.ReplaceAll(strings.TrimSpace(doc.FullName), " ", "_")
	if name == "" {
		name = "cv"
	}
	return fmt.Sprintf("%s_%s.%s", name, templates.Slug(template), ext)
}
