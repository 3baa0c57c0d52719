package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/models"
	"resume-builder/internal/resume"
	"resume-builder/internal/services"
	"resume-builder/internal/templates"
)

type RenderHandler struct {
	exporter services.ExporterService
}

func NewRenderHandler(exporter services.ExporterService) *RenderHandler {
	return &RenderHandler{exporter: exporter}
}

// HandleTemplates handles GET /templates
func (h *RenderHandler) HandleTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"templates": templates.IDs(),
		"default":   templates.DefaultTemplate,
	})
}

// HandlePreview handles POST /render/preview. Returns the full printable
// HTML document for the submitted resume, byte-identical to what the PDF
// export prints.
func (h *RenderHandler) HandlePreview(c *fiber.Ctx) error {
	bundle, templateID, err := parseRenderRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	html, err := templates.RenderHTML(bundle.Data(), bundle.SectionOrder, templateID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to render resume",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// HandleExport handles POST /render/export. Renders the resume to an A4 PDF
// and returns it as a download.
func (h *RenderHandler) HandleExport(c *fiber.Ctx) error {
	bundle, templateID, err := parseRenderRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	html, err := templates.RenderHTML(bundle.Data(), bundle.SectionOrder, templateID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to render resume",
		})
	}

	pdfBytes, err := h.exporter.ExportPDF(c.Context(), html)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export PDF",
		})
	}

	filename := templates.ExportFilename(bundle.PersonalInfo) + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// HandleReorder handles POST /sections/reorder. Applies one move to the
// submitted section order and returns the result.
func (h *RenderHandler) HandleReorder(c *fiber.Ctx) error {
	var req models.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	order := make(resume.SectionOrder, 0, len(req.Order))
	for _, s := range req.Order {
		order = append(order, resume.Section(s))
	}
	if len(order) == 0 {
		order = resume.DefaultSectionOrder()
	}
	if err := order.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	moved := order.Move(req.From, req.To)

	out := make([]string, 0, len(moved))
	for _, s := range moved {
		out = append(out, string(s))
	}

	return c.JSON(models.ReorderResponse{Order: out})
}

func parseRenderRequest(c *fiber.Ctx) (resume.Bundle, string, error) {
	var req models.RenderRequest
	if err := c.BodyParser(&req); err != nil {
		return resume.Bundle{}, "", fmt.Errorf("invalid request payload")
	}

	if len(req.Data) == 0 {
		return resume.Bundle{}, "", fmt.Errorf("data is required")
	}

	bundle, err := resume.UnmarshalBundle(req.Data)
	if err != nil {
		return resume.Bundle{}, "", err
	}

	return bundle, templates.Resolve(req.Template), nil
}
