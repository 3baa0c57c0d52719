package handlers

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/models"
	"resume-builder/internal/services"
)

type UploadHandler struct {
	parser      services.ParserService
	maxFileSize int64
}

func NewUploadHandler(parser services.ParserService, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		parser:      parser,
		maxFileSize: maxFileSize,
	}
}

// HandleExtract handles POST /upload/extract. The uploaded file is read in
// memory, its text extracted and returned; the file itself is discarded.
func (h *UploadHandler) HandleExtract(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded. Please upload a PDF, TXT or Markdown file as 'file'.",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}

	text, err := h.parser.ExtractText(data, filepath.Ext(fileHeader.Filename))
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unsupported file format. Use PDF, TXT or Markdown.",
			})
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to extract text: %v", err),
		})
	}

	return c.JSON(models.ExtractResponse{
		Text:     text,
		Filename: fileHeader.Filename,
	})
}
