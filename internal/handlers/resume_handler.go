package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-builder/internal/models"
	"resume-builder/internal/repositories"
	"resume-builder/internal/resume"
	"resume-builder/internal/templates"
)

type ResumeHandler struct {
	resumeRepo repositories.ResumeRepository
}

func NewResumeHandler(resumeRepo repositories.ResumeRepository) *ResumeHandler {
	return &ResumeHandler{resumeRepo: resumeRepo}
}

// HandleList handles GET /resumes
func (h *ResumeHandler) HandleList(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	resumes, err := h.resumeRepo.FindByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load resumes",
		})
	}

	return c.JSON(fiber.Map{
		"resumes": resumes,
	})
}

// HandleGet handles GET /resumes/:id
func (h *ResumeHandler) HandleGet(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	saved, err := h.resumeRepo.FindByID(id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load resume",
		})
	}

	// Stored blobs from before a template was retired still load; unknown
	// ids resolve to the default.
	saved.Template = templates.Resolve(saved.Template)

	return c.JSON(saved)
}

// HandleSave handles POST /resumes. A request with an id updates that
// resume, otherwise a new one is created.
func (h *ResumeHandler) HandleSave(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	var req models.SaveResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}

	if len(req.Data) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "data is required",
		})
	}

	bundle, err := resume.UnmarshalBundle(req.Data)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	raw, err := bundle.Marshal()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	saved := &models.SavedResume{
		UserID:   userID,
		Title:    req.Title,
		Template: templates.Resolve(req.Template),
		Data:     []byte(raw),
	}

	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid resume ID format",
			})
		}

		saved.ID = id
		if err := h.resumeRepo.Update(saved); err != nil {
			if errors.Is(err, repositories.ErrResumeNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Resume not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update resume",
			})
		}

		return c.JSON(models.SaveResumeResponse{
			ID:        saved.ID.String(),
			Title:     saved.Title,
			UpdatedAt: saved.UpdatedAt.Format(time.RFC3339),
		})
	}

	if err := h.resumeRepo.Create(saved); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save resume",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.SaveResumeResponse{
		ID:        saved.ID.String(),
		Title:     saved.Title,
		UpdatedAt: saved.UpdatedAt.Format(time.RFC3339),
	})
}

// HandleDelete handles DELETE /resumes/:id
func (h *ResumeHandler) HandleDelete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	if err := h.resumeRepo.Delete(id, userID); err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete resume",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Resume deleted",
	})
}

// HandleDuplicate handles POST /resumes/:id/duplicate
func (h *ResumeHandler) HandleDuplicate(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	copy, err := h.resumeRepo.Duplicate(id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to duplicate resume",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(copy)
}
