package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/models"
	"resume-builder/internal/services"
)

type AIHandler struct {
	generator services.GeneratorService
	analyzer  services.AnalyzerService
}

func NewAIHandler(generator services.GeneratorService, analyzer services.AnalyzerService) *AIHandler {
	return &AIHandler{
		generator: generator,
		analyzer:  analyzer,
	}
}

// generateContext mirrors the free-form context object the editor sends
// along with a generation request. Which fields matter depends on the type.
type generateContext struct {
	Name               string   `json:"name"`
	Title              string   `json:"title"`
	Skills             []string `json:"skills"`
	Experience         string   `json:"experience"`
	Company            string   `json:"company"`
	CurrentDescription string   `json:"currentDescription"`
	OriginalText       string   `json:"originalText"`
}

type generateRequestBody struct {
	Type           string          `json:"type"`
	Context        json.RawMessage `json:"context"`
	JobDescription string          `json:"job_description"`
}

// HandleGenerate handles POST /ai/generate
func (h *AIHandler) HandleGenerate(c *fiber.Ctx) error {
	var req generateRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Type == "" || len(req.Context) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Type and context are required",
		})
	}

	var gctx generateContext
	if err := json.Unmarshal(req.Context, &gctx); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid context payload",
		})
	}

	switch req.Type {
	case "summary":
		content, err := h.generator.GenerateSummary(c.Context(), services.SummaryContext{
			Name:       gctx.Name,
			Title:      gctx.Title,
			Skills:     gctx.Skills,
			Experience: gctx.Experience,
		}, req.JobDescription)
		if err != nil {
			return aiError(c, err)
		}
		return c.JSON(models.GenerateResponse{Content: content})

	case "bullets":
		bullets, err := h.generator.GenerateBullets(c.Context(), services.BulletsContext{
			Title:              gctx.Title,
			Company:            gctx.Company,
			CurrentDescription: gctx.CurrentDescription,
		}, req.JobDescription)
		if err != nil {
			return aiError(c, err)
		}
		return c.JSON(models.GenerateResponse{Bullets: bullets})

	case "improve":
		if gctx.OriginalText == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "originalText is required for improve",
			})
		}
		content, err := h.generator.ImproveText(c.Context(), gctx.OriginalText, req.JobDescription)
		if err != nil {
			return aiError(c, err)
		}
		return c.JSON(models.GenerateResponse{Content: content})

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid type. Use 'summary', 'bullets', or 'improve'",
		})
	}
}

// HandleAnalyze handles POST /ai/analyze
func (h *AIHandler) HandleAnalyze(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Resume text is required",
		})
	}

	report, err := h.analyzer.Analyze(c.Context(), userID, req.ResumeText, req.JobDescription)
	if err != nil {
		return aiError(c, err)
	}

	return c.JSON(report)
}

// HandleAnalyses handles GET /ai/analyses
func (h *AIHandler) HandleAnalyses(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	analyses, err := h.analyzer.History(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch analyses",
		})
	}

	return c.JSON(analyses)
}

func aiError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrRateLimited):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "Rate limit exceeded. Please try again later.",
		})
	case errors.Is(err, services.ErrQuotaExhausted):
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"error": "AI credits exhausted. Please add funds to continue.",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate content",
		})
	}
}
