package handlers

import (
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-builder/internal/resume"
	"resume-builder/internal/services"
	"resume-builder/internal/templates"
)

// EditorHandler owns the in-memory editing sessions, one per user. All
// mutations and AI completions go through the session so an answer that
// arrives after the user kept typing is dropped instead of clobbering the
// newer text.
type EditorHandler struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*resume.Session
	generator services.GeneratorService
}

func NewEditorHandler(generator services.GeneratorService) *EditorHandler {
	return &EditorHandler{
		sessions:  make(map[uuid.UUID]*resume.Session),
		generator: generator,
	}
}

func (h *EditorHandler) session(userID uuid.UUID) *resume.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[userID]
	if !ok {
		s = resume.NewSession(nil)
		h.sessions[userID] = s
	}
	return s
}

type mutateRequest struct {
	Op    string      `json:"op"`
	Field string      `json:"field,omitempty"`
	ID    string      `json:"id,omitempty"`
	Value interface{} `json:"value,omitempty"`
	From  int         `json:"from,omitempty"`
	To    int         `json:"to,omitempty"`
}

// HandleGetDocument handles GET /editor. A user without a session gets a
// fresh empty document.
func (h *EditorHandler) HandleGetDocument(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	return c.JSON(h.session(userID).Snapshot())
}

// HandleLoad handles POST /editor/load. Replaces the session document with
// a stored bundle; any in-flight AI completions against the old document
// are invalidated.
func (h *EditorHandler) HandleLoad(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	bundle, templateID, err := parseRenderRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	doc := &resume.Document{
		Data:     bundle.Data(),
		Order:    bundle.SectionOrder,
		Template: templateID,
	}
	session := h.session(userID)
	session.Replace(doc)

	return c.JSON(session.Snapshot())
}

// HandleMutate handles POST /editor/mutate. One mutation per request.
func (h *EditorHandler) HandleMutate(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	var req mutateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	session := h.session(userID)
	var newID string

	switch req.Op {
	case "updatePersonalInfo":
		value, _ := req.Value.(string)
		session.Edit("personalInfo."+req.Field, func(d *resume.Document) {
			d.UpdatePersonalInfo(req.Field, value)
		})

	case "addExperience":
		session.Edit("experience", func(d *resume.Document) {
			newID = d.AddExperience()
		})

	case "updateExperienceField":
		session.Edit(req.ID+"."+req.Field, func(d *resume.Document) {
			d.UpdateExperienceField(req.ID, req.Field, req.Value)
		})

	case "removeExperience":
		session.Edit("experience", func(d *resume.Document) {
			d.RemoveExperience(req.ID)
		})

	case "addEducation":
		session.Edit("education", func(d *resume.Document) {
			newID = d.AddEducation()
		})

	case "updateEducationField":
		value, _ := req.Value.(string)
		session.Edit(req.ID+"."+req.Field, func(d *resume.Document) {
			d.UpdateEducationField(req.ID, req.Field, value)
		})

	case "removeEducation":
		session.Edit("education", func(d *resume.Document) {
			d.RemoveEducation(req.ID)
		})

	case "addSkill":
		value, _ := req.Value.(string)
		session.Edit("skills", func(d *resume.Document) {
			d.AddSkill(value)
		})

	case "removeSkill":
		value, _ := req.Value.(string)
		session.Edit("skills", func(d *resume.Document) {
			d.RemoveSkill(value)
		})

	case "selectTemplate":
		value, _ := req.Value.(string)
		session.Edit("template", func(d *resume.Document) {
			d.SelectTemplate(templates.Resolve(value))
		})

	case "moveSection":
		var orderErr error
		session.Edit("order", func(d *resume.Document) {
			moved := d.Order.Move(req.From, req.To)
			if err := moved.Validate(); err != nil {
				orderErr = err
				return
			}
			d.Order = moved
		})
		if orderErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": orderErr.Error(),
			})
		}

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Unknown operation %q", req.Op),
		})
	}

	resp := fiber.Map{"document": session.Snapshot()}
	if newID != "" {
		resp["id"] = newID
	}
	return c.JSON(resp)
}

type editorGenerateRequest struct {
	Type           string `json:"type"`
	Target         string `json:"target"`
	JobDescription string `json:"job_description"`
}

// HandleGenerate handles POST /editor/generate. Generates content for a
// target field and applies it only if the user has not edited that target
// while the request was in flight. The user's edit wins; the response says
// whether the generated text was applied.
func (h *EditorHandler) HandleGenerate(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	var req editorGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	session := h.session(userID)
	doc := session.Snapshot()

	switch req.Type {
	case "summary":
		target := "personalInfo.summary"
		gen := session.Begin(target)

		content, err := h.generator.GenerateSummary(c.Context(), services.SummaryContext{
			Name:   doc.Data.PersonalInfo.Name,
			Skills: doc.Data.Skills,
		}, req.JobDescription)
		if err != nil {
			return aiError(c, err)
		}

		applied := session.Complete(target, gen, func(d *resume.Document) {
			d.UpdatePersonalInfo("summary", content)
		})
		return c.JSON(fiber.Map{"content": content, "applied": applied})

	case "bullets":
		// Target is the experience entry the bullets belong to.
		var bctx services.BulletsContext
		found := false
		for _, exp := range doc.Data.Experience {
			if exp.ID == req.Target {
				bctx = services.BulletsContext{Title: exp.Title, Company: exp.Company}
				found = true
				break
			}
		}
		if !found {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Experience entry not found",
			})
		}

		target := req.Target + ".description"
		gen := session.Begin(target)

		bullets, err := h.generator.GenerateBullets(c.Context(), bctx, req.JobDescription)
		if err != nil {
			return aiError(c, err)
		}

		applied := session.Complete(target, gen, func(d *resume.Document) {
			d.UpdateExperienceField(req.Target, "description", bullets)
		})
		return c.JSON(fiber.Map{"bullets": bullets, "applied": applied})

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid type. Use 'summary' or 'bullets'",
		})
	}
}
