package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/models"
	"resume-builder/internal/repositories"
)

type stubResumeRepo struct {
	stored map[uuid.UUID]*models.SavedResume
}

func newStubResumeRepo() *stubResumeRepo {
	return &stubResumeRepo{stored: map[uuid.UUID]*models.SavedResume{}}
}

func (s *stubResumeRepo) Create(resume *models.SavedResume) error {
	resume.ID = uuid.New()
	resume.CreatedAt = time.Now()
	resume.UpdatedAt = resume.CreatedAt
	copied := *resume
	s.stored[resume.ID] = &copied
	return nil
}

func (s *stubResumeRepo) Update(resume *models.SavedResume) error {
	existing, ok := s.stored[resume.ID]
	if !ok || existing.UserID != resume.UserID {
		return repositories.ErrResumeNotFound
	}
	resume.UpdatedAt = time.Now()
	copied := *resume
	s.stored[resume.ID] = &copied
	return nil
}

func (s *stubResumeRepo) FindByUser(userID uuid.UUID) ([]models.SavedResume, error) {
	var out []models.SavedResume
	for _, r := range s.stored {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *stubResumeRepo) FindByID(id, userID uuid.UUID) (*models.SavedResume, error) {
	r, ok := s.stored[id]
	if !ok || r.UserID != userID {
		return nil, repositories.ErrResumeNotFound
	}
	copied := *r
	return &copied, nil
}

func (s *stubResumeRepo) Delete(id, userID uuid.UUID) error {
	r, ok := s.stored[id]
	if !ok || r.UserID != userID {
		return repositories.ErrResumeNotFound
	}
	delete(s.stored, id)
	return nil
}

func (s *stubResumeRepo) Duplicate(id, userID uuid.UUID) (*models.SavedResume, error) {
	original, err := s.FindByID(id, userID)
	if err != nil {
		return nil, err
	}
	copied := *original
	copied.Title = original.Title + " (Copy)"
	copied.ID = uuid.New()
	s.stored[copied.ID] = &copied
	return &copied, nil
}

func resumeTestApp(repo repositories.ResumeRepository) *fiber.App {
	h := NewResumeHandler(repo)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uuid.New())
		return c.Next()
	})
	app.Post("/resumes", h.HandleSave)

	return app
}

func saveRequestBody() models.SaveResumeRequest {
	data, _ := json.Marshal(map[string]interface{}{
		"personalInfo": map[string]string{"name": "Jane Doe"},
		"experience":   []interface{}{},
		"education":    []interface{}{},
		"skills":       []string{"Go"},
	})
	return models.SaveResumeRequest{Title: "My Resume", Template: "modern", Data: data}
}

func TestSaveResumeResponseCarriesUpdatedAt(t *testing.T) {
	app := resumeTestApp(newStubResumeRepo())

	status, body := postJSON(t, app, "/resumes", saveRequestBody())
	require.Equal(t, fiber.StatusCreated, status)

	updatedAt, ok := body["updated_at"].(string)
	require.True(t, ok)
	require.NotEmpty(t, updatedAt)
	_, err := time.Parse(time.RFC3339, updatedAt)
	assert.NoError(t, err)
}

func TestSaveResumeUpdateRefreshesUpdatedAt(t *testing.T) {
	repo := newStubResumeRepo()
	h := NewResumeHandler(repo)
	userID := uuid.New()

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	app.Post("/resumes", h.HandleSave)

	status, body := postJSON(t, app, "/resumes", saveRequestBody())
	require.Equal(t, fiber.StatusCreated, status)
	id := body["id"].(string)

	req := saveRequestBody()
	req.ID = id
	req.Title = "Renamed"
	status, body = postJSON(t, app, "/resumes", req)
	require.Equal(t, fiber.StatusOK, status)

	updatedAt, ok := body["updated_at"].(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339, updatedAt)
	require.NoError(t, err)
	assert.False(t, parsed.IsZero())
	assert.Equal(t, "Renamed", body["title"])
}

func TestSaveResumeUpdateUnknownID(t *testing.T) {
	app := resumeTestApp(newStubResumeRepo())

	req := saveRequestBody()
	req.ID = uuid.New().String()
	status, _ := postJSON(t, app, "/resumes", req)
	assert.Equal(t, fiber.StatusNotFound, status)
}
