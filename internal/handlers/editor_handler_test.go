package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/resume"
	"resume-builder/internal/services"
)

type stubGenerator struct {
	summary    string
	bullets    []string
	beforeDone func()
}

func (s *stubGenerator) GenerateSummary(ctx context.Context, sctx services.SummaryContext, jobDescription string) (string, error) {
	if s.beforeDone != nil {
		s.beforeDone()
	}
	return s.summary, nil
}

func (s *stubGenerator) GenerateBullets(ctx context.Context, bctx services.BulletsContext, jobDescription string) ([]string, error) {
	if s.beforeDone != nil {
		s.beforeDone()
	}
	return s.bullets, nil
}

func (s *stubGenerator) ImproveText(ctx context.Context, originalText, jobDescription string) (string, error) {
	return originalText, nil
}

func editorTestApp(gen services.GeneratorService) (*fiber.App, *EditorHandler, uuid.UUID) {
	h := NewEditorHandler(gen)
	userID := uuid.New()

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	app.Get("/editor", h.HandleGetDocument)
	app.Post("/editor/mutate", h.HandleMutate)
	app.Post("/editor/generate", h.HandleGenerate)

	return app, h, userID
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	out := map[string]interface{}{}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &out))

	return resp.StatusCode, out
}

func TestEditorMutatePersonalInfo(t *testing.T) {
	app, h, userID := editorTestApp(&stubGenerator{})

	status, _ := postJSON(t, app, "/editor/mutate", mutateRequest{
		Op: "updatePersonalInfo", Field: "name", Value: "Jane Doe",
	})
	require.Equal(t, fiber.StatusOK, status)

	doc := h.session(userID).Snapshot()
	assert.Equal(t, "Jane Doe", doc.Data.PersonalInfo.Name)
}

func TestEditorMutateAddExperienceReturnsID(t *testing.T) {
	app, h, userID := editorTestApp(&stubGenerator{})

	status, body := postJSON(t, app, "/editor/mutate", mutateRequest{Op: "addExperience"})
	require.Equal(t, fiber.StatusOK, status)

	id, ok := body["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)

	status, _ = postJSON(t, app, "/editor/mutate", mutateRequest{
		Op: "updateExperienceField", ID: id, Field: "title", Value: "Backend Engineer",
	})
	require.Equal(t, fiber.StatusOK, status)

	doc := h.session(userID).Snapshot()
	require.Len(t, doc.Data.Experience, 1)
	assert.Equal(t, "Backend Engineer", doc.Data.Experience[0].Title)
}

func TestEditorMutateMoveSection(t *testing.T) {
	app, h, userID := editorTestApp(&stubGenerator{})

	status, _ := postJSON(t, app, "/editor/mutate", mutateRequest{Op: "moveSection", From: 3, To: 0})
	require.Equal(t, fiber.StatusOK, status)

	doc := h.session(userID).Snapshot()
	assert.Equal(t, "skills", string(doc.Order[0]))
	assert.Equal(t, "summary", string(doc.Order[1]))
}

func TestEditorMutateUnknownOp(t *testing.T) {
	app, _, _ := editorTestApp(&stubGenerator{})

	status, _ := postJSON(t, app, "/editor/mutate", mutateRequest{Op: "explode"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestEditorConcurrentReadAndMutate(t *testing.T) {
	app, h, userID := editorTestApp(&stubGenerator{})

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			raw, err := json.Marshal(mutateRequest{
				Op: "addSkill", Value: fmt.Sprintf("skill-%d", n),
			})
			if !assert.NoError(t, err) {
				return
			}
			req := httptest.NewRequest("POST", "/editor/mutate", bytes.NewReader(raw))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		}(i)
		go func() {
			defer wg.Done()
			resp, err := app.Test(httptest.NewRequest("GET", "/editor", nil), -1)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			data, err := io.ReadAll(resp.Body)
			if !assert.NoError(t, err) {
				return
			}
			var doc resume.Document
			assert.NoError(t, json.Unmarshal(data, &doc))
		}()
	}
	wg.Wait()

	assert.Len(t, h.session(userID).Snapshot().Data.Skills, 30)
}

func TestEditorGenerateAppliesSummary(t *testing.T) {
	app, h, userID := editorTestApp(&stubGenerator{summary: "Generated summary."})

	status, body := postJSON(t, app, "/editor/generate", editorGenerateRequest{Type: "summary"})
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, true, body["applied"])
	assert.Equal(t, "Generated summary.", h.session(userID).Snapshot().Data.PersonalInfo.Summary)
}

func TestEditorGenerateDiscardedWhenUserEditsMidFlight(t *testing.T) {
	gen := &stubGenerator{summary: "Generated summary."}
	app, h, userID := editorTestApp(gen)

	// The user types into the summary while the request is in flight.
	gen.beforeDone = func() {
		h.session(userID).Edit("personalInfo.summary", func(d *resume.Document) {
			d.UpdatePersonalInfo("summary", "What the user typed")
		})
	}

	status, body := postJSON(t, app, "/editor/generate", editorGenerateRequest{Type: "summary"})
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, false, body["applied"])
	assert.Equal(t, "What the user typed", h.session(userID).Snapshot().Data.PersonalInfo.Summary)
}

func TestEditorGenerateBulletsForExperience(t *testing.T) {
	gen := &stubGenerator{bullets: []string{"Led team of 5", "Shipped v2"}}
	app, h, userID := editorTestApp(gen)

	_, body := postJSON(t, app, "/editor/mutate", mutateRequest{Op: "addExperience"})
	id := body["id"].(string)

	status, body := postJSON(t, app, "/editor/generate", editorGenerateRequest{Type: "bullets", Target: id})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["applied"])

	doc := h.session(userID).Snapshot()
	assert.Equal(t, []string{"Led team of 5", "Shipped v2"}, doc.Data.Experience[0].Description)
}

func TestEditorGenerateBulletsUnknownExperience(t *testing.T) {
	app, _, _ := editorTestApp(&stubGenerator{bullets: []string{"x"}})

	status, _ := postJSON(t, app, "/editor/generate", editorGenerateRequest{Type: "bullets", Target: "no-such-id"})
	assert.Equal(t, fiber.StatusNotFound, status)
}
