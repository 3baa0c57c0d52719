package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/resume"
)

func sampleData() resume.ResumeData {
	return resume.ResumeData{
		PersonalInfo: resume.PersonalInfo{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Location: "Berlin",
			Summary:  "Backend engineer with eight years of Go experience.",
		},
		Experience: []resume.Experience{
			{
				ID:          "exp-1",
				Title:       "Backend Engineer",
				Company:     "Acme",
				Location:    "Berlin",
				StartDate:   "2022-01",
				Current:     true,
				Description: []string{"", "  ", "Led team of 5"},
			},
		},
		Education: []resume.Education{
			{
				ID:             "edu-1",
				Degree:         "BSc Computer Science",
				Institution:    "State University",
				GraduationDate: "2016-06",
				GPA:            "3.9",
			},
		},
		Skills: []string{"Go", "Postgres", "Docker"},
	}
}

func TestRenderAllTemplates(t *testing.T) {
	data := sampleData()
	order := resume.DefaultSectionOrder()

	for _, id := range IDs() {
		t.Run(id, func(t *testing.T) {
			root, err := Render(data, order, id)
			require.NoError(t, err)
			require.NotNil(t, root)

			html := root.HTML()
			assert.Contains(t, html, "Jane Doe")
			assert.Contains(t, html, "Led team of 5")
			assert.Contains(t, html, "State University")
			assert.Contains(t, html, "Go")
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	data := sampleData()
	order := resume.DefaultSectionOrder()

	for _, id := range IDs() {
		first, err := RenderHTML(data, order, id)
		require.NoError(t, err)
		second, err := RenderHTML(data, order, id)
		require.NoError(t, err)
		assert.Equal(t, first, second, "template %s must render identically for identical input", id)
	}
}

func TestRenderUnknownTemplateFallsBack(t *testing.T) {
	data := sampleData()
	order := resume.DefaultSectionOrder()

	fallback, err := RenderHTML(data, order, "nonexistent-template-id")
	require.NoError(t, err)
	modern, err := RenderHTML(data, order, "modern")
	require.NoError(t, err)

	assert.Equal(t, modern, fallback)
}

func TestRenderInvalidOrderErrors(t *testing.T) {
	data := sampleData()

	_, err := Render(data, resume.SectionOrder{resume.SectionSummary}, "modern")
	assert.Error(t, err)

	_, err = Render(data, nil, "modern")
	assert.Error(t, err)
}

func TestRenderFiltersBlankBullets(t *testing.T) {
	data := sampleData()
	root, err := Render(data, resume.DefaultSectionOrder(), "modern")
	require.NoError(t, err)

	html := root.HTML()
	assert.Equal(t, 1, strings.Count(html, "Led team of 5"))
	assert.NotContains(t, html, "<li></li>")
}

func TestRenderPresentForCurrentRole(t *testing.T) {
	data := sampleData()
	root, err := Render(data, resume.DefaultSectionOrder(), "modern")
	require.NoError(t, err)

	assert.Contains(t, root.HTML(), "Jan 2022 - Present")
}

func TestRenderOmitsEmptySections(t *testing.T) {
	data := sampleData()
	data.Skills = nil
	data.Education = nil

	for _, id := range IDs() {
		root, err := Render(data, resume.DefaultSectionOrder(), id)
		require.NoError(t, err)

		html := root.HTML()
		assert.NotContains(t, html, "State University")
		assert.NotContains(t, html, "Postgres")
	}
}

func TestRenderRespectsSectionOrder(t *testing.T) {
	data := sampleData()
	order := resume.SectionOrder{resume.SectionSkills, resume.SectionEducation, resume.SectionExperience, resume.SectionSummary}

	root, err := Render(data, order, "ats-friendly")
	require.NoError(t, err)

	html := root.HTML()
	skillsAt := strings.Index(html, "Postgres")
	summaryAt := strings.Index(html, "eight years")
	require.GreaterOrEqual(t, skillsAt, 0)
	require.GreaterOrEqual(t, summaryAt, 0)
	assert.Less(t, skillsAt, summaryAt)
}

func TestRenderEmptyDataUsesPlaceholders(t *testing.T) {
	empty := resume.NewResumeData()

	for _, id := range IDs() {
		root, err := Render(empty, resume.DefaultSectionOrder(), id)
		require.NoError(t, err)
		assert.Contains(t, root.HTML(), PlaceholderName)
	}
}

func TestRenderEscapesUserText(t *testing.T) {
	data := sampleData()
	data.PersonalInfo.Name = `<script>alert("x")</script>`

	root, err := Render(data, resume.DefaultSectionOrder(), "modern")
	require.NoError(t, err)

	html := root.HTML()
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestPageWrapsDocument(t *testing.T) {
	data := sampleData()
	html, err := RenderHTML(data, resume.DefaultSectionOrder(), "classic")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "@page{size:A4")
	assert.Contains(t, html, "Jane Doe")
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "harvard", Resolve("harvard"))
	assert.Equal(t, DefaultTemplate, Resolve(""))
	assert.Equal(t, DefaultTemplate, Resolve("no-such-template"))
}

func TestIDsSortedAndComplete(t *testing.T) {
	ids := IDs()
	assert.Len(t, ids, 11)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
	assert.Contains(t, ids, "jakes")
	assert.Contains(t, ids, "ats-friendly")
}
