package templates

import (
	"fmt"
	"sort"

	"resume-builder/internal/resume"
)

// DefaultTemplate is the renderer used when an unknown or missing template
// id is requested. Lookup never fails.
const DefaultTemplate = "modern"

// renderFunc maps a resume to its layout tree. Every renderer shares the
// formatting layer in format.go; only styling differs between them.
type renderFunc func(data resume.ResumeData, order resume.SectionOrder) *Node

var registry = map[string]renderFunc{
	"jakes":        renderJakes,
	"google":       renderGoogle,
	"microsoft":    renderMicrosoft,
	"harvard":      renderHarvard,
	"ats-friendly": renderATS,
	"modern":       renderModern,
	"classic":      renderClassic,
	"minimal":      renderMinimal,
	"creative":     renderCreative,
	"executive":    renderExecutive,
	"technical":    renderTechnical,
}

// IDs lists every registered template identifier, sorted.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resolve returns a known template id, falling back to the default.
func Resolve(id string) string {
	if _, ok := registry[id]; ok {
		return id
	}
	return DefaultTemplate
}

// Render produces the layout tree for the given data, section order and
// template id. It is pure: identical inputs always yield an identical tree.
// The only possible error is a malformed section order, which indicates a
// bug or corrupted stored data rather than bad user input.
func Render(data resume.ResumeData, order resume.SectionOrder, templateID string) (*Node, error) {
	if err := order.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	fn, ok := registry[templateID]
	if !ok {
		fn = registry[DefaultTemplate]
	}
	return fn(data, order), nil
}

// RenderHTML renders the full printable page for the given inputs. Preview
// and PDF export both go through here so their output is identical.
func RenderHTML(data resume.ResumeData, order resume.SectionOrder, templateID string) (string, error) {
	root, err := Render(data, order, templateID)
	if err != nil {
		return "", err
	}
	return Page(root), nil
}
