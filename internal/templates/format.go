package templates

import (
	"strings"
	"time"

	"resume-builder/internal/resume"
)

// PlaceholderName is shown in the header when no name has been entered yet.
const PlaceholderName = "Your Name"

// FormatDate renders a resume date string as "Jan 2006". Month precision
// ("2006-01") is the expected input but full dates and bare years are
// accepted. An empty string renders as empty text; anything unparsable is
// shown verbatim rather than erroring.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range []string{"2006-01", "2006-01-02", "January 2006", "Jan 2006", "01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return s
}

// DateRange joins a formatted start and end date with the template's
// separator, substituting "Present" when the entry is marked current.
func DateRange(start, end string, current bool, sep string) string {
	endText := FormatDate(end)
	if current {
		endText = "Present"
	}
	return FormatDate(start) + sep + endText
}

// FilterBullets drops blank and whitespace-only bullets, preserving the
// order of the rest. Renderers never show an empty list item.
func FilterBullets(bullets []string) []string {
	out := make([]string, 0, len(bullets))
	for _, b := range bullets {
		if strings.TrimSpace(b) != "" {
			out = append(out, b)
		}
	}
	return out
}

// DisplayName returns the header name, falling back to the placeholder.
func DisplayName(p resume.PersonalInfo) string {
	if strings.TrimSpace(p.Name) == "" {
		return PlaceholderName
	}
	return p.Name
}

// ContactLine collects the non-empty values among the given fields, ready
// to be joined with a template-specific separator.
func ContactLine(fields ...string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			out = append(out, f)
		}
	}
	return out
}

// HasSection reports whether a section has anything to show. Templates omit
// empty sections entirely, heading included.
func HasSection(data resume.ResumeData, s resume.Section) bool {
	switch s {
	case resume.SectionSummary:
		return strings.TrimSpace(data.PersonalInfo.Summary) != ""
	case resume.SectionExperience:
		return len(data.Experience) > 0
	case resume.SectionEducation:
		return len(data.Education) > 0
	case resume.SectionSkills:
		return len(data.Skills) > 0
	}
	return false
}

// ExportFilename derives the download filename for an exported resume:
// the person's name with whitespace collapsed to underscores, or "Resume"
// when no name is set.
func ExportFilename(p resume.PersonalInfo) string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return "Resume"
	}
	return strings.Join(strings.Fields(name), "_")
}

// Initials returns up to two uppercase initials for avatar-style headers.
func Initials(name string) string {
	fields := strings.Fields(name)
	var b strings.Builder
	for i, f := range fields {
		if i >= 2 {
			break
		}
		r := []rune(f)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
