package templates

import (
	"strings"

	"resume-builder/internal/resume"
)

// Modern: Inter sans-serif, left-aligned header with a light rule, compact
// uppercase section headings. This is the default template.
func renderModern(data resume.ResumeData, order resume.SectionOrder) *Node {
	p := data.PersonalInfo

	root := El("div", "background:#fff;color:#111827;font-family:'Inter','Helvetica Neue','Arial',sans-serif;padding:0.6in 0.7in;font-size:10pt;line-height:1.4;min-height:100%")

	header := El("div", "border-bottom:2px solid #e5e7eb;padding-bottom:12pt;margin-bottom:14pt",
		El("h1", "font-size:22pt;font-weight:700;margin-bottom:6pt;color:#111", Text(DisplayName(p))),
	)
	if contacts := ContactLine(p.Email, p.Phone, p.Location); len(contacts) > 0 {
		header.Append(P("font-size:9pt;color:#666", strings.Join(contacts, "   ")))
	}
	if links := ContactLine(p.LinkedIn, p.GitHub, p.Website); len(links) > 0 {
		header.Append(P("font-size:9pt;color:#2563eb;margin-top:2pt", strings.Join(links, "   ")))
	}
	root.Append(header)

	for _, sec := range order {
		if !HasSection(data, sec) {
			continue
		}
		switch sec {
		case resume.SectionSummary:
			root.Append(El("div", "margin-bottom:14pt",
				modernHeading("Professional Summary"),
				P("color:#444", p.Summary),
			))
		case resume.SectionExperience:
			block := El("div", "margin-bottom:14pt", modernHeading("Experience"))
			for _, exp := range data.Experience {
				entry := El("div", "margin-bottom:10pt")
				title := exp.Title
				if title == "" {
					title = "Job Title"
				}
				company := exp.Company
				if exp.Location != "" {
					company += " • " + exp.Location
				}
				entry.Append(
					El("div", "display:flex;justify-content:space-between;align-items:flex-start",
						El("div", "",
							Span("font-weight:600;font-size:10.5pt", title),
							P("color:#666;font-size:9.5pt", company),
						),
						Span("font-size:8.5pt;color:#888;white-space:nowrap", DateRange(exp.StartDate, exp.EndDate, exp.Current, " - ")),
					),
				)
				if bullets := FilterBullets(exp.Description); len(bullets) > 0 {
					list := El("ul", "margin-top:3pt;padding-left:0;list-style:none")
					for _, b := range bullets {
						list.Append(El("li", "display:flex;margin-bottom:1pt;color:#444",
							Span("margin-right:6pt", "•"),
							Span("", b),
						))
					}
					entry.Append(list)
				}
				block.Append(entry)
			}
			root.Append(block)
		case resume.SectionEducation:
			block := El("div", "margin-bottom:14pt", modernHeading("Education"))
			for _, edu := range data.Education {
				degree := edu.Degree
				if degree == "" {
					degree = "Degree"
				}
				detail := edu.Institution
				if edu.Location != "" {
					detail += " • " + edu.Location
				}
				if edu.GPA != "" {
					detail += " • GPA: " + edu.GPA
				}
				block.Append(El("div", "display:flex;justify-content:space-between;align-items:flex-start;margin-bottom:6pt",
					El("div", "",
						Span("font-weight:600;font-size:10.5pt", degree),
						P("color:#666;font-size:9.5pt", detail),
					),
					Span("font-size:8.5pt;color:#888", FormatDate(edu.GraduationDate)),
				))
			}
			root.Append(block)
		case resume.SectionSkills:
			root.Append(El("div", "margin-bottom:14pt",
				modernHeading("Skills"),
				P("color:#444", strings.Join(data.Skills, " • ")),
			))
		}
	}

	return root
}

func modernHeading(title string) *Node {
	return El("h2", "font-size:9.5pt;font-weight:700;text-transform:uppercase;color:#111;letter-spacing:1px;margin-bottom:6pt", Text(title))
}
