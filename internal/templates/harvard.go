package templates

import (
	"strings"

	"resume-builder/internal/resume"
)

// Harvard: Garamond serif, crimson-ruled centered header, institution-first
// education entries with the degree in italics.
func renderHarvard(data resume.ResumeData, order resume.SectionOrder) *Node {
	p := data.PersonalInfo

	root := El("div", "background:#fff;color:#111827;font-family:'Garamond','Georgia','Times New Roman',serif;padding:0.6in 0.7in;font-size:10.5pt;line-height:1.35;min-height:100%")

	header := El("div", "text-align:center;border-bottom:2px solid #8b1a1a;padding-bottom:10pt;margin-bottom:14pt",
		El("h1", "font-size:22pt;font-weight:700;margin-bottom:4pt;color:#1a1a1a", Text(DisplayName(p))),
	)
	if contacts := ContactLine(p.Email, p.Phone, p.Location); len(contacts) > 0 {
		header.Append(P("font-size:9pt;color:#555", strings.Join(contacts, " • ")))
	}
	if links := ContactLine(p.LinkedIn, p.GitHub, p.Website); len(links) > 0 {
		header.Append(P("font-size:9pt;color:#666;margin-top:2pt", strings.Join(links, " • ")))
	}
	root.Append(header)

	for _, sec := range order {
		if !HasSection(data, sec) {
			continue
		}
		switch sec {
		case resume.SectionSummary:
			root.Append(El("div", "margin-bottom:12pt",
				harvardHeading("SUMMARY"),
				P("color:#333", p.Summary),
			))
		case resume.SectionExperience:
			block := El("div", "margin-bottom:12pt", harvardHeading("EXPERIENCE"))
			for _, exp := range data.Experience {
				title := exp.Title
				if exp.Location != "" {
					title += ", " + exp.Location
				}
				entry := El("div", "margin-bottom:10pt",
					El("div", "display:flex;justify-content:space-between;align-items:flex-start",
						El("div", "",
							Span("font-weight:700;font-size:10.5pt", exp.Company),
							P("font-style:italic;color:#444", title),
						),
						Span("font-size:9pt;color:#666", DateRange(exp.StartDate, exp.EndDate, exp.Current, " – ")),
					),
				)
				if bullets := FilterBullets(exp.Description); len(bullets) > 0 {
					list := El("ul", "margin-top:3pt;padding-left:16pt;list-style-type:disc")
					for _, b := range bullets {
						list.Append(El("li", "margin-bottom:1pt;color:#333", Text(b)))
					}
					entry.Append(list)
				}
				block.Append(entry)
			}
			root.Append(block)
		case resume.SectionEducation:
			block := El("div", "margin-bottom:12pt", harvardHeading("EDUCATION"))
			for _, edu := range data.Education {
				left := El("div", "",
					Span("font-weight:700;font-size:10.5pt", edu.Institution),
					P("font-style:italic;color:#444", edu.Degree),
				)
				if edu.GPA != "" {
					left.Append(P("font-size:9pt;color:#666", "GPA: "+edu.GPA))
				}
				block.Append(El("div", "display:flex;justify-content:space-between;align-items:flex-start;margin-bottom:8pt",
					left,
					Span("font-size:9pt;color:#666", FormatDate(edu.GraduationDate)),
				))
			}
			root.Append(block)
		case resume.SectionSkills:
			root.Append(El("div", "margin-bottom:12pt",
				harvardHeading("SKILLS"),
				P("color:#333", strings.Join(data.Skills, ", ")),
			))
		}
	}

	return root
}

func harvardHeading(title string) *Node {
	return El("h2", "font-size:10.5pt;font-weight:700;text-transform:uppercase;color:#8b1a1a;letter-spacing:1px;margin-bottom:6pt", Text(title))
}
