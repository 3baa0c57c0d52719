package templates

import (
	"strings"

	"resume-builder/internal/resume"
)

// Google: Roboto, centered header with pipe separators, thin-ruled section
// headings.
func renderGoogle(data resume.ResumeData, order resume.SectionOrder) *Node {
	p := data.PersonalInfo

	root := El("div", "background:#fff;color:#111827;font-family:'Roboto','Arial',sans-serif;padding:0.6in 0.7in;font-size:10pt;line-height:1.4;min-height:100%")

	header := El("div", "text-align:center;margin-bottom:16pt",
		El("h1", "font-size:20pt;font-weight:700;margin-bottom:4pt", Text(DisplayName(p))),
	)
	if contacts := ContactLine(p.Email, p.Phone, p.Location); len(contacts) > 0 {
		header.Append(P("font-size:9pt;color:#555", strings.Join(contacts, " | ")))
	}
	if links := ContactLine(p.LinkedIn, p.GitHub, p.Website); len(links) > 0 {
		header.Append(P("font-size:9pt;color:#1a73e8;margin-top:2pt", strings.Join(links, " | ")))
	}
	root.Append(header)

	for _, sec := range order {
		if !HasSection(data, sec) {
			continue
		}
		switch sec {
		case resume.SectionSummary:
			root.Append(El("div", "margin-bottom:12pt",
				googleHeading("SUMMARY"),
				P("color:#333", p.Summary),
			))
		case resume.SectionExperience:
			block := El("div", "margin-bottom:12pt", googleHeading("EXPERIENCE"))
			for _, exp := range data.Experience {
				entry := El("div", "margin-bottom:10pt",
					El("div", "display:flex;justify-content:space-between;align-items:baseline",
						Span("font-weight:700;font-size:10.5pt", exp.Title),
						Span("font-size:9pt;color:#666", DateRange(exp.StartDate, exp.EndDate, exp.Current, " - ")),
					),
				)
				company := exp.Company
				if exp.Location != "" {
					company += ", " + exp.Location
				}
				entry.Append(P("color:#555;font-size:9.5pt", company))
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
			block := El("div", "margin-bottom:12pt", googleHeading("EDUCATION"))
			for _, edu := range data.Education {
				detail := edu.Institution
				if edu.GPA != "" {
					detail += " — GPA: " + edu.GPA
				}
				block.Append(El("div", "display:flex;justify-content:space-between;align-items:flex-start;margin-bottom:6pt",
					El("div", "",
						Span("font-weight:700;font-size:10.5pt", edu.Degree),
						P("color:#555;font-size:9.5pt", detail),
					),
					Span("font-size:9pt;color:#666", FormatDate(edu.GraduationDate)),
				))
			}
			root.Append(block)
		case resume.SectionSkills:
			root.Append(El("div", "margin-bottom:12pt",
				googleHeading("SKILLS"),
				P("color:#333", strings.Join(data.Skills, " • ")),
			))
		}
	}

	return root
}

func googleHeading(title string) *Node {
	return El("h2", "font-size:10.5pt;font-weight:700;color:#202124;border-bottom:1px solid #dadce0;padding-bottom:3pt;margin-bottom:6pt;letter-spacing:0.5px", Text(title))
}
