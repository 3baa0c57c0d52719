package templates

import (
	"resume-builder/internal/resume"
)

// Creative: two-column layout with a violet sidebar carrying the contact
// details and skill chips; the main column holds the ordered body sections.
func renderCreative(data resume.ResumeData, order resume.SectionOrder) *Node {
	p := data.PersonalInfo

	root := El("div", "display:flex;min-height:100%;font-family:'Poppins','Helvetica Neue',sans-serif;font-size:10pt;line-height:1.4")

	// Sidebar: identity, contact and skills live here, so the skills section
	// is considered rendered even though it sits outside the main flow.
	sidebar := El("div", "width:35%;background:#6d28d9;color:#fff;padding:24pt 16pt")
	sidebar.Append(
		El("div", "width:48pt;height:48pt;border-radius:50%;background:rgba(255,255,255,0.2);display:flex;align-items:center;justify-content:center;font-size:18pt;font-weight:700;margin-bottom:10pt", Text(Initials(DisplayName(p)))),
		El("h1", "font-size:16pt;font-weight:700;margin-bottom:16pt", Text(DisplayName(p))),
	)
	if contacts := ContactLine(p.Email, p.Phone, p.Location, p.LinkedIn, p.GitHub, p.Website); len(contacts) > 0 {
		contactBlock := El("div", "margin-bottom:16pt", creativeSideHeading("Contact"))
		list := El("div", "display:flex;flex-direction:column;gap:3pt;color:#e9d5ff;font-size:8.5pt")
		for _, c := range contacts {
			list.Append(P("", c))
		}
		contactBlock.Append(list)
		sidebar.Append(contactBlock)
	}
	if order.Contains(resume.SectionSkills) && HasSection(data, resume.SectionSkills) {
		skillsBlock := El("div", "margin-bottom:16pt", creativeSideHeading("Skills"))
		chips := El("div", "display:flex;flex-wrap:wrap;gap:3pt")
		for _, s := range data.Skills {
			chips.Append(Span("font-size:8pt;background:rgba(255,255,255,0.2);padding:2pt 6pt;border-radius:8pt", s))
		}
		skillsBlock.Append(chips)
		sidebar.Append(skillsBlock)
	}
	root.Append(sidebar)

	main := El("div", "width:65%;background:#fff;padding:24pt 20pt;color:#111")
	for _, sec := range order {
		if sec == resume.SectionSkills || !HasSection(data, sec) {
			continue
		}
		switch sec {
		case resume.SectionSummary:
			main.Append(El("div", "margin-bottom:14pt",
				creativeHeading("About Me"),
				P("color:#555", p.Summary),
			))
		case resume.SectionExperience:
			block := El("div", "margin-bottom:14pt", creativeHeading("Experience"))
			for _, exp := range data.Experience {
				entry := El("div", "margin-bottom:10pt",
					Span("font-weight:600;font-size:10.5pt", exp.Title),
					P("color:#6d28d9;font-size:9pt;font-weight:500", exp.Company),
					P("color:#999;font-size:8pt;margin-bottom:3pt", DateRange(exp.StartDate, exp.EndDate, exp.Current, " - ")),
				)
				if bullets := FilterBullets(exp.Description); len(bullets) > 0 {
					list := El("ul", "padding-left:0;list-style:none")
					for _, b := range bullets {
						list.Append(El("li", "display:flex;margin-bottom:1pt;color:#555",
							Span("margin-right:4pt;color:#a78bfa", "›"),
							Span("", b),
						))
					}
					entry.Append(list)
				}
				block.Append(entry)
			}
			main.Append(block)
		case resume.SectionEducation:
			block := El("div", "margin-bottom:14pt", creativeHeading("Education"))
			for _, edu := range data.Education {
				detail := FormatDate(edu.GraduationDate)
				if edu.GPA != "" {
					if detail != "" {
						detail += " · "
					}
					detail += "GPA: " + edu.GPA
				}
				block.Append(El("div", "margin-bottom:6pt",
					Span("font-weight:600", edu.Degree),
					P("color:#6d28d9;font-size:9pt", edu.Institution),
					P("color:#999;font-size:8pt", detail),
				))
			}
			main.Append(block)
		}
	}
	root.Append(main)

	return root
}

func creativeHeading(title string) *Node {
	return El("h2", "font-size:10pt;font-weight:700;text-transform:uppercase;letter-spacing:1px;color:#6d28d9;margin-bottom:6pt", Text(title))
}

func creativeSideHeading(title string) *Node {
	return El("h2", "font-size:8pt;font-weight:700;text-transform:uppercase;letter-spacing:1.5px;color:#c4b5fd;margin-bottom:6pt", Text(title))
}
