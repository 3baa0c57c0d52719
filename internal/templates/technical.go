package templates

import (
	"resume-builder/internal/resume"
)

// Technical: monospace accents with a cyan sidebar on the right holding the
// skill chips and links; arrow bullet markers in the main column.
func renderTechnical(data resume.ResumeData, order resume.SectionOrder) *Node {
	p := data.PersonalInfo

	root := El("div", "display:flex;min-height:100%;font-family:'JetBrains Mono','Fira Code','Consolas',monospace;font-size:9.5pt;line-height:1.4")

	main := El("div", "width:65%;background:#fff;padding:20pt 18pt;color:#111;border-right:1px solid #e5e7eb")
	header := El("div", "margin-bottom:14pt",
		El("h1", "font-size:20pt;font-weight:700;margin-bottom:4pt;font-family:'Inter',sans-serif", Text(DisplayName(p))),
	)
	if contacts := ContactLine(p.Email, p.Phone, p.Location); len(contacts) > 0 {
		row := El("div", "font-size:8.5pt;color:#666")
		for i, c := range contacts {
			if i > 0 {
				row.Append(Span("margin:0 3pt;color:#06b6d4", "//"))
			}
			row.Append(Span("", c))
		}
		header.Append(row)
	}
	main.Append(header)

	for _, sec := range order {
		if sec == resume.SectionSkills || !HasSection(data, sec) {
			continue
		}
		switch sec {
		case resume.SectionSummary:
			main.Append(El("div", "margin-bottom:12pt",
				technicalHeading("Summary"),
				P("color:#555;font-family:'Inter',sans-serif;font-size:9.5pt", p.Summary),
			))
		case resume.SectionExperience:
			block := El("div", "margin-bottom:12pt", technicalHeading("Work Experience"))
			for _, exp := range data.Experience {
				entry := El("div", "margin-bottom:10pt",
					El("div", "display:flex;justify-content:space-between;align-items:flex-start",
						El("div", "",
							Span("font-weight:600;font-size:10pt;font-family:'Inter',sans-serif", exp.Title),
							P("color:#0891b2;font-size:9pt;font-weight:500", exp.Company),
						),
						Span("font-size:8pt;color:#999;white-space:nowrap", DateRange(exp.StartDate, exp.EndDate, exp.Current, " - ")),
					),
				)
				if bullets := FilterBullets(exp.Description); len(bullets) > 0 {
					list := El("ul", "margin-top:3pt;padding-left:0;list-style:none")
					for _, b := range bullets {
						list.Append(El("li", "display:flex;margin-bottom:2pt;color:#555;font-family:'Inter',sans-serif;font-size:9.5pt",
							Span("margin-right:6pt;color:#06b6d4", "→"),
							Span("", b),
						))
					}
					entry.Append(list)
				}
				block.Append(entry)
			}
			main.Append(block)
		case resume.SectionEducation:
			block := El("div", "margin-bottom:12pt", technicalHeading("Education"))
			for _, edu := range data.Education {
				detail := edu.Institution
				if edu.GPA != "" {
					detail += " · GPA: " + edu.GPA
				}
				block.Append(El("div", "display:flex;justify-content:space-between;align-items:flex-start;margin-bottom:6pt",
					El("div", "",
						Span("font-weight:600;font-family:'Inter',sans-serif", edu.Degree),
						P("color:#0891b2;font-size:9pt", detail),
					),
					Span("font-size:8pt;color:#999", FormatDate(edu.GraduationDate)),
				))
			}
			main.Append(block)
		}
	}
	root.Append(main)

	sidebar := El("div", "width:35%;background:#ecfeff;padding:20pt 16pt")
	if order.Contains(resume.SectionSkills) && HasSection(data, resume.SectionSkills) {
		block := El("div", "margin-bottom:16pt", technicalSideHeading("Tech Stack"))
		chips := El("div", "display:flex;flex-wrap:wrap;gap:3pt")
		for _, s := range data.Skills {
			chips.Append(Span("font-size:8pt;background:#cffafe;color:#155e75;padding:2pt 6pt;border-radius:3pt", s))
		}
		block.Append(chips)
		sidebar.Append(block)
	}
	if links := ContactLine(p.LinkedIn, p.GitHub, p.Website); len(links) > 0 {
		block := El("div", "margin-bottom:16pt", technicalSideHeading("Links"))
		list := El("div", "display:flex;flex-direction:column;gap:4pt")
		for _, l := range links {
			list.Append(P("font-size:8.5pt;color:#0891b2", l))
		}
		block.Append(list)
		sidebar.Append(block)
	}
	root.Append(sidebar)

	return root
}

func technicalHeading(title string) *Node {
	return El("h2", "font-size:9.5pt;font-weight:700;text-transform:uppercase;color:#111;letter-spacing:1px;margin-bottom:6pt;font-family:'Inter',sans-serif", Text(title))
}

func technicalSideHeading(title string) *Node {
	return El("h2", "font-size:8.5pt;font-weight:700;text-transform:uppercase;color:#155e75;letter-spacing:1.5px;margin-bottom:8pt", Text(title))
}
