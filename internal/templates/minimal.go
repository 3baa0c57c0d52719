package templates

import (
	"resume-builder/internal/resume"
)

// Minimal: light-weight Helvetica, muted grays, em-dash bullet markers,
// skill chips.
func renderMinimal(data resume.ResumeData, order resume.SectionOrder) *Node {
	p := data.PersonalInfo

	root := El("div", "background:#fff;color:#111;font-family:'Helvetica Neue','Arial',sans-serif;padding:0.7in 0.8in;font-size:9.5pt;line-height:1.5;min-height:100%")

	header := El("div", "margin-bottom:18pt",
		El("h1", "font-size:26pt;font-weight:300;margin-bottom:4pt;color:#111", Text(DisplayName(p))),
	)
	if contacts := ContactLine(p.Email, p.Phone, p.Location, p.LinkedIn, p.GitHub, p.Website); len(contacts) > 0 {
		row := El("div", "font-size:9pt;color:#888")
		for i, c := range contacts {
			if i > 0 {
				row.Append(Span("margin:0 3pt;color:#ddd", "/"))
			}
			row.Append(Span("", c))
		}
		header.Append(row)
	}
	root.Append(header)

	for _, sec := range order {
		if !HasSection(data, sec) {
			continue
		}
		switch sec {
		case resume.SectionSummary:
			root.Append(El("div", "margin-bottom:16pt",
				minimalHeading("Summary"),
				P("color:#666", p.Summary),
			))
		case resume.SectionExperience:
			block := El("div", "margin-bottom:16pt", minimalHeading("Experience"))
			for _, exp := range data.Experience {
				entry := El("div", "margin-bottom:14pt",
					El("div", "display:flex;justify-content:space-between;align-items:baseline",
						Span("font-weight:500;color:#111", exp.Title),
						Span("font-size:8.5pt;color:#aaa", DateRange(exp.StartDate, exp.EndDate, exp.Current, " — ")),
					),
				)
				company := exp.Company
				if exp.Location != "" {
					company += ", " + exp.Location
				}
				entry.Append(P("font-size:9pt;color:#888;margin-bottom:4pt", company))
				if bullets := FilterBullets(exp.Description); len(bullets) > 0 {
					list := El("ul", "padding-left:0;list-style:none")
					for _, b := range bullets {
						list.Append(El("li", "display:flex;margin-bottom:2pt;color:#555",
							Span("margin-right:8pt;color:#ccc", "—"),
							Span("", b),
						))
					}
					entry.Append(list)
				}
				block.Append(entry)
			}
			root.Append(block)
		case resume.SectionEducation:
			block := El("div", "margin-bottom:16pt", minimalHeading("Education"))
			for _, edu := range data.Education {
				left := El("div", "",
					Span("font-weight:500;color:#111", edu.Degree),
					Span("font-size:9pt;color:#888;margin-left:6pt", edu.Institution),
				)
				if edu.GPA != "" {
					left.Append(Span("font-size:9pt;color:#aaa;margin-left:6pt", "GPA "+edu.GPA))
				}
				block.Append(El("div", "display:flex;justify-content:space-between;align-items:baseline;margin-bottom:6pt",
					left,
					Span("font-size:8.5pt;color:#aaa", FormatDate(edu.GraduationDate)),
				))
			}
			root.Append(block)
		case resume.SectionSkills:
			block := El("div", "margin-bottom:16pt", minimalHeading("Skills"))
			row := El("div", "display:flex;flex-wrap:wrap;gap:4pt")
			for _, s := range data.Skills {
				row.Append(Span("font-size:8.5pt;color:#666;background:#f5f5f5;padding:2pt 8pt;border-radius:3pt", s))
			}
			block.Append(row)
			root.Append(block)
		}
	}

	return root
}

func minimalHeading(title string) *Node {
	return El("h2", "font-size:8.5pt;font-weight:600;text-transform:uppercase;color:#aaa;letter-spacing:2px;margin-bottom:8pt", Text(title))
}
