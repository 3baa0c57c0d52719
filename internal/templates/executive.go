package templates

import (
	"resume-builder/internal/resume"
)

// Executive: serif body under a dark slate banner header, date chips and
// square bullet markers, "Core Competencies" skill chips.
func renderExecutive(data resume.ResumeData, order resume.SectionOrder) *Node {
	p := data.PersonalInfo

	root := El("div", "background:#fff;min-height:100%;font-family:'Georgia','Palatino',serif;font-size:10.5pt;line-height:1.4")

	banner := El("div", "background:#1e293b;color:#fff;padding:20pt 24pt",
		El("h1", "font-size:22pt;font-weight:700;margin-bottom:4pt", Text(DisplayName(p))),
	)
	if contacts := ContactLine(p.Email, p.Phone, p.Location, p.LinkedIn, p.Website); len(contacts) > 0 {
		row := El("div", "font-size:9pt;color:#94a3b8")
		for i, c := range contacts {
			if i > 0 {
				row.Append(Span("margin:0 6pt", "·"))
			}
			row.Append(Span("", c))
		}
		banner.Append(row)
	}
	root.Append(banner)

	body := El("div", "padding:20pt 24pt;color:#111")
	for _, sec := range order {
		if !HasSection(data, sec) {
			continue
		}
		switch sec {
		case resume.SectionSummary:
			body.Append(El("div", "margin-bottom:14pt",
				executiveHeading("Executive Summary"),
				P("color:#444", p.Summary),
			))
		case resume.SectionExperience:
			block := El("div", "margin-bottom:14pt", executiveHeading("Professional Experience"))
			for _, exp := range data.Experience {
				entry := El("div", "margin-bottom:12pt",
					El("div", "display:flex;justify-content:space-between;align-items:flex-start",
						El("div", "",
							Span("font-weight:700;font-size:11pt", exp.Title),
							P("color:#475569;font-weight:500;font-size:9.5pt", exp.Company),
						),
						Span("font-size:8pt;color:#64748b;background:#f1f5f9;padding:2pt 8pt;border-radius:3pt;white-space:nowrap", DateRange(exp.StartDate, exp.EndDate, exp.Current, " - ")),
					),
				)
				if bullets := FilterBullets(exp.Description); len(bullets) > 0 {
					list := El("ul", "margin-top:4pt;padding-left:0;list-style:none")
					for _, b := range bullets {
						list.Append(El("li", "display:flex;margin-bottom:2pt;color:#444",
							Span("margin-right:6pt;color:#94a3b8", "■"),
							Span("", b),
						))
					}
					entry.Append(list)
				}
				block.Append(entry)
			}
			body.Append(block)
		case resume.SectionEducation:
			block := El("div", "margin-bottom:14pt", executiveHeading("Education"))
			for _, edu := range data.Education {
				detail := FormatDate(edu.GraduationDate)
				if edu.GPA != "" {
					if detail != "" {
						detail += " · "
					}
					detail += "GPA: " + edu.GPA
				}
				block.Append(El("div", "margin-bottom:6pt",
					Span("font-weight:700", edu.Degree),
					P("color:#64748b;font-size:9pt", edu.Institution),
					P("color:#94a3b8;font-size:8.5pt", detail),
				))
			}
			body.Append(block)
		case resume.SectionSkills:
			block := El("div", "margin-bottom:14pt", executiveHeading("Core Competencies"))
			chips := El("div", "display:flex;flex-wrap:wrap;gap:4pt")
			for _, s := range data.Skills {
				chips.Append(Span("font-size:9pt;background:#f1f5f9;color:#475569;padding:2pt 8pt;border-radius:3pt", s))
			}
			block.Append(chips)
			body.Append(block)
		}
	}
	root.Append(body)

	return root
}

func executiveHeading(title string) *Node {
	return El("h2", "font-size:10.5pt;font-weight:700;text-transform:uppercase;color:#1e293b;letter-spacing:1px;border-bottom:1px solid #cbd5e1;padding-bottom:3pt;margin-bottom:8pt", Text(title))
}
