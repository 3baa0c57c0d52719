package templates

import (
	"strings"

	"resume-builder/internal/resume"
)

// Microsoft: Segoe UI with green accents, triangle bullet markers and green
// skill chips.
func renderMicrosoft(data resume.ResumeData, order resume.SectionOrder) *Node {
	p := data.PersonalInfo

	root := El("div", "background:#fff;color:#111827;font-family:'Segoe UI','Calibri','Arial',sans-serif;padding:0.6in 0.7in;font-size:10pt;line-height:1.45;min-height:100%")

	header := El("div", "border-bottom:2px solid #107c41;padding-bottom:10pt;margin-bottom:14pt",
		El("h1", "font-size:21pt;font-weight:600;margin-bottom:4pt;color:#111", Text(DisplayName(p))),
	)
	if contacts := ContactLine(p.Email, p.Phone, p.Location); len(contacts) > 0 {
		header.Append(P("font-size:9pt;color:#555", strings.Join(contacts, "   ")))
	}
	if links := ContactLine(p.LinkedIn, p.GitHub, p.Website); len(links) > 0 {
		header.Append(P("font-size:9pt;color:#107c41;margin-top:2pt", strings.Join(links, "   ")))
	}
	root.Append(header)

	for _, sec := range order {
		if !HasSection(data, sec) {
			continue
		}
		switch sec {
		case resume.SectionSummary:
			root.Append(El("div", "margin-bottom:12pt",
				microsoftHeading("Professional Summary"),
				P("color:#333", p.Summary),
			))
		case resume.SectionExperience:
			block := El("div", "margin-bottom:12pt", microsoftHeading("Professional Experience"))
			for _, exp := range data.Experience {
				entry := El("div", "margin-bottom:10pt",
					El("div", "display:flex;justify-content:space-between;align-items:flex-start",
						El("div", "",
							Span("font-weight:600;font-size:10.5pt", exp.Title),
							P("color:#107c41;font-weight:500;font-size:9.5pt", exp.Company),
						),
						Span("font-size:8.5pt;color:#666;background:#f0fdf4;padding:1pt 6pt;border-radius:3pt;white-space:nowrap", DateRange(exp.StartDate, exp.EndDate, exp.Current, " - ")),
					),
				)
				if bullets := FilterBullets(exp.Description); len(bullets) > 0 {
					list := El("ul", "margin-top:3pt;padding-left:0;list-style:none")
					for _, b := range bullets {
						list.Append(El("li", "display:flex;margin-bottom:2pt;color:#333",
							Span("color:#107c41;margin-right:6pt", "▸"),
							Span("", b),
						))
					}
					entry.Append(list)
				}
				block.Append(entry)
			}
			root.Append(block)
		case resume.SectionEducation:
			block := El("div", "margin-bottom:12pt", microsoftHeading("Education"))
			for _, edu := range data.Education {
				detail := FormatDate(edu.GraduationDate)
				if edu.GPA != "" {
					if detail != "" {
						detail += " · "
					}
					detail += "GPA: " + edu.GPA
				}
				block.Append(El("div", "margin-bottom:6pt",
					Span("font-weight:600;font-size:10.5pt", edu.Degree),
					P("color:#107c41;font-size:9.5pt", edu.Institution),
					P("font-size:8.5pt;color:#666", detail),
				))
			}
			root.Append(block)
		case resume.SectionSkills:
			block := El("div", "margin-bottom:12pt", microsoftHeading("Technical Skills"))
			chips := El("div", "display:flex;flex-wrap:wrap;gap:4pt")
			for _, s := range data.Skills {
				chips.Append(Span("font-size:9pt;background:#e8f5e9;color:#1b5e20;padding:2pt 8pt;border-radius:3pt", s))
			}
			block.Append(chips)
			root.Append(block)
		}
	}

	return root
}

func microsoftHeading(title string) *Node {
	return El("h2", "font-size:11pt;font-weight:600;color:#107c41;margin-bottom:6pt", Text(title))
}
