package templates

import (
	"strings"

	"resume-builder/internal/resume"
)

// Classic: centered serif header, italic accents, understated ruling.
func renderClassic(data resume.ResumeData, order resume.SectionOrder) *Node {
	p := data.PersonalInfo

	root := El("div", "background:#fff;color:#111827;font-family:'Georgia','Times New Roman','Garamond',serif;padding:0.6in 0.7in;font-size:10.5pt;line-height:1.4;min-height:100%")

	header := El("div", "text-align:center;border-bottom:1px solid #999;padding-bottom:10pt;margin-bottom:14pt",
		El("h1", "font-size:24pt;font-weight:700;margin-bottom:4pt;color:#111", Text(DisplayName(p))),
	)
	if contacts := ContactLine(p.Email, p.Phone, p.Location, p.LinkedIn, p.Website); len(contacts) > 0 {
		header.Append(P("font-size:9.5pt;color:#555", strings.Join(contacts, "  |  ")))
	}
	root.Append(header)

	for _, sec := range order {
		if !HasSection(data, sec) {
			continue
		}
		switch sec {
		case resume.SectionSummary:
			root.Append(El("div", "margin-bottom:12pt",
				classicHeading("Professional Summary"),
				P("color:#444;font-style:italic", p.Summary),
			))
		case resume.SectionExperience:
			block := El("div", "margin-bottom:12pt", classicHeading("Professional Experience"))
			for _, exp := range data.Experience {
				entry := El("div", "margin-bottom:12pt",
					El("div", "display:flex;justify-content:space-between;align-items:baseline",
						Span("font-weight:700;font-size:11pt", exp.Title),
						Span("font-size:9pt;color:#666", DateRange(exp.StartDate, exp.EndDate, exp.Current, " – ")),
					),
				)
				company := exp.Company
				if exp.Location != "" {
					company += ", " + exp.Location
				}
				entry.Append(P("font-style:italic;color:#555;font-size:10pt", company))
				if bullets := FilterBullets(exp.Description); len(bullets) > 0 {
					list := El("ul", "margin-top:3pt;padding-left:16pt;list-style-type:disc")
					for _, b := range bullets {
						list.Append(El("li", "margin-bottom:2pt;color:#333", Text(b)))
					}
					entry.Append(list)
				}
				block.Append(entry)
			}
			root.Append(block)
		case resume.SectionEducation:
			block := El("div", "margin-bottom:12pt", classicHeading("Education"))
			for _, edu := range data.Education {
				detail := edu.Institution
				if edu.Location != "" {
					detail += ", " + edu.Location
				}
				if edu.GPA != "" {
					detail += " — GPA: " + edu.GPA
				}
				block.Append(El("div", "margin-bottom:8pt",
					El("div", "display:flex;justify-content:space-between;align-items:baseline",
						Span("font-weight:700;font-size:10.5pt", edu.Degree),
						Span("font-size:9pt;color:#666", FormatDate(edu.GraduationDate)),
					),
					P("font-style:italic;color:#555", detail),
				))
			}
			root.Append(block)
		case resume.SectionSkills:
			root.Append(El("div", "margin-bottom:12pt",
				classicHeading("Skills"),
				P("color:#333", strings.Join(data.Skills, ", ")),
			))
		}
	}

	return root
}

func classicHeading(title string) *Node {
	return El("h2", "font-size:11pt;font-weight:700;color:#111;border-bottom:1px solid #ccc;padding-bottom:2pt;margin-bottom:6pt", Text(title))
}
