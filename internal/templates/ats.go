package templates

import (
	"strings"

	"resume-builder/internal/resume"
)

// ATS-friendly: plain Arial, no color, no columns, textual bullets. The
// layout tracking systems parse best.
func renderATS(data resume.ResumeData, order resume.SectionOrder) *Node {
	p := data.PersonalInfo

	root := El("div", "background:#fff;color:#000;font-family:'Arial','Helvetica',sans-serif;padding:0.6in 0.7in;font-size:10pt;line-height:1.4;min-height:100%")

	header := El("div", "margin-bottom:12pt",
		El("h1", "font-size:16pt;font-weight:700;margin-bottom:4pt;color:#000", Text(DisplayName(p))),
	)
	if contacts := ContactLine(p.Email, p.Phone, p.Location, p.LinkedIn, p.GitHub, p.Website); len(contacts) > 0 {
		header.Append(P("font-size:9pt;color:#444", strings.Join(contacts, " | ")))
	}
	root.Append(header)

	for _, sec := range order {
		if !HasSection(data, sec) {
			continue
		}
		switch sec {
		case resume.SectionSummary:
			root.Append(El("div", "margin-bottom:10pt",
				atsHeading("PROFESSIONAL SUMMARY"),
				P("color:#222", p.Summary),
			))
		case resume.SectionExperience:
			block := El("div", "margin-bottom:10pt", atsHeading("WORK EXPERIENCE"))
			for _, exp := range data.Experience {
				company := exp.Company
				if exp.Location != "" {
					company += " | " + exp.Location
				}
				entry := El("div", "margin-bottom:8pt",
					P("font-weight:700", exp.Title),
					P("color:#444", company),
					P("font-size:9pt;color:#666", DateRange(exp.StartDate, exp.EndDate, exp.Current, " - ")),
				)
				if bullets := FilterBullets(exp.Description); len(bullets) > 0 {
					list := El("ul", "margin-top:2pt;padding-left:0;list-style:none")
					for _, b := range bullets {
						list.Append(El("li", "margin-bottom:1pt;color:#222", Text("• "+b)))
					}
					entry.Append(list)
				}
				block.Append(entry)
			}
			root.Append(block)
		case resume.SectionEducation:
			block := El("div", "margin-bottom:10pt", atsHeading("EDUCATION"))
			for _, edu := range data.Education {
				detail := edu.Institution
				if edu.GPA != "" {
					detail += " | GPA: " + edu.GPA
				}
				block.Append(El("div", "margin-bottom:6pt",
					P("font-weight:700", edu.Degree),
					P("color:#444", detail),
					P("font-size:9pt;color:#666", FormatDate(edu.GraduationDate)),
				))
			}
			root.Append(block)
		case resume.SectionSkills:
			root.Append(El("div", "margin-bottom:10pt",
				atsHeading("SKILLS"),
				P("color:#222", strings.Join(data.Skills, ", ")),
			))
		}
	}

	return root
}

func atsHeading(title string) *Node {
	return El("h2", "font-size:11pt;font-weight:700;color:#000;border-bottom:1px solid #000;padding-bottom:2pt;margin-bottom:6pt", Text(title))
}
