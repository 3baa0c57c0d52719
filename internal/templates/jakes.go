package templates

import (
	"strings"

	"resume-builder/internal/resume"
)

// Jakes: the LaTeX look. Computer Modern serif, centered uppercase name
// over a thick rule, two-line entries with right-aligned dates and the
// double-dash range separator.
func renderJakes(data resume.ResumeData, order resume.SectionOrder) *Node {
	p := data.PersonalInfo

	root := El("div", "background:#fff;color:#000;font-family:'CMU Serif','Computer Modern','Latin Modern Roman',Georgia,'Times New Roman',serif;padding:0.5in;font-size:10pt;line-height:1.3;min-height:100%")

	header := El("div", "text-align:center;margin-bottom:6pt",
		El("h1", "font-size:22pt;font-weight:800;text-transform:uppercase;letter-spacing:1.5px;margin-bottom:4pt", Text(DisplayName(p))),
	)
	contactRow := El("div", "font-size:9pt;color:#333")
	first := true
	for _, c := range ContactLine(p.Phone) {
		contactRow.Append(Span("", c))
		first = false
	}
	for _, c := range ContactLine(p.Email, p.LinkedIn, p.GitHub, p.Website) {
		if !first {
			contactRow.Append(Span("margin:0 4pt", "|"))
		}
		contactRow.Append(Span("color:#0000ee;text-decoration:underline", c))
		first = false
	}
	if !first {
		header.Append(contactRow)
	}
	root.Append(header)
	root.Append(El("hr", "border:none;border-top:2px solid #000;margin:2pt 0 8pt 0"))

	for _, sec := range order {
		if !HasSection(data, sec) {
			continue
		}
		switch sec {
		case resume.SectionSummary:
			root.Append(El("div", "margin-bottom:8pt",
				jakesHeading("Summary"),
				P("font-size:10pt;color:#222", p.Summary),
			))
		case resume.SectionExperience:
			block := El("div", "margin-bottom:8pt", jakesHeading("Experience"))
			for _, exp := range data.Experience {
				title := exp.Title
				if title == "" {
					title = "Title"
				}
				company := exp.Company
				if company == "" {
					company = "Company"
				}
				entry := El("div", "margin-bottom:6pt",
					El("div", "display:flex;justify-content:space-between;align-items:baseline",
						Span("font-weight:700;font-size:10.5pt", title),
						Span("font-size:9pt;color:#444", DateRange(exp.StartDate, exp.EndDate, exp.Current, " -- ")),
					),
					El("div", "display:flex;justify-content:space-between;align-items:baseline",
						Span("font-style:italic;font-size:10pt", company),
						Span("font-size:9pt;color:#444", exp.Location),
					),
				)
				if bullets := FilterBullets(exp.Description); len(bullets) > 0 {
					list := El("ul", "margin-top:3pt;padding-left:16pt;list-style-type:disc")
					for _, b := range bullets {
						list.Append(El("li", "margin-bottom:1pt;color:#222", Text(b)))
					}
					entry.Append(list)
				}
				block.Append(entry)
			}
			root.Append(block)
		case resume.SectionEducation:
			block := El("div", "margin-bottom:8pt", jakesHeading("Education"))
			for _, edu := range data.Education {
				institution := edu.Institution
				if institution == "" {
					institution = "Institution"
				}
				degree := edu.Degree
				if degree == "" {
					degree = "Degree"
				}
				if edu.GPA != "" {
					degree += ", GPA: " + edu.GPA
				}
				block.Append(El("div", "margin-bottom:4pt",
					El("div", "display:flex;justify-content:space-between;align-items:baseline",
						Span("font-weight:700;font-size:10.5pt", institution),
						Span("font-size:9pt;color:#444", edu.Location),
					),
					El("div", "display:flex;justify-content:space-between;align-items:baseline",
						Span("font-style:italic;font-size:10pt", degree),
						Span("font-size:9pt;color:#444", FormatDate(edu.GraduationDate)),
					),
				))
			}
			root.Append(block)
		case resume.SectionSkills:
			root.Append(El("div", "margin-bottom:8pt",
				jakesHeading("Technical Skills"),
				P("font-size:10pt;color:#222", strings.Join(data.Skills, ", ")),
			))
		}
	}

	return root
}

func jakesHeading(title string) *Node {
	return El("div", "",
		El("h2", "font-size:11pt;font-weight:700;letter-spacing:0.5px;margin-bottom:1pt", Text(title)),
		El("hr", "border:none;border-top:1px solid #000;margin:0 0 4pt 0"),
	)
}
