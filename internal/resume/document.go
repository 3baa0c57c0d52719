package resume

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultTemplate is the template id applied to new documents.
const DefaultTemplate = "modern"

// Document is one editing session's view of a resume: the data itself plus
// the user-controlled section order and selected template. All mutations go
// through its methods so the invariants (unique entry ids, de-duplicated
// skills) hold after any call sequence. Mutations on unknown entry ids are
// silent no-ops since they only ever come from stale references.
type Document struct {
	Data     ResumeData
	Order    SectionOrder
	Template string
}

// NewDocument returns an empty document with the default section order and
// template selection.
func NewDocument() *Document {
	return &Document{
		Data:     NewResumeData(),
		Order:    DefaultSectionOrder(),
		Template: DefaultTemplate,
	}
}

// Clone returns a deep copy sharing no slices with the receiver, so the
// copy can be read or serialized while the original keeps mutating.
func (d *Document) Clone() Document {
	out := Document{
		Data: ResumeData{
			PersonalInfo: d.Data.PersonalInfo,
			Experience:   make([]Experience, len(d.Data.Experience)),
			Education:    append([]Education{}, d.Data.Education...),
			Skills:       append([]string{}, d.Data.Skills...),
		},
		Order:    append(SectionOrder{}, d.Order...),
		Template: d.Template,
	}
	for i, exp := range d.Data.Experience {
		exp.Description = append([]string{}, exp.Description...)
		out.Data.Experience[i] = exp
	}
	return out
}

// UpdatePersonalInfo replaces a single PersonalInfo field by name. Unknown
// field names are ignored. No syntax validation is applied; the values are
// display-only.
func (d *Document) UpdatePersonalInfo(field, value string) {
	p := &d.Data.PersonalInfo
	switch field {
	case "name":
		p.Name = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	case "location":
		p.Location = value
	case "linkedin":
		p.LinkedIn = value
	case "github":
		p.GitHub = value
	case "website":
		p.Website = value
	case "summary":
		p.Summary = value
	}
}

// AddExperience appends a blank experience entry with a fresh id and returns
// its id so the caller can immediately edit it.
func (d *Document) AddExperience() string {
	entry := Experience{
		ID:          uuid.New().String(),
		Description: []string{""},
	}
	d.Data.Experience = append(d.Data.Experience, entry)
	return entry.ID
}

// UpdateExperienceField updates a single field on the experience entry with
// the given id. Description replaces the whole bullet list.
func (d *Document) UpdateExperienceField(id, field string, value interface{}) {
	for i := range d.Data.Experience {
		if d.Data.Experience[i].ID != id {
			continue
		}
		exp := &d.Data.Experience[i]
		switch field {
		case "title":
			if s, ok := value.(string); ok {
				exp.Title = s
			}
		case "company":
			if s, ok := value.(string); ok {
				exp.Company = s
			}
		case "location":
			if s, ok := value.(string); ok {
				exp.Location = s
			}
		case "startDate":
			if s, ok := value.(string); ok {
				exp.StartDate = s
			}
		case "endDate":
			if s, ok := value.(string); ok {
				exp.EndDate = s
			}
		case "current":
			if b, ok := value.(bool); ok {
				exp.Current = b
			}
		case "description":
			if bullets, ok := toStringSlice(value); ok {
				exp.Description = bullets
			}
		}
		return
	}
}

// RemoveExperience deletes the entry with the given id, preserving the order
// of the remaining entries.
func (d *Document) RemoveExperience(id string) {
	kept := d.Data.Experience[:0]
	for _, exp := range d.Data.Experience {
		if exp.ID != id {
			kept = append(kept, exp)
		}
	}
	d.Data.Experience = kept
}

// AddEducation appends a blank education entry with a fresh id and returns
// its id.
func (d *Document) AddEducation() string {
	entry := Education{ID: uuid.New().String()}
	d.Data.Education = append(d.Data.Education, entry)
	return entry.ID
}

// UpdateEducationField updates a single field on the education entry with
// the given id.
func (d *Document) UpdateEducationField(id, field, value string) {
	for i := range d.Data.Education {
		if d.Data.Education[i].ID != id {
			continue
		}
		edu := &d.Data.Education[i]
		switch field {
		case "degree":
			edu.Degree = value
		case "institution":
			edu.Institution = value
		case "location":
			edu.Location = value
		case "graduationDate":
			edu.GraduationDate = value
		case "gpa":
			edu.GPA = value
		}
		return
	}
}

// RemoveEducation deletes the entry with the given id.
func (d *Document) RemoveEducation(id string) {
	kept := d.Data.Education[:0]
	for _, edu := range d.Data.Education {
		if edu.ID != id {
			kept = append(kept, edu)
		}
	}
	d.Data.Education = kept
}

// AddSkill appends a skill after trimming whitespace. Blank strings and
// exact (case-sensitive) duplicates are no-ops, so calling it twice with the
// same value is the same as calling it once.
func (d *Document) AddSkill(skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return
	}
	for _, s := range d.Data.Skills {
		if s == skill {
			return
		}
	}
	d.Data.Skills = append(d.Data.Skills, skill)
}

// RemoveSkill removes a skill by exact string match.
func (d *Document) RemoveSkill(skill string) {
	kept := d.Data.Skills[:0]
	for _, s := range d.Data.Skills {
		if s != skill {
			kept = append(kept, s)
		}
	}
	d.Data.Skills = kept
}

// SelectTemplate switches the template selection. Unknown identifiers are
// kept as-is here; the template registry resolves them to the default at
// render time so the lookup stays total.
func (d *Document) SelectTemplate(id string) {
	d.Template = id
}

func toStringSlice(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
