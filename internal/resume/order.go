package resume

import "fmt"

// Section identifies one of the four re-orderable resume body sections. The
// personal-info header is not a section; it always renders first.
type Section string

const (
	SectionSummary    Section = "summary"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
)

// SectionOrder is a permutation of the four sections. A valid order always
// has length 4 with no repeats and no omissions.
type SectionOrder []Section

// DefaultSectionOrder returns the ordering used for new resumes.
func DefaultSectionOrder() SectionOrder {
	return SectionOrder{SectionSummary, SectionExperience, SectionEducation, SectionSkills}
}

// Validate reports whether the order is a permutation of exactly the four
// known sections. A failure here is a programming error or corrupted stored
// data, never user input.
func (o SectionOrder) Validate() error {
	if len(o) != 4 {
		return fmt.Errorf("section order must have exactly 4 entries, got %d", len(o))
	}
	seen := map[Section]bool{}
	for _, s := range o {
		switch s {
		case SectionSummary, SectionExperience, SectionEducation, SectionSkills:
		default:
			return fmt.Errorf("unknown section %q", s)
		}
		if seen[s] {
			return fmt.Errorf("duplicate section %q", s)
		}
		seen[s] = true
	}
	return nil
}

// Move returns a new order with the element at index from relocated to index
// to; the other elements shift while keeping their relative order. Out of
// range indices or from == to return the order unchanged. Exactly one
// element moves per call.
func (o SectionOrder) Move(from, to int) SectionOrder {
	out := make(SectionOrder, len(o))
	copy(out, o)
	if from == to || from < 0 || to < 0 || from >= len(o) || to >= len(o) {
		return out
	}
	s := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append(SectionOrder{s}, out[to:]...)...)
	return out
}

// Contains reports whether the order includes the given section.
func (o SectionOrder) Contains(s Section) bool {
	for _, sec := range o {
		if sec == s {
			return true
		}
	}
	return false
}
