package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionOrderValidate(t *testing.T) {
	tests := []struct {
		name    string
		order   SectionOrder
		wantErr bool
	}{
		{"default order", DefaultSectionOrder(), false},
		{"shuffled order", SectionOrder{SectionSkills, SectionSummary, SectionEducation, SectionExperience}, false},
		{"too short", SectionOrder{SectionSummary, SectionSkills}, true},
		{"duplicate", SectionOrder{SectionSummary, SectionSummary, SectionEducation, SectionSkills}, true},
		{"unknown section", SectionOrder{SectionSummary, SectionExperience, SectionEducation, Section("awards")}, true},
		{"empty", SectionOrder{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSectionOrderMove(t *testing.T) {
	base := DefaultSectionOrder() // summary, experience, education, skills

	tests := []struct {
		name string
		from int
		to   int
		want SectionOrder
	}{
		{"last to first", 3, 0, SectionOrder{SectionSkills, SectionSummary, SectionExperience, SectionEducation}},
		{"first to last", 0, 3, SectionOrder{SectionExperience, SectionEducation, SectionSkills, SectionSummary}},
		{"adjacent swap", 1, 2, SectionOrder{SectionSummary, SectionEducation, SectionExperience, SectionSkills}},
		{"same index no-op", 2, 2, base},
		{"negative from no-op", -1, 2, base},
		{"out of range to no-op", 1, 4, base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Move(tt.from, tt.to)
			assert.Equal(t, tt.want, got)
			// the input is never mutated
			assert.Equal(t, DefaultSectionOrder(), base)
		})
	}
}

func TestSectionOrderContains(t *testing.T) {
	order := SectionOrder{SectionSummary, SectionExperience}
	assert.True(t, order.Contains(SectionSummary))
	assert.False(t, order.Contains(SectionSkills))
}
