package resume

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionCompleteApplies(t *testing.T) {
	s := NewSession(nil)

	gen := s.Begin("personalInfo.summary")
	applied := s.Complete("personalInfo.summary", gen, func(d *Document) {
		d.UpdatePersonalInfo("summary", "Generated summary")
	})

	assert.True(t, applied)
	assert.Equal(t, "Generated summary", s.Snapshot().Data.PersonalInfo.Summary)
}

func TestSessionUserEditWins(t *testing.T) {
	s := NewSession(nil)

	// A generation request goes out, then the user types into the same field
	// before the answer comes back.
	gen := s.Begin("personalInfo.summary")
	s.Edit("personalInfo.summary", func(d *Document) {
		d.UpdatePersonalInfo("summary", "A")
	})

	applied := s.Complete("personalInfo.summary", gen, func(d *Document) {
		d.UpdatePersonalInfo("summary", "B")
	})

	assert.False(t, applied)
	assert.Equal(t, "A", s.Snapshot().Data.PersonalInfo.Summary)
}

func TestSessionLatestRequestWins(t *testing.T) {
	s := NewSession(nil)

	first := s.Begin("personalInfo.summary")
	second := s.Begin("personalInfo.summary")

	assert.False(t, s.Complete("personalInfo.summary", first, func(d *Document) {
		d.UpdatePersonalInfo("summary", "old")
	}))
	assert.True(t, s.Complete("personalInfo.summary", second, func(d *Document) {
		d.UpdatePersonalInfo("summary", "new")
	}))
	assert.Equal(t, "new", s.Snapshot().Data.PersonalInfo.Summary)
}

func TestSessionEditsToOtherTargetsDoNotInterfere(t *testing.T) {
	s := NewSession(nil)

	gen := s.Begin("personalInfo.summary")
	s.Edit("skills", func(d *Document) {
		d.AddSkill("Go")
	})

	applied := s.Complete("personalInfo.summary", gen, func(d *Document) {
		d.UpdatePersonalInfo("summary", "Generated")
	})

	assert.True(t, applied)
	assert.Equal(t, []string{"Go"}, s.Snapshot().Data.Skills)
}

func TestSessionSnapshotIsIsolatedFromLaterEdits(t *testing.T) {
	s := NewSession(nil)
	s.Edit("experience", func(d *Document) {
		id := d.AddExperience()
		d.UpdateExperienceField(id, "description", []string{"First"})
	})

	snap := s.Snapshot()
	s.Edit("experience", func(d *Document) {
		d.UpdateExperienceField(d.Data.Experience[0].ID, "description", []string{"Second"})
		d.AddSkill("Go")
	})

	assert.Equal(t, []string{"First"}, snap.Data.Experience[0].Description)
	assert.Empty(t, snap.Data.Skills)
}

func TestSessionConcurrentSnapshotAndEdit(t *testing.T) {
	s := NewSession(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s.Edit("personalInfo.summary", func(d *Document) {
				d.UpdatePersonalInfo("summary", fmt.Sprintf("summary %d", n))
			})
			s.Edit("skills", func(d *Document) {
				d.AddSkill(fmt.Sprintf("skill-%d", n))
			})
		}(i)
		go func() {
			defer wg.Done()
			snap := s.Snapshot()
			_ = snap.Data.PersonalInfo.Summary
			_ = len(snap.Data.Skills)
		}()
	}
	wg.Wait()

	assert.Len(t, s.Snapshot().Data.Skills, 50)
}

func TestSessionCancelDropsOutstanding(t *testing.T) {
	s := NewSession(nil)

	gen := s.Begin("personalInfo.summary")
	s.Cancel()

	applied := s.Complete("personalInfo.summary", gen, func(d *Document) {
		d.UpdatePersonalInfo("summary", "late")
	})

	assert.False(t, applied)
	assert.Empty(t, s.Snapshot().Data.PersonalInfo.Summary)
}

func TestSessionReplaceInvalidatesAndSwaps(t *testing.T) {
	s := NewSession(nil)
	gen := s.Begin("personalInfo.summary")

	loaded := NewDocument()
	loaded.UpdatePersonalInfo("name", "Loaded User")
	s.Replace(loaded)

	applied := s.Complete("personalInfo.summary", gen, func(d *Document) {
		d.UpdatePersonalInfo("summary", "late")
	})

	assert.False(t, applied)
	assert.Equal(t, "Loaded User", s.Snapshot().Data.PersonalInfo.Name)
	assert.Empty(t, s.Snapshot().Data.PersonalInfo.Summary)
}
