package resume

import "sync"

// Session owns one document being edited and guards it against stale
// asynchronous updates. External calls (AI generation, persistence loads)
// complete out of band; each one is tagged with the target it will write
// and a generation number taken when the request started. A direct user
// edit to the same target bumps the generation, so a completion that
// arrives afterwards is discarded instead of overwriting the newer value.
type Session struct {
	mu   sync.Mutex
	doc  *Document
	gens map[string]uint64
}

// NewSession wraps a document in a fresh editing session.
func NewSession(doc *Document) *Session {
	if doc == nil {
		doc = NewDocument()
	}
	return &Session{doc: doc, gens: map[string]uint64{}}
}

// Snapshot returns a deep copy of the current document taken under the
// session lock. Readers serialize the copy instead of the live document,
// so a concurrent Edit can never produce a torn read.
func (s *Session) Snapshot() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Begin registers a new outstanding request for the given target (for
// example "personalInfo.summary" or an experience entry id) and returns the
// generation token the eventual completion must present.
func (s *Session) Begin(target string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[target]++
	return s.gens[target]
}

// Edit applies a direct user mutation touching the given target. The
// generation bump supersedes any in-flight request for the same target.
func (s *Session) Edit(target string, apply func(*Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[target]++
	apply(s.doc)
}

// Complete applies the result of an asynchronous request if and only if it
// is still the most recent one issued for its target. It reports whether
// the update was applied; a false return means the response was stale and
// the document is untouched.
func (s *Session) Complete(target string, gen uint64, apply func(*Document)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gens[target] != gen {
		return false
	}
	apply(s.doc)
	return true
}

// Cancel invalidates every outstanding request, used when the user leaves
// the editing view or replaces the whole document (e.g. loading a saved
// resume). Late completions will all miss their generation and be dropped.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for target := range s.gens {
		s.gens[target]++
	}
}

// Replace swaps in a different document (a load from the store) and
// invalidates all outstanding requests against the old one.
func (s *Session) Replace(doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for target := range s.gens {
		s.gens[target]++
	}
	s.doc = doc
}
