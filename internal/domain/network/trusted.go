package network

import "sync"

// TrustedSet is the allow-list of network identifiers considered safe.
//
// It is populated once at startup and never mutated afterward. Access still
// goes through a mutex to keep the shared-state discipline uniform; the lock
// is held only for the membership scan, never across logging or output.
type TrustedSet struct {
	// mu protects concurrent access to members.
	mu sync.Mutex
	// members is the ordered list of trusted identifiers as loaded.
	members []Identifier
}

// NewTrustedSet builds a set from the provided identifiers.
// The input slice is copied, so the caller may reuse it freely.
func NewTrustedSet(members []Identifier) *TrustedSet {
	copied := make([]Identifier, len(members))
	copy(copied, members)

	return &TrustedSet{members: copied}
}

// Contains reports whether id matches an entry exactly.
// Matching is exact string equality: no case folding, no prefixes.
func (s *TrustedSet) Contains(id Identifier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, member := range s.members {
		if member == id {
			return true
		}
	}

	return false
}

// Size returns the number of trusted identifiers.
func (s *TrustedSet) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.members)
}

// Snapshot returns a copy of the members to avoid leaking internal references.
func (s *TrustedSet) Snapshot() []Identifier {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]Identifier, len(s.members))
	copy(copied, s.members)

	return copied
}
