// Package collision detects distinct names that share a 64-bit hash key.
package collision

import "github.com/arloliu/ehrlens/errs"

// Tracker records name → key assignments while an index is being built.
//
// A collision (two different names, one key) is not fatal: the tracker only
// flags it so the caller can fall back to keying by name.
type Tracker struct {
	keys         map[uint64]string
	seen         map[string]struct{}
	hasCollision bool
}

// NewTracker creates a new collision tracker sized for n names.
func NewTracker(n int) *Tracker {
	return &Tracker{
		keys: make(map[uint64]string, n),
		seen: make(map[string]struct{}, n),
	}
}

// Track records name under key.
//
// Returns errs.ErrDuplicateColumn (with errs.ErrInvalidInput) if the same name
// is tracked twice, which for a table means a duplicated column header.
func (t *Tracker) Track(name string, key uint64) error {
	if _, dup := t.seen[name]; dup {
		return errs.Invalid(errs.ErrDuplicateColumn, "%q", name)
	}
	t.seen[name] = struct{}{}

	if existing, ok := t.keys[key]; ok && existing != name {
		t.hasCollision = true
		return nil
	}
	t.keys[key] = name

	return nil
}

// HasCollision reports whether two distinct names shared a key.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}
