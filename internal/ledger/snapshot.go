package ledger

import (
	"fmt"
	"sort"
)

// Snapshot returns the ledger state as area → sorted ranks, suitable for
// persistence. Writes by the persistence layer are idempotent
// replacements of a given area's level set.
func (l *Ledger) Snapshot() map[string][]int {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string][]int, len(l.scores))
	for areaID, set := range l.scores {
		if len(set) == 0 {
			continue
		}
		ranks := make([]int, 0, len(set))
		for r := range set {
			ranks = append(ranks, r)
		}
		sort.Ints(ranks)
		out[areaID] = ranks
	}
	return out
}

// Restore replaces the ledger state with a snapshot. Every area and rank
// is validated against the catalog; on any violation the ledger is left
// unchanged.
func (l *Ledger) Restore(snap map[string][]int) error {
	restored := make(map[string]map[int]bool, len(snap))
	for areaID, ranks := range snap {
		area, err := l.catalog.GetArea(areaID)
		if err != nil {
			return fmt.Errorf("restore snapshot: %w", err)
		}
		set := make(map[int]bool, len(ranks))
		for _, r := range ranks {
			if !area.HasRank(r) {
				return fmt.Errorf("restore snapshot: %w: rank %d not defined for area %q", ErrInvalidLevel, r, areaID)
			}
			set[r] = true
		}
		if len(set) > 0 {
			restored[areaID] = set
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.scores = restored
	return nil
}
