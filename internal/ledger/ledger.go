package ledger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/abhisek/maturiz/internal/rubric"
)

// ErrInvalidLevel is returned when a rank is not defined for the area.
var ErrInvalidLevel = errors.New("invalid level")

// Policy selects how SetScore treats the existing selection for an area.
// It is a ledger property, not an area type: the same catalog works under
// either policy.
type Policy int

const (
	// SingleSelect replaces the selection with the new rank.
	SingleSelect Policy = iota
	// MultiSelect toggles the rank's membership in the selection.
	MultiSelect
)

func (p Policy) String() string {
	if p == MultiSelect {
		return "multi"
	}
	return "single"
}

// PolicyFromString parses a policy name, defaulting to SingleSelect.
func PolicyFromString(s string) Policy {
	if s == "multi" {
		return MultiSelect
	}
	return SingleSelect
}

// Ledger is the authoritative mapping of area → selected level ranks for
// one assessment session. It is single-writer: mutations are serialized
// internally, and progress recomputation happens under the same lock as
// the score write so observers never see a stale percentage.
type Ledger struct {
	mu      sync.Mutex
	catalog *rubric.Catalog
	policy  Policy
	scores  map[string]map[int]bool
	subs    []func(Progress)
}

// New creates an empty ledger over the given catalog.
func New(catalog *rubric.Catalog, policy Policy) *Ledger {
	return &Ledger{
		catalog: catalog,
		policy:  policy,
		scores:  make(map[string]map[int]bool),
	}
}

// Policy returns the ledger's selection policy.
func (l *Ledger) Policy() Policy {
	return l.policy
}

// Subscribe registers a callback invoked with the owning axis's progress
// after every successful SetScore. Callbacks run under the ledger lock
// and must not call back into the ledger.
func (l *Ledger) Subscribe(fn func(Progress)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subs = append(l.subs, fn)
}

// SetScore records a level selection for an area. The rank must be one of
// the area's catalog levels. Under SingleSelect the selection becomes
// {rank}; under MultiSelect the rank's membership is toggled. The write
// and the progress recomputation are one atomic update.
func (l *Ledger) SetScore(areaID string, rank int) (Progress, error) {
	area, err := l.catalog.GetArea(areaID)
	if err != nil {
		return Progress{}, err
	}
	if !area.HasRank(rank) {
		return Progress{}, fmt.Errorf("%w: rank %d not defined for area %q", ErrInvalidLevel, rank, areaID)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	set := l.scores[areaID]
	if set == nil {
		set = make(map[int]bool)
		l.scores[areaID] = set
	}

	switch l.policy {
	case MultiSelect:
		if set[rank] {
			delete(set, rank)
		} else {
			set[rank] = true
		}
	default:
		clear(set)
		set[rank] = true
	}

	p := l.progressLocked(area.AxisID)
	for _, fn := range l.subs {
		fn(p)
	}
	return p, nil
}

// Scores returns the selected ranks for an area. An area that was never
// scored yields an empty set, not an error.
func (l *Ledger) Scores(areaID string) map[int]bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[int]bool, len(l.scores[areaID]))
	for rank := range l.scores[areaID] {
		out[rank] = true
	}
	return out
}
