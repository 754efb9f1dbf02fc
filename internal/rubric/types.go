package rubric

import "strings"

// Axis is a top-level rubric dimension containing ordered areas.
type Axis struct {
	ID         string
	DisplayKey string // i18n key used by the rendering layer, e.g. "axis.strategy"
	AreaIDs    []string
}

// Label returns a readable name derived from the axis ID. The rendering
// layer localizes DisplayKey; Label is what reasoning-service prompts
// and plain CLI output use.
func (a *Axis) Label() string {
	words := strings.Split(a.ID, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Area is a scorable sub-topic within an axis. An area belongs to exactly
// one axis; the binding is catalog data, never changed at runtime.
type Area struct {
	ID     string
	AxisID string
	Name   string
	Levels []Level
}

// Level is one rung of a maturity rubric. Ranks are monotonic within an
// area but are not required to start at 1.
type Level struct {
	Rank   int
	Title  string
	Rubric string
}

// HasRank reports whether rank is one of the area's defined levels.
func (a *Area) HasRank(rank int) bool {
	for _, l := range a.Levels {
		if l.Rank == rank {
			return true
		}
	}
	return false
}

// Ranks returns the area's level ranks in definition order.
func (a *Area) Ranks() []int {
	ranks := make([]int, len(a.Levels))
	for i, l := range a.Levels {
		ranks[i] = l.Rank
	}
	return ranks
}
