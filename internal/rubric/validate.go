package rubric

import (
	"fmt"
	"strings"
)

// validate performs all structural checks on a rubric definition.
// Returns a combined error describing all problems found, or nil if valid.
func validate(axes []Axis, areas []Area) error {
	var errs []string

	axisSet := make(map[string]bool, len(axes))
	for _, ax := range axes {
		if ax.ID == "" {
			errs = append(errs, "axis with empty ID")
			continue
		}
		if axisSet[ax.ID] {
			errs = append(errs, fmt.Sprintf("duplicate axis ID: %q", ax.ID))
		}
		axisSet[ax.ID] = true
		if len(ax.AreaIDs) == 0 {
			errs = append(errs, fmt.Sprintf("axis %q has no areas", ax.ID))
		}
	}

	areaSet := make(map[string]bool, len(areas))
	for _, a := range areas {
		if a.ID == "" {
			errs = append(errs, "area with empty ID")
			continue
		}
		if areaSet[a.ID] {
			errs = append(errs, fmt.Sprintf("duplicate area ID: %q", a.ID))
		}
		areaSet[a.ID] = true

		if !axisSet[a.AxisID] {
			errs = append(errs, fmt.Sprintf("area %q references nonexistent axis %q", a.ID, a.AxisID))
		}
		if len(a.Levels) == 0 {
			errs = append(errs, fmt.Sprintf("area %q has no levels", a.ID))
		}

		// Ranks must be strictly increasing. They need not start at 1.
		for i := 1; i < len(a.Levels); i++ {
			if a.Levels[i].Rank <= a.Levels[i-1].Rank {
				errs = append(errs, fmt.Sprintf("area %q: level ranks not strictly increasing at index %d", a.ID, i))
			}
		}
		for _, l := range a.Levels {
			if l.Title == "" {
				errs = append(errs, fmt.Sprintf("area %q level %d has no title", a.ID, l.Rank))
			}
		}
	}

	// Every axis AreaID must resolve, and the area must claim the axis back.
	claimedBy := make(map[string]string)
	for _, ax := range axes {
		for _, areaID := range ax.AreaIDs {
			if !areaSet[areaID] {
				errs = append(errs, fmt.Sprintf("axis %q references nonexistent area %q", ax.ID, areaID))
				continue
			}
			if prev, dup := claimedBy[areaID]; dup {
				errs = append(errs, fmt.Sprintf("area %q listed by both axis %q and axis %q", areaID, prev, ax.ID))
			}
			claimedBy[areaID] = ax.ID
		}
	}
	for _, a := range areas {
		if owner, ok := claimedBy[a.ID]; ok && owner != a.AxisID {
			errs = append(errs, fmt.Sprintf("area %q declares axis %q but is listed by axis %q", a.ID, a.AxisID, owner))
		}
		if _, ok := claimedBy[a.ID]; !ok && axisSet[a.AxisID] {
			errs = append(errs, fmt.Sprintf("area %q is not listed by its axis %q", a.ID, a.AxisID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("rubric validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
