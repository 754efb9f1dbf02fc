package rubric

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownAxis is returned when an axis ID is not in the catalog.
var ErrUnknownAxis = errors.New("unknown axis")

// ErrUnknownArea is returned when an area ID is not in the catalog.
var ErrUnknownArea = errors.New("unknown area")

// Catalog holds the full rubric with precomputed indices. Catalogs are
// read-only after construction; all accessors return copies.
type Catalog struct {
	axes   []Axis
	areas  []Area
	byAxis map[string]*Axis
	byArea map[string]*Area
}

// NewCatalog builds a catalog from axes and areas and validates its
// structure. Returns an error describing every problem found.
func NewCatalog(axes []Axis, areas []Area) (*Catalog, error) {
	if err := validate(axes, areas); err != nil {
		return nil, err
	}

	c := &Catalog{
		axes:   axes,
		areas:  areas,
		byAxis: make(map[string]*Axis, len(axes)),
		byArea: make(map[string]*Area, len(areas)),
	}
	for i := range c.axes {
		c.byAxis[c.axes[i].ID] = &c.axes[i]
	}
	for i := range c.areas {
		c.byArea[c.areas[i].ID] = &c.areas[i]
	}
	return c, nil
}

// catalog is the package-level singleton, built from the seed by init().
var catalog *Catalog

func init() {
	c, err := NewCatalog(seedAxes, seedAreas)
	if err != nil {
		// The seed rubric ships with the binary; a broken seed is a
		// programming error.
		panic(fmt.Sprintf("seed rubric invalid: %v", err))
	}
	catalog = c
}

// Default returns the built-in seed catalog.
func Default() *Catalog {
	return catalog
}

// Axes returns all axes in display order.
func (c *Catalog) Axes() []Axis {
	return slices.Clone(c.axes)
}

// GetAxis returns the axis with the given ID.
func (c *Catalog) GetAxis(axisID string) (*Axis, error) {
	a, ok := c.byAxis[axisID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAxis, axisID)
	}
	return a, nil
}

// GetArea returns the area with the given ID.
func (c *Catalog) GetArea(areaID string) (*Area, error) {
	a, ok := c.byArea[areaID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArea, areaID)
	}
	return a, nil
}

// AreasForAxis returns the axis's areas in catalog order.
func (c *Catalog) AreasForAxis(axisID string) ([]Area, error) {
	axis, err := c.GetAxis(axisID)
	if err != nil {
		return nil, err
	}
	out := make([]Area, 0, len(axis.AreaIDs))
	for _, id := range axis.AreaIDs {
		out = append(out, *c.byArea[id])
	}
	return out, nil
}

// AreaCount returns the number of areas in the given axis.
func (c *Catalog) AreaCount(axisID string) (int, error) {
	axis, err := c.GetAxis(axisID)
	if err != nil {
		return 0, err
	}
	return len(axis.AreaIDs), nil
}
