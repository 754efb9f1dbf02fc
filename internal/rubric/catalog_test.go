package rubric

import (
	"errors"
	"testing"
)

func TestDefault_SeedIsValid(t *testing.T) {
	c := Default()
	if c == nil {
		t.Fatal("expected seed catalog")
	}
	if len(c.Axes()) != 4 {
		t.Fatalf("expected 4 seed axes, got %d", len(c.Axes()))
	}
}

func TestAreasForAxis_PreservesOrder(t *testing.T) {
	areas, err := Default().AreasForAxis("strategy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"vision-alignment", "portfolio-governance", "value-measurement"}
	if len(areas) != len(want) {
		t.Fatalf("expected %d areas, got %d", len(want), len(areas))
	}
	for i, a := range areas {
		if a.ID != want[i] {
			t.Errorf("area %d: expected %q, got %q", i, want[i], a.ID)
		}
		if a.AxisID != "strategy" {
			t.Errorf("area %q: expected axis strategy, got %q", a.ID, a.AxisID)
		}
	}
}

func TestAreasForAxis_UnknownAxis(t *testing.T) {
	_, err := Default().AreasForAxis("nope")
	if !errors.Is(err, ErrUnknownAxis) {
		t.Fatalf("expected ErrUnknownAxis, got %v", err)
	}
}

func TestGetArea_UnknownArea(t *testing.T) {
	_, err := Default().GetArea("nope")
	if !errors.Is(err, ErrUnknownArea) {
		t.Fatalf("expected ErrUnknownArea, got %v", err)
	}
}

func TestArea_HasRank(t *testing.T) {
	area, err := Default().GetArea("data-quality")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for rank := 1; rank <= 5; rank++ {
		if !area.HasRank(rank) {
			t.Errorf("expected rank %d to exist", rank)
		}
	}
	if area.HasRank(0) || area.HasRank(6) {
		t.Error("out-of-range ranks should not exist")
	}
}

func TestNewCatalog_RejectsDuplicateAreaID(t *testing.T) {
	axes := []Axis{{ID: "ax", DisplayKey: "axis.ax", AreaIDs: []string{"a"}}}
	areas := []Area{
		{ID: "a", AxisID: "ax", Levels: []Level{{Rank: 1, Title: "L1"}}},
		{ID: "a", AxisID: "ax", Levels: []Level{{Rank: 1, Title: "L1"}}},
	}
	if _, err := NewCatalog(axes, areas); err == nil {
		t.Fatal("expected validation error for duplicate area ID")
	}
}

func TestNewCatalog_RejectsNonMonotonicRanks(t *testing.T) {
	axes := []Axis{{ID: "ax", DisplayKey: "axis.ax", AreaIDs: []string{"a"}}}
	areas := []Area{
		{ID: "a", AxisID: "ax", Levels: []Level{
			{Rank: 3, Title: "L3"},
			{Rank: 2, Title: "L2"},
		}},
	}
	if _, err := NewCatalog(axes, areas); err == nil {
		t.Fatal("expected validation error for non-monotonic ranks")
	}
}

func TestNewCatalog_RejectsCrossAxisClaim(t *testing.T) {
	axes := []Axis{
		{ID: "ax1", DisplayKey: "axis.ax1", AreaIDs: []string{"a"}},
		{ID: "ax2", DisplayKey: "axis.ax2", AreaIDs: []string{"a"}},
	}
	areas := []Area{
		{ID: "a", AxisID: "ax1", Levels: []Level{{Rank: 1, Title: "L1"}}},
	}
	if _, err := NewCatalog(axes, areas); err == nil {
		t.Fatal("expected validation error for area claimed by two axes")
	}
}

func TestNewCatalog_RanksNeedNotStartAtOne(t *testing.T) {
	axes := []Axis{{ID: "ax", DisplayKey: "axis.ax", AreaIDs: []string{"a"}}}
	areas := []Area{
		{ID: "a", AxisID: "ax", Levels: []Level{
			{Rank: 0, Title: "L0"},
			{Rank: 2, Title: "L2"},
			{Rank: 5, Title: "L5"},
		}},
	}
	c, err := NewCatalog(axes, areas)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	area, _ := c.GetArea("a")
	if !area.HasRank(0) || !area.HasRank(5) || area.HasRank(1) {
		t.Errorf("unexpected ranks: %v", area.Ranks())
	}
}
