package ledger

import (
	"errors"
	"reflect"
	"testing"

	"github.com/abhisek/maturiz/internal/rubric"
)

func strategyAreas(t *testing.T) []rubric.Area {
	t.Helper()
	areas, err := rubric.Default().AreasForAxis("strategy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return areas
}

func TestSetScore_SingleSelectReplaces(t *testing.T) {
	l := New(rubric.Default(), SingleSelect)

	if _, err := l.SetScore("vision-alignment", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.SetScore("vision-alignment", 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := l.Scores("vision-alignment")
	if !reflect.DeepEqual(got, map[int]bool{4: true}) {
		t.Fatalf("expected {4}, got %v", got)
	}
}

func TestSetScore_MultiSelectToggles(t *testing.T) {
	l := New(rubric.Default(), MultiSelect)

	l.SetScore("vision-alignment", 2)
	l.SetScore("vision-alignment", 4)
	got := l.Scores("vision-alignment")
	if !reflect.DeepEqual(got, map[int]bool{2: true, 4: true}) {
		t.Fatalf("expected {2,4}, got %v", got)
	}

	// Toggling an existing rank removes it.
	l.SetScore("vision-alignment", 2)
	got = l.Scores("vision-alignment")
	if !reflect.DeepEqual(got, map[int]bool{4: true}) {
		t.Fatalf("expected {4}, got %v", got)
	}
}

func TestSetScore_MultiSelectDoubleToggleEmpties(t *testing.T) {
	l := New(rubric.Default(), MultiSelect)

	l.SetScore("vision-alignment", 3)
	l.SetScore("vision-alignment", 3)

	if got := l.Scores("vision-alignment"); len(got) != 0 {
		t.Fatalf("expected empty set after double toggle, got %v", got)
	}
}

func TestSetScore_InvalidLevel(t *testing.T) {
	l := New(rubric.Default(), SingleSelect)

	_, err := l.SetScore("vision-alignment", 9)
	if !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	// No partial write.
	if got := l.Scores("vision-alignment"); len(got) != 0 {
		t.Fatalf("expected empty set after failed write, got %v", got)
	}
}

func TestSetScore_UnknownArea(t *testing.T) {
	l := New(rubric.Default(), SingleSelect)

	_, err := l.SetScore("nope", 1)
	if !errors.Is(err, rubric.ErrUnknownArea) {
		t.Fatalf("expected ErrUnknownArea, got %v", err)
	}
}

func TestScores_NeverScoredIsEmptyNotError(t *testing.T) {
	l := New(rubric.Default(), SingleSelect)
	if got := l.Scores("vision-alignment"); len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
}

func TestProgress_MonotonicUnderFirstScores(t *testing.T) {
	l := New(rubric.Default(), SingleSelect)

	prev := -1
	for _, area := range strategyAreas(t) {
		p, err := l.SetScore(area.ID, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Percent <= prev {
			t.Fatalf("expected percent to increase, got %d after %d", p.Percent, prev)
		}
		prev = p.Percent
	}
	if prev != 100 {
		t.Fatalf("expected 100%% after scoring all areas, got %d", prev)
	}
}

func TestProgress_InvariantUnderRescoring(t *testing.T) {
	l := New(rubric.Default(), SingleSelect)

	l.SetScore("vision-alignment", 2)
	before, _ := l.Progress("strategy")

	// Rescoring an already-scored area must not change progress.
	l.SetScore("vision-alignment", 5)
	after, _ := l.Progress("strategy")

	if before != after {
		t.Fatalf("progress changed under rescoring: %+v vs %+v", before, after)
	}
}

func TestProgress_Idempotent(t *testing.T) {
	l := New(rubric.Default(), SingleSelect)
	l.SetScore("vision-alignment", 2)

	first, err := l.Progress("strategy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for range 5 {
		p, _ := l.Progress("strategy")
		if p != first {
			t.Fatalf("progress not idempotent: %+v vs %+v", p, first)
		}
	}
}

func TestProgress_UnknownAxis(t *testing.T) {
	l := New(rubric.Default(), SingleSelect)
	if _, err := l.Progress("nope"); !errors.Is(err, rubric.ErrUnknownAxis) {
		t.Fatalf("expected ErrUnknownAxis, got %v", err)
	}
}

func TestIsAxisComplete(t *testing.T) {
	l := New(rubric.Default(), SingleSelect)

	areas := strategyAreas(t)
	for i, area := range areas {
		complete, err := l.IsAxisComplete("strategy")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if complete {
			t.Fatalf("axis complete after %d of %d areas", i, len(areas))
		}
		l.SetScore(area.ID, 1)
	}

	complete, _ := l.IsAxisComplete("strategy")
	if !complete {
		t.Fatal("expected axis complete after all areas scored")
	}
}

func TestSubscribe_NotifiedWithFreshProgress(t *testing.T) {
	l := New(rubric.Default(), SingleSelect)

	var seen []Progress
	l.Subscribe(func(p Progress) { seen = append(seen, p) })

	l.SetScore("vision-alignment", 3)
	l.SetScore("portfolio-governance", 2)

	if len(seen) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(seen))
	}
	if seen[0].ScoredAreas != 1 || seen[1].ScoredAreas != 2 {
		t.Fatalf("stale progress in notifications: %+v", seen)
	}
	if seen[1].AxisID != "strategy" {
		t.Fatalf("unexpected axis in notification: %q", seen[1].AxisID)
	}
}

func TestSnapshot_Roundtrip(t *testing.T) {
	l := New(rubric.Default(), MultiSelect)
	l.SetScore("vision-alignment", 2)
	l.SetScore("vision-alignment", 4)
	l.SetScore("data-quality", 3)

	snap := l.Snapshot()
	if !reflect.DeepEqual(snap["vision-alignment"], []int{2, 4}) {
		t.Fatalf("unexpected snapshot ranks: %v", snap["vision-alignment"])
	}

	restored := New(rubric.Default(), MultiSelect)
	if err := restored.Restore(snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(restored.Scores("vision-alignment"), l.Scores("vision-alignment")) {
		t.Fatal("restored scores differ")
	}
	if !reflect.DeepEqual(restored.Scores("data-quality"), l.Scores("data-quality")) {
		t.Fatal("restored scores differ")
	}
}

func TestRestore_RejectsInvalidSnapshot(t *testing.T) {
	l := New(rubric.Default(), SingleSelect)
	l.SetScore("vision-alignment", 2)

	err := l.Restore(map[string][]int{"vision-alignment": {99}})
	if !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	// Failed restore leaves state untouched.
	if got := l.Scores("vision-alignment"); !reflect.DeepEqual(got, map[int]bool{2: true}) {
		t.Fatalf("state mutated by failed restore: %v", got)
	}
}
