package rubric

import (
	"errors"
	"testing"
)

const sampleYAML = `
axes:
  - id: delivery
    display_key: axis.delivery
    areas:
      - id: release-cadence
        name: Release Cadence
        levels:
          - rank: 1
            title: Quarterly
            rubric: Releases are large and infrequent.
          - rank: 2
            title: Monthly
            rubric: Fixed monthly release train.
          - rank: 3
            title: On demand
            rubric: Any change can ship when ready.
`

func TestLoad_ParsesAndValidates(t *testing.T) {
	c, err := Load([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	areas, err := c.AreasForAxis("delivery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(areas) != 1 {
		t.Fatalf("expected 1 area, got %d", len(areas))
	}
	if areas[0].Name != "Release Cadence" {
		t.Errorf("unexpected area name: %q", areas[0].Name)
	}
	if got := areas[0].Ranks(); len(got) != 3 || got[2] != 3 {
		t.Errorf("unexpected ranks: %v", got)
	}
}

func TestLoad_DefaultsDisplayKey(t *testing.T) {
	yml := `
axes:
  - id: delivery
    areas:
      - id: release-cadence
        name: Release Cadence
        levels:
          - rank: 1
            title: Quarterly
`
	c, err := Load([]byte(yml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ax, _ := c.GetAxis("delivery")
	if ax.DisplayKey != "axis.delivery" {
		t.Errorf("expected defaulted display key, got %q", ax.DisplayKey)
	}
}

func TestLoad_RejectsEmptyFile(t *testing.T) {
	if _, err := Load([]byte("axes: []")); err == nil {
		t.Fatal("expected error for empty rubric")
	}
}

func TestLoad_RejectsBrokenStructure(t *testing.T) {
	yml := `
axes:
  - id: delivery
    areas:
      - id: release-cadence
        name: Release Cadence
        levels: []
`
	_, err := Load([]byte(yml))
	if err == nil {
		t.Fatal("expected validation error for area without levels")
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile("/nonexistent/rubric.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.Is(err, ErrUnknownAxis) {
		t.Fatal("file errors must not map to catalog errors")
	}
}
