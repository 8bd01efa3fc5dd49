package presets

import (
	"testing"

	"solarwin/internal/catalog"
)

func TestAllPresets(t *testing.T) {
	presets := AllPresets()

	expectedIDs := []string{"performance", "privacy", "gaming", "everything"}
	if len(presets) != len(expectedIDs) {
		t.Fatalf("expected %d presets, got %d", len(expectedIDs), len(presets))
	}
	for i, id := range expectedIDs {
		if presets[i].ID != id {
			t.Errorf("preset[%d]: expected ID %q, got %q", i, id, presets[i].ID)
		}
		if presets[i].Name == "" || presets[i].Description == "" {
			t.Errorf("preset %q is missing a name or description", presets[i].ID)
		}
	}
}

func TestGetPresetByID(t *testing.T) {
	p := GetPresetByID("privacy")
	if p == nil {
		t.Fatal("GetPresetByID(\"privacy\") returned nil")
	}
	if p.Name != "Privacy" {
		t.Errorf("expected name %q, got %q", "Privacy", p.Name)
	}

	if GetPresetByID("nonexistent") != nil {
		t.Error("GetPresetByID should return nil for unknown IDs")
	}
}

// TestPresetConsistency verifies every preset only names tweaks from the standard catalog.
func TestPresetConsistency(t *testing.T) {
	c := catalog.Standard(catalog.Options{TempDir: t.TempDir()})

	for _, p := range AllPresets() {
		seen := make(map[string]bool)
		for _, id := range p.Tweaks {
			if _, ok := c.Lookup(id); !ok {
				t.Errorf("preset %q references unknown tweak %q", p.ID, id)
			}
			if seen[id] {
				t.Errorf("preset %q lists %q twice", p.ID, id)
			}
			seen[id] = true
		}
	}
}

// TestEverythingHasEverything verifies the Everything preset covers the whole catalog.
func TestEverythingHasEverything(t *testing.T) {
	c := catalog.Standard(catalog.Options{TempDir: t.TempDir()})
	everything := Everything()

	if len(everything.Tweaks) != c.Len() {
		t.Fatalf("everything preset has %d tweaks, catalog has %d", len(everything.Tweaks), c.Len())
	}
	for i, tw := range c.AllTweaks() {
		if everything.Tweaks[i] != tw.ID() {
			t.Errorf("position %d: expected %q, got %q", i, tw.ID(), everything.Tweaks[i])
		}
	}
}
