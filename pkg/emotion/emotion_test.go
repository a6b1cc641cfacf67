package emotion

import "testing"

func TestDisplayKnownKinds(t *testing.T) {
	for _, k := range Kinds() {
		got := Display(k.ID)
		if got.Glyph != k.Glyph || got.Hex != k.Hex {
			t.Fatalf("Display(%q) = %+v, want %+v", k.ID, got, k)
		}
	}
}

func TestDisplayUnknownFallsBack(t *testing.T) {
	got := Display("melancholy")
	if got.Glyph != "" {
		t.Fatalf("expected empty glyph for unknown id, got %q", got.Glyph)
	}
	if got.Hex != neutralHex {
		t.Fatalf("expected neutral color for unknown id, got %q", got.Hex)
	}
}

func TestPaletteIsClosedAtEight(t *testing.T) {
	if got := len(Kinds()); got != 8 {
		t.Fatalf("expected 8 emotion kinds, got %d", got)
	}
	seen := make(map[string]bool)
	for _, k := range Kinds() {
		if seen[k.ID] {
			t.Fatalf("duplicate emotion id %q", k.ID)
		}
		seen[k.ID] = true
		if !Known(k.ID) {
			t.Fatalf("Known(%q) = false", k.ID)
		}
	}
}

func TestActivityLabel(t *testing.T) {
	if got := ActivityLabel(2); got != "gym" {
		t.Fatalf("ActivityLabel(2) = %q", got)
	}
	if got := ActivityLabel(42); got != "42" {
		t.Fatalf("ActivityLabel(42) = %q", got)
	}
	if got := len(Activities()); got != 5 {
		t.Fatalf("expected 5 activities, got %d", got)
	}
}
