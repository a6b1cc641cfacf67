package emotion

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Kind is one entry of the fixed emotion palette. Records reference kinds by
// ID; glyph and color are display concerns only.
type Kind struct {
	ID    string
	Label string
	Glyph string
	Hex   string
}

func (k Kind) String() string {
	return k.Glyph
}

// Color parses the palette hex value. Unknown or broken hex values fall back
// to the neutral swatch rather than erroring.
func (k Kind) Color() colorful.Color {
	c, err := colorful.Hex(k.Hex)
	if err != nil {
		c, _ = colorful.Hex(neutralHex)
	}
	return c
}

// Light reports whether text over this color needs a dark foreground.
func (k Kind) Light() bool {
	l, _, _ := k.Color().Luv()
	return l > 0.65
}

const neutralHex = "#f0f0f0"

// Kinds returns the closed palette of recordable emotions.
func Kinds() []Kind {
	g := make([]Kind, 0, 8)

	g = append(g, Kind{
		ID:    "happy",
		Label: "happy",
		Glyph: "😊",
		Hex:   "#FFD93D",
	}, Kind{
		ID:    "sad",
		Label: "sad",
		Glyph: "😢",
		Hex:   "#4DABF7",
	}, Kind{
		ID:    "angry",
		Label: "angry",
		Glyph: "😠",
		Hex:   "#FF6B6B",
	}, Kind{
		ID:    "lonely",
		Label: "lonely",
		Glyph: "😔",
		Hex:   "#9775FA",
	}, Kind{
		ID:    "excited",
		Label: "excited",
		Glyph: "🤗",
		Hex:   "#51CF66",
	}, Kind{
		ID:    "anxious",
		Label: "anxious",
		Glyph: "😰",
		Hex:   "#FFA8A8",
	}, Kind{
		ID:    "calm",
		Label: "calm",
		Glyph: "😌",
		Hex:   "#74C0FC",
	}, Kind{
		ID:    "grateful",
		Label: "grateful",
		Glyph: "🙏",
		Hex:   "#FFB366",
	})

	return g
}

// Display resolves an emotion id for rendering. Ids the palette does not
// know render with an empty glyph on the neutral swatch instead of failing.
func Display(id string) Kind {
	for _, k := range Kinds() {
		if k.ID == id {
			return k
		}
	}
	return Kind{ID: id, Glyph: "", Hex: neutralHex}
}

// Known reports whether id names a palette emotion.
func Known(id string) bool {
	for _, k := range Kinds() {
		if k.ID == id {
			return true
		}
	}
	return false
}
