// Package palette maps finish names to display hex colors for rendering
// variant swatches.
package palette

import "catalog-extract/internal/textutil"

// DefaultHex is the swatch color used when a finish has no palette entry.
const DefaultHex = "#808080"

// Palette resolves finish names to hex colors. Keys are folded
// (case/whitespace/diacritic-insensitive) at construction.
type Palette struct {
	byKey map[string]string
}

// New builds a Palette from a finish-name -> hex map. A nil or empty map is
// valid; every lookup then returns DefaultHex.
func New(colors map[string]string) *Palette {
	byKey := make(map[string]string, len(colors))
	for name, hex := range colors {
		byKey[textutil.FoldKey(name)] = hex
	}
	return &Palette{byKey: byKey}
}

// Default returns the built-in finish palette.
func Default() *Palette {
	return New(map[string]string{
		"Chrome":           "#C0C0C0",
		"Polished Chrome":  "#C0C0C0",
		"Matt Black":       "#1C1C1C",
		"Matte Black":      "#1C1C1C",
		"Brushed Nickel":   "#A8A9AD",
		"Brushed Platinum": "#B5B8B1",
		"Brushed Gold":     "#C9A227",
		"Brushed Brass":    "#C9A855",
		"Aged Brass":       "#8B6914",
		"Gun Metal":        "#53565A",
		"Gunmetal":         "#53565A",
		"Matt White":       "#F4F4F4",
		"Rose Gold":        "#B76E79",
		"Copper":           "#B87333",
	})
}

// Hex returns the swatch color for a finish name, or DefaultHex when the
// finish is unknown or empty.
func (p *Palette) Hex(finish string) string {
	if hex, ok := p.byKey[textutil.FoldKey(finish)]; ok && hex != "" {
		return hex
	}
	return DefaultHex
}
