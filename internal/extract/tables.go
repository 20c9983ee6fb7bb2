package extract

import (
	"encoding/json"
	"fmt"
	"os"
)

// Tables is the immutable lookup data the engine is constructed with:
// swatch colors, per-finish supplier pricing, the unstructured-text finish
// list, and domain -> brand inference.
//
// All tables have compiled-in defaults; a JSON overrides file can replace
// any of them wholesale (per-supplier tuning, substitute tables in tests).
type Tables struct {
	// FinishHex maps finish display names to swatch hex colors.
	FinishHex map[string]string `json:"finishHex,omitempty"`

	// FinishPrices maps finish names to absolute cost prices, used when a
	// structured option carries no inline price annotation. Keys are folded
	// case/whitespace-insensitively at construction.
	FinishPrices map[string]float64 `json:"finishPrices,omitempty"`

	// FallbackPrice is the cost price for finishes absent from FinishPrices.
	FallbackPrice float64 `json:"fallbackPrice,omitempty"`

	// TextFinishes is the canonical finish list scanned over raw document
	// text when no structured control yields variants. Order is the emit
	// order and must stay fixed.
	TextFinishes []TextFinish `json:"textFinishes,omitempty"`

	// BrandDomains maps the first DNS label of a source host ("www." is
	// stripped first) to a brand name.
	BrandDomains map[string]string `json:"brandDomains,omitempty"`
}

// TextFinish is one entry of the unstructured-text fallback strategy: a
// canonical finish name, its fixed two-digit variant code, and the cost
// delta added to the base price.
type TextFinish struct {
	Name  string  `json:"name"`
	Code  string  `json:"code"`
	Delta float64 `json:"delta"`
}

// DefaultTables returns the compiled-in lookup data.
func DefaultTables() Tables {
	return Tables{
		FinishPrices: map[string]float64{
			"Chrome":           95.00,
			"Matt Black":       120.00,
			"Brushed Platinum": 130.00,
			"Aged Brass":       135.00,
			"Brushed Gold":     130.00,
			"Gun Metal":        125.00,
			"Brushed Nickel":   115.00,
		},
		FallbackPrice: 99.00,
		TextFinishes: []TextFinish{
			{Name: "Chrome", Code: "00", Delta: 0},
			{Name: "Matt Black", Code: "02", Delta: 25},
			{Name: "Brushed Platinum", Code: "03", Delta: 40},
			{Name: "Aged Brass", Code: "04", Delta: 45},
			{Name: "Brushed Gold", Code: "05", Delta: 40},
			{Name: "Gun Metal", Code: "06", Delta: 35},
		},
		BrandDomains: map[string]string{
			"nerotapware":    "Nero Tapware",
			"nero":           "Nero Tapware",
			"meir":           "Meir",
			"abey":           "Abey",
			"phoenixtapware": "Phoenix Tapware",
			"oliveri":        "Oliveri",
			"caroma":         "Caroma",
			"ecco-living":    "Ecco Living",
		},
	}
}

// LoadTablesFile loads a JSON table-overrides file. Only tables present in
// the file replace their defaults; absent tables keep the compiled-in data.
func LoadTablesFile(path string) (Tables, error) {
	t := DefaultTables()

	b, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tables file: %w", err)
	}

	// FallbackPrice is shadowed with a pointer so an explicit zero in the
	// file (a free fallback finish) is distinguishable from the key being
	// absent.
	var overrides struct {
		Tables
		FallbackPrice *float64 `json:"fallbackPrice"`
	}
	if err := json.Unmarshal(b, &overrides); err != nil {
		return t, fmt.Errorf("parse tables json: %w", err)
	}

	if len(overrides.FinishHex) > 0 {
		t.FinishHex = overrides.FinishHex
	}
	if len(overrides.FinishPrices) > 0 {
		t.FinishPrices = overrides.FinishPrices
	}
	if overrides.FallbackPrice != nil {
		t.FallbackPrice = *overrides.FallbackPrice
	}
	if len(overrides.TextFinishes) > 0 {
		t.TextFinishes = overrides.TextFinishes
	}
	if len(overrides.BrandDomains) > 0 {
		t.BrandDomains = overrides.BrandDomains
	}
	return t, nil
}
