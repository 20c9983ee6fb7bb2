package extract

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

const sourceURL = "https://www.nerotapware.com.au/products/mecca-wall-spout/"

// simplePage has a title and a price but no variant control.
const simplePage = `
<html><head><meta name="description" content="Solid brass wall spout."></head>
<body>
  <h1 class="product_title">Wall Spout</h1>
  <p class="price">$98.10</p>
  <div id="tab-description"><p>Round wall spout. Code: NR250803 for ordering.</p></div>
</body></html>`

// TestExtractSimpleProduct covers the no-variant path end to end: name,
// price markup, code discovery, SKU derivation, empty variant sequence.
func TestExtractSimpleProduct(t *testing.T) {
	t.Parallel()

	p, err := NewDefault().Extract(simplePage, sourceURL)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if p.Name != "Wall Spout" {
		t.Fatalf("name: got %q", p.Name)
	}
	if p.CostPrice != 98.10 {
		t.Fatalf("costPrice: want 98.10, got %v", p.CostPrice)
	}
	if p.Price != 88.29 {
		t.Fatalf("price: want 88.29, got %v", p.Price)
	}
	if p.OriginalSKU != "NR250803" {
		t.Fatalf("originalSku: got %q", p.OriginalSKU)
	}
	if p.SKU != "EL-NR250803" {
		t.Fatalf("sku: got %q", p.SKU)
	}
	if p.ShortDescription != "Solid brass wall spout." {
		t.Fatalf("shortDescription: got %q", p.ShortDescription)
	}
	if len(p.Variants) != 0 {
		t.Fatalf("variants: want none, got %v", p.Variants)
	}
	if p.SourceURL != sourceURL {
		t.Fatalf("sourceUrl: got %q", p.SourceURL)
	}
	if p.Brand != "Nero Tapware" {
		t.Fatalf("brand: got %q", p.Brand)
	}
}

// variantPage has a structured finish control with a placeholder option, a
// lookup-table finish, and an explicit-delta finish.
const variantPage = `
<html><body>
  <h1 class="product_title">Mecca Basin Mixer</h1>
  <p class="price">$100.00</p>
  <div id="tab-description">Code: NR2218 available in several finishes.</div>
  <img src="/images/NR2218.00-chrome.jpg">
  <img src="/images/NR2218.02-mattblack.jpg">
  <select name="attribute_pa_finish">
    <option value="">Choose an option</option>
    <option value="00">Chrome</option>
    <option value="02">Matt Black (+25.00)</option>
  </select>
</body></html>`

// TestExtractStructuredVariants covers the structured strategy: placeholder
// skipping, table lookup, explicit delta, SKU derivation, image
// association, and the markup invariant per variant.
func TestExtractStructuredVariants(t *testing.T) {
	t.Parallel()

	p, err := NewDefault().Extract(variantPage, sourceURL)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(p.Variants) != 2 {
		t.Fatalf("variants: want 2, got %d (%v)", len(p.Variants), p.Variants)
	}

	chrome := p.Variants[0]
	if chrome.Name != "Chrome" {
		t.Fatalf("chrome name: got %q", chrome.Name)
	}
	// No annotation: cost resolves through the finish price table.
	if chrome.CostPrice != 95.00 {
		t.Fatalf("chrome costPrice: want 95.00, got %v", chrome.CostPrice)
	}
	if chrome.Price != 85.50 {
		t.Fatalf("chrome price: want 85.50, got %v", chrome.Price)
	}
	if chrome.OriginalSKU != "NR2218.00" {
		t.Fatalf("chrome originalSku: got %q", chrome.OriginalSKU)
	}

	black := p.Variants[1]
	if black.Name != "Matt Black" {
		t.Fatalf("black name: got %q", black.Name)
	}
	if black.CostPrice != 125.00 {
		t.Fatalf("black costPrice: want 125.00, got %v", black.CostPrice)
	}
	if black.Price != 112.50 {
		t.Fatalf("black price: want 112.50, got %v", black.Price)
	}
	if !strings.HasSuffix(black.OriginalSKU, ".02") {
		t.Fatalf("black originalSku: got %q", black.OriginalSKU)
	}
	if !strings.HasSuffix(black.SKU, "-02") {
		t.Fatalf("black sku: got %q", black.SKU)
	}
	if black.Image == nil || !strings.Contains(*black.Image, "mattblack") {
		t.Fatalf("black image: got %v", black.Image)
	}
	if black.Hex != "#1C1C1C" {
		t.Fatalf("black hex: got %q", black.Hex)
	}

	// Markup invariant holds for every priced entity.
	for _, v := range p.Variants {
		if math.Abs(v.Price-round2(v.CostPrice*0.9)) > 0.01 {
			t.Fatalf("markup invariant violated for %q: cost=%v price=%v", v.Name, v.CostPrice, v.Price)
		}
	}
}

// TestExtractNegativeDelta verifies the preserved historical asymmetry: a
// "-" annotation replaces the price outright instead of subtracting.
func TestExtractNegativeDelta(t *testing.T) {
	t.Parallel()

	html := `
<html><body>
  <h1 class="product_title">Mixer</h1>
  <p class="price">$200.00</p>
  <div>Code: AB1</div>
  <select><option value="07">Special Bronze (-150.00)</option></select>
</body></html>`

	p, err := NewDefault().Extract(html, sourceURL)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(p.Variants) != 1 {
		t.Fatalf("variants: want 1, got %d", len(p.Variants))
	}
	if p.Variants[0].CostPrice != 150.00 {
		t.Fatalf("negative delta must be absolute: want 150.00, got %v", p.Variants[0].CostPrice)
	}
}

// TestExtractTextFallbackVariants verifies the unstructured strategy: no
// control, finish names in prose, fixed codes and deltas.
func TestExtractTextFallbackVariants(t *testing.T) {
	t.Parallel()

	html := `
<html><body>
  <h1 class="product_title">Shower Rail</h1>
  <p class="price">$100.00</p>
  <div id="tab-description">Code: SR10. Available in Chrome and Gun Metal.</div>
</body></html>`

	p, err := NewDefault().Extract(html, sourceURL)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(p.Variants) != 2 {
		t.Fatalf("variants: want 2, got %d (%v)", len(p.Variants), p.Variants)
	}
	if p.Variants[0].Name != "Chrome" || p.Variants[0].OriginalSKU != "SR10.00" {
		t.Fatalf("first text variant: %+v", p.Variants[0])
	}
	if p.Variants[0].CostPrice != 100.00 {
		t.Fatalf("chrome delta 0: want 100.00, got %v", p.Variants[0].CostPrice)
	}
	gm := p.Variants[1]
	if gm.Name != "Gun Metal" || gm.OriginalSKU != "SR10.06" {
		t.Fatalf("second text variant: %+v", gm)
	}
	if gm.CostPrice != 135.00 {
		t.Fatalf("gun metal delta 35: want 135.00, got %v", gm.CostPrice)
	}
}

// TestExtractGracefulDegradation verifies a page with no product markup at
// all still yields a record with documented defaults, not an error.
func TestExtractGracefulDegradation(t *testing.T) {
	t.Parallel()

	p, err := NewDefault().Extract("<html><body><p>nothing here</p></body></html>", "https://unknown.example/x")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if p.Name != PlaceholderName {
		t.Fatalf("name placeholder: got %q", p.Name)
	}
	if p.CostPrice != 0 || p.Price != 0 {
		t.Fatalf("prices: want zero, got cost=%v price=%v", p.CostPrice, p.Price)
	}
	if p.OriginalSKU != PlaceholderCode {
		t.Fatalf("originalSku placeholder: got %q", p.OriginalSKU)
	}
	if p.SKU != "EL-UNKNOWN" {
		t.Fatalf("sku: got %q", p.SKU)
	}
	if p.Brand != "" {
		t.Fatalf("brand: want empty, got %q", p.Brand)
	}
	if len(p.Variants) != 0 || len(p.Images) != 0 || len(p.Categories) != 0 {
		t.Fatalf("sequences must be empty: %+v", p)
	}
}

// TestExtractInvalidDocument verifies empty input surfaces the engine's one
// hard failure.
func TestExtractInvalidDocument(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "   \n\t "} {
		_, err := NewDefault().Extract(in, sourceURL)
		if !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("input %q: want ErrInvalidDocument, got %v", in, err)
		}
	}
}

// TestExtractDeterministic verifies byte-identical output for identical
// input.
func TestExtractDeterministic(t *testing.T) {
	t.Parallel()

	e := NewDefault()

	first, err := e.Extract(variantPage, sourceURL)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	for i := 0; i < 20; i++ {
		p, err := e.Extract(variantPage, sourceURL)
		if err != nil {
			t.Fatalf("Extract run %d: %v", i, err)
		}
		b, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("marshal run %d: %v", i, err)
		}
		if string(b) != string(firstJSON) {
			t.Fatalf("run %d differs:\n%s\n%s", i, firstJSON, b)
		}
	}
}

// TestExtractCategories verifies classification runs over the assembled
// corpus and keeps the specific id ahead of its ancestors.
func TestExtractCategories(t *testing.T) {
	t.Parallel()

	p, err := NewDefault().Extract(variantPage, sourceURL)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(p.Categories) == 0 || p.Categories[0] != "basin-mixers" {
		t.Fatalf("categories: want basin-mixers first, got %v", p.Categories)
	}
}

// TestExtractSpecifications verifies key/value rows keep insertion order.
func TestExtractSpecifications(t *testing.T) {
	t.Parallel()

	html := `
<html><body>
  <h1 class="product_title">Basin</h1>
  <table class="shop_attributes">
    <tr><th>Material</th><td>Brass</td></tr>
    <tr><th>Warranty</th><td>15 years</td></tr>
    <tr><th></th><td>ignored</td></tr>
  </table>
</body></html>`

	p, err := NewDefault().Extract(html, sourceURL)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(p.Specifications) != 2 {
		t.Fatalf("specs: want 2, got %v", p.Specifications)
	}
	if p.Specifications[0].Label != "Material" || p.Specifications[0].Value != "Brass" {
		t.Fatalf("first spec: %+v", p.Specifications[0])
	}
	if p.Specifications[1].Label != "Warranty" || p.Specifications[1].Value != "15 years" {
		t.Fatalf("second spec: %+v", p.Specifications[1])
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
