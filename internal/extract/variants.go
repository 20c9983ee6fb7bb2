package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"catalog-extract/internal/textutil"
)

// variantSelectCandidates locate the finish/color selection control, most
// specific first. The bare "select" candidate is last so an unlabelled
// control is still found on single-attribute pages.
var variantSelectCandidates = []string{
	`select[name*="finish"]`,
	`select[id*="finish"]`,
	`select[name*="colour"]`,
	`select[name*="color"]`,
	`select[name^="attribute_"]`,
	"select",
}

// placeholderOptions are the option labels that mean "nothing selected".
var placeholderOptions = map[string]bool{
	"choose an option": true,
	"select":           true,
}

// detectVariants returns the product's finish/color variants, structured
// control first, unstructured text second. An empty result is a valid
// outcome for simple products, not an error.
func (e *Extractor) detectVariants(doc *goquery.Document, basePrice decimal.Decimal, images []string, sourceCode string) []Variant {
	for _, sel := range variantSelectCandidates {
		control := doc.Find(sel).First()
		if control.Length() == 0 {
			continue
		}
		if variants := e.variantsFromControl(control, basePrice, images, sourceCode); len(variants) > 0 {
			return variants
		}
	}
	return e.variantsFromText(doc, basePrice, images, sourceCode)
}

// variantsFromControl extracts one variant per selectable option of a
// finish control.
func (e *Extractor) variantsFromControl(control *goquery.Selection, basePrice decimal.Decimal, images []string, sourceCode string) []Variant {
	var variants []Variant

	control.Find("option").Each(func(i int, opt *goquery.Selection) {
		label := textutil.Normalize(opt.Text())
		if label == "" || placeholderOptions[strings.ToLower(label)] {
			return
		}

		value := strings.TrimSpace(opt.AttrOr("value", ""))
		if value == "" {
			// Options without a value attribute fall back to their position.
			value = fmt.Sprintf("%02d", i)
		}

		name, sign, amount, annotated := splitDeltaAnnotation(label)
		cost := e.resolveCost(name, sign, amount, annotated, basePrice)

		variants = append(variants, e.buildVariant(name, zeroPad(value, 2), cost, images, sourceCode))
	})

	return variants
}

// variantsFromText is the fallback strategy for pages that present finishes
// as prose instead of a control: scan the document text for the canonical
// finish names and emit a variant per hit using the fixed per-name delta
// and code.
func (e *Extractor) variantsFromText(doc *goquery.Document, basePrice decimal.Decimal, images []string, sourceCode string) []Variant {
	corpus := strings.ToLower(doc.Text())

	variants := []Variant{}
	for _, tf := range e.tables.TextFinishes {
		if tf.Name == "" || !strings.Contains(corpus, strings.ToLower(tf.Name)) {
			continue
		}
		cost := basePrice.Add(decimal.NewFromFloat(tf.Delta))
		variants = append(variants, e.buildVariant(tf.Name, tf.Code, cost, images, sourceCode))
	}
	return variants
}

// buildVariant assembles one Variant record: markup-adjusted price, derived
// SKUs, associated image, and swatch color.
func (e *Extractor) buildVariant(name, code string, cost decimal.Decimal, images []string, sourceCode string) Variant {
	originalSKU := sourceCode + "." + code

	costF, _ := cost.Float64()
	priceF, _ := publicPrice(cost).Float64()

	return Variant{
		Name:        name,
		SKU:         GenerateSKU(originalSKU),
		OriginalSKU: originalSKU,
		CostPrice:   costF,
		Price:       priceF,
		Image:       AssociateImage(images, code, name, sourceCode),
		Hex:         e.palette.Hex(name),
	}
}
