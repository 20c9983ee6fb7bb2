// Package extract recovers structured catalog records from raw supplier
// product-page markup.
//
// The engine is a pure function over one parsed document: field extraction,
// image collection, variant detection, price resolution, and category
// classification all run without I/O or cross-call state, so callers may
// parallelize batches freely.
//
// Missing or malformed fields are never errors; every field degrades to a
// documented default. The only hard failure is ErrInvalidDocument.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"catalog-extract/internal/classify"
	"catalog-extract/internal/palette"
	"catalog-extract/internal/textutil"
)

// Extractor runs extractions against a fixed set of lookup tables. It is
// immutable after New and safe for concurrent use.
type Extractor struct {
	tables     Tables
	palette    *palette.Palette
	classifier *classify.Classifier

	// finishPrices re-keys Tables.FinishPrices by folded finish name.
	finishPrices  map[string]decimal.Decimal
	fallbackPrice decimal.Decimal
	brandDomains  map[string]string
}

// New builds an Extractor from lookup tables and a classifier. A nil
// classifier selects the built-in cascade.
func New(tables Tables, classifier *classify.Classifier) *Extractor {
	if classifier == nil {
		classifier = classify.Default()
	}

	pal := palette.Default()
	if len(tables.FinishHex) > 0 {
		pal = palette.New(tables.FinishHex)
	}

	prices := make(map[string]decimal.Decimal, len(tables.FinishPrices))
	for name, p := range tables.FinishPrices {
		prices[textutil.FoldKey(name)] = decimal.NewFromFloat(p)
	}

	domains := make(map[string]string, len(tables.BrandDomains))
	for d, brand := range tables.BrandDomains {
		domains[strings.ToLower(strings.TrimSpace(d))] = brand
	}

	return &Extractor{
		tables:        tables,
		palette:       pal,
		classifier:    classifier,
		finishPrices:  prices,
		fallbackPrice: decimal.NewFromFloat(tables.FallbackPrice),
		brandDomains:  domains,
	}
}

// NewDefault builds an Extractor with the compiled-in tables and cascade.
func NewDefault() *Extractor {
	return New(DefaultTables(), nil)
}

// Extract parses html and returns the catalog record for the product it
// describes.
//
// sourceURL must be the absolute URL the page came from; it is used only to
// resolve relative image paths and to infer the brand from the domain.
//
// Errors:
//   - ErrInvalidDocument (wrapped) when html is empty or unparseable.
//   - Nothing else: a page with no recognizable product still yields a
//     record with placeholder name/SKU, zero prices, and empty sequences.
func (e *Extractor) Extract(html, sourceURL string) (*ProductExtraction, error) {
	if strings.TrimSpace(html) == "" {
		return nil, fmt.Errorf("empty input: %w", ErrInvalidDocument)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", ErrInvalidDocument)
	}

	f := extractFields(doc)
	images := CollectImages(doc, sourceURL)
	variants := e.detectVariants(doc, f.basePrice, images, f.rawCode)
	brand := e.brandFor(sourceURL)

	categories := e.classifier.Classify(
		f.name, f.shortDescription, f.longDescription, brand, sourceURL)
	if categories == nil {
		categories = []string{}
	}

	cost, _ := f.basePrice.Float64()
	price, _ := publicPrice(f.basePrice).Float64()

	return &ProductExtraction{
		Name:             f.name,
		SKU:              GenerateSKU(f.rawCode),
		OriginalSKU:      f.rawCode,
		ShortDescription: f.shortDescription,
		LongDescription:  f.longDescription,
		Brand:            brand,
		CostPrice:        cost,
		Price:            price,
		Specifications:   extractSpecifications(doc),
		Images:           images,
		Variants:         variants,
		Categories:       categories,
		SourceURL:        sourceURL,
	}, nil
}
