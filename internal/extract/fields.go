package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"catalog-extract/internal/textutil"
)

// Degraded-output placeholders. Extraction never fails on a missing field;
// these mark records that need manual attention downstream.
const (
	PlaceholderName = "Unnamed Product"
	PlaceholderCode = "UNKNOWN"
)

// Selector candidates, most specific product markup first. The first
// candidate producing non-empty text wins.
var (
	nameSelectors = []string{
		"h1.product_title",
		"h1.entry-title",
		".product-title h1",
		".summary h1",
		"h1",
	}

	shortDescriptionSelectors = []string{
		".woocommerce-product-details__short-description",
		".product-short-description",
		".summary .short-description",
	}

	longDescriptionSelectors = []string{
		"#tab-description",
		".woocommerce-Tabs-panel--description",
		"#description",
		".product-description",
	}

	priceSelectors = []string{
		"p.price",
		".summary .price",
		".product-price",
		".price",
	}

	specificationSelectors = []string{
		"table.woocommerce-product-attributes tr",
		"table.shop_attributes tr",
		".product-specifications tr",
		".specifications tr",
		"table.specs tr",
	}
)

// reCode matches "Code: <token>" where the token is letters, digits,
// periods, and hyphens. Case-insensitive to survive "CODE:"/"code:".
var reCode = regexp.MustCompile(`(?i)code:\s*([A-Za-z0-9][A-Za-z0-9.\-]*)`)

// fields holds the scalar outputs of the field extractor.
type fields struct {
	name             string
	shortDescription string
	longDescription  string
	basePrice        decimal.Decimal
	rawCode          string
}

// extractFields pulls name, descriptions, base price, and the manufacturer
// code from the document. Every field has a degraded default; this function
// cannot fail.
func extractFields(doc *goquery.Document) fields {
	f := fields{
		name:             firstText(doc, nameSelectors),
		shortDescription: firstText(doc, shortDescriptionSelectors),
		longDescription:  firstText(doc, longDescriptionSelectors),
	}

	if f.name == "" {
		f.name = PlaceholderName
	}

	// A meta description stands in when no short-description markup exists.
	if f.shortDescription == "" {
		if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
			f.shortDescription = textutil.Normalize(content)
		}
	}

	f.basePrice = textutil.ParsePrice(firstText(doc, priceSelectors))

	f.rawCode = findRawCode(f.shortDescription, f.longDescription, doc)
	if f.rawCode == "" {
		f.rawCode = PlaceholderCode
	}

	return f
}

// firstText returns the normalized text of the first selector candidate
// with a non-empty match. Missing selectors produce no output, they are not
// errors.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if txt := textutil.Normalize(doc.Find(sel).First().Text()); txt != "" {
			return txt
		}
	}
	return ""
}

// findRawCode searches the combined descriptions first, then the full
// document text, for a "Code: <token>" pattern.
func findRawCode(shortDescription, longDescription string, doc *goquery.Document) string {
	for _, corpus := range []string{
		shortDescription + "\n" + longDescription,
		doc.Text(),
	} {
		if m := reCode.FindStringSubmatch(corpus); len(m) == 2 {
			// Sentence-final punctuation is not part of the code.
			return strings.TrimRight(m[1], ".-")
		}
	}
	return ""
}

// extractSpecifications reads key/value rows from the first specification
// table candidate that yields any rows. Labels keep document order;
// duplicate labels keep their first value.
func extractSpecifications(doc *goquery.Document) []Specification {
	specs := []Specification{}

	for _, sel := range specificationSelectors {
		rows := doc.Find(sel)
		if rows.Length() == 0 {
			continue
		}

		seen := make(map[string]bool)
		rows.Each(func(_ int, row *goquery.Selection) {
			label := textutil.Normalize(row.Find("th").First().Text())
			value := textutil.Normalize(row.Find("td").Last().Text())
			if label == "" {
				// Two-column tables without header cells.
				cells := row.Find("td")
				if cells.Length() < 2 {
					return
				}
				label = textutil.Normalize(cells.First().Text())
			}
			if label == "" || value == "" || seen[label] {
				return
			}
			seen[label] = true
			specs = append(specs, Specification{Label: label, Value: value})
		})

		if len(specs) > 0 {
			break
		}
	}

	return specs
}
