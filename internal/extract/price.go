package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"catalog-extract/internal/textutil"
)

// markup converts an internal cost price into the displayed public price:
// a uniform 10% discount, rounded to cents.
var markup = decimal.RequireFromString("0.9")

// publicPrice applies the markup rule to a cost price.
func publicPrice(cost decimal.Decimal) decimal.Decimal {
	return cost.Mul(markup).Round(2)
}

// reDelta matches an inline price annotation in an option label, e.g.
// "Matt Black (+$25.00)" or "Chrome (-95.00)".
var reDelta = regexp.MustCompile(`\(\s*([+\-]?)\s*\$?\s*([0-9][0-9.,]*)\s*\)`)

// splitDeltaAnnotation strips a price annotation from an option label,
// returning the cleaned label, the sign ("+", "-", or "" when absent), and
// the amount. ok is false when the label carries no annotation.
func splitDeltaAnnotation(label string) (clean, sign string, amount decimal.Decimal, ok bool) {
	m := reDelta.FindStringSubmatchIndex(label)
	if m == nil {
		return label, "", decimal.Zero, false
	}

	sign = label[m[2]:m[3]]
	amount = textutil.ParsePrice(label[m[4]:m[5]])
	clean = textutil.Normalize(label[:m[0]] + label[m[1]:])
	return clean, sign, amount, true
}

// resolveCost computes a variant's cost price from its label.
//
// Resolution order:
//  1. Inline annotation. Sign "+" or absent adds the amount to basePrice;
//     sign "-" uses the amount as the absolute price outright. The
//     asymmetry is historical and deliberately preserved so re-extractions
//     stay consistent with existing catalogs.
//  2. The finish price table, keyed by folded finish name.
//  3. The fixed fallback price.
func (e *Extractor) resolveCost(finishName string, sign string, amount decimal.Decimal, annotated bool, basePrice decimal.Decimal) decimal.Decimal {
	if annotated {
		if sign == "-" {
			return amount
		}
		return basePrice.Add(amount)
	}
	if cost, ok := e.finishPrices[textutil.FoldKey(finishName)]; ok {
		return cost
	}
	return e.fallbackPrice
}

// zeroPad left-pads v with zeros to at least width characters.
func zeroPad(v string, width int) string {
	if len(v) >= width {
		return v
	}
	return strings.Repeat("0", width-len(v)) + v
}
