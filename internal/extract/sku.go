package extract

import "strings"

// SKUPrefix is prepended to every internally generated SKU.
const SKUPrefix = "EL-"

// GenerateSKU derives the internal SKU from a manufacturer code: prefix
// "EL-", every "." replaced with "-", all other characters unchanged.
//
// The same transform is applied to the product-level code and to every
// variant's originalSku, so internal SKUs are derivable from source codes
// alone and never depend on extraction ordering.
func GenerateSKU(rawCode string) string {
	return SKUPrefix + strings.ReplaceAll(rawCode, ".", "-")
}
