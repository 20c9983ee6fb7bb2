package extract

import (
	"net/url"
	"strings"

	"catalog-extract/internal/textutil"
)

// AssociateImage picks the most plausible image for a variant by filename
// correlation: the first candidate whose path contains the variant code,
// the finish name with whitespace removed, or "<sourceCode>.<code>".
//
// Returns nil when nothing matches; callers treat that as "no image".
func AssociateImage(images []string, variantCode, variantName, sourceCode string) *string {
	code := strings.ToLower(variantCode)
	name := textutil.FoldKey(variantName)
	coded := strings.ToLower(sourceCode + "." + variantCode)

	for _, img := range images {
		p := strings.ToLower(imagePath(img))

		if (code != "" && strings.Contains(p, code)) ||
			(name != "" && strings.Contains(p, name)) ||
			strings.Contains(p, coded) {
			matched := img
			return &matched
		}
	}
	return nil
}

// imagePath returns the path component of an image URL, or the raw string
// when it does not parse.
func imagePath(img string) string {
	u, err := url.Parse(img)
	if err != nil {
		return img
	}
	return u.Path
}
