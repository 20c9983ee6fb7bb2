package extract

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// rasterExtensions are the only image sources accepted as product imagery.
var rasterExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// excludeKeywords reject non-product chrome by filename: a path containing
// any of these is assumed to be site furniture, not the product.
var excludeKeywords = []string{"logo", "icon", "avatar", "header"}

// CollectImages walks every image element and returns the plausible product
// image URLs, resolved absolute against sourceURL, deduplicated in
// first-seen order.
//
// Edge cases:
//   - Sources without a known raster extension are dropped (tracking
//     pixels, SVG sprites, dynamic endpoints).
//   - An unparseable sourceURL disables resolution; relative candidates are
//     then kept as-is rather than dropped.
func CollectImages(doc *goquery.Document, sourceURL string) []string {
	base, err := url.Parse(sourceURL)
	if err != nil {
		base = nil
	}

	images := []string{}
	seen := make(map[string]bool)

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		src = strings.TrimSpace(src)
		if src == "" {
			// Lazy-loaded images park the real source in data-src.
			src, _ = img.Attr("data-src")
			src = strings.TrimSpace(src)
		}
		if src == "" {
			return
		}

		u, err := url.Parse(src)
		if err != nil {
			return
		}

		p := strings.ToLower(u.Path)
		if !rasterExtensions[path.Ext(p)] {
			return
		}
		for _, kw := range excludeKeywords {
			if strings.Contains(p, kw) {
				return
			}
		}

		abs := src
		if base != nil {
			abs = base.ResolveReference(u).String()
		}
		if seen[abs] {
			return
		}
		seen[abs] = true
		images = append(images, abs)
	})

	return images
}
