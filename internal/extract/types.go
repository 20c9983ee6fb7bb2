package extract

// ProductExtraction is the structured catalog record recovered from one
// supplier product page. It is created fresh on every Extract call and is
// never retained or mutated by the engine afterwards.
type ProductExtraction struct {
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	OriginalSKU      string          `json:"originalSku"`
	ShortDescription string          `json:"shortDescription"`
	LongDescription  string          `json:"longDescription"`
	Brand            string          `json:"brand"`
	CostPrice        float64         `json:"costPrice"`
	Price            float64         `json:"price"`
	Specifications   []Specification `json:"specifications"`
	Images           []string        `json:"images"`
	Variants         []Variant       `json:"variants"`
	Categories       []string        `json:"categories"`
	SourceURL        string          `json:"sourceUrl"`

	// SourceFile is set only in directory batch mode.
	SourceFile string `json:"sourceFile,omitempty"`
}

// Specification is one key/value technical-specification row. Rows keep
// source insertion order, which a plain map cannot guarantee.
type Specification struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Variant is one selectable finish/color option of a product.
type Variant struct {
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	OriginalSKU string  `json:"originalSku"`
	CostPrice   float64 `json:"costPrice"`
	Price       float64 `json:"price"`

	// Image is nil when no plausible candidate matched; that is a normal
	// outcome, not an error.
	Image *string `json:"image"`

	Hex string `json:"hex"`
}
