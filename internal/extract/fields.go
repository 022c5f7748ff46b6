package extract

import (
	"fmt"

	"github.com/shopspring/decimal"

	"productparser/internal/crawler"
	"productparser/internal/model"
	"productparser/internal/normalize"
)

// Extractor reads individual fields of a product page according to a Layout.
// It holds no per-page state and is safe for concurrent use.
type Extractor struct {
	layout     Layout
	classifier *normalize.Classifier
	origin     string
}

// NewExtractor builds an extractor. origin is prefixed to root-relative
// image URLs, e.g. "https://brain.com.ua".
func NewExtractor(layout Layout, classifier *normalize.Classifier, origin string) *Extractor {
	return &Extractor{layout: layout, classifier: classifier, origin: origin}
}

// Name returns the product heading, or model.UnknownName when there is none.
func (e *Extractor) Name(doc *crawler.Document) string {
	if n, ok := doc.Find(e.layout.Name); ok {
		if name := n.Text(); name != "" {
			return name
		}
	}
	return model.UnknownName
}

// NameAttributes picks color and memory out of a product name. The first
// token of each kind wins; tokens of neither kind are ignored.
func (e *Extractor) NameAttributes(name string) (color, memory string) {
	for _, tok := range splitName(name) {
		t := e.classifier.Classify(tok)
		switch {
		case t.Kind == normalize.TokenColor && color == "":
			color = t.Value
		case t.Kind == normalize.TokenMemory && memory == "":
			memory = t.Value
		}
	}
	return color, memory
}

// Price returns the regular and, when present, discounted price.
// A missing or unreadable regular price yields ErrMissingPrice.
func (e *Extractor) Price(doc *crawler.Document) (regular decimal.Decimal, discount *decimal.Decimal, warnings []Warning, err error) {
	n, ok := doc.Find(e.layout.PriceRegular)
	if !ok {
		return decimal.Decimal{}, nil, nil, ErrMissingPrice
	}
	regular, ok = normalize.ParsePrice(n.Text())
	if !ok {
		return decimal.Decimal{}, nil, nil, fmt.Errorf("%w: unreadable price %q", ErrMissingPrice, n.Text())
	}

	if n, ok := doc.Find(e.layout.PriceDiscount); ok {
		if d, ok := normalize.ParsePrice(n.Text()); ok {
			discount = &d
		} else {
			warnings = append(warnings, Warning{
				Field:   "price_discount",
				Message: fmt.Sprintf("unreadable discount price %q", n.Text()),
			})
		}
	}
	return regular, discount, warnings, nil
}

// Code returns the product code, or "" when the page has none.
func (e *Extractor) Code(doc *crawler.Document) string {
	if n, ok := doc.Find(e.layout.Code); ok {
		return n.Text()
	}
	return ""
}

// ReviewCount returns the number in the reviews link label, or 0.
func (e *Extractor) ReviewCount(doc *crawler.Document) int {
	if n, ok := doc.Find(e.layout.Reviews); ok {
		return normalize.ParseCount(n.Text())
	}
	return 0
}

// Characteristics reads label/value pairs from every characteristic group.
// Cells are consumed two at a time; an odd trailing cell is skipped.
func (e *Extractor) Characteristics(doc *crawler.Document) (*Characteristics, []Warning) {
	chars := NewCharacteristics()
	var warnings []Warning

	for i, group := range doc.FindAll(e.layout.CharacteristicGroup) {
		cells := group.FindAll(e.layout.CharacteristicCell)
		for j := 0; j+1 < len(cells); j += 2 {
			name, value := cells[j].Text(), cells[j+1].Text()
			if name == "" || value == "" {
				warnings = append(warnings, Warning{
					Field:   "characteristics",
					Message: fmt.Sprintf("group %d: empty pair %q=%q skipped", i, name, value),
				})
				continue
			}
			chars.Set(name, value)
		}
		if len(cells)%2 != 0 {
			warnings = append(warnings, Warning{
				Field:   "characteristics",
				Message: fmt.Sprintf("group %d: odd cell count %d, trailing %q skipped", i, len(cells), cells[len(cells)-1].Text()),
			})
		}
	}
	return chars, warnings
}

// Photos returns absolute URLs of the main images followed by the previews.
func (e *Extractor) Photos(doc *crawler.Document) []string {
	var urls []string
	for _, sel := range []string{e.layout.MainImages, e.layout.PreviewImages} {
		for _, img := range doc.FindAll(sel) {
			src, _ := img.Attr("src")
			if src == "" {
				src, _ = img.Attr("data-src")
			}
			if u := normalize.NormalizeURL(src, e.origin); u != "" {
				urls = append(urls, u)
			}
		}
	}
	return urls
}
