package extract

import (
	"fmt"

	"productparser/internal/crawler"
	"productparser/internal/model"
)

// Result is a built product with the children it owns and any data-quality
// warnings raised while extracting it.
type Result struct {
	Record          model.ProductRecord
	Characteristics []model.CharacteristicEntry
	Photos          []model.PhotoEntry
	Warnings        []Warning
}

// Builder assembles a validated Result from a parsed page.
type Builder struct {
	extractor *Extractor
	layout    Layout
}

func NewBuilder(extractor *Extractor) *Builder {
	return &Builder{extractor: extractor, layout: extractor.layout}
}

// Build extracts every field of doc. Only a missing regular price fails the
// build, with a *ValidationError; other gaps leave the field empty.
func (b *Builder) Build(sourceURL string, doc *crawler.Document) (*Result, error) {
	e := b.extractor

	regular, discount, warnings, err := e.Price(doc)
	if err != nil {
		return nil, &ValidationError{URL: sourceURL, Field: "price_regular", Err: err}
	}
	if discount != nil && discount.GreaterThan(regular) {
		warnings = append(warnings, Warning{
			Field:   "price_discount",
			Message: fmt.Sprintf("discount %s exceeds regular price %s", discount, regular),
		})
	}

	name := e.Name(doc)
	if name == model.UnknownName {
		warnings = append(warnings, Warning{Field: "full_name", Message: "product heading not found"})
	}
	color, memory := e.NameAttributes(name)

	chars, charWarnings := e.Characteristics(doc)
	warnings = append(warnings, charWarnings...)

	lookup := func(key string) *string {
		if key == "" {
			return nil
		}
		v, _ := chars.Get(key)
		return model.StringPtr(v)
	}

	record := model.ProductRecord{
		SourceURL:        sourceURL,
		FullName:         name,
		Color:            model.StringPtr(color),
		Memory:           model.StringPtr(memory),
		Manufacturer:     lookup(b.layout.ManufacturerKey),
		ScreenDiagonal:   lookup(b.layout.ScreenDiagonalKey),
		ScreenResolution: lookup(b.layout.ScreenResolutionKey),
		PriceRegular:     &regular,
		PriceDiscount:    discount,
		ProductCode:      model.StringPtr(e.Code(doc)),
		ReviewCount:      e.ReviewCount(doc),
	}

	var photos []model.PhotoEntry
	for _, u := range e.Photos(doc) {
		photos = append(photos, model.PhotoEntry{URL: u})
	}

	return &Result{
		Record:          record,
		Characteristics: chars.Entries(),
		Photos:          photos,
		Warnings:        warnings,
	}, nil
}
