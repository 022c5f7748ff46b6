package model

import "github.com/shopspring/decimal"

// UnknownName is stored when a page has no product heading.
const UnknownName = "Unknown"

// ProductID identifies a stored product.
type ProductID string

// ProductRecord is the structured result for one product page.
// Nil pointer fields mean the page did not carry the value.
type ProductRecord struct {
	SourceURL        string
	FullName         string
	Color            *string
	Memory           *string
	Manufacturer     *string
	ScreenDiagonal   *string
	ScreenResolution *string
	PriceRegular     *decimal.Decimal
	PriceDiscount    *decimal.Decimal
	ProductCode      *string
	ReviewCount      int
}

// CharacteristicEntry is a labeled specification attribute of a product.
type CharacteristicEntry struct {
	Name  string
	Value string
}

// PhotoEntry is an absolute image URL of a product.
type PhotoEntry struct {
	URL string
}

// StoredProduct is a product read back from storage together with its children.
type StoredProduct struct {
	ID              ProductID
	Record          ProductRecord
	Characteristics []CharacteristicEntry
	Photos          []PhotoEntry
}

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
