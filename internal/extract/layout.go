// Package extract turns a parsed product page into a ProductRecord.
package extract

// Layout is the markup contract of a product page: where each field lives
// and which characteristic labels carry the derived fields. Changing the
// target site's markup means shipping a new Layout, not new logic.
type Layout struct {
	Version string

	Name                string
	PriceRegular        string
	PriceDiscount       string
	Code                string
	Reviews             string
	CharacteristicGroup string
	CharacteristicCell  string
	MainImages          string
	PreviewImages       string

	ManufacturerKey     string
	ScreenDiagonalKey   string
	ScreenResolutionKey string
}

// BrainLayout describes brain.com.ua product pages.
var BrainLayout = Layout{
	Version: "brain/v1",

	Name:                "h1.desktop-only-title",
	PriceRegular:        "div.price-wrapper",
	PriceDiscount:       "span.red-price",
	Code:                "span.br-pr-code-val",
	Reviews:             `a.scroll-to-element[href="#reviews-list"]`,
	CharacteristicGroup: "div.br-pr-chr-item",
	CharacteristicCell:  "span",
	MainImages:          "img.br-main-img",
	PreviewImages:       "img.br-pr-img",

	ManufacturerKey:     "Виробник",
	ScreenDiagonalKey:   "Діагональ екрану",
	ScreenResolutionKey: "Роздільна здатність екрану",
}
