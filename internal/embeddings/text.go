package embeddings

import (
	"strings"

	"productparser/internal/model"
)

// ProductText renders a stored product as plain text for embedding. The name
// comes first since it carries most of the meaning.
func ProductText(p model.StoredProduct) string {
	r := p.Record
	var sb strings.Builder

	sb.WriteString(r.FullName + "\n\n")

	sb.WriteString("--- Характеристики ---\n")
	line := func(label string, v *string) {
		if v != nil {
			sb.WriteString(label + ": " + *v + "\n")
		}
	}
	line("Виробник", r.Manufacturer)
	line("Колір", r.Color)
	line("Пам'ять", r.Memory)
	line("Діагональ екрану", r.ScreenDiagonal)
	line("Роздільна здатність екрану", r.ScreenResolution)
	line("Код товару", r.ProductCode)
	for _, c := range p.Characteristics {
		sb.WriteString(c.Name + ": " + c.Value + "\n")
	}
	sb.WriteString("-----------------------------\n\n")

	if r.PriceRegular != nil {
		sb.WriteString("Ціна: " + r.PriceRegular.StringFixed(2) + "\n")
	}
	if r.PriceDiscount != nil {
		sb.WriteString("Ціна зі знижкою: " + r.PriceDiscount.StringFixed(2) + "\n")
	}

	sb.WriteString("URL: " + r.SourceURL + "\n")
	if len(p.Photos) > 0 {
		sb.WriteString("Фото: " + p.Photos[0].URL + "\n")
	}
	return sb.String()
}
