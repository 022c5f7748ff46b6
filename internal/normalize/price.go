package normalize

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParsePrice reads an amount out of a price label such as "1 234,99 ₴" or
// "12 999 грн". The label must hold a single number: whitespace and
// separators may continue it, while currency symbols, unit words and other
// punctuation end it. Digits after the end, as in "2 шт. по 1 234 ₴", make
// the label unreadable and it reports false.
func ParsePrice(text string) (decimal.Decimal, bool) {
	var sb strings.Builder
	started, ended := false, false
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			if ended {
				return decimal.Decimal{}, false
			}
			started = true
			sb.WriteRune(r)
		case r == '.', r == ',':
			if started && !ended {
				sb.WriteRune(r)
			}
		case isSpace(r), r == '\'', r == '’':
			// apostrophes are thousands marks in some locales
		case r == '-':
			return decimal.Decimal{}, false
		case unicode.Is(unicode.Sc, r), unicode.IsLetter(r), unicode.IsPunct(r):
			if started {
				ended = true
			}
		default:
			return decimal.Decimal{}, false
		}
	}

	clean := strings.Trim(sb.String(), ".,")
	if clean == "" {
		return decimal.Decimal{}, false
	}

	amount, err := decimal.NewFromString(resolveSeparators(clean))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}

// resolveSeparators rewrites s so that only a '.' decimal point remains.
func resolveSeparators(s string) string {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		dec := lastDot
		if lastComma > lastDot {
			dec = lastComma
		}
		return stripSeparators(s[:dec]) + "." + stripSeparators(s[dec+1:])
	case lastDot < 0 && lastComma < 0:
		return s
	}

	sep := "."
	idx := lastDot
	if lastComma >= 0 {
		sep = ","
		idx = lastComma
	}
	// "0.999" has no thousands to group
	grouped := len(s)-idx-1 == 3 && strings.TrimLeft(s[:idx], "0") != ""
	if strings.Count(s, sep) > 1 || grouped {
		return stripSeparators(s)
	}
	return s[:idx] + "." + s[idx+1:]
}

func stripSeparators(s string) string {
	return strings.NewReplacer(".", "", ",", "").Replace(s)
}
