package normalize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims", "  Apple  ", "Apple"},
		{"collapses template indentation", "6.9\n                                \"", "6.9 \""},
		{"nbsp and tabs", "1\u00a0234\t₴", "1 234 ₴"},
		{"empty", " \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"hryvnia with comma decimals", "1 234,99 ₴", "1234.99"},
		{"integer with unit word", "64 999 грн", "64999"},
		{"unit word with dot", "12 999 грн.", "12999"},
		{"nbsp thousands", "54\u00a0999₴", "54999"},
		{"dot decimals", "$19.90", "19.9"},
		{"comma thousands dot decimals", "$1,234.50", "1234.5"},
		{"dot thousands comma decimals", "1.234,50 €", "1234.5"},
		{"single comma thousands", "1,234", "1234"},
		{"repeated dot thousands", "1.234.567", "1234567"},
		{"apostrophe thousands", "1'299.00 CHF", "1299"},
		{"labelled", "Ціна: 1 234 ₴", "1234"},
		{"zero integer part", "0.999 $", "0.999"},
		{"zero integer part comma", "0,500 €", "0.5"},
		{"trailing unit punctuation", "1 234 грн.", "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrice(tt.in)
			require.True(t, ok)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParsePrice_Absent(t *testing.T) {
	for _, in := range []string{"Call for price", "", "   ₴ ", "Немає в наявності", "~", "100-200 ₴",
		"1 234 ₴ 1 100 ₴", "Ціна: 1 234 ₴ (знижка 10%)", "2 шт. по 1 234 ₴", "1 234 ₴ / 2"} {
		t.Run(in, func(t *testing.T) {
			_, ok := ParsePrice(in)
			assert.False(t, ok)
		})
	}
}

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(DefaultColors)

	tests := []struct {
		token string
		want  Token
	}{
		{"256GB", Token{Kind: TokenMemory, Value: "256GB"}},
		{"512gb", Token{Kind: TokenMemory, Value: "512GB"}},
		{"1Tb", Token{Kind: TokenMemory, Value: "1TB"}},
		{"(128GB)", Token{Kind: TokenMemory, Value: "128GB"}},
		{"Black", Token{Kind: TokenColor, Value: "Black"}},
		{"TITANIUM", Token{Kind: TokenColor, Value: "Titanium"}},
		{"Pro", Token{Kind: TokenNone}},
		{"GB", Token{Kind: TokenNone}},
		{"5G", Token{Kind: TokenNone}},
		{"", Token{Kind: TokenNone}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.token))
		})
	}
}

func TestClassifier_InjectedVocabulary(t *testing.T) {
	c := NewClassifier([]string{" Desert ", "", "ultramarine"})

	assert.Equal(t, Token{Kind: TokenColor, Value: "Desert"}, c.Classify("desert"))
	assert.Equal(t, Token{Kind: TokenColor, Value: "Ultramarine"}, c.Classify("Ultramarine"))
	assert.Equal(t, TokenNone, c.Classify("Black").Kind)
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"Відгуки (12)", 12},
		{"Reviews (0)", 0},
		{"Reviews", 0},
		{"", 0},
		{"(345)", 345},
		{"Reviews (99999999999999999999999)", 0},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCount(tt.label))
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		origin string
		want   string
	}{
		{"scheme relative", "//cdn/x.jpg", "https://knownsite", "https://cdn/x.jpg"},
		{"root relative", "/img/x.jpg", "https://knownsite", "https://knownsite/img/x.jpg"},
		{"origin trailing slash", "/img/x.jpg", "https://knownsite/", "https://knownsite/img/x.jpg"},
		{"absolute unchanged", "https://y/z.jpg", "https://knownsite", "https://y/z.jpg"},
		{"scheme follows origin", "//cdn/x.jpg", "http://knownsite", "http://cdn/x.jpg"},
		{"blank", "  ", "https://knownsite", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeURL(tt.src, tt.origin))
		})
	}
}
