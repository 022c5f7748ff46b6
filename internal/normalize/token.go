package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultColors is the color vocabulary used when none is configured.
var DefaultColors = []string{"black", "white", "blue", "gold", "titanium", "green"}

var memoryRe = regexp.MustCompile(`(?i)^(\d+)\s?(gb|tb)$`)

// TokenKind tells what a name token describes.
type TokenKind int

const (
	TokenNone TokenKind = iota
	TokenColor
	TokenMemory
)

func (k TokenKind) String() string {
	switch k {
	case TokenColor:
		return "color"
	case TokenMemory:
		return "memory"
	}
	return "none"
}

// Token is a classified product name token.
type Token struct {
	Kind  TokenKind
	Value string
}

// Classifier recognizes memory capacities and colors in product name tokens.
// It is safe for concurrent use.
type Classifier struct {
	colors map[string]string
}

// NewClassifier builds a classifier over a closed color vocabulary.
// Matching is case-insensitive; values come back title-cased.
func NewClassifier(colors []string) *Classifier {
	c := &Classifier{colors: make(map[string]string, len(colors))}
	for _, color := range colors {
		color = strings.TrimSpace(color)
		if color == "" {
			continue
		}
		c.colors[strings.ToLower(color)] = titleCase(color)
	}
	return c
}

// Classify reports whether token is a memory capacity, a known color or neither.
func (c *Classifier) Classify(token string) Token {
	token = strings.TrimFunc(token, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSpace(r)
	})
	if token == "" {
		return Token{Kind: TokenNone}
	}
	if m := memoryRe.FindStringSubmatch(token); m != nil {
		return Token{Kind: TokenMemory, Value: m[1] + strings.ToUpper(m[2])}
	}
	if color, ok := c.colors[strings.ToLower(token)]; ok {
		return Token{Kind: TokenColor, Value: color}
	}
	return Token{Kind: TokenNone}
}

func titleCase(s string) string {
	s = strings.ToLower(s)
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
