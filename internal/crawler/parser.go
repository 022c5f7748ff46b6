package crawler

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"productparser/internal/normalize"
)

// Document is a parsed page that can be queried with CSS selectors.
type Document struct {
	doc *goquery.Document
}

// Node is a single element of a Document.
type Node struct {
	sel *goquery.Selection
}

func Parse(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// Find returns the first element matching selector.
func (d *Document) Find(selector string) (*Node, bool) {
	return first(d.doc.Find(selector))
}

// FindAll returns every element matching selector in document order.
func (d *Document) FindAll(selector string) []*Node {
	return nodes(d.doc.Find(selector))
}

// Text is the element's text with whitespace trimmed and collapsed.
func (n *Node) Text() string {
	return normalize.Text(n.sel.Text())
}

func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.sel.Attr(name)
	return strings.TrimSpace(v), ok
}

func (n *Node) Find(selector string) (*Node, bool) {
	return first(n.sel.Find(selector))
}

func (n *Node) FindAll(selector string) []*Node {
	return nodes(n.sel.Find(selector))
}

func first(s *goquery.Selection) (*Node, bool) {
	if s.Length() == 0 {
		return nil, false
	}
	return &Node{sel: s.First()}, true
}

func nodes(s *goquery.Selection) []*Node {
	list := make([]*Node, 0, s.Length())
	s.Each(func(_ int, el *goquery.Selection) {
		list = append(list, &Node{sel: el})
	})
	return list
}
