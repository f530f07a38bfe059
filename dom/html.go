package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLTree is the live HTML implementation of Tree.
type HTMLTree struct {
	root *html.Node
}

// Parse reads an HTML document into a queryable tree.
func Parse(r io.Reader) (*HTMLTree, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: could not parse html: %w", err)
	}
	return &HTMLTree{root: root}, nil
}

// ParseString reads an HTML document held in a string.
func ParseString(content string) (*HTMLTree, error) {
	return Parse(strings.NewReader(content))
}

// ElementsByAttr returns every element carrying the named attribute.
func (t *HTMLTree) ElementsByAttr(name string) []Element {
	var elements []Element
	walk(t.root, func(n *html.Node) {
		if _, ok := nodeAttr(n, name); ok {
			elements = append(elements, &htmlElement{node: n})
		}
	})
	return elements
}

// ElementsByClass returns every element whose class attribute contains class.
func (t *HTMLTree) ElementsByClass(class string) []Element {
	var elements []Element
	walk(t.root, func(n *html.Node) {
		if nodeHasClass(n, class) {
			elements = append(elements, &htmlElement{node: n})
		}
	})
	return elements
}

// Render writes the document back out as HTML.
func (t *HTMLTree) Render(w io.Writer) error {
	if err := html.Render(w, t.root); err != nil {
		return fmt.Errorf("dom: could not render html: %w", err)
	}
	return nil
}

// HTML returns the document rendered as a string.
func (t *HTMLTree) HTML() (string, error) {
	var b strings.Builder
	if err := t.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// walk visits n and its subtree in depth first document order.
func walk(n *html.Node, visit func(*html.Node)) {
	if n.Type == html.ElementNode {
		visit(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func nodeAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func nodeHasClass(n *html.Node, class string) bool {
	classes, ok := nodeAttr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(classes) {
		if c == class {
			return true
		}
	}
	return false
}

type htmlElement struct {
	node *html.Node
}

func (e *htmlElement) Tag() string {
	return e.node.Data
}

func (e *htmlElement) Attr(name string) (string, bool) {
	return nodeAttr(e.node, name)
}

func (e *htmlElement) HasClass(name string) bool {
	return nodeHasClass(e.node, name)
}

func (e *htmlElement) Text() string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(e.node)
	return b.String()
}

func (e *htmlElement) SetText(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
