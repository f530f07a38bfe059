// Package dom supplies the document tree capability consumed by the binder.
//
// A Tree is anything that can enumerate elements by marker attribute or by
// class membership; an Element is a single node whose rendered text can be
// read and overwritten. The html implementation in this package wraps a
// parsed golang.org/x/net/html document, but any conforming test double
// satisfies the same contract.
package dom

// Element is a single node in a document tree.
type Element interface {
	// Tag returns the element's tag name, e.g. "div".
	Tag() string
	// Attr returns the value of the named attribute and whether it is present.
	Attr(name string) (string, bool)
	// HasClass reports whether the element's class attribute contains name.
	HasClass(name string) bool
	// Text returns the concatenated text content of the element's subtree.
	Text() string
	// SetText replaces the element's children with a single text node.
	SetText(text string)
}

// Tree is a queryable document tree. Both query methods return elements in
// depth first document order.
type Tree interface {
	ElementsByAttr(name string) []Element
	ElementsByClass(class string) []Element
}
