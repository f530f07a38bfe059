package rosetta

import "context"

// Rule rewrites the text of elements in a class when their current rendered
// text equals Match, compared case insensitively.
type Rule struct {
	Class string
	Match string
	Text  string
}

// WithRules switches the binder to the class and text match selection rule.
// Rules are applied in list order and the first match wins per element.
func WithRules(rules ...Rule) Option {
	return func(_ context.Context, b *Binder) {
		b.rules = rules
	}
}

// WithMarkerAttribute overrides the attribute that tags elements with their
// translation key.
func WithMarkerAttribute(name string) Option {
	return func(_ context.Context, b *Binder) {
		if name != "" {
			b.markerAttribute = name
		}
	}
}
