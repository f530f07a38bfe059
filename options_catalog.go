package rosetta

import (
	"context"

	"github.com/pitabwire/rosetta/catalog"
)

// WithEntries configures a single language translation source. The binder
// then serves these entries regardless of the active tag.
func WithEntries(entries catalog.Entry) Option {
	return func(_ context.Context, b *Binder) {
		b.entries = entries
	}
}

// WithCatalog configures a multi language translation source.
func WithCatalog(table catalog.Table) Option {
	return func(_ context.Context, b *Binder) {
		if table == nil {
			table = catalog.Table{}
		}
		b.table = table
	}
}

// WithLanguage sets the initial language tag. A blank tag, or one the
// catalog cannot serve, resolves to the default tag at construction.
func WithLanguage(tag string) Option {
	return func(_ context.Context, b *Binder) {
		b.language = tag
	}
}

// WithDefaultLanguage overrides the fallback tag used when the initial
// language is absent or unknown.
func WithDefaultLanguage(tag string) Option {
	return func(_ context.Context, b *Binder) {
		if tag != "" {
			b.defaultLanguage = tag
		}
	}
}
