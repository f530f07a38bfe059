package rosetta

import (
	"context"

	"github.com/pitabwire/rosetta/localization"
)

// WithFormatter Option that binds a locale aware message formatter as the
// translation source. Keys are then rendered through it instead of a flat
// catalog, and SetLocale rebinds the formatter to the new locale's messages.
func WithFormatter(manager localization.Manager) Option {
	return func(_ context.Context, b *Binder) {
		b.formatter = manager
	}
}

func (b *Binder) Localization() localization.Manager {
	return b.formatter
}
