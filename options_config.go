package rosetta

import (
	"context"

	"github.com/pitabwire/rosetta/config"
)

// WithConfig Option that helps to specify or override the configuration
// object of our binder. When the object satisfies config.ConfigurationBinder
// its defaults are applied immediately, so later options can still override
// them.
func WithConfig(configuration any) Option {
	return func(_ context.Context, b *Binder) {
		b.configuration = configuration

		cfg, ok := configuration.(config.ConfigurationBinder)
		if !ok {
			return
		}
		if tag := cfg.GetDefaultLanguage(); tag != "" {
			b.defaultLanguage = tag
		}
		if attr := cfg.GetMarkerAttribute(); attr != "" {
			b.markerAttribute = attr
		}
	}
}

func (b *Binder) Config() any {
	return b.configuration
}
