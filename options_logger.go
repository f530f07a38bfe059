package rosetta

import (
	"context"

	"github.com/pitabwire/util"

	"github.com/pitabwire/rosetta/config"
)

// WithLogger Option that helps with initialization of our internal logger.
// Supply it after WithConfig so logging settings are picked up.
func WithLogger(opts ...util.Option) Option {
	return func(ctx context.Context, b *Binder) {
		if b.Config() != nil {
			cfg, ok := b.Config().(config.ConfigurationLogLevel)
			if ok {
				logLevel, err := util.ParseLevel(cfg.LoggingLevel())
				if err == nil {
					opts = append(opts, util.WithLogLevel(logLevel))
				}
				opts = append(opts,
					util.WithLogTimeFormat(cfg.LoggingTimeFormat()),
					util.WithLogNoColor(!cfg.LoggingColored()))
			}
		}

		b.logger = util.NewLogger(ctx, opts...)
	}
}

func (b *Binder) Log(ctx context.Context) *util.LogEntry {
	if b.logger == nil {
		return util.Log(ctx)
	}
	return b.logger.WithContext(ctx)
}
