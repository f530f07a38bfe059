package rosetta

import (
	"errors"
	"fmt"
)

// The binder's two failure kinds. Neither is ever fatal: a Translate pass
// recovers per element and Lookup reports them for hosts that want the
// distinction.
var (
	// ErrMissingTranslation reports a key with no entry under the active language.
	ErrMissingTranslation = errors.New("translation not found")

	// ErrMissingLanguage reports an active language the table holds no entries for.
	ErrMissingLanguage = errors.New("language not found")
)

// Resolve looks the key up under the active language and reports whether a
// translation exists. It performs no DOM traversal.
func (b *Binder) Resolve(key string) (string, bool) {
	if b.formatter != nil {
		text, err := b.formatter.Lookup(b.language, key)
		if err != nil {
			return "", false
		}
		return text, true
	}

	return b.activeEntry().Lookup(key)
}

// Get returns the resolved text for key, or a fallback message embedding the
// key when no translation exists.
func (b *Binder) Get(key string) string {
	if text, ok := b.Resolve(key); ok {
		return text
	}
	return fmt.Sprintf("missing translation: %s", key)
}

// Lookup resolves key like Resolve but distinguishes the two failure kinds:
// an unknown active language and an unknown key within a known language.
// Translate itself never makes that distinction, it only emits per key misses.
func (b *Binder) Lookup(key string) (string, error) {
	if b.formatter != nil {
		text, err := b.formatter.Lookup(b.language, key)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrMissingTranslation, key)
		}
		return text, nil
	}

	if b.entries == nil {
		if _, ok := b.table.Entry(b.language); !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingLanguage, b.language)
		}
	}

	text, ok := b.activeEntry().Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingTranslation, key)
	}
	return text, nil
}
