// Package rosetta binds localized text into HTML document trees. A Binder is
// constructed once with a translation source, walks a supplied document tree
// on every Translate pass and writes resolved text into the elements tagged
// with a translation key. It holds no external resources and is reusable for
// the life of the host page or process.
package rosetta

import (
	"context"

	"github.com/pitabwire/util"

	"github.com/pitabwire/rosetta/catalog"
	"github.com/pitabwire/rosetta/config"
	"github.com/pitabwire/rosetta/localization"
)

type contextKey string

func (c contextKey) String() string {
	return "rosetta/" + string(c)
}

const ctxKeyBinder = contextKey("binderKey")

const (
	// DefaultLanguageTag is used when no usable initial language is supplied.
	DefaultLanguageTag = "en"

	// DefaultMarkerAttribute tags elements with their translation key.
	DefaultMarkerAttribute = "data-i18n"
)

// Binder resolves translation keys against its active language and writes the
// resolved text into matching elements of a document tree.
//
// The active language is a single mutable field with no internal
// synchronization; hosts that translate from several goroutines must
// serialize Translate and SetLanguage calls themselves.
type Binder struct {
	entries         catalog.Entry
	table           catalog.Table
	language        string
	defaultLanguage string
	markerAttribute string
	rules           []Rule
	formatter       localization.Manager
	logger          *util.LogEntry
	configuration   any
}

// Option configures a Binder during construction.
type Option func(ctx context.Context, b *Binder)

// New creates a Binder with the supplied options and stores it in the
// returned context. Absent translation sources degrade to an empty mapping;
// construction never fails. An initial language that is blank or has no
// entries in the table resolves to the configured default tag.
func New(ctx context.Context, opts ...Option) (context.Context, *Binder) {
	b := &Binder{
		table:           catalog.Table{},
		defaultLanguage: DefaultLanguageTag,
		markerAttribute: DefaultMarkerAttribute,
	}

	for _, opt := range opts {
		opt(ctx, b)
	}

	if b.logger == nil {
		b.logger = util.Log(ctx)
	}
	b.language = b.initialLanguage(b.language)

	ctx = ToContext(ctx, b)
	ctx = config.ToContext(ctx, b.configuration)
	return ctx, b
}

// ToContext adds a binder to the current supplied context.
func ToContext(ctx context.Context, b *Binder) context.Context {
	return context.WithValue(ctx, ctxKeyBinder, b)
}

// FromContext extracts a binder from the supplied context if any exists.
func FromContext(ctx context.Context) *Binder {
	b, ok := ctx.Value(ctxKeyBinder).(*Binder)
	if !ok {
		return nil
	}

	return b
}

// initialLanguage applies the construction fallback: keep a tag the table can
// serve, otherwise use the default tag. A formatter carries its own message
// store, so any non blank tag is kept as supplied there.
func (b *Binder) initialLanguage(tag string) string {
	if tag == "" {
		return b.defaultLanguage
	}
	if b.formatter != nil || b.entries != nil {
		return tag
	}
	if _, ok := b.table.Entry(tag); ok {
		return tag
	}
	if matched, ok := b.table.Match(tag); ok {
		return matched
	}
	return b.defaultLanguage
}

// Language returns the active language tag.
func (b *Binder) Language() string {
	return b.language
}

// MarkerAttribute returns the attribute name that tags elements with keys.
func (b *Binder) MarkerAttribute() string {
	return b.markerAttribute
}

// SetLanguage replaces the active language tag unconditionally. The table is
// not consulted; a tag with no entries surfaces as per key misses on the next
// Translate pass. The DOM is not rescanned here.
func (b *Binder) SetLanguage(tag string) {
	b.language = tag
}

// SetLocale is SetLanguage under the locale formatting variant's name.
func (b *Binder) SetLocale(tag string) {
	b.SetLanguage(tag)
}

// activeEntry resolves the entries for the active language. A single
// language binder always serves its flat entries; otherwise a missing
// language yields an empty entry so every key reports as missing.
func (b *Binder) activeEntry() catalog.Entry {
	if b.entries != nil {
		return b.entries
	}
	if entry, ok := b.table.Entry(b.language); ok {
		return entry
	}
	return catalog.Entry{}
}
