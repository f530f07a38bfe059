package rosetta

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/pitabwire/rosetta/dom"
)

const (
	tintAttrCodeKey      = 214
	tintAttrCodeLanguage = 12
)

// Report summarises a single Translate pass.
type Report struct {
	// Matched counts the elements selected by the configured rule.
	Matched int
	// Applied counts the elements whose text was overwritten.
	Applied int
	// Missing lists the keys, or source texts in rule mode, that resolved to
	// nothing. Elements behind them were left untouched.
	Missing []string
}

// Translate runs one pass over the supplied document tree. Every element
// selected by the configured rule is resolved against the language that was
// active when the pass started, so a concurrent SetLanguage never splits a
// pass between two languages. Misses are reported per element and never abort
// the pass; re-running with unchanged state reproduces the same document.
func (b *Binder) Translate(ctx context.Context, tree dom.Tree) Report {
	if len(b.rules) > 0 {
		return b.translateRules(ctx, tree)
	}
	return b.translateKeys(ctx, tree)
}

func (b *Binder) translateKeys(ctx context.Context, tree dom.Tree) Report {
	lang := b.language
	entry := b.activeEntry()

	var report Report
	for _, el := range tree.ElementsByAttr(b.markerAttribute) {
		key, ok := el.Attr(b.markerAttribute)
		if !ok || key == "" {
			continue
		}
		report.Matched++

		text, found := entry.Lookup(key)
		if b.formatter != nil {
			var err error
			text, err = b.formatter.Lookup(lang, key)
			found = err == nil
		}
		if !found {
			report.Missing = append(report.Missing, key)
			b.warnMissing(ctx, key, lang)
			continue
		}

		el.SetText(text)
		report.Applied++
	}
	return report
}

// translateRules applies the class and text match variant: for each element
// of a rule's class, the first rule whose source text equals the element's
// current text, compared case insensitively, wins in rule list order.
func (b *Binder) translateRules(ctx context.Context, tree dom.Tree) Report {
	var report Report
	for _, class := range b.ruleClasses() {
		for _, el := range tree.ElementsByClass(class) {
			report.Matched++

			current := strings.TrimSpace(el.Text())
			applied := false
			for _, rule := range b.rules {
				if rule.Class != class {
					continue
				}
				if strings.EqualFold(current, rule.Match) {
					el.SetText(rule.Text)
					report.Applied++
					applied = true
					break
				}
			}
			if !applied {
				report.Missing = append(report.Missing, current)
				b.warnMissing(ctx, current, b.language)
			}
		}
	}
	return report
}

// ruleClasses returns the distinct rule classes in rule list order.
func (b *Binder) ruleClasses() []string {
	seen := map[string]bool{}
	var classes []string
	for _, rule := range b.rules {
		if seen[rule.Class] {
			continue
		}
		seen[rule.Class] = true
		classes = append(classes, rule.Class)
	}
	return classes
}

func (b *Binder) warnMissing(ctx context.Context, key string, lang string) {
	log := b.Log(ctx).With(
		tint.Attr(tintAttrCodeKey, slog.Any("key", key)),
		tint.Attr(tintAttrCodeLanguage, slog.Any("language", lang)),
	)
	log.Warn("translation missing")
	log.Release()
}
