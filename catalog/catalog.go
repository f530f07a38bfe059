// Package catalog holds translation sources: flat key to text entries for a
// single language and tables keyed by language tag.
package catalog

import (
	"sort"

	"golang.org/x/text/language"
)

// Entry maps translation keys to localized text for one language.
type Entry map[string]string

// Lookup returns the text for key and whether it is present.
func (e Entry) Lookup(key string) (string, bool) {
	text, ok := e[key]
	return text, ok
}

// Table maps language tags to their entries.
type Table map[string]Entry

// Tags returns the table's language tags in sorted order.
func (t Table) Tags() []string {
	tags := make([]string, 0, len(t))
	for tag := range t {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Entry returns the entries stored under the exact tag.
func (t Table) Entry(tag string) (Entry, bool) {
	entry, ok := t[tag]
	return entry, ok
}

// Match resolves tag to the closest language the table actually holds, so a
// request for "en-US" finds entries stored under "en". Exact hits win; the
// remaining cases go through a language matcher built from the table's tags.
func (t Table) Match(tag string) (string, bool) {
	if _, ok := t[tag]; ok {
		return tag, true
	}

	desired, err := language.Parse(tag)
	if err != nil {
		return "", false
	}

	stored := t.Tags()
	supported := make([]language.Tag, 0, len(stored))
	names := make([]string, 0, len(stored))
	for _, name := range stored {
		parsed, parseErr := language.Parse(name)
		if parseErr != nil {
			continue
		}
		supported = append(supported, parsed)
		names = append(names, name)
	}
	if len(supported) == 0 {
		return "", false
	}

	matcher := language.NewMatcher(supported)
	_, index, confidence := matcher.Match(desired)
	if confidence == language.No {
		return "", false
	}
	return names[index], true
}
