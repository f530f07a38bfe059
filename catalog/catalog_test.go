package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pitabwire/rosetta/catalog"
	"github.com/pitabwire/rosetta/tests"
)

type CatalogTestSuite struct {
	tests.BaseTestSuite
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, &CatalogTestSuite{})
}

func (s *CatalogTestSuite) TestMatch() {
	table := catalog.Table{
		"en": {"hello": "Hello"},
		"uk": {"hello": "Привіт"},
	}

	testCases := []struct {
		name     string
		tag      string
		expected string
		found    bool
	}{
		{
			name:     "exact tag",
			tag:      "uk",
			expected: "uk",
			found:    true,
		},
		{
			name:     "regional tag matches base language",
			tag:      "en-US",
			expected: "en",
			found:    true,
		},
		{
			name:     "regional tag matches base language cyrillic",
			tag:      "uk-UA",
			expected: "uk",
			found:    true,
		},
		{
			name:  "unrelated language misses",
			tag:   "ja",
			found: false,
		},
		{
			name:  "garbage tag misses",
			tag:   "!!",
			found: false,
		},
		{
			name:  "blank tag misses",
			tag:   "",
			found: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			matched, ok := table.Match(tc.tag)
			s.Require().Equal(tc.found, ok, "match presence should agree")
			if tc.found {
				s.Require().Equal(tc.expected, matched, "matched tag should agree")
			}
		})
	}
}

func (s *CatalogTestSuite) TestTagsAreSorted() {
	table := catalog.Table{"uk": {}, "en": {}, "fr": {}}
	s.Require().Equal([]string{"en", "fr", "uk"}, table.Tags())
}

func (s *CatalogTestSuite) TestEntryLookup() {
	entry := catalog.Entry{"hello": "Hello"}

	text, ok := entry.Lookup("hello")
	s.Require().True(ok)
	s.Require().Equal("Hello", text)

	_, ok = entry.Lookup("bye")
	s.Require().False(ok)
}
