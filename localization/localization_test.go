package localization_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pitabwire/rosetta/localization"
	"github.com/pitabwire/rosetta/tests"
)

// LocalizationTestSuite covers the go-i18n backed message formatter.
type LocalizationTestSuite struct {
	tests.BaseTestSuite
}

func TestLocalizationSuite(t *testing.T) {
	suite.Run(t, &LocalizationTestSuite{})
}

func (s *LocalizationTestSuite) TestRender() {
	testCases := []struct {
		name      string
		locale    string
		messageID string
		expected  string
	}{
		{
			name:      "english message",
			locale:    "en",
			messageID: "HelloWorld",
			expected:  "Hello world",
		},
		{
			name:      "ukrainian message",
			locale:    "uk",
			messageID: "HelloWorld",
			expected:  "Привіт світ",
		},
		{
			name:      "locale without the message falls back to the default language",
			locale:    "uk",
			messageID: "Farewell",
			expected:  "Goodbye",
		},
	}

	lm := localization.NewManager("testdata", "en", "uk")

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rendered := lm.Render(s.Ctx, tc.locale, tc.messageID)
			s.Require().Equal(tc.expected, rendered, "rendered message should match expected")
		})
	}
}

func (s *LocalizationTestSuite) TestRenderWithMap() {
	lm := localization.NewManager("testdata", "en", "uk")

	rendered := lm.RenderWithMap(s.Ctx, "en", "Welcome", map[string]any{"Name": "Air"})
	s.Require().Equal("Welcome Air", rendered)

	rendered = lm.RenderWithMap(s.Ctx, "uk", "Welcome", map[string]any{"Name": "Air"})
	s.Require().Equal("Ласкаво просимо Air", rendered)
}

func (s *LocalizationTestSuite) TestLookupReportsMissingMessages() {
	lm := localization.NewManager("testdata", "en", "uk")

	text, err := lm.Lookup("en", "HelloWorld")
	s.Require().NoError(err)
	s.Require().Equal("Hello world", text)

	_, err = lm.Lookup("en", "NoSuchMessage")
	s.Require().Error(err, "an unknown message id should be an error, not an echo")
}

func (s *LocalizationTestSuite) TestLanguageContextCarriage() {
	lm := localization.NewManager("testdata", "en", "uk")

	ctx := localization.ToContext(s.Ctx, []string{"uk"})
	s.Require().Equal([]string{"uk"}, localization.FromContext(ctx))

	rendered := lm.Render(ctx, "", "HelloWorld")
	s.Require().Equal("Привіт світ", rendered, "context languages should drive rendering when no locale is supplied")
}

func (s *LocalizationTestSuite) TestExtractLanguageFromHTTPRequest() {
	req := httptest.NewRequest("GET", "/?lang=uk", nil)
	req.Header.Set("Accept-Language", "en-GB,en")

	languages := localization.ExtractLanguageFromHTTPRequest(req)
	s.Require().Equal([]string{"uk", "en-GB", "en"}, languages,
		"the lang form value should come before header languages")
}
