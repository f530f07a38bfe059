package localization

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pitabwire/util"
	"golang.org/x/text/language"
)

type contextKey string

func (c contextKey) String() string {
	return "rosetta/localization/" + string(c)
}

const ctxKeyLanguage = contextKey("languageKey")

// ToContext adds language preferences to the current supplied context.
func ToContext(ctx context.Context, lang []string) context.Context {
	return context.WithValue(ctx, ctxKeyLanguage, lang)
}

// FromContext extracts language preferences from the supplied context if any exist.
func FromContext(ctx context.Context) []string {
	languages, ok := ctx.Value(ctxKeyLanguage).([]string)
	if !ok {
		return nil
	}

	return languages
}

// Manager is a locale aware message formatter backed by go-i18n. The binder's
// contract with it is narrow: render the message identified by an id for a
// locale. Lookup is the strict form used during translate passes, where a
// missing message must surface as a miss instead of a rendered fallback.
type Manager interface {
	Bundle() *i18n.Bundle
	Lookup(locale string, messageID string) (string, error)
	Render(ctx context.Context, locale string, messageID string) string
	RenderWithMap(
		ctx context.Context,
		locale string,
		messageID string,
		variables map[string]any,
	) string
}

type managerImpl struct {
	bundle *i18n.Bundle
}

// NewManager loads the message files for the given languages from the
// translations folder, expecting the messages.<lang>.toml naming scheme.
func NewManager(translationsFolder string, languages ...string) Manager {
	if translationsFolder == "" {
		translationsFolder = "localization"
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, lang := range languages {
		bundle.MustLoadMessageFile(fmt.Sprintf("%s/messages.%v.toml", translationsFolder, lang))
	}

	return &managerImpl{bundle: bundle}
}

// NewManagerFromBundle wraps an already assembled bundle.
func NewManagerFromBundle(bundle *i18n.Bundle) Manager {
	return &managerImpl{bundle: bundle}
}

// Bundle accesses the translation bundle instantiated in the system.
func (s *managerImpl) Bundle() *i18n.Bundle {
	return s.bundle
}

// Lookup renders the message identified by messageID for locale. Unlike
// Render it carries no default message, so an unknown id is reported as an
// error rather than echoed back.
func (s *managerImpl) Lookup(locale string, messageID string) (string, error) {
	localizer := i18n.NewLocalizer(s.bundle, locale)
	return localizer.Localize(&i18n.LocalizeConfig{
		MessageID: messageID,
	})
}

// Render performs a quick translation based on the supplied message id.
func (s *managerImpl) Render(ctx context.Context, locale string, messageID string) string {
	return s.RenderWithMap(ctx, locale, messageID, map[string]any{})
}

// RenderWithMap performs a translation with variables based on the supplied message id.
func (s *managerImpl) RenderWithMap(
	ctx context.Context,
	locale string,
	messageID string,
	variables map[string]any,
) string {
	languageSlice := FromContext(ctx)
	if locale != "" {
		languageSlice = append([]string{locale}, languageSlice...)
	}

	localizer := i18n.NewLocalizer(s.bundle, languageSlice...)

	transVersion, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      messageID,
		DefaultMessage: &i18n.Message{ID: messageID},
		TemplateData:   variables,
	})
	if err != nil {
		logger := util.Log(ctx).WithError(err).WithField("messageID", messageID)
		logger.Error("could not perform translation")
	}

	return transVersion
}

// ExtractLanguageFromHTTPRequest collects language preferences from a request,
// the lang form value first and the Accept-Language header after it.
func ExtractLanguageFromHTTPRequest(req *http.Request) []string {
	lang := req.FormValue("lang")

	acceptedLang := ExtractLanguageFromHTTPHeader(req.Header)

	var languages []string
	if lang != "" {
		languages = append(languages, lang)
	}

	return append(languages, acceptedLang...)
}

func ExtractLanguageFromHTTPHeader(req http.Header) []string {
	acceptLanguageHeader := req.Get("Accept-Language")
	return strings.Split(acceptLanguageHeader, ",")
}
