package config_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pitabwire/rosetta/config"
	"github.com/pitabwire/rosetta/tests"
)

type ConfigTestSuite struct {
	tests.BaseTestSuite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, &ConfigTestSuite{})
}

func (s *ConfigTestSuite) TestFromEnv() {
	s.T().Setenv("DEFAULT_LANGUAGE", "uk")
	s.T().Setenv("LOG_LEVEL", "debug")

	cfg, err := config.FromEnv[config.ConfigurationDefault]()
	s.Require().NoError(err, "environment parsing should succeed")

	s.Require().Equal("uk", cfg.GetDefaultLanguage())
	s.Require().Equal("debug", cfg.LoggingLevel())
	s.Require().Equal("data-i18n", cfg.GetMarkerAttribute(), "unset variables should carry their defaults")
	s.Require().Equal("localization", cfg.GetTranslationsFolder())
	s.Require().True(cfg.LoggingColored())
}

func (s *ConfigTestSuite) TestContextRoundtrip() {
	cfg := &config.ConfigurationDefault{DefaultLanguage: "en"}

	ctx := config.ToContext(s.Ctx, cfg)
	s.Require().Same(cfg, config.FromContext[*config.ConfigurationDefault](ctx))

	s.Require().Nil(config.FromContext[*config.ConfigurationDefault](s.Ctx),
		"a context without configuration should yield the zero value")
}

func (s *ConfigTestSuite) TestCapabilityInterfaces() {
	s.Require().Implements((*config.ConfigurationLogLevel)(nil), &config.ConfigurationDefault{})
	s.Require().Implements((*config.ConfigurationBinder)(nil), &config.ConfigurationDefault{})
}
