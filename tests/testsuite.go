// Package tests provides the base test suite shared by binder test suites.
package tests

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pitabwire/util"
	"github.com/stretchr/testify/suite"
)

// BaseTestSuite provides a context with a debug level logger for test runs.
// The binder owns no external resources, so there is nothing to provision or
// tear down beyond that.
type BaseTestSuite struct {
	suite.Suite

	Ctx context.Context
}

// SetupSuite initialises the test environment for the test suite.
func (s *BaseTestSuite) SetupSuite() {
	ctx := context.Background()
	log := util.NewLogger(ctx, util.WithLogLevel(slog.LevelDebug))
	s.Ctx = util.ContextWithLogger(ctx, log)
}

// ReadFixture loads a file from the calling package's testdata directory.
func (s *BaseTestSuite) ReadFixture(name string) string {
	content, err := os.ReadFile(filepath.Join("testdata", name))
	s.Require().NoError(err, "fixture %s should load", name)
	return string(content)
}
