package qs_test

import (
	"log/slog"
	"os"
	"testing"

	"go.uber.org/goleak"

	"github.com/ghettovoice/qs/internal/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// testLogger returns the logger wired into parse tests:
// noop by default, console on -v, devslog when QS_TEST_LOG=dev.
func testLogger() *slog.Logger {
	switch {
	case os.Getenv("QS_TEST_LOG") == "dev":
		return log.Dev
	case testing.Verbose():
		return log.Def
	default:
		return log.Noop
	}
}
