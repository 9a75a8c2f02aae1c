package testlog

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/danmuck/osc2midi/internal/logging"
)

// Start configures the shared test logging profile and returns a logger
// tagged with the test name.
func Start(t *testing.T) zerolog.Logger {
	t.Helper()
	lg := logging.Configure(logging.ProfileTest)
	return lg.With().Str("test", t.Name()).Logger()
}
