package common

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	loggerOnce sync.Once
	logger     zerolog.Logger
)

// Logger returns the package-wide zerolog.Logger. It is configured
// once on first use: a human-readable console writer on stderr.
// ceremony.Verify and ceremony.VerifyNaive log SRS shape failures and
// batch transcript failures through it for diagnostics only; no caller
// branches on the log output. A failing Dlog or Rho proof is not
// logged on its own (it surfaces only as the batch failure of its
// phase), and QAP shape codes are printed by the CLI, not logged here.
func Logger() zerolog.Logger {
	loggerOnce.Do(func() {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().
			Timestamp().
			Str("component", "snarky-ceremonies").
			Logger()
	})
	return logger
}
