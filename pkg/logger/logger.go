package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "autopress-api"

// New creates the process-wide zerolog logger. LOG_LEVEL selects the level
// by zerolog name (default info); ENV=development switches to pretty
// console output with caller annotations.
func New() zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	dev := os.Getenv("ENV") == "development"

	var out io.Writer = os.Stdout
	if dev {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).Level(level).With().
		Timestamp().
		Str("service", serviceName)
	if dev {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}
