package forge

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package logger; component loggers derive from it.
var Logger zerolog.Logger

var (
	flowLog   zerolog.Logger
	submitLog zerolog.Logger
)

func init() {
	Logger = NewConsoleLogger(os.Stderr, "info")
	initComponentLoggers()
}

// InitLogging reconfigures the package logger. level is one of
// debug, info, warn, error.
func InitLogging(level string, jsonOutput bool) {
	if jsonOutput {
		Logger = zerolog.New(os.Stderr).Level(parseLevel(level)).With().Timestamp().Logger()
	} else {
		Logger = NewConsoleLogger(os.Stderr, level)
	}
	initComponentLoggers()
}

// NewConsoleLogger creates a colored console logger.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(output).Level(parseLevel(level)).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func initComponentLoggers() {
	flowLog = Logger.With().Str("component", "flow").Logger()
	submitLog = Logger.With().Str("component", "submit").Logger()
}
