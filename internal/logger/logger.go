// Package logger is the process-wide zerolog logger. Output goes to stderr
// so stdout stays reserved for command results.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

var (
	output  io.Writer = os.Stderr
	logFile *os.File
	logger  zerolog.Logger
)

func initLogger() {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: "15:04:05",
		NoColor:    logFile != nil,
	}
	logger = zerolog.New(consoleWriter).With().Timestamp().Logger()
}

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	initLogger()
}

// SetLevel sets the global log level. Unknown names fall back to warn.
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "disabled", "off":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// SetOutput redirects log output, e.g. to a buffer in tests.
func SetOutput(w io.Writer) {
	output = w
	initLogger()
}

// SetOutputFile appends log output to filename, creating parent directories.
func SetOutputFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	CloseLogFile()
	logFile = f
	output = f
	initLogger()
	return nil
}

// CloseLogFile closes the log file if one is open and reverts to stderr.
func CloseLogFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
		output = os.Stderr
		initLogger()
	}
}

func Debugf(format string, v ...interface{}) {
	logger.Debug().Msgf(format, v...)
}

func Infof(format string, v ...interface{}) {
	logger.Info().Msgf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	logger.Warn().Msgf(format, v...)
}

// Error logs msg with the error attached.
func Error(msg string, err error) {
	logger.Error().Err(err).Msg(msg)
}
