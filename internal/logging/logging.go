// Package logging builds the zerolog loggers used by the gridkit tools.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format names accepted by ParseFormat.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// New creates a configured logger. The writer defaults to stderr so that
// command output on stdout stays machine readable.
func New(opts Options) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}

// ParseFormat reports whether format selects human readable output.
// An empty format means console.
func ParseFormat(format string) (humanReadable bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatConsole:
		return true, true
	case FormatJSON:
		return false, true
	default:
		return false, false
	}
}
