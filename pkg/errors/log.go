package errors

import (
	"os"

	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes structured log entries.
// The zero value logs to stderr.
type LogHandler struct {
	// Verbose enables stack traces in the output.
	Verbose bool
	// Logger overrides the destination. Nil means a stderr logger.
	Logger *zerolog.Logger
}

func (h *LogHandler) logger() *zerolog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	h.Logger = &l
	return h.Logger
}

// HandleError logs a GridError.
func (h *LogHandler) HandleError(err *GridError) {
	if err == nil {
		return
	}
	event := h.logger().Error().
		Str("op", err.Op).
		Stringer("kind", err.Kind).
		Err(err.Err)
	if err.Field != "" {
		event = event.Str("field", err.Field)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("gridkit error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	event := h.logger().Error().Interface("value", err.Value)
	if err.Op != "" {
		event = event.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("gridkit panic")
}

// HandleBuildError logs a BuildError.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	event := h.logger().Error().
		Str("widget", err.Widget).
		Str("element", err.Element)
	if err.Recovered != nil {
		event = event.Interface("recovered", err.Recovered)
	}
	if err.Err != nil {
		event = event.Err(err.Err)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("build failed")
}
