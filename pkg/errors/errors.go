// Package errors defines the structured errors reported by gridkit and the
// process-wide handler they are delivered to.
//
// Errors that a caller can act on are returned. Errors raised where there is
// no caller to return to, such as a resize callback or a widget build, are
// reported to the handler installed with SetHandler.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindConfig is an invalid grid or tool configuration.
	KindConfig
	// KindRender is a layout, paint or markup failure.
	KindRender
	KindPanic
	KindBuild
	// KindPlatform is a failure talking to the host (DOM, terminal).
	KindPlatform
)

var kindNames = [...]string{
	KindUnknown:  "unknown",
	KindConfig:   "config",
	KindRender:   "render",
	KindPanic:    "panic",
	KindBuild:    "build",
	KindPlatform: "platform",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// GridError is an error raised by a gridkit operation.
type GridError struct {
	// Op names the failing operation, e.g. "config.Validate".
	Op   string
	Kind ErrorKind
	// Field is the offending configuration field, when there is one.
	Field      string
	Err        error
	StackTrace string
	// Timestamp is set by Report when left zero.
	Timestamp time.Time
}

// Errorf builds a GridError with a formatted cause.
func Errorf(op string, kind ErrorKind, format string, args ...any) *GridError {
	return &GridError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

func (e *GridError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s [%s] field=%s: %v", e.Op, e.Kind, e.Field, e.Err)
}

func (e *GridError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first GridError in err's chain, KindPanic
// for a PanicError, KindBuild for a BuildError, and KindUnknown otherwise.
func KindOf(err error) ErrorKind {
	var gridErr *GridError
	if stderrors.As(err, &gridErr) {
		return gridErr.Kind
	}
	var panicErr *PanicError
	if stderrors.As(err, &panicErr) {
		return KindPanic
	}
	var buildErr *BuildError
	if stderrors.As(err, &buildErr) {
		return KindBuild
	}
	return KindUnknown
}

// PanicError is a panic recovered at a callback or frame boundary.
type PanicError struct {
	// Op names the boundary that recovered, e.g. "web.onResize".
	Op         string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
}

// Unwrap exposes the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// BuildError is a widget Build that panicked or failed. The element keeps
// its previous child when this happens.
type BuildError struct {
	// Widget and Element are type names, e.g. "widgets.FluidGrid".
	Widget     string
	Element    string
	Recovered  any
	Err        error
	StackTrace string
	Timestamp  time.Time
}

func (e *BuildError) Error() string {
	switch {
	case e.Recovered != nil:
		return fmt.Sprintf("panic in %s.Build(): %v", e.Widget, e.Recovered)
	case e.Err != nil:
		return fmt.Sprintf("error in %s.Build(): %v", e.Widget, e.Err)
	default:
		return fmt.Sprintf("unknown error in %s.Build()", e.Widget)
	}
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	HandleError(err *GridError)
	HandlePanic(err *PanicError)
	HandleBuildError(err *BuildError)
}
