package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type testHandler struct {
	onError      func(*GridError)
	onPanic      func(*PanicError)
	onBuildError func(*BuildError)
}

func (h *testHandler) HandleError(err *GridError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleBuildError(err *BuildError) {
	if h.onBuildError != nil {
		h.onBuildError(err)
	}
}

func withHandler(t *testing.T, h ErrorHandler) {
	t.Helper()
	old := SetHandler(h)
	t.Cleanup(func() { SetHandler(old) })
}

func TestGridErrorString(t *testing.T) {
	err := &GridError{
		Op:    "fluidgrid.Config.Validate",
		Kind:  KindConfig,
		Field: "grid.gap",
		Err:   stderrors.New("must be >= 0"),
	}
	got := err.Error()
	want := "fluidgrid.Config.Validate [config] field=grid.gap: must be >= 0"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestGridErrorUnwrap(t *testing.T) {
	inner := stderrors.New("boom")
	err := &GridError{Op: "op", Kind: KindRender, Err: inner}
	if !stderrors.Is(err, inner) {
		t.Error("expected errors.Is to find the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{KindBuild, "build"},
		{KindPlatform, "platform"},
		{ErrorKind(99), "unknown"},
		{ErrorKind(-1), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Op: "web.onResize", Value: "bad width"}
	if got, want := err.Error(), "panic in web.onResize: bad width"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = ""
	if got, want := err.Error(), "panic: bad width"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestBuildErrorString(t *testing.T) {
	err := &BuildError{Widget: "widgets.FluidGrid", Recovered: "nil child"}
	if got, want := err.Error(), "panic in widgets.FluidGrid.Build(): nil child"; got != want {
		t.Errorf("BuildError.Error() = %q, want %q", got, want)
	}
}

func TestReportSetsTimestamp(t *testing.T) {
	var captured *GridError
	withHandler(t, &testHandler{onError: func(err *GridError) { captured = err }})

	Report(&GridError{Op: "test.op", Kind: KindConfig, Err: stderrors.New("x")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	withHandler(t, &testHandler{onPanic: func(err *PanicError) { captured = err }})

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestSetHandlerNil(t *testing.T) {
	old := SetHandler(nil)
	t.Cleanup(func() { SetHandler(old) })

	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should install a LogHandler, got %T", Handler())
	}
}

func TestSetHandlerReturnsPrevious(t *testing.T) {
	first := &testHandler{}
	old := SetHandler(first)
	t.Cleanup(func() { SetHandler(old) })

	if prev := SetHandler(&testHandler{}); prev != first {
		t.Errorf("SetHandler returned %v, want the previously installed handler", prev)
	}
}

func TestKindOf(t *testing.T) {
	config := Errorf("config.Validate", KindConfig, "bad gap %d", -1)
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"grid error", config, KindConfig},
		{"wrapped", fmt.Errorf("load: %w", config), KindConfig},
		{"panic", &PanicError{Value: "x"}, KindPanic},
		{"build", &BuildError{Widget: "w"}, KindBuild},
		{"plain", stderrors.New("x"), KindUnknown},
		{"nil", nil, KindUnknown},
	}
	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.want {
			t.Errorf("%s: KindOf = %v, want %v", tt.name, got, tt.want)
		}
	}
	if got, want := config.Error(), "config.Validate [config]: bad gap -1"; got != want {
		t.Errorf("Errorf message = %q, want %q", got, want)
	}
}

func TestPanicErrorUnwrap(t *testing.T) {
	inner := stderrors.New("layout failed")
	if err := (&PanicError{Value: inner}); !stderrors.Is(err, inner) {
		t.Error("PanicError should unwrap an error value")
	}
	if err := (&PanicError{Value: "text"}); err.Unwrap() != nil {
		t.Error("PanicError with a non-error value should unwrap to nil")
	}
}

func TestCaptureStack(t *testing.T) {
	if stack := CaptureStack(); !strings.Contains(stack, "testing") {
		t.Errorf("stack trace should contain testing frames, got: %s", stack)
	}
}

func TestLogHandlerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	h := &LogHandler{Logger: &logger}

	h.HandleBuildError(&BuildError{
		Widget:    "widgets.ProductTile",
		Element:   "*core.StatelessElement",
		Recovered: "oops",
		Timestamp: time.Now(),
	})

	out := buf.String()
	for _, want := range []string{`"widget":"widgets.ProductTile"`, `"recovered":"oops"`, `"message":"build failed"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}
