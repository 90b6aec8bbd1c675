package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/veilar-ui/veilar/pkg/logging"
)

func TestVeilarErrorString(t *testing.T) {
	err := &VeilarError{
		Op:   "shader.Build",
		Kind: KindRender,
		Err:  &SyntaxError{Grammar: "gradient", Input: "linear", Msg: "missing color stops"},
	}
	got := err.Error()
	want := `shader.Build [render]: invalid gradient "linear": missing color stops`
	if got != want {
		t.Errorf("VeilarError.Error() = %q, want %q", got, want)
	}
}

func TestVeilarErrorWithAttribute(t *testing.T) {
	err := &VeilarError{
		Op:        "style.Parse",
		Kind:      KindParsing,
		Attribute: "radius",
		Input:     "dp",
		Err:       stderrors.New("no digits"),
	}
	want := `radius="dp"`
	if got := err.Error(); !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestVeilarErrorUnwrap(t *testing.T) {
	syntax := &SyntaxError{Grammar: "shape bundle", Input: "x", Msg: "bad"}
	err := &VeilarError{Op: "style.Parse", Kind: KindParsing, Err: syntax}

	var target *SyntaxError
	if !stderrors.As(err, &target) {
		t.Fatal("expected errors.As to find the SyntaxError")
	}
	if target.Grammar != "shape bundle" {
		t.Errorf("Grammar = %q, want %q", target.Grammar, "shape bundle")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindParsing, "parsing"},
		{KindRender, "render"},
		{KindPlatform, "platform"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Op:        "surface.OnPressChange",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in surface.OnPressChange: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var capturedErr *VeilarError
	handler := &testHandler{
		onError: func(err *VeilarError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&VeilarError{
		Op:   "test.op",
		Kind: KindParsing,
		Err:  stderrors.New("boom"),
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportAttributeCarriesInputWithoutStack(t *testing.T) {
	var got []*VeilarError
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onError: func(err *VeilarError) { got = append(got, err) }})
	defer SetHandler(oldHandler)

	ReportAttribute("style.Parse", "bggradient", "spiral|red:0", stderrors.New("unknown type"))
	ReportRender("surface.refreshShaders", stderrors.New("no stops"))
	Report(&VeilarError{Op: "config.Load", Kind: KindConfig, Err: stderrors.New("missing")})

	if len(got) != 3 {
		t.Fatalf("got %d reports, want 3", len(got))
	}
	attr := got[0]
	if attr.Kind != KindRender || attr.Attribute != "bggradient" || attr.Input != "spiral|red:0" {
		t.Errorf("attribute report = %+v", attr)
	}
	if attr.StackTrace != "" || got[1].StackTrace != "" {
		t.Error("render reports should not carry a stack")
	}
	if got[1].Kind != KindRender || got[1].Attribute != "" {
		t.Errorf("render report = %+v", got[1])
	}
	if !strings.Contains(got[2].StackTrace, "TestReportAttributeCarriesInputWithoutStack") {
		t.Errorf("config report should carry the caller stack, got %q", got[2].StackTrace)
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	oldHandler := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	h := &LogHandler{Logger: logger}
	h.HandleError(&VeilarError{
		Op:        "style.Parse",
		Kind:      KindParsing,
		Attribute: "shapeBundle",
		Input:     "9:0",
		Err:       stderrors.New("unknown shape id"),
	})

	out := buf.String()
	for _, want := range []string{`"op":"style.Parse"`, `"kind":"parsing"`, `"attribute":"shapeBundle"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "TestCaptureStack") {
		t.Errorf("stack trace should start at the caller, got: %s", stack)
	}
	if strings.Contains(stack, "runtime.goexit") {
		t.Errorf("stack trace should omit runtime frames, got: %s", stack)
	}
}

type testHandler struct {
	onError func(*VeilarError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *VeilarError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
