package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every report. It is a LogHandler until
	// SetHandler replaces it.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler installs h as the global handler. nil restores a LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func currentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report stamps err with the current time and, for anything other than a
// render failure, the caller's stack, then hands it to the global handler.
// Render failures carry their attribute and input instead of a stack.
func Report(err *VeilarError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if err.StackTrace == "" && err.Kind != KindRender {
		err.StackTrace = stackFrom(3)
	}
	if h := currentHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportAttribute reports a style attribute whose value could not be used.
// The control keeps rendering without it.
func ReportAttribute(op, attribute, input string, err error) {
	Report(&VeilarError{
		Op:        op,
		Kind:      KindRender,
		Err:       err,
		Attribute: attribute,
		Input:     input,
	})
}

// ReportRender reports a shape or shader rebuild that failed. The previous
// visual state stays on screen.
func ReportRender(op string, err error) {
	Report(&VeilarError{Op: op, Kind: KindRender, Err: err})
}

// ReportPanic hands a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := currentHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover reports a panic in progress and stops it. Use it deferred:
//
//	defer errors.Recover("surface.OnLongPress")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is Recover followed by callback(r), so the caller can
// mark its result as unusable.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: stackFrom(4),
		Timestamp:  time.Now(),
	})
}

// CaptureStack returns the caller's stack, one "function\n\tfile:line"
// entry per frame, without runtime internals.
func CaptureStack() string {
	return stackFrom(3)
}

func stackFrom(skip int) string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			sb.WriteString(frame.Function)
			sb.WriteString("\n\t")
			sb.WriteString(frame.File)
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(frame.Line))
			sb.WriteByte('\n')
		}
		if !more {
			break
		}
	}
	return sb.String()
}
