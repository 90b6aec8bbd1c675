// Package errors provides structured error handling for veilar controls.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindParsing indicates a malformed style attribute at construction.
	KindParsing
	// KindRender indicates a failure while building a shape or shader.
	KindRender
	// KindPlatform indicates a platform channel or native bridge error.
	KindPlatform
	// KindConfig indicates an invalid style sheet or environment setting.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindParsing:
		return "parsing"
	case KindRender:
		return "render"
	case KindPlatform:
		return "platform"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// VeilarError represents a structured error raised by a control.
type VeilarError struct {
	// Op is the operation that failed (e.g., "style.Parse").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Attribute is the style attribute involved, if any (e.g., "bggradient").
	Attribute string
	// Input is the raw attribute value that failed to parse.
	Input string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *VeilarError) Error() string {
	if e.Attribute != "" {
		return fmt.Sprintf("%s [%s] %s=%q: %v", e.Op, e.Kind, e.Attribute, e.Input, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *VeilarError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "surface.OnPressChange").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// SyntaxError describes a malformed value in one of the string grammars.
type SyntaxError struct {
	// Grammar names the grammar being parsed ("gradient", "shape bundle", ...).
	Grammar string
	// Input is the full text being parsed.
	Input string
	// Msg explains what was wrong.
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Grammar, e.Input, e.Msg)
}

// ErrorHandler receives errors reported by the controls.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *VeilarError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
