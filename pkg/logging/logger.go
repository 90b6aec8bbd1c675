// Package logging wraps zerolog for the controls, the error handler and the
// veilar CLI.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog to provide a simplified API.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
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

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: logger}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// Debug returns a debug-level event; call Msg to emit it.
func (l *Logger) Debug() *zerolog.Event {
	if l == nil {
		return nil
	}
	return l.base.Debug()
}

// Info returns an info-level event.
func (l *Logger) Info() *zerolog.Event {
	if l == nil {
		return nil
	}
	return l.base.Info()
}

// Warn returns a warn-level event.
func (l *Logger) Warn() *zerolog.Event {
	if l == nil {
		return nil
	}
	return l.base.Warn()
}

// Error returns an error-level event.
func (l *Logger) Error() *zerolog.Event {
	if l == nil {
		return nil
	}
	return l.base.Error()
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = mustDefault()
)

func mustDefault() *Logger {
	l, _ := New(Options{Level: "warn"})
	return l
}

// Default returns the package-level logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger. Passing nil installs a
// no-op logger.
func SetDefault(l *Logger) {
	if l == nil {
		l = Nop()
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}
