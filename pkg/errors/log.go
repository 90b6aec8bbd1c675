package errors

import (
	"github.com/veilar-ui/veilar/pkg/logging"
)

// LogHandler is an ErrorHandler that writes errors to the default logger.
//
// Render-time failures are expected to be silent for the end user, so they
// are logged at debug level; everything else is logged as a warning.
type LogHandler struct {
	// Verbose adds stack traces to the log entries.
	Verbose bool
	// Logger overrides logging.Default when set.
	Logger *logging.Logger
}

func (h *LogHandler) logger() *logging.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return logging.Default()
}

// HandleError logs a VeilarError.
func (h *LogHandler) HandleError(err *VeilarError) {
	if err == nil {
		return
	}
	event := h.logger().Warn()
	if err.Kind == KindRender {
		event = h.logger().Debug()
	}
	event = event.Str("op", err.Op).Str("kind", err.Kind.String()).Err(err.Err)
	if err.Attribute != "" {
		event = event.Str("attribute", err.Attribute).Str("input", err.Input)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("veilar error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	event := h.logger().Error().Str("op", err.Op).Interface("value", err.Value)
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("veilar panic")
}
