package platform

import (
	stderrors "errors"
	"sync"

	"github.com/veilar-ui/veilar/pkg/errors"
)

// HapticFeedbackType names a native feedback pattern.
type HapticFeedbackType string

const (
	// HapticKeyboardTap is the light tap emitted on long press.
	HapticKeyboardTap HapticFeedbackType = "keyboardTap"
	// HapticLongPress is the platform's stock long-press pattern.
	HapticLongPress HapticFeedbackType = "longPress"
	// HapticVirtualKey is the feedback of a soft key press.
	HapticVirtualKey HapticFeedbackType = "virtualKey"
)

// Haptics is the haptic feedback service on channel "veilar/haptics".
var Haptics = &HapticsService{
	channel: NewMethodChannel("veilar/haptics"),
	enabled: true,
}

func init() {
	Haptics.channel.SetHandler(Haptics.handle)
}

// HapticsService sends feedback requests to the native vibrator. Native
// code can switch feedback off, mirroring the system setting, by calling
// "setEnabled" with {"enabled": false}.
type HapticsService struct {
	channel *MethodChannel

	mu       sync.RWMutex
	enabled  bool
	dispatch func(func())
}

// SetDispatcher sets the function that runs native toggles on the UI
// goroutine. Without one they apply on the calling goroutine.
func (h *HapticsService) SetDispatcher(fn func(callback func())) {
	h.mu.Lock()
	h.dispatch = fn
	h.mu.Unlock()
}

// Perform requests one haptic pulse of the given type. It is a no-op while
// feedback is disabled. Bridge failures are reported and returned; a
// missing bridge is only returned.
func (h *HapticsService) Perform(kind HapticFeedbackType) error {
	if !h.Enabled() {
		return nil
	}
	_, err := h.channel.Invoke("perform", map[string]any{"type": string(kind)})
	if err != nil && !stderrors.Is(err, ErrPlatformUnavailable) {
		errors.Report(&errors.VeilarError{
			Op:   "haptics.Perform",
			Kind: errors.KindPlatform,
			Err:  err,
		})
	}
	return err
}

// KeyboardTap performs HapticKeyboardTap.
func (h *HapticsService) KeyboardTap() error {
	return h.Perform(HapticKeyboardTap)
}

// Enabled reports whether feedback requests are forwarded to native code.
func (h *HapticsService) Enabled() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.enabled
}

func (h *HapticsService) setEnabled(v bool) {
	h.mu.Lock()
	h.enabled = v
	h.mu.Unlock()
}

func (h *HapticsService) handle(method string, args any) (any, error) {
	switch method {
	case "setEnabled":
		m, ok := args.(map[string]any)
		if !ok {
			return nil, ErrInvalidArguments
		}
		v, ok := m["enabled"].(bool)
		if !ok {
			return nil, ErrInvalidArguments
		}
		h.mu.RLock()
		dispatch := h.dispatch
		h.mu.RUnlock()
		if dispatch != nil {
			dispatch(func() { h.setEnabled(v) })
		} else {
			h.setEnabled(v)
		}
		return nil, nil
	case "isEnabled":
		return h.Enabled(), nil
	default:
		return nil, ErrMethodNotFound
	}
}

func (h *HapticsService) reset() {
	h.SetDispatcher(nil)
	h.setEnabled(true)
}
