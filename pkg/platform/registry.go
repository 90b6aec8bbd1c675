package platform

import (
	"fmt"
	"sync"

	"github.com/veilar-ui/veilar/pkg/errors"
)

type channelRegistry struct {
	mu       sync.RWMutex
	channels map[string]*MethodChannel
}

var registry = &channelRegistry{channels: make(map[string]*MethodChannel)}

func (r *channelRegistry) register(name string, ch *MethodChannel) {
	r.mu.Lock()
	r.channels[name] = ch
	r.mu.Unlock()
}

func (r *channelRegistry) lookup(name string) *MethodChannel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.channels[name]
}

// NativeBridge is implemented by the host to execute calls natively.
type NativeBridge interface {
	InvokeMethod(channel, method string, args []byte) ([]byte, error)
}

var (
	bridgeMu     sync.RWMutex
	nativeBridge NativeBridge
)

// SetNativeBridge installs the native bridge. Passing nil disconnects it.
func SetNativeBridge(bridge NativeBridge) {
	bridgeMu.Lock()
	nativeBridge = bridge
	bridgeMu.Unlock()
}

func currentBridge() NativeBridge {
	bridgeMu.RLock()
	defer bridgeMu.RUnlock()
	return nativeBridge
}

func invokeNative(channel, method string, args any) (any, error) {
	bridge := currentBridge()
	if bridge == nil {
		return nil, ErrPlatformUnavailable
	}
	argsData, err := DefaultCodec.Encode(args)
	if err != nil {
		return nil, err
	}
	resultData, err := bridge.InvokeMethod(channel, method, argsData)
	if err != nil {
		return nil, err
	}
	return DefaultCodec.Decode(resultData)
}

// HandleMethodCall is called by the host when native code invokes a Go
// method. Failures are reported to the error handler and returned.
func HandleMethodCall(channel, method string, argsData []byte) ([]byte, error) {
	ch := registry.lookup(channel)
	if ch == nil {
		err := fmt.Errorf("%w: %s", ErrChannelNotFound, channel)
		errors.Report(&errors.VeilarError{
			Op:   "platform.HandleMethodCall",
			Kind: errors.KindPlatform,
			Err:  err,
		})
		return nil, err
	}
	args, err := DefaultCodec.Decode(argsData)
	if err != nil {
		return nil, err
	}
	result, err := ch.handleCall(method, args)
	if err != nil {
		errors.Report(&errors.VeilarError{
			Op:   "platform.HandleMethodCall",
			Kind: errors.KindPlatform,
			Err:  fmt.Errorf("%s.%s: %w", channel, method, err),
		})
		return nil, err
	}
	return DefaultCodec.Encode(result)
}

// ResetForTest disconnects the bridge and restores the built-in services
// to their initial state. Only tests should call it.
func ResetForTest() {
	SetNativeBridge(nil)
	Haptics.reset()
}
